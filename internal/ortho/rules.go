package ortho

import (
	"unicode/utf8"

	"github.com/lgosselin/orthographe/internal/phoneme"
)

// Combining tilde, the nasality mark. It trails every nasal vowel in the
// phoneme string, so it is the rune a rule actually sees as context after
// one.
const nasalTilde = '̃'

// Rules builds the production functions of the rule library from a class
// configuration. Each rule is a pure function of its (prev, post) context
// runes plus draws on the injected random source; all of them are
// independently testable with fixed Env fixtures.
//
// The predicates distinguish two vowel tests on purpose: vowel matches a
// plain vowel rune only, vowelOrNasal also matches the trailing tilde of a
// nasal vowel. Consonant doubling, for instance, requires a plain vowel on
// the left (a nasal vowel must not trigger it) but accepts a nasal one on
// the right.
type Rules struct {
	vowels  map[rune]bool
	labials map[rune]bool
	front   map[rune]bool
	back    map[rune]bool
}

// NewRules compiles the class configuration into predicate sets.
func NewRules(c phoneme.Classes) *Rules {
	return &Rules{
		vowels:  classSet(c.Vowels),
		labials: classSet(c.Labials),
		front:   classSet(c.Front),
		back:    classSet(c.Back),
	}
}

func classSet(s string) map[rune]bool {
	set := make(map[rune]bool, len(s))
	for _, r := range s {
		set[r] = true
	}
	return set
}

func runeOf(s string) (rune, bool) {
	if s == "" {
		return 0, false
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, true
}

func boundary(s string) bool { return s == Boundary }

func (r *Rules) vowel(s string) bool {
	c, ok := runeOf(s)
	return ok && r.vowels[c]
}

func (r *Rules) vowelOrNasal(s string) bool {
	c, ok := runeOf(s)
	return ok && (r.vowels[c] || c == nasalTilde)
}

// consonant matches any context rune that is not a plain vowel - the
// boundary marker and combining marks included. Empty context never
// matches.
func (r *Rules) consonant(s string) bool {
	c, ok := runeOf(s)
	return ok && !r.vowels[c]
}

func (r *Rules) labial(s string) bool {
	c, ok := runeOf(s)
	return ok && r.labials[c]
}

func (r *Rules) frontVowel(s string) bool {
	c, ok := runeOf(s)
	return ok && r.front[c]
}

func (r *Rules) backVowel(s string) bool {
	c, ok := runeOf(s)
	return ok && r.back[c]
}

// BoundaryRule spells the word edge itself: an h before a vowel-initial
// word, nothing otherwise.
func (r *Rules) BoundaryRule() Rule {
	return func(env Env) string {
		if r.vowelOrNasal(env.Post) {
			return "h"
		}
		return ""
	}
}

// Doubled renders a consonant letter: doubled between a plain vowel and a
// (possibly nasal) vowel, with a mute e appended at word end, bare
// otherwise. A nasal vowel on the left blocks doubling.
func (r *Rules) Doubled(letter string) Rule {
	return func(env Env) string {
		switch {
		case boundary(env.Post):
			return letter + "e"
		case r.vowel(env.Prev) && r.vowelOrNasal(env.Post):
			return letter + letter
		default:
			return letter
		}
	}
}

// FinalAlt spells end at word end and elsewhere everywhere else.
func (r *Rules) FinalAlt(end, elsewhere string) Rule {
	return func(env Env) string {
		if boundary(env.Post) {
			return end
		}
		return elsewhere
	}
}

// Intervocalic spells double between vowels (nasal counts on both sides)
// and single otherwise.
func (r *Rules) Intervocalic(double, single string) Rule {
	return func(env Env) string {
		if r.vowelOrNasal(env.Prev) && r.vowelOrNasal(env.Post) {
			return double
		}
		return single
	}
}

// Nasal spells a nasalized vowel: the digraph closes with m before a
// labial, with n otherwise.
func (r *Rules) Nasal(beforeLabial, plain string) Rule {
	return func(env Env) string {
		if r.labial(env.Post) {
			return beforeLabial
		}
		return plain
	}
}

// NasalFinal is Nasal with the m-spelling also at word end.
func (r *Rules) NasalFinal(beforeLabial, plain string) Rule {
	return func(env Env) string {
		if boundary(env.Post) || r.labial(env.Post) {
			return beforeLabial
		}
		return plain
	}
}

// NasalIN spells the front nasal vowel, choosing between the two attested
// digraph families at random.
func (r *Rules) NasalIN() Rule {
	return func(env Env) string {
		if boundary(env.Post) || r.labial(env.Post) {
			return env.pick("aim", "im")
		}
		return env.pick("ain", "in")
	}
}

// OpenE spells the open front vowel: ay at word end, otherwise one of the
// two attested spellings at random.
func (r *Rules) OpenE() Rule {
	return func(env Env) string {
		if boundary(env.Post) {
			return "ay"
		}
		return env.pick("ai", "è")
	}
}

// HardG picks among gue/gu/gg/g depending on word end, a following front
// vowel, and intervocalic position.
func (r *Rules) HardG() Rule {
	return func(env Env) string {
		switch {
		case boundary(env.Post):
			return "gue"
		case r.frontVowel(env.Post):
			return "gu"
		case r.vowelOrNasal(env.Prev) && r.vowelOrNasal(env.Post):
			return "gg"
		default:
			return "g"
		}
	}
}

// HardK picks among que/q/cc/qu/c depending on word end, a following back
// vowel, and intervocalic position.
func (r *Rules) HardK() Rule {
	return func(env Env) string {
		switch {
		case boundary(env.Post):
			if r.consonant(env.Prev) {
				return "que"
			}
			return "q"
		case r.vowelOrNasal(env.Prev) && r.backVowel(env.Post):
			return "cc"
		case r.vowelOrNasal(env.Post):
			return "qu"
		default:
			return "c"
		}
	}
}

// Sibilant picks among s/ss/c/ç: word-initial and preconsonantal s, the
// intervocalic geminate, and the soft spellings before front and back
// vowels.
func (r *Rules) Sibilant() Rule {
	return func(env Env) string {
		switch {
		case boundary(env.Prev):
			return "s"
		case r.vowelOrNasal(env.Prev) && r.vowelOrNasal(env.Post):
			return "ss"
		case r.consonant(env.Post):
			return "s"
		case r.frontVowel(env.Post):
			return "c"
		default:
			return "ç"
		}
	}
}

// VoicedS spells the voiced sibilant: se/ze at word end depending on what
// precedes, a single intervocalic s, z otherwise.
func (r *Rules) VoicedS() Rule {
	return func(env Env) string {
		switch {
		case boundary(env.Post):
			if r.vowelOrNasal(env.Prev) {
				return "se"
			}
			return "ze"
		case r.vowelOrNasal(env.Prev) && r.vowelOrNasal(env.Post):
			return "s"
		default:
			return "z"
		}
	}
}

// SoftG spells the voiced postalveolar fricative: ge at word end, otherwise
// one of the attested g/j spellings at random, conditioned on whether a
// front vowel follows.
func (r *Rules) SoftG() Rule {
	return func(env Env) string {
		switch {
		case boundary(env.Post):
			return "ge"
		case r.frontVowel(env.Post):
			return env.pick("g", "j")
		default:
			return env.pick("ge", "j")
		}
	}
}

// RoundedEU spells the close-mid rounded vowel: eux at word end, eu
// word-initially, eû in the middle.
func (r *Rules) RoundedEU() Rule {
	return func(env Env) string {
		switch {
		case boundary(env.Post):
			return "eux"
		case boundary(env.Prev):
			return "eu"
		default:
			return "eû"
		}
	}
}

// RoundedUN spells the nasal open-mid rounded vowel: eun at word end, um
// before a labial, un otherwise.
func (r *Rules) RoundedUN() Rule {
	return func(env Env) string {
		switch {
		case boundary(env.Post):
			return "eun"
		case r.labial(env.Post):
			return "um"
		default:
			return "un"
		}
	}
}

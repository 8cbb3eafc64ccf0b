package phoneme

import "strings"

// Phoneme is one segmental token sliced out of a transcription. Its identity
// is the exact substring: optional stress mark, base symbol (possibly a
// tie-barred pair), trailing diacritics. Phonemes never overlap, and a
// segmented word concatenates back to its input.
type Phoneme string

func (p Phoneme) String() string { return string(p) }

// Diacritics with class-overriding semantics. All other diacritics are
// carried through segmentation but never change a phoneme's class.
const (
	// SyllabicBelow and SyllabicAbove (U+0329, U+030D) force a consonant to
	// act as a syllable nucleus.
	SyllabicBelow = '̩'
	SyllabicAbove = '̍'

	// NonSyllabic (U+032F) forces a vowel symbol to act as a consonant.
	NonSyllabic = '̯'
)

// Classifier answers class-membership questions about single phonemes.
// All predicates are O(len(phoneme)) rune scans with no external state;
// a Classifier is immutable after construction and safe for concurrent use.
type Classifier struct {
	vowels  map[rune]bool
	liquids map[rune]bool
	stops   map[rune]bool
	glides  map[rune]bool
	velars  map[rune]bool
}

// NewClassifier compiles the class strings into membership sets.
func NewClassifier(c Classes) *Classifier {
	return &Classifier{
		vowels:  runeSet(c.Vowels),
		liquids: runeSet(c.Liquids),
		stops:   runeSet(c.Stops),
		glides:  runeSet(c.Glides),
		velars:  runeSet(c.Velars),
	}
}

// IsVowel reports whether p can anchor a syllable. A syllabic diacritic
// makes any phoneme a vowel; a non-syllabic diacritic makes none. The
// diacritic override takes precedence over the base symbol class.
func (cl *Classifier) IsVowel(p Phoneme) bool {
	if hasSyllabicMark(p) {
		return true
	}
	return containsClass(p, cl.vowels) && !strings.ContainsRune(string(p), NonSyllabic)
}

// IsLiquid reports whether p clusters as a liquid. A syllabic liquid acts
// as a vowel and must not also register as a liquid.
func (cl *Classifier) IsLiquid(p Phoneme) bool {
	return containsClass(p, cl.liquids) && !hasSyllabicMark(p)
}

// IsStop reports whether p's symbol is in the stop class.
func (cl *Classifier) IsStop(p Phoneme) bool { return containsClass(p, cl.stops) }

// IsGlide reports whether p's symbol is in the glide class.
func (cl *Classifier) IsGlide(p Phoneme) bool { return containsClass(p, cl.glides) }

// IsVelar reports whether p's symbol is in the velar class.
func (cl *Classifier) IsVelar(p Phoneme) bool { return containsClass(p, cl.velars) }

func hasSyllabicMark(p Phoneme) bool {
	return strings.ContainsRune(string(p), SyllabicBelow) ||
		strings.ContainsRune(string(p), SyllabicAbove)
}

// containsClass reports whether any rune of p is in the set. Scanning the
// whole token means either half of a tie-barred pair counts.
func containsClass(p Phoneme, set map[rune]bool) bool {
	for _, r := range p {
		if set[r] {
			return true
		}
	}
	return false
}

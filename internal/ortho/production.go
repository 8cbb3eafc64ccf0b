package ortho

import "math/rand/v2"

// Production is the value attached to a table key: a Literal spelling
// emitted verbatim, or a Rule evaluated against the matched span's context.
// The interface is sealed - only Literal and Rule implement it - and the
// transducer dispatches with an explicit type switch.
type Production interface {
	production()
}

// Literal is a fixed spelling.
type Literal string

func (Literal) production() {}

// Rule computes the spelling for a matched span from its context.
// Rules must be pure in (Prev, Post) apart from draws on Env.Rand.
type Rule func(env Env) string

func (Rule) production() {}

// Env is the context handed to a Rule: the single raw input rune on each
// side of the matched span, as one-rune strings ("" past the padded word's
// ends), and the random source for rules that choose among attested
// alternative spellings. Prev and Post come from the raw phoneme string,
// not from the emitted text.
type Env struct {
	Prev string
	Post string
	Rand *rand.Rand
}

// pick returns one of the alternatives uniformly at random.
func (e Env) pick(alts ...string) string {
	return alts[e.Rand.IntN(len(alts))]
}

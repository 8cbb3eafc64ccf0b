package ortho

import (
	"math/rand/v2"
	"strings"
	"unicode/utf8"

	"github.com/lgosselin/orthographe/internal/phoneme"
)

// Boundary is the sentinel marking word edges in the padded phoneme string.
// It participates in matching and context like any other rune; edge rules
// consume it by producing edge-specific spellings.
const Boundary = "#"

// The bridge diacritic (U+032A) is pure display notation with no
// orthographic reflex; it is removed before transduction.
var orthoStrip = strings.NewReplacer("̪", "")

// Transducer renders phoneme strings as orthographic text by walking a
// boundary-padded word and resolving longest-match productions.
//
// The Table may be shared freely; the Transducer itself owns a random
// source and must not be used from multiple goroutines at once. Create one
// Transducer per goroutine over the same Table.
type Transducer struct {
	table *Table
	rng   *rand.Rand
}

// Option configures a Transducer.
type Option func(*Transducer)

// WithRand injects the random source used by rules that choose among
// attested alternative spellings. Tests supply a fixed source to pin the
// choice; by default each Transducer draws independently.
func WithRand(rng *rand.Rand) Option {
	return func(t *Transducer) {
		t.rng = rng
	}
}

// New creates a Transducer over a finished table.
func New(table *Table, opts ...Option) *Transducer {
	t := &Transducer{table: table}
	for _, opt := range opts {
		opt(t)
	}
	if t.rng == nil {
		t.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return t
}

// Transduce renders one word. The input is the raw phoneme string (no
// stress marks); it is normalized, stripped of the bridge diacritic, and
// padded with the boundary marker on both ends before matching.
//
// Each step resolves the longest key at the current position, evaluates
// its production against the raw runes adjacent to the span, and emits the
// result. A step that consumes nothing aborts the whole word with an
// *UncoveredError - no partial output is ever returned.
func (t *Transducer) Transduce(ipa string) (string, error) {
	word := Boundary + orthoStrip.Replace(phoneme.Normalize(ipa)) + Boundary

	var out strings.Builder
	prev := ""
	pos := 0

	for pos < len(word) {
		prod, n := t.table.LongestMatch(word, pos)
		if n == 0 {
			return "", &UncoveredError{Word: word, Remainder: word[pos:]}
		}

		post := ""
		if pos+n < len(word) {
			r, _ := utf8.DecodeRuneInString(word[pos+n:])
			post = string(r)
		}

		switch p := prod.(type) {
		case Literal:
			out.WriteString(string(p))
		case Rule:
			out.WriteString(p(Env{Prev: prev, Post: post, Rand: t.rng}))
		}

		last, _ := utf8.DecodeLastRuneInString(word[:pos+n])
		prev = string(last)
		pos += n
	}

	return out.String(), nil
}

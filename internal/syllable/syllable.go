package syllable

import (
	"strings"

	"github.com/lgosselin/orthographe/internal/phoneme"
)

// Syllable is an ordered run of phonemes. In finished output it carries
// exactly one vowel nucleus with onset consonants before it and coda
// consonants after it; a coda-only syllable exists only transiently while
// the next one is being built, or as the single pseudo-syllable of a word
// with no vowels.
type Syllable []phoneme.Phoneme

// Word is an ordered sequence of syllables. Concatenating its syllables in
// order reproduces the phoneme sequence it was built from.
type Word []Syllable

// DefaultSyllableSep joins syllables in display output.
const DefaultSyllableSep = "-"

// Phonemes flattens the word back into its phoneme sequence.
func (w Word) Phonemes() []phoneme.Phoneme {
	var out []phoneme.Phoneme
	for _, s := range w {
		out = append(out, s...)
	}
	return out
}

// Format renders the word for display, joining phonemes within a syllable
// with phonemeSep and syllables with syllableSep.
func (w Word) Format(syllableSep, phonemeSep string) string {
	sylls := make([]string, len(w))
	for i, s := range w {
		parts := make([]string, len(s))
		for j, p := range s {
			parts[j] = string(p)
		}
		sylls[i] = strings.Join(parts, phonemeSep)
	}
	return strings.Join(sylls, syllableSep)
}

// String renders the word with default separators.
func (w Word) String() string {
	return w.Format(DefaultSyllableSep, "")
}

package syllable

import "github.com/lgosselin/orthographe/internal/phoneme"

// Syllabifier partitions phoneme sequences into syllables. It is immutable
// after construction and safe for concurrent use.
type Syllabifier struct {
	classifier *phoneme.Classifier
	glideVelar bool
}

// Option configures a Syllabifier.
type Option func(*Syllabifier)

// WithGlideVelarRetention keeps velar+glide onset clusters together instead
// of splitting them across a syllable boundary, the same way stop+liquid
// clusters always are.
func WithGlideVelarRetention() Option {
	return func(s *Syllabifier) {
		s.glideVelar = true
	}
}

// New creates a Syllabifier using the given classifier for all boundary
// decisions.
func New(cl *phoneme.Classifier, opts ...Option) *Syllabifier {
	s := &Syllabifier{classifier: cl}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Syllabify partitions phonemes into syllables in one left-to-right pass.
//
// Consonants join the syllable under construction. The first vowel of the
// word joins it too - everything before the first vowel is onset by
// definition. Every later vowel opens a new syllable: the consonant
// immediately before it (if any) moves into the new onset, and one more
// consonant follows it when the pair forms a retained cluster (stop+liquid
// always, velar+glide only with the retention option).
func (s *Syllabifier) Syllabify(phonemes []phoneme.Phoneme) Word {
	word := Word{nil}
	initial := true

	for _, p := range phonemes {
		cur := len(word) - 1

		if !s.classifier.IsVowel(p) {
			word[cur] = append(word[cur], p)
			continue
		}

		if initial {
			word[cur] = append(word[cur], p)
			initial = false
			continue
		}

		next := Syllable{p}
		prev := word[cur]
		if n := len(prev); n > 0 && !s.classifier.IsVowel(prev[n-1]) {
			moved := prev[n-1]
			prev = prev[:n-1]
			next = append(Syllable{moved}, next...)

			// One step further back, at most once: retained clusters.
			if m := len(prev); m > 0 {
				tail := prev[m-1]
				pull := (s.classifier.IsLiquid(moved) && s.classifier.IsStop(tail)) ||
					(s.glideVelar && s.classifier.IsGlide(moved) && s.classifier.IsVelar(tail))
				if pull {
					prev = prev[:m-1]
					next = append(Syllable{tail}, next...)
				}
			}
			word[cur] = prev
		}
		word = append(word, next)
	}

	return word
}

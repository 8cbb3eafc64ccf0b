package phoneme

import (
	"regexp"

	"golang.org/x/text/unicode/norm"
)

// Token shape, compiled once at init and immutable afterwards.
//
// A phoneme token is an optional stress mark, one letter (or two letters
// joined by the U+0361 tie bar), then any run of trailing diacritics.
// The diacritic class lists every combining mark and modifier letter the
// transcription alphabet uses; anything outside it ends the token.
const (
	// U+02C8 primary stress, U+02CC secondary stress.
	stressClass = "[ˈˌ]"

	// Modifier letters and combining marks of the transcription alphabet:
	// aspiration, palatalization, velarization, labialization, nasality,
	// length, the syllabicity overrides, and the articulation marks.
	diacriticClass = "[ʰʲˠʷᶣˤˡ" +
		"̥̬̪̯̩̰̤̹̃̈̍̊ː]"

	// One letter, or two letters joined by the tie bar.
	symbolPattern = `\p{L}(?:` + "͡" + `\p{L})?`
)

var (
	stressRE  = regexp.MustCompile(stressClass)
	phonemeRE = regexp.MustCompile(stressClass + "?" + symbolPattern + diacriticClass + "*")
)

// Normalize decomposes a transcription into NFD form so that precomposed
// letter+diacritic codepoints split into base letters plus combining marks.
// Segment and the orthographic transducer both normalize their input, so
// a nasal vowel typed either way segments identically.
func Normalize(s string) string {
	return norm.NFD.String(s)
}

// StripStress removes all stress marks from a transcription.
func StripStress(s string) string {
	return stressRE.ReplaceAllString(s, "")
}

// Segment splits a continuous transcription into its ordered phoneme tokens.
// If keepStress is false, stress marks are stripped before scanning and do
// not appear in the output.
//
// The scan is greedy: each position yields the longest valid token. The
// result is checked against a hard invariant - the tokens, concatenated in
// order, must reproduce the (normalized, possibly stress-stripped) input
// exactly. Any character the token shape cannot account for trips the check
// and Segment returns a *SegmentationError carrying the input and the
// partial token list for diagnosis. That error means malformed input or an
// incomplete diacritic class, not a recoverable condition.
func Segment(ipa string, keepStress bool) ([]Phoneme, error) {
	ipa = Normalize(ipa)
	if !keepStress {
		ipa = StripStress(ipa)
	}

	matches := phonemeRE.FindAllString(ipa, -1)
	phonemes := make([]Phoneme, len(matches))
	total := 0
	for i, m := range matches {
		phonemes[i] = Phoneme(m)
		total += len(m)
	}

	if total != len(ipa) {
		return nil, &SegmentationError{Input: ipa, Phonemes: phonemes}
	}
	return phonemes, nil
}

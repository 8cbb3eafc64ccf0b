// Package phoneme turns a raw phonetic transcription into a sequence of
// phoneme tokens and answers class-membership questions about them.
//
// A phoneme is the exact substring it was sliced from: an optional stress
// mark, one base symbol (or two symbols joined by a tie bar, rendering an
// affricate or diphthong as a single unit), and any trailing combining
// diacritics. Segmentation is greedy and checked: concatenating the tokens
// in order must reproduce the input exactly, or Segment fails with a
// SegmentationError.
//
// Character classes (vowels, liquids, stops, glides, velars, and the
// classes the orthography rules consult) are configuration, not logic.
// The compiled-in defaults describe the French-family symbol set; LoadClasses
// reads replacements from YAML.
//
// Syllabic and non-syllabic diacritics override the base symbol's class:
// a syllabic liquid counts as a vowel nucleus, a vowel marked non-syllabic
// does not. The override always wins over the base class.
package phoneme

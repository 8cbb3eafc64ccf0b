// Package syllable partitions a segmented phoneme sequence into syllables.
//
// The pass is strictly left to right with one syllable under construction.
// Consonants are tentatively parked in the current syllable's tail; each
// vowel after the first opens a new syllable and pulls consonants across
// the boundary under the maximal-onset rule:
//
//   - the single consonant immediately before the vowel always moves;
//   - if that consonant is a liquid and the newly exposed tail is a stop,
//     the stop moves too (stop+liquid onsets are never split);
//   - optionally, a velar moves behind a moved glide the same way.
//
// Onset movement only ever looks one step back past the moved consonant,
// which bounds the correction to O(1) per vowel and the pass to O(n).
// Three-consonant onset clusters are therefore never assembled.
//
// A word with no vowels at all yields a single pseudo-syllable holding every
// consonant; that is accepted output, not an error. In every other case each
// finished syllable has exactly one vowel nucleus.
package syllable

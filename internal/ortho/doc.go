// Package ortho renders a phoneme string as historical orthography.
//
// The transduction is table-driven. A Table maps phoneme-string keys of any
// length to productions: either a Literal spelling or a Rule that inspects
// the single raw input rune on each side of the matched span. The transducer
// pads the word with the # boundary marker, then repeatedly resolves the
// longest key matching at the current position and emits its production.
// Context always comes from the raw phoneme string, never from the text
// already emitted.
//
// Some rules choose uniformly at random among attested alternative
// spellings; repeated transductions of the same word may legitimately
// differ. The random source is injectable so tests can pin the choice.
// The sequence of (matched key, span) pairs is deterministic regardless.
//
// A Table is built once and read-only afterwards, safe for any number of
// concurrent lookups. A Transducer owns a random source and is therefore
// not safe for concurrent use; create one per goroutine over the shared
// Table.
//
// The compiled-in table targets a French-style historical orthography; a
// replacement can be loaded from YAML, with rule entries referring to the
// rule library by name. The table author must cover every legal symbol
// (boundary marker included) with at least a single-rune key - a lookup
// that consumes nothing is a fatal configuration error, reported as
// *UncoveredError.
package ortho

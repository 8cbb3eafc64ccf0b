// Package lexicon stores rendered words durably.
//
// Every spelling produced for a transcription can be logged as an Entry,
// so that randomized spellings stay reviewable after the fact: the same
// transcription may legitimately produce several attested spellings, and
// the lexicon keeps all of them side by side.
//
// Storage is a single SQLite file opened in WAL mode. The store is safe
// for concurrent readers; writes are serialized through one connection.
package lexicon

package ortho

import "unicode/utf8"

// Table is a prefix trie from phoneme-string keys to productions. It is
// built once at startup, read-only afterwards, and safe for concurrent
// lookups under that discipline.
//
// Longest-prefix selection is deterministic: of two keys matching at the
// same position the longer always wins, and two distinct keys of equal
// length cannot both be prefixes of the same position.
type Table struct {
	root *trieNode
	size int
}

type trieNode struct {
	children map[rune]*trieNode
	prod     Production
	set      bool
}

// NewTable returns an empty table.
func NewTable() *Table {
	return &Table{root: &trieNode{}}
}

// Insert binds key to p, replacing any previous binding.
func (t *Table) Insert(key string, p Production) {
	n := t.root
	for _, r := range key {
		child := n.children[r]
		if child == nil {
			if n.children == nil {
				n.children = make(map[rune]*trieNode)
			}
			child = &trieNode{}
			n.children[r] = child
		}
		n = child
	}
	if !n.set {
		t.size++
	}
	n.prod = p
	n.set = true
}

// Len returns the number of keys in the table.
func (t *Table) Len() int {
	return t.size
}

// LongestMatch finds the longest key that is a prefix of text[start:].
// It returns the key's production and the number of bytes matched; a zero
// length means no key matched at all, which the caller must treat as a
// coverage error.
func (t *Table) LongestMatch(text string, start int) (Production, int) {
	n := t.root
	var best Production
	bestLen := 0

	for i, r := range text[start:] {
		child := n.children[r]
		if child == nil {
			break
		}
		n = child
		if n.set {
			best = n.prod
			bestLen = i + utf8.RuneLen(r)
		}
	}
	return best, bestLen
}

// Package affixtrie builds the suffix/prefix tries lookup walks to find
// candidate affix entries for a word, the way the teacher's suggest
// package indexes completion words in a patricia.Trie keyed by surface
// text.
package affixtrie

import (
	"github.com/tchap/go-patricia/v2/patricia"
)

// Entry is anything a prefix/suffix trie node can store. aff.Prefix and
// aff.Suffix both satisfy it.
type Entry interface {
	AddString() string
}

// Index is a patricia trie keyed by affix surface text, yielding every
// stored entry reachable along the path consumed so far — i.e. at every
// node visited while walking the key, not just at the terminal node. Zero-
// length keys live at the root and are always yielded.
type Index[E Entry] struct {
	trie *patricia.Trie
	root []E
}

// NewIndex builds an Index over entries, keyed by keyOf(entry) — callers
// pass the reversed Add string for a suffix trie, the forward Add string
// for a prefix trie, per spec's Affix Index design.
func NewIndex[E Entry](entries []E, keyOf func(E) string) *Index[E] {
	idx := &Index[E]{trie: patricia.NewTrie()}
	buckets := make(map[string][]E)
	var order []string
	for _, e := range entries {
		key := keyOf(e)
		if key == "" {
			idx.root = append(idx.root, e)
			continue
		}
		if _, ok := buckets[key]; !ok {
			order = append(order, key)
		}
		buckets[key] = append(buckets[key], e)
	}
	for _, key := range order {
		idx.trie.Insert(patricia.Prefix(key), buckets[key])
	}
	return idx
}

// Lookup walks path one rune at a time, calling visit with every entry
// stored at every trie node reached (including the root), stopping early
// if visit returns false. Candidates are yielded root-first, i.e. shortest
// affix match first, matching the reference implementation's node-by-node
// trie traversal order.
func (idx *Index[E]) Lookup(path string, visit func(E) bool) {
	for _, e := range idx.root {
		if !visit(e) {
			return
		}
	}
	if idx == nil || idx.trie == nil {
		return
	}
	prefix := ""
	for _, r := range path {
		prefix += string(r)
		item := idx.trie.Get(patricia.Prefix(prefix))
		if item == nil {
			continue
		}
		bucket, ok := item.([]E)
		if !ok {
			continue
		}
		for _, e := range bucket {
			if !visit(e) {
				return
			}
		}
	}
}

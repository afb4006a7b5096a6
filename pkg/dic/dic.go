// Package dic is the in-memory word list: stems, their flags and data
// tags, indexed by exact and lowercase spelling for lookup and suggest.
package dic

import (
	"github.com/typocheck/hunspellgo/pkg/flag"
)

// Word is one entry of a .dic file.
type Word struct {
	Stem  string
	Flags flag.Set
	// Data holds the raw values of optional data tags (morphological tags,
	// "ph:" alternate spellings among them), keyed by tag name.
	Data map[string][]string
	// AltSpellings are "ph:" tags without "->" or trailing "*" forms,
	// fed to n-gram suggest alongside the stem itself.
	AltSpellings []string
	CapType      flag.CapType
}

// HasFlag reports whether f is among the word's flags.
func (w *Word) HasFlag(f flag.Flag) bool { return w.Flags.Has(f) }

// Dic is the full word list read from a .dic file, plus the indexes
// lookup and suggest query against.
type Dic struct {
	Words []*Word

	index          map[string][]*Word
	lowercaseIndex map[string][]*Word
}

// New returns an empty Dic ready for Append.
func New() *Dic {
	return &Dic{
		index:          make(map[string][]*Word),
		lowercaseIndex: make(map[string][]*Word),
	}
}

// Append adds word to the dictionary, indexing it by its exact stem and by
// every one of its pre-computed lowercase forms (plural because German's
// ß/ss ambiguity can produce more than one).
func (d *Dic) Append(word *Word, lower []string) {
	d.Words = append(d.Words, word)
	d.index[word.Stem] = append(d.index[word.Stem], word)
	for _, lw := range lower {
		d.lowercaseIndex[lw] = append(d.lowercaseIndex[lw], word)
	}
}

// Homonyms returns every entry with the given stem. With ignoreCase, stem
// is looked up in the lowercase index instead (used by lookup to match an
// uppercased misspelling like "MCDONALDS" against dictionary "McDonalds").
func (d *Dic) Homonyms(stem string, ignoreCase bool) []*Word {
	if ignoreCase {
		return d.lowercaseIndex[stem]
	}
	return d.index[stem]
}

// HasFlag reports whether any (or, with forAll, every) homonym of stem
// carries flag f.
func (d *Dic) HasFlag(stem string, f flag.Flag, forAll bool) bool {
	homonyms := d.Homonyms(stem, false)
	if len(homonyms) == 0 {
		return false
	}
	if forAll {
		for _, w := range homonyms {
			if !w.HasFlag(f) {
				return false
			}
		}
		return true
	}
	for _, w := range homonyms {
		if w.HasFlag(f) {
			return true
		}
	}
	return false
}

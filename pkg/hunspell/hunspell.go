// Package hunspell is the public facade tying pkg/aff, pkg/dic,
// pkg/lookup and pkg/suggest into the two operations a caller actually
// wants: Check and Suggest.
package hunspell

import (
	"fmt"
	"os"

	"github.com/typocheck/hunspellgo/pkg/aff"
	"github.com/typocheck/hunspellgo/pkg/dic"
	"github.com/typocheck/hunspellgo/pkg/lookup"
	"github.com/typocheck/hunspellgo/pkg/suggest"
)

// Dictionary is a loaded .aff/.dic pair, ready for spellchecking.
type Dictionary struct {
	Aff      *aff.Aff
	Dic      *dic.Dic
	lookup   *lookup.Lookup
	suggester *suggest.Suggester
}

// Open reads affPath and dicPath and builds a ready-to-use Dictionary.
// Both files are assumed already transcoded to UTF-8 — per-encoding
// transcoding is an external collaborator's responsibility, not this
// package's.
func Open(affPath, dicPath string) (*Dictionary, error) {
	affFile, err := os.Open(affPath)
	if err != nil {
		return nil, fmt.Errorf("hunspell: opening aff file: %w", err)
	}
	defer affFile.Close()

	a, err := aff.Load(affFile)
	if err != nil {
		return nil, fmt.Errorf("hunspell: loading %s: %w", affPath, err)
	}

	dicFile, err := os.Open(dicPath)
	if err != nil {
		return nil, fmt.Errorf("hunspell: opening dic file: %w", err)
	}
	defer dicFile.Close()

	d, err := dic.Load(dicFile, a)
	if err != nil {
		return nil, fmt.Errorf("hunspell: loading %s: %w", dicPath, err)
	}

	lu := lookup.New(a, d)
	return &Dictionary{
		Aff:       a,
		Dic:       d,
		lookup:    lu,
		suggester: suggest.New(a, d, lu),
	}, nil
}

// Check reports whether word is spelled correctly.
func (h *Dictionary) Check(word string) bool {
	return h.lookup.Check(word)
}

// Suggest returns candidate corrections for word, best first. An empty
// slice means word is either already correct or has no good suggestion.
func (h *Dictionary) Suggest(word string) []string {
	if h.Check(word) {
		return nil
	}
	return h.suggester.Suggest(word)
}

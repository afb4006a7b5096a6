package strutil

import "strings"

// Ignore removes characters the IGNORE directive marks as irrelevant to
// spelling (e.g. vowel points in Hebrew/Arabic) before lookup/suggest ever
// see the word.
type Ignore struct {
	chars map[rune]struct{}
}

// NewIgnore builds an Ignore filter from the raw IGNORE directive value.
func NewIgnore(chars string) *Ignore {
	if chars == "" {
		return nil
	}
	m := make(map[rune]struct{}, len(chars))
	for _, r := range chars {
		m[r] = struct{}{}
	}
	return &Ignore{chars: m}
}

// Apply strips every ignored rune from word.
func (ig *Ignore) Apply(word string) string {
	if ig == nil || len(ig.chars) == 0 {
		return word
	}
	var b strings.Builder
	b.Grow(len(word))
	for _, r := range word {
		if _, skip := ig.chars[r]; skip {
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

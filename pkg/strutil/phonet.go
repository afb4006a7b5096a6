package strutil

import (
	"fmt"
	"regexp"
	"strings"
)

// PhonetRule is one compiled row of the PHONE table: a pattern that may be
// anchored to the start ("^") or end ("$") of the word, may contain an
// optional character class in parens, and a lookahead suffix marked by
// trailing "-" characters in the source rule.
type PhonetRule struct {
	search      *regexp.Regexp
	Replacement string
	Start       bool
	End         bool
}

// PhonetTable is the compiled PHONE directive: an ordered list of
// metaphone replacement rules, indexed by first letter for fast dispatch.
type PhonetTable struct {
	rules map[byte][]*PhonetRule
}

var phoneRulePattern = regexp.MustCompile(`^(\w+)(\((\w+)\))?(-*)([\^$<]*)(\d)?$`)

// NewPhonetTable compiles the raw (search, replacement) rows of a PHONE
// directive into a PhonetTable. Rule syntax: letters, an optional
// parenthesized character class, trailing dashes for lookahead, and
// "^"/"$" anchors, e.g. "MB-    M", "DG(EIY)  J".
func NewPhonetTable(rows [][2]string) (*PhonetTable, error) {
	t := &PhonetTable{rules: make(map[byte][]*PhonetRule)}
	for _, row := range rows {
		rule, err := parsePhonetRule(row[0], row[1])
		if err != nil {
			return nil, err
		}
		if len(row[0]) == 0 {
			continue
		}
		key := row[0][0]
		t.rules[key] = append(t.rules[key], rule)
	}
	return t, nil
}

func parsePhonetRule(search, replacement string) (*PhonetRule, error) {
	m := phoneRulePattern.FindStringSubmatch(search)
	if m == nil {
		return nil, fmt.Errorf("strutil: invalid PHONE rule %q", search)
	}
	letters, optional, lookahead, flags := m[1], m[3], m[4], m[5]

	text := letters
	if optional != "" {
		text += "[" + optional + "]"
	}

	var expr string
	if lookahead != "" {
		la := len(lookahead)
		if la > len(text) {
			la = len(text)
		}
		expr = text[:len(text)-la] + "(?=" + text[len(text)-la:] + ")"
	} else {
		expr = text
	}

	re, err := regexp.Compile(expr)
	if err != nil {
		return nil, fmt.Errorf("strutil: compiling PHONE rule %q: %w", search, err)
	}

	return &PhonetRule{
		search:      re,
		Replacement: replacement,
		Start:       strings.Contains(flags, "^"),
		End:         strings.Contains(flags, "$"),
	}, nil
}

// match reports whether the rule matches word at pos, and how many bytes
// it consumed.
func (r *PhonetRule) match(word string, pos int) (int, bool) {
	if r.Start && pos > 0 {
		return 0, false
	}
	if r.End {
		loc := r.search.FindStringIndex(word[pos:])
		if loc == nil || loc[0] != 0 || loc[1] != len(word)-pos {
			return 0, false
		}
		return loc[1], true
	}
	loc := r.search.FindStringIndex(word[pos:])
	if loc == nil || loc[0] != 0 {
		return 0, false
	}
	return loc[1], true
}

// Metaphone computes the phonetic code of word per table's rules. Word is
// upper-cased first, matching Hunspell's PHONE convention.
func Metaphone(table *PhonetTable, word string) string {
	if table == nil {
		return ""
	}
	word = strings.ToUpper(word)
	var out strings.Builder
	pos := 0
	for pos < len(word) {
		rules := table.rules[word[pos]]
		matched := false
		for _, rule := range rules {
			if n, ok := rule.match(word, pos); ok {
				out.WriteString(rule.Replacement)
				pos += n
				matched = true
				break
			}
		}
		if !matched {
			pos++
		}
	}
	return out.String()
}

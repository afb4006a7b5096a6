// Package strutil implements the string-rewriting and similarity-scoring
// primitives shared by lookup and suggest: ICONV/OCONV rewriting, IGNORE
// filtering, BREAK splitting, and the n-gram/leftcommon/metaphone metrics
// suggest's ranking passes depend on.
package strutil

import (
	"regexp"
	"sort"
	"strings"
	"unicode/utf8"
)

// ConvPair is one (from, to) row of an ICONV or OCONV table. In the source
// pattern a leading/trailing "_" anchors the match to the start/end of the
// word, and every "_" is dropped from the text searched for; in the
// replacement "_" denotes a literal space (mirroring Hunspell's own
// convention of reusing "_" for the space placeholder in REP too).
type ConvPair struct {
	From, To string
}

type compiledConv struct {
	search      string
	pattern     *regexp.Regexp
	replacement string
}

// ConvTable implements ICONV/OCONV: ordered, longest-match-first rewriting
// at every position in the word.
type ConvTable struct {
	rows []compiledConv
}

// NewConvTable compiles pairs into a ConvTable. Rows are tried longest
// search-pattern first at every position, matching spylls' ConvTable.
func NewConvTable(pairs []ConvPair) *ConvTable {
	if len(pairs) == 0 {
		return nil
	}
	t := &ConvTable{rows: make([]compiledConv, 0, len(pairs))}
	for _, p := range pairs {
		clean := strings.ReplaceAll(p.From, "_", "")
		pat := regexp.QuoteMeta(clean)
		if strings.HasPrefix(p.From, "_") {
			pat = "^" + pat
		}
		if strings.HasSuffix(p.From, "_") {
			pat = pat + "$"
		}
		t.rows = append(t.rows, compiledConv{
			search:      clean,
			pattern:     regexp.MustCompile(pat),
			replacement: strings.ReplaceAll(p.To, "_", " "),
		})
	}
	sort.SliceStable(t.rows, func(i, j int) bool {
		return len(t.rows[i].search) > len(t.rows[j].search)
	})
	return t
}

// Apply rewrites word left to right, picking the longest matching pattern
// at each position and falling back to copying a single rune through.
func (t *ConvTable) Apply(word string) string {
	if t == nil || len(t.rows) == 0 {
		return word
	}
	var out strings.Builder
	pos := 0
	for pos < len(word) {
		matched := false
		for _, row := range t.rows {
			loc := row.pattern.FindStringIndex(word[pos:])
			if loc != nil && loc[0] == 0 {
				out.WriteString(row.replacement)
				pos += loc[1]
				matched = true
				break
			}
		}
		if !matched {
			_, size := utf8.DecodeRuneInString(word[pos:])
			out.WriteString(word[pos : pos+size])
			pos += size
		}
	}
	return out.String()
}

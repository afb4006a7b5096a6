package strutil

import "regexp"

// BreakPattern is one compiled entry of the BREAK directive: a literal
// separator string, optionally anchored to the start ("^-") or end ("-$")
// of the word, used to split a word like "pre-processed" into parts that
// are checked independently by lookup.
type BreakPattern struct {
	Pattern string
	re      *regexp.Regexp
}

// DefaultBreaks is the break set Hunspell assumes when the aff file omits
// a BREAK directive entirely.
func DefaultBreaks() []*BreakPattern {
	return []*BreakPattern{
		NewBreakPattern("-"),
		NewBreakPattern("^-"),
		NewBreakPattern("-$"),
	}
}

// NewBreakPattern compiles one BREAK directive value. "^"/"$" are true
// regexp anchors; every other character is a literal.
func NewBreakPattern(pattern string) *BreakPattern {
	anchoredStart := len(pattern) > 0 && pattern[0] == '^'
	anchoredEnd := len(pattern) > 0 && pattern[len(pattern)-1] == '$'

	literal := pattern
	if anchoredStart {
		literal = literal[1:]
	}
	if anchoredEnd && len(literal) > 0 {
		literal = literal[:len(literal)-1]
	}
	escaped := regexp.QuoteMeta(literal)

	var expr string
	switch {
	case anchoredStart:
		expr = "^(" + escaped + ")"
	case anchoredEnd:
		expr = "(" + escaped + ")$"
	default:
		expr = "." + "(" + escaped + ")" + "."
	}
	return &BreakPattern{Pattern: pattern, re: regexp.MustCompile(expr)}
}

// Split returns every (before, after) pair produced by matching this
// pattern once against text — one split point per match, mirroring
// spylls' try_break which iterates re.finditer and yields a split at each
// occurrence.
func (b *BreakPattern) Split(text string) [][2]string {
	locs := b.re.FindAllStringSubmatchIndex(text, -1)
	if locs == nil {
		return nil
	}
	out := make([][2]string, 0, len(locs))
	for _, loc := range locs {
		// loc[2], loc[3] are the bounds of capture group 1 (the separator).
		before := text[:loc[2]]
		after := text[loc[3]:]
		out = append(out, [2]string{before, after})
	}
	return out
}

// Package aff is the parsed affix-file settings object: flag syntax, the
// REP/MAP/PHONE/KEY/TRY suggestion tables, compounding flags and rules,
// and the handful of flags with special lookup meaning (FORBIDDENWORD,
// NEEDAFFIX, KEEPCASE, ...).
package aff

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/typocheck/hunspellgo/pkg/affixtrie"
	"github.com/typocheck/hunspellgo/pkg/flag"
	"github.com/typocheck/hunspellgo/pkg/strutil"
)

// Flag is re-exported for callers that only need the aff package.
type Flag = flag.Flag

// Affix carries the fields common to Prefix and Suffix entries.
type Affix struct {
	FlagName     Flag
	CrossProduct bool
	Strip        string
	Add          string
	Condition    string
	// Flags are granted to the resulting derived form for the lifetime
	// of this derivation (spec's "flags_on_result").
	Flags flag.Set
}

// Prefix is a PFX entry: strip is removed from, add is attached to, the
// start of the stem.
type Prefix struct {
	Affix
	condRegexp   *regexp.Regexp
	lookupRegexp *regexp.Regexp
}

// Suffix is an SFX entry, mirroring Prefix at the end of the stem.
type Suffix struct {
	Affix
	condRegexp   *regexp.Regexp
	lookupRegexp *regexp.Regexp
}

// AddString satisfies affixtrie.Entry: prefixes are indexed forward.
func (p *Prefix) AddString() string { return p.Add }

// AddString satisfies affixtrie.Entry: suffixes are indexed by the
// reversed Add string so lookup can walk the trie from the word's end.
func (s *Suffix) AddString() string { return reverse(s.Add) }

// NewPrefix compiles a PFX entry, pre-building the regexps used to both
// test the stem's boundary condition and to strip+replace in one pass.
func NewPrefix(flagName Flag, crossProduct bool, strip, add, condition string, flags flag.Set) (*Prefix, error) {
	p := &Prefix{Affix: Affix{FlagName: flagName, CrossProduct: crossProduct, Strip: strip, Add: add, Condition: condition, Flags: flags}}
	cond := strings.ReplaceAll(condition, "-", `\-`)
	condRe, err := regexp.Compile("^" + cond)
	if err != nil {
		return nil, fmt.Errorf("aff: prefix condition %q: %w", condition, err)
	}
	p.condRegexp = condRe

	lookupExpr := "^" + regexp.QuoteMeta(add)
	lookupRe, err := regexp.Compile(lookupExpr)
	if err != nil {
		return nil, fmt.Errorf("aff: prefix add %q: %w", add, err)
	}
	p.lookupRegexp = lookupRe
	return p, nil
}

// NewSuffix compiles an SFX entry, mirroring NewPrefix at the stem's end.
func NewSuffix(flagName Flag, crossProduct bool, strip, add, condition string, flags flag.Set) (*Suffix, error) {
	s := &Suffix{Affix: Affix{FlagName: flagName, CrossProduct: crossProduct, Strip: strip, Add: add, Condition: condition, Flags: flags}}
	cond := strings.ReplaceAll(condition, "-", `\-`)
	condRe, err := regexp.Compile(cond + "$")
	if err != nil {
		return nil, fmt.Errorf("aff: suffix condition %q: %w", condition, err)
	}
	s.condRegexp = condRe

	lookupExpr := regexp.QuoteMeta(add) + "$"
	lookupRe, err := regexp.Compile(lookupExpr)
	if err != nil {
		return nil, fmt.Errorf("aff: suffix add %q: %w", add, err)
	}
	s.lookupRegexp = lookupRe
	return s, nil
}

// Derive applies the prefix to word, returning the candidate stem and
// whether the boundary condition holds. fullStrip allows zero-length
// remaining stems (the FULLSTRIP directive).
func (p *Prefix) Derive(word string, fullStrip bool) (stem string, ok bool) {
	if !p.lookupRegexp.MatchString(word) {
		return "", false
	}
	rest := p.lookupRegexp.ReplaceAllString(word, "")
	stem = p.Strip + rest
	if stem == "" && !fullStrip {
		return "", false
	}
	if !p.condRegexp.MatchString(stem) {
		return "", false
	}
	return stem, true
}

// Derive applies the suffix to word, mirroring Prefix.Derive at the end.
func (s *Suffix) Derive(word string, fullStrip bool) (stem string, ok bool) {
	if !s.lookupRegexp.MatchString(word) {
		return "", false
	}
	rest := s.lookupRegexp.ReplaceAllString(word, "")
	stem = rest + s.Strip
	if stem == "" && !fullStrip {
		return "", false
	}
	if !s.condRegexp.MatchString(stem) {
		return "", false
	}
	return stem, true
}

// MatchesCondition reports whether stem satisfies the prefix's boundary
// condition on its own, without stripping/adding anything — used by
// n-gram suggest's forms_for to decide if an affix can attach to a root.
func (p *Prefix) MatchesCondition(stem string) bool {
	return p.condRegexp.MatchString(stem)
}

// MatchesCondition reports whether stem satisfies the suffix's boundary
// condition on its own.
func (s *Suffix) MatchesCondition(stem string) bool {
	return s.condRegexp.MatchString(stem)
}

func reverse(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

// RepPattern is one REP-table row: a frequent-typo pattern and its
// replacement ("_" denotes a literal space).
type RepPattern struct {
	Pattern     string
	Replacement string
	re          *regexp.Regexp
}

// NewRepPattern compiles a REP row.
func NewRepPattern(pattern, replacement string) (*RepPattern, error) {
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("aff: REP pattern %q: %w", pattern, err)
	}
	return &RepPattern{Pattern: pattern, Replacement: replacement, re: re}, nil
}

// Apply returns every string produced by replacing one match of p in word.
func (p *RepPattern) Apply(word string) []string {
	if len(word) < 2 {
		return nil
	}
	locs := p.re.FindAllStringIndex(word, -1)
	if locs == nil {
		return nil
	}
	repl := strings.ReplaceAll(p.Replacement, "_", " ")
	out := make([]string, 0, len(locs))
	for _, loc := range locs {
		out = append(out, word[:loc[0]]+repl+word[loc[1]:])
	}
	return out
}

// CompoundRule is a COMPOUNDRULE pattern over stem flags, precompiled to
// a regexp over single runes (one rune stands in for one flag).
type CompoundRule struct {
	Text    string
	flags   flag.Set
	mapping map[string]rune
	full    *regexp.Regexp
	partial *regexp.Regexp
}

// NewCompoundRule compiles a COMPOUNDRULE directive value. Flags in the
// rule are parenthesized groups ("(aa)(bb)*(cc)") or bare characters
// ("A*B?C") per the short flag syntax; each distinct flag is mapped to one
// private-use rune so the rule can be matched with regexp.
func NewCompoundRule(text string) (*CompoundRule, error) {
	flags := flag.Set{}
	var parts []string

	if strings.Contains(text, "(") {
		re := regexp.MustCompile(`\((.+?)\)`)
		for _, m := range re.FindAllStringSubmatch(text, -1) {
			flags.Add(flag.Flag(m[1]))
		}
		partRe := regexp.MustCompile(`\([^*?]+?\)[*?]?`)
		parts = partRe.FindAllString(text, -1)
	} else {
		for _, r := range text {
			if r == '*' || r == '?' {
				continue
			}
			flags.Add(flag.Flag(string(r)))
		}
		partRe := regexp.MustCompile(`[^*?][*?]?`)
		parts = partRe.FindAllString(text, -1)
	}

	mapping := make(map[string]rune, len(flags))
	next := rune(0xE000) // private-use area, never collides with real text
	encode := func(group string) string {
		var out strings.Builder
		fl := extractFlags(group)
		for _, f := range fl {
			r, ok := mapping[string(f)]
			if !ok {
				r = next
				mapping[string(f)] = r
				next++
			}
			out.WriteRune(r)
		}
		return out.String()
	}

	var fullExpr strings.Builder
	var tailParts []string
	for _, part := range parts {
		quant := ""
		if strings.HasSuffix(part, "*") || strings.HasSuffix(part, "?") {
			quant = part[len(part)-1:]
		}
		encoded := encode(part)
		fullExpr.WriteString("[" + encoded + "]" + quant)
		tailParts = append(tailParts, "["+encoded+"]"+quant)
	}

	full, err := regexp.Compile("^" + fullExpr.String() + "$")
	if err != nil {
		return nil, fmt.Errorf("aff: COMPOUNDRULE %q: %w", text, err)
	}
	partial, err := regexp.Compile("^" + buildPartial(tailParts) + "$")
	if err != nil {
		return nil, fmt.Errorf("aff: COMPOUNDRULE %q (partial): %w", text, err)
	}

	return &CompoundRule{Text: text, flags: flags, mapping: mapping, full: full, partial: partial}, nil
}

func extractFlags(part string) []flag.Flag {
	re := regexp.MustCompile(`\((.+?)\)|([^*?()])`)
	var out []flag.Flag
	for _, m := range re.FindAllStringSubmatch(part, -1) {
		if m[1] != "" {
			out = append(out, flag.Flag(m[1]))
		} else if m[2] != "" {
			out = append(out, flag.Flag(m[2]))
		}
	}
	return out
}

// buildPartial builds the "growing optional tail" regexp used to allow a
// partial (in-progress) compound flag sequence to match: part1(part2(part3)?)?
func buildPartial(parts []string) string {
	if len(parts) == 0 {
		return ""
	}
	res := parts[len(parts)-1]
	for i := len(parts) - 2; i >= 0; i-- {
		res = parts[i] + "(" + res + ")?"
	}
	return res
}

// FullMatch reports whether the sequence of per-segment flag sets can,
// taking at most one relevant flag from each segment, fully match this
// rule — i.e. the segments form a complete valid compound.
func (r *CompoundRule) FullMatch(flagSets []flag.Set) bool {
	return r.matchProduct(flagSets, r.full)
}

// PartialMatch is like FullMatch but allows the sequence to be an
// in-progress prefix of a valid compound (used while still splitting).
func (r *CompoundRule) PartialMatch(flagSets []flag.Set) bool {
	return r.matchProduct(flagSets, r.partial)
}

func (r *CompoundRule) matchProduct(flagSets []flag.Set, re *regexp.Regexp) bool {
	// Build, for each segment, the relevant flags intersected with the
	// rule's flag alphabet, then try every combination (product) since a
	// stem may carry more than one relevant flag.
	var relevant [][]flag.Flag
	for _, fs := range flagSets {
		var rel []flag.Flag
		for f := range r.flags {
			if fs.Has(f) {
				rel = append(rel, f)
			}
		}
		if len(rel) == 0 {
			return false
		}
		relevant = append(relevant, rel)
	}
	return r.productMatches(relevant, 0, "", re)
}

func (r *CompoundRule) productMatches(relevant [][]flag.Flag, idx int, acc string, re *regexp.Regexp) bool {
	if idx == len(relevant) {
		return re.MatchString(acc)
	}
	for _, f := range relevant[idx] {
		if r.productMatches(relevant, idx+1, acc+string(r.mapping[string(f)]), re) {
			return true
		}
	}
	return false
}

// CompoundPattern is a CHECKCOMPOUNDPATTERN row: a forbidden boundary
// between a left stem (optionally ending in left.stem and/or carrying
// left.flag) and a right stem.
type CompoundPattern struct {
	LeftStem, LeftFlag   string
	RightStem, RightFlag string
	LeftNoAffix          bool
	RightNoAffix         bool
}

// NewCompoundPattern parses one CHECKCOMPOUNDPATTERN row's two fields
// ("stem/flag" or "0/flag" for "must be a bare stem").
func NewCompoundPattern(left, right string) *CompoundPattern {
	p := &CompoundPattern{}
	p.LeftStem, p.LeftFlag = splitStemFlag(left)
	p.RightStem, p.RightFlag = splitStemFlag(right)
	if p.LeftStem == "0" {
		p.LeftStem = ""
		p.LeftNoAffix = true
	}
	if p.RightStem == "0" {
		p.RightStem = ""
		p.RightNoAffix = true
	}
	return p
}

func splitStemFlag(s string) (stem, flagName string) {
	if i := strings.IndexByte(s, '/'); i >= 0 {
		return s[:i], s[i+1:]
	}
	return s, ""
}

// Match reports whether the pattern forbids the left/right stem+flags
// boundary. leftIsBase/rightIsBase report whether each side had no affix
// applied (used by the "0/flag" no-affix-required forms).
func (p *CompoundPattern) Match(leftStem string, leftFlags flag.Set, leftIsBase bool, rightStem string, rightFlags flag.Set, rightIsBase bool) bool {
	if !strings.HasSuffix(leftStem, p.LeftStem) {
		return false
	}
	if !strings.HasPrefix(rightStem, p.RightStem) {
		return false
	}
	if p.LeftNoAffix && !leftIsBase {
		return false
	}
	if p.RightNoAffix && !rightIsBase {
		return false
	}
	if p.LeftFlag != "" && !leftFlags.Has(flag.Flag(p.LeftFlag)) {
		return false
	}
	if p.RightFlag != "" && !rightFlags.Has(flag.Flag(p.RightFlag)) {
		return false
	}
	return true
}

// Aff is the fully parsed, immutable affix-file settings object.
type Aff struct {
	Encoding string
	Syntax   flag.Syntax
	Lang     string

	WordChars  string
	IgnoreTbl  *strutil.Ignore
	CheckSharps bool

	ForbiddenWord Flag
	NoSuggest     Flag
	KeepCase      Flag
	NeedAffix     Flag
	Circumfix     Flag
	ComplexPrefixes bool
	FullStrip       bool

	Key string
	Try string
	Rep []*RepPattern
	Map [][]string

	NoSplitSugs  bool
	SugsWithDots bool
	MaxCpdSugs   int
	MaxNgramSugs int
	MaxDiff      int
	OnlyMaxDiff  bool
	ForbidWarn   bool
	Warn         Flag
	Phone        *strutil.PhonetTable

	Break []*strutil.BreakPattern

	CompoundRules      []*CompoundRule
	CompoundMin        int
	CompoundFlag       Flag
	CompoundBegin      Flag
	CompoundMiddle     Flag
	CompoundLast       Flag
	OnlyInCompound     Flag
	CompoundPermitFlag Flag
	CompoundForbidFlag Flag
	CompoundRoot       Flag
	CompoundWordMax    int
	CheckCompoundDup   bool
	CheckCompoundRep   bool
	CheckCompoundCase  bool
	CheckCompoundTriple bool
	SimplifiedTriple    bool
	CheckCompoundPattern []*CompoundPattern
	ForceUCase           Flag

	Prefixes map[Flag][]*Prefix
	Suffixes map[Flag][]*Suffix

	PrefixCrossProduct map[Flag]bool
	SuffixCrossProduct map[Flag]bool

	AF map[string][]Flag
	AM map[string][]string

	ICONV *strutil.ConvTable
	OCONV *strutil.ConvTable

	PrefixIndex *affixtrie.Index[*Prefix]
	SuffixIndex *affixtrie.Index[*Suffix]

	Casing flagCasing
}

// flagCasing is a narrow alias to avoid importing flag package's Casing
// name twice under two identifiers in callers.
type flagCasing = flag.Casing

// New builds an Aff with defaults matching Hunspell's own (COMPOUNDMIN=3,
// default BREAK = {"-", "^-", "-$"}). Loaders populate the exported fields
// directly, then call Finalize, which indexes the PFX/SFX tables.
func New() *Aff {
	return &Aff{
		Syntax:       flag.Short,
		CompoundMin:  3,
		MaxNgramSugs: 4,
		MaxDiff:      -1,
		Break:        strutil.DefaultBreaks(),
		Prefixes:     map[Flag][]*Prefix{},
		Suffixes:     map[Flag][]*Suffix{},
		PrefixCrossProduct: map[Flag]bool{},
		SuffixCrossProduct: map[Flag]bool{},
		AF: map[string][]Flag{},
		AM: map[string][]string{},
	}
}

// Finalize builds the prefix/suffix tries and picks the casing strategy.
// Loaders call this once after populating all directives.
func (a *Aff) Finalize() {
	var allPrefixes []*Prefix
	for _, group := range a.Prefixes {
		allPrefixes = append(allPrefixes, group...)
	}
	a.PrefixIndex = affixtrie.NewIndex(allPrefixes, func(p *Prefix) string { return p.AddString() })

	var allSuffixes []*Suffix
	for _, group := range a.Suffixes {
		allSuffixes = append(allSuffixes, group...)
	}
	a.SuffixIndex = affixtrie.NewIndex(allSuffixes, func(s *Suffix) string { return s.AddString() })

	a.Casing = flag.ForLanguage(a.Lang, a.CheckSharps)
}

// ExpandAlias resolves a numeric AF alias reference; ok is false if ref
// isn't a known alias number.
func (a *Aff) ExpandAlias(ref string) ([]Flag, bool) {
	fl, ok := a.AF[ref]
	return fl, ok
}

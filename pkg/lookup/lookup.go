// Package lookup implements "is this word spelled correctly?": splitting a
// candidate word into stem + affixes, or into compound parts, such that
// every piece is present in the dictionary and compatible with its
// neighbors' flags. No goroutines are used — a single Check or Suggest
// call runs to completion on the calling goroutine, and GoodForms' visitor
// callbacks give the same short-circuiting "stop at first match" behavior
// the reference implementation gets from lazy generators.
package lookup

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/typocheck/hunspellgo/pkg/aff"
	"github.com/typocheck/hunspellgo/pkg/dic"
	"github.com/typocheck/hunspellgo/pkg/flag"
)

// CompoundPos marks where in a compound word a candidate stem would sit,
// which affixes (and which COMPOUND* flags) are allowed there.
type CompoundPos int

const (
	// CompoundNone means the form is not part of a compound.
	CompoundNone CompoundPos = iota
	CompoundBegin
	CompoundMiddle
	CompoundEnd
)

// AffixForm is a hypothesis of how a word splits into stem + up to two
// prefixes + up to two suffixes: prefix2+prefix+stem+suffix+suffix2 == text.
type AffixForm struct {
	Text string
	Stem string

	Prefix  *aff.Prefix
	Suffix  *aff.Suffix
	Prefix2 *aff.Prefix
	Suffix2 *aff.Suffix

	InDictionary *dic.Word
}

// HasAffixes reports whether the form has any prefix or suffix attached.
func (f AffixForm) HasAffixes() bool { return f.Prefix != nil || f.Suffix != nil }

// IsBase reports whether the form is the bare stem with no affixes.
func (f AffixForm) IsBase() bool { return !f.HasAffixes() }

// Flags returns the union of the dictionary stem's flags and any attached
// prefix/suffix's flags.
func (f AffixForm) Flags() flag.Set {
	out := flag.Set{}
	if f.InDictionary != nil {
		out = out.Union(f.InDictionary.Flags)
	}
	if f.Prefix != nil {
		out = out.Union(f.Prefix.Flags)
	}
	if f.Suffix != nil {
		out = out.Union(f.Suffix.Flags)
	}
	return out
}

// AffixFlagSets returns the flag set of every attached affix (not the
// stem), in prefix2/prefix/suffix/suffix2 order.
func (f AffixForm) AffixFlagSets() []flag.Set {
	var out []flag.Set
	if f.Prefix2 != nil {
		out = append(out, f.Prefix2.Flags)
	}
	if f.Prefix != nil {
		out = append(out, f.Prefix.Flags)
	}
	if f.Suffix != nil {
		out = append(out, f.Suffix.Flags)
	}
	if f.Suffix2 != nil {
		out = append(out, f.Suffix2.Flags)
	}
	return out
}

// CompoundForm is a hypothesis of how a word splits into several stem (+
// affixes) parts, each independently found in the dictionary.
type CompoundForm struct {
	Parts []AffixForm
}

// WordForm is either an AffixForm or a CompoundForm result from GoodForms;
// exactly one of the two fields is non-nil.
type WordForm struct {
	Affix    *AffixForm
	Compound *CompoundForm
}

var numberPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// Lookup runs correctness checks against one loaded Aff+Dic pair.
type Lookup struct {
	Aff *aff.Aff
	Dic *dic.Dic
}

// New builds a Lookup over a, d.
func New(a *aff.Aff, d *dic.Dic) *Lookup {
	return &Lookup{Aff: a, Dic: d}
}

// Check is the outermost "is word spelled correctly?" entry point.
func (l *Lookup) Check(word string) bool {
	return l.CheckOpts(word, true, true, true)
}

// CheckOpts is Check with the capitalization/nosuggest/break knobs Suggest
// needs when re-checking a candidate under different constraints.
func (l *Lookup) CheckOpts(word string, capitalization, allowNosuggest, allowBreak bool) bool {
	a := l.Aff

	if a.ForbiddenWord != "" && l.Dic.HasFlag(word, a.ForbiddenWord, true) {
		return false
	}
	if a.ICONV != nil {
		word = a.ICONV.Apply(word)
	}
	if a.IgnoreTbl != nil {
		word = a.IgnoreTbl.Apply(word)
	}
	if numberPattern.MatchString(word) {
		return true
	}

	isCorrect := func(w string) bool {
		found := false
		l.GoodForms(w, capitalization, allowNosuggest, true, true, func(WordForm) bool {
			found = true
			return false
		})
		return found
	}

	if isCorrect(word) {
		return true
	}
	if !allowBreak {
		return false
	}

	ok := false
	l.BreakWord(word, 0, func(parts []string) bool {
		for _, p := range parts {
			if p == "" {
				continue
			}
			if !isCorrect(p) {
				return true // this breaking doesn't work, try the next
			}
		}
		ok = true
		return false
	})
	return ok
}

// BreakWord recursively visits every way word can be split by BREAK
// patterns (e.g. "pre-processed-meat" -> ["pre","processed-meat"],
// ["pre","processed","meat"], ["pre-processed","meat"]), stopping at depth
// 10 to bound pathological inputs. Stops early if visit returns false.
func (l *Lookup) BreakWord(word string, depth int, visit func(parts []string) bool) bool {
	if depth > 10 {
		return true
	}
	if !visit([]string{word}) {
		return false
	}
	for _, pat := range l.Aff.Break {
		for _, pair := range pat.Split(word) {
			before, after := pair[0], pair[1]
			cont := l.BreakWord(after, depth+1, func(rest []string) bool {
				return visit(append([]string{before}, rest...))
			})
			if !cont {
				return false
			}
		}
	}
	return true
}

// GoodForms visits every AffixForm/CompoundForm that makes word correct.
// allowAffixForms/allowCompoundForms let a caller restrict the search to
// only one of the two strategies (suggest's edit_suggestions runs a
// compound-only pass separately from its plain-word pass).
func (l *Lookup) GoodForms(word string, capitalization, allowNosuggest, allowAffixForms, allowCompoundForms bool, visit func(WordForm) bool) bool {
	var captype flag.CapType
	var variants []string
	if capitalization {
		captype, variants = l.Aff.Casing.Variants(word)
	} else {
		captype = l.Aff.Casing.Guess(word)
		variants = []string{word}
	}

	for _, variant := range variants {
		if allowAffixForms {
			cont := l.AffixForms(variant, captype, allowNosuggest, nil, nil, nil, CompoundNone, false, func(form AffixForm) bool {
				if l.Aff.CheckSharps && l.Aff.KeepCase != "" && form.InDictionary != nil &&
					strings.Contains(form.InDictionary.Stem, "ß") && form.Flags().Has(l.Aff.KeepCase) &&
					captype == flag.ALL && strings.Contains(word, "ß") {
					return true
				}
				return visit(WordForm{Affix: &form})
			})
			if !cont {
				return false
			}
		}

		if allowCompoundForms {
			cont := l.CompoundForms(variant, captype, allowNosuggest, func(cf CompoundForm) bool {
				return visit(WordForm{Compound: &cf})
			})
			if !cont {
				return false
			}
		}
	}
	return true
}

// AffixForms visits every correct stem+affix split of word. prefixFlags/
// suffixFlags/forbiddenFlags constrain which affixes are acceptable
// (passed down from compound_* when word is a candidate compound part).
// withForbidden disables the short-circuit-on-forbidden-homonym behavior,
// used by CompoundForms to merely detect whether a forbidden stem exists.
func (l *Lookup) AffixForms(word string, captype flag.CapType, allowNosuggest bool,
	prefixFlags, suffixFlags, forbiddenFlags []flag.Flag, compoundPos CompoundPos, withForbidden bool,
	visit func(AffixForm) bool) bool {

	a := l.Aff
	stopped := false

	l.ProduceAffixForms(word, compoundPos, prefixFlags, suffixFlags, forbiddenFlags, func(form AffixForm) bool {
		homonyms := l.Dic.Homonyms(form.Stem, false)

		if !withForbidden && a.ForbiddenWord != "" && (compoundPos != CompoundNone || form.HasAffixes()) {
			for _, h := range homonyms {
				if h.HasFlag(a.ForbiddenWord) {
					stopped = true
					return false
				}
			}
		}

		found := false
		for _, h := range homonyms {
			candidate := form
			candidate.InDictionary = h
			if l.IsGoodForm(candidate, compoundPos, captype, allowNosuggest) {
				found = true
				if !visit(candidate) {
					stopped = true
					return false
				}
			}
		}

		if compoundPos == CompoundBegin && a.ForceUCase != "" && captype == flag.INIT {
			for _, h := range l.Dic.Homonyms(strings.ToLower(form.Stem), false) {
				candidate := form
				candidate.InDictionary = h
				if l.IsGoodForm(candidate, compoundPos, captype, allowNosuggest) {
					found = true
					if !visit(candidate) {
						stopped = true
						return false
					}
				}
			}
		}

		if found || compoundPos != CompoundNone || captype != flag.ALL {
			return true
		}

		if l.Aff.Casing.Guess(word) == flag.NO {
			for _, h := range l.Dic.Homonyms(form.Stem, true) {
				candidate := form
				candidate.InDictionary = h
				if l.IsGoodForm(candidate, compoundPos, captype, allowNosuggest) {
					if !visit(candidate) {
						stopped = true
						return false
					}
				}
			}
		}
		return true
	})

	return !stopped
}

// ProduceAffixForms visits every possible (not necessarily correct, that's
// IsGoodForm's job) stem+affix split of word: the bare word, desuffixed
// forms, deprefixed forms, and (when the prefix allows cross-production)
// deprefixed-then-desuffixed forms.
func (l *Lookup) ProduceAffixForms(word string, compoundPos CompoundPos,
	prefixFlags, suffixFlags, forbiddenFlags []flag.Flag, visit func(AffixForm) bool) bool {

	if !visit(AffixForm{Text: word, Stem: word}) {
		return false
	}

	suffixAllowed := compoundPos == CompoundNone || compoundPos == CompoundEnd || len(suffixFlags) > 0
	prefixAllowed := compoundPos == CompoundNone || compoundPos == CompoundBegin || len(prefixFlags) > 0

	if suffixAllowed {
		if !l.Desuffix(word, suffixFlags, forbiddenFlags, false, false, visit) {
			return false
		}
	}

	if prefixAllowed {
		cont := l.Deprefix(word, prefixFlags, forbiddenFlags, false, func(form AffixForm) bool {
			if !visit(form) {
				return false
			}
			if suffixAllowed && form.Prefix != nil && form.Prefix.CrossProduct {
				return l.Desuffix(form.Stem, suffixFlags, forbiddenFlags, false, true, func(form2 AffixForm) bool {
					form2.Text = form.Text
					form2.Prefix = form.Prefix
					return visit(form2)
				})
			}
			return true
		})
		if !cont {
			return false
		}
	}

	return true
}

// Desuffix visits every form produced by chopping off a matching suffix
// from word (and, one level deep, a second suffix from the resulting
// stem). crossProduct restricts to suffixes marked cross-product-capable,
// used when desuffixing after a prefix was already removed.
func (l *Lookup) Desuffix(word string, requiredFlags, forbiddenFlags []flag.Flag, nested, crossProduct bool, visit func(AffixForm) bool) bool {
	cont := true
	l.Aff.SuffixIndex.Lookup(reverseString(word), func(suffix *aff.Suffix) bool {
		if crossProduct && !suffix.CrossProduct {
			return true
		}
		if !hasAllFlags(suffix.Flags, requiredFlags) || hasAnyFlag(suffix.Flags, forbiddenFlags) {
			return true
		}
		stem, ok := suffix.Derive(word, l.Aff.FullStrip)
		if !ok {
			return true
		}

		form := AffixForm{Text: word, Stem: stem, Suffix: suffix}
		if !visit(form) {
			cont = false
			return false
		}

		if !nested {
			nextRequired := append([]flag.Flag{suffix.FlagName}, requiredFlags...)
			sub := l.Desuffix(stem, nextRequired, forbiddenFlags, true, crossProduct, func(form2 AffixForm) bool {
				form2.Suffix2 = suffix
				form2.Text = word
				return visit(form2)
			})
			if !sub {
				cont = false
				return false
			}
		}
		return true
	})
	return cont
}

// Deprefix is Desuffix's mirror image at the start of the word. A second
// prefix is only tried under COMPLEXPREFIXES (languages that stack
// prefixes, e.g. some agglutinative ones).
func (l *Lookup) Deprefix(word string, requiredFlags, forbiddenFlags []flag.Flag, nested bool, visit func(AffixForm) bool) bool {
	cont := true
	l.Aff.PrefixIndex.Lookup(word, func(prefix *aff.Prefix) bool {
		if !hasAllFlags(prefix.Flags, requiredFlags) || hasAnyFlag(prefix.Flags, forbiddenFlags) {
			return true
		}
		stem, ok := prefix.Derive(word, l.Aff.FullStrip)
		if !ok {
			return true
		}

		form := AffixForm{Text: word, Stem: stem, Prefix: prefix}
		if !visit(form) {
			cont = false
			return false
		}

		if !nested && l.Aff.ComplexPrefixes {
			nextRequired := append([]flag.Flag{prefix.FlagName}, requiredFlags...)
			sub := l.Deprefix(stem, nextRequired, forbiddenFlags, true, func(form2 AffixForm) bool {
				form2.Prefix2 = prefix
				form2.Text = word
				return visit(form2)
			})
			if !sub {
				cont = false
				return false
			}
		}
		return true
	})
	return cont
}

// IsGoodForm decides whether form's stem, prefix and suffix are mutually
// compatible (flag-wise) and, if compoundPos is set, allowed at that
// position in a compound word.
func (l *Lookup) IsGoodForm(form AffixForm, compoundPos CompoundPos, captype flag.CapType, allowNosuggest bool) bool {
	a := l.Aff
	if form.InDictionary == nil {
		return false
	}

	rootFlags := form.InDictionary.Flags
	allFlags := form.Flags()

	if !allowNosuggest && a.NoSuggest != "" && rootFlags.Has(a.NoSuggest) {
		return false
	}

	if captype != form.InDictionary.CapType && a.KeepCase != "" && rootFlags.Has(a.KeepCase) {
		if !(a.CheckSharps && strings.Contains(form.InDictionary.Stem, "ß")) {
			return false
		}
	}

	if a.NeedAffix != "" {
		if rootFlags.Has(a.NeedAffix) && !form.HasAffixes() {
			return false
		}
		if sets := form.AffixFlagSets(); len(sets) > 0 {
			allHave := true
			for _, fs := range sets {
				if !fs.Has(a.NeedAffix) {
					allHave = false
					break
				}
			}
			if allHave {
				return false
			}
		}
	}

	if form.Prefix != nil && !allFlags.Has(form.Prefix.FlagName) {
		return false
	}
	if form.Suffix != nil && !allFlags.Has(form.Suffix.FlagName) {
		return false
	}

	if a.Circumfix != "" {
		suffixHas := form.Suffix != nil && form.Suffix.Flags.Has(a.Circumfix)
		prefixHas := form.Prefix != nil && form.Prefix.Flags.Has(a.Circumfix)
		if suffixHas != prefixHas {
			return false
		}
	}

	if compoundPos == CompoundNone {
		return !allFlags.Has(a.OnlyInCompound)
	}

	if allFlags.Has(a.CompoundFlag) {
		return true
	}
	switch compoundPos {
	case CompoundBegin:
		return allFlags.Has(a.CompoundBegin)
	case CompoundEnd:
		return allFlags.Has(a.CompoundLast)
	case CompoundMiddle:
		return allFlags.Has(a.CompoundMiddle)
	}
	return false
}

func hasAllFlags(set flag.Set, required []flag.Flag) bool {
	for _, f := range required {
		if !set.Has(f) {
			return false
		}
	}
	return true
}

func hasAnyFlag(set flag.Set, forbidden []flag.Flag) bool {
	for _, f := range forbidden {
		if set.Has(f) {
			return true
		}
	}
	return false
}

func reverseString(s string) string {
	r := []rune(s)
	for i, j := 0, len(r)-1; i < j; i, j = i+1, j-1 {
		r[i], r[j] = r[j], r[i]
	}
	return string(r)
}

func runeLen(s string) int { return utf8.RuneCountInString(s) }

func lastRunes(r []rune, n int) string {
	if n > len(r) {
		n = len(r)
	}
	return string(r[len(r)-n:])
}

func firstRunes(r []rune, n int) string {
	if n > len(r) {
		n = len(r)
	}
	return string(r[:n])
}

func allSameRune(s string) bool {
	r := []rune(s)
	if len(r) == 0 {
		return false
	}
	for _, c := range r[1:] {
		if c != r[0] {
			return false
		}
	}
	return true
}

package lookup

import (
	"unicode"

	"github.com/typocheck/hunspellgo/pkg/aff"
	"github.com/typocheck/hunspellgo/pkg/dic"
	"github.com/typocheck/hunspellgo/pkg/flag"
	"github.com/typocheck/hunspellgo/pkg/permute"
)

// CompoundForms visits every correct compound-word split of word,
// delegating to the two independent compounding strategies (flag-driven
// and COMPOUNDRULE-driven) and filtering each with IsBadCompound.
func (l *Lookup) CompoundForms(word string, captype flag.CapType, allowNosuggest bool, visit func(CompoundForm) bool) bool {
	a := l.Aff

	if a.ForbiddenWord != "" {
		forbidden := false
		l.AffixForms(word, captype, true, nil, nil, nil, CompoundNone, true, func(form AffixForm) bool {
			if form.Flags().Has(a.ForbiddenWord) {
				forbidden = true
				return false
			}
			return true
		})
		if forbidden {
			return true
		}
	}

	cont := true
	if a.CompoundBegin != "" || a.CompoundFlag != "" {
		cont = l.CompoundsByFlags(word, captype, 0, allowNosuggest, func(cf CompoundForm) bool {
			if l.IsBadCompound(cf, captype) {
				return true
			}
			return visit(cf)
		})
		if !cont {
			return false
		}
	}

	if len(a.CompoundRules) > 0 {
		cont = l.CompoundsByRules(word, nil, a.CompoundRules, func(cf CompoundForm) bool {
			if l.IsBadCompound(cf, captype) {
				return true
			}
			return visit(cf)
		})
		if !cont {
			return false
		}
	}

	return true
}

// CompoundsByFlags recursively splits wordRest, checking at every split
// point whether the left part is a valid affix form allowed at the
// current compound position (BEGIN/MIDDLE), then recursing into the rest.
func (l *Lookup) CompoundsByFlags(wordRest string, captype flag.CapType, depth int, allowNosuggest bool, visit func(CompoundForm) bool) bool {
	a := l.Aff

	var forbiddenFlags []flag.Flag
	if a.CompoundForbidFlag != "" {
		forbiddenFlags = []flag.Flag{a.CompoundForbidFlag}
	}
	var permitFlags []flag.Flag
	if a.CompoundPermitFlag != "" {
		permitFlags = []flag.Flag{a.CompoundPermitFlag}
	}

	if depth > 0 {
		cont := l.AffixForms(wordRest, captype, allowNosuggest, permitFlags, nil, forbiddenFlags, CompoundEnd, false, func(form AffixForm) bool {
			return visit(CompoundForm{Parts: []AffixForm{form}})
		})
		if !cont {
			return false
		}
	}

	minLen := a.CompoundMin
	if minLen <= 0 {
		minLen = 1
	}
	if runeLen(wordRest) < minLen*2 || (a.CompoundWordMax > 0 && depth >= a.CompoundWordMax) {
		return true
	}

	compoundPos := CompoundMiddle
	var prefixFlags []flag.Flag
	if depth == 0 {
		compoundPos = CompoundBegin
	} else {
		prefixFlags = permitFlags
	}

	runes := []rune(wordRest)
	for pos := minLen; pos <= len(runes)-minLen; pos++ {
		beg := string(runes[:pos])
		rest := string(runes[pos:])

		cont := l.AffixForms(beg, captype, allowNosuggest, prefixFlags, permitFlags, forbiddenFlags, compoundPos, false, func(form AffixForm) bool {
			return l.CompoundsByFlags(rest, captype, depth+1, allowNosuggest, func(partial CompoundForm) bool {
				parts := append([]AffixForm{form}, partial.Parts...)
				return visit(CompoundForm{Parts: parts})
			})
		})
		if !cont {
			return false
		}

		if a.SimplifiedTriple && len(beg) > 0 && len(rest) > 0 && beg[len(beg)-1] == rest[0] {
			beg2 := beg + string(beg[len(beg)-1])
			cont = l.AffixForms(beg2, captype, allowNosuggest, prefixFlags, permitFlags, forbiddenFlags, compoundPos, false, func(form AffixForm) bool {
				form.Text = beg
				return l.CompoundsByFlags(rest, captype, depth+1, allowNosuggest, func(partial CompoundForm) bool {
					parts := append([]AffixForm{form}, partial.Parts...)
					return visit(CompoundForm{Parts: parts})
				})
			})
			if !cont {
				return false
			}
		}
	}
	return true
}

// CompoundsByRules splits wordRest by matching accumulated flag sets
// against COMPOUNDRULE patterns like "A*BC?", narrowing the candidate
// rule list as more parts are committed.
func (l *Lookup) CompoundsByRules(wordRest string, prevParts []*dic.Word, rules []*aff.CompoundRule, visit func(CompoundForm) bool) bool {
	a := l.Aff

	if len(prevParts) > 0 {
		for _, homonym := range l.Dic.Homonyms(wordRest, false) {
			flagSets := flagSetsOf(prevParts, homonym)
			matched := false
			for _, r := range rules {
				if r.FullMatch(flagSets) {
					matched = true
					break
				}
			}
			if matched {
				if !visit(CompoundForm{Parts: []AffixForm{{Text: wordRest, Stem: wordRest}}}) {
					return false
				}
			}
		}
	}

	minLen := a.CompoundMin
	if minLen <= 0 {
		minLen = 1
	}
	if runeLen(wordRest) < minLen*2 || (a.CompoundWordMax > 0 && len(prevParts) >= a.CompoundWordMax) {
		return true
	}

	runes := []rune(wordRest)
	for pos := minLen; pos <= len(runes)-minLen; pos++ {
		beg := string(runes[:pos])
		for _, homonym := range l.Dic.Homonyms(beg, false) {
			flagSets := flagSetsOf(prevParts, homonym)
			var partial []*aff.CompoundRule
			for _, r := range rules {
				if r.PartialMatch(flagSets) {
					partial = append(partial, r)
				}
			}
			if len(partial) == 0 {
				continue
			}
			nextParts := append(append([]*dic.Word{}, prevParts...), homonym)
			cont := l.CompoundsByRules(string(runes[pos:]), nextParts, partial, func(restForm CompoundForm) bool {
				parts := append([]AffixForm{{Text: beg, Stem: beg}}, restForm.Parts...)
				return visit(CompoundForm{Parts: parts})
			})
			if !cont {
				return false
			}
		}
	}
	return true
}

func flagSetsOf(prevParts []*dic.Word, last *dic.Word) []flag.Set {
	out := make([]flag.Set, 0, len(prevParts)+1)
	for _, w := range prevParts {
		out = append(out, w.Flags)
	}
	return append(out, last.Flags)
}

// IsBadCompound rejects a produced CompoundForm hypothesis for any of the
// boundary conditions Hunspell's CHECKCOMPOUND* settings describe: banned
// adjacent-word pairs, REP-table substitutions that would themselves be
// valid, letter tripling, casing clashes, pattern bans, and duplication.
func (l *Lookup) IsBadCompound(compound CompoundForm, captype flag.CapType) bool {
	a := l.Aff

	if a.ForceUCase != "" && captype != flag.ALL && captype != flag.INIT {
		last := compound.Parts[len(compound.Parts)-1]
		if l.Dic.HasFlag(last.Text, a.ForceUCase, false) {
			return true
		}
	}

	for i := 0; i < len(compound.Parts)-1; i++ {
		left := compound.Parts[i].Text
		right := compound.Parts[i+1].Text

		if a.CompoundForbidFlag != "" && l.Dic.HasFlag(left, a.CompoundForbidFlag, false) {
			return true
		}

		if l.anyAffixForm(left+" "+right, captype) {
			return true
		}

		if a.CheckCompoundRep {
			bad := false
			permute.ReplChars(left+right, a.Rep, func(candidate string) bool {
				if l.anyAffixForm(candidate, captype) {
					bad = true
					return false
				}
				return true
			}, nil)
			if bad {
				return true
			}
		}

		if a.CheckCompoundTriple && tripleLetter(left, right) {
			return true
		}

		if a.CheckCompoundCase {
			lr := []rune(left)
			rr := []rune(right)
			if len(lr) > 0 && len(rr) > 0 {
				lc, rc := lr[len(lr)-1], rr[0]
				if (unicode.IsUpper(lc) || unicode.IsUpper(rc)) && lc != '-' && rc != '-' {
					return true
				}
			}
		}

		for _, pattern := range a.CheckCompoundPattern {
			if pattern.Match(left, compound.Parts[i].Flags(), compound.Parts[i].IsBase(),
				right, compound.Parts[i+1].Flags(), compound.Parts[i+1].IsBase()) {
				return true
			}
		}

		if a.CheckCompoundDup && left == right && i == len(compound.Parts)-2 {
			return true
		}
	}

	return false
}

func (l *Lookup) anyAffixForm(word string, captype flag.CapType) bool {
	found := false
	l.AffixForms(word, captype, true, nil, nil, nil, CompoundNone, false, func(AffixForm) bool {
		found = true
		return false
	})
	return found
}

func tripleLetter(left, right string) bool {
	l := []rune(left)
	r := []rune(right)
	chunk1 := lastRunes(l, 2) + firstRunes(r, 1)
	chunk2 := lastRunes(l, 1) + firstRunes(r, 2)
	return allSameRune(chunk1) || allSameRune(chunk2)
}

package suggest

import (
	"github.com/typocheck/hunspellgo/pkg/aff"
	"github.com/typocheck/hunspellgo/pkg/dic"
	"github.com/typocheck/hunspellgo/pkg/lookup"
	"github.com/typocheck/hunspellgo/pkg/permute"
)

// MaxSuggestions caps the non-compound and general edit-suggestion passes
// (Hunspell's MAXSUGGESTIONS).
const MaxSuggestions = 15

// MaxPhonetSuggestions caps the phonet suggestion pass.
const MaxPhonetSuggestions = 2

// goodEditKinds are the edit kinds considered reliable enough that, once
// any is found, the slower ngram/phonet passes aren't needed.
var goodEditKinds = map[string]bool{"spaceword": true, "uppercase": true, "replchars": true}

// Suggester produces spelling suggestions for a misspelled word, using
// lookup's good-form checks to validate cheap character-level edits
// before falling back to n-gram and phonetic similarity passes.
type Suggester struct {
	Aff          *aff.Aff
	Dic          *dic.Dic
	Lookup       *lookup.Lookup
	wordsForNgram []*dic.Word
}

// New builds a Suggester, precomputing the dictionary subset eligible for
// n-gram/phonet comparison (excluding forbidden, nosuggest and
// compound-only entries).
func New(a *aff.Aff, d *dic.Dic, lu *lookup.Lookup) *Suggester {
	var words []*dic.Word
	for _, w := range d.Words {
		if a.ForbiddenWord != "" && w.HasFlag(a.ForbiddenWord) {
			continue
		}
		if a.NoSuggest != "" && w.HasFlag(a.NoSuggest) {
			continue
		}
		if a.OnlyInCompound != "" && w.HasFlag(a.OnlyInCompound) {
			continue
		}
		words = append(words, w)
	}
	return &Suggester{Aff: a, Dic: d, Lookup: lu, wordsForNgram: words}
}

// Suggest returns every valid correction for word, in priority order.
func (s *Suggester) Suggest(word string) []string {
	var out []string
	for _, sug := range s.Suggestions(word) {
		out = append(out, sug.Text)
	}
	return out
}

// edit is one cascade item: either a single Suggestion or a
// MultiWordSuggestion, mirroring the union type `edits()` yields in the
// reference implementation.
type edit struct {
	single *Suggestion
	multi  *MultiWordSuggestion
}

func singleEdit(text, kind string) edit { return edit{single: &Suggestion{Text: text, Kind: kind}} }

// isGoodSuggestion reports whether word is, on its own (no ICONV, no
// dash-breaking), an existing allowed word — optionally restricted to
// only compound or only non-compound forms.
func (s *Suggester) isGoodSuggestion(word string, allowAffixForms, allowCompoundForms bool) bool {
	found := false
	s.Lookup.GoodForms(word, false, false, allowAffixForms, allowCompoundForms, func(lookup.WordForm) bool {
		found = true
		return false
	})
	return found
}

func (s *Suggester) isForbidden(word string) bool {
	return s.Aff.ForbiddenWord != "" && s.Dic.HasFlag(word, s.Aff.ForbiddenWord, false)
}

// Edits visits every cheap character-level edit of word, in the fixed
// priority order the main suggestion loop relies on for its "good kind"
// short-circuits. Returning false from visit stops the cascade early.
func (s *Suggester) Edits(word string, visit func(edit) bool) bool {
	a := s.Aff

	if !visit(singleEdit(a.Casing.Upper(word), "uppercase")) {
		return false
	}

	cont := permute.ReplChars(word, a.Rep,
		func(suggestion string) bool {
			return visit(singleEdit(suggestion, "replchars"))
		},
		func(first, second string) bool {
			return visit(edit{multi: &MultiWordSuggestion{Words: []string{first, second}, Source: "replchars", AllowDash: false}})
		},
	)
	if !cont {
		return false
	}

	cont = permute.TwoWords(word, func(first, second string) bool {
		if !visit(singleEdit(first+" "+second, "spaceword")) {
			return false
		}
		if s.useDash() {
			if !visit(singleEdit(first+"-"+second, "spaceword")) {
				return false
			}
		}
		return true
	})
	if !cont {
		return false
	}

	cont = permute.MapChars(word, a.Map, func(suggestion string) bool {
		return visit(singleEdit(suggestion, "mapchars"))
	})
	if !cont {
		return false
	}

	cont = permute.SwapChar(word, func(suggestion string) bool {
		return visit(singleEdit(suggestion, "swapchar"))
	})
	if !cont {
		return false
	}

	cont = permute.LongSwapChar(word, func(suggestion string) bool {
		return visit(singleEdit(suggestion, "longswapchar"))
	})
	if !cont {
		return false
	}

	cont = permute.BadCharKey(word, a.Key, func(suggestion string) bool {
		return visit(singleEdit(suggestion, "badcharkey"))
	})
	if !cont {
		return false
	}

	cont = permute.ExtraChar(word, func(suggestion string) bool {
		return visit(singleEdit(suggestion, "extrachar"))
	})
	if !cont {
		return false
	}

	cont = permute.ForgotChar(word, a.Try, func(suggestion string) bool {
		return visit(singleEdit(suggestion, "forgotchar"))
	})
	if !cont {
		return false
	}

	cont = permute.MoveChar(word, func(suggestion string) bool {
		return visit(singleEdit(suggestion, "movechar"))
	})
	if !cont {
		return false
	}

	cont = permute.BadChar(word, a.Try, func(suggestion string) bool {
		return visit(singleEdit(suggestion, "badchar"))
	})
	if !cont {
		return false
	}

	cont = permute.DoubleTwoChars(word, func(suggestion string) bool {
		return visit(singleEdit(suggestion, "doubletwochars"))
	})
	if !cont {
		return false
	}

	if !a.NoSplitSugs {
		cont = permute.TwoWords(word, func(first, second string) bool {
			return visit(edit{multi: &MultiWordSuggestion{Words: []string{first, second}, Source: "twowords", AllowDash: s.useDash()}})
		})
		if !cont {
			return false
		}
	}

	return true
}

// EditSuggestions runs Edits over word, keeps only the ones that check out
// as good (non-)compound words, and routes survivors through handleFound,
// stopping after limit accepted suggestions.
func (s *Suggester) EditSuggestions(word string, handleFound func(Suggestion, bool) []Suggestion, compounds bool, limit int) []Suggestion {
	allowAffix := !compounds
	allowCompound := compounds

	isGood := func(w string) bool {
		return s.isGoodSuggestion(w, allowAffix, allowCompound)
	}

	var out []Suggestion
	count := 0

	stop := func() bool { return count >= limit }

	s.Edits(word, func(e edit) bool {
		if e.multi != nil {
			allGood := true
			for _, w := range e.multi.Words {
				if !isGood(w) {
					allGood = false
					break
				}
			}
			if allGood {
				candidates := []Suggestion{e.multi.Stringify(" ")}
				if e.multi.AllowDash {
					candidates = append(candidates, e.multi.Stringify("-"))
				}
				for _, cand := range candidates {
					for _, res := range handleFound(cand, false) {
						out = append(out, res)
						count++
						if stop() {
							return false
						}
					}
				}
			}
		} else if isGood(e.single.Text) {
			for _, res := range handleFound(*e.single, false) {
				out = append(out, res)
				count++
				if stop() {
					return false
				}
			}
		}
		return true
	})

	return out
}

func (s *Suggester) useDash() bool {
	try := s.Aff.Try
	for _, r := range try {
		if r == '-' || r == 'a' {
			return true
		}
	}
	return false
}

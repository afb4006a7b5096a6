package suggest

import (
	"sort"
	"strings"

	"github.com/typocheck/hunspellgo/pkg/dic"
	"github.com/typocheck/hunspellgo/pkg/strutil"
)

const maxPhonetRoots = 100

// PhonetSuggest produces suggestions based on pronunciation similarity:
// dictionary stems are pre-filtered by plain n-gram similarity, scored by
// n-gram similarity of their PHONE-table metaphone encodings, and the best
// of those are ranked with the plain string similarity added in.
func PhonetSuggest(misspelling string, dictionaryWords []*dic.Word, table *strutil.PhonetTable) []string {
	misspelling = strings.ToLower(misspelling)
	misspellingPh := strutil.Metaphone(table, misspelling)

	scores := newTopK[string](maxPhonetRoots)

	for _, word := range dictionaryWords {
		if absInt(len([]rune(word.Stem))-len([]rune(misspelling))) > 3 {
			continue
		}

		nscore := rootScore(misspelling, word.Stem)
		for _, variant := range word.AltSpellings {
			if s := rootScore(misspelling, variant); s > nscore {
				nscore = s
			}
		}
		if nscore <= 2 {
			continue
		}

		score := 2 * strutil.NGram(3, misspellingPh, strutil.Metaphone(table, word.Stem), strutil.NGramOpts{LongerWorse: true})
		scores.push(score, word.Stem, word.Stem)
	}

	type ranked struct {
		score float64
		word  string
	}
	var finals []ranked
	for _, item := range scores.sortedDesc() {
		finals = append(finals, ranked{score: item.score + phonetFinalScore(misspelling, strings.ToLower(item.value)), word: item.value})
	}
	sort.SliceStable(finals, func(i, j int) bool { return finals[i].score > finals[j].score })

	out := make([]string, len(finals))
	for i, f := range finals {
		out[i] = f.word
	}
	return out
}

func phonetFinalScore(word1, word2 string) float64 {
	return float64(2*strutil.LCSLen(word1, word2)) - absFloat(float64(len([]rune(word1))-len([]rune(word2)))) + strutil.LeftCommonSubstring(word1, word2)
}

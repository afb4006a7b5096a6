package suggest

import (
	"container/heap"
	"sort"
	"strings"

	"github.com/typocheck/hunspellgo/pkg/aff"
	"github.com/typocheck/hunspellgo/pkg/dic"
	"github.com/typocheck/hunspellgo/pkg/strutil"
)

const (
	maxNgramRoots   = 100
	maxNgramGuesses = 200
)

// scoredItem is one entry of a bounded top-K heap: value is whatever
// payload the caller wants ranked, secondary breaks ties for determinism.
type scoredItem[T any] struct {
	score     float64
	secondary string
	value     T
}

type scoredHeap[T any] []scoredItem[T]

func (h scoredHeap[T]) Len() int            { return len(h) }
func (h scoredHeap[T]) Less(i, j int) bool  { return h[i].score < h[j].score }
func (h scoredHeap[T]) Swap(i, j int)       { h[i], h[j] = h[j], h[i] }
func (h *scoredHeap[T]) Push(x interface{}) { *h = append(*h, x.(scoredItem[T])) }
func (h *scoredHeap[T]) Pop() interface{} {
	old := *h
	n := len(old)
	item := old[n-1]
	*h = old[:n-1]
	return item
}

// topK keeps at most k highest-scored items pushed to it, like Python's
// heapq.heappushpop pattern in the reference ngram/phonet suggesters.
type topK[T any] struct {
	h   scoredHeap[T]
	cap int
}

func newTopK[T any](cap int) *topK[T] {
	return &topK[T]{cap: cap}
}

func (t *topK[T]) push(score float64, secondary string, value T) {
	if len(t.h) < t.cap {
		heap.Push(&t.h, scoredItem[T]{score, secondary, value})
		return
	}
	if score > t.h[0].score {
		heap.Pop(&t.h)
		heap.Push(&t.h, scoredItem[T]{score, secondary, value})
	}
}

// sortedDesc returns all items sorted by descending score (stable, ties
// broken by secondary key ascending, matching the reference's tuple sort).
func (t *topK[T]) sortedDesc() []scoredItem[T] {
	out := append(scoredHeap[T]{}, t.h...)
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].score != out[j].score {
			return out[i].score > out[j].score
		}
		return out[i].secondary < out[j].secondary
	})
	return out
}

// NgramSuggest produces candidate corrections by scoring the misspelling
// against every dictionary stem with n-gram overlap, then trying every
// affixed form of the best-scoring roots, per spylls' ngram_suggest.
func NgramSuggest(misspelling string, dictionaryWords []*dic.Word, a *aff.Aff, known map[string]bool, maxDiff int, onlyMaxDiff bool) []string {
	roots := newTopK[*dic.Word](maxNgramRoots)
	for _, word := range dictionaryWords {
		if absInt(len([]rune(word.Stem))-len([]rune(misspelling))) > 4 {
			continue
		}
		score := rootScore(misspelling, word.Stem)
		for _, variant := range word.AltSpellings {
			if s := rootScore(misspelling, variant); s > score {
				score = s
			}
		}
		roots.push(score, word.Stem, word)
	}

	threshold := detectThreshold(misspelling)

	type guess struct {
		compared string
		real     string
	}
	guesses := newTopK[guess](maxNgramGuesses)

	for _, item := range roots.sortedDesc() {
		root := item.value
		for _, variant := range root.AltSpellings {
			score := roughAffixScore(misspelling, variant)
			if score > threshold {
				guesses.push(score, variant, guess{compared: variant, real: root.Stem})
			}
		}
		for _, form := range formsFor(root, a, misspelling) {
			lower := strings.ToLower(form)
			score := roughAffixScore(misspelling, lower)
			if score > threshold {
				guesses.push(score, form, guess{compared: form, real: form})
			}
		}
	}

	var factor float64
	if maxDiff >= 0 {
		factor = (10.0 - float64(maxDiff)) / 5.0
	} else {
		factor = 1.0
	}

	finals := make([]finalGuess, 0, len(guesses.h))
	for _, g := range guesses.sortedDesc() {
		score := preciseAffixScore(misspelling, strings.ToLower(g.value.compared), factor, g.score)
		finals = append(finals, finalGuess{score: score, real: g.value.real})
	}
	sort.SliceStable(finals, func(i, j int) bool { return finals[i].score > finals[j].score })

	return filterGuesses(finals, known, onlyMaxDiff)
}

func rootScore(word1, word2 string) float64 {
	return strutil.NGram(3, word1, strings.ToLower(word2), strutil.NGramOpts{LongerWorse: true}) +
		strutil.LeftCommonSubstring(word1, strings.ToLower(word2))
}

func roughAffixScore(word1, word2 string) float64 {
	return strutil.NGram(len([]rune(word1)), word1, word2, strutil.NGramOpts{AnyMismatchPenalty: true}) +
		strutil.LeftCommonSubstring(word1, word2)
}

func preciseAffixScore(word1, word2 string, diffFactor, base float64) float64 {
	lcs := strutil.LCSLen(word1, word2)
	r1, r2 := []rune(word1), []rune(word2)

	if len(r1) == len(r2) && len(r1) == lcs {
		return base + 2000
	}

	result := float64(2*lcs) - absFloat(float64(len(r1)-len(r2)))
	result += strutil.LeftCommonSubstring(word1, word2)

	cps, isSwap := strutil.CommonCharacterPositions(word1, strings.ToLower(word2))
	if cps > 0 {
		result++
	}
	if isSwap {
		result += 10
	}

	result += strutil.NGram(4, word1, word2, strutil.NGramOpts{AnyMismatchPenalty: true})

	bigrams := strutil.NGram(2, word1, word2, strutil.NGramOpts{AnyMismatchPenalty: true, Weighted: true}) +
		strutil.NGram(2, word2, word1, strutil.NGramOpts{AnyMismatchPenalty: true, Weighted: true})
	result += bigrams

	if bigrams < float64(len(r1)+len(r2))*diffFactor {
		result -= 1000
	}

	return result
}

func detectThreshold(word string) float64 {
	r := []rune(word)
	var thresh float64
	for start := 1; start < 4; start++ {
		mangled := append([]rune{}, r...)
		for pos := start; pos < len(mangled); pos += 4 {
			mangled[pos] = '*'
		}
		thresh += strutil.NGram(len(r), word, string(mangled), strutil.NGramOpts{AnyMismatchPenalty: true})
	}
	return float64(int(thresh/3)) - 1
}

// formsFor produces every prefixed/suffixed/cross-product form of root
// whose affix looks compatible with the misspelling, without doing the
// full flag-compatibility checks lookup.AffixForms would (a cheap,
// approximate cousin used only to widen the n-gram candidate pool).
func formsFor(root *dic.Word, a *aff.Aff, similarTo string) []string {
	res := []string{root.Stem}

	var suffixes []*aff.Suffix
	var prefixes []*aff.Prefix
	for f := range root.Flags {
		for _, suf := range a.Suffixes[f] {
			if suf.MatchesCondition(root.Stem) && strings.HasSuffix(similarTo, suf.Add) {
				suffixes = append(suffixes, suf)
			}
		}
		for _, pre := range a.Prefixes[f] {
			if pre.MatchesCondition(root.Stem) && strings.HasPrefix(similarTo, pre.Add) {
				prefixes = append(prefixes, pre)
			}
		}
	}

	for _, suf := range suffixes {
		root2 := root.Stem
		if suf.Strip != "" && len([]rune(root2)) >= len([]rune(suf.Strip)) {
			root2 = string([]rune(root2)[:len([]rune(root2))-len([]rune(suf.Strip))])
		}
		res = append(res, root2+suf.Add)
	}

	for _, pre := range prefixes {
		for _, suf := range suffixes {
			if !pre.CrossProduct || !suf.CrossProduct {
				continue
			}
			rr := []rune(root.Stem)
			start := len([]rune(pre.Strip))
			end := len(rr)
			if suf.Strip != "" {
				end -= len([]rune(suf.Strip))
			}
			if start > end {
				continue
			}
			res = append(res, pre.Add+string(rr[start:end])+suf.Add)
		}
	}

	for _, pre := range prefixes {
		rr := []rune(root.Stem)
		start := len([]rune(pre.Strip))
		if start > len(rr) {
			continue
		}
		res = append(res, pre.Add+string(rr[start:]))
	}

	return res
}

// finalGuess pairs a fully-scored candidate with the suggestion text it
// would produce.
type finalGuess struct {
	score float64
	real  string
}

// filterGuesses walks finals in descending-score order, stopping once the
// "very good" (score>1000) bag is exhausted, allowing at most one
// "questionable" (score<-100) suggestion, and skipping anything that
// merely repeats an already-known suggestion substring.
func filterGuesses(finals []finalGuess, known map[string]bool, onlyMaxDiff bool) []string {
	var out []string
	seenBoundary := false
	found := 0

	for _, f := range finals {
		if seenBoundary && f.score <= 1000 {
			return out
		}
		if f.score > 1000 {
			seenBoundary = true
		} else if f.score < -100 {
			if found > 0 || onlyMaxDiff {
				return out
			}
			seenBoundary = true
		}

		isKnownSubstring := false
		for k := range known {
			if strings.Contains(f.real, k) {
				isKnownSubstring = true
				break
			}
		}
		if !isKnownSubstring {
			found++
			out = append(out, f.real)
		}
	}
	return out
}

func absInt(n int) int {
	if n < 0 {
		return -n
	}
	return n
}

func absFloat(f float64) float64 {
	if f < 0 {
		return -f
	}
	return f
}

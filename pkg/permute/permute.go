// Package permute generates the low-level string permutations shared by
// lookup's compound-boundary REP check and suggest's permutation tier:
// character replacement/swap/move/insert/delete, keyboard-adjacency typos,
// and the MAP/REP table-driven substitutions.
package permute

import (
	"strings"
	"unicode"

	"github.com/typocheck/hunspellgo/pkg/aff"
)

const maxCharDistance = 4

// ReplChars applies every REP-table pattern to word, calling visitWord
// with each resulting string, and additionally calling visitSplit with its
// two-word split whenever the replacement introduced a space (a REP entry
// like "alot" -> "a_lot" means "could be one word or two"). Either visitor
// may be nil. Stops as soon as either visitor returns false.
func ReplChars(word string, reptable []*aff.RepPattern, visitWord func(string) bool, visitSplit func(first, second string) bool) bool {
	if len([]rune(word)) < 2 || len(reptable) == 0 {
		return true
	}
	for _, pattern := range reptable {
		for _, suggestion := range pattern.Apply(word) {
			if visitWord != nil && !visitWord(suggestion) {
				return false
			}
			if visitSplit != nil && strings.Contains(suggestion, " ") {
				first, second, _ := strings.Cut(suggestion, " ")
				if !visitSplit(first, second) {
					return false
				}
			}
		}
	}
	return true
}

// MapChars recursively substitutes characters within the same MAP-table
// equivalence class, visiting every resulting string.
func MapChars(word string, maptable [][]string, visit func(string) bool) bool {
	if len([]rune(word)) < 2 || len(maptable) == 0 {
		return true
	}
	cont := true
	var walk func(word string, start int) bool
	walk = func(word string, start int) bool {
		if start >= len(word) {
			return true
		}
		for _, options := range maptable {
			for _, option := range options {
				pos := strings.Index(word[start:], option)
				if pos == -1 {
					continue
				}
				pos += start
				for _, other := range options {
					if other == option {
						continue
					}
					replaced := word[:pos] + other + word[pos+len(option):]
					if !visit(replaced) {
						return false
					}
					if !walk(replaced, pos+1) {
						return false
					}
				}
			}
		}
		return true
	}
	cont = walk(word, 0)
	return cont
}

// SwapChar visits every permutation with two adjacent characters swapped,
// and (for 4-5 letter words) the double-swap special case ("ahev"->"have").
func SwapChar(word string, visit func(string) bool) bool {
	r := []rune(word)
	n := len(r)
	if n < 2 {
		return true
	}
	for i := 0; i < n-1; i++ {
		swapped := string(r[:i]) + string(r[i+1]) + string(r[i]) + string(r[i+2:])
		if !visit(swapped) {
			return false
		}
	}
	if n == 4 || n == 5 {
		var mid string
		if n == 5 {
			mid = string(r[2])
		}
		cand := string(r[1]) + string(r[0]) + mid + string(r[n-1]) + string(r[n-2])
		if !visit(cand) {
			return false
		}
		if n == 5 {
			cand2 := string(r[0]) + string(r[2]) + string(r[1]) + string(r[n-1]) + string(r[n-2])
			if !visit(cand2) {
				return false
			}
		}
	}
	return true
}

// LongSwapChar visits every permutation with two characters 2 to
// maxCharDistance-1 positions apart swapped.
func LongSwapChar(word string, visit func(string) bool) bool {
	r := []rune(word)
	n := len(r)
	for first := 0; first < n-2; first++ {
		limit := first + maxCharDistance
		if limit > n {
			limit = n
		}
		for second := first + 2; second < limit; second++ {
			cand := string(r[:first]) + string(r[second]) + string(r[first+1:second]) + string(r[first]) + string(r[second+1:])
			if !visit(cand) {
				return false
			}
		}
	}
	return true
}

// BadCharKey visits permutations with each character upcased (if it was
// lowercase) or replaced by its keyboard-adjacent neighbor per layout (the
// KEY-table driven "fat finger" typo model).
func BadCharKey(word string, layout string, visit func(string) bool) bool {
	r := []rune(word)
	layoutR := []rune(layout)
	for i, c := range r {
		before := string(r[:i])
		after := string(r[i+1:])
		if unicode.ToUpper(c) != c {
			if !visit(before + string(unicode.ToUpper(c)) + after) {
				return false
			}
		}
		if len(layoutR) == 0 {
			continue
		}
		pos := indexRune(layoutR, c, 0)
		for pos != -1 {
			if pos > 0 && layoutR[pos-1] != '|' {
				if !visit(before + string(layoutR[pos-1]) + after) {
					return false
				}
			}
			if pos+1 < len(layoutR) && layoutR[pos+1] != '|' {
				if !visit(before + string(layoutR[pos+1]) + after) {
					return false
				}
			}
			pos = indexRune(layoutR, c, pos+1)
		}
	}
	return true
}

func indexRune(haystack []rune, needle rune, from int) int {
	for i := from; i < len(haystack); i++ {
		if haystack[i] == needle {
			return i
		}
	}
	return -1
}

// ExtraChar visits every permutation with one character removed.
func ExtraChar(word string, visit func(string) bool) bool {
	r := []rune(word)
	if len(r) < 2 {
		return true
	}
	for i := range r {
		if !visit(string(r[:i]) + string(r[i+1:])) {
			return false
		}
	}
	return true
}

// ForgotChar visits every permutation with one character from trystring
// inserted at every position.
func ForgotChar(word, trystring string, visit func(string) bool) bool {
	if trystring == "" {
		return true
	}
	r := []rune(word)
	for _, c := range trystring {
		for i := 0; i <= len(r); i++ {
			if !visit(string(r[:i]) + string(c) + string(r[i:])) {
				return false
			}
		}
	}
	return true
}

// MoveChar visits every permutation with one character moved 2 or 3 places.
func MoveChar(word string, visit func(string) bool) bool {
	r := []rune(word)
	n := len(r)
	if n < 2 {
		return true
	}
	for frompos, char := range r {
		limit := frompos + maxCharDistance + 1
		if limit > n {
			limit = n
		}
		for topos := frompos + 3; topos < limit; topos++ {
			cand := string(r[:frompos]) + string(r[frompos+1:topos]) + string(char) + string(r[topos:])
			if !visit(cand) {
				return false
			}
		}
	}
	for frompos := n - 1; frompos >= 0; frompos-- {
		lower := frompos - maxCharDistance + 1
		if lower < 0 {
			lower = 0
		}
		for topos := frompos - 2; topos >= lower; topos-- {
			cand := string(r[:topos]) + string(r[frompos]) + string(r[topos:frompos]) + string(r[frompos+1:])
			if !visit(cand) {
				return false
			}
		}
	}
	return true
}

// BadChar visits every permutation with each position replaced by every
// character in trystring (skipping positions already holding that char).
func BadChar(word, trystring string, visit func(string) bool) bool {
	if trystring == "" {
		return true
	}
	r := []rune(word)
	for _, c := range trystring {
		for i := len(r) - 1; i >= 0; i-- {
			if r[i] == c {
				continue
			}
			if !visit(string(r[:i]) + string(c) + string(r[i+1:])) {
				return false
			}
		}
	}
	return true
}

// DoubleTwoChars visits permutations that undo an accidental two-letter
// doubling ("vacacation" -> "vacation").
func DoubleTwoChars(word string, visit func(string) bool) bool {
	r := []rune(word)
	if len(r) < 5 {
		return true
	}
	for i := 3; i < len(r); i++ {
		if r[i-2] == r[i] && r[i-3] == r[i-1] {
			if !visit(string(r[:i-1]) + string(r[i+1:])) {
				return false
			}
		}
	}
	return true
}

// TwoWords visits every split of word into two non-empty halves.
func TwoWords(word string, visit func(first, second string) bool) bool {
	r := []rune(word)
	for i := 1; i < len(r); i++ {
		if !visit(string(r[:i]), string(r[i:])) {
			return false
		}
	}
	return true
}

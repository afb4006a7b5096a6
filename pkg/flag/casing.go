package flag

import (
	"strings"
	"unicode"
)

// CapType classifies the casing pattern of a word.
type CapType int

const (
	// NO means no letter is capitalized ("foo").
	NO CapType = iota
	// INIT means only the first letter is capitalized ("Foo").
	INIT
	// ALL means every (cased) letter is capitalized ("FOO").
	ALL
	// HUHINIT is mixed case, first letter capitalized ("FooBar").
	HUHINIT
	// HUH is mixed case, first letter lowercase ("fooBar").
	HUH
)

func (c CapType) String() string {
	switch c {
	case NO:
		return "NO"
	case INIT:
		return "INIT"
	case ALL:
		return "ALL"
	case HUHINIT:
		return "HUHINIT"
	case HUH:
		return "HUH"
	default:
		return "?"
	}
}

// Casing collects the language-specific casing behavior lookup and suggest
// both need: guessing a word's CapType, producing the lowercase/uppercase/
// titlecase forms to test against the dictionary, and coercing a suggestion
// back to the misspelling's original case. Most languages use Default; a
// handful need German's ß/SS ambiguity or Turkic's dotted/dotless I.
type Casing interface {
	Guess(word string) CapType
	// Lower returns every plausible lowercasing of word. More than one
	// result only happens for German (ß vs ss ambiguity).
	Lower(word string) []string
	Upper(word string) string
	// Capitalize returns every plausible titlecasing of word (first
	// rune upper, the rest from Lower).
	Capitalize(word string) []string
	// LowerFirst lowercases only the first rune, keeping the rest as-is.
	LowerFirst(word string) []string
	// Variants returns the word's CapType and the forms lookup should
	// try against the dictionary, assuming word IS correctly spelled.
	Variants(word string) (CapType, []string)
	// Corrections is like Variants but casts a wider net, for suggest,
	// which must also handle misspelled casing.
	Corrections(word string) (CapType, []string)
	// Coerce renders a dictionary-cased suggestion in the casing implied
	// by cap (the misspelling's CapType).
	Coerce(word string, cap CapType) string
}

// Default implements Casing for languages without special casing quirks.
type Default struct{}

func (Default) Guess(word string) CapType {
	if word == "" {
		return NO
	}
	runes := []rune(word)
	if isAllLower(runes) {
		return NO
	}
	if isAllUpper(runes) {
		return ALL
	}
	if unicode.IsUpper(runes[0]) {
		if isAllLower(runes[1:]) {
			return INIT
		}
		return HUHINIT
	}
	return HUH
}

func (Default) Lower(word string) []string {
	if word == "" {
		return nil
	}
	return []string{strings.ToLower(word)}
}

func (Default) Upper(word string) string {
	return strings.ToUpper(word)
}

func (d Default) Capitalize(word string) []string {
	if word == "" {
		return nil
	}
	runes := []rune(word)
	first := strings.ToUpper(string(runes[0]))
	rest := d.Lower(string(runes[1:]))
	out := make([]string, 0, len(rest))
	for _, r := range rest {
		out = append(out, first+r)
	}
	if len(rest) == 0 && len(runes) == 1 {
		out = append(out, first)
	}
	return out
}

func (d Default) LowerFirst(word string) []string {
	if word == "" {
		return nil
	}
	runes := []rune(word)
	firsts := d.Lower(string(runes[0]))
	out := make([]string, 0, len(firsts))
	for _, f := range firsts {
		out = append(out, f+string(runes[1:]))
	}
	return out
}

func (d Default) Variants(word string) (CapType, []string) {
	cap := d.Guess(word)
	switch cap {
	case NO, HUH:
		return cap, []string{word}
	case INIT:
		return cap, append([]string{word}, d.Lower(word)...)
	case HUHINIT:
		return cap, append([]string{word}, d.LowerFirst(word)...)
	case ALL:
		out := []string{word}
		out = append(out, d.Lower(word)...)
		out = append(out, d.Capitalize(word)...)
		return cap, out
	}
	return cap, []string{word}
}

func (d Default) Corrections(word string) (CapType, []string) {
	cap := d.Guess(word)
	switch cap {
	case NO:
		return cap, []string{word}
	case INIT:
		return cap, append([]string{word}, d.Lower(word)...)
	case HUHINIT:
		out := []string{word}
		out = append(out, d.LowerFirst(word)...)
		out = append(out, d.Lower(word)...)
		out = append(out, d.Capitalize(word)...)
		return cap, out
	case HUH:
		return cap, append([]string{word}, d.Lower(word)...)
	case ALL:
		out := []string{word}
		out = append(out, d.Lower(word)...)
		out = append(out, d.Capitalize(word)...)
		return cap, out
	}
	return cap, []string{word}
}

func (d Default) Coerce(word string, cap CapType) string {
	switch cap {
	case INIT, HUHINIT:
		if word == "" {
			return word
		}
		runes := []rune(word)
		return strings.ToUpper(string(runes[0])) + string(runes[1:])
	case ALL:
		return d.Upper(word)
	default:
		return word
	}
}

// Turkic implements Casing for Turkish, Azerbaijani and Crimean Tatar,
// whose dotted/dotless I pairs don't fold the way ASCII does: "i" upcases
// to "İ", and "I" downcases to "ı".
type Turkic struct{ Default }

var turkicUpperToLower = strings.NewReplacer("İ", "i", "I", "ı")
var turkicLowerToUpper = strings.NewReplacer("i", "İ", "ı", "I")

func (t Turkic) Lower(word string) []string {
	return t.Default.Lower(turkicUpperToLower.Replace(word))
}

func (t Turkic) Upper(word string) string {
	return t.Default.Upper(turkicLowerToUpper.Replace(word))
}

// German implements Casing for German's CHECKSHARPS behavior: an uppercase
// "SS" may have been lowercased from either "ss" or "ß", so both must be
// tried; also, an uppercased word may legitimately contain "ß" itself
// ("STRASSE" vs "STRAßE" guess the same CapType).
type German struct{ Default }

func (g German) Lower(word string) []string {
	lowered := g.Default.Lower(word)[0]
	if !strings.Contains(word, "SS") {
		return []string{lowered}
	}
	variants := sharpSVariants(lowered, 0)
	return append(variants, lowered)
}

func (g German) Guess(word string) CapType {
	base := g.Default.Guess(word)
	if base != ALL && strings.Contains(word, "ß") {
		if g.Default.Guess(strings.ReplaceAll(word, "ß", "")) == ALL {
			return ALL
		}
	}
	return base
}

func sharpSVariants(text string, start int) []string {
	pos := strings.Index(text[start:], "ss")
	if pos == -1 {
		return nil
	}
	pos += start
	replaced := text[:pos] + "ß" + text[pos+2:]
	out := []string{replaced}
	out = append(out, sharpSVariants(replaced, pos+1)...)
	out = append(out, sharpSVariants(text, pos+2)...)
	return out
}

func isAllLower(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsUpper(r) {
			return false
		}
	}
	return true
}

func isAllUpper(runes []rune) bool {
	seenCased := false
	for _, r := range runes {
		if unicode.IsLower(r) {
			return false
		}
		if unicode.IsUpper(r) {
			seenCased = true
		}
	}
	return seenCased
}

// ForLanguage picks the Casing implementation per spec.md §4.1 / §9: German
// collation wins if CHECKSHARPS is set, else Turkic collation for the
// tr/az/crh language family, else the default.
func ForLanguage(lang string, checkSharps bool) Casing {
	if checkSharps {
		return German{}
	}
	switch lang {
	case "tr", "tr_TR", "az", "az_AZ", "crh", "crh_UA":
		return Turkic{}
	default:
		return Default{}
	}
}

package suggest

import (
	"strings"

	"github.com/typocheck/hunspellgo/pkg/flag"
)

// Suggestions runs the full suggestion search: cheap character edits
// first (split into a non-compound pass and, if nothing definitive was
// found, a compound pass), then a dash-chunk retry, then the slower
// n-gram and phonetic similarity passes — stopping as soon as a
// sufficiently good class of suggestion has been produced.
func (s *Suggester) Suggestions(word string) []Suggestion {
	var result []Suggestion
	handled := make(map[string]bool)
	var handledOrder []string

	captype, variants := s.Aff.Casing.Corrections(word)

	handleFound := func(sug Suggestion, checkInclusion bool) []Suggestion {
		text := sug.Text

		keepCase := s.Aff.KeepCase != "" && s.Dic.HasFlag(text, s.Aff.KeepCase, false) &&
			!(s.Aff.CheckSharps && strings.Contains(text, "ß"))
		if !keepCase {
			text = s.Aff.Casing.Coerce(text, captype)
			if text != sug.Text && s.isForbidden(text) {
				text = sug.Text
			}
			if (captype == flag.HUH || captype == flag.HUHINIT) && strings.Contains(text, " ") {
				pos := strings.Index(text, " ")
				wr := []rune(word)
				tr := []rune(text)
				if pos+1 < len(tr) && pos < len(wr) && tr[pos+1] != wr[pos] &&
					strings.EqualFold(string(tr[pos+1]), string(wr[pos])) {
					tr[pos+1] = wr[pos]
					text = string(tr)
				}
			}
		}

		if s.isForbidden(text) {
			return nil
		}

		if s.Aff.OCONV != nil {
			text = s.Aff.OCONV.Apply(text)
		}

		if handled[text] {
			return nil
		}

		if checkInclusion {
			lower := strings.ToLower(text)
			for _, prev := range handledOrder {
				if strings.Contains(lower, strings.ToLower(prev)) {
					return nil
				}
			}
		}

		handled[text] = true
		handledOrder = append(handledOrder, text)
		return []Suggestion{{Text: text, Kind: sug.Kind}}
	}

	if s.Aff.ForceUCase != "" && captype == flag.NO {
		for _, capitalized := range s.Aff.Casing.Capitalize(word) {
			if s.isGoodSuggestion(capitalized, true, true) {
				result = append(result, handleFound(Suggestion{Text: capitalized, Kind: "forceucase"}, false)...)
				return result
			}
		}
	}

	goodEditsFound := false

	for idx, variant := range variants {
		if idx > 0 && s.isGoodSuggestion(variant, true, true) {
			result = append(result, handleFound(Suggestion{Text: variant, Kind: "case"}, false)...)
		}

		nocompound := false

		for _, sug := range s.EditSuggestions(variant, handleFound, false, MaxSuggestions) {
			result = append(result, sug)
			if goodEditKinds[sug.Kind] {
				goodEditsFound = true
			}
			if sug.Kind == "uppercase" || sug.Kind == "replchars" || sug.Kind == "mapchars" {
				nocompound = true
			}
			if sug.Kind == "spaceword" {
				return result
			}
		}

		if !nocompound {
			for _, sug := range s.EditSuggestions(variant, handleFound, true, s.Aff.MaxCpdSugs) {
				result = append(result, sug)
				if goodEditKinds[sug.Kind] {
					goodEditsFound = true
				}
			}
		}
	}

	if goodEditsFound {
		return result
	}

	if strings.Contains(word, "-") {
		anyDash := false
		for _, h := range handledOrder {
			if strings.Contains(h, "-") {
				anyDash = true
				break
			}
		}
		if !anyDash {
			chunks := strings.Split(word, "-")
			for idx, chunk := range chunks {
				if s.isGoodSuggestion(chunk, true, true) {
					continue
				}
				for _, sub := range s.Suggestions(chunk) {
					parts := append(append([]string{}, chunks[:idx]...), sub.Text)
					parts = append(parts, chunks[idx+1:]...)
					candidate := strings.Join(parts, "-")
					if s.Lookup.Check(candidate) {
						result = append(result, Suggestion{Text: candidate, Kind: "dashes"})
					}
				}
				break
			}
		}
	}

	if s.Aff.MaxNgramSugs != 0 {
		known := make(map[string]bool, len(handledOrder))
		for _, h := range handledOrder {
			known[strings.ToLower(h)] = true
		}
		ngramSeen := 0
		for _, sug := range NgramSuggest(strings.ToLower(word), s.wordsForNgram, s.Aff, known, s.Aff.MaxDiff, s.Aff.OnlyMaxDiff) {
			for _, res := range handleFound(Suggestion{Text: sug, Kind: "ngram"}, true) {
				result = append(result, res)
				ngramSeen++
			}
			if ngramSeen >= s.Aff.MaxNgramSugs {
				break
			}
		}
	}

	if s.Aff.Phone != nil {
		phonetSeen := 0
		for _, sug := range PhonetSuggest(word, s.wordsForNgram, s.Aff.Phone) {
			for _, res := range handleFound(Suggestion{Text: sug, Kind: "phonet"}, true) {
				result = append(result, res)
				phonetSeen++
			}
			if phonetSeen >= MaxPhonetSuggestions {
				break
			}
		}
	}

	return result
}

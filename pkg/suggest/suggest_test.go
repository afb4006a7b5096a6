package suggest

import (
	"strings"
	"testing"

	"github.com/typocheck/hunspellgo/pkg/aff"
	"github.com/typocheck/hunspellgo/pkg/dic"
	"github.com/typocheck/hunspellgo/pkg/lookup"
)

const sampleAff = `SET UTF-8
TRY esianrtolcdugmphbyfvkwz
`

const sampleDic = `3
cat
hello
world
`

func build(t *testing.T) *Suggester {
	t.Helper()
	a, err := aff.Load(strings.NewReader(sampleAff))
	if err != nil {
		t.Fatalf("aff.Load: %v", err)
	}
	d, err := dic.Load(strings.NewReader(sampleDic), a)
	if err != nil {
		t.Fatalf("dic.Load: %v", err)
	}
	lu := lookup.New(a, d)
	return New(a, d, lu)
}

func TestSuggestFindsUppercaseCorrection(t *testing.T) {
	s := build(t)
	got := s.Suggest("CAAT")
	found := false
	for _, sug := range got {
		if sug == "CAT" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggest(CAAT) = %v, expected to include %q", got, "CAT")
	}
}

func TestSuggestMissingLetter(t *testing.T) {
	s := build(t)
	got := s.Suggest("helo")
	found := false
	for _, sug := range got {
		if sug == "hello" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggest(helo) = %v, expected to include %q", got, "hello")
	}
}

func TestUseDash(t *testing.T) {
	s := build(t)
	// The sample TRY table contains 'a', which useDash treats as a signal
	// that the language's alphabet allows dash-joined compounds.
	if !s.useDash() {
		t.Error("useDash() should be true: TRY table contains 'a'")
	}
}

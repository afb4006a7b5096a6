package hunspell

import (
	"strings"
	"testing"

	"github.com/typocheck/hunspellgo/pkg/aff"
	"github.com/typocheck/hunspellgo/pkg/dic"
	"github.com/typocheck/hunspellgo/pkg/lookup"
	"github.com/typocheck/hunspellgo/pkg/suggest"
)

const testAff = `SET UTF-8
TRY esianrtolcdugmphbyfvkwzESIANRTOLCDUGMPHBYFVKWZ
SFX S Y 1
SFX S 0 s .
PFX U Y 1
PFX U 0 un .
`

const testDic = `4
cat/S
dog/S
happy/U
walk
`

// open builds a Dictionary directly from in-memory strings so tests don't
// depend on any on-disk fixture.
func open(t *testing.T) *Dictionary {
	t.Helper()
	a, err := aff.Load(strings.NewReader(testAff))
	if err != nil {
		t.Fatalf("aff.Load: %v", err)
	}
	d, err := dic.Load(strings.NewReader(testDic), a)
	if err != nil {
		t.Fatalf("dic.Load: %v", err)
	}
	lu := lookup.New(a, d)
	return &Dictionary{Aff: a, Dic: d, lookup: lu, suggester: suggest.New(a, d, lu)}
}

func TestCheckKnownWords(t *testing.T) {
	h := open(t)
	for _, word := range []string{"cat", "cats", "dog", "dogs", "walk", "happy", "unhappy"} {
		if !h.Check(word) {
			t.Errorf("Check(%q) = false, want true", word)
		}
	}
}

func TestCheckUnknownWord(t *testing.T) {
	h := open(t)
	if h.Check("xyzzy") {
		t.Error("Check(xyzzy) = true, want false")
	}
}

func TestSuggestCorrectWordIsNil(t *testing.T) {
	h := open(t)
	if got := h.Suggest("cat"); got != nil {
		t.Errorf("Suggest(cat) = %v, want nil", got)
	}
}

func TestSuggestTypoFindsRoot(t *testing.T) {
	h := open(t)
	suggestions := h.Suggest("caat")
	found := false
	for _, s := range suggestions {
		if s == "cat" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggest(caat) = %v, expected to include %q", suggestions, "cat")
	}
}

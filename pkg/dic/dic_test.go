package dic

import (
	"strings"
	"testing"

	"github.com/typocheck/hunspellgo/pkg/aff"
)

const sampleAff = `SET UTF-8
SFX S Y 1
SFX S 0 s .
`

const sampleDic = `3
cat/S
dog/S
the ph:teh
`

func TestLoadIndexesWordsAndAltSpellings(t *testing.T) {
	a, err := aff.Load(strings.NewReader(sampleAff))
	if err != nil {
		t.Fatalf("aff.Load: %v", err)
	}
	d, err := Load(strings.NewReader(sampleDic), a)
	if err != nil {
		t.Fatalf("dic.Load: %v", err)
	}

	if homonyms := d.Homonyms("cat", false); len(homonyms) != 1 {
		t.Fatalf("Homonyms(cat) = %v, want exactly one entry", homonyms)
	}
	if !d.HasFlag("cat", "S", false) {
		t.Error("expected cat to carry flag S")
	}
	if d.HasFlag("cat", "X", false) {
		t.Error("did not expect cat to carry flag X")
	}
}

func TestHomonymsUnknownStem(t *testing.T) {
	d := New()
	if got := d.Homonyms("nope", false); got != nil {
		t.Errorf("Homonyms(nope) = %v, want nil", got)
	}
}

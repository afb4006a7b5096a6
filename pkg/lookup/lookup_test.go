package lookup

import (
	"strings"
	"testing"

	"github.com/typocheck/hunspellgo/pkg/aff"
	"github.com/typocheck/hunspellgo/pkg/dic"
)

const sampleAff = `SET UTF-8
SFX S Y 1
SFX S 0 s .
PFX U Y 1
PFX U 0 un .
`

const sampleDic = `2
cat/S
happy/U
`

func build(t *testing.T) *Lookup {
	t.Helper()
	a, err := aff.Load(strings.NewReader(sampleAff))
	if err != nil {
		t.Fatalf("aff.Load: %v", err)
	}
	d, err := dic.Load(strings.NewReader(sampleDic), a)
	if err != nil {
		t.Fatalf("dic.Load: %v", err)
	}
	return New(a, d)
}

func TestCheckStemAndSuffixedForm(t *testing.T) {
	l := build(t)
	if !l.Check("cat") {
		t.Error("Check(cat) = false, want true")
	}
	if !l.Check("cats") {
		t.Error("Check(cats) = false, want true")
	}
}

func TestCheckPrefixedForm(t *testing.T) {
	l := build(t)
	if !l.Check("unhappy") {
		t.Error("Check(unhappy) = false, want true")
	}
}

func TestCheckRejectsUnknownWord(t *testing.T) {
	l := build(t)
	if l.Check("zzzqx") {
		t.Error("Check(zzzqx) = true, want false")
	}
}

func TestCheckRejectsWrongAffix(t *testing.T) {
	l := build(t)
	// "cat" only carries suffix flag S, never prefix flag U.
	if l.Check("uncat") {
		t.Error("Check(uncat) = true, want false (cat has no prefix flag)")
	}
}

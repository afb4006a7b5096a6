package aff

import (
	"strings"
	"testing"
)

const sampleAff = `SET UTF-8
TRY esianrtolcdugmphbyfvkwz
REP 1
REP ph f
SFX S Y 1
SFX S 0 s .
`

func TestLoadParsesDirectives(t *testing.T) {
	a, err := Load(strings.NewReader(sampleAff))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if a.Try == "" {
		t.Error("expected TRY to be populated")
	}
	if len(a.Rep) != 1 || a.Rep[0].Pattern != "ph" || a.Rep[0].Replacement != "f" {
		t.Errorf("Rep = %v, want one pattern ph->f", a.Rep)
	}
	suffixes, ok := a.Suffixes["S"]
	if !ok || len(suffixes) != 1 {
		t.Fatalf("Suffixes[S] = %v, want exactly one entry", suffixes)
	}
	if !suffixes[0].MatchesCondition("cat") {
		t.Error("expected the unconditional suffix S to match any stem")
	}
}

func TestLoadRejectsGarbageLine(t *testing.T) {
	// A bare PFX header and a PFX row missing its fields are both malformed;
	// Load must return an error (the first one met) rather than panic.
	const bad = "PFX\nPFX A Y 1\nPFX A 0\n"
	if _, err := Load(strings.NewReader(bad)); err == nil {
		t.Error("expected Load to reject a malformed PFX entry")
	}
}

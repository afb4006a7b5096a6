package flag

import (
	"reflect"
	"testing"
)

func TestParseSyntax(t *testing.T) {
	cases := []struct {
		in      string
		want    Syntax
		wantErr bool
	}{
		{"", Short, false},
		{"short", Short, false},
		{"long", Long, false},
		{"num", Numeric, false},
		{"UTF-8", UTF8, false},
		{"utf8", UTF8, false},
		{"bogus", Short, true},
	}
	for _, c := range cases {
		got, err := ParseSyntax(c.in)
		if (err != nil) != c.wantErr {
			t.Errorf("ParseSyntax(%q) error = %v, wantErr %v", c.in, err, c.wantErr)
		}
		if got != c.want {
			t.Errorf("ParseSyntax(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestParse(t *testing.T) {
	cases := []struct {
		name   string
		raw    string
		syntax Syntax
		want   []Flag
	}{
		{"empty", "", Short, nil},
		{"short", "ABC", Short, []Flag{"A", "B", "C"}},
		{"long", "AaBb", Long, []Flag{"Aa", "Bb"}},
		{"numeric", "1,2,3", Numeric, []Flag{"1", "2", "3"}},
		{"utf8", "ö ü", UTF8, []Flag{"ö", " ", "ü"}},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			got, err := Parse(c.raw, c.syntax)
			if err != nil {
				t.Fatalf("Parse(%q, %v) error: %v", c.raw, c.syntax, err)
			}
			if !reflect.DeepEqual(got, c.want) {
				t.Errorf("Parse(%q, %v) = %v, want %v", c.raw, c.syntax, got, c.want)
			}
		})
	}
}

func TestParseLongOddLength(t *testing.T) {
	if _, err := Parse("AaB", Long); err == nil {
		t.Error("expected an error for an odd-length long flag string")
	}
}

func TestSetMembership(t *testing.T) {
	s := NewSet("A", "B")

	if !s.Has("A") {
		t.Error("expected set to contain A")
	}
	if s.Has("C") {
		t.Error("expected set to not contain C")
	}
	if s.Has("") {
		t.Error("empty flag should never be a member")
	}

	if !s.HasAny([]Flag{"X", "B"}) {
		t.Error("HasAny should find B")
	}
	if s.HasAny([]Flag{"X", "Y"}) {
		t.Error("HasAny should not find X or Y")
	}

	if !s.HasAll([]Flag{"A", "B"}) {
		t.Error("HasAll should be true for subset")
	}
	if s.HasAll([]Flag{"A", "C"}) {
		t.Error("HasAll should be false when a flag is missing")
	}

	union := s.Union(NewSet("C"))
	if !union.HasAll([]Flag{"A", "B", "C"}) {
		t.Error("Union should contain flags from both sets")
	}

	s.Add("D")
	if !s.Has("D") {
		t.Error("Add should insert the flag")
	}
	s.Add("")
	if s.Has("") {
		t.Error("Add should ignore the empty flag")
	}

	if got := s.Slice(); len(got) != len(s) {
		t.Errorf("Slice length = %d, want %d", len(got), len(s))
	}
}

func TestParseSet(t *testing.T) {
	set, err := ParseSet("AB", Short)
	if err != nil {
		t.Fatalf("ParseSet error: %v", err)
	}
	if !set.Has("A") || !set.Has("B") {
		t.Errorf("ParseSet(%q) = %v, missing expected flags", "AB", set)
	}
}

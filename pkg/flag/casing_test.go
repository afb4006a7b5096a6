package flag

import "testing"

func TestDefaultGuess(t *testing.T) {
	d := Default{}
	cases := map[string]CapType{
		"":       NO,
		"foo":    NO,
		"Foo":    INIT,
		"FOO":    ALL,
		"FooBar": HUHINIT,
		"fooBar": HUH,
	}
	for word, want := range cases {
		if got := d.Guess(word); got != want {
			t.Errorf("Guess(%q) = %v, want %v", word, got, want)
		}
	}
}

func TestDefaultCoerce(t *testing.T) {
	d := Default{}
	if got := d.Coerce("hello", INIT); got != "Hello" {
		t.Errorf("Coerce(INIT) = %q, want %q", got, "Hello")
	}
	if got := d.Coerce("hello", ALL); got != "HELLO" {
		t.Errorf("Coerce(ALL) = %q, want %q", got, "HELLO")
	}
	if got := d.Coerce("hello", NO); got != "hello" {
		t.Errorf("Coerce(NO) = %q, want %q", got, "hello")
	}
}

func TestTurkicCasing(t *testing.T) {
	tk := Turkic{}
	if got := tk.Upper("iyi"); got != "İYİ" {
		t.Errorf("Turkic.Upper(iyi) = %q, want %q", got, "İYİ")
	}
	lowered := tk.Lower("İYİ")
	if len(lowered) != 1 || lowered[0] != "iyi" {
		t.Errorf("Turkic.Lower(İYİ) = %v, want [iyi]", lowered)
	}
}

func TestGermanSharpSVariants(t *testing.T) {
	g := German{}
	variants := g.Lower("STRASSE")
	found := false
	for _, v := range variants {
		if v == "straße" {
			found = true
		}
	}
	if !found {
		t.Errorf("German.Lower(STRASSE) = %v, expected straße among variants", variants)
	}
}

func TestForLanguage(t *testing.T) {
	if _, ok := ForLanguage("tr_TR", false).(Turkic); !ok {
		t.Error("ForLanguage(tr_TR) should select Turkic")
	}
	if _, ok := ForLanguage("en_US", true).(German); !ok {
		t.Error("ForLanguage with checkSharps should select German regardless of language")
	}
	if _, ok := ForLanguage("en_US", false).(Default); !ok {
		t.Error("ForLanguage(en_US) should select Default")
	}
}

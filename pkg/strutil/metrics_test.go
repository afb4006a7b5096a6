package strutil

import "testing"

func TestLeftCommonSubstring(t *testing.T) {
	cases := []struct{ s1, s2 string; want float64 }{
		{"hello", "help", 3},
		{"abc", "abc", 3},
		{"", "abc", 0},
		{"xyz", "abc", 0},
	}
	for _, c := range cases {
		if got := LeftCommonSubstring(c.s1, c.s2); got != c.want {
			t.Errorf("LeftCommonSubstring(%q, %q) = %v, want %v", c.s1, c.s2, got, c.want)
		}
	}
}

func TestLCSLen(t *testing.T) {
	cases := []struct {
		s1, s2 string
		want   int
	}{
		{"abcde", "ace", 3},
		{"abc", "abc", 3},
		{"", "abc", 0},
		{"abc", "xyz", 0},
	}
	for _, c := range cases {
		if got := LCSLen(c.s1, c.s2); got != c.want {
			t.Errorf("LCSLen(%q, %q) = %d, want %d", c.s1, c.s2, got, c.want)
		}
	}
}

func TestCommonCharacterPositions(t *testing.T) {
	num, swap := CommonCharacterPositions("abcd", "abdc")
	if num != 2 {
		t.Errorf("num = %d, want 2", num)
	}
	if !swap {
		t.Error("expected swap detection for abcd/abdc")
	}

	num2, swap2 := CommonCharacterPositions("abcd", "wxyz")
	if num2 != 0 || swap2 {
		t.Errorf("CommonCharacterPositions(abcd, wxyz) = (%d, %v), want (0, false)", num2, swap2)
	}
}

func TestNGramIdentical(t *testing.T) {
	score := NGram(3, "hello", "hello", NGramOpts{})
	if score <= 0 {
		t.Errorf("NGram of identical strings should be positive, got %v", score)
	}
}

func TestNGramLongerWorsePenalizesLengthGap(t *testing.T) {
	close := NGram(3, "hello", "hallo", NGramOpts{LongerWorse: true})
	far := NGram(3, "hello", "hellothisismuchlonger", NGramOpts{LongerWorse: true})
	if far >= close {
		t.Errorf("expected a much longer string to score lower: far=%v close=%v", far, close)
	}
}

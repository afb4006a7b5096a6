package permute

import "testing"

func collect(run func(visit func(string) bool) bool) []string {
	var out []string
	run(func(s string) bool {
		out = append(out, s)
		return true
	})
	return out
}

func contains(haystack []string, needle string) bool {
	for _, h := range haystack {
		if h == needle {
			return true
		}
	}
	return false
}

func TestSwapChar(t *testing.T) {
	got := collect(func(visit func(string) bool) bool { return SwapChar("ab", visit) })
	if !contains(got, "ba") {
		t.Errorf("SwapChar(ab) = %v, expected to contain %q", got, "ba")
	}
}

func TestExtraChar(t *testing.T) {
	got := collect(func(visit func(string) bool) bool { return ExtraChar("cats", visit) })
	if !contains(got, "cat") && !contains(got, "ats") {
		t.Errorf("ExtraChar(cats) = %v, expected a one-letter-shorter word", got)
	}
}

func TestForgotChar(t *testing.T) {
	got := collect(func(visit func(string) bool) bool { return ForgotChar("ct", "abcdefghijklmnopqrstuvwxyz", visit) })
	if !contains(got, "cat") {
		t.Errorf("ForgotChar(ct) = %v, expected to contain %q", got, "cat")
	}
}

func TestMoveChar(t *testing.T) {
	got := collect(func(visit func(string) bool) bool { return MoveChar("abcd", visit) })
	if len(got) == 0 {
		t.Error("MoveChar(abcd) produced no candidates")
	}
}

func TestDoubleTwoChars(t *testing.T) {
	got := collect(func(visit func(string) bool) bool { return DoubleTwoChars("vacacation", visit) })
	if !contains(got, "vacation") {
		t.Errorf("DoubleTwoChars(vacacation) = %v, expected to contain %q", got, "vacation")
	}
}

func TestTwoWords(t *testing.T) {
	var pairs [][2]string
	TwoWords("icecream", func(first, second string) bool {
		pairs = append(pairs, [2]string{first, second})
		return true
	})
	found := false
	for _, p := range pairs {
		if p[0] == "ice" && p[1] == "cream" {
			found = true
		}
	}
	if !found {
		t.Errorf("TwoWords(icecream) = %v, expected to include (ice, cream)", pairs)
	}
}

func TestVisitorStopsEarly(t *testing.T) {
	count := 0
	cont := SwapChar("abcdef", func(string) bool {
		count++
		return false
	})
	if cont {
		t.Error("SwapChar should report false once visit returns false")
	}
	if count != 1 {
		t.Errorf("visit called %d times, want exactly 1 after early stop", count)
	}
}

package utils

import "testing"

func TestStringToInt(t *testing.T) {
	if got := StringToInt("12"); got != 12 {
		t.Errorf("StringToInt(12) = %d", got)
	}
	if got := StringToInt("abc"); got != 0 {
		t.Errorf("StringToInt(abc) = %d, want 0", got)
	}
}

func TestStringToUint(t *testing.T) {
	if got := StringToUint("42"); got != 42 {
		t.Errorf("StringToUint(42) = %d", got)
	}
	for _, bad := range []string{"-1", "abc", "", "1.5"} {
		if got := StringToUint(bad); got != 0 {
			t.Errorf("StringToUint(%q) = %d, want 0", bad, got)
		}
	}
}

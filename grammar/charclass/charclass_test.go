package charclass

import "testing"

func TestMatchesBareLetters(t *testing.T) {
	for _, s := range []string{"", "a", "b", "aabba"} {
		if !Matches(s) {
			t.Errorf("expected %q to match", s)
		}
	}
}

func TestMatchesBracketedClasses(t *testing.T) {
	for _, s := range []string{"[ab]", "[]", "[aabb]", "a[ab]b"} {
		if !Matches(s) {
			t.Errorf("expected %q to match", s)
		}
	}
}

func TestRejectsUnknownCharacters(t *testing.T) {
	for _, s := range []string{"c", "[c]", "[a"} {
		if Matches(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

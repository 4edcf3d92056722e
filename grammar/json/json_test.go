package json

import "testing"

func TestMatchesScalars(t *testing.T) {
	for _, s := range []string{"true", "false", "null", "0", "42", "-7", "3.14", "1e10", `""`, `"abc"`} {
		if !Matches(s) {
			t.Errorf("expected %q to be a well-formed JSON value", s)
		}
	}
}

func TestMatchesArrays(t *testing.T) {
	for _, s := range []string{"[]", "[1]", "[1,2,3]", `["a","b"]`, "[[1],[2]]"} {
		if !Matches(s) {
			t.Errorf("expected %q to be a well-formed JSON value", s)
		}
	}
}

func TestMatchesObjects(t *testing.T) {
	for _, s := range []string{"{}", `{"a":1}`, `{"a":1,"b":2}`, `{"a":{"b":2}}`} {
		if !Matches(s) {
			t.Errorf("expected %q to be a well-formed JSON value", s)
		}
	}
}

func TestRejectsMalformed(t *testing.T) {
	for _, s := range []string{"", "{", "[1,2", `{"a":}`, "01", "--1", "truee"} {
		if Matches(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

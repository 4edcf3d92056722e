package sexpr

import "testing"

func TestRejectsBareAtomAtTopLevel(t *testing.T) {
	// the top-level rule is sexp, which always requires enclosing
	// parens; a bare atom is only valid as the content of one.
	if Matches("abc123") {
		t.Fatal("expected a bare atom with no enclosing parens to be rejected")
	}
}

func TestMatchesNestedSExpressions(t *testing.T) {
	for _, s := range []string{"()", "(a)", "(a b c)", "(a (b c) d)", "((a b) (c d))"} {
		if !Matches(s) {
			t.Errorf("expected %q to match", s)
		}
	}
}

func TestRejectsUnbalanced(t *testing.T) {
	for _, s := range []string{"(", ")", "(a", "a)", "(a (b)"} {
		if Matches(s) {
			t.Errorf("expected %q to be rejected", s)
		}
	}
}

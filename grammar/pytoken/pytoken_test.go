package pytoken

import "testing"

func TestTokenizeProducesExpectedKinds(t *testing.T) {
	kinds, toks, err := Tokenize("foo(bar 42):")
	if err != nil {
		t.Fatalf("unexpected tokenize error: %v", err)
	}
	want := []Kind{KIdent, KParenOpen, KIdent, KNumber, KParenClose, KColon}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d tokens, got %d (%v)", len(want), len(kinds), toks)
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token %d: expected %v, got %v", i, k, kinds[i])
		}
	}
}

func TestTokenizeRecognizesKeywords(t *testing.T) {
	kinds, _, err := Tokenize("if else def return")
	if err != nil {
		t.Fatalf("unexpected tokenize error: %v", err)
	}
	want := []Kind{KIf, KElse, KDef, KReturn}
	if len(kinds) != len(want) {
		t.Fatalf("expected %d tokens, got %d", len(want), len(kinds))
	}
	for i, k := range want {
		if kinds[i] != k {
			t.Errorf("token %d: expected %v, got %v", i, k, kinds[i])
		}
	}
}

func TestMatchesFlatTokenSequence(t *testing.T) {
	ok, err := Matches("foo(bar);")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !ok {
		t.Fatal("expected a flat sequence of recognized tokens to match")
	}
}

func TestKindStringForKnownAndUnknown(t *testing.T) {
	if KIdent.String() != "Ident" {
		t.Fatalf("expected KIdent.String() == \"Ident\", got %q", KIdent.String())
	}
	if got := Kind(999).String(); got != "Kind(999)" {
		t.Fatalf("expected out-of-range Kind to format as Kind(999), got %q", got)
	}
}

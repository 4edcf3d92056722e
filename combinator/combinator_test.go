package combinator

import (
	"testing"

	"github.com/dbrz/dparse/core"
)

func runeCmp(a, b rune) int { return int(a) - int(b) }

func TestOptionalMatchesPresentOrAbsent(t *testing.T) {
	l := Optional[rune](core.ExP[rune]('a'))
	if !core.Matches[rune](l, []rune("a")) {
		t.Fatal("expected Optional(a) to match \"a\"")
	}
	if !core.Matches[rune](l, []rune("")) {
		t.Fatal("expected Optional(a) to match \"\"")
	}
	if core.Matches[rune](l, []rune("aa")) {
		t.Fatal("expected Optional(a) not to match \"aa\"")
	}
}

func TestStringMatchesExactSequence(t *testing.T) {
	l := String[rune]([]rune("cat"))
	if !core.Matches[rune](l, []rune("cat")) {
		t.Fatal("expected String(\"cat\") to match \"cat\"")
	}
	if core.Matches[rune](l, []rune("ca")) {
		t.Fatal("expected String(\"cat\") not to match \"ca\"")
	}
	if core.Matches[rune](l, []rune("cats")) {
		t.Fatal("expected String(\"cat\") not to match \"cats\"")
	}
}

func TestStringTreeYieldsJoinedValue(t *testing.T) {
	l := String[rune]([]rune("abc"))
	trees := core.Parses[rune](l, []rune("abc"))
	if trees.Len() != 1 {
		t.Fatalf("expected one parse tree, got %d", trees.Len())
	}
	var got core.Tree
	trees.Each(func(tr core.Tree) { got = tr })
	if got != "abc" {
		t.Fatalf("expected String(\"abc\") to yield %q, got %#v", "abc", got)
	}
	if core.Parses[rune](l, []rune("abd")).Len() != 0 {
		t.Fatal("expected String(\"abc\") on \"abd\" to yield no trees")
	}
}

func TestStringEmptyMatchesOnlyEmpty(t *testing.T) {
	l := String[rune](nil)
	if !core.Matches[rune](l, []rune("")) {
		t.Fatal("expected String(\"\") to match \"\"")
	}
	if core.Matches[rune](l, []rune("x")) {
		t.Fatal("expected String(\"\") not to match \"x\"")
	}
}

func TestOneOrMoreRequiresAtLeastOne(t *testing.T) {
	l := OneOrMore[rune](core.ExP[rune]('a'))
	if core.Matches[rune](l, []rune("")) {
		t.Fatal("expected OneOrMore(a) not to match \"\"")
	}
	if !core.Matches[rune](l, []rune("a")) {
		t.Fatal("expected OneOrMore(a) to match \"a\"")
	}
	if !core.Matches[rune](l, []rune("aaaa")) {
		t.Fatal("expected OneOrMore(a) to match \"aaaa\"")
	}
}

// consLen walks a cons-chain (Pair(first, Pair(second, ...None{})))
// and reports its length.
func consLen(t core.Tree) int {
	n := 0
	for {
		p, ok := t.(core.Pair)
		if !ok {
			return n
		}
		n++
		t = p.Second
	}
}

func TestOneOrMoreTreeCollectsEachRepetition(t *testing.T) {
	l := OneOrMore[rune](core.ExP[rune]('a'))
	trees := core.Parses[rune](l, []rune("aaa"))
	if trees.Len() != 1 {
		t.Fatalf("expected one parse tree, got %d", trees.Len())
	}
	var got core.Tree
	trees.Each(func(tr core.Tree) { got = tr })
	if n := consLen(got); n != 3 {
		t.Fatalf("expected a 3-element cons-chain, got %#v", got)
	}
}

func TestAnyOfMatchesMemberOnly(t *testing.T) {
	l := AnyOf[rune](runeCmp, 'a', 'b', 'c')
	for _, c := range []string{"a", "b", "c"} {
		if !core.Matches[rune](l, []rune(c)) {
			t.Fatalf("expected AnyOf(a,b,c) to match %q", c)
		}
	}
	if core.Matches[rune](l, []rune("d")) {
		t.Fatal("expected AnyOf(a,b,c) not to match \"d\"")
	}
}

func TestBracketDiscardsDelimiters(t *testing.T) {
	l := Bracket[rune]('(', core.ExP[rune]('x'), ')')
	if !core.Matches[rune](l, []rune("(x)")) {
		t.Fatal("expected Bracket to match \"(x)\"")
	}
	if core.Matches[rune](l, []rune("x")) {
		t.Fatal("expected Bracket not to match bare \"x\"")
	}
	trees := core.Parses[rune](l, []rune("(x)"))
	if trees.Len() != 1 {
		t.Fatalf("expected one parse tree, got %d", trees.Len())
	}
	var got core.Tree
	trees.Each(func(tr core.Tree) { got = tr })
	if got != 'x' {
		t.Fatalf("expected Bracket to yield only the inner tree 'x', got %#v", got)
	}
}

func TestSepMatchesZeroOrMoreSeparated(t *testing.T) {
	l := Sep[rune](core.ExP[rune]('a'), core.ExP[rune](','))
	for _, s := range []string{"", "a", "a,a", "a,a,a"} {
		if !core.Matches[rune](l, []rune(s)) {
			t.Fatalf("expected Sep(a, \",\") to match %q", s)
		}
	}
	for _, s := range []string{",", "a,", "a,,a"} {
		if core.Matches[rune](l, []rune(s)) {
			t.Fatalf("expected Sep(a, \",\") not to match %q", s)
		}
	}
}

func TestSepTreeCountsItems(t *testing.T) {
	l := Sep[rune](core.ExP[rune]('a'), core.ExP[rune](','))
	trees := core.Parses[rune](l, []rune("a,a,a"))
	if trees.Len() != 1 {
		t.Fatalf("expected one parse tree, got %d", trees.Len())
	}
	var got core.Tree
	trees.Each(func(tr core.Tree) { got = tr })
	if n := consLen(got); n != 3 {
		t.Fatalf("expected a 3-element cons-chain, got %#v", got)
	}
}

func TestSepEmptyYieldsNone(t *testing.T) {
	l := Sep[rune](core.ExP[rune]('a'), core.ExP[rune](','))
	trees := core.Parses[rune](l, []rune(""))
	if trees.Len() != 1 {
		t.Fatalf("expected one parse tree, got %d", trees.Len())
	}
	var got core.Tree
	trees.Each(func(tr core.Tree) { got = tr })
	if _, ok := got.(core.None); !ok {
		t.Fatalf("expected None for zero items, got %#v", got)
	}
}

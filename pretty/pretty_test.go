package pretty

import (
	"strings"
	"testing"

	"github.com/dbrz/dparse/core"
)

func TestSprintAcyclicGraph(t *testing.T) {
	p := core.AltP[rune](core.ExP[rune]('a'), core.ExP[rune]('b'))
	out := Sprint[rune](p)
	if !strings.Contains(out, "Alt") {
		t.Fatalf("expected rendered tree to mention Alt, got:\n%s", out)
	}
}

func TestSprintCyclicGraphTerminates(t *testing.T) {
	cell := core.Pending[rune]("B")
	inner := core.AltP[rune](
		core.NullP[rune](),
		core.CatP[rune](core.ExP[rune]('('), core.CatP[rune](cell, core.ExP[rune](')'))),
	)
	root := core.Tie[rune](inner)

	// Just reaching this point without Sprint hanging or panicking is the
	// property under test: a cyclic graph must be rendered with a
	// back-reference marker instead of recursing forever.
	out := Sprint[rune](root)
	if out == "" {
		t.Fatal("expected non-empty rendering of a cyclic grammar")
	}
}

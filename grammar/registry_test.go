package grammar

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"

	"github.com/dbrz/dparse/core"
)

func TestRegistryTiesSelfRecursion(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "dparse.grammar")
	defer teardown()

	// body = "" | "1" body "1"  (self-reference via Rule)
	reg := NewRegistry[rune]()
	body := core.AltP[rune](
		core.NullP[rune](),
		core.CatP[rune](core.ExP[rune]('1'), core.CatP[rune](reg.Rule("body"), core.ExP[rune]('1'))),
	)
	reg.Define("body", body)
	root := reg.Close("body")

	for _, s := range []string{"", "11", "1111"} {
		if !core.Matches[rune](root, []rune(s)) {
			t.Errorf("expected %q to match", s)
		}
	}
	for _, s := range []string{"1", "111", "12"} {
		if core.Matches[rune](root, []rune(s)) {
			t.Errorf("expected %q not to match", s)
		}
	}
}

func TestRegistryRuleBeforeDefineReturnsSameCell(t *testing.T) {
	reg := NewRegistry[rune]()
	a := reg.Rule("x")
	b := reg.Rule("x")
	if a != b {
		t.Fatal("expected repeated Rule(name) calls to return the same cell")
	}
}

func TestRegistryCloseUndefinedRulePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Close to panic on a referenced-but-undefined rule")
		}
	}()
	reg := NewRegistry[rune]()
	_ = reg.Rule("ghost")
	reg.Define("start", core.CatP[rune](reg.Rule("ghost"), core.NullP[rune]()))
	reg.Close("start")
}

func TestRegistryCloseUnknownStartPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected Close to panic when start was never defined")
		}
	}()
	reg := NewRegistry[rune]()
	reg.Define("a", core.NullP[rune]())
	reg.Close("nonexistent")
}

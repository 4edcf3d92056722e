// Package grammar provides a named-nonterminal builder on top of
// core's single-root Tie: a Registry lets a grammar with several
// mutually-recursive rules be written rule-by-rule, referring to rules
// not yet defined by name, and closed in one call once every rule has
// a definition. This is adapted from gorgo's runtime.SymbolTable (a
// flat table of named entries, minus its Scope tree — a client grammar
// needs no nested lexical scoping, just one flat namespace of rule
// names) and from muffin's berry/json.py/sexp.py dict-keyed
// rec(name)/tie(root, names) idiom.
package grammar

import (
	"fmt"

	"github.com/npillmayer/schuko/tracing"

	"github.com/dbrz/dparse/core"
)

func tracer() tracing.Trace {
	return tracing.Select("dparse.grammar")
}

// Registry holds named, possibly forward-referenced grammar rules for
// one terminal alphabet T.
type Registry[T core.Symbol] struct {
	cells map[string]*core.Cell[T]
	defs  map[string]core.Parser[T]
	order []string
}

// NewRegistry creates an empty Registry.
func NewRegistry[T core.Symbol]() *Registry[T] {
	return &Registry[T]{
		cells: make(map[string]*core.Cell[T]),
		defs:  make(map[string]core.Parser[T]),
	}
}

// Rule returns a reference to the named rule, usable immediately as a
// Cat/Alt/Rep/Delta child slot even before Define is called for that
// name — the reference is a Pending Cell, resolved once Close runs.
// Calling Rule again for the same name returns the same Cell.
func (r *Registry[T]) Rule(name string) core.Node[T] {
	if c, ok := r.cells[name]; ok {
		return c
	}
	c := core.Pending[T](name)
	r.cells[name] = c
	r.order = append(r.order, name)
	return c
}

// Define binds name to its finished parser definition. p may itself
// reference other rules (including name) via Rule.
func (r *Registry[T]) Define(name string, p core.Parser[T]) {
	if _, ok := r.cells[name]; !ok {
		// name was never referenced via Rule before being defined;
		// register a placeholder anyway so Close can still find it.
		r.cells[name] = core.Pending[T](name)
		r.order = append(r.order, name)
	}
	r.defs[name] = p
}

// Close ties every registered rule: each name's Cell is patched to
// point at its own Define'd parser, then core.Tie walks from start to
// close any recursive references reachable from it. Close panics
// immediately if any referenced rule (including start) was never
// Define'd; it is the caller's responsibility to Define every name it
// referenced via Rule.
func (r *Registry[T]) Close(start string) core.Parser[T] {
	tracer().Debugf("closing registry: %d rule(s), start=%q", len(r.order), start)
	for _, name := range r.order {
		def, ok := r.defs[name]
		if !ok {
			panic(fmt.Sprintf("dparse/grammar: rule %q referenced but never defined", name))
		}
		r.cells[name].Resolve(def)
	}
	root, ok := r.defs[start]
	if !ok {
		panic(fmt.Sprintf("dparse/grammar: start rule %q never defined", start))
	}
	return core.Tie[T](root)
}

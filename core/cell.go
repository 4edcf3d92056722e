package core

// Node is the type of a child slot of Cat, Alt, Rep and Delta: either a
// fully-built Parser[T] or a *Cell[T] standing in for one that has not
// been forced yet. It carries no methods of its own; Force resolves it
// to a Parser[T].
type Node[T Symbol] interface{}

// Cell is a write-once indirection used two ways (§3.3, §4.1, and
// Design Note 9 of the specification this engine follows):
//
//   - Defer postpones a computation that would otherwise have to
//     recurse into a possibly-cyclic graph right away; forcing it runs
//     the thunk exactly once and caches the result.
//   - Pending creates a placeholder for a not-yet-built recursive
//     reference inside a grammar under construction; the placeholder
//     is filled exactly once by Tie, which points it at the finished
//     root. Forcing a Pending cell before it has been tied is a fatal
//     grammar-construction bug (UnpatchedCellError).
//
// Both uses share the same "force once, cache forever" shape, so one
// type serves both roles instead of the two the original system
// conflates via a sentinel argument value.
type Cell[T Symbol] struct {
	thunk   func() Node[T]
	value   Node[T]
	forced  bool
	pending bool
	label   string // optional, for diagnostics/pretty-printing only
}

// Defer creates a Cell around a thunk. The thunk is not evaluated
// until the cell is forced.
func Defer[T Symbol](thunk func() Node[T]) *Cell[T] {
	return &Cell[T]{thunk: thunk}
}

// Pending creates an unresolved placeholder cell, meant to stand for a
// recursive self-reference inside a grammar under construction. It
// must be closed by a later Tie(root) call before it is ever forced.
func Pending[T Symbol](label string) *Cell[T] {
	return &Cell[T]{pending: true, label: label}
}

// step evaluates the cell if necessary and returns its (possibly still
// lazy) contents.
func (c *Cell[T]) step() Node[T] {
	if !c.forced {
		if c.pending {
			panic(&UnpatchedCellError{Label: c.label})
		}
		c.value = c.thunk()
		c.forced = true
		c.thunk = nil
	}
	return c.value
}

// patch closes a Pending cell by pointing it at root. A no-op if the
// cell is not pending or has already been patched; Tie relies on this
// to stay idempotent.
func (c *Cell[T]) patch(root Parser[T]) {
	if c.pending && !c.forced {
		c.value = root
		c.forced = true
	}
}

// Resolve closes a Pending cell by pointing it at p, for callers (such
// as grammar.Registry) that need to bind a named placeholder to its
// definition themselves before handing the whole graph to Tie. A
// no-op once the cell is already resolved, same as patch.
func (c *Cell[T]) Resolve(p Parser[T]) {
	c.patch(p)
}

// Forced reports whether c has already been evaluated or resolved,
// without forcing it. Used by diagnostics (see package pretty) that
// must not trigger an UnpatchedCellError just by looking at a graph.
func (c *Cell[T]) Forced() bool { return c.forced }

// Peek returns the cached value of an already-Forced cell without
// evaluating or patching it. Calling Peek on a cell that is not yet
// Forced returns nil.
func (c *Cell[T]) Peek() Node[T] {
	if !c.forced {
		return nil
	}
	return c.value
}

// Force walks indirections — while n is a *Cell[T], evaluate it and
// replace n with its cached value — until a concrete Parser[T] is
// reached.
func Force[T Symbol](n Node[T]) Parser[T] {
	for {
		c, ok := n.(*Cell[T])
		if !ok {
			return n.(Parser[T])
		}
		n = c.step()
	}
}

// CouldBeLazy is a conservative check (§4.1): true iff n is itself a
// Cell, or a variant whose child slots may be lazy (Cat, Alt, Rep,
// Delta) and therefore might hide a cycle a few levels down.
func CouldBeLazy[T Symbol](n Node[T]) bool {
	switch n.(type) {
	case *Cell[T]:
		return true
	case *catParser[T], *altParser[T], *repParser[T], *deltaParser[T]:
		return true
	default:
		return false
	}
}

// maybeLazy returns thunk() immediately unless arg could be lazy, in
// which case it postpones the call inside a Cell. This is the engine's
// internal use of laziness (derivative/compact recursion); it is
// distinct from the user-facing Pending/Tie recursion-closing
// mechanism above, even though both are built on Cell.
func maybeLazy[T Symbol](arg Node[T], thunk func() Node[T]) Node[T] {
	if CouldBeLazy[T](arg) {
		return Defer[T](thunk)
	}
	return thunk()
}

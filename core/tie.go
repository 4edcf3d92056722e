package core

// Tie closes recursive grammar definitions (§3.3, §4.1). It performs a
// depth-first traversal of root, descending through the structural
// children of Cat/Alt/Rep/Red/Delta, and for every Pending Cell it finds,
// patches the cell's value to root itself — closing the recursion.
// Tie is idempotent: a Cell already patched (or not Pending at all) is
// left untouched.
//
// The traversal tracks visited Cells to avoid walking the same
// subgraph twice once cycles exist (a Pending cell, once patched,
// makes its own subtree reachable again through root).
func Tie[T Symbol](root Parser[T]) Parser[T] {
	visited := make(map[*Cell[T]]bool)
	tieWalk[T](root, root, visited)
	return root
}

func tieWalk[T Symbol](n Node[T], root Parser[T], visited map[*Cell[T]]bool) {
	if c, ok := n.(*Cell[T]); ok {
		if visited[c] {
			return
		}
		visited[c] = true
		if c.pending {
			c.patch(root)
			return
		}
		if !c.forced {
			// A Defer cell not yet forced has no reachable structure to
			// descend into; forcing it here would run engine-internal
			// thunks prematurely and is unnecessary for tying, since
			// only Pending cells ever need patching.
			return
		}
		tieWalk[T](c.value, root, visited)
		return
	}
	switch v := n.(type) {
	case *catParser[T]:
		tieWalk[T](v.first, root, visited)
		tieWalk[T](v.second, root, visited)
	case *altParser[T]:
		tieWalk[T](v.first, root, visited)
		tieWalk[T](v.second, root, visited)
	case *repParser[T]:
		tieWalk[T](v.elem, root, visited)
	case *redParser[T]:
		tieWalk[T](v.elem, root, visited)
	case *deltaParser[T]:
		tieWalk[T](v.elem, root, visited)
	default:
		// Empty, Null, Term, Any, Ex, Set have no child slots to descend into.
	}
}

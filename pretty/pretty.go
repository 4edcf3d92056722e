// Package pretty renders a parser graph as an indented tree for
// diagnostics, handling cycles by printing an ellipsis on
// re-entry instead of recursing forever (§6). Grounded on
// muffin/pan.py's PrettyTuple.__pretty__/Lazy.__pretty__ (which detect
// revisits the same way) and on trepl/repl.go's
// pterm.LeveledList/pterm.NewTreeFromLeveledList rendering.
package pretty

import (
	"fmt"

	"github.com/pterm/pterm"

	"github.com/dbrz/dparse/core"
)

// Sprint renders p as a multi-line indented tree string.
func Sprint[T core.Symbol](p core.Parser[T]) string {
	ll := pterm.LeveledList{}
	ll = leveledNode[T](p, ll, 0, make(map[any]bool))
	root := pterm.NewTreeFromLeveledList(ll)
	return pterm.DefaultTree.WithRoot(root).Srender()
}

// Print renders p to stdout via pterm's default tree printer.
func Print[T core.Symbol](p core.Parser[T]) {
	ll := pterm.LeveledList{}
	ll = leveledNode[T](p, ll, 0, make(map[any]bool))
	root := pterm.NewTreeFromLeveledList(ll)
	pterm.DefaultTree.WithRoot(root).Render()
}

func leveledNode[T core.Symbol](n core.Node[T], ll pterm.LeveledList, level int, seen map[any]bool) pterm.LeveledList {
	if cell, ok := n.(*core.Cell[T]); ok {
		if seen[cell] {
			return append(ll, pterm.LeveledListItem{Level: level, Text: "..."})
		}
		if !cell.Forced() {
			return append(ll, pterm.LeveledListItem{Level: level, Text: "<pending>"})
		}
		seen[cell] = true
		ll = leveledNode[T](cell.Peek(), ll, level, seen)
		delete(seen, cell)
		return ll
	}

	p := n.(core.Parser[T])
	if seen[p] {
		return append(ll, pterm.LeveledListItem{Level: level, Text: "..."})
	}

	switch v := core.DescribeChildren[T](p); v.Kind {
	case core.KindLeaf:
		return append(ll, pterm.LeveledListItem{Level: level, Text: v.Label})
	case core.KindUnary:
		seen[p] = true
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: v.Label})
		ll = leveledNode[T](v.Children[0], ll, level+1, seen)
		delete(seen, p)
		return ll
	case core.KindBinary:
		seen[p] = true
		ll = append(ll, pterm.LeveledListItem{Level: level, Text: v.Label})
		ll = leveledNode[T](v.Children[0], ll, level+1, seen)
		ll = leveledNode[T](v.Children[1], ll, level+1, seen)
		delete(seen, p)
		return ll
	default:
		return append(ll, pterm.LeveledListItem{Level: level, Text: fmt.Sprintf("%v", v.Label)})
	}
}

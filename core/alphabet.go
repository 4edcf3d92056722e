package core

import (
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// treeSetAlphabet wraps an ordered gods/treeset.Set of terminals,
// giving Set(S) (§3.1) both a stable iteration order (needed to build
// a deterministic structural memo key, see key.go) and O(log n)
// membership tests instead of a linear scan. Grounded on
// lr/tables.go's `treeset.NewWith(stateComparator)` use of the same
// library for an ordered set of LR states.
type treeSetAlphabet[T Symbol] struct {
	set *treeset.Set
	cmp utils.Comparator
}

// SetP accepts any single terminal that is a member of the given set,
// ordered by cmp (so that two Set parsers built from the same members
// compare structurally equal regardless of construction order).
func SetP[T Symbol](cmp func(a, b T) int, members ...T) Parser[T] {
	comparator := func(a, b interface{}) int { return cmp(a.(T), b.(T)) }
	ts := treeset.NewWith(comparator)
	for _, m := range members {
		ts.Add(m)
	}
	return &setParser[T]{s: &treeSetAlphabet[T]{set: ts, cmp: comparator}}
}

func (a *treeSetAlphabet[T]) contains(c T) bool {
	return a.set.Contains(c)
}

func (a *treeSetAlphabet[T]) sorted() []T {
	vals := a.set.Values()
	out := make([]T, len(vals))
	for i, v := range vals {
		out[i] = v.(T)
	}
	return out
}

func (a *treeSetAlphabet[T]) size() int {
	return a.set.Size()
}

/*
Package core implements a parser engine based on Brzozowski derivatives
of context-free languages with semantic reductions.

Given a parser description built from a small, closed algebra of
language combinators (Empty, Null, Term, Any, Ex, Set, Cat, Alt, Rep,
Red, Delta) and an input sequence of terminal symbols, the engine
decides language membership (Matches) and enumerates parse trees
(Parses). Grammars may be recursive: a non-terminal may appear inside
its own definition, closed over a Cell (see cell.go) via Tie.

The package is built from five cooperating pieces, leaves first:

  - Cell: a mutable, write-once indirection holding either a pending
    thunk or a resolved Parser, used both to postpone recursive
    derivative/compact descent and to close recursive grammar
    definitions (Tie).
  - Parser[T]: the closed algebra of variants, forming a DAG (with
    cycles only through Cell child slots).
  - Derivative: D(l, c), memoized per Session on (structural identity
    of l, c).
  - Compact: K(l), memoized per Session, a single-ply rewrite that
    prunes Empty-dominated subgraphs and composes Red chains.
  - Nullable / Trees: Kleene-ascent fixed points over the (possibly
    cyclic) graph, computing whether a parser accepts the empty
    string and which trees it yields on it.

A parse of input s against parser l runs:

	sess := core.NewSession[T]()
	cur := l
	for _, c := range s {
		cur = core.Compact(sess, core.Derivative(sess, cur, c))
	}
	result := core.Trees(cur) // or core.Nullable(cur) for matches

Session holds the memo tables for one parse; callers create a fresh
Session per parse and discard it afterward to bound memory (see
Parses / Matches for the convenience driver that does this loop).

This package has no user-visible errors from parsing a non-matching
input — an unaccepted input simply yields Nullable = false and
Trees = an empty set. The only fatal conditions are grammar
construction bugs: forcing a Cell that was never tied (see
UnpatchedCellError).
*/
package core

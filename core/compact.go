package core

// Compact computes K(l): a single-ply rewrite applied after each
// derivative that prunes Empty-dominated subgraphs and composes Red
// chains, without changing l's denotation (§4.3). It never recurses
// more than one layer past a point of laziness — recursive descent
// into children happens lazily, the same way Derivative's does.
//
// K is memoized per Session, keyed by l's structural identity. If a
// recursive re-entry on the same key is detected mid-computation
// (possible when l is cyclic), Compact returns l unchanged, treating
// it as a fixed point rather than looping forever.
func Compact[T Symbol](sess *Session[T], l Parser[T]) Parser[T] {
	key := compactKey[T](l)
	if cached, ok := sess.compactMemo[key]; ok {
		return cached
	}
	if sess.compacting[key] {
		return l
	}
	sess.compacting[key] = true
	defer delete(sess.compacting, key)

	k := compactOf[T](sess, l)
	sess.compactMemo[key] = k
	return k
}

func compactOf[T Symbol](sess *Session[T], l Parser[T]) Parser[T] {
	switch v := l.(type) {
	case *catParser[T]:
		af := Force[T](v.first)
		bf := Force[T](v.second)
		if isEmpty[T](af) || isEmpty[T](bf) {
			return &emptyParser[T]{}
		}
		if at, ok := af.(*termParser[T]); ok {
			ts := at.ts
			return &redParser[T]{
				elem: lazyCompact[T](sess, v.second),
				fn:   termFoldLeft[T](ts),
				fid:  newFid(),
			}
		}
		if bt, ok := bf.(*termParser[T]); ok {
			ts := bt.ts
			return &redParser[T]{
				elem: lazyCompact[T](sess, v.first),
				fn:   termFoldRight[T](ts),
				fid:  newFid(),
			}
		}
		return &catParser[T]{first: lazyCompact[T](sess, v.first), second: lazyCompact[T](sess, v.second)}

	case *altParser[T]:
		af := Force[T](v.first)
		bf := Force[T](v.second)
		if isEmpty[T](af) {
			return Compact[T](sess, bf)
		}
		if isEmpty[T](bf) {
			return Compact[T](sess, af)
		}
		return &altParser[T]{first: lazyCompact[T](sess, v.first), second: lazyCompact[T](sess, v.second)}

	case *repParser[T]:
		ef := Force[T](v.elem)
		if isEmpty[T](ef) {
			return &nullParser[T]{}
		}
		return &repParser[T]{elem: lazyCompact[T](sess, v.elem)}

	case *redParser[T]:
		ef := Force[T](v.elem)
		if _, ok := ef.(*nullParser[T]); ok {
			return termFromTrees[T]([]Tree{v.fn(None{})})
		}
		if at, ok := ef.(*termParser[T]); ok {
			out := make([]Tree, len(at.ts))
			for i, t := range at.ts {
				out[i] = v.fn(t)
			}
			return termFromTrees[T](out)
		}
		if rt, ok := ef.(*redParser[T]); ok {
			inner := rt.fn
			outer := v.fn
			return &redParser[T]{elem: lazyCompact[T](sess, rt.elem), fn: compose(inner, outer), fid: newFid()}
		}
		return &redParser[T]{elem: lazyCompact[T](sess, v.elem), fn: v.fn, fid: v.fid}

	case *deltaParser[T]:
		return &deltaParser[T]{elem: lazyCompact[T](sess, v.elem)}

	default:
		return l
	}
}

// lazyCompact implements lazy(K, a) (§4.1/§4.3): postpone the
// recursive Compact call behind a Cell whenever a could itself hide a
// cycle.
func lazyCompact[T Symbol](sess *Session[T], a Node[T]) Node[T] {
	return maybeLazy[T](a, func() Node[T] {
		return Compact[T](sess, Force[T](a))
	})
}

func isEmpty[T Symbol](p Parser[T]) bool {
	_, ok := p.(*emptyParser[T])
	return ok
}

// IsEmpty reports whether p is exactly the Empty variant.
func IsEmpty[T Symbol](p Parser[T]) bool { return isEmpty[T](p) }

// termFoldLeft builds K(Cat(Term(ts), b))'s reduction: pair each t in
// ts with b's tree (curried pair constructor for a singleton ts, a set
// of pairs otherwise, per the specification's own resolution of this
// point, see DESIGN.md).
func termFoldLeft[T Symbol](ts []Tree) func(Tree) Tree {
	if len(ts) == 1 {
		t := ts[0]
		return func(x Tree) Tree { return Pair{First: t, Second: x} }
	}
	return func(x Tree) Tree {
		out := NewTreeSet()
		for _, t := range ts {
			out.Add(Pair{First: t, Second: x})
		}
		return out
	}
}

// termFoldRight is termFoldLeft's mirror for K(Cat(a, Term(ts))).
func termFoldRight[T Symbol](ts []Tree) func(Tree) Tree {
	if len(ts) == 1 {
		t := ts[0]
		return func(x Tree) Tree { return Pair{First: x, Second: t} }
	}
	return func(x Tree) Tree {
		out := NewTreeSet()
		for _, t := range ts {
			out.Add(Pair{First: x, Second: t})
		}
		return out
	}
}

// compose returns g∘f: apply f first, then g, matching
// K(Red(Red(a, f), g)) = Red(K(a), g∘f) (§4.3, §8 law).
func compose(f, g func(Tree) Tree) func(Tree) Tree {
	return func(x Tree) Tree { return g(f(x)) }
}

package core

// Derivative computes D(l, c): the parser describing what remains of
// l's language after consuming one terminal c (§4.2). It is memoized
// on the Session keyed by the structural identity of l together with
// c; the memo survives across the successive symbols of one parse, as
// the algorithm relies on it to keep per-step work bounded.
func Derivative[T Symbol](sess *Session[T], l Parser[T], c T) Parser[T] {
	key := derivKey[T](l, c)
	if cached, ok := sess.derivMemo[key]; ok {
		return cached
	}
	tracer().Debugf("derivative: %s on %v", l.tag(), c)
	d := deriveOf[T](sess, l, c)
	sess.derivMemo[key] = d
	return d
}

func deriveOf[T Symbol](sess *Session[T], l Parser[T], c T) Parser[T] {
	switch v := l.(type) {
	case *emptyParser[T]:
		return &emptyParser[T]{}
	case *nullParser[T]:
		return &emptyParser[T]{}
	case *termParser[T]:
		return &emptyParser[T]{}
	case *deltaParser[T]:
		return &emptyParser[T]{}
	case *anyParser[T]:
		return &termParser[T]{ts: []Tree{c}}
	case *exParser[T]:
		if v.c == c {
			return &termParser[T]{ts: []Tree{c}}
		}
		return &emptyParser[T]{}
	case *setParser[T]:
		if v.s.contains(c) {
			return &termParser[T]{ts: []Tree{c}}
		}
		return &emptyParser[T]{}
	case *altParser[T]:
		a, b := v.first, v.second
		return &altParser[T]{
			first:  lazyDerive[T](sess, a, c),
			second: lazyDerive[T](sess, b, c),
		}
	case *catParser[T]:
		a, b := v.first, v.second
		af := Force[T](a)
		if !Nullable[T](af) {
			return &catParser[T]{first: lazyDerive[T](sess, a, c), second: b}
		}
		return &altParser[T]{
			first: &catParser[T]{first: lazyDerive[T](sess, a, c), second: b},
			second: &catParser[T]{
				first:  &termParser[T]{ts: Trees[T](af).Slice()},
				second: lazyDerive[T](sess, b, c),
			},
		}
	case *repParser[T]:
		return &redParser[T]{
			elem: &catParser[T]{first: lazyDerive[T](sess, v.elem, c), second: v},
			fn:   repeatFn,
			fid:  repeatFid,
		}
	case *redParser[T]:
		return &redParser[T]{elem: lazyDerive[T](sess, v.elem, c), fn: v.fn, fid: v.fid}
	default:
		panic(&UnknownVariantError{Type: l.tag().String()})
	}
}

// lazyDerive implements lazy(D, a, c) (§4.1): if a could be lazy
// (itself a Cell, or a variant with lazy-capable children that might
// hide a cycle), postpone the recursive Derivative call inside a Cell
// instead of evaluating it eagerly, so an unforced cycle cannot
// diverge the construction of D(l, c) itself.
func lazyDerive[T Symbol](sess *Session[T], a Node[T], c T) Node[T] {
	return maybeLazy[T](a, func() Node[T] {
		return Derivative[T](sess, Force[T](a), c)
	})
}

// repeatFid is the fixed identity for the single repeat function every
// Rep derivative constructs; it is not a user-supplied Red, so a
// single shared id (rather than one per call) is correct and keeps
// Rep's derivative memoizable across successive steps.
var repeatFid = newFid()

// repeatFn implements repeat((x, y)) = (x, y) (§4.2, D(Rep(a), c)): the
// Cat it reduces already pairs this repetition's tree x with y, the
// tree of the rest of the repetitions, and y is itself either None
// (no further repetitions) or another such Pair. That nesting is
// already the tuple scenario 3 asks for — ("a","a","a") is
// Pair("a", Pair("a", Pair("a", None{}))) — so repeat need only pass
// the Pair through unchanged; it exists as a named Red so Rep's
// derivative keeps the Red(Cat(...), f) shape §4.2 specifies, and so
// every Rep derivative shares one fid for memoization.
func repeatFn(t Tree) Tree {
	return t
}

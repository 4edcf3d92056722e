package core

// Parses drives l over the input sequence s, applying K(D(l, c)) for
// each symbol in turn, and returns the set of trees the resulting
// parser yields on the empty string (§4.6). A fresh Session is created
// and discarded internally, bounding memory to the life of this call;
// callers who parse many inputs against the same grammar and want to
// share derivative/compact memoization across calls should drive the
// loop themselves with a Session they keep across calls (see Session).
func Parses[T Symbol](l Parser[T], s []T, opts ...SessionOption[T]) *TreeSet {
	sess := NewSession[T](opts...)
	cur := stepAll[T](sess, l, s)
	return Trees[T](cur)
}

// Matches reports whether l accepts s (§4.6).
func Matches[T Symbol](l Parser[T], s []T, opts ...SessionOption[T]) bool {
	sess := NewSession[T](opts...)
	cur := stepAll[T](sess, l, s)
	return Nullable[T](cur)
}

// ParsesWith is Parses using a caller-supplied Session, letting
// derivative/compact memoization be shared across repeated parses of
// the same grammar (§5: "callers should create [memo tables] per
// parse" — ParsesWith makes that caller's choice explicit instead of
// Parses' one-shot convenience).
func ParsesWith[T Symbol](sess *Session[T], l Parser[T], s []T) *TreeSet {
	cur := stepAll[T](sess, l, s)
	return Trees[T](cur)
}

// MatchesWith is Matches using a caller-supplied Session.
func MatchesWith[T Symbol](sess *Session[T], l Parser[T], s []T) bool {
	cur := stepAll[T](sess, l, s)
	return Nullable[T](cur)
}

func stepAll[T Symbol](sess *Session[T], l Parser[T], s []T) Parser[T] {
	cur := l
	for _, c := range s {
		cur = Compact[T](sess, Derivative[T](sess, cur, c))
	}
	return cur
}

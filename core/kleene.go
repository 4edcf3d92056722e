package core

// Nullable computes N(l): whether l accepts the empty string (§4.4).
// Straightforward structural recursion would diverge on a cyclic
// grammar tied through a Cell, so N is computed by Kleene ascent with
// bottom = false: a fresh memo table is created for this top-level
// call; a key not yet in the table reads as false on first visit
// (guaranteeing termination on a cycle), and the table is updated
// after the body for that key is computed. The table lives only for
// the duration of this call, per §4.4 ("a fresh local memo table is
// created for the top-level call") — it is not carried on Session.
func Nullable[T Symbol](l Parser[T]) bool {
	memo := make(map[string]bool)
	return nullableAt[T](l, memo)
}

func nullableAt[T Symbol](l Parser[T], memo map[string]bool) bool {
	key := structuralKey[T](l)
	if v, ok := memo[key]; ok {
		return v
	}
	memo[key] = false // bottom, unblocks cyclic re-entry
	v := nullableBody[T](l, memo)
	memo[key] = v
	return v
}

func nullableBody[T Symbol](l Parser[T], memo map[string]bool) bool {
	switch v := l.(type) {
	case *emptyParser[T]:
		return false
	case *nullParser[T]:
		return true
	case *termParser[T]:
		return true
	case *anyParser[T]:
		return false
	case *exParser[T]:
		return false
	case *setParser[T]:
		return false
	case *catParser[T]:
		return nullableAt[T](Force[T](v.first), memo) && nullableAt[T](Force[T](v.second), memo)
	case *altParser[T]:
		return nullableAt[T](Force[T](v.first), memo) || nullableAt[T](Force[T](v.second), memo)
	case *repParser[T]:
		return true
	case *redParser[T]:
		return nullableAt[T](Force[T](v.elem), memo)
	case *deltaParser[T]:
		return nullableAt[T](Force[T](v.elem), memo)
	default:
		panic(&UnknownVariantError{Type: l.tag().String()})
	}
}

// Trees computes T(l): the set of trees l yields on the empty string
// (§4.5). Same Kleene-ascent shape as Nullable, but with bottom = ∅
// and union at join points instead of boolean or/and.
func Trees[T Symbol](l Parser[T]) *TreeSet {
	memo := make(map[string]*TreeSet)
	return treesAt[T](l, memo)
}

func treesAt[T Symbol](l Parser[T], memo map[string]*TreeSet) *TreeSet {
	key := structuralKey[T](l)
	if v, ok := memo[key]; ok {
		return v
	}
	memo[key] = NewTreeSet() // bottom
	v := treesBody[T](l, memo)
	memo[key] = v
	return v
}

func treesBody[T Symbol](l Parser[T], memo map[string]*TreeSet) *TreeSet {
	switch v := l.(type) {
	case *emptyParser[T]:
		return NewTreeSet()
	case *nullParser[T]:
		return NewTreeSet(None{})
	case *termParser[T]:
		return NewTreeSet(v.ts...)
	case *anyParser[T]:
		return NewTreeSet()
	case *exParser[T]:
		return NewTreeSet()
	case *setParser[T]:
		return NewTreeSet()
	case *altParser[T]:
		a := treesAt[T](Force[T](v.first), memo)
		b := treesAt[T](Force[T](v.second), memo)
		return a.Union(b)
	case *catParser[T]:
		a := treesAt[T](Force[T](v.first), memo)
		b := treesAt[T](Force[T](v.second), memo)
		out := NewTreeSet()
		a.Each(func(x Tree) {
			b.Each(func(y Tree) {
				out.Add(Pair{First: x, Second: y})
			})
		})
		return out
	case *redParser[T]:
		a := treesAt[T](Force[T](v.elem), memo)
		out := NewTreeSet()
		a.Each(func(x Tree) {
			out.Add(v.fn(x))
		})
		return out
	case *repParser[T]:
		return NewTreeSet(None{})
	case *deltaParser[T]:
		return treesAt[T](Force[T](v.elem), memo)
	default:
		panic(&UnknownVariantError{Type: l.tag().String()})
	}
}

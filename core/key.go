package core

import (
	"fmt"

	"github.com/cnf/structhash"
)

// structuralKey builds a memoization key for p that is stable across
// independently-constructed but structurally-identical parsers, as
// required by §5 ("memoization keyed on structural hash, not pointer
// identity"). Red is the one exception: its function payload is keyed
// by the fid assigned at construction time rather than by value,
// since two Go closures from the same literal are otherwise
// indistinguishable (see newFid) and must NOT be treated as equal
// if they close over different state.
//
// Cell children are forced before hashing: a pending or deferred child
// has no stable structural shape of its own, but the Parser it
// resolves to does. A grammar tied via Tie is a cyclic graph, so
// forcing a child can lead straight back to p itself; seen tracks the
// Parser values currently on the hashing call stack (by pointer
// identity, since every variant is a pointer type) and closes the
// recursion with a back-reference marker instead of hashing forever.
func structuralKey[T Symbol](p Parser[T]) string {
	return structuralKeyAt[T](p, make(map[Parser[T]]int))
}

func structuralKeyAt[T Symbol](p Parser[T], seen map[Parser[T]]int) string {
	if depth, ok := seen[p]; ok {
		return mustHash(struct {
			Tag   string
			Depth int
		}{"Back", depth})
	}
	seen[p] = len(seen)
	defer delete(seen, p)

	switch v := p.(type) {
	case *emptyParser[T]:
		return mustHash(struct{ Tag string }{"Empty"})
	case *nullParser[T]:
		return mustHash(struct{ Tag string }{"Null"})
	case *termParser[T]:
		return mustHash(struct {
			Tag string
			Ts  []Tree
		}{"Term", v.ts})
	case *anyParser[T]:
		return mustHash(struct{ Tag string }{"Any"})
	case *exParser[T]:
		return mustHash(struct {
			Tag string
			C   T
		}{"Ex", v.c})
	case *setParser[T]:
		return mustHash(struct {
			Tag     string
			Members []T
		}{"Set", v.s.sorted()})
	case *catParser[T]:
		return mustHash(struct {
			Tag    string
			First  string
			Second string
		}{"Cat", childKey[T](v.first, seen), childKey[T](v.second, seen)})
	case *altParser[T]:
		return mustHash(struct {
			Tag    string
			First  string
			Second string
		}{"Alt", childKey[T](v.first, seen), childKey[T](v.second, seen)})
	case *repParser[T]:
		return mustHash(struct {
			Tag  string
			Elem string
		}{"Rep", childKey[T](v.elem, seen)})
	case *redParser[T]:
		return mustHash(struct {
			Tag  string
			Elem string
			Fid  uint64
		}{"Red", childKey[T](v.elem, seen), v.fid})
	case *deltaParser[T]:
		return mustHash(struct {
			Tag  string
			Elem string
		}{"Delta", childKey[T](v.elem, seen)})
	default:
		panic(&UnknownVariantError{Type: fmt.Sprintf("%T", p)})
	}
}

// childKey resolves a possibly-lazy child slot and returns its
// structural key, threading the same cycle-breaking seen set as the
// enclosing structuralKeyAt call.
func childKey[T Symbol](n Node[T], seen map[Parser[T]]int) string {
	return structuralKeyAt[T](Force[T](n), seen)
}

func mustHash(v interface{}) string {
	h, err := structhash.Hash(v, 1)
	if err != nil {
		// structhash only errors on unhashable types (channels, funcs
		// reached by reflection); every key shape built above is plain
		// data, so this can only mean a bug in this file.
		panic(err)
	}
	return h
}

// derivKey builds the Derivative memo key for (l, c).
func derivKey[T Symbol](l Parser[T], c T) string {
	return mustHash(struct {
		L string
		C T
	}{structuralKey[T](l), c})
}

// compactKey builds the Compact memo key for l.
func compactKey[T Symbol](l Parser[T]) string {
	return structuralKey[T](l)
}

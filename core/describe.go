package core

import "fmt"

// ChildKind classifies how many structural child slots a variant has,
// for diagnostics (package pretty) that need to walk the graph without
// access to the sealed Parser internals.
type ChildKind int

const (
	KindLeaf ChildKind = iota
	KindUnary
	KindBinary
)

// Description is a read-only view of one Parser node's shape, for
// diagnostic traversal only — it is not part of the algebra itself.
type Description[T Symbol] struct {
	Kind     ChildKind
	Label    string
	Children []Node[T]
}

// DescribeChildren exposes p's variant tag and structural children
// without giving callers outside this package a way to construct or
// mutate a Parser — the sealed interface stays sealed, this is purely
// read access for pretty-printing.
func DescribeChildren[T Symbol](p Parser[T]) Description[T] {
	switch v := p.(type) {
	case *emptyParser[T]:
		return Description[T]{Kind: KindLeaf, Label: "Empty"}
	case *nullParser[T]:
		return Description[T]{Kind: KindLeaf, Label: "Null"}
	case *termParser[T]:
		return Description[T]{Kind: KindLeaf, Label: fmt.Sprintf("Term(%v)", v.ts)}
	case *anyParser[T]:
		return Description[T]{Kind: KindLeaf, Label: "Any"}
	case *exParser[T]:
		return Description[T]{Kind: KindLeaf, Label: fmt.Sprintf("Ex(%v)", v.c)}
	case *setParser[T]:
		return Description[T]{Kind: KindLeaf, Label: fmt.Sprintf("Set(%v)", v.s.sorted())}
	case *catParser[T]:
		return Description[T]{Kind: KindBinary, Label: "Cat", Children: []Node[T]{v.first, v.second}}
	case *altParser[T]:
		return Description[T]{Kind: KindBinary, Label: "Alt", Children: []Node[T]{v.first, v.second}}
	case *repParser[T]:
		return Description[T]{Kind: KindUnary, Label: "Rep", Children: []Node[T]{v.elem}}
	case *redParser[T]:
		return Description[T]{Kind: KindUnary, Label: fmt.Sprintf("Red(#%d)", v.fid), Children: []Node[T]{v.elem}}
	case *deltaParser[T]:
		return Description[T]{Kind: KindUnary, Label: "Delta", Children: []Node[T]{v.elem}}
	default:
		panic(&UnknownVariantError{Type: p.tag().String()})
	}
}

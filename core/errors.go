package core

import "fmt"

// UnpatchedCellError is raised when Force encounters a Cell created via
// Pending that was never closed by a Tie call. This is always a
// grammar-construction bug: a recursive reference was built but the
// recursion was never tied to its root. No input-parsing condition can
// trigger it (§4.7, §7 of the specification this engine follows).
type UnpatchedCellError struct {
	Label string // optional debug label set on the Cell, may be empty
}

func (e *UnpatchedCellError) Error() string {
	if e.Label == "" {
		return "dparse/core: forced a pending Cell that was never tied (missing Tie call?)"
	}
	return fmt.Sprintf("dparse/core: forced pending Cell %q that was never tied (missing Tie call?)", e.Label)
}

// UnknownVariantError is raised when a Parser[T] dispatch encounters a
// concrete type it does not recognize. Because Parser is a sealed
// interface (its methods are unexported), this can only happen from a
// bug inside this package itself — extending the algebra without
// covering every dispatch site.
type UnknownVariantError struct {
	Type string
}

func (e *UnknownVariantError) Error() string {
	return fmt.Sprintf("dparse/core: unknown parser variant %s", e.Type)
}

// Package combinator provides a small sugar layer of named grammar
// constructors over core's closed parser algebra: String, Optional,
// OneOrMore, AnyOf, Bracket, and Sep. None of these add expressive
// power — each compiles down to Cat/Alt/Rep/Red/Ex/Set/Null — they only
// save client grammars from re-deriving the same idioms by hand.
package combinator

import (
	"fmt"
	"strings"

	"github.com/dbrz/dparse/core"
)

// Optional matches either l or the empty string (muffin's
// basic.py/cups.py Optional: Alt(l, Null)).
func Optional[T core.Symbol](l core.Node[T]) core.Parser[T] {
	return core.AltP[T](l, core.NullP[T]())
}

// String matches the given sequence of terminals in order, producing
// the joined sequence as a single hashable string tree (muffin's
// basic.py/cups.py String; spec scenario 6: String("abc") on "abc"
// yields {"abc"}, not a slice of the consumed terminals).
func String[T core.Symbol](s []T) core.Parser[T] {
	if len(s) == 0 {
		return core.NullP[T]()
	}
	var cur core.Node[T] = core.ExP[T](s[0])
	for _, c := range s[1:] {
		cur = core.CatP[T](cur, core.ExP[T](c))
	}
	joined := joinSymbols(s)
	return core.RedP[T](cur, func(core.Tree) core.Tree { return joined })
}

// joinSymbols renders s as the single string tree String's reduction
// yields. Runes join character-by-character, matching scenario 6's
// "abc"; any other comparable terminal type falls back to its default
// formatting, still joined into one hashable string.
func joinSymbols[T core.Symbol](s []T) string {
	var b strings.Builder
	for _, c := range s {
		if r, ok := any(c).(rune); ok {
			b.WriteRune(r)
		} else {
			fmt.Fprintf(&b, "%v", c)
		}
	}
	return b.String()
}

// OneOrMore matches one or more repetitions of l, producing the
// trees of every repetition as a cons-chain (Pair(first, Pair(second,
// ...None{}))) — the same tuple shape core.RepP's own derivative
// builds (muffin's bran.py/berry/sexp.py OneOrMore: car-cons-cdr).
// Cat(l, Rep(l)) already produces exactly that shape, so no extra
// reduction is needed.
func OneOrMore[T core.Symbol](l core.Node[T]) core.Parser[T] {
	return core.CatP[T](l, core.RepP[T](l))
}

// AnyOf matches a single terminal drawn from the given set, ordered by
// cmp (muffin's bran.py `character = Set(string.letters + ...)`
// idiom, generalized to an arbitrary ordered terminal type via core's
// Set(S) variant instead of Python's built-in string membership).
func AnyOf[T core.Symbol](cmp func(a, b T) int, members ...T) core.Parser[T] {
	return core.SetP[T](cmp, members...)
}

// Bracket matches open, then inner, then close, discarding the
// brackets and yielding only inner's tree (a Cat-Red idiom used
// throughout muffin's berry/sexp.py, e.g. the "(" contents ")" shape,
// generalized here instead of inlined per grammar).
func Bracket[T core.Symbol](open T, inner core.Node[T], close T) core.Parser[T] {
	withOpen := core.RedP[T](
		core.CatP[T](core.ExP[T](open), inner),
		func(t core.Tree) core.Tree { return t.(core.Pair).Second },
	)
	return core.RedP[T](
		core.CatP[T](withOpen, core.ExP[T](close)),
		func(t core.Tree) core.Tree { return t.(core.Pair).First },
	)
}

// Sep matches zero or more repetitions of item separated by sep,
// yielding item's trees as a cons-chain with sep's trees discarded
// (muffin's berry/sexp.py `contents = Sep(obj, whitespace)` idiom). The
// zero-items case yields None, the same unit Rep itself uses, so a
// Sep result nests uniformly with OneOrMore/Rep trees.
func Sep[T core.Symbol](item, sep core.Node[T]) core.Parser[T] {
	tail := core.RepP[T](core.RedP[T](
		core.CatP[T](sep, item),
		func(t core.Tree) core.Tree { return t.(core.Pair).Second },
	))
	oneOrMore := core.CatP[T](item, tail)
	return core.AltP[T](oneOrMore, core.NullP[T]())
}

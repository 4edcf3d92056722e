// Package sexpr is an example client grammar: parenthesized
// S-expressions of whitespace-separated atoms, grounded directly on
// muffin/bran.py's S-expression grammar (po/pc/character/name/obj/
// whitespace/contents/sexp), tied through a grammar.Registry and built
// from the combinator sugar layer instead of bran.py's hand-inlined
// OneOrMore/Sep calls.
package sexpr

import (
	"github.com/dbrz/dparse/combinator"
	"github.com/dbrz/dparse/core"
	"github.com/dbrz/dparse/grammar"
)

func runeCmp(a, b rune) int { return int(a) - int(b) }

const punctuation = `!"#$%&'*+,-./:;<=>?@[\]^_` + "`" + `{|}~`

// Grammar is a fully-tied S-expression parser over a []rune input.
var Grammar = buildGrammar()

func buildGrammar() core.Parser[rune] {
	reg := grammar.NewRegistry[rune]()

	po := core.ExP[rune]('(')
	pc := core.ExP[rune](')')

	letters := "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ"
	digits := "0123456789"
	character := combinator.AnyOf[rune](runeCmp, []rune(letters+digits+punctuation)...)
	name := combinator.OneOrMore[rune](character)

	obj := core.AltP[rune](reg.Rule("sexp"), name)
	reg.Define("obj", obj)

	whitespace := core.RedP[rune](
		combinator.OneOrMore[rune](core.ExP[rune](' ')),
		func(core.Tree) core.Tree { return core.None{} },
	)

	contents := combinator.Sep[rune](reg.Rule("obj"), whitespace)

	sexp := core.RedP[rune](
		core.CatP[rune](po, core.CatP[rune](contents, pc)),
		func(t core.Tree) core.Tree { return t.(core.Pair).Second.(core.Pair).First },
	)
	reg.Define("sexp", sexp)

	return reg.Close("sexp")
}

// Matches reports whether s is a well-formed, whitespace-separated
// parenthesized S-expression.
func Matches(s string) bool {
	return core.Matches[rune](Grammar, []rune(s))
}

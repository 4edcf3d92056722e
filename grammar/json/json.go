// Package json is an example client grammar over a rune alphabet: a
// JSON value grammar built from core's algebra plus the combinator
// sugar layer, grounded directly on muffin/berry/json.py's rule shape
// (digit/digits/exp/frac/int/number/string/value/elements/array/
// pair/members/obj), tied through a grammar.Registry instead of
// json.py's ad hoc dict-keyed tie call.
package json

import (
	"github.com/dbrz/dparse/combinator"
	"github.com/dbrz/dparse/core"
	"github.com/dbrz/dparse/grammar"
)

func altOf(ps ...core.Node[rune]) core.Parser[rune] {
	if len(ps) == 0 {
		return core.EmptyP[rune]()
	}
	cur := ps[0]
	for _, p := range ps[1:] {
		cur = core.AltP[rune](cur, p)
	}
	return core.Force[rune](cur)
}

func catOf(ps ...core.Node[rune]) core.Parser[rune] {
	if len(ps) == 0 {
		return core.NullP[rune]()
	}
	cur := ps[0]
	for _, p := range ps[1:] {
		cur = core.CatP[rune](cur, p)
	}
	return core.Force[rune](cur)
}

func runeCmp(a, b rune) int { return int(a) - int(b) }

func digitsOf(s string) core.Parser[rune] {
	return combinator.AnyOf[rune](runeCmp, []rune(s)...)
}

// Grammar is a fully-tied JSON value parser, ready for
// core.Matches/core.Parses against a []rune input.
var Grammar = buildGrammar()

func buildGrammar() core.Parser[rune] {
	reg := grammar.NewRegistry[rune]()

	digit := digitsOf("0123456789")
	digit19 := digitsOf("123456789")

	e := altOf(
		core.ExP[rune]('e'), core.ExP[rune]('E'),
		combinator.String[rune]([]rune("e-")), combinator.String[rune]([]rune("e+")),
		combinator.String[rune]([]rune("E-")), combinator.String[rune]([]rune("E+")),
	)

	digitsRule := func() core.Parser[rune] {
		return core.AltP[rune](digit, core.CatP[rune](digit, reg.Rule("digits")))
	}
	reg.Define("digits", digitsRule())

	exp := catOf(e, reg.Rule("digits"))
	frac := catOf(core.ExP[rune]('.'), reg.Rule("digits"))

	intP := altOf(
		digit,
		core.CatP[rune](digit19, reg.Rule("digits")),
		core.CatP[rune](core.ExP[rune]('-'), digit),
		catOf(core.ExP[rune]('-'), digit19, reg.Rule("digits")),
	)

	number := altOf(
		intP,
		core.CatP[rune](intP, frac),
		core.CatP[rune](intP, exp),
		catOf(intP, frac, exp),
	)

	letters := digitsOf("abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ")
	charP := letters
	reg.Define("chars", core.AltP[rune](charP, core.CatP[rune](charP, reg.Rule("chars"))))

	stringP := core.AltP[rune](
		combinator.String[rune]([]rune(`""`)),
		catOf(core.ExP[rune]('"'), reg.Rule("chars"), core.ExP[rune]('"')),
	)

	value := altOf(
		stringP, number, reg.Rule("obj"), reg.Rule("array"),
		combinator.String[rune]([]rune("true")),
		combinator.String[rune]([]rune("false")),
		combinator.String[rune]([]rune("null")),
	)
	reg.Define("value", value)

	reg.Define("elements", core.AltP[rune](
		reg.Rule("value"),
		catOf(reg.Rule("value"), core.ExP[rune](','), reg.Rule("elements")),
	))

	reg.Define("array", core.AltP[rune](
		combinator.String[rune]([]rune("[]")),
		catOf(core.ExP[rune]('['), reg.Rule("elements"), core.ExP[rune](']')),
	))

	pair := catOf(stringP, core.ExP[rune](':'), reg.Rule("value"))
	reg.Define("members", core.AltP[rune](
		pair,
		catOf(pair, core.ExP[rune](','), reg.Rule("members")),
	))

	reg.Define("obj", core.AltP[rune](
		combinator.String[rune]([]rune("{}")),
		catOf(core.ExP[rune]('{'), reg.Rule("members"), core.ExP[rune]('}')),
	))

	return reg.Close("value")
}

// Matches reports whether s is a well-formed JSON value, within the
// subset Grammar covers: no whitespace between tokens, and string
// contents made only of ASCII letters (no digits, spaces or escapes).
func Matches(s string) bool {
	return core.Matches[rune](Grammar, []rune(s))
}

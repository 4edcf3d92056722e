// Package charclass is an example client grammar: POSIX-style
// character classes such as "[ab]", grounded directly on
// muffin/bran.py's char/charset/expr rules.
package charclass

import "github.com/dbrz/dparse/core"

var char = core.AltP[rune](core.ExP[rune]('a'), core.ExP[rune]('b'))

var charset = core.CatP[rune](
	core.ExP[rune]('['),
	core.CatP[rune](core.RepP[rune](char), core.ExP[rune](']')),
)

// Grammar matches any sequence of bare "a"/"b" characters and
// bracketed character classes like "[ab]", interleaved freely.
var Grammar = core.RepP[rune](core.AltP[rune](char, charset))

// Matches reports whether s is accepted by Grammar.
func Matches(s string) bool {
	return core.Matches[rune](Grammar, []rune(s))
}

// Package pytoken is an example client grammar over a real tokenizer:
// a lexmachine-built lexer (mirrored on gorgo's
// lr/scanner/lexmach.LMAdapter wiring) feeds a stream of token kinds
// into a derivative-engine grammar for a tiny statement language,
// rather than muffin/berry/py.py's simplified character-level
// tokenizer-by-derivatives. Grounded on muffin/berry/py.py for the
// token set and on lr/scanner/lexmach/lexmachine.go for how to drive
// lexmachine from Go.
package pytoken

import (
	"fmt"

	"github.com/timtadh/lexmachine"
	"github.com/timtadh/lexmachine/machines"

	"github.com/dbrz/dparse/combinator"
	"github.com/dbrz/dparse/core"
	"github.com/npillmayer/schuko/tracing"
)

func tracer() tracing.Trace {
	return tracing.Select("dparse.pytoken")
}

// Kind identifies a token class; it is the terminal alphabet this
// package's grammar derives over (core.Symbol requires comparable,
// which an int const satisfies directly).
type Kind int

const (
	KEOF Kind = iota
	KIdent
	KNumber
	KColon
	KSemicolon
	KParenOpen
	KParenClose
	KBraceOpen
	KBraceClose
	KBracketOpen
	KBracketClose
	KIf
	KElse
	KDef
	KReturn
)

func (k Kind) String() string {
	names := [...]string{
		"EOF", "Ident", "Number", "Colon", "Semicolon",
		"ParenOpen", "ParenClose", "BraceOpen", "BraceClose",
		"BracketOpen", "BracketClose", "If", "Else", "Def", "Return",
	}
	if int(k) < len(names) {
		return names[k]
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// Token is one lexed unit: its Kind is what the grammar derives over,
// its Lexeme carries the source text for identifiers/numbers.
type Token struct {
	Kind   Kind
	Lexeme string
}

var keywordKinds = map[string]Kind{
	"if": KIf, "else": KElse, "def": KDef, "return": KReturn,
}

var literalKinds = map[string]Kind{
	":": KColon, ";": KSemicolon,
	"(": KParenOpen, ")": KParenClose,
	"{": KBraceOpen, "}": KBraceClose,
	"[": KBracketOpen, "]": KBracketClose,
}

var lexer = buildLexer()

func buildLexer() *lexmachine.Lexer {
	lx := lexmachine.NewLexer()
	for lit, kind := range literalKinds {
		k := kind
		lx.Add([]byte("\\"+lit), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return Token{Kind: k, Lexeme: string(m.Bytes)}, nil
		})
	}
	for kw, kind := range keywordKinds {
		k := kind
		lx.Add([]byte(kw), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
			return Token{Kind: k, Lexeme: string(m.Bytes)}, nil
		})
	}
	lx.Add([]byte("[0-9]+"), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{Kind: KNumber, Lexeme: string(m.Bytes)}, nil
	})
	lx.Add([]byte("[a-zA-Z_][a-zA-Z0-9_]*"), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return Token{Kind: KIdent, Lexeme: string(m.Bytes)}, nil
	})
	lx.Add([]byte("( |\t|\n)+"), func(s *lexmachine.Scanner, m *machines.Match) (interface{}, error) {
		return nil, nil // skip whitespace
	})
	if err := lx.Compile(); err != nil {
		tracer().Errorf("error compiling pytoken DFA: %v", err)
		panic(err)
	}
	return lx
}

// Tokenize lexes src into a sequence of token Kinds (the terminal
// alphabet the Grammar below derives over) and the Tokens themselves,
// in lockstep.
func Tokenize(src string) ([]Kind, []Token, error) {
	scan, err := lexer.Scanner([]byte(src))
	if err != nil {
		return nil, nil, err
	}
	var kinds []Kind
	var toks []Token
	for {
		tok, err, eof := scan.Next()
		if err != nil {
			return nil, nil, err
		}
		if eof {
			break
		}
		t := tok.(Token)
		kinds = append(kinds, t.Kind)
		toks = append(toks, t)
	}
	return kinds, toks, nil
}

func kindCmp(a, b Kind) int { return int(a) - int(b) }

// Grammar matches any sequence (including the empty one) of the
// recognized token kinds; brackets are not checked for balance. It
// models the flat token stream
// muffin/berry/py.py's `python = Rep(Any([...]))` rule accepts, but
// over real lexer-produced Kinds instead of individual characters.
var Grammar = core.RepP[Kind](combinator.AnyOf[Kind](kindCmp,
	KIdent, KNumber, KColon, KSemicolon,
	KParenOpen, KParenClose, KBraceOpen, KBraceClose,
	KBracketOpen, KBracketClose, KIf, KElse, KDef, KReturn,
))

// Matches lexes src and reports whether the resulting token stream is
// accepted by Grammar.
func Matches(src string) (bool, error) {
	kinds, _, err := Tokenize(src)
	if err != nil {
		return false, err
	}
	return core.Matches[Kind](Grammar, kinds), nil
}

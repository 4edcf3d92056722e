/*
dparse is an interactive sandbox for the derivative parser engine,
modeled on gorgo's T.REPL (terex/terexlang/trepl). Rather than
rewriting s-expressions, it runs lines of input through one of a small
set of built-in example grammars and reports whether they match; it
does not print parse trees.

Usage:

	dparse -grammar=json
	dparse -grammar=sexpr '(a (b c) d)'
*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"
	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"

	"github.com/dbrz/dparse/core"
	"github.com/dbrz/dparse/grammar/charclass"
	"github.com/dbrz/dparse/grammar/json"
	"github.com/dbrz/dparse/grammar/pytoken"
	"github.com/dbrz/dparse/grammar/sexpr"
	"github.com/dbrz/dparse/pretty"
)

func tracer() tracing.Trace {
	return tracing.Select("dparse.cmd")
}

func traceLevel(l string) tracing.TraceLevel {
	return tracing.TraceLevelFromString(l)
}

func initDisplay() {
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// grammars maps a -grammar flag value to a matcher over a line of
// input, each backed by one of the example client grammars.
var grammars = map[string]func(string) (bool, error){
	"json": func(s string) (bool, error) { return json.Matches(s), nil },
	"sexpr": func(s string) (bool, error) { return sexpr.Matches(s), nil },
	"charclass": func(s string) (bool, error) { return charclass.Matches(s), nil },
	"pytoken": pytoken.Matches,
}

func main() {
	initDisplay()
	gtrace.SyntaxTracer = gologadapter.New()
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	grammarName := flag.String("grammar", "sexpr", "Grammar to parse against: json|sexpr|charclass|pytoken")
	flag.Parse()
	tracer().SetTraceLevel(traceLevel(*tlevel))

	matcher, ok := grammars[*grammarName]
	if !ok {
		names := maps.Keys(grammars)
		slices.Sort(names)
		fmt.Fprintf(os.Stderr, "unknown grammar %q, choose one of %v\n", *grammarName, names)
		os.Exit(2)
	}
	pterm.Info.Println("Welcome to dparse — enter lines to test against grammar " + *grammarName)

	input := strings.TrimSpace(strings.Join(flag.Args(), " "))
	if input != "" {
		runLine(input, matcher)
	}

	repl, err := readline.New("dparse> ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	defer repl.Close()

	tracer().Infof("Quit with <ctrl>D")
	for {
		line, err := repl.Readline()
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		runLine(line, matcher)
	}
}

func runLine(line string, matcher func(string) (bool, error)) {
	ok, err := matcher(line)
	if err != nil {
		pterm.Error.Println(err.Error())
		return
	}
	if ok {
		pterm.Success.Printfln("matches: %q", line)
	} else {
		pterm.Warning.Printfln("no match: %q", line)
	}
}

// printTree is available for grammars whose Parser[T] the caller
// wants to inspect directly via pretty.Sprint; kept as a small,
// discoverable entry point for that use (not wired to a flag or a
// REPL command).
func printTree(w *bufio.Writer, p core.Parser[rune]) {
	w.WriteString(pretty.Sprint[rune](p))
	w.Flush()
}

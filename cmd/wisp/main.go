/*
Wisp's command-line entry point (spec.md §6.3): no arguments starts the
REPL, one argument runs it as a source file, two or more prints a usage
line and exits non-zero.

Grounded on the teacher's main/main.go
(_examples/akashmaji946-go-mix/main/main.go) dispatch-by-os.Args shape
and colored-diagnostics style, minus the `server`, `--help`, and
`--version` extras — spec.md §6.3 names exactly three arg-count cases
and nothing else (see DESIGN.md's "Deleted teacher modules").
*/
package main

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/wisplang/wisp/eval"
	"github.com/wisplang/wisp/lexer"
	"github.com/wisplang/wisp/objects"
	"github.com/wisplang/wisp/parser"
	"github.com/wisplang/wisp/repl"
)

var redColor = color.New(color.FgRed)

func main() {
	switch len(os.Args) {
	case 1:
		repl.New().Start(os.Stdin, os.Stdout)
	case 2:
		runFile(os.Args[1])
	default:
		fmt.Fprintln(os.Stderr, "Usage: wisp [script]")
		os.Exit(1)
	}
}

// runFile reads fileName in full and executes it as one program,
// exiting non-zero on a lexical, parse, or runtime error.
func runFile(fileName string) {
	source, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}

	tokens, err := lexer.New(string(source)).ScanTokens()
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}

	statements, err := parser.New(tokens).Parse()
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		os.Exit(1)
	}

	evaluator := eval.New()
	result := evaluator.Run(statements)
	if errVal, ok := result.(*objects.Error); ok {
		redColor.Fprintf(os.Stderr, "%s\n", errVal.Message)
		os.Exit(1)
	}
}

// Package main is the entry point for golox, a tree-walking Lox
// interpreter.
//
// Package main - main.go
// Grounded on go-mix's main/main.go dispatch shape (argc-based mode
// selection, os.Exit with distinct codes, fatih/color for stderr
// diagnostics) but narrowed to golox's own CLI contract: no
// --help/--version flags and no TCP "server" mode, since none of
// those are part of a jlox-style interpreter's external surface. Exit
// codes follow the classic jlox convention instead of go-mix's
// always-exit-1 scheme: 65 for a compile-time (lex/parse) error, 70
// for an uncaught runtime error, 1 for a CLI usage error.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/logging"
	"github.com/akashmaji946/golox/parser"
	"github.com/akashmaji946/golox/repl"
)

var redColor = color.New(color.FgRed)

func main() {
	debug := flag.Bool("debug", false, "enable debug-level tracing")
	flag.Parse()

	log, err := logging.New(*debug)
	if err != nil {
		fmt.Fprintf(os.Stderr, "golox: failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Sync()

	switch args := flag.Args(); len(args) {
	case 0:
		r := repl.New(os.Stdout, os.Stderr, log)
		if err := r.Run(); err != nil {
			fmt.Fprintf(os.Stderr, "golox: %v\n", err)
			os.Exit(1)
		}
	case 1:
		runFile(args[0], log)
	default:
		redColor.Fprintln(os.Stderr, "Usage: golox [--debug] [script]")
		os.Exit(1)
	}
}

// runFile reads and interprets a single Lox source file, exiting with
// 65 on a compile (lex/parse) error, 70 on a runtime error, and 0
// otherwise.
func runFile(path string, log logging.Logger) {
	source, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "golox: could not read file %q: %v\n", path, err)
		os.Exit(1)
	}

	sink := diagnostics.New(os.Stderr)

	toks := lexer.New(string(source), sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	if sink.HadError() {
		os.Exit(65)
	}

	it := interpreter.New(os.Stdout, sink, log)
	if err := it.Interpret(stmts); err != nil {
		os.Exit(70)
	}
}

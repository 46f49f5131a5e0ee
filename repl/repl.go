// Package repl implements golox's interactive Read-Eval-Print Loop,
// the zero-argument CLI mode: each line read is a whole program,
// independently lexed, parsed, and evaluated.
//
// Package repl - repl.go
// Adapted from a GoMix-style Repl (repl/repl.go): keeps the
// chzyer/readline line editor, the fatih/color banner/prompt styling,
// and the per-line recovery loop. Drops go-mix's auto-echo of every
// successful expression's value (a GoMix-specific convenience) and its
// TCP "server" mode entirely — neither is part of golox's CLI
// contract; a REPL line only produces visible output through its own
// `print` statements, same as file mode.
package repl

import (
	"fmt"
	"io"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/interpreter"
	"github.com/akashmaji946/golox/lexer"
	"github.com/akashmaji946/golox/logging"
	"github.com/akashmaji946/golox/parser"
)

var (
	prompt   = color.New(color.FgCyan)
	errColor = color.New(color.FgRed)
	banner   = color.New(color.FgGreen)
)

// Repl is an interactive Lox session. Each line is parsed and
// evaluated independently against a single interpreter instance, so
// variables and functions declared on one line remain visible to
// later lines (they all share the interpreter's global environment).
type Repl struct {
	out    io.Writer
	errOut io.Writer
	log    logging.Logger
	it     *interpreter.Interpreter
}

// New builds a Repl writing `print` output and the banner/prompt to
// out, and diagnostics to errOut.
func New(out, errOut io.Writer, log logging.Logger) *Repl {
	sink := diagnostics.New(errOut)
	return &Repl{
		out:    out,
		errOut: errOut,
		log:    log,
		it:     interpreter.New(out, sink, log),
	}
}

// Run reads lines from the terminal via readline until EOF or an
// interrupt, executing each non-empty line as a whole
// program. It never exits non-zero itself; a compile or runtime error
// on one line is reported and the loop simply continues to the next.
func (r *Repl) Run() error {
	banner.Fprintln(r.out, "golox — a tree-walking Lox interpreter")
	fmt.Fprintln(r.out, "Enter a line of Lox source, or Ctrl-D to exit.")

	rl, err := readline.NewEx(&readline.Config{
		Prompt: prompt.Sprint("lox> "),
		Stdout: r.out,
	})
	if err != nil {
		return err
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil { // io.EOF or Interrupt
			return nil
		}
		if line == "" {
			continue
		}
		r.execLine(line)
	}
}

func (r *Repl) execLine(line string) {
	var diagBuf errBuffer
	sink := diagnostics.New(&diagBuf)

	toks := lexer.New(line, sink).ScanTokens()
	stmts := parser.New(toks, sink).Parse()
	if sink.HadError() {
		errColor.Fprint(r.errOut, diagBuf.String())
		return
	}

	r.log.Debug("executing REPL line: %q", line)
	if err := r.it.Interpret(stmts); err != nil {
		// the interpreter already reported the runtime error to its
		// own sink (constructed over errOut in New); nothing further
		// to print here.
		_ = err
	}
}

// errBuffer is a minimal io.Writer capturing the lexer/parser's
// per-line compile diagnostics so they can be colorized before being
// written to the real error stream.
type errBuffer struct {
	data []byte
}

func (b *errBuffer) Write(p []byte) (int, error) {
	b.data = append(b.data, p...)
	return len(p), nil
}

func (b *errBuffer) String() string { return string(b.data) }

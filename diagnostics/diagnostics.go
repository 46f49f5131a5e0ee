// Package diagnostics implements the error-reporting sink shared by the
// lexer and parser: two buckets (compile, runtime) with exact line
// context, replacing the process-wide error flags of an earlier design
// with an explicit object threaded through the pipeline.
package diagnostics

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/token"
)

// Sink accumulates compile diagnostics (lex + parse errors) and reports
// whether any runtime error has occurred. It never panics and never
// aborts a caller; lexing and parsing keep going after reporting.
type Sink struct {
	out      io.Writer
	hadError bool
	hadRun   bool
}

// New returns a Sink that writes formatted diagnostics to w.
func New(w io.Writer) *Sink {
	return &Sink{out: w}
}

// HadError reports whether any compile diagnostic was recorded.
func (s *Sink) HadError() bool { return s.hadError }

// HadRuntimeError reports whether a runtime error was reported.
func (s *Sink) HadRuntimeError() bool { return s.hadRun }

// Reset clears both flags.
func (s *Sink) Reset() {
	s.hadError = false
	s.hadRun = false
}

// Error reports a compile diagnostic with no token context (used by the
// lexer, which only ever knows a line number).
func (s *Sink) Error(line int, message string) {
	s.report(line, "", message)
}

// ErrorAt reports a compile diagnostic located at a token, computing the
// "<WHERE>" clause per the EOF-vs-lexeme rule.
func (s *Sink) ErrorAt(tok token.Token, message string) {
	s.report(tok.Line, Where(tok), message)
}

// Where computes the "<WHERE>" clause of the compile-diagnostic format:
// " at end" for EOF, " at 'LEXEME'" for any other token.
func Where(tok token.Token) string {
	if tok.Kind == token.EOF {
		return " at end"
	}
	return fmt.Sprintf(" at '%s'", tok.Lexeme)
}

func (s *Sink) report(line int, where, message string) {
	s.hadError = true
	fmt.Fprintf(s.out, "[line %d] Error%s: %s\n", line, where, message)
}

// RuntimeError is a reported runtime failure: MESSAGE on one line, the
// originating token's line on the next, per the external diagnostics
// format. Callers report it exactly once at the top of the call stack.
func (s *Sink) RuntimeError(line int, message string) {
	s.hadRun = true
	fmt.Fprintf(s.out, "%s\n[line %d]\n", message, line)
}

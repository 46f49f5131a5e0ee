// Package interpreter is the tree-walking evaluator: it executes a
// statement list against an environment chain, producing side effects
// (print output) and reporting runtime errors.
//
// Package interpreter - interpreter.go
// Adapted from a GoMix-style Evaluator (eval/evaluator.go,
// eval/eval_statements.go): go-mix propagates errors and returns
// as specially-tagged objects.GoMixObject values (*Error,
// *ReturnValue) checked via an IsError/type-assert helper after every
// statement. This keeps that same "check after every statement, don't
// panic" discipline but represents it the idiomatic Go way: runtime
// failure is the `error` return of every exec/eval method, and
// non-local return is a distinct `signal` value — never the same
// channel.
package interpreter

import (
	"fmt"
	"io"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/function"
	"github.com/akashmaji946/golox/logging"
	"github.com/akashmaji946/golox/objects"
	"github.com/akashmaji946/golox/std"
	"github.com/akashmaji946/golox/token"
)

// Interpreter walks an AST produced by the parser. It is strictly
// single-threaded and synchronous: there is no suspension point and no
// concurrent access to the environment chain.
type Interpreter struct {
	globals *environment.Environment
	env     *environment.Environment
	out     io.Writer
	sink    *diagnostics.Sink
	log     logging.Logger
}

// New builds an Interpreter writing `print` output to out and
// reporting runtime errors to sink. The global environment is
// pre-populated with clock().
func New(out io.Writer, sink *diagnostics.Sink, log logging.Logger) *Interpreter {
	globals := environment.New(nil)
	globals.Define("clock", std.Clock())
	return &Interpreter{globals: globals, env: globals, out: out, sink: sink, log: log}
}

// RuntimeError is a reported runtime failure, carrying the token whose
// evaluation caused it so the line in the diagnostic is always derived
// from the actual point of failure.
type RuntimeError struct {
	Token   token.Token
	Message string
}

func (e *RuntimeError) Error() string { return e.Message }

func newRuntimeError(tok token.Token, format string, args ...any) *RuntimeError {
	return &RuntimeError{Token: tok, Message: fmt.Sprintf(format, args...)}
}

// signal is the control-flow result a statement's execution can carry
// upward beyond a simple error: "returning" captures a non-local
// return in flight, unwinding out to the nearest function-call frame.
// It is never conflated with a runtime error.
type signal struct {
	returning bool
	value     objects.Value
}

var normal = signal{}

// Interpret executes a whole program's statement list in order. A
// runtime error is reported to the sink exactly once and the run
// terminates; compile diagnostics must have already been checked by
// the caller (the evaluator must not run if parsing produced any).
func (it *Interpreter) Interpret(stmts []ast.Stmt) error {
	for _, s := range stmts {
		if _, err := it.execStmt(s); err != nil {
			if rte, ok := err.(*RuntimeError); ok {
				it.sink.RuntimeError(rte.Token.Line, rte.Message)
			}
			return err
		}
	}
	return nil
}

// executeBlock runs stmts within env, restoring the previously-current
// environment on every exit path: normal completion, a runtime error,
// or a non-local return in flight. This is the scoped save/restore
// pattern the environment model requires, and it is the one place both Block execution and
// function-call bodies go through.
func (it *Interpreter) executeBlock(stmts []ast.Stmt, env *environment.Environment) (signal, error) {
	previous := it.env
	it.env = env
	defer func() { it.env = previous }()

	for _, s := range stmts {
		sig, err := it.execStmt(s)
		if err != nil {
			return normal, err
		}
		if sig.returning {
			return sig, nil
		}
	}
	return normal, nil
}

// callFunction performs Lox's function-call semantics: a new
// environment enclosed by the closure (never the caller's current
// environment — Lox has no dynamic scoping), parameters bound to
// argument values, body executed, Nil on fallthrough.
func (it *Interpreter) callFunction(fn *function.Function, args []objects.Value) (objects.Value, error) {
	it.log.Debug("calling function %s with %d args", fn.Declaration.Name.Lexeme, len(args))
	callEnv := environment.New(fn.Closure)
	for i, p := range fn.Declaration.Params {
		callEnv.Define(p.Lexeme, args[i])
	}
	sig, err := it.executeBlock(fn.Declaration.Body, callEnv)
	if err != nil {
		return nil, err
	}
	if sig.returning {
		return sig.value, nil
	}
	return objects.Nil{}, nil
}

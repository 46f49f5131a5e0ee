// Package environment implements the lexically-nested name-to-value
// bindings that back variable lookup, assignment, and closures.
//
// Package environment - environment.go
// Adapted from a GoMix-style Scope chain (scope/scope.go): dropped the
// Consts/LetVars/LetTypes bookkeeping Lox has no use for, and replaced
// the copy-on-capture helper that package offered with nothing at
// all — a LoxFunction's closure is a direct pointer into this same
// chain, never a copy, so a later mutation through one reference is
// visible through every other.
package environment

import (
	"fmt"

	"github.com/akashmaji946/golox/objects"
	"github.com/akashmaji946/golox/token"
)

// Environment is one node in a singly-linked chain of scopes. The
// innermost environment is the current scope; the outermost (Enclosing
// == nil) is the global scope.
type Environment struct {
	values    map[string]objects.Value
	Enclosing *Environment
}

// New creates a fresh environment enclosed by parent (nil for the
// global environment).
func New(parent *Environment) *Environment {
	return &Environment{
		values:    make(map[string]objects.Value),
		Enclosing: parent,
	}
}

// Define unconditionally binds name to value in this scope. Rebinding
// an existing name in the same scope simply overwrites it — Lox
// permits redeclaration of the same name within one scope.
func (e *Environment) Define(name string, value objects.Value) {
	e.values[name] = value
}

// Get searches this scope, then each enclosing scope in turn, and
// returns the bound value. A miss across the entire chain raises a
// runtime error naming the token, matching the "Undefined variable
// 'NAME'." wording of the evaluator's contract.
func (e *Environment) Get(name token.Token) (objects.Value, error) {
	if v, ok := e.values[name.Lexeme]; ok {
		return v, nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Get(name)
	}
	return nil, undefinedVariable(name)
}

// Assign searches this scope, then each enclosing scope, and updates
// the binding where it is found. Assignment never creates a new
// binding; a miss is the same "Undefined variable 'NAME'." error as Get.
func (e *Environment) Assign(name token.Token, value objects.Value) error {
	if _, ok := e.values[name.Lexeme]; ok {
		e.values[name.Lexeme] = value
		return nil
	}
	if e.Enclosing != nil {
		return e.Enclosing.Assign(name, value)
	}
	return undefinedVariable(name)
}

func undefinedVariable(name token.Token) error {
	return &UndefinedVariableError{Name: name}
}

// UndefinedVariableError is returned by Get and Assign on a chain miss.
// The interpreter translates it into a reported runtime error carrying
// Name.Line, never an ambient "current line" variable.
type UndefinedVariableError struct {
	Name token.Token
}

func (e *UndefinedVariableError) Error() string {
	return fmt.Sprintf("Undefined variable '%s'.", e.Name.Lexeme)
}

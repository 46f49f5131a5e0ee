// Package function implements LoxFunction, the runtime representation
// of a user-defined Lox function.
//
// Package function - function.go
// Adapted from a GoMix-style Function object (function/function.go):
// its {Name, Params, Body, capturedScope} fields are collapsed into a
// reference to the Lox ast.Function declaration (which carries the
// name, params and body) plus the captured environment, held by direct
// pointer, never copied on call or on return — go-mix's own
// "reference the current scope directly, not a copy" comment (and its
// closure-scope-update patch elsewhere) is exactly the behavior this
// adaptation commits to unconditionally.
package function

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/objects"
)

// Function is a LoxFunction: a reference to its declaration's AST node
// plus the environment that was active when the `fun` statement ran.
// That closure reference is what makes a returned function keep seeing
// later mutations to the scope it was declared in.
type Function struct {
	Declaration *ast.Function
	Closure     *environment.Environment
}

func New(decl *ast.Function, closure *environment.Environment) *Function {
	return &Function{Declaration: decl, Closure: closure}
}

func (*Function) Type() objects.Type { return objects.CallableType }

func (f *Function) Arity() int { return len(f.Declaration.Params) }

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.Declaration.Name.Lexeme)
}

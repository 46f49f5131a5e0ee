package function

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/objects"
	"github.com/akashmaji946/golox/token"
)

func TestFunction_ArityAndString(t *testing.T) {
	decl := &ast.Function{
		Name:   token.New(token.Identifier, "add", nil, 1),
		Params: []token.Token{ident("a"), ident("b")},
	}
	fn := New(decl, environment.New(nil))

	assert.Equal(t, 2, fn.Arity())
	assert.Equal(t, "<fn add>", fn.String())
}

func TestFunction_ClosureIsSharedNotCopied(t *testing.T) {
	env := environment.New(nil)
	env.Define("i", objects.Number(0))
	decl := &ast.Function{Name: token.New(token.Identifier, "count", nil, 1)}
	fn := New(decl, env)

	// mutating the captured environment after the function was created
	// must be visible through fn.Closure, since it's the same pointer.
	env.Define("i", objects.Number(1))
	v, err := fn.Closure.Get(ident("i"))
	assert.NoError(t, err)
	assert.Equal(t, objects.Number(1), v)
}

func ident(name string) token.Token {
	return token.New(token.Identifier, name, nil, 1)
}

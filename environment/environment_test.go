package environment

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/objects"
	"github.com/akashmaji946/golox/token"
)

func ident(name string) token.Token {
	return token.New(token.Identifier, name, nil, 1)
}

func TestDefineAndGet(t *testing.T) {
	env := New(nil)
	env.Define("a", objects.Number(1))

	v, err := env.Get(ident("a"))
	require.NoError(t, err)
	assert.Equal(t, objects.Number(1), v)
}

func TestGetSearchesEnclosingChain(t *testing.T) {
	global := New(nil)
	global.Define("a", objects.String("outer"))
	inner := New(global)

	v, err := inner.Get(ident("a"))
	require.NoError(t, err)
	assert.Equal(t, objects.String("outer"), v)
}

func TestGetUndefinedReportsName(t *testing.T) {
	env := New(nil)
	_, err := env.Get(ident("missing"))
	require.Error(t, err)
	assert.Equal(t, "Undefined variable 'missing'.", err.Error())
}

func TestAssignUpdatesInScopeWhereDefined(t *testing.T) {
	global := New(nil)
	global.Define("a", objects.Number(1))
	inner := New(global)

	require.NoError(t, inner.Assign(ident("a"), objects.Number(2)))

	v, err := global.Get(ident("a"))
	require.NoError(t, err)
	assert.Equal(t, objects.Number(2), v)

	// the inner scope never got its own binding
	_, innerOnly := inner.values["a"]
	assert.False(t, innerOnly)
}

func TestAssignUndefinedDoesNotCreateBinding(t *testing.T) {
	env := New(nil)
	err := env.Assign(ident("a"), objects.Number(1))
	require.Error(t, err)
	_, ok := env.values["a"]
	assert.False(t, ok)
}

func TestInnerScopeShadowsOuter(t *testing.T) {
	global := New(nil)
	global.Define("a", objects.Number(1))
	inner := New(global)
	inner.Define("a", objects.Number(2))

	v, err := inner.Get(ident("a"))
	require.NoError(t, err)
	assert.Equal(t, objects.Number(2), v)

	outer, err := global.Get(ident("a"))
	require.NoError(t, err)
	assert.Equal(t, objects.Number(1), outer)
}

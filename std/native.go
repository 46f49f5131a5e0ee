// Package std implements Lox's native-callable contract and its one
// built-in, clock().
//
// Package std - native.go
// Adapted from a GoMix-style Builtin{Name, Callback} registry
// (std/builtins.go, std/time.go): trimmed from dozens of registered
// functions (string/array/map/set/json/regex/http/crypto/os helpers,
// none of which Lox's standard library has room for) down to the
// single clock() Lox defines. nowMs's
// time.Now().UnixMilli() is the part of std/time.go worth keeping —
// everything else in that package (formatting, parsing, timezones) is
// gone along with it.
package std

import (
	"time"

	"github.com/akashmaji946/golox/objects"
)

// Native is a built-in Callable: it has no declaration AST and no
// closure, only a fixed arity and a Go function body.
type Native struct {
	name  string
	arity int
	fn    func(args []objects.Value) objects.Value
}

func (*Native) Type() objects.Type { return objects.CallableType }
func (n *Native) Arity() int       { return n.arity }
func (n *Native) String() string   { return "<native fn>" }

// Call invokes the wrapped Go function. Native functions never need
// the interpreter reference LoxFunction calls require: none of them
// call back into user code.
func (n *Native) Call(args []objects.Value) objects.Value {
	return n.fn(args)
}

// Clock returns the clock() native: arity 0, current wall-clock time
// in milliseconds since the epoch.
func Clock() *Native {
	return &Native{
		name:  "clock",
		arity: 0,
		fn: func(args []objects.Value) objects.Value {
			return objects.Number(float64(time.Now().UnixMilli()))
		},
	}
}

func (n *Native) Name() string { return n.name }

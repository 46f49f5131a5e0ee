package interpreter

import (
	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/function"
	"github.com/akashmaji946/golox/objects"
	"github.com/akashmaji946/golox/std"
	"github.com/akashmaji946/golox/token"
)

// evalExpr dispatches on expression shape and returns the single Value
// every expression yields.
func (it *Interpreter) evalExpr(e ast.Expr) (objects.Value, error) {
	switch n := e.(type) {
	case *ast.Literal:
		return literalValue(n.Value), nil

	case *ast.Grouping:
		return it.evalExpr(n.Inner)

	case *ast.Variable:
		v, err := it.env.Get(n.Name)
		if err != nil {
			return nil, translateEnvError(n.Name, err)
		}
		return v, nil

	case *ast.Assign:
		value, err := it.evalExpr(n.Value)
		if err != nil {
			return nil, err
		}
		if err := it.env.Assign(n.Name, value); err != nil {
			return nil, translateEnvError(n.Name, err)
		}
		return value, nil

	case *ast.Unary:
		right, err := it.evalExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return it.evalUnary(n.Op, right)

	case *ast.Logical:
		left, err := it.evalExpr(n.Left)
		if err != nil {
			return nil, err
		}
		if n.Op.Kind == token.Or {
			if objects.Truthy(left) {
				return left, nil
			}
		} else {
			if !objects.Truthy(left) {
				return left, nil
			}
		}
		return it.evalExpr(n.Right)

	case *ast.Binary:
		left, err := it.evalExpr(n.Left)
		if err != nil {
			return nil, err
		}
		right, err := it.evalExpr(n.Right)
		if err != nil {
			return nil, err
		}
		return it.evalBinary(n.Op, left, right)

	case *ast.Call:
		return it.evalCall(n)

	default:
		panic("interpreter: unreachable expression type")
	}
}

func literalValue(v any) objects.Value {
	switch val := v.(type) {
	case nil:
		return objects.Nil{}
	case bool:
		return objects.Bool(val)
	case float64:
		return objects.Number(val)
	case string:
		return objects.String(val)
	default:
		return objects.Nil{}
	}
}

func (it *Interpreter) evalUnary(op token.Token, right objects.Value) (objects.Value, error) {
	switch op.Kind {
	case token.Minus:
		n, ok := right.(objects.Number)
		if !ok {
			return nil, newRuntimeError(op, "Operand must be a number.")
		}
		return -n, nil
	case token.Bang:
		return objects.Bool(!objects.Truthy(right)), nil
	default:
		panic("interpreter: unreachable unary operator")
	}
}

func (it *Interpreter) evalBinary(op token.Token, left, right objects.Value) (objects.Value, error) {
	switch op.Kind {
	case token.Minus, token.Slash, token.Star,
		token.Greater, token.GreaterEqual, token.Less, token.LessEqual:
		l, r, ok := numberPair(left, right)
		if !ok {
			return nil, newRuntimeError(op, "Operands must be numbers.")
		}
		switch op.Kind {
		case token.Minus:
			return l - r, nil
		case token.Slash:
			return l / r, nil
		case token.Star:
			return l * r, nil
		case token.Greater:
			return objects.Bool(l > r), nil
		case token.GreaterEqual:
			return objects.Bool(l >= r), nil
		case token.Less:
			return objects.Bool(l < r), nil
		case token.LessEqual:
			return objects.Bool(l <= r), nil
		}

	case token.Plus:
		if l, r, ok := numberPair(left, right); ok {
			return l + r, nil
		}
		if l, ok := left.(objects.String); ok {
			if r, ok := right.(objects.String); ok {
				return l + r, nil
			}
		}
		return nil, newRuntimeError(op, "Operands must be two numbers or two strings.")

	case token.BangEqual:
		return objects.Bool(!objects.Equal(left, right)), nil
	case token.EqualEqual:
		return objects.Bool(objects.Equal(left, right)), nil
	}
	panic("interpreter: unreachable binary operator")
}

func numberPair(a, b objects.Value) (objects.Number, objects.Number, bool) {
	an, ok := a.(objects.Number)
	if !ok {
		return 0, 0, false
	}
	bn, ok := b.(objects.Number)
	if !ok {
		return 0, 0, false
	}
	return an, bn, true
}

func (it *Interpreter) evalCall(n *ast.Call) (objects.Value, error) {
	callee, err := it.evalExpr(n.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]objects.Value, 0, len(n.Args))
	for _, a := range n.Args {
		v, err := it.evalExpr(a)
		if err != nil {
			return nil, err
		}
		args = append(args, v)
	}

	switch fn := callee.(type) {
	case *function.Function:
		if len(args) != fn.Arity() {
			return nil, newRuntimeError(n.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return it.callFunction(fn, args)
	case *std.Native:
		if len(args) != fn.Arity() {
			return nil, newRuntimeError(n.Paren, "Expected %d arguments but got %d.", fn.Arity(), len(args))
		}
		return fn.Call(args), nil
	default:
		return nil, newRuntimeError(n.Paren, "Can only call functions and classes.")
	}
}

// translateEnvError turns an Environment lookup/assign miss (which
// knows only the variable name token) into a RuntimeError carrying
// that token's line, the form the top-level diagnostic format needs.
func translateEnvError(name token.Token, err error) error {
	return newRuntimeError(name, err.Error())
}

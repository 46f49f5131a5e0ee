package interpreter

import (
	"fmt"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/environment"
	"github.com/akashmaji946/golox/function"
	"github.com/akashmaji946/golox/objects"
)

// execStmt dispatches on statement shape via a single type switch
// rather than a visitor hierarchy.
func (it *Interpreter) execStmt(s ast.Stmt) (signal, error) {
	switch n := s.(type) {
	case *ast.Expression:
		_, err := it.evalExpr(n.Expr)
		return normal, err

	case *ast.Print:
		v, err := it.evalExpr(n.Expr)
		if err != nil {
			return normal, err
		}
		fmt.Fprintln(it.out, stringify(v))
		return normal, nil

	case *ast.Var:
		value := objects.Value(objects.Nil{})
		if n.Initializer != nil {
			v, err := it.evalExpr(n.Initializer)
			if err != nil {
				return normal, err
			}
			value = v
		}
		it.env.Define(n.Name.Lexeme, value)
		return normal, nil

	case *ast.Block:
		it.log.Debug("entering block scope")
		return it.executeBlock(n.Stmts, environment.New(it.env))

	case *ast.If:
		cond, err := it.evalExpr(n.Cond)
		if err != nil {
			return normal, err
		}
		if objects.Truthy(cond) {
			return it.execStmt(n.Then)
		}
		if n.Else != nil {
			return it.execStmt(n.Else)
		}
		return normal, nil

	case *ast.While:
		for {
			cond, err := it.evalExpr(n.Cond)
			if err != nil {
				return normal, err
			}
			if !objects.Truthy(cond) {
				return normal, nil
			}
			sig, err := it.execStmt(n.Body)
			if err != nil {
				return normal, err
			}
			if sig.returning {
				return sig, nil
			}
		}

	case *ast.Function:
		fn := function.New(n, it.env)
		it.env.Define(n.Name.Lexeme, fn)
		return normal, nil

	case *ast.Return:
		value := objects.Value(objects.Nil{})
		if n.Value != nil {
			v, err := it.evalExpr(n.Value)
			if err != nil {
				return normal, err
			}
			value = v
		}
		return signal{returning: true, value: value}, nil

	default:
		panic(fmt.Sprintf("interpreter: unreachable statement type %T", s))
	}
}

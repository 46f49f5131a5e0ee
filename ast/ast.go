// Package ast defines Lox's expression and statement sum types.
//
// Package ast - ast.go
// Adapted from a GoMix-style Visitor hierarchy (parser/node.go): the
// per-node Accept(visitor)/VisitXNode double-dispatch is dropped
// entirely per the source's own redesign note — the evaluator and
// printer instead do a single type switch over the node shape. Nodes
// are immutable once constructed: every field is set at construction
// time and never mutated afterward.
package ast

import "github.com/akashmaji946/golox/token"

// Expr is implemented by every expression node.
type Expr interface {
	exprNode()
}

// Stmt is implemented by every statement node.
type Stmt interface {
	stmtNode()
}

// Expression nodes, forming a closed sum type: Assign, Binary, Call,
// Grouping, Literal, Logical, Unary, Variable.

type Assign struct {
	Name  token.Token
	Value Expr
}

type Binary struct {
	Left  Expr
	Op    token.Token
	Right Expr
}

type Call struct {
	Callee Expr
	Paren  token.Token // closing ')', used as the error-location token
	Args   []Expr
}

type Grouping struct {
	Inner Expr
}

// Literal holds a pre-evaluated constant value: nil, a bool, a float64,
// or a string, matching the lexer's literal payload kinds plus the
// true/false/nil keywords the parser folds into literals.
type Literal struct {
	Value any
}

type Logical struct {
	Left  Expr
	Op    token.Token // "and" or "or"
	Right Expr
}

type Unary struct {
	Op    token.Token
	Right Expr
}

type Variable struct {
	Name token.Token
}

func (*Assign) exprNode()   {}
func (*Binary) exprNode()   {}
func (*Call) exprNode()     {}
func (*Grouping) exprNode() {}
func (*Literal) exprNode()  {}
func (*Logical) exprNode()  {}
func (*Unary) exprNode()    {}
func (*Variable) exprNode() {}

// Statement nodes, forming a closed sum type: Block, Expression, Function,
// If, Print, Return, Var, While. There is no For node: forStmt is
// desugared at parse time into Block{[Init, While{Cond, Block{[Body,
// Update]}}]}.

type Block struct {
	Stmts []Stmt
}

type Expression struct {
	Expr Expr
}

type Function struct {
	Name   token.Token
	Params []token.Token
	Body   []Stmt
}

type If struct {
	Cond Expr
	Then Stmt
	Else Stmt // nil if absent
}

type Print struct {
	Expr Expr
}

type Return struct {
	Keyword token.Token
	Value   Expr // nil if the return has no expression
}

type Var struct {
	Name        token.Token
	Initializer Expr // nil if absent
}

type While struct {
	Cond Expr
	Body Stmt
}

func (*Block) stmtNode()      {}
func (*Expression) stmtNode() {}
func (*Function) stmtNode()   {}
func (*If) stmtNode()         {}
func (*Print) stmtNode()      {}
func (*Return) stmtNode()     {}
func (*Var) stmtNode()        {}
func (*While) stmtNode()      {}

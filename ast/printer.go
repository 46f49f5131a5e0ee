// Printer.go re-serializes an AST back into valid Lox source text.
//
// This exists because the parser's well-formedness property is
// defined in terms of it: for any input that parses without error,
// printing the AST and re-parsing the result must yield an equivalent
// AST. It is test infrastructure, not a debugging aid, so every
// expression is fully parenthesized — that is what makes the output
// re-parse to the same structure regardless of the grammar's operator
// precedence table.
//
// Adapted from a GoMix-style PrintingVisitor (print_visitor.go), which
// dumped an indented tree description for debugging; this instead
// emits syntactically valid Lox, via a type switch rather than the
// Accept/Visit double dispatch the original used.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// PrintExpr renders a single expression as parenthesized Lox source.
func PrintExpr(e Expr) string {
	switch n := e.(type) {
	case *Literal:
		return printLiteral(n.Value)
	case *Grouping:
		// Compound inner expressions already print their own parentheses;
		// adding another pair would make the re-parsed tree print differently.
		return PrintExpr(n.Inner)
	case *Unary:
		return "(" + n.Op.Lexeme + PrintExpr(n.Right) + ")"
	case *Binary:
		return "(" + PrintExpr(n.Left) + " " + n.Op.Lexeme + " " + PrintExpr(n.Right) + ")"
	case *Logical:
		return "(" + PrintExpr(n.Left) + " " + n.Op.Lexeme + " " + PrintExpr(n.Right) + ")"
	case *Variable:
		return n.Name.Lexeme
	case *Assign:
		return "(" + n.Name.Lexeme + " = " + PrintExpr(n.Value) + ")"
	case *Call:
		args := make([]string, len(n.Args))
		for i, a := range n.Args {
			args[i] = PrintExpr(a)
		}
		return PrintExpr(n.Callee) + "(" + strings.Join(args, ", ") + ")"
	case nil:
		return ""
	default:
		return fmt.Sprintf("<unknown expr %T>", e)
	}
}

func printLiteral(v any) string {
	switch val := v.(type) {
	case nil:
		return "nil"
	case bool:
		return strconv.FormatBool(val)
	case float64:
		return strconv.FormatFloat(val, 'g', -1, 64)
	case string:
		return `"` + val + `"`
	default:
		return fmt.Sprintf("%v", val)
	}
}

// PrintStmts renders a statement list as a sequence of Lox statements,
// one per line, suitable for feeding straight back into the parser.
func PrintStmts(stmts []Stmt) string {
	var b strings.Builder
	for _, s := range stmts {
		b.WriteString(PrintStmt(s))
		b.WriteString("\n")
	}
	return b.String()
}

// PrintStmt renders a single statement as valid Lox source.
func PrintStmt(s Stmt) string {
	switch n := s.(type) {
	case *Expression:
		return PrintExpr(n.Expr) + ";"
	case *Print:
		return "print " + PrintExpr(n.Expr) + ";"
	case *Var:
		if n.Initializer != nil {
			return "var " + n.Name.Lexeme + " = " + PrintExpr(n.Initializer) + ";"
		}
		return "var " + n.Name.Lexeme + ";"
	case *Block:
		var b strings.Builder
		b.WriteString("{ ")
		for _, inner := range n.Stmts {
			b.WriteString(PrintStmt(inner))
			b.WriteString(" ")
		}
		b.WriteString("}")
		return b.String()
	case *If:
		out := "if (" + PrintExpr(n.Cond) + ") " + PrintStmt(n.Then)
		if n.Else != nil {
			out += " else " + PrintStmt(n.Else)
		}
		return out
	case *While:
		return "while (" + PrintExpr(n.Cond) + ") " + PrintStmt(n.Body)
	case *Function:
		params := make([]string, len(n.Params))
		for i, p := range n.Params {
			params[i] = p.Lexeme
		}
		return "fun " + n.Name.Lexeme + "(" + strings.Join(params, ", ") + ") " + PrintStmt(&Block{Stmts: n.Body})
	case *Return:
		if n.Value != nil {
			return "return " + PrintExpr(n.Value) + ";"
		}
		return "return;"
	case nil:
		return ""
	default:
		return fmt.Sprintf("<unknown stmt %T>", s)
	}
}

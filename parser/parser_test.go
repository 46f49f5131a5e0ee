package parser

import (
	"bytes"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/akashmaji946/golox/ast"
	"github.com/akashmaji946/golox/diagnostics"
	"github.com/akashmaji946/golox/lexer"
)

func parse(t *testing.T, src string) ([]ast.Stmt, *diagnostics.Sink, string) {
	t.Helper()
	var buf bytes.Buffer
	sink := diagnostics.New(&buf)
	toks := lexer.New(src, sink).ScanTokens()
	stmts := New(toks, sink).Parse()
	return stmts, sink, buf.String()
}

func TestParse_ExpressionStatement(t *testing.T) {
	stmts, sink, _ := parse(t, "1 + 2 * 3;")
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)

	exprStmt, ok := stmts[0].(*ast.Expression)
	require.True(t, ok)
	assert.Equal(t, "(1 + (2 * 3))", ast.PrintExpr(exprStmt.Expr))
}

func TestParse_AssignmentIsRightAssociative(t *testing.T) {
	stmts, sink, _ := parse(t, "a = b = 3;")
	require.False(t, sink.HadError())
	exprStmt := stmts[0].(*ast.Expression)
	assign := exprStmt.Expr.(*ast.Assign)
	assert.Equal(t, "a", assign.Name.Lexeme)
	inner := assign.Value.(*ast.Assign)
	assert.Equal(t, "b", inner.Name.Lexeme)
}

func TestParse_InvalidAssignmentTargetReportsWithoutSynchronizing(t *testing.T) {
	stmts, sink, out := parse(t, "1 + 2 = 3; print 1;")
	assert.True(t, sink.HadError())
	assert.Contains(t, out, "Invalid assignment target.")
	// the error does not synchronize, so both statements are still present
	require.Len(t, stmts, 2)
	_, isPrint := stmts[1].(*ast.Print)
	assert.True(t, isPrint)
}

func TestParse_ForDesugarsToBlockWhileBlock(t *testing.T) {
	stmts, sink, _ := parse(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	require.False(t, sink.HadError())
	require.Len(t, stmts, 1)

	outer, ok := stmts[0].(*ast.Block)
	require.True(t, ok)
	require.Len(t, outer.Stmts, 2)

	_, isVar := outer.Stmts[0].(*ast.Var)
	assert.True(t, isVar)

	whileStmt, ok := outer.Stmts[1].(*ast.While)
	require.True(t, ok)

	body, ok := whileStmt.Body.(*ast.Block)
	require.True(t, ok)
	require.Len(t, body.Stmts, 2)
	_, isPrint := body.Stmts[0].(*ast.Print)
	assert.True(t, isPrint)
	_, isIncrement := body.Stmts[1].(*ast.Expression)
	assert.True(t, isIncrement)
}

func TestParse_ForOmittedClausesDefaultConditionTrue(t *testing.T) {
	stmts, sink, _ := parse(t, "for (;;) print 1;")
	require.False(t, sink.HadError())
	whileStmt := stmts[0].(*ast.While)
	lit, ok := whileStmt.Cond.(*ast.Literal)
	require.True(t, ok)
	assert.Equal(t, true, lit.Value)
}

func TestParse_FunctionArityOver255Reported(t *testing.T) {
	src := "fun f("
	for i := 0; i < 256; i++ {
		if i > 0 {
			src += ", "
		}
		src += "a" + itoa(i)
	}
	src += ") { return 1; }"

	_, sink, out := parse(t, src)
	assert.True(t, sink.HadError())
	assert.Contains(t, out, "Can't have more than 255 parameters.")
}

func TestParse_PanicModeRecoverySkipsToNextStatement(t *testing.T) {
	stmts, sink, _ := parse(t, "var = ; print 1;")
	assert.True(t, sink.HadError())
	require.Len(t, stmts, 1)
	_, isPrint := stmts[0].(*ast.Print)
	assert.True(t, isPrint)
}

func TestParse_WellFormednessRoundTrip(t *testing.T) {
	sources := []string{
		`print 1 + 2;`,
		`var a = "hi"; print a + " there";`,
		`fun fib(n) { if (n < 2) return n; return fib(n-1) + fib(n-2); }`,
		`while (1 < 2) { print 1; }`,
	}
	for _, src := range sources {
		stmts, sink, _ := parse(t, src)
		require.False(t, sink.HadError(), "source: %s", src)

		printed := ast.PrintStmts(stmts)
		reparsed, sink2, _ := parse(t, printed)
		require.False(t, sink2.HadError(), "reparse of: %s", printed)

		if diff := cmp.Diff(ast.PrintStmts(stmts), ast.PrintStmts(reparsed)); diff != "" {
			t.Errorf("re-print of reparsed AST differs (-original +reparsed):\n%s", diff)
		}
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	digits := []byte{}
	for n > 0 {
		digits = append([]byte{byte('0' + n%10)}, digits...)
		n /= 10
	}
	return string(digits)
}

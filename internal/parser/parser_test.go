package parser

import (
	"testing"

	"github.com/loxgo/lox/internal/ast"
	"github.com/loxgo/lox/internal/lexer"
)

func parseSource(t *testing.T, source string) []ast.Stmt {
	t.Helper()
	toks, lexDiags := lexer.New(source).Scan()
	if len(lexDiags) != 0 {
		t.Fatalf("lex errors: %v", lexDiags)
	}
	stmts, diags := New(toks).Parse()
	if len(diags) != 0 {
		t.Fatalf("parse errors: %v", diags)
	}
	return stmts
}

func TestParseExpressionStatement(t *testing.T) {
	stmts := parseSource(t, "1 + 2 * 3;")
	if len(stmts) != 1 {
		t.Fatalf("got %d statements, want 1", len(stmts))
	}
	exprStmt, ok := stmts[0].(*ast.Expression)
	if !ok {
		t.Fatalf("got %T, want *ast.Expression", stmts[0])
	}
	bin, ok := exprStmt.Expression.(*ast.Binary)
	if !ok {
		t.Fatalf("got %T, want *ast.Binary", exprStmt.Expression)
	}
	if bin.Operator.Lexeme != "+" {
		t.Errorf("got top operator %q, want +", bin.Operator.Lexeme)
	}
	right, ok := bin.Right.(*ast.Binary)
	if !ok || right.Operator.Lexeme != "*" {
		t.Errorf("* did not bind tighter than +: right is %#v", bin.Right)
	}
}

func TestParseVarDeclaration(t *testing.T) {
	stmts := parseSource(t, "var x = 1;")
	v, ok := stmts[0].(*ast.Var)
	if !ok {
		t.Fatalf("got %T, want *ast.Var", stmts[0])
	}
	if v.Name.Lexeme != "x" {
		t.Errorf("got name %q, want x", v.Name.Lexeme)
	}
	if v.Initializer == nil {
		t.Fatal("expected initializer")
	}
}

func TestParseFunctionDeclaration(t *testing.T) {
	stmts := parseSource(t, "fun add(a, b) { return a + b; }")
	fn, ok := stmts[0].(*ast.Function)
	if !ok {
		t.Fatalf("got %T, want *ast.Function", stmts[0])
	}
	if fn.Name.Lexeme != "add" {
		t.Errorf("got name %q, want add", fn.Name.Lexeme)
	}
	if len(fn.Params) != 2 {
		t.Fatalf("got %d params, want 2", len(fn.Params))
	}
	if len(fn.Body) != 1 {
		t.Fatalf("got %d body statements, want 1", len(fn.Body))
	}
	if _, ok := fn.Body[0].(*ast.Return); !ok {
		t.Errorf("got %T, want *ast.Return", fn.Body[0])
	}
}

func TestParseForDesugarsToWhile(t *testing.T) {
	stmts := parseSource(t, "for (var i = 0; i < 3; i = i + 1) print i;")
	block, ok := stmts[0].(*ast.Block)
	if !ok {
		t.Fatalf("got %T, want *ast.Block (initializer wrapper)", stmts[0])
	}
	if len(block.Statements) != 2 {
		t.Fatalf("got %d statements in for-block, want 2", len(block.Statements))
	}
	if _, ok := block.Statements[0].(*ast.Var); !ok {
		t.Errorf("got %T, want *ast.Var for initializer", block.Statements[0])
	}
	whileStmt, ok := block.Statements[1].(*ast.While)
	if !ok {
		t.Fatalf("got %T, want *ast.While", block.Statements[1])
	}
	body, ok := whileStmt.Body.(*ast.Block)
	if !ok {
		t.Fatalf("got %T, want *ast.Block (body+increment wrapper)", whileStmt.Body)
	}
	if len(body.Statements) != 2 {
		t.Fatalf("got %d statements in while body, want 2 (body, increment)", len(body.Statements))
	}
}

func TestParseInvalidAssignmentTarget(t *testing.T) {
	toks, _ := lexer.New("1 = 2;").Scan()
	_, diags := New(toks).Parse()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].Message != "Invalid assignment target." {
		t.Errorf("got message %q", diags[0].Message)
	}
}

func TestParseSynchronizesAfterError(t *testing.T) {
	toks, _ := lexer.New("var = ; var y = 2;").Scan()
	stmts, diags := New(toks).Parse()
	if len(diags) == 0 {
		t.Fatal("expected at least one diagnostic")
	}
	if len(stmts) != 1 {
		t.Fatalf("got %d recovered statements, want 1", len(stmts))
	}
	v, ok := stmts[0].(*ast.Var)
	if !ok || v.Name.Lexeme != "y" {
		t.Errorf("recovered statement is %#v, want var y", stmts[0])
	}
}

func TestParseMissingSemicolonReportsAtToken(t *testing.T) {
	toks, _ := lexer.New("print 1").Scan()
	_, diags := New(toks).Parse()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].String() != "[line 1] Error at end: Expect ';' after value." {
		t.Errorf("got %q", diags[0].String())
	}
}

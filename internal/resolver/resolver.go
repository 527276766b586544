// Package resolver performs a static pass over the parsed statement tree,
// computing the lexical depth of every variable reference ahead of
// evaluation so the interpreter's environment lookups never need to guess
// at scope.
package resolver

import (
	"github.com/loxgo/lox/internal/ast"
	"github.com/loxgo/lox/internal/diag"
	"github.com/loxgo/lox/internal/token"
)

type functionType int

const (
	functionNone functionType = iota
	functionFunction
)

// Resolver walks a statement tree once, after parsing and before
// evaluation, to determine how many enclosing scopes separate each
// variable reference from its declaration.
type Resolver struct {
	scopes          []map[string]bool
	currentFunction functionType
	diags           []diag.Diagnostic

	// Locals maps an expression node (by pointer identity, the same scheme
	// jlox's Resolver uses for its Expr-keyed HashMap) to the number of
	// scopes between its use and its declaration. A Variable or Assign not
	// present in Locals is resolved at the global scope.
	Locals map[ast.Expr]int
}

// New creates a Resolver ready to resolve a program.
func New() *Resolver {
	return &Resolver{Locals: make(map[ast.Expr]int)}
}

// Resolve walks every top-level statement and returns the diagnostics
// collected during this call (a local read in its own initializer, duplicate
// declarations in one scope, return outside a function). A Resolver is
// reused across multiple Resolve calls by the REPL, so only the
// diagnostics produced by this call are returned — an error on one line
// must never resurface or re-fail a later, unrelated line.
func (r *Resolver) Resolve(stmts []ast.Stmt) []diag.Diagnostic {
	start := len(r.diags)
	r.resolveStmts(stmts)
	produced := r.diags[start:]
	out := make([]diag.Diagnostic, len(produced))
	copy(out, produced)
	return out
}

func (r *Resolver) resolveStmts(stmts []ast.Stmt) {
	for _, s := range stmts {
		r.resolveStmt(s)
	}
}

func (r *Resolver) resolveStmt(stmt ast.Stmt) {
	switch s := stmt.(type) {
	case *ast.Block:
		r.beginScope()
		r.resolveStmts(s.Statements)
		r.endScope()
	case *ast.Var:
		r.declare(s.Name)
		if s.Initializer != nil {
			r.resolveExpr(s.Initializer)
		}
		r.define(s.Name)
	case *ast.Function:
		r.declare(s.Name)
		r.define(s.Name)
		r.resolveFunction(s, functionFunction)
	case *ast.Expression:
		r.resolveExpr(s.Expression)
	case *ast.If:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.ThenBranch)
		if s.ElseBranch != nil {
			r.resolveStmt(s.ElseBranch)
		}
	case *ast.Print:
		r.resolveExpr(s.Expression)
	case *ast.Return:
		if r.currentFunction == functionNone {
			r.diags = append(r.diags, diag.AtTok(s.Keyword, "Can't return from top-level code."))
		}
		if s.Value != nil {
			r.resolveExpr(s.Value)
		}
	case *ast.While:
		r.resolveExpr(s.Condition)
		r.resolveStmt(s.Body)
	}
}

func (r *Resolver) resolveExpr(expr ast.Expr) {
	switch e := expr.(type) {
	case *ast.Variable:
		if len(r.scopes) > 0 {
			scope := r.scopes[len(r.scopes)-1]
			if defined, ok := scope[e.Name.Lexeme]; ok && !defined {
				r.diags = append(r.diags, diag.AtTok(e.Name, "Can't read local variable in its own initializer."))
			}
		}
		r.resolveLocal(e, e.Name)
	case *ast.Assign:
		r.resolveExpr(e.Value)
		r.resolveLocal(e, e.Name)
	case *ast.Binary:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Logical:
		r.resolveExpr(e.Left)
		r.resolveExpr(e.Right)
	case *ast.Call:
		r.resolveExpr(e.Callee)
		for _, a := range e.Arguments {
			r.resolveExpr(a)
		}
	case *ast.Grouping:
		r.resolveExpr(e.Expression)
	case *ast.Literal:
		// nothing to resolve
	case *ast.Unary:
		r.resolveExpr(e.Right)
	}
}

func (r *Resolver) resolveFunction(fn *ast.Function, kind functionType) {
	enclosingFunction := r.currentFunction
	r.currentFunction = kind

	r.beginScope()
	for _, p := range fn.Params {
		r.declare(p)
		r.define(p)
	}
	r.resolveStmts(fn.Body)
	r.endScope()

	r.currentFunction = enclosingFunction
}

func (r *Resolver) beginScope() {
	r.scopes = append(r.scopes, make(map[string]bool))
}

func (r *Resolver) endScope() {
	r.scopes = r.scopes[:len(r.scopes)-1]
}

func (r *Resolver) declare(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	scope := r.scopes[len(r.scopes)-1]
	if _, ok := scope[name.Lexeme]; ok {
		r.diags = append(r.diags, diag.AtTok(name, "Already a variable with this name in this scope."))
	}
	scope[name.Lexeme] = false
}

func (r *Resolver) define(name token.Token) {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes[len(r.scopes)-1][name.Lexeme] = true
}

func (r *Resolver) resolveLocal(expr ast.Expr, name token.Token) {
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if _, ok := r.scopes[i][name.Lexeme]; ok {
			r.Locals[expr] = len(r.scopes) - 1 - i
			return
		}
	}
	// Not found in any scope: treated as global, left out of Locals.
}

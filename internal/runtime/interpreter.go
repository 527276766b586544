package runtime

import (
	"fmt"
	"io"

	"github.com/loxgo/lox/internal/ast"
	"github.com/loxgo/lox/internal/diag"
	"github.com/loxgo/lox/internal/token"
)

// returnSignal carries a return statement's value up through the recursive
// statement evaluation to the call boundary that catches it. It implements
// error purely so it can travel through Go's existing error-return plumbing;
// it is never reported as a diagnostic or shown to a user.
type returnSignal struct {
	value any
}

func (returnSignal) Error() string { return "return" }

// Function is a user-defined function value: its declaration plus the
// environment in which it was declared, which is what makes closures work.
type Function struct {
	declaration *ast.Function
	closure     *Environment
}

// Arity returns the number of parameters the function declares.
func (f *Function) Arity() int { return len(f.declaration.Params) }

// Call runs the function body in a fresh scope nested inside its closure,
// binding each parameter to its matching argument.
func (f *Function) Call(interp *Interpreter, args []any) (any, error) {
	env := NewEnvironment(f.closure)
	for i, param := range f.declaration.Params {
		env.Define(param.Lexeme, args[i])
	}

	err := interp.executeBlock(f.declaration.Body, env)
	if err != nil {
		if rs, ok := err.(returnSignal); ok {
			return rs.value, nil
		}
		return nil, err
	}
	return nil, nil
}

func (f *Function) String() string {
	return fmt.Sprintf("<fn %s>", f.declaration.Name.Lexeme)
}

// Interpreter walks a resolved statement tree and evaluates it against a
// chain of environments, rooted at Globals.
type Interpreter struct {
	Globals  *Environment
	env      *Environment
	locals   map[ast.Expr]int
	out      io.Writer
	reporter *diag.Reporter
}

// New creates an Interpreter writing `print` output to out and reporting
// runtime errors through reporter. locals is the side table produced by the
// resolver for the program about to run.
func New(out io.Writer, reporter *diag.Reporter, locals map[ast.Expr]int) *Interpreter {
	globals := NewEnvironment(nil)
	globals.Define("clock", nativeClock{})
	return &Interpreter{
		Globals:  globals,
		env:      globals,
		locals:   locals,
		out:      out,
		reporter: reporter,
	}
}

// Interpret executes a top-level statement list, reporting (and stopping
// at) the first runtime error.
func (i *Interpreter) Interpret(stmts []ast.Stmt) {
	for _, s := range stmts {
		if err := i.execute(s); err != nil {
			if rerr, ok := err.(*diag.RuntimeError); ok {
				i.reporter.ReportRuntime(rerr)
			}
			return
		}
	}
}

func (i *Interpreter) execute(stmt ast.Stmt) error {
	switch s := stmt.(type) {
	case *ast.Expression:
		_, err := i.evaluate(s.Expression)
		return err
	case *ast.Print:
		v, err := i.evaluate(s.Expression)
		if err != nil {
			return err
		}
		fmt.Fprintln(i.out, Stringify(v))
		return nil
	case *ast.Var:
		var value any
		if s.Initializer != nil {
			v, err := i.evaluate(s.Initializer)
			if err != nil {
				return err
			}
			value = v
		}
		i.env.Define(s.Name.Lexeme, value)
		return nil
	case *ast.Block:
		return i.executeBlock(s.Statements, NewEnvironment(i.env))
	case *ast.If:
		cond, err := i.evaluate(s.Condition)
		if err != nil {
			return err
		}
		if IsTruthy(cond) {
			return i.execute(s.ThenBranch)
		}
		if s.ElseBranch != nil {
			return i.execute(s.ElseBranch)
		}
		return nil
	case *ast.While:
		for {
			cond, err := i.evaluate(s.Condition)
			if err != nil {
				return err
			}
			if !IsTruthy(cond) {
				return nil
			}
			if err := i.execute(s.Body); err != nil {
				return err
			}
		}
	case *ast.Function:
		fn := &Function{declaration: s, closure: i.env}
		i.env.Define(s.Name.Lexeme, fn)
		return nil
	case *ast.Return:
		var value any
		if s.Value != nil {
			v, err := i.evaluate(s.Value)
			if err != nil {
				return err
			}
			value = v
		}
		return returnSignal{value: value}
	default:
		return nil
	}
}

// executeBlock runs stmts in env, always restoring the interpreter's
// previous environment before returning — including when a statement
// returns an error or a returnSignal.
func (i *Interpreter) executeBlock(stmts []ast.Stmt, env *Environment) error {
	previous := i.env
	i.env = env
	defer func() { i.env = previous }()

	for _, s := range stmts {
		if err := i.execute(s); err != nil {
			return err
		}
	}
	return nil
}

func (i *Interpreter) evaluate(expr ast.Expr) (any, error) {
	switch e := expr.(type) {
	case *ast.Literal:
		return e.Value, nil
	case *ast.Grouping:
		return i.evaluate(e.Expression)
	case *ast.Unary:
		return i.evalUnary(e)
	case *ast.Binary:
		return i.evalBinary(e)
	case *ast.Logical:
		return i.evalLogical(e)
	case *ast.Variable:
		return i.lookUpVariable(e.Name, e)
	case *ast.Assign:
		value, err := i.evaluate(e.Value)
		if err != nil {
			return nil, err
		}
		if distance, ok := i.locals[e]; ok {
			i.env.AssignAt(distance, e.Name.Lexeme, value)
		} else if err := i.Globals.Assign(e.Name.Lexeme, value, e.Name.Line); err != nil {
			return nil, err
		}
		return value, nil
	case *ast.Call:
		return i.evalCall(e)
	default:
		return nil, nil
	}
}

func (i *Interpreter) lookUpVariable(name token.Token, expr ast.Expr) (any, error) {
	if distance, ok := i.locals[expr]; ok {
		return i.env.GetAt(distance, name.Lexeme), nil
	}
	return i.Globals.Get(name.Lexeme, name.Line)
}

func (i *Interpreter) evalUnary(e *ast.Unary) (any, error) {
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}
	switch e.Operator.Kind {
	case token.MINUS:
		n, ok := right.(float64)
		if !ok {
			return nil, diag.NewRuntimeError(e.Operator.Line, "Operand must be a number.")
		}
		return -n, nil
	case token.BANG:
		return !IsTruthy(right), nil
	}
	return nil, nil
}

func (i *Interpreter) evalLogical(e *ast.Logical) (any, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	if e.Operator.Kind == token.OR {
		if IsTruthy(left) {
			return left, nil
		}
	} else {
		if !IsTruthy(left) {
			return left, nil
		}
	}
	return i.evaluate(e.Right)
}

func (i *Interpreter) evalBinary(e *ast.Binary) (any, error) {
	left, err := i.evaluate(e.Left)
	if err != nil {
		return nil, err
	}
	right, err := i.evaluate(e.Right)
	if err != nil {
		return nil, err
	}

	switch e.Operator.Kind {
	case token.MINUS:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, diag.NewRuntimeError(e.Operator.Line, "Operands must be numbers.")
		}
		return l - r, nil
	case token.SLASH:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, diag.NewRuntimeError(e.Operator.Line, "Operands must be numbers.")
		}
		return l / r, nil
	case token.STAR:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, diag.NewRuntimeError(e.Operator.Line, "Operands must be numbers.")
		}
		return l * r, nil
	case token.PLUS:
		if l, ok := left.(float64); ok {
			if r, ok := right.(float64); ok {
				return l + r, nil
			}
		}
		if l, ok := left.(string); ok {
			if r, ok := right.(string); ok {
				return l + r, nil
			}
		}
		return nil, diag.NewRuntimeError(e.Operator.Line, "Operands must be two numbers or two strings.")
	case token.GREATER:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, diag.NewRuntimeError(e.Operator.Line, "Operands must be numbers.")
		}
		return l > r, nil
	case token.GREATER_EQUAL:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, diag.NewRuntimeError(e.Operator.Line, "Operands must be numbers.")
		}
		return l >= r, nil
	case token.LESS:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, diag.NewRuntimeError(e.Operator.Line, "Operands must be numbers.")
		}
		return l < r, nil
	case token.LESS_EQUAL:
		l, r, ok := numberOperands(left, right)
		if !ok {
			return nil, diag.NewRuntimeError(e.Operator.Line, "Operands must be numbers.")
		}
		return l <= r, nil
	case token.BANG_EQUAL:
		return !IsEqual(left, right), nil
	case token.EQUAL_EQUAL:
		return IsEqual(left, right), nil
	}
	return nil, nil
}

func numberOperands(left, right any) (float64, float64, bool) {
	l, ok1 := left.(float64)
	r, ok2 := right.(float64)
	return l, r, ok1 && ok2
}

func (i *Interpreter) evalCall(e *ast.Call) (any, error) {
	callee, err := i.evaluate(e.Callee)
	if err != nil {
		return nil, err
	}

	args := make([]any, len(e.Arguments))
	for idx, a := range e.Arguments {
		v, err := i.evaluate(a)
		if err != nil {
			return nil, err
		}
		args[idx] = v
	}

	fn, ok := callee.(Callable)
	if !ok {
		return nil, diag.NewRuntimeError(e.Paren.Line, "Can only call functions and classes.")
	}
	if len(args) != fn.Arity() {
		return nil, diag.NewRuntimeError(e.Paren.Line, "Expected %d arguments but got %d.", fn.Arity(), len(args))
	}
	return fn.Call(i, args)
}

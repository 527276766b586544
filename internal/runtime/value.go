package runtime

import (
	"fmt"
	"strconv"
	"time"
)

// Callable is implemented by anything invokable from a call expression:
// user-defined functions and native builtins alike.
type Callable interface {
	Arity() int
	Call(interp *Interpreter, args []any) (any, error)
	String() string
}

// IsTruthy implements the language's truthiness rule: nil and false are
// falsey, everything else — including 0 and "" — is truthy.
func IsTruthy(v any) bool {
	if v == nil {
		return false
	}
	if b, ok := v.(bool); ok {
		return b
	}
	return true
}

// IsEqual implements value equality. nil equals only nil; otherwise values
// of different dynamic types are never equal, matching Go's own `==`
// semantics for the comparable types this language exposes.
func IsEqual(a, b any) bool {
	if a == nil && b == nil {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	return a == b
}

// Stringify renders a value the way `print` and the REPL do. Floating-point
// numbers that are mathematically integral print without a trailing ".0",
// mirroring jlox's Interpreter.stringify.
func Stringify(v any) string {
	if v == nil {
		return "nil"
	}
	switch val := v.(type) {
	case float64:
		return strconv.FormatFloat(val, 'f', -1, 64)
	case bool:
		if val {
			return "true"
		}
		return "false"
	case string:
		return val
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprintf("%v", val)
	}
}

// nativeClock is the single native function spec.md requires: `clock()`
// returns the number of seconds since the Unix epoch, modeled directly on
// jlox's anonymous LoxCallable registered in Interpreter's globals.
type nativeClock struct{}

func (nativeClock) Arity() int { return 0 }

func (nativeClock) Call(_ *Interpreter, _ []any) (any, error) {
	return float64(time.Now().UnixNano()) / float64(time.Second), nil
}

func (nativeClock) String() string { return "<native fn>" }

// Package diag implements diagnostic reporting for the interpreter pipeline:
// the formatted messages scanning, parsing, resolving and evaluating produce,
// and the two status flags ("had error" / "had runtime error") later stages
// and the CLI consult to decide whether to keep going.
package diag

import (
	"fmt"
	"io"

	"github.com/loxgo/lox/internal/token"
)

// Diagnostic is a single static (scan/parse/resolve) error. Unlike a runtime
// error it never aborts its phase — the phase keeps going and collects more.
type Diagnostic struct {
	Line int

	// AtToken, when true, renders "Error at 'LEXEME'" (or "Error at end" for
	// an EOF token) instead of the bare scanner-style "Error: MSG".
	AtToken bool
	Token   token.Token

	Message string
}

// Generic builds a scanner-style diagnostic: "[line L] Error: MSG".
func Generic(line int, message string) Diagnostic {
	return Diagnostic{Line: line, Message: message}
}

// AtTok builds a parser/resolver-style diagnostic anchored at a token.
func AtTok(tok token.Token, message string) Diagnostic {
	return Diagnostic{Line: tok.Line, AtToken: true, Token: tok, Message: message}
}

// String renders the diagnostic in the exact wire format the CLI prints to
// standard error.
func (d Diagnostic) String() string {
	if !d.AtToken {
		return fmt.Sprintf("[line %d] Error: %s", d.Line, d.Message)
	}
	if d.Token.Kind == token.EOF {
		return fmt.Sprintf("[line %d] Error at end: %s", d.Line, d.Message)
	}
	return fmt.Sprintf("[line %d] Error at '%s': %s", d.Line, d.Token.Lexeme, d.Message)
}

// RuntimeError is a single error raised while evaluating; unlike a
// Diagnostic it aborts the interpreter's current top-level run.
type RuntimeError struct {
	Message string
	Line    int
}

func (e *RuntimeError) Error() string {
	return fmt.Sprintf("%s\n[line %d]", e.Message, e.Line)
}

// NewRuntimeError constructs a RuntimeError with a formatted message.
func NewRuntimeError(line int, format string, args ...any) *RuntimeError {
	return &RuntimeError{Message: fmt.Sprintf(format, args...), Line: line}
}

// Reporter accumulates the had-error / had-runtime-error flags spec.md §7
// describes and writes formatted diagnostics to a sink (normally os.Stderr).
// It is shared by the scanner, parser, resolver, and evaluator for one
// interpret call; the REPL keeps one Reporter alive across lines and resets
// only the had-error flag between them (globals and resolver state persist).
type Reporter struct {
	w               io.Writer
	hadError        bool
	hadRuntimeError bool
}

// NewReporter creates a Reporter writing to w.
func NewReporter(w io.Writer) *Reporter {
	return &Reporter{w: w}
}

// Report prints a diagnostic and sets the had-error flag.
func (r *Reporter) Report(d Diagnostic) {
	fmt.Fprintln(r.w, d.String())
	r.hadError = true
}

// ReportAll prints every diagnostic in ds, in order, and sets had-error if ds
// is non-empty.
func (r *Reporter) ReportAll(ds []Diagnostic) {
	for _, d := range ds {
		r.Report(d)
	}
}

// ReportRuntime prints a runtime error and sets the had-runtime-error flag.
func (r *Reporter) ReportRuntime(err *RuntimeError) {
	fmt.Fprintln(r.w, err.Error())
	r.hadRuntimeError = true
}

// HadError reports whether any static diagnostic has been reported since the
// last ResetError.
func (r *Reporter) HadError() bool { return r.hadError }

// HadRuntimeError reports whether a runtime error has ever been reported.
func (r *Reporter) HadRuntimeError() bool { return r.hadRuntimeError }

// ResetError clears the had-error flag. Called between REPL lines; it never
// clears had-runtime-error, which the CLI only reads once at process exit.
func (r *Reporter) ResetError() { r.hadError = false }

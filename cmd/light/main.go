// Command light is the interpreter's command-line entry point: run a
// script file, or start an interactive REPL when given no arguments.
package main

import (
	"fmt"
	"os"

	"github.com/loxgo/lox/internal/diag"
	"github.com/loxgo/lox/internal/lexer"
	"github.com/loxgo/lox/internal/parser"
	"github.com/loxgo/lox/internal/resolver"
	"github.com/loxgo/lox/internal/runtime"
)

func main() {
	args := os.Args[1:]
	switch {
	case len(args) > 1:
		fmt.Println("Usage: light [script]")
		os.Exit(64)
	case len(args) == 1:
		runFile(args[0])
	default:
		runPrompt()
	}
}

func runFile(path string) {
	source, err := os.ReadFile(path)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(66)
	}

	reporter := diag.NewReporter(os.Stderr)
	run(string(source), os.Stdout, reporter)

	if reporter.HadError() {
		os.Exit(65)
	}
	if reporter.HadRuntimeError() {
		os.Exit(70)
	}
}

// run scans, parses, resolves and evaluates one chunk of source, reporting
// any diagnostics through reporter and stopping before evaluation if a
// static error was found.
func run(source string, out *os.File, reporter *diag.Reporter) {
	toks, lexDiags := lexer.New(source).Scan()
	reporter.ReportAll(lexDiags)

	stmts, parseDiags := parser.New(toks).Parse()
	reporter.ReportAll(parseDiags)

	if reporter.HadError() {
		return
	}

	res := resolver.New()
	resolveDiags := res.Resolve(stmts)
	reporter.ReportAll(resolveDiags)

	if reporter.HadError() {
		return
	}

	interp := runtime.New(out, reporter, res.Locals)
	interp.Interpret(stmts)
}

package main

import (
	"io"
	"os"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/loxgo/lox/internal/diag"
	"github.com/loxgo/lox/internal/lexer"
	"github.com/loxgo/lox/internal/parser"
	"github.com/loxgo/lox/internal/resolver"
	"github.com/loxgo/lox/internal/runtime"
)

// runPrompt starts an interactive REPL. A single Interpreter and side table
// persist across lines so variables and functions declared on one line are
// visible on the next; only the had-error flag resets between lines, so one
// bad line never poisons the session.
func runPrompt() {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "> ",
		HistoryFile:     historyFilePath(),
		InterruptPrompt: "^C",
		EOFPrompt:       "^D",
	})
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	defer rl.Close()

	reporter := diag.NewReporter(os.Stderr)
	res := resolver.New()
	interp := runtime.New(os.Stdout, reporter, res.Locals)

	pterm.Info.Println("light REPL — Ctrl-D to exit")

	for {
		line, err := rl.Readline()
		if err == readline.ErrInterrupt {
			continue
		}
		if err == io.EOF {
			return
		}
		if err != nil {
			return
		}
		if line == "" {
			continue
		}

		replLine(line, interp, res, reporter)
		reporter.ResetError()
	}
}

func replLine(source string, interp *runtime.Interpreter, res *resolver.Resolver, reporter *diag.Reporter) {
	toks, lexDiags := lexer.New(source).Scan()
	reporter.ReportAll(lexDiags)

	stmts, parseDiags := parser.New(toks).Parse()
	reporter.ReportAll(parseDiags)
	if reporter.HadError() {
		return
	}

	resolveDiags := res.Resolve(stmts)
	reporter.ReportAll(resolveDiags)
	if reporter.HadError() {
		return
	}

	interp.Interpret(stmts)
}

func historyFilePath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".light_history"
	}
	return home + "/.light_history"
}

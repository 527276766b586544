// Command lightdump is a development tool for inspecting the scanner and
// parser stages: it prints the token stream or the parsed AST as indented
// JSON, with diagnostics in pterm's error style. It is a separate binary from cmd/light so it can take its own
// subcommand-style arguments without changing light's exact CLI contract.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/pterm/pterm"

	"github.com/loxgo/lox/internal/ast"
	"github.com/loxgo/lox/internal/diag"
	"github.com/loxgo/lox/internal/lexer"
	"github.com/loxgo/lox/internal/parser"
)

func main() {
	if len(os.Args) != 3 {
		fmt.Println("Usage: lightdump <tokens|ast> <script>")
		os.Exit(64)
	}

	mode, path := os.Args[1], os.Args[2]
	source, err := os.ReadFile(path)
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(66)
	}

	toks, lexDiags := lexer.New(string(source)).Scan()
	if len(lexDiags) > 0 {
		printDiags(lexDiags)
	}

	switch mode {
	case "tokens":
		printJSON(toks)
	case "ast":
		stmts, parseDiags := parser.New(toks).Parse()
		if len(parseDiags) > 0 {
			printDiags(parseDiags)
			os.Exit(65)
		}
		nodes := make([]map[string]any, len(stmts))
		for i, s := range stmts {
			nodes[i] = ast.NodeToMap(s)
		}
		printJSON(nodes)
	default:
		fmt.Println("Usage: lightdump <tokens|ast> <script>")
		os.Exit(64)
	}
}

func printJSON(v any) {
	out, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		pterm.Error.Println(err)
		os.Exit(1)
	}
	pterm.DefaultBasicText.Println(string(out))
}

func printDiags(ds []diag.Diagnostic) {
	for _, d := range ds {
		pterm.Error.Println(d.String())
	}
}

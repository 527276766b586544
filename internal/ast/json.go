package ast

// NodeToMap converts a Node into a tagged-union map suitable for
// encoding/json, for use by cmd/lightdump's `ast` subcommand. Every map
// carries a "node" key naming the concrete Go type, mirroring the teacher's
// token/ast dump tooling.
func NodeToMap(n Node) map[string]any {
	switch v := n.(type) {
	case *Literal:
		return m("Literal", map[string]any{"value": v.Value})
	case *Grouping:
		return m("Grouping", map[string]any{"expression": NodeToMap(v.Expression)})
	case *Unary:
		return m("Unary", map[string]any{
			"operator": v.Operator.Lexeme,
			"right":    NodeToMap(v.Right),
		})
	case *Binary:
		return m("Binary", map[string]any{
			"left":     NodeToMap(v.Left),
			"operator": v.Operator.Lexeme,
			"right":    NodeToMap(v.Right),
		})
	case *Logical:
		return m("Logical", map[string]any{
			"left":     NodeToMap(v.Left),
			"operator": v.Operator.Lexeme,
			"right":    NodeToMap(v.Right),
		})
	case *Variable:
		return m("Variable", map[string]any{"name": v.Name.Lexeme})
	case *Assign:
		return m("Assign", map[string]any{
			"name":  v.Name.Lexeme,
			"value": NodeToMap(v.Value),
		})
	case *Call:
		return m("Call", map[string]any{
			"callee":    NodeToMap(v.Callee),
			"arguments": exprSlice(v.Arguments),
		})
	case *Expression:
		return m("Expression", map[string]any{"expression": NodeToMap(v.Expression)})
	case *Print:
		return m("Print", map[string]any{"expression": NodeToMap(v.Expression)})
	case *Var:
		fields := map[string]any{"name": v.Name.Lexeme}
		if v.Initializer != nil {
			fields["initializer"] = NodeToMap(v.Initializer)
		}
		return m("Var", fields)
	case *Block:
		return m("Block", map[string]any{"statements": stmtSlice(v.Statements)})
	case *If:
		fields := map[string]any{
			"condition":  NodeToMap(v.Condition),
			"thenBranch": NodeToMap(v.ThenBranch),
		}
		if v.ElseBranch != nil {
			fields["elseBranch"] = NodeToMap(v.ElseBranch)
		}
		return m("If", fields)
	case *While:
		return m("While", map[string]any{
			"condition": NodeToMap(v.Condition),
			"body":      NodeToMap(v.Body),
		})
	case *Function:
		params := make([]string, len(v.Params))
		for i, p := range v.Params {
			params[i] = p.Lexeme
		}
		return m("Function", map[string]any{
			"name":   v.Name.Lexeme,
			"params": params,
			"body":   stmtSlice(v.Body),
		})
	case *Return:
		fields := map[string]any{}
		if v.Value != nil {
			fields["value"] = NodeToMap(v.Value)
		}
		return m("Return", fields)
	default:
		return m("Unknown", nil)
	}
}

func m(node string, fields map[string]any) map[string]any {
	out := map[string]any{"node": node}
	for k, v := range fields {
		out[k] = v
	}
	return out
}

func exprSlice(exprs []Expr) []map[string]any {
	out := make([]map[string]any, len(exprs))
	for i, e := range exprs {
		out[i] = NodeToMap(e)
	}
	return out
}

func stmtSlice(stmts []Stmt) []map[string]any {
	out := make([]map[string]any, len(stmts))
	for i, s := range stmts {
		out[i] = NodeToMap(s)
	}
	return out
}

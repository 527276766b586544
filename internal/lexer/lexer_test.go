package lexer

import (
	"testing"

	"github.com/loxgo/lox/internal/token"
)

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, len(toks))
	for i, t := range toks {
		out[i] = t.Kind
	}
	return out
}

func TestScanPunctuationAndOperators(t *testing.T) {
	toks, diags := New("(){},.-+;*!= == <= >= < >").Scan()
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := []token.Kind{
		token.LEFT_PAREN, token.RIGHT_PAREN, token.LEFT_BRACE, token.RIGHT_BRACE,
		token.COMMA, token.DOT, token.MINUS, token.PLUS, token.SEMICOLON, token.STAR,
		token.BANG_EQUAL, token.EQUAL_EQUAL, token.LESS_EQUAL, token.GREATER_EQUAL,
		token.LESS, token.GREATER, token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("got %d tokens, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScanComment(t *testing.T) {
	toks, diags := New("1 // a comment\n2").Scan()
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := []token.Kind{token.NUMBER, token.NUMBER, token.EOF}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScanString(t *testing.T) {
	toks, diags := New(`"hello world"`).Scan()
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if toks[0].Kind != token.STRING {
		t.Fatalf("got kind %s, want STRING", toks[0].Kind)
	}
	if toks[0].Literal != "hello world" {
		t.Errorf("got literal %q, want %q", toks[0].Literal, "hello world")
	}
}

func TestScanUnterminatedString(t *testing.T) {
	_, diags := New(`"unterminated`).Scan()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].Message != "Unterminated string." {
		t.Errorf("got message %q", diags[0].Message)
	}
}

func TestScanNumbers(t *testing.T) {
	toks, diags := New("123 45.67 8.").Scan()
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	if toks[0].Literal.(float64) != 123 {
		t.Errorf("got %v, want 123", toks[0].Literal)
	}
	if toks[1].Literal.(float64) != 45.67 {
		t.Errorf("got %v, want 45.67", toks[1].Literal)
	}
	// "8." should scan as NUMBER(8) followed by DOT, since a fractional part
	// requires a digit after the '.'.
	if toks[2].Literal.(float64) != 8 {
		t.Errorf("got %v, want 8", toks[2].Literal)
	}
	if toks[3].Kind != token.DOT {
		t.Errorf("got kind %s, want DOT", toks[3].Kind)
	}
}

func TestScanIdentifiersAndKeywords(t *testing.T) {
	toks, diags := New("foo bar_baz and or while").Scan()
	if len(diags) != 0 {
		t.Fatalf("unexpected diagnostics: %v", diags)
	}
	want := []token.Kind{
		token.IDENTIFIER, token.IDENTIFIER, token.AND, token.OR, token.WHILE, token.EOF,
	}
	got := kinds(toks)
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("token %d: got %s, want %s", i, got[i], want[i])
		}
	}
}

func TestScanUnexpectedCharacter(t *testing.T) {
	_, diags := New("@").Scan()
	if len(diags) != 1 {
		t.Fatalf("got %d diagnostics, want 1", len(diags))
	}
	if diags[0].Message != "Unexpected character." {
		t.Errorf("got message %q", diags[0].Message)
	}
	if diags[0].String() != "[line 1] Error: Unexpected character." {
		t.Errorf("got %q", diags[0].String())
	}
}

func TestLineTracking(t *testing.T) {
	toks, _ := New("1\n2\n\n3").Scan()
	wantLines := []int{1, 2, 4, 4}
	for i, want := range wantLines {
		if toks[i].Line != want {
			t.Errorf("token %d: got line %d, want %d", i, toks[i].Line, want)
		}
	}
}

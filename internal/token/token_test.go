package token_test

import (
	"testing"

	"github.com/ysulyma/stencil/internal/source"
	"github.com/ysulyma/stencil/internal/token"
)

func tok(k token.Kind) token.Token {
	return token.Token{Kind: k, Span: source.Span{}}
}

func TestLookupKeyword(t *testing.T) {
	tests := []struct {
		text string
		kind token.Kind
		ok   bool
	}{
		{"class", token.KwClass, true},
		{"interface", token.KwInterface, true},
		{"import", token.KwImport, true},
		{"from", token.KwFrom, true},
		{"true", token.BoolLit, true},
		{"false", token.BoolLit, true},
		{"null", token.NullLit, true},
		{"Class", 0, false}, // keywords are case-sensitive
		{"EventEmitter", 0, false},
	}
	for _, tt := range tests {
		k, ok := token.LookupKeyword(tt.text)
		if ok != tt.ok || (ok && k != tt.kind) {
			t.Errorf("LookupKeyword(%q) = (%v, %v), want (%v, %v)", tt.text, k, ok, tt.kind, tt.ok)
		}
	}
}

func TestIsLiteral(t *testing.T) {
	lits := []token.Kind{token.IntLit, token.FloatLit, token.StringLit, token.BoolLit, token.NullLit}
	for _, k := range lits {
		if !tok(k).IsLiteral() {
			t.Fatalf("%v should be literal", k)
		}
	}
	non := []token.Kind{token.Ident, token.KwClass, token.At, token.LBrace}
	for _, k := range non {
		if tok(k).IsLiteral() {
			t.Fatalf("%v must NOT be literal", k)
		}
	}
}

func TestDocText(t *testing.T) {
	tk := token.Token{
		Kind: token.Ident,
		Leading: []token.Trivia{
			{Kind: token.TriviaDocBlock, Text: "/** stale */"},
			{Kind: token.TriviaNewline, Text: "\n"},
			{Kind: token.TriviaDocBlock, Text: "/** current */"},
		},
	}
	if got := tk.DocText(); got != "/** current */" {
		t.Errorf("DocText = %q, want the last doc block", got)
	}
	if got := tok(token.Ident).DocText(); got != "" {
		t.Errorf("DocText without trivia = %q, want empty", got)
	}
}

func TestKindString(t *testing.T) {
	if got := token.Semicolon.String(); got != "';'" {
		t.Errorf("Semicolon.String() = %q", got)
	}
	if got := token.EOF.String(); got != "end of file" {
		t.Errorf("EOF.String() = %q", got)
	}
}

package lexer_test

import (
	"testing"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/lexer"
	"github.com/ysulyma/stencil/internal/source"
	"github.com/ysulyma/stencil/internal/token"
)

func lexAll(t *testing.T, src string) ([]token.Token, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.stc", []byte(src)))
	bag := diag.NewBag(16)
	lx := lexer.New(file, lexer.Options{Reporter: diag.BagReporter{Bag: bag}})

	var toks []token.Token
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks, bag
		}
	}
}

func kinds(toks []token.Token) []token.Kind {
	out := make([]token.Kind, 0, len(toks))
	for _, tk := range toks {
		out = append(out, tk.Kind)
	}
	return out
}

func TestLexDecoratedMember(t *testing.T) {
	src := `@Event({ eventName: "toggled", bubbles: false })
toggle: EventEmitter<ToggleDetail>;`

	toks, bag := lexAll(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}

	want := []token.Kind{
		token.At, token.Ident, token.LParen, token.LBrace,
		token.Ident, token.Colon, token.StringLit, token.Comma,
		token.Ident, token.Colon, token.BoolLit,
		token.RBrace, token.RParen,
		token.Ident, token.Colon, token.Ident, token.Lt, token.Ident, token.Gt, token.Semicolon,
		token.EOF,
	}
	got := kinds(toks)
	if len(got) != len(want) {
		t.Fatalf("token count = %d, want %d: %v", len(got), len(want), got)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("token %d = %v, want %v", i, got[i], want[i])
		}
	}

	if toks[1].Text != "Event" {
		t.Errorf("decorator name text = %q", toks[1].Text)
	}
	if toks[6].Text != `"toggled"` {
		t.Errorf("string literal text = %q, quotes must be kept", toks[6].Text)
	}
	if toks[10].Text != "false" {
		t.Errorf("bool literal text = %q", toks[10].Text)
	}
}

func TestLexDocBlockTrivia(t *testing.T) {
	src := "/** Fired on toggle. */\n@Event() toggle: EventEmitter<boolean>;"
	toks, bag := lexAll(t, src)
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}

	at := toks[0]
	if at.Kind != token.At {
		t.Fatalf("first token = %v, want '@'", at.Kind)
	}
	if got := at.DocText(); got != "/** Fired on toggle. */" {
		t.Errorf("doc text = %q", got)
	}
}

func TestLexPlainBlockCommentIsNotDoc(t *testing.T) {
	toks, _ := lexAll(t, "/* not docs */ name")
	var sawDoc, sawBlock bool
	for _, tr := range toks[0].Leading {
		switch tr.Kind {
		case token.TriviaDocBlock:
			sawDoc = true
		case token.TriviaBlockComment:
			sawBlock = true
		}
	}
	if sawDoc || !sawBlock {
		t.Errorf("sawDoc=%v sawBlock=%v, want plain block comment", sawDoc, sawBlock)
	}
}

func TestLexSingleQuotedString(t *testing.T) {
	toks, bag := lexAll(t, "'closed'")
	if bag.Len() != 0 {
		t.Fatalf("unexpected diagnostics: %v", bag.Items())
	}
	if toks[0].Kind != token.StringLit || toks[0].Text != "'closed'" {
		t.Errorf("token = %v %q", toks[0].Kind, toks[0].Text)
	}
}

func TestLexNumbers(t *testing.T) {
	tests := []struct {
		src  string
		kind token.Kind
	}{
		{"42", token.IntLit},
		{"1.5", token.FloatLit},
		{".5", token.FloatLit},
		{"2e10", token.FloatLit},
		{"1.5e-3", token.FloatLit},
	}
	for _, tt := range tests {
		toks, bag := lexAll(t, tt.src)
		if bag.Len() != 0 {
			t.Fatalf("%q: unexpected diagnostics", tt.src)
		}
		if toks[0].Kind != tt.kind || toks[0].Text != tt.src {
			t.Errorf("%q lexed as %v %q", tt.src, toks[0].Kind, toks[0].Text)
		}
	}
}

func TestLexUnterminatedString(t *testing.T) {
	toks, bag := lexAll(t, `"no end`)
	if toks[0].Kind != token.Invalid {
		t.Errorf("token = %v, want Invalid", toks[0].Kind)
	}
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnterminatedString {
		t.Errorf("diagnostics = %v", bag.Items())
	}
}

func TestLexNewlineInString(t *testing.T) {
	_, bag := lexAll(t, "\"broken\nrest\"")
	found := false
	for _, d := range bag.Items() {
		if d.Code == diag.LexNewlineInString {
			found = true
		}
	}
	if !found {
		t.Errorf("missing newline-in-string diagnostic: %v", bag.Items())
	}
}

func TestLexUnknownChar(t *testing.T) {
	_, bag := lexAll(t, "#")
	if bag.Len() != 1 || bag.Items()[0].Code != diag.LexUnknownChar {
		t.Errorf("diagnostics = %v", bag.Items())
	}
}

func TestPeekDoesNotConsume(t *testing.T) {
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("peek.stc", []byte("class Toggle")))
	lx := lexer.New(file, lexer.Options{})

	p1 := lx.Peek()
	p2 := lx.Peek()
	if p1.Kind != p2.Kind || p1.Span != p2.Span {
		t.Fatalf("Peek not stable: %v vs %v", p1, p2)
	}
	n := lx.Next()
	if n.Kind != token.KwClass {
		t.Fatalf("Next after Peek = %v, want 'class'", n.Kind)
	}
}

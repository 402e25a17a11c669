package lexer

import (
	"fmt"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/token"
)

var punctKinds = map[byte]token.Kind{
	'@': token.At,
	'(': token.LParen,
	')': token.RParen,
	'{': token.LBrace,
	'}': token.RBrace,
	'[': token.LBracket,
	']': token.RBracket,
	'<': token.Lt,
	'>': token.Gt,
	',': token.Comma,
	';': token.Semicolon,
	':': token.Colon,
	'?': token.Question,
	'=': token.Assign,
	'|': token.Pipe,
	'&': token.Amp,
	'.': token.Dot,
	'-': token.Minus,
}

// scanPunct scans one punctuation byte. Everything in the grammar is a
// single character, so there is no greedy multi-byte matching here.
func (lx *Lexer) scanPunct() token.Token {
	start := lx.cursor.Mark()
	b := lx.cursor.Bump()

	if kind, ok := punctKinds[b]; ok {
		sp := lx.cursor.SpanFrom(start)
		return token.Token{Kind: kind, Span: sp, Text: string(lx.file.Content[sp.Start:sp.End])}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])
	lx.errLex(diag.LexUnknownChar, sp, fmt.Sprintf("unknown character %q", text))
	return token.Token{Kind: token.Invalid, Span: sp, Text: text}
}

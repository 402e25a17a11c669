package token

import (
	"github.com/ysulyma/stencil/internal/source"
)

// Token represents a single source token with its location and trivia.
type Token struct {
	Kind    Kind
	Span    source.Span
	Text    string
	Leading []Trivia
}

// IsLiteral reports whether the token is a string, numeric, boolean, or null literal.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, StringLit, BoolLit, NullLit:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwClass, KwInterface, KwType, KwImport, KwFrom, KwExport,
		KwExtends, KwImplements, KwReadonly, KwStatic, KwDeclare:
		return true
	default:
		return false
	}
}

// IsPunct reports whether the token is punctuation.
func (t Token) IsPunct() bool {
	switch t.Kind {
	case At, LParen, RParen, LBrace, RBrace, LBracket, RBracket,
		Lt, Gt, Comma, Semicolon, Colon, Question, Assign, Pipe, Amp, Dot, Minus:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }

// DocText returns the text of the doc block attached to the token, or
// "" when it has none. Only the last doc block counts; earlier ones are
// detached by convention.
func (t Token) DocText() string {
	doc := ""
	for _, tr := range t.Leading {
		if tr.Kind == TriviaDocBlock {
			doc = tr.Text
		}
	}
	return doc
}

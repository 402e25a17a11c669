package lexer

import (
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/token"
)

// scanNumber scans decimal integer and float literals:
// [0-9]+ (.[0-9]+)? ([eE][+-]?[0-9]+)? and the ".5" form. Malformed
// literals are reported and emitted as Invalid so parsing can continue.
func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Mark()
	kind := token.IntLit

	// Leading dot: ".digits" (caller checked a digit follows).
	if lx.cursor.Peek() == '.' {
		lx.cursor.Bump()
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		return lx.finishNumber(start, kind)
	}

	for isDec(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	// Fraction.
	if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '.' && isDec(b1) {
		lx.cursor.Bump()
		kind = token.FloatLit
		for isDec(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	return lx.finishNumber(start, kind)
}

func (lx *Lexer) finishNumber(start Mark, kind token.Kind) token.Token {
	// Exponent.
	if b := lx.cursor.Peek(); b == 'e' || b == 'E' {
		mark := lx.cursor.Mark()
		lx.cursor.Bump()
		if b2 := lx.cursor.Peek(); b2 == '+' || b2 == '-' {
			lx.cursor.Bump()
		}
		if !isDec(lx.cursor.Peek()) {
			// "1e" with no digits: not an exponent, rewind.
			lx.cursor.Reset(mark)
		} else {
			kind = token.FloatLit
			for isDec(lx.cursor.Peek()) {
				lx.cursor.Bump()
			}
		}
	}

	sp := lx.cursor.SpanFrom(start)
	text := string(lx.file.Content[sp.Start:sp.End])

	// A number running straight into identifier characters is malformed.
	if isIdentStartByte(lx.cursor.Peek()) {
		for isIdentContinueByte(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
		sp = lx.cursor.SpanFrom(start)
		text = string(lx.file.Content[sp.Start:sp.End])
		lx.errLex(diag.LexBadNumber, sp, "malformed number literal '"+text+"'")
		return token.Token{Kind: token.Invalid, Span: sp, Text: text}
	}

	return token.Token{Kind: kind, Span: sp, Text: text}
}

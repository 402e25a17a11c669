package lexer

import (
	"strings"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/token"
)

// collectLeadingTrivia gathers consecutive trivia before a significant
// token:
//   - runs of spaces/tabs coalesce into one TriviaSpace
//   - runs of newlines coalesce into one TriviaNewline
//   - // ... up to the newline -> TriviaLineComment
//   - /* ... */ -> TriviaBlockComment; /** ... */ -> TriviaDocBlock
//
// Block comments do not nest; an unterminated one is reported and cut
// at EOF.
func (lx *Lexer) collectLeadingTrivia() {
	lx.hold = lx.hold[:0]
	for !lx.cursor.EOF() {
		start := lx.cursor.Mark()
		b := lx.cursor.Peek()

		if b == ' ' || b == '\t' {
			for {
				b2 := lx.cursor.Peek()
				if b2 != ' ' && b2 != '\t' {
					break
				}
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaSpace, start)
			continue
		}

		if b == '\n' {
			for lx.cursor.Peek() == '\n' {
				lx.cursor.Bump()
			}
			lx.pushTrivia(token.TriviaNewline, start)
			continue
		}

		if b == '/' {
			if lx.scanCommentIntoHold() {
				continue
			}
		}

		break
	}
}

func (lx *Lexer) pushTrivia(kind token.TriviaKind, start Mark) {
	sp := lx.cursor.SpanFrom(start)
	lx.hold = append(lx.hold, token.Trivia{
		Kind: kind,
		Span: sp,
		Text: string(lx.file.Content[sp.Start:sp.End]),
	})
}

func (lx *Lexer) scanCommentIntoHold() bool {
	start := lx.cursor.Mark()
	if !lx.cursor.Eat('/') {
		return false
	}

	switch lx.cursor.Peek() {
	case '/':
		lx.cursor.Bump()
		for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
			lx.cursor.Bump()
		}
		lx.pushTrivia(token.TriviaLineComment, start)
		return true

	case '*':
		lx.cursor.Bump()
		closed := false
		for !lx.cursor.EOF() {
			if b0, b1, ok := lx.cursor.Peek2(); ok && b0 == '*' && b1 == '/' {
				lx.cursor.Bump()
				lx.cursor.Bump()
				closed = true
				break
			}
			lx.cursor.Bump()
		}
		sp := lx.cursor.SpanFrom(start)
		if !closed {
			lx.errLex(diag.LexUnterminatedBlockComment, sp, "unterminated block comment")
		}
		text := string(lx.file.Content[sp.Start:sp.End])
		kind := token.TriviaBlockComment
		if strings.HasPrefix(text, "/**") && len(text) > 4 {
			kind = token.TriviaDocBlock
		}
		lx.hold = append(lx.hold, token.Trivia{Kind: kind, Span: sp, Text: text})
		return true

	default:
		// Not a comment; let scanPunct handle the '/'.
		lx.cursor.Reset(start)
		return false
	}
}

package parser

import (
	"strings"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/source"
	"github.com/ysulyma/stencil/internal/token"
)

// advance consumes the next token and updates lastSpan.
func (p *Parser) advance() token.Token {
	tok := p.lx.Next()
	if tok.Kind != token.EOF && tok.Kind != token.Invalid {
		p.lastSpan = tok.Span
	}
	return tok
}

// getDiagnosticSpan picks the best span for a diagnostic. At EOF the
// peeked span may be empty; point just past the last consumed token
// instead.
func (p *Parser) getDiagnosticSpan() source.Span {
	peek := p.lx.Peek()
	if peek.Kind == token.EOF && peek.Span.Start == peek.Span.End {
		if p.lastSpan.End > 0 {
			return source.Span{
				File:  p.lastSpan.File,
				Start: p.lastSpan.End,
				End:   p.lastSpan.End,
			}
		}
	}
	return peek.Span
}

// expect requires a specific token. On mismatch it reports code and
// returns an Invalid placeholder.
func (p *Parser) expect(k token.Kind, code diag.Code, msg string) (token.Token, bool) {
	if p.at(k) {
		return p.advance(), true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return token.Token{Kind: token.Invalid, Span: diagSpan, Text: p.lx.Peek().Text}, false
}

// err reports an error at the current diagnostic span.
func (p *Parser) err(code diag.Code, msg string) bool {
	return p.report(code, diag.SevError, p.getDiagnosticSpan(), msg)
}

// warn reports a warning at the current diagnostic span.
func (p *Parser) warn(code diag.Code, msg string) bool {
	return p.report(code, diag.SevWarning, p.getDiagnosticSpan(), msg)
}

func (p *Parser) report(code diag.Code, sev diag.Severity, sp source.Span, msg string) bool {
	if p.opts.Reporter == nil {
		return false
	}
	if sev == diag.SevError {
		p.opts.CurrentErrors++
	}
	if p.opts.Enough() {
		return false
	}
	p.opts.Reporter.Report(code, sev, sp, msg, nil, nil)
	return true
}

// resyncUntil skips tokens until one of kinds or EOF is at the front.
func (p *Parser) resyncUntil(kinds ...token.Kind) {
	for !p.at(token.EOF) && !p.at_or(kinds...) {
		p.advance()
	}
}

// parseIdent expects an identifier, interns it and returns the ID.
func (p *Parser) parseIdent() (source.StringID, source.Span, bool) {
	if p.at(token.Ident) {
		tok := p.advance()
		id := p.arenas.StringsInterner.Intern(tok.Text)
		return id, tok.Span, true
	}
	p.err(diag.SynExpectIdentifier, "expected identifier, got '"+p.lx.Peek().Text+"'")
	return source.NoStringID, p.getDiagnosticSpan(), false
}

// parseStringLit expects a string literal and returns its decoded
// value interned.
func (p *Parser) parseStringLit(code diag.Code, msg string) (source.StringID, source.Span, bool) {
	if p.at(token.StringLit) {
		tok := p.advance()
		id := p.arenas.StringsInterner.Intern(decodeString(tok.Text))
		return id, tok.Span, true
	}
	diagSpan := p.getDiagnosticSpan()
	p.report(code, diag.SevError, diagSpan, msg)
	return source.NoStringID, diagSpan, false
}

// pendingDoc extracts the doc block attached to the upcoming token,
// interning its raw text. NoStringID when the token carries none.
func (p *Parser) pendingDoc() source.StringID {
	text := p.lx.Peek().DocText()
	if text == "" {
		return source.NoStringID
	}
	return p.arenas.StringsInterner.Intern(text)
}

// decodeString strips the surrounding quotes from a raw string literal
// and resolves escape sequences. Unknown escapes decode to the escaped
// character itself.
func decodeString(raw string) string {
	if len(raw) >= 2 {
		q := raw[0]
		if (q == '"' || q == '\'') && raw[len(raw)-1] == q {
			raw = raw[1 : len(raw)-1]
		}
	}
	if !strings.ContainsRune(raw, '\\') {
		return raw
	}

	var sb strings.Builder
	sb.Grow(len(raw))
	for i := 0; i < len(raw); i++ {
		c := raw[i]
		if c != '\\' || i+1 == len(raw) {
			sb.WriteByte(c)
			continue
		}
		i++
		switch raw[i] {
		case 'n':
			sb.WriteByte('\n')
		case 't':
			sb.WriteByte('\t')
		case 'r':
			sb.WriteByte('\r')
		case 'b':
			sb.WriteByte('\b')
		case 'f':
			sb.WriteByte('\f')
		case 'v':
			sb.WriteByte('\v')
		case '0':
			sb.WriteByte(0)
		case 'x':
			if i+2 < len(raw) {
				if hi, ok1 := hexVal(raw[i+1]); ok1 {
					if lo, ok2 := hexVal(raw[i+2]); ok2 {
						sb.WriteByte(hi<<4 | lo)
						i += 2
						continue
					}
				}
			}
			sb.WriteByte('x')
		case 'u':
			if r, consumed, ok := decodeUnicodeEscape(raw[i:]); ok {
				sb.WriteRune(r)
				i += consumed - 1
				continue
			}
			sb.WriteByte('u')
		default:
			sb.WriteByte(raw[i])
		}
	}
	return sb.String()
}

// decodeUnicodeEscape handles the tail of \uXXXX and \u{...} starting
// at the 'u'. Returns the rune, bytes consumed including 'u', and ok.
func decodeUnicodeEscape(s string) (rune, int, bool) {
	if len(s) < 2 {
		return 0, 0, false
	}
	if s[1] == '{' {
		end := strings.IndexByte(s, '}')
		if end < 2 {
			return 0, 0, false
		}
		var r rune
		for _, c := range []byte(s[2:end]) {
			v, ok := hexVal(c)
			if !ok {
				return 0, 0, false
			}
			r = r<<4 | rune(v)
			if r > 0x10FFFF {
				return 0, 0, false
			}
		}
		return r, end + 1, true
	}
	if len(s) < 5 {
		return 0, 0, false
	}
	var r rune
	for _, c := range []byte(s[1:5]) {
		v, ok := hexVal(c)
		if !ok {
			return 0, 0, false
		}
		r = r<<4 | rune(v)
	}
	return r, 5, true
}

func hexVal(c byte) (byte, bool) {
	switch {
	case c >= '0' && c <= '9':
		return c - '0', true
	case c >= 'a' && c <= 'f':
		return c - 'a' + 10, true
	case c >= 'A' && c <= 'F':
		return c - 'A' + 10, true
	default:
		return 0, false
	}
}

package parser

import (
	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/source"
	"github.com/ysulyma/stencil/internal/token"
)

// parseExpr recognizes the literal expression language accepted in
// decorator arguments and property initializers: scalar literals,
// identifier references, arrays, object literals and negated numbers.
func (p *Parser) parseExpr() (ast.ExprID, bool) {
	switch p.lx.Peek().Kind {
	case token.StringLit:
		tok := p.advance()
		value := p.arenas.StringsInterner.Intern(decodeString(tok.Text))
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitString, value), true
	case token.IntLit:
		tok := p.advance()
		value := p.arenas.StringsInterner.Intern(tok.Text)
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitInt, value), true
	case token.FloatLit:
		tok := p.advance()
		value := p.arenas.StringsInterner.Intern(tok.Text)
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitFloat, value), true
	case token.BoolLit:
		tok := p.advance()
		value := p.arenas.StringsInterner.Intern(tok.Text)
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitBool, value), true
	case token.NullLit:
		tok := p.advance()
		value := p.arenas.StringsInterner.Intern(tok.Text)
		return p.arenas.Exprs.NewLiteral(tok.Span, ast.LitNull, value), true
	case token.Ident:
		tok := p.advance()
		name := p.arenas.StringsInterner.Intern(tok.Text)
		return p.arenas.Exprs.NewIdent(tok.Span, name), true
	case token.Minus:
		return p.parseNegExpr()
	case token.LBracket:
		return p.parseArrayExpr()
	case token.LBrace:
		return p.parseObjectExpr()
	default:
		p.err(diag.SynExpectExpression, "expected expression, got '"+p.lx.Peek().Text+"'")
		return ast.NoExprID, false
	}
}

func (p *Parser) parseNegExpr() (ast.ExprID, bool) {
	minusTok := p.advance()
	if !p.at_or(token.IntLit, token.FloatLit) {
		p.err(diag.SynExpectExpression, "expected numeric literal after '-'")
		return ast.NoExprID, false
	}
	operand, ok := p.parseExpr()
	if !ok {
		return ast.NoExprID, false
	}
	span := minusTok.Span.Cover(p.arenas.Exprs.Get(operand).Span)
	return p.arenas.Exprs.NewNeg(span, operand), true
}

func (p *Parser) parseArrayExpr() (ast.ExprID, bool) {
	openTok := p.advance() // LBracket

	var elements []ast.ExprID
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		elem, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		elements = append(elements, elem)

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' to close array literal")
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewArray(openTok.Span.Cover(closeTok.Span), elements), true
}

func (p *Parser) parseObjectExpr() (ast.ExprID, bool) {
	openTok := p.advance() // LBrace

	var entries []ast.ObjectEntry
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		key, keySpan, ok := p.parseObjectKey()
		if !ok {
			return ast.NoExprID, false
		}
		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after object key"); !ok {
			return ast.NoExprID, false
		}
		value, ok := p.parseExpr()
		if !ok {
			return ast.NoExprID, false
		}
		entries = append(entries, ast.ObjectEntry{Key: key, KeySpan: keySpan, Value: value})

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close object literal")
	if !ok {
		return ast.NoExprID, false
	}
	return p.arenas.Exprs.NewObject(openTok.Span.Cover(closeTok.Span), entries), true
}

// parseObjectKey accepts an identifier or a quoted key. Quoted keys
// are stored decoded so lookups see one spelling.
func (p *Parser) parseObjectKey() (source.StringID, source.Span, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident:
		return p.parseIdent()
	case token.StringLit:
		tok := p.advance()
		id := p.arenas.StringsInterner.Intern(decodeString(tok.Text))
		return id, tok.Span, true
	default:
		p.err(diag.SynExpectIdentifier, "expected object key, got '"+p.lx.Peek().Text+"'")
		return source.NoStringID, p.getDiagnosticSpan(), false
	}
}

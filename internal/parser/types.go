package parser

import (
	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/token"
)

// parseType recognizes a type annotation:
//
//	union:   T | U | V
//	array:   T[] (suffix, may repeat)
//	named:   Ident, Ident<T, U>
//	object:  { name: T; other?: U }
//	literal: "value"
func (p *Parser) parseType() (ast.TypeID, bool) {
	first, ok := p.parseTypePostfix()
	if !ok {
		return ast.NoTypeID, false
	}
	if !p.at(token.Pipe) {
		return first, true
	}

	members := []ast.TypeID{first}
	for p.at(token.Pipe) {
		p.advance()
		next, ok := p.parseTypePostfix()
		if !ok {
			return ast.NoTypeID, false
		}
		members = append(members, next)
	}

	span := p.arenas.Types.Get(first).Span.Cover(p.arenas.Types.Get(members[len(members)-1]).Span)
	return p.arenas.Types.NewUnion(span, members), true
}

// parseTypePostfix parses a primary type plus any [] suffixes.
func (p *Parser) parseTypePostfix() (ast.TypeID, bool) {
	id, ok := p.parseTypePrimary()
	if !ok {
		return ast.NoTypeID, false
	}
	for p.at(token.LBracket) {
		p.advance()
		closeTok, ok := p.expect(token.RBracket, diag.SynUnclosedBracket, "expected ']' in array type")
		if !ok {
			return ast.NoTypeID, false
		}
		span := p.arenas.Types.Get(id).Span.Cover(closeTok.Span)
		id = p.arenas.Types.NewArray(span, id)
	}
	return id, true
}

func (p *Parser) parseTypePrimary() (ast.TypeID, bool) {
	switch p.lx.Peek().Kind {
	case token.Ident:
		return p.parseTypeNamed()
	case token.LBrace:
		return p.parseTypeObject()
	case token.StringLit:
		tok := p.advance()
		value := p.arenas.StringsInterner.Intern(decodeString(tok.Text))
		return p.arenas.Types.NewStringLit(tok.Span, value), true
	default:
		p.err(diag.SynExpectType, "expected type, got '"+p.lx.Peek().Text+"'")
		return ast.NoTypeID, false
	}
}

// parseTypeNamed parses `Ident` optionally followed by `<T, U, ...>`.
func (p *Parser) parseTypeNamed() (ast.TypeID, bool) {
	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoTypeID, false
	}

	span := nameSpan
	var args []ast.TypeID
	if p.at(token.Lt) {
		p.advance()
		for !p.at(token.Gt) && !p.at(token.EOF) {
			arg, ok := p.parseType()
			if !ok {
				return ast.NoTypeID, false
			}
			args = append(args, arg)

			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		closeTok, ok := p.expect(token.Gt, diag.SynUnclosedAngle, "expected '>' to close type arguments")
		if !ok {
			return ast.NoTypeID, false
		}
		span = span.Cover(closeTok.Span)
	}

	return p.arenas.Types.NewNamed(span, name, nameSpan, args), true
}

// parseTypeObject parses `{ name: T; other?: U }`. Fields may be
// separated by ';' or ','; a trailing separator is allowed.
func (p *Parser) parseTypeObject() (ast.TypeID, bool) {
	openTok := p.advance() // LBrace

	var fields []ast.TypeField
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		name, nameSpan, ok := p.parseObjectKey()
		if !ok {
			return ast.NoTypeID, false
		}

		optional := false
		if p.at(token.Question) {
			p.advance()
			optional = true
		}

		if _, ok := p.expect(token.Colon, diag.SynExpectColon, "expected ':' after field name"); !ok {
			return ast.NoTypeID, false
		}
		fieldType, ok := p.parseType()
		if !ok {
			return ast.NoTypeID, false
		}

		fields = append(fields, ast.TypeField{
			Name:     name,
			NameSpan: nameSpan,
			Optional: optional,
			Type:     fieldType,
		})

		if p.at_or(token.Semicolon, token.Comma) {
			p.advance()
			continue
		}
		break
	}

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close object type")
	if !ok {
		return ast.NoTypeID, false
	}
	return p.arenas.Types.NewObject(openTok.Span.Cover(closeTok.Span), fields), true
}

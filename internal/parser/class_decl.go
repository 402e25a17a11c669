package parser

import (
	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/source"
	"github.com/ysulyma/stencil/internal/token"
)

// parseClassDecl recognizes:
//
//	class Name { members }
//	class Name extends Base { members }
//	class Name implements I, J { members }
//
// The decorator/modifier prefix is parsed by the caller. The
// implements clause is accepted and discarded; interface conformance
// has no bearing on extracted metadata.
func (p *Parser) parseClassDecl(doc source.StringID, decorators []ast.DecoratorID, exported bool) (ast.DeclID, bool) {
	classTok := p.advance() // KwClass, guaranteed by the caller

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoDeclID, false
	}

	extends := source.NoStringID
	if p.at(token.KwExtends) {
		p.advance()
		extends, _, ok = p.parseIdent()
		if !ok {
			return ast.NoDeclID, false
		}
	}
	if p.at(token.KwImplements) {
		p.advance()
		for {
			if _, _, ok := p.parseIdent(); !ok {
				return ast.NoDeclID, false
			}
			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
	}

	if _, ok := p.expect(token.LBrace, diag.SynUnclosedBrace, "expected '{' to open class body"); !ok {
		return ast.NoDeclID, false
	}

	members := p.parseClassBody()

	closeTok, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close class body")
	if !ok {
		return ast.NoDeclID, false
	}

	span := classTok.Span.Cover(closeTok.Span)
	if len(decorators) != 0 {
		span = p.arenas.Decorators.Get(decorators[0]).Span.Cover(closeTok.Span)
	}
	id := p.arenas.Decls.NewClass(span, ast.DeclClassData{
		Name:       name,
		NameSpan:   nameSpan,
		Doc:        doc,
		Decorators: decorators,
		Extends:    extends,
		Members:    members,
		Exported:   exported,
	})
	return id, true
}

// parseClassBody loops over members until '}' or EOF, resyncing after
// each malformed member so one mistake does not consume the class.
func (p *Parser) parseClassBody() []ast.MemberID {
	var members []ast.MemberID
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.Semicolon) {
			p.advance() // stray ';' between members
			continue
		}
		memberID, ok := p.parseMember()
		if !ok {
			p.resyncMember()
			continue
		}
		members = append(members, memberID)
	}
	return members
}

// resyncMember recovers inside a class body: skip to ';', '}', or the
// start of the next member, then consume a trailing ';'.
func (p *Parser) resyncMember() {
	p.resyncUntil(token.Semicolon, token.RBrace, token.At, token.KwReadonly, token.KwStatic)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

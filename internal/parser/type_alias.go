package parser

import (
	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/source"
	"github.com/ysulyma/stencil/internal/token"
)

// parseTypeAliasDecl recognizes `type Name = Type;`.
func (p *Parser) parseTypeAliasDecl(doc source.StringID, exported bool) (ast.DeclID, bool) {
	typeTok := p.advance() // KwType, guaranteed by the caller

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoDeclID, false
	}

	if _, ok := p.expect(token.Assign, diag.SynUnexpectedToken, "expected '=' after type alias name"); !ok {
		return ast.NoDeclID, false
	}

	aliased, ok := p.parseType()
	if !ok {
		return ast.NoDeclID, false
	}

	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after type alias")
	if !ok {
		return ast.NoDeclID, false
	}

	id := p.arenas.Decls.NewTypeAlias(typeTok.Span.Cover(semi.Span), ast.DeclTypeAliasData{
		Name:     name,
		NameSpan: nameSpan,
		Doc:      doc,
		Type:     aliased,
		Exported: exported,
	})
	return id, true
}

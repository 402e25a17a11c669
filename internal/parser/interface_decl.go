package parser

import (
	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/source"
	"github.com/ysulyma/stencil/internal/token"
)

// parseInterfaceDecl recognizes:
//
//	interface Name { fields }
//	interface Name extends Base { fields }
//
// The body reuses the object type grammar, so an interface behaves
// exactly like a named `{ ... }` shape during type resolution.
func (p *Parser) parseInterfaceDecl(doc source.StringID, exported bool) (ast.DeclID, bool) {
	ifaceTok := p.advance() // KwInterface, guaranteed by the caller

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

	if !p.at(token.LBrace) {
		p.err(diag.SynUnclosedBrace, "expected '{' to open interface body")
		return ast.NoDeclID, false
	}
	body, ok := p.parseTypeObject()
	if !ok {
		return ast.NoDeclID, false
	}

	span := ifaceTok.Span.Cover(p.arenas.Types.Get(body).Span)
	id := p.arenas.Decls.NewInterface(span, ast.DeclInterfaceData{
		Name:     name,
		NameSpan: nameSpan,
		Doc:      doc,
		Extends:  extends,
		Body:     body,
		Exported: exported,
	})
	return id, true
}

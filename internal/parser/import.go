package parser

import (
	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/token"
)

// parseImportDecl recognizes:
//
//	import { Ident } from "path";
//	import { Ident, Ident, ... } from "path";
//
// A trailing comma before '}' is allowed. The module specifier is
// stored decoded, without quotes.
func (p *Parser) parseImportDecl() (ast.DeclID, bool) {
	importTok := p.advance() // KwImport, guaranteed by the caller

	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken, "expected '{' after 'import'"); !ok {
		return ast.NoDeclID, false
	}

	names := make([]ast.ImportName, 0, 2)
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		name, sp, ok := p.parseIdent()
		if !ok {
			return ast.NoDeclID, false
		}
		names = append(names, ast.ImportName{Name: name, Span: sp})

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	if _, ok := p.expect(token.RBrace, diag.SynUnclosedBrace, "expected '}' to close import clause"); !ok {
		return ast.NoDeclID, false
	}
	if _, ok := p.expect(token.KwFrom, diag.SynExpectFrom, "expected 'from' after import clause"); !ok {
		return ast.NoDeclID, false
	}

	from, _, ok := p.parseStringLit(diag.SynExpectString, "expected module path string after 'from'")
	if !ok {
		return ast.NoDeclID, false
	}

	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after import declaration")
	if !ok {
		return ast.NoDeclID, false
	}

	span := importTok.Span.Cover(semi.Span)
	id := p.arenas.Decls.NewImport(span, names, from)
	return id, true
}

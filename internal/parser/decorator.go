package parser

import (
	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/token"
)

// parseDecorators collects a run of `@Name` / `@Name(args)` prefixes.
// An empty run is not an error; a malformed decorator is.
func (p *Parser) parseDecorators() ([]ast.DecoratorID, bool) {
	var ids []ast.DecoratorID
	for p.at(token.At) {
		id, ok := p.parseDecorator()
		if !ok {
			return ids, false
		}
		ids = append(ids, id)
	}
	return ids, true
}

// parseDecorator recognizes one annotation:
//
//	@Name
//	@Name()
//	@Name(expr, expr, ...)
func (p *Parser) parseDecorator() (ast.DecoratorID, bool) {
	atTok := p.advance() // At, guaranteed by the caller

	name, nameSpan, ok := p.parseIdent()
	if !ok {
		return ast.NoDecoratorID, false
	}

	span := atTok.Span.Cover(nameSpan)
	var args []ast.ExprID
	if p.at(token.LParen) {
		p.advance()
		for !p.at(token.RParen) && !p.at(token.EOF) {
			arg, ok := p.parseExpr()
			if !ok {
				return ast.NoDecoratorID, false
			}
			args = append(args, arg)

			if p.at(token.Comma) {
				p.advance()
				continue
			}
			break
		}
		closeTok, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close decorator arguments")
		if !ok {
			return ast.NoDecoratorID, false
		}
		span = span.Cover(closeTok.Span)
	}

	id := p.arenas.Decorators.New(ast.Decorator{
		Name:     name,
		NameSpan: nameSpan,
		Span:     span,
		Args:     args,
	})
	return id, true
}

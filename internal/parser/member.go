package parser

import (
	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/source"
	"github.com/ysulyma/stencil/internal/token"
)

// parseMember recognizes one class member:
//
//	property: [decorators] [modifiers] name[?] [: Type] [= Expr] ;
//	method:   [decorators] [modifiers] name ( params ) [: Type] ;
//
// Methods are declaration-only; bodies are not part of the language.
func (p *Parser) parseMember() (ast.MemberID, bool) {
	doc := p.pendingDoc()
	startSpan := p.lx.Peek().Span

	decorators, ok := p.parseDecorators()
	if !ok {
		return ast.NoMemberID, false
	}
	if doc == source.NoStringID {
		// The doc block may sit between the decorators and the name.
		doc = p.pendingDoc()
	}

	readonly, static, nameTok, ok := p.parseMemberModifiersAndName()
	if !ok {
		return ast.NoMemberID, false
	}
	name := p.arenas.StringsInterner.Intern(nameTok.Text)
	nameSpan := nameTok.Span

	optional := false
	if p.at(token.Question) {
		p.advance()
		optional = true
	}

	if p.at(token.LParen) {
		return p.parseMethodRest(doc, decorators, static, startSpan, name, nameSpan)
	}

	var propType ast.TypeID
	if p.at(token.Colon) {
		p.advance()
		propType, ok = p.parseType()
		if !ok {
			return ast.NoMemberID, false
		}
	}

	var defaultExpr ast.ExprID
	if p.at(token.Assign) {
		p.advance()
		defaultExpr, ok = p.parseExpr()
		if !ok {
			return ast.NoMemberID, false
		}
	}

	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after property declaration")
	if !ok {
		return ast.NoMemberID, false
	}

	id := p.arenas.Members.NewProperty(startSpan.Cover(semi.Span), ast.MemberPropertyData{
		Name:       name,
		NameSpan:   nameSpan,
		Doc:        doc,
		Decorators: decorators,
		Type:       propType,
		Default:    defaultExpr,
		Optional:   optional,
		Readonly:   readonly,
		Static:     static,
	})
	return id, true
}

// parseMemberModifiersAndName consumes `readonly`/`static` modifiers
// followed by the member name. A modifier keyword directly followed by
// ':', '?', '(', '=' or ';' is itself the name, so `static: boolean;`
// declares a property called static.
func (p *Parser) parseMemberModifiersAndName() (readonly, static bool, name token.Token, ok bool) {
	var mods []token.Token
	for p.at_or(token.KwReadonly, token.KwStatic) {
		mods = append(mods, p.advance())
	}

	if len(mods) != 0 && p.at_or(token.Colon, token.Question, token.LParen, token.Assign, token.Semicolon) {
		name = mods[len(mods)-1]
		mods = mods[:len(mods)-1]
	} else {
		if !p.at(token.Ident) && !p.lx.Peek().IsKeyword() {
			p.err(diag.SynExpectMember, "expected member name, got '"+p.lx.Peek().Text+"'")
			return false, false, token.Token{}, false
		}
		name = p.advance()
	}

	for _, mod := range mods {
		var seen *bool
		if mod.Kind == token.KwReadonly {
			seen = &readonly
		} else {
			seen = &static
		}
		if *seen {
			p.report(diag.SynDuplicateModifier, diag.SevWarning, mod.Span, "duplicate '"+mod.Text+"' modifier")
		}
		*seen = true
	}
	return readonly, static, name, true
}

// parseMethodRest parses from the opening paren of a method signature
// through the terminating semicolon.
func (p *Parser) parseMethodRest(
	doc source.StringID,
	decorators []ast.DecoratorID,
	static bool,
	startSpan source.Span,
	name source.StringID,
	nameSpan source.Span,
) (ast.MemberID, bool) {
	params, ok := p.parseParams()
	if !ok {
		return ast.NoMemberID, false
	}

	var returnType ast.TypeID
	if p.at(token.Colon) {
		p.advance()
		returnType, ok = p.parseType()
		if !ok {
			return ast.NoMemberID, false
		}
	}

	semi, ok := p.expect(token.Semicolon, diag.SynExpectSemicolon, "expected ';' after method signature")
	if !ok {
		return ast.NoMemberID, false
	}

	id := p.arenas.Members.NewMethod(startSpan.Cover(semi.Span), ast.MemberMethodData{
		Name:       name,
		NameSpan:   nameSpan,
		Doc:        doc,
		Decorators: decorators,
		Params:     params,
		Return:     returnType,
		Static:     static,
	})
	return id, true
}

// parseParams parses `( name[?] [: Type], ... )`.
func (p *Parser) parseParams() ([]ast.ParamID, bool) {
	if _, ok := p.expect(token.LParen, diag.SynUnclosedParen, "expected '(' to open parameter list"); !ok {
		return nil, false
	}

	var params []ast.ParamID
	for !p.at(token.RParen) && !p.at(token.EOF) {
		name, nameSpan, ok := p.parseIdent()
		if !ok {
			return nil, false
		}

		optional := false
		if p.at(token.Question) {
			p.advance()
			optional = true
		}

		var paramType ast.TypeID
		span := nameSpan
		if p.at(token.Colon) {
			p.advance()
			paramType, ok = p.parseType()
			if !ok {
				return nil, false
			}
			span = span.Cover(p.arenas.Types.Get(paramType).Span)
		}

		params = append(params, p.arenas.Members.NewParam(ast.Param{
			Name:     name,
			Type:     paramType,
			Optional: optional,
			Span:     span,
		}))

		if p.at(token.Comma) {
			p.advance()
			continue
		}
		break
	}

	if _, ok := p.expect(token.RParen, diag.SynUnclosedParen, "expected ')' to close parameter list"); !ok {
		return nil, false
	}
	return params, true
}

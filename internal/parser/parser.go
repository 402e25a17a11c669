package parser

import (
	"slices"

	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/lexer"
	"github.com/ysulyma/stencil/internal/source"
	"github.com/ysulyma/stencil/internal/token"
)

type Options struct {
	MaxErrors     uint
	CurrentErrors uint
	Reporter      diag.Reporter
}

// Enough reports whether the error budget is spent.
func (o *Options) Enough() bool {
	if o.MaxErrors == 0 {
		return false
	}
	return o.CurrentErrors >= o.MaxErrors
}

type Result struct {
	File ast.FileID
	Bag  *diag.Bag
}

// Parser holds the state for parsing a single file.
type Parser struct {
	lx       *lexer.Lexer
	arenas   *ast.Builder
	file     ast.FileID
	fs       *source.FileSet
	opts     Options
	lastSpan source.Span // span of the last consumed token, for diagnostics at EOF
}

// ParseFile drives the parse for one file. The lexer must already be
// positioned at the start of the file's content.
func ParseFile(
	fs *source.FileSet,
	lx *lexer.Lexer,
	arenas *ast.Builder,
	opts Options,
) Result {
	p := Parser{
		lx:       lx,
		arenas:   arenas,
		file:     arenas.Files.New(lx.EmptySpan()),
		fs:       fs,
		opts:     opts,
		lastSpan: lx.EmptySpan(),
	}

	p.parseDecls()

	var bag *diag.Bag
	switch br := opts.Reporter.(type) {
	case diag.BagReporter:
		bag = br.Bag
	case *diag.BagReporter:
		bag = br.Bag
	}
	return Result{
		File: p.file,
		Bag:  bag,
	}
}

func (p *Parser) at(k token.Kind) bool {
	return p.lx.Peek().Kind == k
}

func (p *Parser) at_or(kinds ...token.Kind) bool {
	return slices.Contains(kinds, p.lx.Peek().Kind)
}

// parseDecls is the top-level loop: parse declarations until EOF.
func (p *Parser) parseDecls() {
	startSpan := p.lx.Peek().Span
	for !p.at(token.EOF) {
		declID, ok := p.parseDecl()
		if !ok {
			p.resyncTop()
		} else {
			p.arenas.PushDecl(p.file, declID)
		}
	}
	p.arenas.Files.Get(p.file).Span = startSpan.Cover(p.lx.Peek().Span)
}

// parseDecl dispatches on the first token of a top-level construct.
// Decorators and the `export`/`declare` modifiers funnel into
// parseClassLike; `import`, `interface` and `type` stand alone.
func (p *Parser) parseDecl() (ast.DeclID, bool) {
	switch p.lx.Peek().Kind {
	case token.KwImport:
		return p.parseImportDecl()
	case token.At, token.KwClass, token.KwExport, token.KwDeclare:
		return p.parseClassLike()
	case token.KwInterface:
		return p.parseInterfaceDecl(p.pendingDoc(), false)
	case token.KwType:
		return p.parseTypeAliasDecl(p.pendingDoc(), false)
	default:
		p.err(diag.SynUnexpectedTopLevel, "unexpected top-level construct, got '"+p.lx.Peek().Text+"'")
		return ast.NoDeclID, false
	}
}

// parseClassLike handles the decorator/modifier prefix shared by the
// named declarations, then dispatches on the keyword that follows.
func (p *Parser) parseClassLike() (ast.DeclID, bool) {
	doc := p.pendingDoc()
	decorators, ok := p.parseDecorators()
	if !ok {
		return ast.NoDeclID, false
	}

	exported := false
	for p.at_or(token.KwExport, token.KwDeclare) {
		tok := p.advance()
		if tok.Kind == token.KwExport {
			if exported {
				p.report(diag.SynDuplicateModifier, diag.SevWarning, tok.Span, "duplicate 'export' modifier")
			}
			exported = true
		}
	}

	switch p.lx.Peek().Kind {
	case token.KwClass:
		return p.parseClassDecl(doc, decorators, exported)
	case token.KwInterface:
		if len(decorators) != 0 {
			p.report(diag.SynUnexpectedToken, diag.SevError, p.arenas.Decorators.Get(decorators[0]).Span,
				"decorators are not allowed on interface declarations")
		}
		return p.parseInterfaceDecl(doc, exported)
	case token.KwType:
		if len(decorators) != 0 {
			p.report(diag.SynUnexpectedToken, diag.SevError, p.arenas.Decorators.Get(decorators[0]).Span,
				"decorators are not allowed on type aliases")
		}
		return p.parseTypeAliasDecl(doc, exported)
	default:
		p.err(diag.SynUnexpectedToken, "expected 'class', 'interface' or 'type', got '"+p.lx.Peek().Text+"'")
		return ast.NoDeclID, false
	}
}

// resyncTop recovers after a top-level error: skip to ';' or to the
// start of the next declaration, then consume a trailing ';'.
func (p *Parser) resyncTop() {
	p.resyncUntil(token.Semicolon, token.KwImport, token.KwClass, token.KwInterface, token.KwType,
		token.KwExport, token.KwDeclare, token.At)
	if p.at(token.Semicolon) {
		p.advance()
	}
}

func isTopLevelStarter(k token.Kind) bool {
	switch k {
	case token.KwImport, token.KwClass, token.KwInterface, token.KwType, token.KwExport, token.KwDeclare, token.At:
		return true
	default:
		return false
	}
}

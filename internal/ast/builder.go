package ast

import (
	"github.com/ysulyma/stencil/internal/source"
)

// Hints pre-sizes the arenas for a parse. Zero values fall back to
// defaults tuned for a typical component file.
type Hints struct {
	Files      uint
	Decls      uint
	Members    uint
	Decorators uint
	Exprs      uint
	Types      uint
}

func (h Hints) withDefaults() Hints {
	if h.Files == 0 {
		h.Files = 1 << 2
	}
	if h.Decls == 0 {
		h.Decls = 1 << 4
	}
	if h.Members == 0 {
		h.Members = 1 << 6
	}
	if h.Decorators == 0 {
		h.Decorators = 1 << 6
	}
	if h.Exprs == 0 {
		h.Exprs = 1 << 8
	}
	if h.Types == 0 {
		h.Types = 1 << 7
	}
	return h
}

// Builder owns every arena produced by parsing plus the string
// interner the stores share. One Builder may hold any number of files;
// IDs are only meaningful against the Builder that allocated them.
type Builder struct {
	Files      *Files
	Decls      *Decls
	Members    *Members
	Decorators *Decorators
	Exprs      *Exprs
	Types      *Types

	StringsInterner *source.Interner
}

func NewBuilder(h Hints) *Builder {
	h = h.withDefaults()
	return &Builder{
		Files:           NewFiles(h.Files),
		Decls:           NewDecls(h.Decls),
		Members:         NewMembers(h.Members),
		Decorators:      NewDecorators(h.Decorators),
		Exprs:           NewExprs(h.Exprs),
		Types:           NewTypes(h.Types),
		StringsInterner: source.NewInterner(),
	}
}

// PushDecl appends a declaration to a file, preserving source order.
func (b *Builder) PushDecl(file FileID, decl DeclID) {
	f := b.Files.Get(file)
	if f == nil {
		return
	}
	f.Decls = append(f.Decls, decl)
}

// MustLookup resolves an interned string and panics if the ID is
// unknown. Intended for code paths that only see IDs the Builder
// itself produced.
func (b *Builder) MustLookup(id source.StringID) string {
	return b.StringsInterner.MustLookup(id)
}

// Lookup resolves an interned string, returning "" for NoStringID.
func (b *Builder) Lookup(id source.StringID) string {
	s, _ := b.StringsInterner.Lookup(id)
	return s
}

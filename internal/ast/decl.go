package ast

import (
	"github.com/ysulyma/stencil/internal/source"
)

type DeclKind uint8

const (
	DeclImport DeclKind = iota
	DeclClass
	DeclInterface
	DeclTypeAlias
)

// Decl is a top-level declaration header; Payload points into the
// per-kind arena matching Kind.
type Decl struct {
	Kind    DeclKind
	Span    source.Span
	Payload PayloadID
}

// ImportName is one named binding inside an import clause.
type ImportName struct {
	Name source.StringID
	Span source.Span
}

// DeclImportData captures `import { A, B } from "path";`.
type DeclImportData struct {
	Names []ImportName
	From  source.StringID // module specifier without quotes
}

// DeclClassData captures a class declaration and its members.
type DeclClassData struct {
	Name       source.StringID
	NameSpan   source.Span
	Doc        source.StringID // raw doc block, NoStringID when absent
	Decorators []DecoratorID
	Extends    source.StringID
	Members    []MemberID
	Exported   bool
}

// DeclInterfaceData captures an interface declaration. The body is a
// TypeObject so type rendering and reference walking treat interface
// and inline object shapes uniformly.
type DeclInterfaceData struct {
	Name     source.StringID
	NameSpan source.Span
	Doc      source.StringID
	Extends  source.StringID
	Body     TypeID
	Exported bool
}

// DeclTypeAliasData captures `type Name = Type;`.
type DeclTypeAliasData struct {
	Name     source.StringID
	NameSpan source.Span
	Doc      source.StringID
	Type     TypeID
	Exported bool
}

// Decls manages allocation of top-level declarations.
type Decls struct {
	Arena      *Arena[Decl]
	Imports    *Arena[DeclImportData]
	Classes    *Arena[DeclClassData]
	Interfaces *Arena[DeclInterfaceData]
	Aliases    *Arena[DeclTypeAliasData]
}

func NewDecls(capHint uint) *Decls {
	if capHint == 0 {
		capHint = 1 << 6
	}
	return &Decls{
		Arena:      NewArena[Decl](capHint),
		Imports:    NewArena[DeclImportData](capHint),
		Classes:    NewArena[DeclClassData](capHint),
		Interfaces: NewArena[DeclInterfaceData](capHint),
		Aliases:    NewArena[DeclTypeAliasData](capHint),
	}
}

func (d *Decls) new(kind DeclKind, span source.Span, payload PayloadID) DeclID {
	return DeclID(d.Arena.Allocate(Decl{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (d *Decls) Get(id DeclID) *Decl {
	return d.Arena.Get(uint32(id))
}

// NewImport creates an import declaration node.
func (d *Decls) NewImport(span source.Span, names []ImportName, from source.StringID) DeclID {
	payload := d.Imports.Allocate(DeclImportData{Names: names, From: from})
	return d.new(DeclImport, span, PayloadID(payload))
}

// Import returns the import payload for the given declaration.
func (d *Decls) Import(id DeclID) (*DeclImportData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclImport {
		return nil, false
	}
	return d.Imports.Get(uint32(decl.Payload)), true
}

// NewClass creates a class declaration node.
func (d *Decls) NewClass(span source.Span, data DeclClassData) DeclID {
	payload := d.Classes.Allocate(data)
	return d.new(DeclClass, span, PayloadID(payload))
}

// Class returns the class payload for the given declaration.
func (d *Decls) Class(id DeclID) (*DeclClassData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclClass {
		return nil, false
	}
	return d.Classes.Get(uint32(decl.Payload)), true
}

// NewInterface creates an interface declaration node.
func (d *Decls) NewInterface(span source.Span, data DeclInterfaceData) DeclID {
	payload := d.Interfaces.Allocate(data)
	return d.new(DeclInterface, span, PayloadID(payload))
}

// Interface returns the interface payload for the given declaration.
func (d *Decls) Interface(id DeclID) (*DeclInterfaceData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclInterface {
		return nil, false
	}
	return d.Interfaces.Get(uint32(decl.Payload)), true
}

// NewTypeAlias creates a type alias declaration node.
func (d *Decls) NewTypeAlias(span source.Span, data DeclTypeAliasData) DeclID {
	payload := d.Aliases.Allocate(data)
	return d.new(DeclTypeAlias, span, PayloadID(payload))
}

// TypeAlias returns the alias payload for the given declaration.
func (d *Decls) TypeAlias(id DeclID) (*DeclTypeAliasData, bool) {
	decl := d.Get(id)
	if decl == nil || decl.Kind != DeclTypeAlias {
		return nil, false
	}
	return d.Aliases.Get(uint32(decl.Payload)), true
}

package ast

import (
	"github.com/ysulyma/stencil/internal/source"
)

// TypeKind covers the type annotation forms the language accepts.
type TypeKind uint8

const (
	TypeNamed TypeKind = iota
	TypeObject
	TypeArray
	TypeUnion
	TypeStringLit
)

type TypeExpr struct {
	Kind    TypeKind
	Span    source.Span
	Payload PayloadID
}

// TypeNamedData is a (possibly generic) reference to a named type:
// `CustomEvent`, `EventEmitter<Todo>`, `Map<string, number>`.
type TypeNamedData struct {
	Name     source.StringID
	NameSpan source.Span
	Args     []TypeID
}

// TypeField is one field of an object type literal.
type TypeField struct {
	Name     source.StringID
	NameSpan source.Span
	Optional bool
	Type     TypeID
}

type TypeObjectData struct {
	Fields []TypeField
}

type TypeArrayData struct {
	Elem TypeID
}

type TypeUnionData struct {
	Members []TypeID
}

// TypeStringLitData is a string literal type such as `"open"`. The
// value is stored decoded, without quotes.
type TypeStringLitData struct {
	Value source.StringID
}

// Types manages allocation of type annotations.
type Types struct {
	Arena      *Arena[TypeExpr]
	Named      *Arena[TypeNamedData]
	Objects    *Arena[TypeObjectData]
	Arrays     *Arena[TypeArrayData]
	Unions     *Arena[TypeUnionData]
	StringLits *Arena[TypeStringLitData]
}

func NewTypes(capHint uint) *Types {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Types{
		Arena:      NewArena[TypeExpr](capHint),
		Named:      NewArena[TypeNamedData](capHint),
		Objects:    NewArena[TypeObjectData](capHint),
		Arrays:     NewArena[TypeArrayData](capHint),
		Unions:     NewArena[TypeUnionData](capHint),
		StringLits: NewArena[TypeStringLitData](capHint),
	}
}

func (t *Types) new(kind TypeKind, span source.Span, payload PayloadID) TypeID {
	return TypeID(t.Arena.Allocate(TypeExpr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (t *Types) Get(id TypeID) *TypeExpr {
	return t.Arena.Get(uint32(id))
}

// NewNamed creates a named type reference.
func (t *Types) NewNamed(span source.Span, name source.StringID, nameSpan source.Span, args []TypeID) TypeID {
	payload := t.Named.Allocate(TypeNamedData{Name: name, NameSpan: nameSpan, Args: args})
	return t.new(TypeNamed, span, PayloadID(payload))
}

// NamedType returns the named payload when id is a TypeNamed.
func (t *Types) NamedType(id TypeID) (*TypeNamedData, bool) {
	tt := t.Get(id)
	if tt == nil || tt.Kind != TypeNamed {
		return nil, false
	}
	return t.Named.Get(uint32(tt.Payload)), true
}

// NewObject creates an object type literal.
func (t *Types) NewObject(span source.Span, fields []TypeField) TypeID {
	payload := t.Objects.Allocate(TypeObjectData{Fields: fields})
	return t.new(TypeObject, span, PayloadID(payload))
}

// ObjectType returns the object payload when id is a TypeObject.
func (t *Types) ObjectType(id TypeID) (*TypeObjectData, bool) {
	tt := t.Get(id)
	if tt == nil || tt.Kind != TypeObject {
		return nil, false
	}
	return t.Objects.Get(uint32(tt.Payload)), true
}

// NewArray creates an array type from its element type.
func (t *Types) NewArray(span source.Span, elem TypeID) TypeID {
	payload := t.Arrays.Allocate(TypeArrayData{Elem: elem})
	return t.new(TypeArray, span, PayloadID(payload))
}

// ArrayType returns the array payload when id is a TypeArray.
func (t *Types) ArrayType(id TypeID) (*TypeArrayData, bool) {
	tt := t.Get(id)
	if tt == nil || tt.Kind != TypeArray {
		return nil, false
	}
	return t.Arrays.Get(uint32(tt.Payload)), true
}

// NewUnion creates a union type from two or more members.
func (t *Types) NewUnion(span source.Span, members []TypeID) TypeID {
	payload := t.Unions.Allocate(TypeUnionData{Members: members})
	return t.new(TypeUnion, span, PayloadID(payload))
}

// UnionType returns the union payload when id is a TypeUnion.
func (t *Types) UnionType(id TypeID) (*TypeUnionData, bool) {
	tt := t.Get(id)
	if tt == nil || tt.Kind != TypeUnion {
		return nil, false
	}
	return t.Unions.Get(uint32(tt.Payload)), true
}

// NewStringLit creates a string literal type.
func (t *Types) NewStringLit(span source.Span, value source.StringID) TypeID {
	payload := t.StringLits.Allocate(TypeStringLitData{Value: value})
	return t.new(TypeStringLit, span, PayloadID(payload))
}

// StringLitType returns the string literal payload when id is a TypeStringLit.
func (t *Types) StringLitType(id TypeID) (*TypeStringLitData, bool) {
	tt := t.Get(id)
	if tt == nil || tt.Kind != TypeStringLit {
		return nil, false
	}
	return t.StringLits.Get(uint32(tt.Payload)), true
}

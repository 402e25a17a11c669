package ast

import (
	"github.com/ysulyma/stencil/internal/source"
)

type MemberKind uint8

const (
	// MemberProperty is a field-style member: `name?: Type = default;`.
	MemberProperty MemberKind = iota
	// MemberMethod is a declaration-style method: `name(params): Type;`.
	MemberMethod
)

// Member is a class member header; Payload points into the per-kind
// arena matching Kind.
type Member struct {
	Kind    MemberKind
	Span    source.Span
	Payload PayloadID
}

// MemberPropertyData captures a property member.
type MemberPropertyData struct {
	Name       source.StringID
	NameSpan   source.Span
	Doc        source.StringID // raw doc block, NoStringID when absent
	Decorators []DecoratorID
	Type       TypeID // NoTypeID when the property has no annotation
	Default    ExprID // NoExprID when the property has no initializer
	Optional   bool
	Readonly   bool
	Static     bool
}

// MemberMethodData captures a bodyless method member.
type MemberMethodData struct {
	Name       source.StringID
	NameSpan   source.Span
	Doc        source.StringID
	Decorators []DecoratorID
	Params     []ParamID
	Return     TypeID
	Static     bool
}

// Param is one method parameter.
type Param struct {
	Name     source.StringID
	Type     TypeID
	Optional bool
	Span     source.Span
}

// Members manages allocation of class members.
type Members struct {
	Arena      *Arena[Member]
	Properties *Arena[MemberPropertyData]
	Methods    *Arena[MemberMethodData]
	Params     *Arena[Param]
}

func NewMembers(capHint uint) *Members {
	if capHint == 0 {
		capHint = 1 << 7
	}
	return &Members{
		Arena:      NewArena[Member](capHint),
		Properties: NewArena[MemberPropertyData](capHint),
		Methods:    NewArena[MemberMethodData](capHint),
		Params:     NewArena[Param](capHint),
	}
}

func (m *Members) new(kind MemberKind, span source.Span, payload PayloadID) MemberID {
	return MemberID(m.Arena.Allocate(Member{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (m *Members) Get(id MemberID) *Member {
	return m.Arena.Get(uint32(id))
}

// NewProperty creates a property member node.
func (m *Members) NewProperty(span source.Span, data MemberPropertyData) MemberID {
	payload := m.Properties.Allocate(data)
	return m.new(MemberProperty, span, PayloadID(payload))
}

// Property returns the property payload for the given member.
func (m *Members) Property(id MemberID) (*MemberPropertyData, bool) {
	member := m.Get(id)
	if member == nil || member.Kind != MemberProperty {
		return nil, false
	}
	return m.Properties.Get(uint32(member.Payload)), true
}

// NewMethod creates a method member node.
func (m *Members) NewMethod(span source.Span, data MemberMethodData) MemberID {
	payload := m.Methods.Allocate(data)
	return m.new(MemberMethod, span, PayloadID(payload))
}

// Method returns the method payload for the given member.
func (m *Members) Method(id MemberID) (*MemberMethodData, bool) {
	member := m.Get(id)
	if member == nil || member.Kind != MemberMethod {
		return nil, false
	}
	return m.Methods.Get(uint32(member.Payload)), true
}

// NewParam allocates one parameter.
func (m *Members) NewParam(p Param) ParamID {
	return ParamID(m.Params.Allocate(p))
}

func (m *Members) Param(id ParamID) *Param {
	return m.Params.Get(uint32(id))
}

// Name returns the member's identifier regardless of kind.
func (m *Members) Name(id MemberID) source.StringID {
	member := m.Get(id)
	if member == nil {
		return source.NoStringID
	}
	switch member.Kind {
	case MemberProperty:
		return m.Properties.Get(uint32(member.Payload)).Name
	case MemberMethod:
		return m.Methods.Get(uint32(member.Payload)).Name
	}
	return source.NoStringID
}

// Decorators returns the member's decorator list regardless of kind.
func (m *Members) Decorators(id MemberID) []DecoratorID {
	member := m.Get(id)
	if member == nil {
		return nil
	}
	switch member.Kind {
	case MemberProperty:
		return m.Properties.Get(uint32(member.Payload)).Decorators
	case MemberMethod:
		return m.Methods.Get(uint32(member.Payload)).Decorators
	}
	return nil
}

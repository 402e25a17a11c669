package types

import "fmt"

// TypeID uniquely identifies a canonical type inside the interner.
type TypeID uint32

// NoTypeID marks the absence of a type.
const NoTypeID TypeID = 0

// Kind enumerates the shapes a canonical type can take.
type Kind uint8

const (
	KindInvalid Kind = iota
	KindPrimitive
	KindNamed
	KindObject
	KindArray
	KindUnion
	KindStringLit
)

func (k Kind) String() string {
	switch k {
	case KindInvalid:
		return "invalid"
	case KindPrimitive:
		return "primitive"
	case KindNamed:
		return "named"
	case KindObject:
		return "object"
	case KindArray:
		return "array"
	case KindUnion:
		return "union"
	case KindStringLit:
		return "string-literal"
	default:
		return fmt.Sprintf("Kind(%d)", k)
	}
}

// Type is a compact descriptor: the kind plus the canonical rendering.
// Two annotations with the same rendering are the same type.
type Type struct {
	Kind Kind
	Text string
}

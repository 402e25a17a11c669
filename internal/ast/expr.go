package ast

import (
	"github.com/ysulyma/stencil/internal/source"
)

// ExprKind covers the expression forms decorator arguments and property
// initializers may take.
type ExprKind uint8

const (
	ExprIdent ExprKind = iota
	ExprLit
	ExprArray
	ExprObject
	ExprNeg // unary minus over a numeric literal
)

type Expr struct {
	Kind    ExprKind
	Span    source.Span
	Payload PayloadID
}

type ExprLitKind uint8

const (
	LitString ExprLitKind = iota
	LitInt
	LitFloat
	LitBool
	LitNull
)

type ExprIdentData struct {
	Name source.StringID
}

// ExprLiteralData holds a literal value. String values are stored
// decoded: quotes stripped and escapes resolved by the parser.
type ExprLiteralData struct {
	Kind  ExprLitKind
	Value source.StringID
}

type ExprArrayData struct {
	Elements []ExprID
}

// ObjectEntry is one `key: value` pair in an object literal. Keys
// written as string literals are stored decoded, same as identifiers.
type ObjectEntry struct {
	Key     source.StringID
	KeySpan source.Span
	Value   ExprID
}

type ExprObjectData struct {
	Entries []ObjectEntry
}

type ExprNegData struct {
	Operand ExprID
}

// Exprs manages allocation of expressions.
type Exprs struct {
	Arena    *Arena[Expr]
	Idents   *Arena[ExprIdentData]
	Literals *Arena[ExprLiteralData]
	Arrays   *Arena[ExprArrayData]
	Objects  *Arena[ExprObjectData]
	Negs     *Arena[ExprNegData]
}

func NewExprs(capHint uint) *Exprs {
	if capHint == 0 {
		capHint = 1 << 8
	}
	return &Exprs{
		Arena:    NewArena[Expr](capHint),
		Idents:   NewArena[ExprIdentData](capHint),
		Literals: NewArena[ExprLiteralData](capHint),
		Arrays:   NewArena[ExprArrayData](capHint),
		Objects:  NewArena[ExprObjectData](capHint),
		Negs:     NewArena[ExprNegData](capHint),
	}
}

func (e *Exprs) new(kind ExprKind, span source.Span, payload PayloadID) ExprID {
	return ExprID(e.Arena.Allocate(Expr{
		Kind:    kind,
		Span:    span,
		Payload: payload,
	}))
}

func (e *Exprs) Get(id ExprID) *Expr {
	return e.Arena.Get(uint32(id))
}

// NewIdent creates an identifier expression.
func (e *Exprs) NewIdent(span source.Span, name source.StringID) ExprID {
	payload := e.Idents.Allocate(ExprIdentData{Name: name})
	return e.new(ExprIdent, span, PayloadID(payload))
}

// Ident returns the identifier payload when id is an ExprIdent.
func (e *Exprs) Ident(id ExprID) (*ExprIdentData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprIdent {
		return nil, false
	}
	return e.Idents.Get(uint32(expr.Payload)), true
}

// NewLiteral creates a literal expression.
func (e *Exprs) NewLiteral(span source.Span, kind ExprLitKind, value source.StringID) ExprID {
	payload := e.Literals.Allocate(ExprLiteralData{Kind: kind, Value: value})
	return e.new(ExprLit, span, PayloadID(payload))
}

// Literal returns the literal payload when id is an ExprLit.
func (e *Exprs) Literal(id ExprID) (*ExprLiteralData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprLit {
		return nil, false
	}
	return e.Literals.Get(uint32(expr.Payload)), true
}

// NewArray creates an array literal expression.
func (e *Exprs) NewArray(span source.Span, elements []ExprID) ExprID {
	payload := e.Arrays.Allocate(ExprArrayData{Elements: elements})
	return e.new(ExprArray, span, PayloadID(payload))
}

// Array returns the array payload when id is an ExprArray.
func (e *Exprs) Array(id ExprID) (*ExprArrayData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprArray {
		return nil, false
	}
	return e.Arrays.Get(uint32(expr.Payload)), true
}

// NewObject creates an object literal expression.
func (e *Exprs) NewObject(span source.Span, entries []ObjectEntry) ExprID {
	payload := e.Objects.Allocate(ExprObjectData{Entries: entries})
	return e.new(ExprObject, span, PayloadID(payload))
}

// Object returns the object payload when id is an ExprObject.
func (e *Exprs) Object(id ExprID) (*ExprObjectData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprObject {
		return nil, false
	}
	return e.Objects.Get(uint32(expr.Payload)), true
}

// NewNeg creates a negation expression.
func (e *Exprs) NewNeg(span source.Span, operand ExprID) ExprID {
	payload := e.Negs.Allocate(ExprNegData{Operand: operand})
	return e.new(ExprNeg, span, PayloadID(payload))
}

// Neg returns the negation payload when id is an ExprNeg.
func (e *Exprs) Neg(id ExprID) (*ExprNegData, bool) {
	expr := e.Get(id)
	if expr == nil || expr.Kind != ExprNeg {
		return nil, false
	}
	return e.Negs.Get(uint32(expr.Payload)), true
}

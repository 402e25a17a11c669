package sema

import (
	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/meta"
	"github.com/ysulyma/stencil/internal/source"
)

// emitterTypeName is the generic annotation event members declare.
// Recognition is by exact name, not by resolution: a local alias
// spelled differently does not qualify.
const emitterTypeName = "EventEmitter"

// resolveEventType derives the payload descriptor for an event member.
// Only `EventEmitter<Payload>` qualifies; anything else, including a
// missing or bare annotation, degrades to the all-"any" descriptor
// without complaint. The permissive fallback is deliberate: whether a
// name resolves is judged on the reference list afterwards, never on
// the annotation's shape.
//
// The reference validation runs on every path, also when the
// descriptor carries no references.
func (c *Checker) resolveEventType(member ast.MemberID, origin source.Span) meta.TypeDescriptor {
	desc := meta.AnyDescriptor()

	if typeID, ok := c.svc.MemberType(member); ok {
		if payload, ok := c.emitterPayload(typeID); ok {
			original, resolved, refs := c.svc.RenderType(payload)
			desc = meta.TypeDescriptor{
				Original:   original,
				Resolved:   resolved,
				References: refs,
			}
			c.internType(payload, resolved)
		}
	}

	c.svc.ValidateReferences(origin, desc.References)
	return desc
}

// emitterPayload returns the first type argument when the annotation
// is the emitter generic with at least one argument. Extra arguments
// are ignored.
func (c *Checker) emitterPayload(id ast.TypeID) (ast.TypeID, bool) {
	named, ok := c.builder.Types.NamedType(id)
	if !ok || len(named.Args) == 0 {
		return ast.NoTypeID, false
	}
	if c.builder.MustLookup(named.Name) != emitterTypeName {
		return ast.NoTypeID, false
	}
	return named.Args[0], true
}

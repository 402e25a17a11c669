// Package sema turns parsed component classes into compiled metadata.
// It recognizes the decorator annotations the language defines, derives
// event and property descriptors from them, runs the naming rules, and
// synthesizes the static members the emitter embeds in the artifact.
//
// The package never fails a build on its own: malformed annotations
// degrade to permissive defaults and every finding it reports is a
// warning.
package sema

import (
	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/meta"
	"github.com/ysulyma/stencil/internal/source"
)

// TypeService answers the type questions extraction needs without
// exposing resolver internals. resolver.FileResolver is the production
// implementation; tests substitute their own.
type TypeService interface {
	// MemberType returns the declared annotation of a member, if any.
	MemberType(member ast.MemberID) (ast.TypeID, bool)

	// ResolveSymbol builds the documentation snapshot for a member.
	ResolveSymbol(member ast.MemberID) meta.DocsSnapshot

	// RenderType renders an annotation as written and in canonical
	// resolved form, and collects the named types it reaches.
	RenderType(id ast.TypeID) (original, resolved string, refs map[string]meta.TypeReference)
}

// ReferenceValidator checks the reference map of a rendered annotation
// and reports unresolved or ambiguous names. Extraction calls it after
// every descriptor it builds.
type ReferenceValidator interface {
	ValidateReferences(origin source.Span, refs map[string]meta.TypeReference)
}

// Service is the full capability surface Check requires.
type Service interface {
	TypeService
	ReferenceValidator
}

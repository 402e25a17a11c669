// Package testkit provides structural checks shared by parser and
// driver tests.
package testkit

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/source"
)

// CheckSpanInvariants runs a minimal set of span invariants on a parsed
// file:
//  1. file.Span lies within the file content bounds
//  2. every declaration span is non-empty and contained in file.Span
//  3. class name and member spans are contained in their declaration
func CheckSpanInvariants(b *ast.Builder, fileID ast.FileID, sf *source.File) error {
	if b == nil || sf == nil {
		return fmt.Errorf("nil builder or file")
	}
	f := b.Files.Get(fileID)
	if f == nil {
		return fmt.Errorf("file node not found")
	}

	lenContent, err := safecast.Conv[uint32](len(sf.Content))
	if err != nil {
		return fmt.Errorf("len content overflow: %w", err)
	}
	if f.Span.File != sf.ID {
		return fmt.Errorf("file span points at file id %d, want %d", f.Span.File, sf.ID)
	}
	if f.Span.End > lenContent {
		return fmt.Errorf("file span end beyond content: %d > %d", f.Span.End, lenContent)
	}
	if len(f.Decls) > 0 && f.Span.Empty() {
		return fmt.Errorf("file with %d declarations has an empty span", len(f.Decls))
	}

	var union source.Span
	haveDecl := false
	for _, id := range f.Decls {
		decl := b.Decls.Get(id)
		if decl == nil {
			return fmt.Errorf("nil declaration for id %d", id)
		}
		sp := decl.Span
		if sp.Empty() {
			return fmt.Errorf("empty declaration span: %v", sp)
		}
		if sp.File != sf.ID {
			return fmt.Errorf("declaration span file mismatch: got %d, want %d", sp.File, sf.ID)
		}
		if sp.Start < f.Span.Start || sp.End > f.Span.End {
			return fmt.Errorf("declaration span %v outside file span %v", sp, f.Span)
		}
		if err := checkClassSpans(b, id, sp); err != nil {
			return err
		}
		if !haveDecl {
			union = sp
			haveDecl = true
		} else {
			union = union.Cover(sp)
		}
	}

	if haveDecl && (union.Start < f.Span.Start || union.End > f.Span.End) {
		return fmt.Errorf("file span %v does not cover union of declarations %v", f.Span, union)
	}
	return nil
}

// checkClassSpans verifies the nested spans of one class declaration.
// Non-class declarations pass trivially. Recovered classes may lack a
// name, so an empty name span is tolerated.
func checkClassSpans(b *ast.Builder, id ast.DeclID, declSpan source.Span) error {
	class, ok := b.Decls.Class(id)
	if !ok {
		return nil
	}
	if !class.NameSpan.Empty() {
		if class.NameSpan.Start < declSpan.Start || class.NameSpan.End > declSpan.End {
			return fmt.Errorf("class name span %v outside declaration span %v", class.NameSpan, declSpan)
		}
	}
	for _, memberID := range class.Members {
		member := b.Members.Get(memberID)
		if member == nil {
			return fmt.Errorf("nil member for id %d", memberID)
		}
		sp := member.Span
		if sp.Empty() {
			return fmt.Errorf("empty member span: %v", sp)
		}
		if sp.Start < declSpan.Start || sp.End > declSpan.End {
			return fmt.Errorf("member span %v outside declaration span %v", sp, declSpan)
		}
	}
	return nil
}

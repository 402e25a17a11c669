package buildpipeline

import (
	"fmt"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/driver"
	"github.com/ysulyma/stencil/internal/source"
)

// tagUse records one class registering a custom-element tag.
type tagUse struct {
	ClassName string
	Path      string
	Span      source.Span
}

// CheckTagCollisions appends an error diagnostic for every component
// tag registered by more than one class. Custom elements share a
// single registry, so a tag must resolve to exactly one class across
// the project; per-file analysis cannot see this.
func CheckTagCollisions(result *CompileResult) {
	if result == nil || result.Bag == nil {
		return
	}

	uses := make(map[string][]tagUse)
	tags := make([]string, 0, len(result.Results))
	for i, res := range result.Results {
		path := res.Path
		if i < len(result.Files) {
			path = result.Files[i]
		}
		for _, comp := range res.Components {
			if comp.Tag == "" {
				continue
			}
			if _, ok := uses[comp.Tag]; !ok {
				tags = append(tags, comp.Tag)
			}
			uses[comp.Tag] = append(uses[comp.Tag], tagUse{
				ClassName: comp.ClassName,
				Path:      path,
				Span:      classNameSpan(res, comp.ClassName),
			})
		}
	}

	for _, tag := range tags {
		occurrences := uses[tag]
		if len(occurrences) < 2 {
			continue
		}
		first := occurrences[0]
		for _, use := range occurrences[1:] {
			d := diag.NewError(diag.ProjDuplicateTag, use.Span,
				fmt.Sprintf("tag %q is already registered by %s (%s)", tag, first.ClassName, first.Path))
			if !first.Span.Empty() {
				d = d.WithNote(first.Span, "first registered here")
			}
			result.Bag.Add(d)
		}
	}
}

// classNameSpan locates the declaration span of a component class.
// Results restored from the cache carry no AST; those fall back to the
// start of the file.
func classNameSpan(res driver.FileResult, className string) source.Span {
	if res.Builder == nil {
		return source.Span{File: res.FileID}
	}
	file := res.Builder.Files.Get(res.ASTFile)
	if file == nil {
		return source.Span{File: res.FileID}
	}
	for _, declID := range file.Decls {
		cls, ok := res.Builder.Decls.Class(declID)
		if !ok {
			continue
		}
		if res.Builder.MustLookup(cls.Name) == className {
			return cls.NameSpan
		}
	}
	return source.Span{File: res.FileID}
}

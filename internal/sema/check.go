package sema

import (
	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/meta"
	"github.com/ysulyma/stencil/internal/source"
	"github.com/ysulyma/stencil/internal/types"
)

// Options configures one semantic pass.
type Options struct {
	Reporter diag.Reporter

	// Types, when set, caches canonical payload renderings so repeated
	// annotations share one entry. The build summary reads its size.
	Types *types.Interner
}

// Result is the compiled outcome for one file.
type Result struct {
	// Components holds one entry per component class, in declaration
	// order.
	Components []meta.ComponentMeta
}

// Checker carries the state of one pass over one file.
type Checker struct {
	builder  *ast.Builder
	svc      Service
	reporter diag.Reporter
	types    *types.Interner
}

// Check compiles every component class in the file. Classes without a
// component decorator are still validated for decorator misuse but
// produce no metadata. Check is deterministic: the same tree always
// yields element-wise identical results.
func Check(builder *ast.Builder, file ast.FileID, svc Service, opts Options) Result {
	c := &Checker{
		builder:  builder,
		svc:      svc,
		reporter: opts.Reporter,
		types:    opts.Types,
	}

	var res Result
	astFile := builder.Files.Get(file)
	if astFile == nil {
		return res
	}
	for _, declID := range astFile.Decls {
		decl := builder.Decls.Get(declID)
		if decl == nil || decl.Kind != ast.DeclClass {
			continue
		}
		if comp, ok := c.checkClass(declID); ok {
			res.Components = append(res.Components, comp)
		}
	}
	return res
}

// findDecorator returns the first decorator in declaration order whose
// name equals name exactly. Lookup is a plain ordered scan: decorator
// lists are tiny and order decides "first wins".
func (c *Checker) findDecorator(decs []ast.DecoratorID, name string) (*ast.Decorator, bool) {
	for _, id := range decs {
		dec := c.builder.Decorators.Get(id)
		if dec != nil && c.builder.MustLookup(dec.Name) == name {
			return dec, true
		}
	}
	return nil, false
}

// claimingDecorator returns the name of the first metadata-bearing
// decorator on a property member. A member claimed by @Prop is not
// also an event, no matter what else is attached; the conflict warning
// covers the leftovers.
func (c *Checker) claimingDecorator(member ast.MemberID) (string, bool) {
	for _, id := range c.builder.Members.Decorators(member) {
		dec := c.builder.Decorators.Get(id)
		if dec == nil {
			continue
		}
		name := c.builder.MustLookup(dec.Name)
		if spec, ok := ast.LookupDecorator(name); ok && spec.Allows(ast.DecoratorTargetProperty) {
			return name, true
		}
	}
	return "", false
}

func (c *Checker) memberNameSpan(member ast.MemberID) source.Span {
	m := c.builder.Members.Get(member)
	if m == nil {
		return source.Span{}
	}
	switch m.Kind {
	case ast.MemberProperty:
		prop, _ := c.builder.Members.Property(member)
		return prop.NameSpan
	case ast.MemberMethod:
		method, _ := c.builder.Members.Method(member)
		return method.NameSpan
	}
	return m.Span
}

// internType caches the canonical rendering of a payload annotation.
func (c *Checker) internType(id ast.TypeID, resolved string) {
	if c.types == nil {
		return
	}
	c.types.Intern(types.Type{
		Kind: types.ClassifyKind(c.builder, id),
		Text: resolved,
	})
}

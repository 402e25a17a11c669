package sema

import (
	"strings"
	"unicode"

	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/meta"
)

// extractProp derives the public property descriptor for one member.
// The gates mirror event extraction: a @Prop decorator and a non-blank
// identifier, then a descriptor is always produced.
//
// Unlike events, the annotation itself is the payload: there is no
// wrapper generic to unwrap, and the flag defaults are false.
func (c *Checker) extractProp(member ast.MemberID) *meta.PropMeta {
	dec, ok := c.findDecorator(c.builder.Members.Decorators(member), "Prop")
	if !ok {
		return nil
	}
	if claiming, _ := c.claimingDecorator(member); claiming != "Prop" {
		return nil
	}
	name := c.builder.MustLookup(c.builder.Members.Name(member))
	if name == "" {
		return nil
	}

	opts := c.decoratorOptions(dec)

	attribute := dashCase(name)
	if raw, _, ok := opts.stringField("attribute"); ok {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			attribute = trimmed
		}
	}

	desc := meta.AnyDescriptor()
	origin := c.memberNameSpan(member)
	if typeID, ok := c.svc.MemberType(member); ok {
		origin = c.builder.Types.Get(typeID).Span
		original, resolved, refs := c.svc.RenderType(typeID)
		desc = meta.TypeDescriptor{
			Original:   original,
			Resolved:   resolved,
			References: refs,
		}
		c.internType(typeID, resolved)
	}
	c.svc.ValidateReferences(origin, desc.References)

	p := &meta.PropMeta{
		Name:        name,
		Attribute:   attribute,
		Mutable:     opts.boolField("mutable", false),
		Reflect:     opts.boolField("reflect", false),
		Docs:        c.svc.ResolveSymbol(member),
		ComplexType: desc,
	}
	if prop, ok := c.builder.Members.Property(member); ok && prop.Default.IsValid() {
		if v, ok := evalLiteral(c.builder, prop.Default); ok {
			p.Default = &v
		}
	}
	return p
}

// collectProps walks the class members in declaration order and
// extracts every public property.
func (c *Checker) collectProps(members []ast.MemberID) []meta.PropMeta {
	var props []meta.PropMeta
	for _, id := range members {
		m := c.builder.Members.Get(id)
		if m == nil || m.Kind != ast.MemberProperty {
			continue
		}
		if p := c.extractProp(id); p != nil {
			props = append(props, *p)
		}
	}
	return props
}

// dashCase converts a camelCase property name to its dash-separated
// attribute form: myValue -> my-value. Every uppercase rune gets a
// dash, so acronyms split letter by letter, matching how browsers map
// attribute names back to properties.
func dashCase(name string) string {
	var sb strings.Builder
	sb.Grow(len(name) + 2)
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i != 0 {
				sb.WriteByte('-')
			}
			sb.WriteRune(unicode.ToLower(r))
			continue
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

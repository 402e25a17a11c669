package sema

import (
	"strings"

	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/meta"
	"github.com/ysulyma/stencil/internal/source"
)

// checkClass validates every decorator on a class and its members and,
// when the class is a component, compiles its metadata. The returned
// bool says whether metadata was produced, not whether the class is
// free of findings: a component with a bad tag still compiles
// best-effort so later passes have something to work with.
func (c *Checker) checkClass(declID ast.DeclID) (meta.ComponentMeta, bool) {
	class, ok := c.builder.Decls.Class(declID)
	if !ok {
		return meta.ComponentMeta{}, false
	}

	c.checkDecorators(class.Decorators, ast.DecoratorTargetClass)
	for _, memberID := range class.Members {
		c.checkMemberDecorators(memberID)
	}

	compDec, ok := c.findDecorator(class.Decorators, "Component")
	if !ok {
		return meta.ComponentMeta{}, false
	}

	comp := meta.ComponentMeta{
		ClassName: c.builder.MustLookup(class.Name),
		Docs:      meta.ParseDocBlock(c.builder.Lookup(class.Doc)),
	}

	spec, _ := ast.LookupDecorator("Component")
	if spec.HasFlag(ast.DecoratorFlagOptionsRequired) && !c.hasObjectArg(compDec) {
		diag.ReportError(c.reporter, diag.SemaComponentTagMissing, compDec.NameSpan,
			"'@Component' expects an options object, e.g. @Component({ tag: \"my-widget\" })").
			Emit()
	} else {
		opts := c.decoratorOptions(compDec)
		if tag, span, ok := opts.stringField("tag"); ok && strings.TrimSpace(tag) != "" {
			comp.Tag = strings.TrimSpace(tag)
			c.validateTag(comp.Tag, span)
		} else {
			diag.ReportError(c.reporter, diag.SemaComponentTagMissing, compDec.NameSpan,
				"component '"+comp.ClassName+"' needs a tag, e.g. @Component({ tag: \"my-widget\" })").
				Emit()
		}
	}

	events := c.collectEvents(class.Members)
	props := c.collectProps(class.Members)
	comp.Events = events
	comp.Properties = props

	// Synthesized members carry the metadata into the compiled class.
	// Each list becomes exactly one static member, and only when the
	// list is non-empty; absence of events or props is not diagnosed.
	if len(events) != 0 {
		comp.StaticMembers = append(comp.StaticMembers, meta.StaticMember{
			Name:  "events",
			Value: meta.EventsValue(events),
		})
	}
	if len(props) != 0 {
		comp.StaticMembers = append(comp.StaticMembers, meta.StaticMember{
			Name:  "properties",
			Value: meta.PropsValue(props),
		})
	}
	return comp, true
}

// hasObjectArg reports whether the decorator's first argument is an
// object literal.
func (c *Checker) hasObjectArg(dec *ast.Decorator) bool {
	if dec == nil || len(dec.Args) == 0 {
		return false
	}
	_, ok := c.builder.Exprs.Object(dec.Args[0])
	return ok
}

// checkMemberDecorators validates the decorators of one member against
// the catalog and reports members claimed by more than one
// metadata-bearing decorator.
func (c *Checker) checkMemberDecorators(member ast.MemberID) {
	m := c.builder.Members.Get(member)
	if m == nil {
		return
	}
	target := ast.DecoratorTargetProperty
	if m.Kind == ast.MemberMethod {
		target = ast.DecoratorTargetMethod
	}

	decs := c.builder.Members.Decorators(member)
	c.checkDecorators(decs, target)

	// @Event, @Prop, @State and @Element each claim the member whole;
	// two of them on one member contradict each other. The first one
	// wins and the rest are reported.
	var claimedBy *ast.Decorator
	for _, id := range decs {
		dec := c.builder.Decorators.Get(id)
		if dec == nil {
			continue
		}
		spec, ok := ast.LookupDecorator(c.builder.MustLookup(dec.Name))
		if !ok || !spec.Allows(ast.DecoratorTargetProperty) {
			continue
		}
		if claimedBy == nil {
			claimedBy = dec
			continue
		}
		diag.ReportWarning(c.reporter, diag.SemaDecoratorConflict, dec.NameSpan,
			"'@"+c.builder.MustLookup(dec.Name)+"' conflicts with '@"+
				c.builder.MustLookup(claimedBy.Name)+"' on the same member").
			WithNote(claimedBy.NameSpan, "first decorator here").
			Emit()
	}
}

// checkDecorators reports unknown decorators and known ones applied to
// the wrong kind of declaration. Unknown names get a spelling hint
// when the catalog has a case-insensitive match.
func (c *Checker) checkDecorators(decs []ast.DecoratorID, target ast.DecoratorTargetMask) {
	for _, id := range decs {
		dec := c.builder.Decorators.Get(id)
		if dec == nil {
			continue
		}
		name := c.builder.MustLookup(dec.Name)
		spec, known := ast.LookupDecorator(name)
		if !known {
			rb := diag.ReportWarning(c.reporter, diag.SemaUnknownDecorator, dec.NameSpan,
				"unknown decorator '@"+name+"'")
			if canonical, ok := ast.SuggestDecorator(name); ok {
				rb.WithNote(dec.NameSpan, "did you mean '@"+canonical+"'?")
			}
			rb.Emit()
			continue
		}
		if !spec.Allows(target) {
			diag.ReportWarning(c.reporter, diag.SemaDecoratorTarget, dec.NameSpan,
				"'@"+name+"' cannot be applied to "+describeTarget(target)).
				Emit()
		}
	}
}

func describeTarget(target ast.DecoratorTargetMask) string {
	switch target {
	case ast.DecoratorTargetClass:
		return "a class"
	case ast.DecoratorTargetProperty:
		return "a property"
	case ast.DecoratorTargetMethod:
		return "a method"
	}
	return "this declaration"
}

// validateTag checks a component tag against the custom-element naming
// rules. The first failing rule is reported; tag content is kept as
// written so the emitter still produces an artifact.
func (c *Checker) validateTag(tag string, span source.Span) {
	fail := func(msg string) {
		diag.ReportError(c.reporter, diag.SemaComponentTagInvalid, span,
			"invalid tag '"+tag+"': "+msg).
			Emit()
	}

	if strings.ToLower(tag) != tag {
		fail("tags must be lowercase")
		return
	}
	if strings.ContainsAny(tag, " \t") {
		fail("tags must not contain whitespace")
		return
	}
	if strings.HasPrefix(tag, "-") || strings.HasSuffix(tag, "-") {
		fail("tags must not start or end with a dash")
		return
	}
	if !strings.Contains(tag, "-") {
		fail("custom element tags need a dash, e.g. \"my-widget\"")
		return
	}
	if tag[0] < 'a' || tag[0] > 'z' {
		fail("tags must start with a letter")
		return
	}
	for _, r := range tag {
		if (r < 'a' || r > 'z') && (r < '0' || r > '9') && r != '-' {
			fail("tags may only contain lowercase letters, digits and dashes")
			return
		}
	}
}

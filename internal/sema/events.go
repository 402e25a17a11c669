package sema

import (
	"strings"

	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/meta"
)

// extractEvent derives the event descriptor for one class member.
// Only two things disqualify a member: no @Event decorator, or a blank
// identifier. Past those gates a descriptor is always produced, even
// when the annotation is malformed; degraded parts fall back to
// permissive defaults instead of aborting.
func (c *Checker) extractEvent(member ast.MemberID) *meta.EventMeta {
	dec, ok := c.findDecorator(c.builder.Members.Decorators(member), "Event")
	if !ok {
		return nil
	}
	if claiming, _ := c.claimingDecorator(member); claiming != "Event" {
		return nil
	}
	memberName := c.builder.MustLookup(c.builder.Members.Name(member))
	if memberName == "" {
		return nil
	}

	opts := c.decoratorOptions(dec)

	// The public name prefers a non-blank eventName option, trimmed.
	// A blank-after-trim option counts as absent and the member
	// identifier is used as written.
	name := memberName
	site := nameSite{span: c.memberNameSpan(member)}
	if raw, span, ok := opts.stringField("eventName"); ok {
		if trimmed := strings.TrimSpace(raw); trimmed != "" {
			name = trimmed
			site = nameSite{span: span, quoted: true}
		}
	}

	checkEventName(c.reporter, name, site)

	origin := c.memberNameSpan(member)
	if typeID, ok := c.svc.MemberType(member); ok {
		origin = c.builder.Types.Get(typeID).Span
	}

	return &meta.EventMeta{
		Method:      memberName,
		Name:        name,
		Bubbles:     opts.boolField("bubbles", true),
		Cancelable:  opts.boolField("cancelable", true),
		Composed:    opts.boolField("composed", true),
		Docs:        c.svc.ResolveSymbol(member),
		ComplexType: c.resolveEventType(member, origin),
	}
}

// collectEvents walks the class members in declaration order and
// extracts every qualifying event. Only property members are
// candidates; methods never declare emitters.
func (c *Checker) collectEvents(members []ast.MemberID) []meta.EventMeta {
	var events []meta.EventMeta
	for _, id := range members {
		m := c.builder.Members.Get(id)
		if m == nil || m.Kind != ast.MemberProperty {
			continue
		}
		if ev := c.extractEvent(id); ev != nil {
			events = append(events, *ev)
		}
	}
	return events
}

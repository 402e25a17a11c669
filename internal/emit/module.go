package emit

import (
	"strings"

	"github.com/ysulyma/stencil/internal/meta"
)

// RenderModule renders the compiled form of one source file: every
// component class restated with its synthesized static members,
// followed by a custom-element registration when the component carries
// a tag. Classes that declared no events and no properties come out
// with an empty body.
func RenderModule(artifact FileArtifact) string {
	var sb strings.Builder
	sb.WriteString("// compiled from ")
	sb.WriteString(artifact.Path)
	sb.WriteByte('\n')

	for _, comp := range artifact.Components {
		sb.WriteByte('\n')
		renderComponent(&sb, comp)
	}
	return sb.String()
}

func renderComponent(sb *strings.Builder, comp meta.ComponentMeta) {
	sb.WriteString("class ")
	sb.WriteString(comp.ClassName)
	sb.WriteString(" {")
	if len(comp.StaticMembers) == 0 {
		sb.WriteString("}\n")
	} else {
		sb.WriteByte('\n')
		for _, member := range comp.StaticMembers {
			sb.WriteString("  static ")
			sb.WriteString(member.Name)
			sb.WriteString(" = ")
			sb.WriteString(member.Value.String())
			sb.WriteString(";\n")
		}
		sb.WriteString("}\n")
	}
	if comp.Tag != "" {
		sb.WriteString("customElements.define(")
		sb.WriteString(quote(comp.Tag))
		sb.WriteString(", ")
		sb.WriteString(comp.ClassName)
		sb.WriteString(");\n")
	}
}

func quote(s string) string {
	return `"` + s + `"`
}

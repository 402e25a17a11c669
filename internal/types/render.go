package types

import (
	"strings"

	"github.com/ysulyma/stencil/internal/ast"
)

// Render produces the canonical text of a type annotation. The
// rendering collapses whitespace to one spelling, so it doubles as the
// structural identity used by the interner:
//
//	named:    Todo, EventEmitter<Todo>
//	object:   { id: number; text?: string }
//	array:    Todo[], (A | B)[]
//	union:    "low" | "high"
//	literal:  "low"
//
// Missing or malformed annotations render as "any".
func Render(b *ast.Builder, id ast.TypeID) string {
	if !id.IsValid() {
		return "any"
	}
	var sb strings.Builder
	renderInto(&sb, b, id)
	return sb.String()
}

func renderInto(sb *strings.Builder, b *ast.Builder, id ast.TypeID) {
	tt := b.Types.Get(id)
	if tt == nil {
		sb.WriteString("any")
		return
	}
	switch tt.Kind {
	case ast.TypeNamed:
		named, _ := b.Types.NamedType(id)
		sb.WriteString(b.MustLookup(named.Name))
		if len(named.Args) != 0 {
			sb.WriteByte('<')
			for i, arg := range named.Args {
				if i != 0 {
					sb.WriteString(", ")
				}
				renderInto(sb, b, arg)
			}
			sb.WriteByte('>')
		}
	case ast.TypeObject:
		obj, _ := b.Types.ObjectType(id)
		if len(obj.Fields) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{ ")
		for i, field := range obj.Fields {
			if i != 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(b.MustLookup(field.Name))
			if field.Optional {
				sb.WriteByte('?')
			}
			sb.WriteString(": ")
			renderInto(sb, b, field.Type)
		}
		sb.WriteString(" }")
	case ast.TypeArray:
		arr, _ := b.Types.ArrayType(id)
		elem := b.Types.Get(arr.Elem)
		needParens := elem != nil && elem.Kind == ast.TypeUnion
		if needParens {
			sb.WriteByte('(')
		}
		renderInto(sb, b, arr.Elem)
		if needParens {
			sb.WriteByte(')')
		}
		sb.WriteString("[]")
	case ast.TypeUnion:
		union, _ := b.Types.UnionType(id)
		for i, member := range union.Members {
			if i != 0 {
				sb.WriteString(" | ")
			}
			renderInto(sb, b, member)
		}
	case ast.TypeStringLit:
		lit, _ := b.Types.StringLitType(id)
		sb.WriteByte('"')
		sb.WriteString(escapeStringLit(b.MustLookup(lit.Value)))
		sb.WriteByte('"')
	default:
		sb.WriteString("any")
	}
}

// escapeStringLit re-escapes a decoded literal value for display
// inside double quotes.
func escapeStringLit(s string) string {
	if !strings.ContainsAny(s, "\"\\\n\r\t") {
		return s
	}
	var sb strings.Builder
	sb.Grow(len(s) + 2)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			sb.WriteString(`\"`)
		case '\\':
			sb.WriteString(`\\`)
		case '\n':
			sb.WriteString(`\n`)
		case '\r':
			sb.WriteString(`\r`)
		case '\t':
			sb.WriteString(`\t`)
		default:
			sb.WriteByte(s[i])
		}
	}
	return sb.String()
}

// ClassifyKind maps an annotation node to the canonical kind used by
// the interner.
func ClassifyKind(b *ast.Builder, id ast.TypeID) Kind {
	tt := b.Types.Get(id)
	if tt == nil {
		return KindInvalid
	}
	switch tt.Kind {
	case ast.TypeNamed:
		named, _ := b.Types.NamedType(id)
		if len(named.Args) == 0 && IsPrimitive(b.MustLookup(named.Name)) {
			return KindPrimitive
		}
		return KindNamed
	case ast.TypeObject:
		return KindObject
	case ast.TypeArray:
		return KindArray
	case ast.TypeUnion:
		return KindUnion
	case ast.TypeStringLit:
		return KindStringLit
	default:
		return KindInvalid
	}
}

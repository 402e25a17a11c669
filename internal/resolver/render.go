package resolver

import (
	"strings"

	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/meta"
	"github.com/ysulyma/stencil/internal/types"
)

// RenderType renders a payload annotation three ways: the text as
// written, the resolved canonical form with local type aliases
// expanded, and the map of named types the annotation reaches.
//
// References collapse by name: the first classification of a name
// wins, later mentions add nothing.
func (r *FileResolver) RenderType(id ast.TypeID) (original, resolved string, refs map[string]meta.TypeReference) {
	refs = make(map[string]meta.TypeReference)
	if !id.IsValid() {
		return "any", "any", refs
	}

	original = types.Render(r.builder, id)

	var sb strings.Builder
	r.renderResolved(&sb, id, make(map[string]bool), refs)
	resolved = sb.String()
	return original, resolved, refs
}

// renderResolved walks an annotation like types.Render but expands
// local type aliases in place. The expanding set breaks alias cycles:
// a self-referential alias keeps its name.
func (r *FileResolver) renderResolved(sb *strings.Builder, id ast.TypeID, expanding map[string]bool, refs map[string]meta.TypeReference) {
	tt := r.builder.Types.Get(id)
	if tt == nil {
		sb.WriteString("any")
		return
	}
	switch tt.Kind {
	case ast.TypeNamed:
		named, _ := r.builder.Types.NamedType(id)
		name := r.builder.MustLookup(named.Name)

		if types.IsPrimitive(name) {
			sb.WriteString(name)
			return
		}

		r.recordRef(name, refs)

		if len(named.Args) == 0 && !expanding[name] {
			if body, ok := r.localAliasBody(name); ok {
				expanding[name] = true
				r.renderResolved(sb, body, expanding, refs)
				delete(expanding, name)
				return
			}
		}

		sb.WriteString(name)
		if len(named.Args) != 0 {
			sb.WriteByte('<')
			for i, arg := range named.Args {
				if i != 0 {
					sb.WriteString(", ")
				}
				r.renderResolved(sb, arg, expanding, refs)
			}
			sb.WriteByte('>')
		}
	case ast.TypeObject:
		obj, _ := r.builder.Types.ObjectType(id)
		if len(obj.Fields) == 0 {
			sb.WriteString("{}")
			return
		}
		sb.WriteString("{ ")
		for i, field := range obj.Fields {
			if i != 0 {
				sb.WriteString("; ")
			}
			sb.WriteString(r.builder.MustLookup(field.Name))
			if field.Optional {
				sb.WriteByte('?')
			}
			sb.WriteString(": ")
			r.renderResolved(sb, field.Type, expanding, refs)
		}
		sb.WriteString(" }")
	case ast.TypeArray:
		arr, _ := r.builder.Types.ArrayType(id)
		var elem strings.Builder
		r.renderResolved(&elem, arr.Elem, expanding, refs)
		text := elem.String()
		if strings.Contains(text, " | ") {
			sb.WriteByte('(')
			sb.WriteString(text)
			sb.WriteByte(')')
		} else {
			sb.WriteString(text)
		}
		sb.WriteString("[]")
	case ast.TypeUnion:
		union, _ := r.builder.Types.UnionType(id)
		for i, member := range union.Members {
			if i != 0 {
				sb.WriteString(" | ")
			}
			r.renderResolved(sb, member, expanding, refs)
		}
	case ast.TypeStringLit:
		sb.WriteString(types.Render(r.builder, id))
	default:
		sb.WriteString("any")
	}
}

// recordRef classifies a named type and adds it to the reference map
// unless the name is already present.
func (r *FileResolver) recordRef(name string, refs map[string]meta.TypeReference) {
	if _, seen := refs[name]; seen {
		return
	}
	location, path, found := r.LookupName(name)
	if !found {
		refs[name] = meta.TypeReference{
			Location: meta.RefGlobal,
			ID:       "global::" + name,
		}
		return
	}
	refs[name] = meta.TypeReference{
		Location: location,
		Path:     path,
		ID:       path + "::" + name,
	}
}

// localAliasBody returns the aliased annotation when name is a local
// type alias.
func (r *FileResolver) localAliasBody(name string) (ast.TypeID, bool) {
	entry, ok := r.scope[name]
	if !ok || entry.location != meta.RefLocal || !entry.decl.IsValid() {
		return ast.NoTypeID, false
	}
	alias, ok := r.builder.Decls.TypeAlias(entry.decl)
	if !ok {
		return ast.NoTypeID, false
	}
	return alias.Type, true
}

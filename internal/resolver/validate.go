package resolver

import (
	"sort"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/meta"
	"github.com/ysulyma/stencil/internal/source"
)

// ValidateReferences checks every named type a rendered annotation
// reached. It runs after each rendering, also when the map is empty,
// so a later resolver can hang cross-file checks here without touching
// callers.
//
// Two things are worth a warning today: a name that resolves to more
// than one declaration in scope, and a name that resolves to nothing
// we know, not even an ambient browser global.
func (r *FileResolver) ValidateReferences(origin source.Span, refs map[string]meta.TypeReference) {
	if r.reporter == nil || len(refs) == 0 {
		return
	}

	names := make([]string, 0, len(refs))
	for name := range refs {
		names = append(names, name)
	}
	sort.Strings(names)

	for _, name := range names {
		ref := refs[name]
		if entry, ok := r.scope[name]; ok && entry.ambiguous {
			diag.ReportWarning(r.reporter, diag.SemaAmbiguousTypeRef, origin,
				"type '"+name+"' matches more than one declaration in scope").
				WithNote(entry.span, "first declaration here").
				Emit()
			continue
		}
		if ref.Location == meta.RefGlobal && !IsAmbientGlobal(name) {
			diag.ReportWarning(r.reporter, diag.SemaUnresolvedTypeRef, origin,
				"cannot resolve type '"+name+"'; it is not declared, imported, or a known global").
				Emit()
		}
	}
}

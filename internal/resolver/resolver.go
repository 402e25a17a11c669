package resolver

import (
	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/meta"
	"github.com/ysulyma/stencil/internal/source"
)

// scopeEntry records where one type name visible in a file comes from.
type scopeEntry struct {
	location meta.RefLocation // RefLocal or RefImport
	path     string           // import specifier, or the declaring file
	decl     ast.DeclID       // local declaration, NoDeclID for imports
	span     source.Span
	// ambiguous is set when the name is declared more than once, or
	// both declared and imported. Resolution keeps the first entry.
	ambiguous bool
}

// FileResolver is the per-file type-resolution service: it knows which
// type names the file can see and answers member-type, docs and
// rendering questions about it.
type FileResolver struct {
	builder  *ast.Builder
	fs       *source.FileSet
	file     ast.FileID
	path     string // declaring file path used in local reference IDs
	scope    map[string]scopeEntry
	reporter diag.Reporter
}

// New builds the resolver for one parsed file: imports and local type
// declarations become the file scope. Duplicate local declarations are
// reported immediately; name collisions between imports and locals are
// kept and reported when a reference to the name is validated.
func New(builder *ast.Builder, fs *source.FileSet, file ast.FileID, reporter diag.Reporter) *FileResolver {
	r := &FileResolver{
		builder:  builder,
		fs:       fs,
		file:     file,
		scope:    make(map[string]scopeEntry, 16),
		reporter: reporter,
	}

	astFile := builder.Files.Get(file)
	if astFile == nil {
		return r
	}
	if src := fs.Get(astFile.Span.File); src != nil {
		r.path = src.Path
	}

	for _, declID := range astFile.Decls {
		decl := builder.Decls.Get(declID)
		if decl == nil {
			continue
		}
		switch decl.Kind {
		case ast.DeclImport:
			imp, _ := builder.Decls.Import(declID)
			from := builder.Lookup(imp.From)
			for _, name := range imp.Names {
				r.declare(builder.MustLookup(name.Name), scopeEntry{
					location: meta.RefImport,
					path:     from,
					span:     name.Span,
				})
			}
		case ast.DeclClass:
			class, _ := builder.Decls.Class(declID)
			r.declareLocal(builder.MustLookup(class.Name), declID, class.NameSpan)
		case ast.DeclInterface:
			iface, _ := builder.Decls.Interface(declID)
			r.declareLocal(builder.MustLookup(iface.Name), declID, iface.NameSpan)
		case ast.DeclTypeAlias:
			alias, _ := builder.Decls.TypeAlias(declID)
			r.declareLocal(builder.MustLookup(alias.Name), declID, alias.NameSpan)
		}
	}
	return r
}

func (r *FileResolver) declareLocal(name string, decl ast.DeclID, span source.Span) {
	if prev, ok := r.scope[name]; ok && prev.location == meta.RefLocal {
		if r.reporter != nil {
			diag.ReportWarning(r.reporter, diag.SemaDuplicateTypeDecl, span,
				"type '"+name+"' is already declared in this file").
				WithNote(prev.span, "previous declaration here").
				Emit()
		}
		prev.ambiguous = true
		r.scope[name] = prev
		return
	}
	r.declare(name, scopeEntry{
		location: meta.RefLocal,
		path:     r.path,
		decl:     decl,
		span:     span,
	})
}

func (r *FileResolver) declare(name string, entry scopeEntry) {
	if name == "" {
		return
	}
	if prev, ok := r.scope[name]; ok {
		// First declaration wins; remember the clash for validation.
		prev.ambiguous = true
		r.scope[name] = prev
		return
	}
	r.scope[name] = entry
}

// Builder exposes the arenas the resolver reads from.
func (r *FileResolver) Builder() *ast.Builder { return r.builder }

// Path returns the declaring file path used in local reference IDs.
func (r *FileResolver) Path() string { return r.path }

// LookupName reports how a type name resolves in this file's scope.
func (r *FileResolver) LookupName(name string) (meta.RefLocation, string, bool) {
	entry, ok := r.scope[name]
	if !ok {
		return meta.RefGlobal, "", false
	}
	return entry.location, entry.path, true
}

// MemberType returns the declared annotation of a property member.
// Methods and unannotated properties have none.
func (r *FileResolver) MemberType(member ast.MemberID) (ast.TypeID, bool) {
	prop, ok := r.builder.Members.Property(member)
	if !ok || !prop.Type.IsValid() {
		return ast.NoTypeID, false
	}
	return prop.Type, true
}

// ResolveSymbol returns the docs snapshot attached to a member.
func (r *FileResolver) ResolveSymbol(member ast.MemberID) meta.DocsSnapshot {
	m := r.builder.Members.Get(member)
	if m == nil {
		return meta.DocsSnapshot{Tags: []meta.DocTag{}}
	}
	var doc source.StringID
	switch m.Kind {
	case ast.MemberProperty:
		prop, _ := r.builder.Members.Property(member)
		doc = prop.Doc
	case ast.MemberMethod:
		method, _ := r.builder.Members.Method(member)
		doc = method.Doc
	}
	return meta.ParseDocBlock(r.builder.Lookup(doc))
}

// Package driver orchestrates compilation: loading, the
// lex/parse/resolve/check pipeline, parallel directory builds, and the
// artifact cache.
package driver

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/lexer"
	"github.com/ysulyma/stencil/internal/meta"
	"github.com/ysulyma/stencil/internal/parser"
	"github.com/ysulyma/stencil/internal/resolver"
	"github.com/ysulyma/stencil/internal/sema"
	"github.com/ysulyma/stencil/internal/source"
	"github.com/ysulyma/stencil/internal/types"
)

// The per-file resolver must cover the full analysis service contract.
var _ sema.Service = (*resolver.FileResolver)(nil)

// Options configures a compilation.
type Options struct {
	// MaxDiagnostics bounds the diagnostics kept per file. Zero means
	// the default of 100.
	MaxDiagnostics int
	// Types collects payload type descriptors across files. Optional;
	// shared interners are safe across parallel compiles.
	Types *types.Interner
	// Cache short-circuits files whose content hash has not changed.
	// Optional.
	Cache *DiskCache
	// Observer receives per-file progress during CompileDir and
	// CompileFiles. Optional.
	Observer FileObserver
}

func (o Options) withDefaults() Options {
	if o.MaxDiagnostics <= 0 {
		o.MaxDiagnostics = 100
	}
	return o
}

// FileResult is the compiled outcome of one source file.
type FileResult struct {
	Path    string
	FileID  source.FileID
	ASTFile ast.FileID
	// Builder holds the file's AST. Nil when the result was restored
	// from the cache.
	Builder    *ast.Builder
	Components []meta.ComponentMeta
	Bag        *diag.Bag
	// FromCache is set when the result was restored without
	// recompiling.
	FromCache bool
}

// CompileFile loads one file into fileSet and runs the full pipeline
// on it. Load failures surface as an IO diagnostic, not an error.
func CompileFile(fileSet *source.FileSet, path string, opts Options) FileResult {
	opts = opts.withDefaults()
	fileID, err := fileSet.Load(path)
	if err != nil {
		bag := diag.NewBag(opts.MaxDiagnostics)
		bag.Add(diag.Diagnostic{
			Severity: diag.SevError,
			Code:     diag.IOLoadFileError,
			Message:  "failed to load file: " + err.Error(),
		})
		return FileResult{Path: path, Bag: bag}
	}
	return compileLoaded(fileSet, fileID, path, opts)
}

// compileLoaded runs the pipeline on an already loaded file, consulting
// the cache first when one is configured.
func compileLoaded(fileSet *source.FileSet, fileID source.FileID, path string, opts Options) FileResult {
	file := fileSet.Get(fileID)

	if opts.Cache != nil {
		if res, ok := opts.Cache.restore(path, fileID, file, opts.MaxDiagnostics); ok {
			return res
		}
	}

	bag := diag.NewBag(opts.MaxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	maxErrors, err := safecast.Conv[uint](opts.MaxDiagnostics)
	if err != nil {
		panic(fmt.Errorf("max diagnostics overflow: %w", err))
	}

	builder := ast.NewBuilder(ast.Hints{})
	lx := lexer.New(file, lexer.Options{Reporter: reporter})

	parseResult := parser.ParseFile(fileSet, lx, builder, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})

	svc := resolver.New(builder, fileSet, parseResult.File, reporter)
	checked := sema.Check(builder, parseResult.File, svc, sema.Options{
		Reporter: reporter,
		Types:    opts.Types,
	})

	result := FileResult{
		Path:       path,
		FileID:     fileID,
		ASTFile:    parseResult.File,
		Builder:    builder,
		Components: checked.Components,
		Bag:        bag,
	}
	if opts.Cache != nil {
		opts.Cache.store(file, result)
	}
	return result
}

package driver

import (
	"fmt"

	"fortio.org/safecast"

	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/lexer"
	"github.com/ysulyma/stencil/internal/parser"
	"github.com/ysulyma/stencil/internal/source"
)

// ParseResult carries the AST of one file for debug output.
type ParseResult struct {
	FileSet *source.FileSet
	File    *source.File
	Builder *ast.Builder
	FileID  ast.FileID
	Bag     *diag.Bag
}

// Parse lexes and parses one file without semantic analysis.
func Parse(path string, maxDiagnostics int) (*ParseResult, error) {
	fs := source.NewFileSet()
	fileID, err := fs.Load(path)
	if err != nil {
		return nil, err
	}
	file := fs.Get(fileID)

	bag := diag.NewBag(maxDiagnostics)
	reporter := diag.BagReporter{Bag: bag}

	maxErrors, err := safecast.Conv[uint](maxDiagnostics)
	if err != nil {
		return nil, fmt.Errorf("max diagnostics overflow: %w", err)
	}

	builder := ast.NewBuilder(ast.Hints{})
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	result := parser.ParseFile(fs, lx, builder, parser.Options{
		Reporter:  reporter,
		MaxErrors: maxErrors,
	})

	return &ParseResult{
		FileSet: fs,
		File:    file,
		Builder: builder,
		FileID:  result.File,
		Bag:     bag,
	}, nil
}

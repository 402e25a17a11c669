package parser

import (
	"fmt"
	"strings"

	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/lexer"
	"github.com/ysulyma/stencil/internal/source"
)

func diagnosticsSummary(bag *diag.Bag) string {
	if bag == nil {
		return "<nil bag>"
	}
	diags := bag.Items()
	if len(diags) == 0 {
		return "<none>"
	}
	lines := make([]string, len(diags))
	for i, d := range diags {
		lines[i] = fmt.Sprintf("[%s] %s", d.Code.ID(), d.Message)
	}
	return strings.Join(lines, "; ")
}

// parseSource runs the full pipeline over input and returns everything
// a test may want to poke at.
func parseSource(input string) (Result, *ast.Builder, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.stc", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})

	res := ParseFile(fs, lx, arenas, Options{
		MaxErrors: 100,
		Reporter:  reporter,
	})
	return res, arenas, bag
}

// makeTestParser builds a parser positioned at the start of input, for
// tests that drive individual productions.
func makeTestParser(input string) (*Parser, *ast.Builder, *diag.Bag) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.stc", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})

	p := &Parser{
		lx:     lx,
		arenas: arenas,
		file:   arenas.Files.New(lx.EmptySpan()),
		fs:     fs,
		opts: Options{
			MaxErrors: 100,
			Reporter:  reporter,
		},
	}
	return p, arenas, bag
}

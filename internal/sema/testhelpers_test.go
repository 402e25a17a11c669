package sema

import (
	"fmt"
	"strings"
	"testing"

	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/lexer"
	"github.com/ysulyma/stencil/internal/meta"
	"github.com/ysulyma/stencil/internal/parser"
	"github.com/ysulyma/stencil/internal/resolver"
	"github.com/ysulyma/stencil/internal/source"
	"github.com/ysulyma/stencil/internal/types"
)

// checkSource runs the front half of the compiler over input, then the
// semantic pass, and returns everything a test may want to poke at.
func checkSource(t *testing.T, input string) (Result, *ast.Builder, *diag.Bag) {
	t.Helper()

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("test.stc", []byte(input))
	file := fs.Get(fileID)

	bag := diag.NewBag(100)
	reporter := diag.BagReporter{Bag: bag}

	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})

	res := parser.ParseFile(fs, lx, arenas, parser.Options{
		MaxErrors: 100,
		Reporter:  reporter,
	})
	if bag.HasErrors() {
		t.Fatalf("parse errors: %s", diagnosticsSummary(bag))
	}

	svc := resolver.New(arenas, fs, res.File, reporter)
	out := Check(arenas, res.File, svc, Options{
		Reporter: reporter,
		Types:    types.NewInterner(),
	})
	return out, arenas, bag
}

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

func countCode(bag *diag.Bag, code diag.Code) int {
	n := 0
	for _, d := range bag.Items() {
		if d.Code == code {
			n++
		}
	}
	return n
}

// singleComponent asserts the pass produced exactly one component.
func singleComponent(t *testing.T, res Result) meta.ComponentMeta {
	t.Helper()
	if len(res.Components) != 1 {
		t.Fatalf("components = %d, want 1", len(res.Components))
	}
	return res.Components[0]
}

func eventByMethod(t *testing.T, comp meta.ComponentMeta, method string) meta.EventMeta {
	t.Helper()
	for _, ev := range comp.Events {
		if ev.Method == method {
			return ev
		}
	}
	t.Fatalf("no event for member %q; events = %+v", method, comp.Events)
	return meta.EventMeta{}
}

func propByName(t *testing.T, comp meta.ComponentMeta, name string) meta.PropMeta {
	t.Helper()
	for _, p := range comp.Properties {
		if p.Name == name {
			return p
		}
	}
	t.Fatalf("no property %q; properties = %+v", name, comp.Properties)
	return meta.PropMeta{}
}

package types

import (
	"testing"

	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/lexer"
	"github.com/ysulyma/stencil/internal/parser"
	"github.com/ysulyma/stencil/internal/source"
)

// Tests build annotation nodes directly through the arenas, mirroring
// what the parser produces for the same source.
func testBuilder() *ast.Builder {
	return ast.NewBuilder(ast.Hints{})
}

func named(b *ast.Builder, name string, args ...ast.TypeID) ast.TypeID {
	id := b.StringsInterner.Intern(name)
	return b.Types.NewNamed(source.Span{}, id, source.Span{}, args)
}

func TestRenderNamedAndGenerics(t *testing.T) {
	b := testBuilder()

	plain := named(b, "Todo")
	if got := Render(b, plain); got != "Todo" {
		t.Fatalf("Render = %q, want Todo", got)
	}

	generic := named(b, "EventEmitter", named(b, "Todo"))
	if got := Render(b, generic); got != "EventEmitter<Todo>" {
		t.Fatalf("Render = %q, want EventEmitter<Todo>", got)
	}

	multi := named(b, "Map", named(b, "string"), named(b, "number"))
	if got := Render(b, multi); got != "Map<string, number>" {
		t.Fatalf("Render = %q, want Map<string, number>", got)
	}
}

func TestRenderObjectAndArray(t *testing.T) {
	b := testBuilder()

	obj := b.Types.NewObject(source.Span{}, []ast.TypeField{
		{Name: b.StringsInterner.Intern("id"), Type: named(b, "number")},
		{Name: b.StringsInterner.Intern("text"), Optional: true, Type: named(b, "string")},
	})
	if got := Render(b, obj); got != "{ id: number; text?: string }" {
		t.Fatalf("Render = %q", got)
	}

	empty := b.Types.NewObject(source.Span{}, nil)
	if got := Render(b, empty); got != "{}" {
		t.Fatalf("Render = %q, want {}", got)
	}

	arr := b.Types.NewArray(source.Span{}, named(b, "Todo"))
	if got := Render(b, arr); got != "Todo[]" {
		t.Fatalf("Render = %q, want Todo[]", got)
	}

	union := b.Types.NewUnion(source.Span{}, []ast.TypeID{named(b, "A"), named(b, "B")})
	unionArr := b.Types.NewArray(source.Span{}, union)
	if got := Render(b, unionArr); got != "(A | B)[]" {
		t.Fatalf("Render = %q, want (A | B)[]", got)
	}
}

func TestRenderUnionAndStringLit(t *testing.T) {
	b := testBuilder()

	low := b.Types.NewStringLit(source.Span{}, b.StringsInterner.Intern("low"))
	high := b.Types.NewStringLit(source.Span{}, b.StringsInterner.Intern("high"))
	union := b.Types.NewUnion(source.Span{}, []ast.TypeID{low, high})
	if got := Render(b, union); got != `"low" | "high"` {
		t.Fatalf("Render = %q", got)
	}

	quoted := b.Types.NewStringLit(source.Span{}, b.StringsInterner.Intern(`say "hi"`))
	if got := Render(b, quoted); got != `"say \"hi\""` {
		t.Fatalf("Render = %q", got)
	}
}

func TestRenderMissingAnnotation(t *testing.T) {
	b := testBuilder()
	if got := Render(b, ast.NoTypeID); got != "any" {
		t.Fatalf("missing annotation should render as any, got %q", got)
	}
}

func TestClassifyKind(t *testing.T) {
	b := testBuilder()

	if got := ClassifyKind(b, named(b, "string")); got != KindPrimitive {
		t.Fatalf("string should classify primitive, got %v", got)
	}
	if got := ClassifyKind(b, named(b, "Todo")); got != KindNamed {
		t.Fatalf("Todo should classify named, got %v", got)
	}
	if got := ClassifyKind(b, named(b, "Array", named(b, "string"))); got != KindNamed {
		t.Fatalf("generic should classify named even with primitive args, got %v", got)
	}

	arr := b.Types.NewArray(source.Span{}, named(b, "Todo"))
	if got := ClassifyKind(b, arr); got != KindArray {
		t.Fatalf("array classification wrong: %v", got)
	}
	if got := ClassifyKind(b, ast.NoTypeID); got != KindInvalid {
		t.Fatalf("NoTypeID should classify invalid, got %v", got)
	}
}

// Guard that parsed annotations and arena-built ones render the same:
// whitespace in source must not leak into the canonical text.
func TestRenderMatchesParsedAnnotation(t *testing.T) {
	src := "class X {\n  e: EventEmitter< Todo[] >;\n  shape: {id:number,text?:string};\n}\n"

	fs := source.NewFileSet()
	fileID := fs.AddVirtual("t.stc", []byte(src))
	file := fs.Get(fileID)

	bag := diag.NewBag(10)
	reporter := diag.BagReporter{Bag: bag}
	lx := lexer.New(file, lexer.Options{Reporter: reporter})
	arenas := ast.NewBuilder(ast.Hints{})
	res := parser.ParseFile(fs, lx, arenas, parser.Options{MaxErrors: 10, Reporter: reporter})
	if bag.HasErrors() {
		t.Fatalf("parse failed: %v", bag.Items())
	}

	class, ok := arenas.Decls.Class(arenas.Files.Get(res.File).Decls[0])
	if !ok || len(class.Members) != 2 {
		t.Fatalf("expected a class with 2 members")
	}

	prop, _ := arenas.Members.Property(class.Members[0])
	if got := Render(arenas, prop.Type); got != "EventEmitter<Todo[]>" {
		t.Fatalf("Render = %q, want EventEmitter<Todo[]>", got)
	}

	shape, _ := arenas.Members.Property(class.Members[1])
	if got := Render(arenas, shape.Type); got != "{ id: number; text?: string }" {
		t.Fatalf("Render = %q, want { id: number; text?: string }", got)
	}
}

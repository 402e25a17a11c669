package ast

import (
	"testing"

	"github.com/ysulyma/stencil/internal/source"
)

func span(start, end uint32) source.Span {
	return source.Span{File: 1, Start: start, End: end}
}

func TestBuilderClassRoundTrip(t *testing.T) {
	b := NewBuilder(Hints{})

	file := b.Files.New(span(0, 100))

	eventName := b.StringsInterner.Intern("todoCompleted")
	decName := b.StringsInterner.Intern("Event")

	dec := b.Decorators.New(Decorator{
		Name:     decName,
		NameSpan: span(1, 6),
		Span:     span(0, 6),
	})

	payloadName := b.StringsInterner.Intern("EventEmitter")
	argName := b.StringsInterner.Intern("Todo")
	arg := b.Types.NewNamed(span(30, 34), argName, span(30, 34), nil)
	emitter := b.Types.NewNamed(span(16, 35), payloadName, span(16, 28), []TypeID{arg})

	member := b.Members.NewProperty(span(0, 36), MemberPropertyData{
		Name:       eventName,
		NameSpan:   span(8, 21),
		Decorators: []DecoratorID{dec},
		Type:       emitter,
	})

	className := b.StringsInterner.Intern("TodoList")
	class := b.Decls.NewClass(span(0, 100), DeclClassData{
		Name:     className,
		NameSpan: span(7, 15),
		Members:  []MemberID{member},
	})
	b.PushDecl(file, class)

	f := b.Files.Get(file)
	if f == nil {
		t.Fatalf("file not found")
	}
	if len(f.Decls) != 1 || f.Decls[0] != class {
		t.Fatalf("expected file to hold the class decl, got %v", f.Decls)
	}

	data, ok := b.Decls.Class(class)
	if !ok {
		t.Fatalf("expected class payload")
	}
	if got := b.MustLookup(data.Name); got != "TodoList" {
		t.Fatalf("class name = %q, want TodoList", got)
	}
	if _, ok := b.Decls.Import(class); ok {
		t.Fatalf("Import accessor must reject a class decl")
	}

	prop, ok := b.Members.Property(data.Members[0])
	if !ok {
		t.Fatalf("expected property payload")
	}
	if got := b.MustLookup(prop.Name); got != "todoCompleted" {
		t.Fatalf("member name = %q, want todoCompleted", got)
	}
	if len(prop.Decorators) != 1 {
		t.Fatalf("expected one decorator, got %d", len(prop.Decorators))
	}
	if got := b.MustLookup(b.Decorators.Get(prop.Decorators[0]).Name); got != "Event" {
		t.Fatalf("decorator name = %q, want Event", got)
	}

	named, ok := b.Types.NamedType(prop.Type)
	if !ok {
		t.Fatalf("expected named type payload")
	}
	if got := b.MustLookup(named.Name); got != "EventEmitter" {
		t.Fatalf("type name = %q, want EventEmitter", got)
	}
	if len(named.Args) != 1 {
		t.Fatalf("expected one type argument, got %d", len(named.Args))
	}
	argData, ok := b.Types.NamedType(named.Args[0])
	if !ok || b.MustLookup(argData.Name) != "Todo" {
		t.Fatalf("expected Todo type argument")
	}
}

func TestMembersKindHelpers(t *testing.T) {
	b := NewBuilder(Hints{})

	propName := b.StringsInterner.Intern("open")
	prop := b.Members.NewProperty(span(0, 10), MemberPropertyData{Name: propName})

	methodName := b.StringsInterner.Intern("focus")
	decID := b.Decorators.New(Decorator{Name: b.StringsInterner.Intern("Method")})
	method := b.Members.NewMethod(span(12, 30), MemberMethodData{
		Name:       methodName,
		Decorators: []DecoratorID{decID},
	})

	if got := b.Members.Name(prop); got != propName {
		t.Fatalf("Name(property) = %v, want %v", got, propName)
	}
	if got := b.Members.Name(method); got != methodName {
		t.Fatalf("Name(method) = %v, want %v", got, methodName)
	}
	if got := b.Members.Decorators(prop); len(got) != 0 {
		t.Fatalf("expected no decorators on property, got %d", len(got))
	}
	if got := b.Members.Decorators(method); len(got) != 1 || got[0] != decID {
		t.Fatalf("expected method decorator list [%v], got %v", decID, got)
	}

	if _, ok := b.Members.Method(prop); ok {
		t.Fatalf("Method accessor must reject a property member")
	}
}

func TestExprStores(t *testing.T) {
	b := NewBuilder(Hints{})

	strVal := b.StringsInterner.Intern("toggled")
	lit := b.Exprs.NewLiteral(span(0, 9), LitString, strVal)

	key := b.StringsInterner.Intern("eventName")
	obj := b.Exprs.NewObject(span(0, 20), []ObjectEntry{
		{Key: key, KeySpan: span(0, 9), Value: lit},
	})

	data, ok := b.Exprs.Object(obj)
	if !ok {
		t.Fatalf("expected object payload")
	}
	if len(data.Entries) != 1 {
		t.Fatalf("expected one entry, got %d", len(data.Entries))
	}
	entry := data.Entries[0]
	if b.MustLookup(entry.Key) != "eventName" {
		t.Fatalf("entry key mismatch")
	}
	litData, ok := b.Exprs.Literal(entry.Value)
	if !ok || litData.Kind != LitString {
		t.Fatalf("expected string literal value")
	}
	if b.MustLookup(litData.Value) != "toggled" {
		t.Fatalf("literal value mismatch")
	}

	if _, ok := b.Exprs.Ident(obj); ok {
		t.Fatalf("Ident accessor must reject an object expr")
	}
	if _, ok := b.Exprs.Literal(NoExprID); ok {
		t.Fatalf("Literal accessor must reject NoExprID")
	}
}

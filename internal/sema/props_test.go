package sema

import (
	"testing"

	"github.com/ysulyma/stencil/internal/diag"
	"github.com/ysulyma/stencil/internal/meta"
)

func TestPropDefaults(t *testing.T) {
	res, _, bag := checkSource(t, `
@Component({ tag: "todo-list" })
class TodoList {
  @Prop() label: string = "todos";
}
`)
	comp := singleComponent(t, res)
	p := propByName(t, comp, "label")

	if p.Attribute != "label" {
		t.Errorf("attribute = %q", p.Attribute)
	}
	if p.Mutable || p.Reflect {
		t.Errorf("mutable/reflect = %v/%v, want false", p.Mutable, p.Reflect)
	}
	if p.ComplexType.Original != "string" {
		t.Errorf("complexType.original = %q", p.ComplexType.Original)
	}
	if p.Default == nil || p.Default.Kind != meta.ValueString || p.Default.Str != "todos" {
		t.Errorf("default = %+v, want \"todos\"", p.Default)
	}
	if bag.Len() != 0 {
		t.Errorf("unexpected diagnostics: %s", diagnosticsSummary(bag))
	}
}

func TestPropAttributeNaming(t *testing.T) {
	res, _, _ := checkSource(t, `
@Component({ tag: "todo-list" })
class TodoList {
  @Prop() maxItems: number;
  @Prop({ attribute: "items" }) visibleItems: number;
}
`)
	comp := singleComponent(t, res)
	if p := propByName(t, comp, "maxItems"); p.Attribute != "max-items" {
		t.Errorf("derived attribute = %q, want dash-case", p.Attribute)
	}
	if p := propByName(t, comp, "visibleItems"); p.Attribute != "items" {
		t.Errorf("explicit attribute = %q", p.Attribute)
	}
}

func TestPropOptions(t *testing.T) {
	res, _, _ := checkSource(t, `
@Component({ tag: "todo-list" })
class TodoList {
  @Prop({ mutable: true, reflect: true }) open: boolean;
}
`)
	p := propByName(t, singleComponent(t, res), "open")
	if !p.Mutable || !p.Reflect {
		t.Errorf("mutable/reflect = %v/%v, want true", p.Mutable, p.Reflect)
	}
}

func TestPropDefaultValues(t *testing.T) {
	res, _, _ := checkSource(t, `
@Component({ tag: "todo-list" })
class TodoList {
  @Prop() count: number = -3;
  @Prop() ratio: number = 0.5;
  @Prop() open: boolean = false;
  @Prop() holder = null;
  @Prop() sizes = [1, 2, 3];
  @Prop() bounds = { min: 0, max: 10 };
  @Prop() linked = other;
}
`)
	comp := singleComponent(t, res)

	if p := propByName(t, comp, "count"); p.Default == nil || p.Default.Int != -3 {
		t.Errorf("count default = %+v", p.Default)
	}
	if p := propByName(t, comp, "ratio"); p.Default == nil || p.Default.Float != 0.5 {
		t.Errorf("ratio default = %+v", p.Default)
	}
	if p := propByName(t, comp, "open"); p.Default == nil || p.Default.Kind != meta.ValueBool || p.Default.Bool {
		t.Errorf("open default = %+v", p.Default)
	}
	if p := propByName(t, comp, "holder"); p.Default == nil || p.Default.Kind != meta.ValueNull {
		t.Errorf("holder default = %+v", p.Default)
	}
	if p := propByName(t, comp, "sizes"); p.Default == nil || len(p.Default.Items) != 3 {
		t.Errorf("sizes default = %+v", p.Default)
	}
	if p := propByName(t, comp, "bounds"); p.Default == nil || len(p.Default.Fields) != 2 {
		t.Errorf("bounds default = %+v", p.Default)
	}
	// Identifier initializers cannot be encoded into the artifact.
	if p := propByName(t, comp, "linked"); p.Default != nil {
		t.Errorf("linked default = %+v, want none", p.Default)
	}
}

func TestPropsStaticMember(t *testing.T) {
	res, _, _ := checkSource(t, `
@Component({ tag: "todo-list" })
class TodoList {
  @Prop() label: string;
  @Prop() maxItems: number;
}
`)
	comp := singleComponent(t, res)
	static, ok := comp.FindStatic("properties")
	if !ok {
		t.Fatalf("no properties static member; staticMembers = %+v", comp.StaticMembers)
	}
	if static.Value.Kind != meta.ValueArray || len(static.Value.Items) != 2 {
		t.Fatalf("properties literal = %s", static.Value)
	}
	if v, _ := static.Value.Items[1].Field("attribute"); v.Str != "max-items" {
		t.Errorf("encoded attribute = %q", v.Str)
	}
}

func TestPropAndEventConflict(t *testing.T) {
	res, _, bag := checkSource(t, `
@Component({ tag: "todo-list" })
class TodoList {
  @Prop() @Event() stray: EventEmitter<string>;
}
`)
	comp := singleComponent(t, res)
	if countCode(bag, diag.SemaDecoratorConflict) != 1 {
		t.Errorf("expected one conflict warning, got: %s", diagnosticsSummary(bag))
	}
	// The first decorator claims the member.
	if len(comp.Properties) != 1 {
		t.Errorf("properties = %+v, want the claimed member", comp.Properties)
	}
	if len(comp.Events) != 0 {
		t.Errorf("events = %+v, want none", comp.Events)
	}
}

func TestDashCase(t *testing.T) {
	tests := []struct{ in, want string }{
		{"size", "size"},
		{"maxItems", "max-items"},
		{"innerHTML", "inner-h-t-m-l"},
		{"a", "a"},
		{"URL", "u-r-l"},
		{"", ""},
	}
	for _, tt := range tests {
		if got := dashCase(tt.in); got != tt.want {
			t.Errorf("dashCase(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

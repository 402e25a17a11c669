package meta

import (
	"encoding/json"
	"testing"
)

func TestValueJSONShapes(t *testing.T) {
	cases := []struct {
		value Value
		want  string
	}{
		{NullValue(), `null`},
		{StringValue("hi"), `"hi"`},
		{StringValue(`say "hi"`), `"say \"hi\""`},
		{BoolValue(true), `true`},
		{BoolValue(false), `false`},
		{IntValue(-42), `-42`},
		{FloatValue(3.25), `3.25`},
		{ArrayValue(IntValue(1), IntValue(2)), `[1,2]`},
		{ArrayValue(), `[]`},
		{ObjectValue(), `{}`},
	}
	for _, tc := range cases {
		raw, err := json.Marshal(tc.value)
		if err != nil {
			t.Fatalf("marshal %s: %v", tc.value.Kind, err)
		}
		if string(raw) != tc.want {
			t.Fatalf("got %s, want %s", raw, tc.want)
		}
	}
}

func TestValueObjectOrderPreserved(t *testing.T) {
	v := ObjectValue(
		ValueField{Name: "zeta", Value: IntValue(1)},
		ValueField{Name: "alpha", Value: IntValue(2)},
		ValueField{Name: "mid", Value: ObjectValue(
			ValueField{Name: "b", Value: BoolValue(true)},
			ValueField{Name: "a", Value: NullValue()},
		)},
	)
	want := `{"zeta":1,"alpha":2,"mid":{"b":true,"a":null}}`
	if got := v.String(); got != want {
		t.Fatalf("got %s, want %s", got, want)
	}
}

func TestValueConstructorsCopy(t *testing.T) {
	items := []Value{IntValue(1)}
	arr := ArrayValue(items...)
	items[0] = IntValue(99)
	if arr.Items[0].Int != 1 {
		t.Fatalf("ArrayValue must copy its input")
	}

	fields := []ValueField{{Name: "k", Value: IntValue(1)}}
	obj := ObjectValue(fields...)
	fields[0].Value = IntValue(99)
	if got, _ := obj.Field("k"); got.Int != 1 {
		t.Fatalf("ObjectValue must copy its input")
	}
}

func TestValueFieldLookup(t *testing.T) {
	v := ObjectValue(ValueField{Name: "tag", Value: StringValue("x-app")})
	if got, ok := v.Field("tag"); !ok || got.Str != "x-app" {
		t.Fatalf("Field lookup failed: %v %v", got, ok)
	}
	if _, ok := v.Field("missing"); ok {
		t.Fatalf("missing field should not resolve")
	}
	if _, ok := StringValue("x").Field("tag"); ok {
		t.Fatalf("Field on non-object should not resolve")
	}
}

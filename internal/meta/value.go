package meta

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// ValueKind enumerates the literal shapes a synthesized static member
// can hold.
type ValueKind uint8

const (
	ValueNull ValueKind = iota
	ValueString
	ValueBool
	ValueInt
	ValueFloat
	ValueArray
	ValueObject
)

func (k ValueKind) String() string {
	switch k {
	case ValueNull:
		return "null"
	case ValueString:
		return "string"
	case ValueBool:
		return "bool"
	case ValueInt:
		return "int"
	case ValueFloat:
		return "float"
	case ValueArray:
		return "array"
	case ValueObject:
		return "object"
	default:
		return fmt.Sprintf("ValueKind(%d)", k)
	}
}

// Value is an immutable literal tree. Object fields keep insertion
// order so encodings are stable across runs.
type Value struct {
	Kind   ValueKind
	Str    string
	Bool   bool
	Int    int64
	Float  float64
	Items  []Value
	Fields []ValueField
}

// ValueField is one ordered `name: value` pair of an object literal.
type ValueField struct {
	Name  string
	Value Value
}

func NullValue() Value           { return Value{Kind: ValueNull} }
func StringValue(s string) Value { return Value{Kind: ValueString, Str: s} }
func BoolValue(b bool) Value     { return Value{Kind: ValueBool, Bool: b} }
func IntValue(v int64) Value     { return Value{Kind: ValueInt, Int: v} }
func FloatValue(v float64) Value { return Value{Kind: ValueFloat, Float: v} }

// ArrayValue copies items so later mutation of the argument cannot
// reach the built value.
func ArrayValue(items ...Value) Value {
	copied := make([]Value, len(items))
	copy(copied, items)
	return Value{Kind: ValueArray, Items: copied}
}

// ObjectValue copies fields, preserving their order.
func ObjectValue(fields ...ValueField) Value {
	copied := make([]ValueField, len(fields))
	copy(copied, fields)
	return Value{Kind: ValueObject, Fields: copied}
}

// Field returns the named object field, if present.
func (v Value) Field(name string) (Value, bool) {
	if v.Kind != ValueObject {
		return Value{}, false
	}
	for _, f := range v.Fields {
		if f.Name == name {
			return f.Value, true
		}
	}
	return Value{}, false
}

// MarshalJSON renders the tree with object fields in insertion order.
func (v Value) MarshalJSON() ([]byte, error) {
	var sb strings.Builder
	if err := v.encode(&sb); err != nil {
		return nil, err
	}
	return []byte(sb.String()), nil
}

func (v Value) encode(sb *strings.Builder) error {
	switch v.Kind {
	case ValueNull:
		sb.WriteString("null")
	case ValueString:
		raw, err := json.Marshal(v.Str)
		if err != nil {
			return err
		}
		sb.Write(raw)
	case ValueBool:
		sb.WriteString(strconv.FormatBool(v.Bool))
	case ValueInt:
		sb.WriteString(strconv.FormatInt(v.Int, 10))
	case ValueFloat:
		sb.WriteString(strconv.FormatFloat(v.Float, 'g', -1, 64))
	case ValueArray:
		sb.WriteByte('[')
		for i, item := range v.Items {
			if i != 0 {
				sb.WriteByte(',')
			}
			if err := item.encode(sb); err != nil {
				return err
			}
		}
		sb.WriteByte(']')
	case ValueObject:
		sb.WriteByte('{')
		for i, field := range v.Fields {
			if i != 0 {
				sb.WriteByte(',')
			}
			key, err := json.Marshal(field.Name)
			if err != nil {
				return err
			}
			sb.Write(key)
			sb.WriteByte(':')
			if err := field.Value.encode(sb); err != nil {
				return err
			}
		}
		sb.WriteByte('}')
	default:
		return fmt.Errorf("meta: cannot encode %s value", v.Kind)
	}
	return nil
}

// String renders the compact JSON form, for logs and tests.
func (v Value) String() string {
	raw, err := v.MarshalJSON()
	if err != nil {
		return "<invalid value>"
	}
	return string(raw)
}

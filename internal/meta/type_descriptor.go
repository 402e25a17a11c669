package meta

import (
	"fmt"
	"sort"
)

// RefLocation says where a referenced type name is declared relative
// to the file under compilation.
type RefLocation uint8

const (
	// RefLocal: declared in the same file.
	RefLocal RefLocation = iota
	// RefImport: brought in by an import clause.
	RefImport
	// RefGlobal: not declared anywhere visible; assumed ambient.
	RefGlobal
)

func (l RefLocation) String() string {
	switch l {
	case RefLocal:
		return "local"
	case RefImport:
		return "import"
	case RefGlobal:
		return "global"
	default:
		return fmt.Sprintf("RefLocation(%d)", l)
	}
}

func (l RefLocation) MarshalJSON() ([]byte, error) {
	return []byte(`"` + l.String() + `"`), nil
}

// TypeReference records one named type a payload annotation mentions.
type TypeReference struct {
	Location RefLocation `json:"location"`
	// Path is the import specifier for RefImport, the declaring file
	// for RefLocal, empty for RefGlobal.
	Path string `json:"path,omitempty"`
	// ID is a stable identifier: "<path>::<name>" for declared types,
	// "global::<name>" for ambient ones.
	ID string `json:"id"`
}

// TypeDescriptor describes a payload type: the annotation as written,
// the canonical rendering, and every named type it mentions.
//
// Original and Resolved are both "any" exactly when no payload type
// was determined; References is empty in that case.
type TypeDescriptor struct {
	Original   string                   `json:"original"`
	Resolved   string                   `json:"resolved"`
	References map[string]TypeReference `json:"references"`
}

// AnyDescriptor is the descriptor for an undetermined payload.
func AnyDescriptor() TypeDescriptor {
	return TypeDescriptor{
		Original:   "any",
		Resolved:   "any",
		References: map[string]TypeReference{},
	}
}

// IsAny reports whether the descriptor is the undetermined-payload one.
func (d TypeDescriptor) IsAny() bool {
	return d.Original == "any" && d.Resolved == "any" && len(d.References) == 0
}

// ToValue encodes the descriptor as a literal with references in
// name order.
func (d TypeDescriptor) ToValue() Value {
	names := make([]string, 0, len(d.References))
	for name := range d.References {
		names = append(names, name)
	}
	sort.Strings(names)

	refs := make([]ValueField, 0, len(names))
	for _, name := range names {
		ref := d.References[name]
		fields := []ValueField{
			{Name: "location", Value: StringValue(ref.Location.String())},
		}
		if ref.Path != "" {
			fields = append(fields, ValueField{Name: "path", Value: StringValue(ref.Path)})
		}
		fields = append(fields, ValueField{Name: "id", Value: StringValue(ref.ID)})
		refs = append(refs, ValueField{Name: name, Value: ObjectValue(fields...)})
	}

	return ObjectValue(
		ValueField{Name: "original", Value: StringValue(d.Original)},
		ValueField{Name: "resolved", Value: StringValue(d.Resolved)},
		ValueField{Name: "references", Value: ObjectValue(refs...)},
	)
}

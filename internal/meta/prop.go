package meta

// PropMeta describes one public property of a component.
type PropMeta struct {
	Name string `json:"name"`
	// Attribute is the dash-case DOM attribute mirroring the property.
	Attribute   string         `json:"attribute"`
	Mutable     bool           `json:"mutable"`
	Reflect     bool           `json:"reflect"`
	Docs        DocsSnapshot   `json:"docs"`
	ComplexType TypeDescriptor `json:"complexType"`
	// Default is the initializer literal; nil when the property has none.
	Default *Value `json:"defaultValue,omitempty"`
}

// ToValue encodes the property descriptor as a literal.
func (p PropMeta) ToValue() Value {
	fields := []ValueField{
		{Name: "name", Value: StringValue(p.Name)},
		{Name: "attribute", Value: StringValue(p.Attribute)},
		{Name: "mutable", Value: BoolValue(p.Mutable)},
		{Name: "reflect", Value: BoolValue(p.Reflect)},
		{Name: "docs", Value: p.Docs.ToValue()},
		{Name: "complexType", Value: p.ComplexType.ToValue()},
	}
	if p.Default != nil {
		fields = append(fields, ValueField{Name: "defaultValue", Value: *p.Default})
	}
	return ObjectValue(fields...)
}

// PropsValue encodes a descriptor list in declaration order.
func PropsValue(props []PropMeta) Value {
	items := make([]Value, len(props))
	for i, p := range props {
		items[i] = p.ToValue()
	}
	return ArrayValue(items...)
}

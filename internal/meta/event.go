package meta

// EventMeta describes one custom event a component dispatches.
type EventMeta struct {
	// Method is the class member the emitter lives on. Never empty.
	Method string `json:"method"`
	// Name is the public event name. Never empty.
	Name        string         `json:"name"`
	Bubbles     bool           `json:"bubbles"`
	Cancelable  bool           `json:"cancelable"`
	Composed    bool           `json:"composed"`
	Docs        DocsSnapshot   `json:"docs"`
	ComplexType TypeDescriptor `json:"complexType"`
}

// ToValue encodes the event descriptor as a literal.
func (e EventMeta) ToValue() Value {
	return ObjectValue(
		ValueField{Name: "method", Value: StringValue(e.Method)},
		ValueField{Name: "name", Value: StringValue(e.Name)},
		ValueField{Name: "bubbles", Value: BoolValue(e.Bubbles)},
		ValueField{Name: "cancelable", Value: BoolValue(e.Cancelable)},
		ValueField{Name: "composed", Value: BoolValue(e.Composed)},
		ValueField{Name: "docs", Value: e.Docs.ToValue()},
		ValueField{Name: "complexType", Value: e.ComplexType.ToValue()},
	)
}

// EventsValue encodes a descriptor list in declaration order.
func EventsValue(events []EventMeta) Value {
	items := make([]Value, len(events))
	for i, e := range events {
		items[i] = e.ToValue()
	}
	return ArrayValue(items...)
}

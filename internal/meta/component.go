package meta

// StaticMember is one synthesized `static` member appended to a
// compiled class, such as `events` or `properties`.
type StaticMember struct {
	Name  string `json:"name"`
	Value Value  `json:"value"`
}

// ComponentMeta is the compiled description of one decorated class.
type ComponentMeta struct {
	ClassName string `json:"className"`
	Tag       string `json:"tag"`
	// Docs is the class-level doc snapshot.
	Docs DocsSnapshot `json:"docs"`
	// Events and Properties keep declaration order.
	Events     []EventMeta `json:"events"`
	Properties []PropMeta  `json:"properties"`
	// StaticMembers are the synthesized members in append order. Each
	// name appears at most once.
	StaticMembers []StaticMember `json:"staticMembers"`
}

// FindStatic returns the named synthesized member, if present.
func (c *ComponentMeta) FindStatic(name string) (StaticMember, bool) {
	for _, m := range c.StaticMembers {
		if m.Name == name {
			return m, true
		}
	}
	return StaticMember{}, false
}

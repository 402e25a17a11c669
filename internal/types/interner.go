package types

import (
	"fmt"
	"sync"

	"fortio.org/safecast"
)

// Builtins stores TypeIDs for the primitive types every file can name
// without declaring or importing anything.
type Builtins struct {
	Invalid TypeID
	Any     TypeID
	String  TypeID
	Number  TypeID
	Boolean TypeID
	Void    TypeID
}

// Interner provides stable TypeIDs keyed by canonical rendering. One
// interner may be shared by concurrent per-file compilations.
type Interner struct {
	mu       sync.RWMutex
	types    []Type
	index    map[string]TypeID
	builtins Builtins
}

// NewInterner constructs an interner seeded with built-in primitives.
func NewInterner() *Interner {
	in := &Interner{
		index: make(map[string]TypeID, 64),
	}
	in.builtins.Invalid = in.internRaw(Type{Kind: KindInvalid})
	in.builtins.Any = in.Intern(Type{Kind: KindPrimitive, Text: "any"})
	in.builtins.String = in.Intern(Type{Kind: KindPrimitive, Text: "string"})
	in.builtins.Number = in.Intern(Type{Kind: KindPrimitive, Text: "number"})
	in.builtins.Boolean = in.Intern(Type{Kind: KindPrimitive, Text: "boolean"})
	in.builtins.Void = in.Intern(Type{Kind: KindPrimitive, Text: "void"})
	return in
}

// Builtins returns TypeIDs for the primitive types.
func (in *Interner) Builtins() Builtins {
	return in.builtins
}

// Intern ensures the descriptor has a stable TypeID.
func (in *Interner) Intern(t Type) TypeID {
	if t.Kind == KindInvalid {
		return NoTypeID
	}
	in.mu.Lock()
	defer in.mu.Unlock()
	if id, ok := in.index[t.Text]; ok {
		return id
	}
	return in.internRaw(t)
}

// internRaw adds the descriptor to the storage without consulting the
// map. Callers hold mu; the constructor runs before the interner is
// shared.
func (in *Interner) internRaw(t Type) TypeID {
	lenTypes, err := safecast.Conv[uint32](len(in.types))
	if err != nil {
		panic(fmt.Errorf("len(types) overflow: %w", err))
	}
	id := TypeID(lenTypes)
	in.types = append(in.types, t)
	in.index[t.Text] = id
	return id
}

// Len returns the number of interned descriptors, builtins included.
func (in *Interner) Len() int {
	in.mu.RLock()
	defer in.mu.RUnlock()
	return len(in.types)
}

// Lookup returns the descriptor for a TypeID.
func (in *Interner) Lookup(id TypeID) (Type, bool) {
	in.mu.RLock()
	defer in.mu.RUnlock()
	if id == NoTypeID || int(id) >= len(in.types) {
		return Type{}, false
	}
	return in.types[id], true
}

// MustLookup panics when id is invalid.
func (in *Interner) MustLookup(id TypeID) Type {
	tt, ok := in.Lookup(id)
	if !ok {
		panic("types: invalid TypeID")
	}
	return tt
}

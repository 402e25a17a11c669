package source

// StringID is a handle to a string stored in an Interner.
type StringID uint32

// NoStringID is the zero handle; it always resolves to the empty string.
const NoStringID StringID = 0

// Interner deduplicates identifier and literal text so AST nodes can
// carry compact handles instead of string headers.
type Interner struct {
	byID  []string
	index map[string]StringID
}

func NewInterner() *Interner {
	return &Interner{
		byID:  []string{""},
		index: map[string]StringID{"": 0},
	}
}

// Intern stores s and returns its handle, reusing the existing handle
// for text seen before.
func (i *Interner) Intern(s string) StringID {
	if id, ok := i.index[s]; ok {
		return id
	}
	// Copy so the interner never aliases a caller's source buffer.
	cpy := string([]byte(s))
	id := StringID(len(i.byID))
	i.byID = append(i.byID, cpy)
	i.index[cpy] = id
	return id
}

func (i *Interner) InternBytes(b []byte) StringID {
	return i.Intern(string(b))
}

// Lookup resolves a handle. Invalid handles yield ("", false).
func (i *Interner) Lookup(id StringID) (string, bool) {
	if !i.Has(id) {
		return "", false
	}
	return i.byID[id], true
}

// MustLookup resolves a handle and panics on an invalid one.
func (i *Interner) MustLookup(id StringID) string {
	s, ok := i.Lookup(id)
	if !ok {
		panic("source: invalid string ID")
	}
	return s
}

func (i *Interner) Has(id StringID) bool {
	return int(id) < len(i.byID)
}

// Len reports the number of stored strings, counting NoStringID.
func (i *Interner) Len() int {
	return len(i.byID)
}

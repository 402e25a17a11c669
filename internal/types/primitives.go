package types

// primitiveNames are the type names the language itself provides.
// They render as written and never count as type references.
var primitiveNames = map[string]struct{}{
	"any":       {},
	"bigint":    {},
	"boolean":   {},
	"never":     {},
	"null":      {},
	"number":    {},
	"object":    {},
	"string":    {},
	"symbol":    {},
	"undefined": {},
	"unknown":   {},
	"void":      {},
}

// IsPrimitive reports whether name is a built-in primitive type name.
func IsPrimitive(name string) bool {
	_, ok := primitiveNames[name]
	return ok
}

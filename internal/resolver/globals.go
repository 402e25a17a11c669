package resolver

// ambientGlobals are type names the runtime environment provides
// without any declaration: standard library shapes plus the DOM types
// component code touches. References to these resolve as global and
// pass validation; any other unresolved name draws a warning.
var ambientGlobals = map[string]struct{}{
	"Array":            {},
	"ArrayBuffer":      {},
	"Blob":             {},
	"CustomEvent":      {},
	"DataView":         {},
	"Date":             {},
	"Document":         {},
	"DocumentFragment": {},
	"DragEvent":        {},
	"Element":          {},
	"Error":            {},
	"Event":            {},
	"EventTarget":      {},
	"File":             {},
	"FocusEvent":       {},
	"FormData":         {},
	"Function":         {},
	"HTMLElement":      {},
	"HTMLInputElement": {},
	"Headers":          {},
	"Iterable":         {},
	"KeyboardEvent":    {},
	"Map":              {},
	"MouseEvent":       {},
	"MutationObserver": {},
	"Node":             {},
	"NodeList":         {},
	"Object":           {},
	"Omit":             {},
	"Partial":          {},
	"Pick":             {},
	"PointerEvent":     {},
	"Promise":          {},
	"Readonly":         {},
	"ReadonlyArray":    {},
	"ReadonlyMap":      {},
	"ReadonlySet":      {},
	"Record":           {},
	"RegExp":           {},
	"Required":         {},
	"ResizeObserver":   {},
	"Response":         {},
	"SVGElement":       {},
	"Set":              {},
	"ShadowRoot":       {},
	"Text":             {},
	"TouchEvent":       {},
	"UIEvent":          {},
	"URL":              {},
	"URLSearchParams":  {},
	"WeakMap":          {},
	"WeakSet":          {},
	"Window":           {},
}

// IsAmbientGlobal reports whether name is a known environment type.
func IsAmbientGlobal(name string) bool {
	_, ok := ambientGlobals[name]
	return ok
}

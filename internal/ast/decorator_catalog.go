package ast

import (
	"slices"
	"strings"

	"github.com/ysulyma/stencil/internal/source"
)

// DecoratorTargetMask describes the declaration kinds a decorator may
// be applied to.
type DecoratorTargetMask uint8

const (
	DecoratorTargetNone     DecoratorTargetMask = 0
	DecoratorTargetClass    DecoratorTargetMask = 1 << iota // class declarations
	DecoratorTargetProperty                                 // property members
	DecoratorTargetMethod                                   // method members
)

// DecoratorFlag captures handling rules beyond the applicability matrix.
type DecoratorFlag uint8

const (
	DecoratorFlagNone DecoratorFlag = 0

	// DecoratorFlagOptionsRequired marks decorators whose first argument
	// must be an options object (e.g. @Component needs a tag).
	DecoratorFlagOptionsRequired DecoratorFlag = 1 << iota
)

// DecoratorSpec describes a recognized decorator, its targets and rules.
type DecoratorSpec struct {
	Name    string
	Targets DecoratorTargetMask
	Flags   DecoratorFlag
}

// Allows reports whether the decorator can be applied to the target bit.
func (spec DecoratorSpec) Allows(target DecoratorTargetMask) bool {
	return spec.Targets&target != 0
}

// HasFlag reports whether the spec contains the given flag.
func (spec DecoratorSpec) HasFlag(flag DecoratorFlag) bool {
	return spec.Flags&flag != 0
}

var decoratorRegistry = map[string]DecoratorSpec{
	"Component": {Name: "Component", Targets: DecoratorTargetClass, Flags: DecoratorFlagOptionsRequired},
	"Event":     {Name: "Event", Targets: DecoratorTargetProperty},
	"Prop":      {Name: "Prop", Targets: DecoratorTargetProperty},
	"State":     {Name: "State", Targets: DecoratorTargetProperty},
	"Element":   {Name: "Element", Targets: DecoratorTargetProperty},
	"Method":    {Name: "Method", Targets: DecoratorTargetMethod},
	"Watch":     {Name: "Watch", Targets: DecoratorTargetMethod},
	"Listen":    {Name: "Listen", Targets: DecoratorTargetMethod},
}

// LookupDecorator returns metadata for the given decorator name.
// Matching is exact; decorator names are case-sensitive.
func LookupDecorator(name string) (DecoratorSpec, bool) {
	spec, ok := decoratorRegistry[name]
	return spec, ok
}

// LookupDecoratorID resolves decorator metadata via the interner.
func LookupDecoratorID(interner *source.Interner, id source.StringID) (DecoratorSpec, bool) {
	if interner == nil || id == source.NoStringID {
		return DecoratorSpec{}, false
	}
	name, ok := interner.Lookup(id)
	if !ok {
		return DecoratorSpec{}, false
	}
	return LookupDecorator(name)
}

// SuggestDecorator returns the canonical spelling for a name that
// matches a known decorator except for letter case, so diagnostics can
// offer "did you mean '@Event'".
func SuggestDecorator(name string) (string, bool) {
	if name == "" {
		return "", false
	}
	if _, ok := decoratorRegistry[name]; ok {
		return "", false
	}
	for canonical := range decoratorRegistry {
		if strings.EqualFold(canonical, name) {
			return canonical, true
		}
	}
	return "", false
}

// DecoratorSpecs returns all registered specs sorted by name.
func DecoratorSpecs() []DecoratorSpec {
	names := make([]string, 0, len(decoratorRegistry))
	for name := range decoratorRegistry {
		names = append(names, name)
	}
	slices.Sort(names)
	result := make([]DecoratorSpec, 0, len(names))
	for _, name := range names {
		result = append(result, decoratorRegistry[name])
	}
	return result
}

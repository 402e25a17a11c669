package sema

import (
	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/source"
)

// decoratorOptions is a read view over a decorator's options object:
// the first positional argument when it is an object literal. Extra
// arguments are ignored, and any other first argument means "no
// options" rather than an error.
type decoratorOptions struct {
	c       *Checker
	entries []ast.ObjectEntry
}

func (c *Checker) decoratorOptions(dec *ast.Decorator) decoratorOptions {
	opts := decoratorOptions{c: c}
	if dec == nil || len(dec.Args) == 0 {
		return opts
	}
	if obj, ok := c.builder.Exprs.Object(dec.Args[0]); ok {
		opts.entries = obj.Entries
	}
	return opts
}

// field returns the value of the first entry carrying the key.
func (o decoratorOptions) field(key string) (ast.ExprID, bool) {
	for _, entry := range o.entries {
		if o.c.builder.MustLookup(entry.Key) == key {
			return entry.Value, true
		}
	}
	return ast.NoExprID, false
}

// stringField returns the decoded text of a string-literal field.
func (o decoratorOptions) stringField(key string) (string, source.Span, bool) {
	value, ok := o.field(key)
	if !ok {
		return "", source.Span{}, false
	}
	lit, ok := o.c.builder.Exprs.Literal(value)
	if !ok || lit.Kind != ast.LitString {
		return "", source.Span{}, false
	}
	return o.c.builder.MustLookup(lit.Value), o.c.builder.Exprs.Get(value).Span, true
}

// boolField returns the field when it is strictly a boolean literal,
// else the fallback. A stray value for one flag never affects another.
func (o decoratorOptions) boolField(key string, fallback bool) bool {
	value, ok := o.field(key)
	if !ok {
		return fallback
	}
	lit, ok := o.c.builder.Exprs.Literal(value)
	if !ok || lit.Kind != ast.LitBool {
		return fallback
	}
	return o.c.builder.MustLookup(lit.Value) == "true"
}

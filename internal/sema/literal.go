package sema

import (
	"strconv"

	"github.com/ysulyma/stencil/internal/ast"
	"github.com/ysulyma/stencil/internal/meta"
)

// evalLiteral evaluates an initializer or decorator-argument
// expression into an embeddable value. Identifiers are not literals
// and report false; callers treat that as "no encodable value", not as
// an error. A single unencodable element poisons its whole container.
func evalLiteral(b *ast.Builder, id ast.ExprID) (meta.Value, bool) {
	expr := b.Exprs.Get(id)
	if expr == nil {
		return meta.Value{}, false
	}

	switch expr.Kind {
	case ast.ExprLit:
		lit, _ := b.Exprs.Literal(id)
		text := b.MustLookup(lit.Value)
		switch lit.Kind {
		case ast.LitNull:
			return meta.NullValue(), true
		case ast.LitBool:
			return meta.BoolValue(text == "true"), true
		case ast.LitString:
			return meta.StringValue(text), true
		case ast.LitInt:
			v, err := strconv.ParseInt(text, 10, 64)
			if err != nil {
				return meta.Value{}, false
			}
			return meta.IntValue(v), true
		case ast.LitFloat:
			v, err := strconv.ParseFloat(text, 64)
			if err != nil {
				return meta.Value{}, false
			}
			return meta.FloatValue(v), true
		}

	case ast.ExprNeg:
		neg, _ := b.Exprs.Neg(id)
		v, ok := evalLiteral(b, neg.Operand)
		if !ok {
			return meta.Value{}, false
		}
		switch v.Kind {
		case meta.ValueInt:
			v.Int = -v.Int
			return v, true
		case meta.ValueFloat:
			v.Float = -v.Float
			return v, true
		}
		return meta.Value{}, false

	case ast.ExprArray:
		arr, _ := b.Exprs.Array(id)
		items := make([]meta.Value, 0, len(arr.Elements))
		for _, el := range arr.Elements {
			v, ok := evalLiteral(b, el)
			if !ok {
				return meta.Value{}, false
			}
			items = append(items, v)
		}
		return meta.ArrayValue(items...), true

	case ast.ExprObject:
		obj, _ := b.Exprs.Object(id)
		fields := make([]meta.ValueField, 0, len(obj.Entries))
		for _, entry := range obj.Entries {
			v, ok := evalLiteral(b, entry.Value)
			if !ok {
				return meta.Value{}, false
			}
			fields = append(fields, meta.ValueField{
				Name:  b.MustLookup(entry.Key),
				Value: v,
			})
		}
		return meta.ObjectValue(fields...), true
	}

	return meta.Value{}, false
}

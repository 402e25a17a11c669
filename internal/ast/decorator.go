package ast

import "github.com/ysulyma/stencil/internal/source"

// Decorator describes one `@Name(args...)` annotation.
type Decorator struct {
	Name     source.StringID
	NameSpan source.Span
	Span     source.Span // from '@' through the closing paren
	Args     []ExprID
}

type Decorators struct {
	Arena *Arena[Decorator]
}

func NewDecorators(capHint uint) *Decorators {
	return &Decorators{
		Arena: NewArena[Decorator](capHint),
	}
}

func (d *Decorators) New(dec Decorator) DecoratorID {
	return DecoratorID(d.Arena.Allocate(dec))
}

func (d *Decorators) Get(id DecoratorID) *Decorator {
	return d.Arena.Get(uint32(id))
}

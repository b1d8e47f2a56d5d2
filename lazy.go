package sift

import "sync"

// LazySchema defers construction of its target until first use, enabling
// recursive schemas and forward references into a registry. The target is
// built once and memoized.
type LazySchema struct {
	core
	once   sync.Once
	mk     func() Schema
	target Schema
}

// Lazy declares a schema whose target is produced by mk on first use.
func Lazy(mk func() Schema) *LazySchema {
	if mk == nil {
		panic("sift: Lazy requires a constructor")
	}
	s := &LazySchema{mk: mk}
	s.core = newCore(KindLazy, s)
	return s
}

// Unwrap resolves and returns the target schema.
func (s *LazySchema) Unwrap() Schema { return s.resolve() }

func (s *LazySchema) resolve() Schema {
	s.once.Do(func() { s.target = s.mk() })
	return s.target
}

func (s *LazySchema) validate(p *payload, ctx *ParseContext) {
	s.resolve().validate(p, ctx)
}

// Parse validates value against the resolved target and returns it untyped.
func (s *LazySchema) Parse(value any, opts ...ParseOption) (any, error) {
	return s.ParseAny(value, opts...)
}

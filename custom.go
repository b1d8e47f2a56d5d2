package sift

import (
	"github.com/aretw0/sift/pkg/issue"
)

// CustomSchema runs a user-supplied refinement. A non-nil error from the
// refinement becomes a custom issue carrying the error text.
type CustomSchema struct {
	core
	name string
	fn   func(value any) error
}

// Custom declares a standalone refinement schema. name labels the
// refinement in issue origins and may be empty.
func Custom(name string, fn func(value any) error) *CustomSchema {
	if fn == nil {
		panic("sift: Custom requires a refinement function")
	}
	s := &CustomSchema{name: name, fn: fn}
	s.core = newCore(KindCustom, s)
	return s
}

func (s *CustomSchema) validate(p *payload, ctx *ParseContext) {
	if err := s.fn(p.value); err != nil {
		p.report(ctx, issue.Issue{
			Code:    issue.CodeCustom,
			Message: err.Error(),
			Input:   p.value,
			Origin:  refineOrigin(s.name),
		})
	}
}

// Parse validates value and returns it untyped.
func (s *CustomSchema) Parse(value any, opts ...ParseOption) (any, error) {
	return s.ParseAny(value, opts...)
}

// refinedSchema validates its base schema first and applies the refinement
// only to values the base accepted, so refinements always see coerced
// values and never stack noise onto structural failures.
type refinedSchema struct {
	base Schema
	name string
	fn   func(value any) error
}

// Refine layers a named refinement on top of base. The refinement runs only
// when base accepted the value.
func Refine(base Schema, name string, fn func(value any) error) Schema {
	if fn == nil {
		panic("sift: Refine requires a refinement function")
	}
	return &refinedSchema{base: base, name: name, fn: fn}
}

func (s *refinedSchema) Kind() Kind { return s.base.Kind() }

// Unwrap returns the base schema beneath the refinement.
func (s *refinedSchema) Unwrap() Schema { return s.base }

func (s *refinedSchema) validate(p *payload, ctx *ParseContext) {
	s.base.validate(p, ctx)
	if len(p.issues) > 0 {
		return
	}
	if err := s.fn(p.value); err != nil {
		p.report(ctx, issue.Issue{
			Code:    issue.CodeCustom,
			Message: err.Error(),
			Input:   p.value,
			Origin:  refineOrigin(s.name),
		})
	}
}

func refineOrigin(name string) string {
	if name == "" {
		return string(KindCustom)
	}
	return string(KindCustom) + ":" + name
}

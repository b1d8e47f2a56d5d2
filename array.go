package sift

import (
	"fmt"

	"github.com/aretw0/sift/pkg/issue"
)

// ArraySchema validates []any values element by element against one element
// schema. Validation aggregates across elements: every failing index is
// reported, not just the first, unless the call asks for AbortEarly.
type ArraySchema struct {
	core
	elem Schema
	min  *int
	max  *int
}

// Array declares an array schema over the given element schema.
func Array(elem Schema) *ArraySchema {
	s := &ArraySchema{elem: elem}
	s.core = newCore(KindArray, s)
	return s
}

// Min returns a copy requiring at least n elements.
func (s *ArraySchema) Min(n int) *ArraySchema {
	out := *s
	out.min = &n
	out.core = newCore(KindArray, &out)
	return &out
}

// Max returns a copy allowing at most n elements.
func (s *ArraySchema) Max(n int) *ArraySchema {
	out := *s
	out.max = &n
	out.core = newCore(KindArray, &out)
	return &out
}

// Element returns the element schema.
func (s *ArraySchema) Element() Schema { return s.elem }

// Bounds reports the configured length constraints, nil when unset.
func (s *ArraySchema) Bounds() (min, max *int) {
	if s.min != nil {
		v := *s.min
		min = &v
	}
	if s.max != nil {
		v := *s.max
		max = &v
	}
	return min, max
}

func (s *ArraySchema) validate(p *payload, ctx *ParseContext) {
	in, ok := p.value.([]any)
	if !ok {
		p.report(ctx, issue.Issue{
			Code:     issue.CodeInvalidType,
			Message:  fmt.Sprintf("expected array, received %s", typeName(p.value)),
			Input:    p.value,
			Origin:   string(KindArray),
			Expected: "array",
			Received: typeName(p.value),
		})
		return
	}
	if s.min != nil && len(in) < *s.min {
		p.report(ctx, issue.Issue{
			Code:    issue.CodeTooSmall,
			Message: fmt.Sprintf("must contain at least %d elements", *s.min),
			Input:   in,
			Origin:  string(KindArray),
		})
	}
	if p.halted(ctx) {
		return
	}
	if s.max != nil && len(in) > *s.max {
		p.report(ctx, issue.Issue{
			Code:    issue.CodeTooBig,
			Message: fmt.Sprintf("must contain at most %d elements", *s.max),
			Input:   in,
			Origin:  string(KindArray),
		})
	}

	out := make([]any, len(in))
	for i, raw := range in {
		if p.halted(ctx) {
			return
		}
		child := &payload{value: raw}
		s.elem.validate(child, ctx)
		if len(child.issues) > 0 {
			p.merge(issue.Index(i), child)
			continue
		}
		out[i] = child.value
	}

	if len(p.issues) == 0 {
		p.value = out
	}
}

// Parse validates value and returns the accepted elements as a new slice;
// the input slice is never mutated.
func (s *ArraySchema) Parse(value any, opts ...ParseOption) ([]any, error) {
	out, err := s.ParseAny(value, opts...)
	if err != nil {
		return nil, err
	}
	return out.([]any), nil
}

// MustParse panics with the *issue.Error when value is invalid.
func (s *ArraySchema) MustParse(value any, opts ...ParseOption) []any {
	return s.MustParseAny(value, opts...).([]any)
}

package sift

import (
	"fmt"

	"github.com/aretw0/sift/pkg/issue"
)

// BoolSchema accepts bool values. Non-coercing.
type BoolSchema struct {
	core
}

// Bool declares a boolean schema.
func Bool() *BoolSchema {
	s := &BoolSchema{}
	s.core = newCore(KindBool, s)
	return s
}

func (s *BoolSchema) validate(p *payload, ctx *ParseContext) {
	if _, ok := p.value.(bool); !ok {
		p.report(ctx, issue.Issue{
			Code:     issue.CodeInvalidType,
			Message:  fmt.Sprintf("expected bool, received %s", typeName(p.value)),
			Input:    p.value,
			Origin:   string(KindBool),
			Expected: "bool",
			Received: typeName(p.value),
		})
	}
}

// Parse validates value and returns it as a bool.
func (s *BoolSchema) Parse(value any, opts ...ParseOption) (bool, error) {
	out, err := s.ParseAny(value, opts...)
	if err != nil {
		return false, err
	}
	return out.(bool), nil
}

// MustParse panics with the *issue.Error when value is invalid.
func (s *BoolSchema) MustParse(value any, opts ...ParseOption) bool {
	return s.MustParseAny(value, opts...).(bool)
}

package sift

import (
	"fmt"
	"strings"

	"github.com/aretw0/sift/pkg/issue"
)

// EnumSchema accepts one of an ordered set of string literals. The
// declaration order is preserved everywhere the set surfaces: Options,
// issue data and messages.
type EnumSchema struct {
	core
	options []string
}

// Enum declares an enum over the given values. The set must be non-empty
// and free of duplicates; Enum panics otherwise, since an impossible enum
// is a programming error rather than an input error.
func Enum(values ...string) *EnumSchema {
	if len(values) == 0 {
		panic("sift: Enum requires at least one value")
	}
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if _, dup := seen[v]; dup {
			panic(fmt.Sprintf("sift: Enum value %q declared twice", v))
		}
		seen[v] = struct{}{}
	}
	s := &EnumSchema{options: append([]string(nil), values...)}
	s.core = newCore(KindEnum, s)
	return s
}

// Options returns the allowed values in declaration order.
func (s *EnumSchema) Options() []string {
	return append([]string(nil), s.options...)
}

func (s *EnumSchema) validate(p *payload, ctx *ParseContext) {
	if str, ok := p.value.(string); ok {
		for _, opt := range s.options {
			if str == opt {
				return
			}
		}
	}
	p.report(ctx, issue.Issue{
		Code:    issue.CodeInvalidEnumValue,
		Message: fmt.Sprintf("expected one of %s, received %s", quotedList(s.options), displayValue(p.value)),
		Input:   p.value,
		Origin:  string(KindEnum),
		Options: append([]string(nil), s.options...),
	})
}

// Parse validates value and returns it as a string.
func (s *EnumSchema) Parse(value any, opts ...ParseOption) (string, error) {
	out, err := s.ParseAny(value, opts...)
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// MustParse panics with the *issue.Error when value is invalid.
func (s *EnumSchema) MustParse(value any, opts ...ParseOption) string {
	return s.MustParseAny(value, opts...).(string)
}

func quotedList(values []string) string {
	quoted := make([]string, len(values))
	for i, v := range values {
		quoted[i] = fmt.Sprintf("%q", v)
	}
	return strings.Join(quoted, ", ")
}

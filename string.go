package sift

import (
	"fmt"
	"regexp"
	"unicode/utf8"

	"github.com/aretw0/sift/pkg/issue"
)

// StringSchema accepts string values. It never coerces: the accepted value
// is always the input string, so parsing round-trips exactly.
type StringSchema struct {
	core
	minLen  *int
	maxLen  *int
	pattern *regexp.Regexp
}

// String declares a string schema.
func String() *StringSchema {
	s := &StringSchema{}
	s.core = newCore(KindString, s)
	return s
}

// Min returns a copy requiring at least n characters (runes, not bytes).
func (s *StringSchema) Min(n int) *StringSchema {
	out := *s
	out.minLen = &n
	out.core = newCore(KindString, &out)
	return &out
}

// Max returns a copy allowing at most n characters.
func (s *StringSchema) Max(n int) *StringSchema {
	out := *s
	out.maxLen = &n
	out.core = newCore(KindString, &out)
	return &out
}

// Pattern returns a copy requiring the value to match re.
func (s *StringSchema) Pattern(re *regexp.Regexp) *StringSchema {
	out := *s
	out.pattern = re
	out.core = newCore(KindString, &out)
	return &out
}

// Bounds reports the configured length constraints, nil when unset.
func (s *StringSchema) Bounds() (min, max *int) {
	if s.minLen != nil {
		v := *s.minLen
		min = &v
	}
	if s.maxLen != nil {
		v := *s.maxLen
		max = &v
	}
	return min, max
}

// Regexp returns the configured pattern, nil when unset.
func (s *StringSchema) Regexp() *regexp.Regexp { return s.pattern }

func (s *StringSchema) validate(p *payload, ctx *ParseContext) {
	str, ok := p.value.(string)
	if !ok {
		p.report(ctx, issue.Issue{
			Code:     issue.CodeInvalidType,
			Message:  fmt.Sprintf("expected string, received %s", typeName(p.value)),
			Input:    p.value,
			Origin:   string(KindString),
			Expected: "string",
			Received: typeName(p.value),
		})
		return
	}
	if s.minLen != nil && utf8.RuneCountInString(str) < *s.minLen {
		p.report(ctx, issue.Issue{
			Code:    issue.CodeTooSmall,
			Message: fmt.Sprintf("must be at least %d characters", *s.minLen),
			Input:   str,
			Origin:  string(KindString),
		})
	}
	if p.halted(ctx) {
		return
	}
	if s.maxLen != nil && utf8.RuneCountInString(str) > *s.maxLen {
		p.report(ctx, issue.Issue{
			Code:    issue.CodeTooBig,
			Message: fmt.Sprintf("must be at most %d characters", *s.maxLen),
			Input:   str,
			Origin:  string(KindString),
		})
	}
	if p.halted(ctx) {
		return
	}
	if s.pattern != nil && !s.pattern.MatchString(str) {
		p.report(ctx, issue.Issue{
			Code:    issue.CodeInvalidFormat,
			Message: fmt.Sprintf("must match pattern %s", s.pattern),
			Input:   str,
			Origin:  string(KindString),
		})
	}
}

// Parse validates value and returns it as a string.
func (s *StringSchema) Parse(value any, opts ...ParseOption) (string, error) {
	out, err := s.ParseAny(value, opts...)
	if err != nil {
		return "", err
	}
	return out.(string), nil
}

// MustParse panics with the *issue.Error when value is invalid.
func (s *StringSchema) MustParse(value any, opts ...ParseOption) string {
	return s.MustParseAny(value, opts...).(string)
}

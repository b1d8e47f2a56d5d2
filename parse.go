package sift

import (
	"fmt"

	"github.com/aretw0/sift/pkg/issue"
)

// ParseContext carries per-call validation options. It is passed by
// reference down every recursive validate call and is never stored on a
// schema, so one schema tree serves calls with different options
// concurrently.
type ParseContext struct {
	// AbortEarly stops composite traversals after the first issue instead
	// of aggregating every failure.
	AbortEarly bool

	// Formatter, when set, rewrites each issue's message before it is
	// recorded. The issue handed to the formatter carries its final code,
	// path and data.
	Formatter func(issue.Issue) string
}

// ParseOption configures a single Parse call.
type ParseOption func(*ParseContext)

// AbortEarly stops the traversal at the first issue.
func AbortEarly() ParseOption {
	return func(ctx *ParseContext) { ctx.AbortEarly = true }
}

// WithFormatter installs a custom issue message formatter for this call.
func WithFormatter(f func(issue.Issue) string) ParseOption {
	return func(ctx *ParseContext) { ctx.Formatter = f }
}

// Parse validates value against s. On success it returns the accepted
// value, coerced where the schema coerces. On failure it returns a nil
// value and a *issue.Error carrying every issue found, in traversal order.
//
// Parse never panics; the (value, error) pair is the tagged result form.
// Every typed Parse method on the schema variants derives from this one
// function.
func Parse(s Schema, value any, opts ...ParseOption) (any, error) {
	ctx := &ParseContext{}
	for _, opt := range opts {
		opt(ctx)
	}
	p := &payload{value: value}
	s.validate(p, ctx)
	if len(p.issues) > 0 {
		return nil, issue.NewError(p.issues)
	}
	return p.value, nil
}

// MustParse is the throwing form of Parse: it panics with the *issue.Error
// when value is invalid. Reserve it for inputs whose invalidity is a bug.
func MustParse(s Schema, value any, opts ...ParseOption) any {
	out, err := Parse(s, value, opts...)
	if err != nil {
		panic(err)
	}
	return out
}

// ParseAs validates value against s and asserts the accepted value to T.
// The assertion sees the coerced value: numbers arrive as float64, ints as
// int64, objects as map[string]any.
func ParseAs[T any](s Schema, value any, opts ...ParseOption) (T, error) {
	var zero T
	out, err := Parse(s, value, opts...)
	if err != nil {
		return zero, err
	}
	typed, ok := out.(T)
	if !ok {
		return zero, fmt.Errorf("sift: parsed value is %T, not %T", out, zero)
	}
	return typed, nil
}

package sift

import (
	"fmt"
	"math"

	"github.com/aretw0/sift/pkg/issue"
)

// NumberSchema accepts any numeric value and coerces it to float64, the
// canonical carrier for numbers decoded from JSON and YAML.
type NumberSchema struct {
	core
	min *float64
	max *float64
}

// Number declares a number schema.
func Number() *NumberSchema {
	s := &NumberSchema{}
	s.core = newCore(KindNumber, s)
	return s
}

// Min returns a copy requiring the value to be at least f.
func (s *NumberSchema) Min(f float64) *NumberSchema {
	out := *s
	out.min = &f
	out.core = newCore(KindNumber, &out)
	return &out
}

// Max returns a copy allowing the value to be at most f.
func (s *NumberSchema) Max(f float64) *NumberSchema {
	out := *s
	out.max = &f
	out.core = newCore(KindNumber, &out)
	return &out
}

// Bounds reports the configured range constraints, nil when unset.
func (s *NumberSchema) Bounds() (min, max *float64) {
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

func (s *NumberSchema) validate(p *payload, ctx *ParseContext) {
	f, ok := toFloat(p.value)
	if !ok {
		p.report(ctx, issue.Issue{
			Code:     issue.CodeInvalidType,
			Message:  fmt.Sprintf("expected number, received %s", typeName(p.value)),
			Input:    p.value,
			Origin:   string(KindNumber),
			Expected: "number",
			Received: typeName(p.value),
		})
		return
	}
	p.value = f
	if s.min != nil && f < *s.min {
		p.report(ctx, issue.Issue{
			Code:    issue.CodeTooSmall,
			Message: fmt.Sprintf("must be at least %v", *s.min),
			Input:   f,
			Origin:  string(KindNumber),
		})
	}
	if p.halted(ctx) {
		return
	}
	if s.max != nil && f > *s.max {
		p.report(ctx, issue.Issue{
			Code:    issue.CodeTooBig,
			Message: fmt.Sprintf("must be at most %v", *s.max),
			Input:   f,
			Origin:  string(KindNumber),
		})
	}
}

// Parse validates value and returns it as a float64.
func (s *NumberSchema) Parse(value any, opts ...ParseOption) (float64, error) {
	out, err := s.ParseAny(value, opts...)
	if err != nil {
		return 0, err
	}
	return out.(float64), nil
}

// MustParse panics with the *issue.Error when value is invalid.
func (s *NumberSchema) MustParse(value any, opts ...ParseOption) float64 {
	return s.MustParseAny(value, opts...).(float64)
}

// IntSchema accepts integer values and floats with no fractional part
// (JSON decoders hand back float64 for every number) and coerces to int64.
// Fractional floats are rejected.
type IntSchema struct {
	core
	min *int64
	max *int64
}

// Int declares an integer schema.
func Int() *IntSchema {
	s := &IntSchema{}
	s.core = newCore(KindInt, s)
	return s
}

// Min returns a copy requiring the value to be at least n.
func (s *IntSchema) Min(n int64) *IntSchema {
	out := *s
	out.min = &n
	out.core = newCore(KindInt, &out)
	return &out
}

// Max returns a copy allowing the value to be at most n.
func (s *IntSchema) Max(n int64) *IntSchema {
	out := *s
	out.max = &n
	out.core = newCore(KindInt, &out)
	return &out
}

// Bounds reports the configured range constraints, nil when unset.
func (s *IntSchema) Bounds() (min, max *int64) {
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

func (s *IntSchema) validate(p *payload, ctx *ParseContext) {
	n, ok := toInt(p.value)
	if !ok {
		p.report(ctx, issue.Issue{
			Code:     issue.CodeInvalidType,
			Message:  fmt.Sprintf("expected int, received %s", typeName(p.value)),
			Input:    p.value,
			Origin:   string(KindInt),
			Expected: "int",
			Received: typeName(p.value),
		})
		return
	}
	p.value = n
	if s.min != nil && n < *s.min {
		p.report(ctx, issue.Issue{
			Code:    issue.CodeTooSmall,
			Message: fmt.Sprintf("must be at least %d", *s.min),
			Input:   n,
			Origin:  string(KindInt),
		})
	}
	if p.halted(ctx) {
		return
	}
	if s.max != nil && n > *s.max {
		p.report(ctx, issue.Issue{
			Code:    issue.CodeTooBig,
			Message: fmt.Sprintf("must be at most %d", *s.max),
			Input:   n,
			Origin:  string(KindInt),
		})
	}
}

// Parse validates value and returns it as an int64.
func (s *IntSchema) Parse(value any, opts ...ParseOption) (int64, error) {
	out, err := s.ParseAny(value, opts...)
	if err != nil {
		return 0, err
	}
	return out.(int64), nil
}

// MustParse panics with the *issue.Error when value is invalid.
func (s *IntSchema) MustParse(value any, opts ...ParseOption) int64 {
	return s.MustParseAny(value, opts...).(int64)
}

func toFloat(v any) (float64, bool) {
	switch n := v.(type) {
	case float64:
		return n, true
	case float32:
		return float64(n), true
	case int:
		return float64(n), true
	case int8:
		return float64(n), true
	case int16:
		return float64(n), true
	case int32:
		return float64(n), true
	case int64:
		return float64(n), true
	case uint:
		return float64(n), true
	case uint8:
		return float64(n), true
	case uint16:
		return float64(n), true
	case uint32:
		return float64(n), true
	case uint64:
		return float64(n), true
	}
	return 0, false
}

func toInt(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		return int64(n), true
	case int8:
		return int64(n), true
	case int16:
		return int64(n), true
	case int32:
		return int64(n), true
	case int64:
		return n, true
	case uint:
		if uint64(n) > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case uint8:
		return int64(n), true
	case uint16:
		return int64(n), true
	case uint32:
		return int64(n), true
	case uint64:
		if n > math.MaxInt64 {
			return 0, false
		}
		return int64(n), true
	case float64:
		if math.Trunc(n) != n || n < -1<<63 || n >= 1<<63 {
			return 0, false
		}
		return int64(n), true
	case float32:
		f := float64(n)
		if math.Trunc(f) != f || f < -1<<63 || f >= 1<<63 {
			return 0, false
		}
		return int64(f), true
	}
	return 0, false
}

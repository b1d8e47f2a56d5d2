package sift

import (
	"fmt"
	"sort"

	"github.com/aretw0/sift/pkg/issue"
)

// unknownMode selects how an object schema treats keys it does not declare.
type unknownMode int

const (
	unknownIgnore unknownMode = iota
	unknownStrict
	unknownStrip
)

// ObjectSchema validates map[string]any values field by field. Field names
// are sorted once at construction so issues always surface in the same
// order regardless of map iteration.
type ObjectSchema struct {
	core
	fields  map[string]Schema
	order   []string
	unknown unknownMode
}

// Object declares an object schema over the given field map. Fields wrapped
// in Optional may be nil or absent; every other field is required.
func Object(fields map[string]Schema) *ObjectSchema {
	copied := make(map[string]Schema, len(fields))
	order := make([]string, 0, len(fields))
	for name, field := range fields {
		copied[name] = field
		order = append(order, name)
	}
	sort.Strings(order)
	s := &ObjectSchema{fields: copied, order: order}
	s.core = newCore(KindObject, s)
	return s
}

// Strict returns a copy that reports every undeclared key as an unknown_key
// issue.
func (s *ObjectSchema) Strict() *ObjectSchema {
	out := *s
	out.unknown = unknownStrict
	out.core = newCore(KindObject, &out)
	return &out
}

// Strip returns a copy that drops undeclared keys from the accepted value.
func (s *ObjectSchema) Strip() *ObjectSchema {
	out := *s
	out.unknown = unknownStrip
	out.core = newCore(KindObject, &out)
	return &out
}

// Fields returns a copy of the declared field map.
func (s *ObjectSchema) Fields() map[string]Schema {
	out := make(map[string]Schema, len(s.fields))
	for name, field := range s.fields {
		out[name] = field
	}
	return out
}

// IsStrict reports whether undeclared keys are rejected.
func (s *ObjectSchema) IsStrict() bool { return s.unknown == unknownStrict }

// IsStrip reports whether undeclared keys are dropped.
func (s *ObjectSchema) IsStrip() bool { return s.unknown == unknownStrip }

func (s *ObjectSchema) validate(p *payload, ctx *ParseContext) {
	in, ok := p.value.(map[string]any)
	if !ok {
		// The structural issue stands alone: per-field checks are
		// meaningless without a map.
		p.report(ctx, issue.Issue{
			Code:     issue.CodeInvalidType,
			Message:  fmt.Sprintf("expected object, received %s", typeName(p.value)),
			Input:    p.value,
			Origin:   string(KindObject),
			Expected: "object",
			Received: typeName(p.value),
		})
		return
	}

	out := make(map[string]any, len(in))
	for _, name := range s.order {
		if p.halted(ctx) {
			return
		}
		field := s.fields[name]
		raw, present := in[name]
		if !present {
			if field.Kind() == KindOptional {
				continue
			}
			p.report(ctx, issue.Issue{
				Code:    issue.CodeRequired,
				Path:    issue.Path{issue.Key(name)},
				Message: "required",
				Origin:  string(KindObject),
			})
			continue
		}
		child := &payload{value: raw}
		field.validate(child, ctx)
		if len(child.issues) > 0 {
			p.merge(issue.Key(name), child)
			continue
		}
		out[name] = child.value
	}

	switch s.unknown {
	case unknownStrict:
		for _, key := range undeclaredKeys(in, s.fields) {
			if p.halted(ctx) {
				return
			}
			p.report(ctx, issue.Issue{
				Code:    issue.CodeUnknownKey,
				Path:    issue.Path{issue.Key(key)},
				Message: fmt.Sprintf("unknown key %q", key),
				Input:   in[key],
				Origin:  string(KindObject),
			})
		}
	case unknownIgnore:
		for key, val := range in {
			if _, declared := s.fields[key]; !declared {
				out[key] = val
			}
		}
	case unknownStrip:
		// Dropped from the accepted value.
	}

	if len(p.issues) == 0 {
		p.value = out
	}
}

// Parse validates value and returns the accepted fields as a new map; the
// input map is never mutated.
func (s *ObjectSchema) Parse(value any, opts ...ParseOption) (map[string]any, error) {
	out, err := s.ParseAny(value, opts...)
	if err != nil {
		return nil, err
	}
	return out.(map[string]any), nil
}

// MustParse panics with the *issue.Error when value is invalid.
func (s *ObjectSchema) MustParse(value any, opts ...ParseOption) map[string]any {
	return s.MustParseAny(value, opts...).(map[string]any)
}

func undeclaredKeys(in map[string]any, declared map[string]Schema) []string {
	var extras []string
	for key := range in {
		if _, ok := declared[key]; !ok {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	return extras
}

package sift

// OptionalSchema accepts nil in addition to everything its inner schema
// accepts. An object field declared Optional may also be absent entirely.
type OptionalSchema struct {
	core
	inner Schema
}

// Optional wraps inner so that nil (and, inside objects, a missing key)
// passes validation.
func Optional(inner Schema) *OptionalSchema {
	s := &OptionalSchema{inner: inner}
	s.core = newCore(KindOptional, s)
	return s
}

// Unwrap returns the inner schema.
func (s *OptionalSchema) Unwrap() Schema { return s.inner }

func (s *OptionalSchema) validate(p *payload, ctx *ParseContext) {
	if p.value == nil {
		return
	}
	s.inner.validate(p, ctx)
}

// Parse validates value and returns it untyped; the result is nil when the
// input was nil.
func (s *OptionalSchema) Parse(value any, opts ...ParseOption) (any, error) {
	return s.ParseAny(value, opts...)
}

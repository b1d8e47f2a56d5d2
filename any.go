package sift

// AnySchema accepts every value unchanged. Useful as an escape hatch inside
// objects and arrays whose elements carry no contract.
type AnySchema struct {
	core
}

// Any declares a schema that accepts everything.
func Any() *AnySchema {
	s := &AnySchema{}
	s.core = newCore(KindAny, s)
	return s
}

func (s *AnySchema) validate(*payload, *ParseContext) {}

// Parse accepts value and returns it untouched.
func (s *AnySchema) Parse(value any, opts ...ParseOption) (any, error) {
	return s.ParseAny(value, opts...)
}

package sift

import (
	"fmt"

	"github.com/mitchellh/mapstructure"
)

// Bind validates value against s, then decodes the accepted value into T.
// It is the bridge between schema-shaped data (maps and slices) and plain
// Go structs: the schema owns correctness, the decode owns shape.
//
// Struct fields are matched by their `sift` tag first, falling back to the
// field name. Validated numbers arrive as float64 and int64; target fields
// of any integer or float kind decode from those directly.
func Bind[T any](s Schema, value any, opts ...ParseOption) (T, error) {
	var out T
	parsed, err := Parse(s, value, opts...)
	if err != nil {
		return out, err
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:  &out,
		TagName: "sift",
	})
	if err != nil {
		return out, fmt.Errorf("sift: building decoder: %w", err)
	}
	if err := dec.Decode(parsed); err != nil {
		return out, fmt.Errorf("sift: binding value: %w", err)
	}
	return out, nil
}

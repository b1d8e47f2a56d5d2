// Package openapi converts compiled sift schemas to and from OpenAPI 3
// schema objects, so validation contracts can be shared with API tooling.
package openapi

import (
	"fmt"
	"sort"

	"github.com/aretw0/sift"
	"github.com/getkin/kin-openapi/openapi3"
)

// Export converts a compiled schema into an OpenAPI schema object.
// Optional wrappers become nullable properties, refinements are dropped
// (expressions have no OpenAPI equivalent). Function, custom and
// recursive schemas have no OpenAPI form and return an error.
func Export(s sift.Schema) (*openapi3.Schema, error) {
	return export(s, make(map[sift.Schema]bool))
}

func export(s sift.Schema, seen map[sift.Schema]bool) (*openapi3.Schema, error) {
	if seen[s] {
		return nil, fmt.Errorf("recursive schemas cannot be exported inline")
	}
	seen[s] = true
	defer delete(seen, s)

	switch v := s.(type) {
	case *sift.StringSchema:
		out := openapi3.NewStringSchema()
		min, max := v.Bounds()
		if min != nil {
			out.MinLength = uint64(*min)
		}
		if max != nil {
			m := uint64(*max)
			out.MaxLength = &m
		}
		if re := v.Regexp(); re != nil {
			out.Pattern = re.String()
		}
		return out, nil

	case *sift.NumberSchema:
		out := openapi3.NewFloat64Schema()
		out.Min, out.Max = v.Bounds()
		return out, nil

	case *sift.IntSchema:
		out := openapi3.NewInt64Schema()
		min, max := v.Bounds()
		if min != nil {
			f := float64(*min)
			out.Min = &f
		}
		if max != nil {
			f := float64(*max)
			out.Max = &f
		}
		return out, nil

	case *sift.BoolSchema:
		return openapi3.NewBoolSchema(), nil

	case *sift.EnumSchema:
		out := openapi3.NewStringSchema()
		for _, opt := range v.Options() {
			out.Enum = append(out.Enum, opt)
		}
		return out, nil

	case *sift.AnySchema:
		return openapi3.NewSchema(), nil

	case *sift.ArraySchema:
		elem, err := export(v.Element(), seen)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		out := openapi3.NewArraySchema()
		out.Items = openapi3.NewSchemaRef("", elem)
		min, max := v.Bounds()
		if min != nil {
			out.MinItems = uint64(*min)
		}
		if max != nil {
			m := uint64(*max)
			out.MaxItems = &m
		}
		return out, nil

	case *sift.ObjectSchema:
		out := openapi3.NewObjectSchema()
		out.Properties = make(openapi3.Schemas)

		fields := v.Fields()
		names := make([]string, 0, len(fields))
		for name := range fields {
			names = append(names, name)
		}
		sort.Strings(names) // Required list stays deterministic

		for _, name := range names {
			field := fields[name]
			optional := false
			if opt, ok := field.(*sift.OptionalSchema); ok {
				field = opt.Unwrap()
				optional = true
			}
			prop, err := export(field, seen)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", name, err)
			}
			if optional {
				prop.Nullable = true
			} else {
				out.Required = append(out.Required, name)
			}
			out.Properties[name] = openapi3.NewSchemaRef("", prop)
		}

		if v.IsStrict() {
			no := false
			out.AdditionalProperties = openapi3.AdditionalProperties{Has: &no}
		}
		return out, nil

	case *sift.OptionalSchema:
		out, err := export(v.Unwrap(), seen)
		if err != nil {
			return nil, err
		}
		out.Nullable = true
		return out, nil

	case *sift.LazySchema:
		return export(v.Unwrap(), seen)

	default:
		// Refinements keep their base's structure; export that.
		if u, ok := s.(interface{ Unwrap() sift.Schema }); ok {
			return export(u.Unwrap(), seen)
		}
		return nil, fmt.Errorf("cannot export %s schema to OpenAPI", s.Kind())
	}
}

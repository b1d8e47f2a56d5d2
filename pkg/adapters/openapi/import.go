package openapi

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/aretw0/sift"
	"github.com/getkin/kin-openapi/openapi3"
)

// Import converts an OpenAPI schema object into a runnable sift schema.
// Nullable schemas and non-required object properties become optional.
func Import(src *openapi3.Schema) (sift.Schema, error) {
	if src == nil {
		return nil, fmt.Errorf("missing schema")
	}
	s, err := importType(src)
	if err != nil {
		return nil, err
	}
	if src.Nullable {
		if _, ok := s.(*sift.OptionalSchema); !ok {
			s = sift.Optional(s)
		}
	}
	return s, nil
}

func importType(src *openapi3.Schema) (sift.Schema, error) {
	typ := src.Type
	switch {
	case typ == nil || len(*typ) == 0:
		return sift.Any(), nil

	case typ.Is("string"):
		if len(src.Enum) > 0 {
			values := make([]string, 0, len(src.Enum))
			for _, v := range src.Enum {
				str, ok := v.(string)
				if !ok {
					return nil, fmt.Errorf("enum values must be strings, got %T", v)
				}
				values = append(values, str)
			}
			return sift.Enum(values...), nil
		}
		s := sift.String()
		if src.MinLength > 0 {
			s = s.Min(int(src.MinLength))
		}
		if src.MaxLength != nil {
			s = s.Max(int(*src.MaxLength))
		}
		if src.Pattern != "" {
			re, err := regexp.Compile(src.Pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", src.Pattern, err)
			}
			s = s.Pattern(re)
		}
		return s, nil

	case typ.Is("integer"):
		s := sift.Int()
		if src.Min != nil {
			s = s.Min(int64(*src.Min))
		}
		if src.Max != nil {
			s = s.Max(int64(*src.Max))
		}
		return s, nil

	case typ.Is("number"):
		s := sift.Number()
		if src.Min != nil {
			s = s.Min(*src.Min)
		}
		if src.Max != nil {
			s = s.Max(*src.Max)
		}
		return s, nil

	case typ.Is("boolean"):
		return sift.Bool(), nil

	case typ.Is("array"):
		if src.Items == nil || src.Items.Value == nil {
			return nil, fmt.Errorf("array schema missing items")
		}
		elem, err := Import(src.Items.Value)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		s := sift.Array(elem)
		if src.MinItems > 0 {
			s = s.Min(int(src.MinItems))
		}
		if src.MaxItems != nil {
			s = s.Max(int(*src.MaxItems))
		}
		return s, nil

	case typ.Is("object"):
		required := make(map[string]bool, len(src.Required))
		for _, name := range src.Required {
			required[name] = true
		}
		fields := make(map[string]sift.Schema, len(src.Properties))
		for name, ref := range src.Properties {
			if ref == nil || ref.Value == nil {
				return nil, fmt.Errorf("field %s: missing schema", name)
			}
			field, err := Import(ref.Value)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", name, err)
			}
			if !required[name] {
				if _, ok := field.(*sift.OptionalSchema); !ok {
					field = sift.Optional(field)
				}
			}
			fields[name] = field
		}
		s := sift.Object(fields)
		if has := src.AdditionalProperties.Has; has != nil && !*has {
			s = s.Strict()
		}
		return s, nil

	default:
		return nil, fmt.Errorf("unsupported OpenAPI type: %s", strings.Join(*typ, ","))
	}
}

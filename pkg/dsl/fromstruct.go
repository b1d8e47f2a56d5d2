package dsl

import (
	"fmt"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/aretw0/sift"
)

// FromStruct derives an object schema from T's exported fields.
//
// Field tags drive the derivation:
//
//	type Profile struct {
//		Name string   `sift:"name,min=2,max=40"`
//		Role string   `sift:"role,values=admin|member"`
//		Age  int64    `sift:"age,omitempty,min=0"`
//		Bio  *string  `sift:"bio"`
//		Tags []string `sift:"tags,min=1"`
//		Code string   `sift:"code,pattern=^[a-z]{2,8}$"`
//	}
//
// The first tag token renames the key, matching what Bind decodes.
// omitempty and pointer fields become optional, values=a|b turns a string
// field into an enum, and pattern consumes the rest of the tag so regular
// expressions may contain commas. Fields tagged "-" are skipped, anonymous
// struct fields tagged ",squash" contribute their fields to the parent.
//
// Derived objects keep the default unknown-key passthrough; chain Strict
// on the result to reject extra keys.
func FromStruct[T any]() (*sift.ObjectSchema, error) {
	rt := reflect.TypeOf((*T)(nil)).Elem()
	if rt.Kind() != reflect.Struct {
		return nil, fmt.Errorf("dsl: %s is not a struct", rt)
	}
	b := &builder{
		memo:     make(map[reflect.Type]sift.Schema),
		building: make(map[reflect.Type]bool),
	}
	return b.object(rt)
}

// MustFromStruct is FromStruct, panicking on error. It suits package-level
// schema variables derived from types the author controls.
func MustFromStruct[T any]() *sift.ObjectSchema {
	s, err := FromStruct[T]()
	if err != nil {
		panic(err)
	}
	return s
}

// builder tracks types across the walk. building marks types currently on
// the stack, which turn into lazy references instead of infinite recursion.
type builder struct {
	memo     map[reflect.Type]sift.Schema
	building map[reflect.Type]bool
}

func (b *builder) object(rt reflect.Type) (*sift.ObjectSchema, error) {
	b.building[rt] = true
	defer delete(b.building, rt)

	fields := make(map[string]sift.Schema)
	if err := b.collect(rt, fields); err != nil {
		return nil, err
	}
	if len(fields) == 0 && rt.NumField() > 0 {
		return nil, fmt.Errorf("dsl: %s has no usable fields", rt)
	}
	obj := sift.Object(fields)
	b.memo[rt] = obj
	return obj, nil
}

func (b *builder) collect(rt reflect.Type, fields map[string]sift.Schema) error {
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if sf.PkgPath != "" {
			continue // unexported
		}
		opts := parseTag(sf.Tag.Get("sift"))
		if opts.skip {
			continue
		}
		if opts.squash {
			st := sf.Type
			if st.Kind() == reflect.Pointer {
				st = st.Elem()
			}
			if st.Kind() != reflect.Struct {
				return fmt.Errorf("dsl: field %s: squash requires a struct", sf.Name)
			}
			if err := b.collect(st, fields); err != nil {
				return err
			}
			continue
		}

		name := opts.name
		if name == "" {
			name = sf.Name
		}
		schema, optional, err := b.field(sf.Type, opts)
		if err != nil {
			return fmt.Errorf("dsl: field %s: %w", sf.Name, err)
		}
		if optional || opts.optional {
			schema = sift.Optional(schema)
		}
		fields[name] = schema
	}
	return nil
}

// field maps one Go type to a schema. The returned bool reports whether the
// type itself implies optionality (pointers do).
func (b *builder) field(rt reflect.Type, opts fieldOptions) (sift.Schema, bool, error) {
	optional := false
	if rt.Kind() == reflect.Pointer {
		optional = true
		rt = rt.Elem()
	}

	switch rt.Kind() {
	case reflect.String:
		if len(opts.values) > 0 {
			if opts.min != "" || opts.max != "" || opts.pattern != "" {
				return nil, false, fmt.Errorf("values cannot combine with min, max or pattern")
			}
			return sift.Enum(opts.values...), optional, nil
		}
		s := sift.String()
		if opts.min != "" {
			n, err := strconv.Atoi(opts.min)
			if err != nil {
				return nil, false, fmt.Errorf("invalid min %q", opts.min)
			}
			s = s.Min(n)
		}
		if opts.max != "" {
			n, err := strconv.Atoi(opts.max)
			if err != nil {
				return nil, false, fmt.Errorf("invalid max %q", opts.max)
			}
			s = s.Max(n)
		}
		if opts.pattern != "" {
			re, err := regexp.Compile(opts.pattern)
			if err != nil {
				return nil, false, fmt.Errorf("invalid pattern %q: %w", opts.pattern, err)
			}
			s = s.Pattern(re)
		}
		return s, optional, nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if err := opts.rejectEnumAndPattern("integer"); err != nil {
			return nil, false, err
		}
		s := sift.Int()
		if opts.min != "" {
			n, err := strconv.ParseInt(opts.min, 10, 64)
			if err != nil {
				return nil, false, fmt.Errorf("invalid min %q", opts.min)
			}
			s = s.Min(n)
		}
		if opts.max != "" {
			n, err := strconv.ParseInt(opts.max, 10, 64)
			if err != nil {
				return nil, false, fmt.Errorf("invalid max %q", opts.max)
			}
			s = s.Max(n)
		}
		return s, optional, nil

	case reflect.Float32, reflect.Float64:
		if err := opts.rejectEnumAndPattern("number"); err != nil {
			return nil, false, err
		}
		s := sift.Number()
		if opts.min != "" {
			f, err := strconv.ParseFloat(opts.min, 64)
			if err != nil {
				return nil, false, fmt.Errorf("invalid min %q", opts.min)
			}
			s = s.Min(f)
		}
		if opts.max != "" {
			f, err := strconv.ParseFloat(opts.max, 64)
			if err != nil {
				return nil, false, fmt.Errorf("invalid max %q", opts.max)
			}
			s = s.Max(f)
		}
		return s, optional, nil

	case reflect.Bool:
		if err := opts.rejectAll("bool"); err != nil {
			return nil, false, err
		}
		return sift.Bool(), optional, nil

	case reflect.Slice, reflect.Array:
		if err := opts.rejectEnumAndPattern("slice"); err != nil {
			return nil, false, err
		}
		elem, elemOptional, err := b.field(rt.Elem(), fieldOptions{})
		if err != nil {
			return nil, false, err
		}
		if elemOptional {
			elem = sift.Optional(elem)
		}
		s := sift.Array(elem)
		if opts.min != "" {
			n, err := strconv.Atoi(opts.min)
			if err != nil {
				return nil, false, fmt.Errorf("invalid min %q", opts.min)
			}
			s = s.Min(n)
		}
		if opts.max != "" {
			n, err := strconv.Atoi(opts.max)
			if err != nil {
				return nil, false, fmt.Errorf("invalid max %q", opts.max)
			}
			s = s.Max(n)
		}
		return s, optional, nil

	case reflect.Struct:
		if err := opts.rejectAll("struct"); err != nil {
			return nil, false, err
		}
		if b.building[rt] {
			// Self-reference: resolve from the memo once the walk is done.
			t := rt
			return sift.Lazy(func() sift.Schema { return b.memo[t] }), optional, nil
		}
		if s, ok := b.memo[rt]; ok {
			return s, optional, nil
		}
		s, err := b.object(rt)
		return s, optional, err

	case reflect.Interface:
		if rt.NumMethod() == 0 {
			return sift.Any(), optional, nil
		}
		return nil, false, fmt.Errorf("unsupported type %s", rt)

	case reflect.Map:
		if rt.Key().Kind() == reflect.String && rt.Elem().Kind() == reflect.Interface {
			return sift.Any(), optional, nil
		}
		return nil, false, fmt.Errorf("unsupported type %s", rt)

	default:
		return nil, false, fmt.Errorf("unsupported type %s", rt)
	}
}

type fieldOptions struct {
	name     string
	skip     bool
	optional bool
	squash   bool
	min      string
	max      string
	pattern  string
	values   []string
}

func (o fieldOptions) rejectEnumAndPattern(kind string) error {
	if len(o.values) > 0 {
		return fmt.Errorf("values does not apply to %s fields", kind)
	}
	if o.pattern != "" {
		return fmt.Errorf("pattern does not apply to %s fields", kind)
	}
	return nil
}

func (o fieldOptions) rejectAll(kind string) error {
	if err := o.rejectEnumAndPattern(kind); err != nil {
		return err
	}
	if o.min != "" || o.max != "" {
		return fmt.Errorf("min and max do not apply to %s fields", kind)
	}
	return nil
}

func parseTag(tag string) fieldOptions {
	var o fieldOptions
	if tag == "" {
		return o
	}
	if tag == "-" {
		o.skip = true
		return o
	}
	parts := strings.Split(tag, ",")
	o.name = parts[0]
	rest := parts[1:]
	for i := 0; i < len(rest); i++ {
		switch p := rest[i]; {
		case p == "omitempty":
			o.optional = true
		case p == "squash":
			o.squash = true
		case strings.HasPrefix(p, "min="):
			o.min = strings.TrimPrefix(p, "min=")
		case strings.HasPrefix(p, "max="):
			o.max = strings.TrimPrefix(p, "max=")
		case strings.HasPrefix(p, "values="):
			o.values = strings.Split(strings.TrimPrefix(p, "values="), "|")
		case strings.HasPrefix(p, "pattern="):
			o.pattern = strings.TrimPrefix(strings.Join(rest[i:], ","), "pattern=")
			return o
		}
	}
	return o
}

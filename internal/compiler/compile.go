package compiler

import (
	"fmt"
	"regexp"

	"github.com/aretw0/sift"
	"github.com/aretw0/sift/internal/dto"
	"github.com/expr-lang/expr"
)

// Compile builds a runnable schema from a spec. Nested specs are
// compiled depth-first, so a failure deep in an object reports the
// field chain it occurred under.
func (c *Compiler) Compile(spec *dto.SchemaSpec) (sift.Schema, error) {
	s, err := c.compile(spec)
	if err != nil {
		return nil, err
	}
	c.logger.Debug("compiled schema", "name", spec.Name, "kind", s.Kind())
	return s, nil
}

func (c *Compiler) compile(spec *dto.SchemaSpec) (sift.Schema, error) {
	if spec == nil {
		return nil, fmt.Errorf("missing schema spec")
	}

	s, err := c.compileType(spec)
	if err != nil {
		return nil, err
	}

	if spec.Refine != "" {
		s, err = c.compileRefine(s, spec.Refine)
		if err != nil {
			return nil, err
		}
	}
	if spec.Optional {
		s = sift.Optional(s)
	}
	return s, nil
}

func (c *Compiler) compileType(spec *dto.SchemaSpec) (sift.Schema, error) {
	typ := spec.Type

	// Handle the slice shorthand: [string], [int], etc.
	if len(typ) > 2 && typ[0] == '[' && typ[len(typ)-1] == ']' {
		inner := *spec
		inner.Type = "array"
		inner.Items = &dto.SchemaSpec{Type: typ[1 : len(typ)-1]}
		return c.compileType(&inner)
	}

	switch typ {
	case "string":
		s := sift.String()
		if spec.Min != nil {
			s = s.Min(int(*spec.Min))
		}
		if spec.Max != nil {
			s = s.Max(int(*spec.Max))
		}
		if spec.Pattern != "" {
			re, err := regexp.Compile(spec.Pattern)
			if err != nil {
				return nil, fmt.Errorf("invalid pattern %q: %w", spec.Pattern, err)
			}
			s = s.Pattern(re)
		}
		return s, nil

	case "number", "float":
		s := sift.Number()
		if spec.Min != nil {
			s = s.Min(*spec.Min)
		}
		if spec.Max != nil {
			s = s.Max(*spec.Max)
		}
		return s, nil

	case "int":
		s := sift.Int()
		if spec.Min != nil {
			s = s.Min(int64(*spec.Min))
		}
		if spec.Max != nil {
			s = s.Max(int64(*spec.Max))
		}
		return s, nil

	case "bool":
		return sift.Bool(), nil

	case "any":
		return sift.Any(), nil

	case "enum":
		if len(spec.Values) == 0 {
			return nil, fmt.Errorf("enum requires at least one value")
		}
		return sift.Enum(spec.Values...), nil

	case "array":
		if spec.Items == nil {
			return nil, fmt.Errorf("array requires items")
		}
		elem, err := c.compile(spec.Items)
		if err != nil {
			return nil, fmt.Errorf("items: %w", err)
		}
		s := sift.Array(elem)
		if spec.Min != nil {
			s = s.Min(int(*spec.Min))
		}
		if spec.Max != nil {
			s = s.Max(int(*spec.Max))
		}
		return s, nil

	case "object":
		fields := make(map[string]sift.Schema, len(spec.Fields))
		for name, field := range spec.Fields {
			fs, err := c.compile(field)
			if err != nil {
				return nil, fmt.Errorf("field %s: %w", name, err)
			}
			fields[name] = fs
		}
		s := sift.Object(fields)
		switch spec.Unknown {
		case "", "ignore":
		case "strict":
			s = s.Strict()
		case "strip":
			s = s.Strip()
		default:
			return nil, fmt.Errorf("unsupported unknown mode: %s", spec.Unknown)
		}
		return s, nil

	case "function":
		inputs := make([]sift.Schema, 0, len(spec.Input))
		for i, in := range spec.Input {
			is, err := c.compile(in)
			if err != nil {
				return nil, fmt.Errorf("input[%d]: %w", i, err)
			}
			inputs = append(inputs, is)
		}
		s := sift.Function().Input(inputs...)
		if spec.Output != nil {
			out, err := c.compile(spec.Output)
			if err != nil {
				return nil, fmt.Errorf("output: %w", err)
			}
			s = s.Output(out)
		}
		return s, nil

	case "ref":
		return c.compileRef(spec.Ref)

	case "":
		return nil, fmt.Errorf("schema spec missing type")

	default:
		return nil, fmt.Errorf("unsupported type: %s", typ)
	}
}

// compileRef defers lookup to first use so definitions can reference
// themselves or schemas registered later in the same load.
func (c *Compiler) compileRef(name string) (sift.Schema, error) {
	if name == "" {
		return nil, fmt.Errorf("ref requires a schema name")
	}
	if c.resolver == nil {
		return nil, fmt.Errorf("schema references %q but no resolver is configured", name)
	}
	resolve := c.resolver
	return sift.Lazy(func() sift.Schema {
		s, err := resolve(name)
		if err != nil {
			// Load-time checks normally reject dangling refs. If one
			// slips through, every parse reports it instead of panicking.
			return sift.Custom("unresolved-ref", func(any) error {
				return fmt.Errorf("schema ref %q is unresolved: %v", name, err)
			})
		}
		return s
	}), nil
}

// compileRefine wraps s with an expression evaluated against the value
// after structural checks pass. The expression must yield a boolean.
func (c *Compiler) compileRefine(s sift.Schema, src string) (sift.Schema, error) {
	program, err := expr.Compile(src, expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid refine expression %q: %w", src, err)
	}
	return sift.Refine(s, "expr", func(v any) error {
		out, err := expr.Run(program, map[string]any{"value": v})
		if err != nil {
			return fmt.Errorf("error evaluating %q: %w", src, err)
		}
		if ok, _ := out.(bool); !ok {
			return fmt.Errorf("value does not satisfy %s", src)
		}
		return nil
	}), nil
}

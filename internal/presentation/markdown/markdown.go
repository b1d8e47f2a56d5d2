// Package markdown renders schema specs as Markdown documents for the
// describe command. The output is plain Markdown; terminal styling is the
// caller's concern (glamour via the tui renderer).
package markdown

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/sift/internal/dto"
)

// Describe produces a Markdown document for one schema spec.
// Field lists are sorted for stable output; enum values keep their
// declaration order because consumers rely on it.
func Describe(spec *dto.SchemaSpec) string {
	var sb strings.Builder

	name := spec.Name
	if name == "" {
		name = "(unnamed schema)"
	}
	fmt.Fprintf(&sb, "# %s\n\n", name)

	if spec.Doc != "" {
		fmt.Fprintf(&sb, "%s\n\n", strings.TrimSpace(spec.Doc))
	}

	fmt.Fprintf(&sb, "Type: %s\n", typePhrase(spec))
	if cs := constraintPhrases(spec); len(cs) > 0 {
		fmt.Fprintf(&sb, "Constraints: %s\n", strings.Join(cs, ", "))
	}
	sb.WriteString("\n")

	switch {
	case len(spec.Fields) > 0:
		sb.WriteString("## Fields\n\n")
		writeFields(&sb, spec.Fields, 0)
		sb.WriteString("\n")
	case len(spec.Values) > 0:
		sb.WriteString("## Values\n\n")
		for _, v := range spec.Values {
			fmt.Fprintf(&sb, "- `%s`\n", v)
		}
		sb.WriteString("\n")
	case spec.Type == "function":
		sb.WriteString("## Signature\n\n")
		if len(spec.Input) == 0 {
			sb.WriteString("- inputs: none\n")
		}
		for i, in := range spec.Input {
			fmt.Fprintf(&sb, "- input %d: %s%s\n", i, typePhrase(in), constraintSuffix(in))
		}
		if spec.Output != nil {
			fmt.Fprintf(&sb, "- output: %s%s\n", typePhrase(spec.Output), constraintSuffix(spec.Output))
		} else {
			sb.WriteString("- output: unvalidated pass-through\n")
		}
		sb.WriteString("\n")
	case itemSpec(spec) != nil:
		item := itemSpec(spec)
		if len(item.Fields) > 0 {
			sb.WriteString("## Elements\n\n")
			writeFields(&sb, item.Fields, 0)
			sb.WriteString("\n")
		}
	}

	return sb.String()
}

// writeFields renders one bullet per field, sorted by name, recursing into
// inline objects with deeper indentation.
func writeFields(sb *strings.Builder, fields map[string]*dto.SchemaSpec, depth int) {
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	indent := strings.Repeat("  ", depth)
	for _, name := range names {
		field := fields[name]
		if field == nil {
			fmt.Fprintf(sb, "%s- `%s` — (missing spec)\n", indent, name)
			continue
		}
		fmt.Fprintf(sb, "%s- `%s` — %s%s\n", indent, name, typePhrase(field), constraintSuffix(field))
		if len(field.Fields) > 0 {
			writeFields(sb, field.Fields, depth+1)
		}
		if item := itemSpec(field); item != nil && len(item.Fields) > 0 {
			writeFields(sb, item.Fields, depth+1)
		}
	}
}

// typePhrase renders the compact type description for a spec, resolving
// the "[T]" array shorthand and ref targets.
func typePhrase(spec *dto.SchemaSpec) string {
	if spec == nil {
		return "`unknown`"
	}
	typ := spec.Type
	if len(typ) > 2 && typ[0] == '[' && typ[len(typ)-1] == ']' {
		return fmt.Sprintf("array of %s", typePhrase(&dto.SchemaSpec{Type: typ[1 : len(typ)-1]}))
	}
	switch typ {
	case "ref":
		return fmt.Sprintf("`%s` (ref)", spec.Ref)
	case "array":
		if spec.Items != nil {
			return fmt.Sprintf("array of %s", typePhrase(spec.Items))
		}
		return "`array`"
	case "enum":
		quoted := make([]string, len(spec.Values))
		for i, v := range spec.Values {
			quoted[i] = "`" + v + "`"
		}
		return "enum of " + strings.Join(quoted, ", ")
	case "":
		return "`unknown`"
	default:
		return "`" + typ + "`"
	}
}

// constraintPhrases lists the human-readable constraints a spec carries.
func constraintPhrases(spec *dto.SchemaSpec) []string {
	var out []string
	if spec.Optional {
		out = append(out, "optional")
	}
	if spec.Min != nil {
		out = append(out, fmt.Sprintf("min %v", *spec.Min))
	}
	if spec.Max != nil {
		out = append(out, fmt.Sprintf("max %v", *spec.Max))
	}
	if spec.Pattern != "" {
		out = append(out, fmt.Sprintf("pattern `%s`", spec.Pattern))
	}
	if spec.Refine != "" {
		out = append(out, fmt.Sprintf("refine `%s`", spec.Refine))
	}
	if spec.Unknown != "" && spec.Unknown != "ignore" {
		out = append(out, "unknown keys: "+spec.Unknown)
	}
	return out
}

func constraintSuffix(spec *dto.SchemaSpec) string {
	cs := constraintPhrases(spec)
	if len(cs) == 0 {
		return ""
	}
	return " (" + strings.Join(cs, ", ") + ")"
}

// itemSpec resolves the element spec of an array, shorthand included.
func itemSpec(spec *dto.SchemaSpec) *dto.SchemaSpec {
	if spec.Items != nil {
		return spec.Items
	}
	typ := spec.Type
	if len(typ) > 2 && typ[0] == '[' && typ[len(typ)-1] == ']' {
		return &dto.SchemaSpec{Type: typ[1 : len(typ)-1]}
	}
	return nil
}

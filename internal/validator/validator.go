// Package validator inspects parsed schema sets for defects that only
// show up across documents, dangling refs above all.
package validator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/aretw0/sift/internal/dto"
)

// Problem describes a defect found in a schema set.
type Problem struct {
	Schema string // schema the problem was found in
	Field  string // path within the schema, empty at the root
	Msg    string
}

func (p Problem) String() string {
	if p.Field == "" {
		return fmt.Sprintf("schema '%s': %s", p.Schema, p.Msg)
	}
	return fmt.Sprintf("schema '%s': %s: %s", p.Schema, p.Field, p.Msg)
}

// Check walks every spec and returns all problems found, in a
// deterministic order. An empty result means the set is safe to compile.
func Check(specs map[string]*dto.SchemaSpec) []Problem {
	names := make([]string, 0, len(specs))
	for name := range specs {
		names = append(names, name)
	}
	sort.Strings(names)

	var problems []Problem
	for _, name := range names {
		problems = append(problems, checkSpec(name, "", specs[name], specs)...)
	}
	return problems
}

// Error aggregates problems into a single error, or returns nil.
func Error(problems []Problem) error {
	if len(problems) == 0 {
		return nil
	}
	msgs := make([]string, 0, len(problems))
	for _, p := range problems {
		msgs = append(msgs, p.String())
	}
	return fmt.Errorf("found %d schema problems:\n- %s", len(problems), strings.Join(msgs, "\n- "))
}

func checkSpec(schema, field string, spec *dto.SchemaSpec, all map[string]*dto.SchemaSpec) []Problem {
	if spec == nil {
		return []Problem{{Schema: schema, Field: field, Msg: "missing spec"}}
	}

	var problems []Problem
	report := func(msg string) {
		problems = append(problems, Problem{Schema: schema, Field: field, Msg: msg})
	}

	typ := spec.Type
	if len(typ) > 2 && typ[0] == '[' && typ[len(typ)-1] == ']' {
		typ = "array"
	}

	switch typ {
	case "":
		report("missing type")
	case "ref":
		if spec.Ref == "" {
			report("ref requires a schema name")
		} else if _, ok := all[spec.Ref]; !ok {
			report(fmt.Sprintf("references unknown schema '%s'", spec.Ref))
		}
	case "enum":
		if len(spec.Values) == 0 {
			report("enum has no values")
		}
	case "array":
		if spec.Items == nil && spec.Type == "array" {
			report("array requires items")
		}
	case "object":
		if spec.Unknown != "" && spec.Unknown != "ignore" && spec.Unknown != "strict" && spec.Unknown != "strip" {
			report(fmt.Sprintf("unsupported unknown mode '%s'", spec.Unknown))
		}
	}

	if spec.Min != nil && spec.Max != nil && *spec.Min > *spec.Max {
		report(fmt.Sprintf("min %v exceeds max %v", *spec.Min, *spec.Max))
	}

	// Recurse into nested specs with dotted paths
	if spec.Items != nil {
		problems = append(problems, checkSpec(schema, childPath(field, "items"), spec.Items, all)...)
	}
	if len(spec.Fields) > 0 {
		keys := make([]string, 0, len(spec.Fields))
		for k := range spec.Fields {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		for _, k := range keys {
			problems = append(problems, checkSpec(schema, childPath(field, k), spec.Fields[k], all)...)
		}
	}
	for i, in := range spec.Input {
		problems = append(problems, checkSpec(schema, childPath(field, fmt.Sprintf("input[%d]", i)), in, all)...)
	}
	if spec.Output != nil {
		problems = append(problems, checkSpec(schema, childPath(field, "output"), spec.Output, all)...)
	}

	return problems
}

func childPath(base, seg string) string {
	if base == "" {
		return seg
	}
	return base + "." + seg
}

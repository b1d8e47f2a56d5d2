package markdown_test

import (
	"strings"
	"testing"

	"github.com/aretw0/sift/internal/dto"
	"github.com/aretw0/sift/internal/presentation/markdown"
)

func f(v float64) *float64 { return &v }

func TestDescribe(t *testing.T) {
	tests := []struct {
		name     string
		spec     *dto.SchemaSpec
		contains []string
	}{
		{
			name: "Object With Sorted Fields",
			spec: &dto.SchemaSpec{
				Name: "user",
				Doc:  "A registered account.",
				Type: "object",
				Fields: map[string]*dto.SchemaSpec{
					"name": {Type: "string", Min: f(1), Max: f(64)},
					"age":  {Type: "int", Min: f(0)},
				},
			},
			contains: []string{
				"# user",
				"A registered account.",
				"Type: `object`",
				"## Fields",
				"- `age` — `int` (min 0)",
				"- `name` — `string` (min 1, max 64)",
			},
		},
		{
			name: "Enum Keeps Declaration Order",
			spec: &dto.SchemaSpec{
				Name:   "role",
				Type:   "enum",
				Values: []string{"admin", "member", "guest"},
			},
			contains: []string{
				"# role",
				"## Values",
				"- `admin`\n- `member`\n- `guest`",
			},
		},
		{
			name: "Array Shorthand",
			spec: &dto.SchemaSpec{
				Name: "tags",
				Type: "[string]",
			},
			contains: []string{
				"Type: array of `string`",
			},
		},
		{
			name: "Ref And Optional",
			spec: &dto.SchemaSpec{
				Name: "team",
				Type: "object",
				Fields: map[string]*dto.SchemaSpec{
					"lead": {Type: "ref", Ref: "user", Optional: true},
				},
			},
			contains: []string{
				"- `lead` — `user` (ref) (optional)",
			},
		},
		{
			name: "Function Signature",
			spec: &dto.SchemaSpec{
				Name:  "greet",
				Type:  "function",
				Input: []*dto.SchemaSpec{{Type: "string"}, {Type: "int"}},
			},
			contains: []string{
				"## Signature",
				"- input 0: `string`",
				"- input 1: `int`",
				"- output: unvalidated pass-through",
			},
		},
		{
			name: "Strict Object Notes Unknown Mode",
			spec: &dto.SchemaSpec{
				Name:    "config",
				Type:    "object",
				Unknown: "strict",
				Fields: map[string]*dto.SchemaSpec{
					"host": {Type: "string"},
				},
			},
			contains: []string{
				"Constraints: unknown keys: strict",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := markdown.Describe(tt.spec)
			for _, want := range tt.contains {
				if !strings.Contains(out, want) {
					t.Errorf("output missing %q\n--- got ---\n%s", want, out)
				}
			}
		})
	}
}

func TestDescribeSortsFieldsDeterministically(t *testing.T) {
	spec := &dto.SchemaSpec{
		Name: "pod",
		Type: "object",
		Fields: map[string]*dto.SchemaSpec{
			"zone": {Type: "string"},
			"arch": {Type: "string"},
			"mem":  {Type: "int"},
		},
	}

	out := markdown.Describe(spec)
	arch := strings.Index(out, "`arch`")
	mem := strings.Index(out, "`mem`")
	zone := strings.Index(out, "`zone`")

	if arch == -1 || mem == -1 || zone == -1 {
		t.Fatalf("expected all fields in output:\n%s", out)
	}
	if !(arch < mem && mem < zone) {
		t.Errorf("fields not sorted: arch=%d mem=%d zone=%d", arch, mem, zone)
	}
}

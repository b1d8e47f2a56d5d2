package cli_test

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/sift/internal/cli"
	"github.com/aretw0/sift/internal/testutils"
)

const userSchemaDoc = `
name: user
type: object
fields:
  name:
    type: string
    min: 1
  age:
    type: int
    min: 0
`

// writeFile drops one file into dir and returns its path.
func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestRunValidateReportsEveryInput(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "user.yaml", userSchemaDoc)
	good := writeFile(t, dir, "good.yaml", "name: ada\nage: 36\n")
	bad := writeFile(t, dir, "bad.yaml", "name: \"\"\nage: -1\n")

	var out bytes.Buffer
	err := cli.RunValidate(cli.ValidateOptions{
		SchemaPath: schema,
		DataPaths:  []string{good, bad},
		Out:        &out,
	})

	require.ErrorIs(t, err, cli.ErrInvalidInput)
	assert.Contains(t, err.Error(), "1 of 2 inputs failed")
	assert.Contains(t, out.String(), "ok   good.yaml")
	assert.Contains(t, out.String(), "FAIL bad.yaml (2 issues)")
	assert.Contains(t, out.String(), "age: ")
	assert.Contains(t, out.String(), "name: ")
}

func TestRunValidateJSONReport(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "user.yaml", userSchemaDoc)
	good := writeFile(t, dir, "good.yaml", "name: ada\nage: 36\n")
	bad := writeFile(t, dir, "bad.yaml", "name: ada\nage: -1\n")

	var out bytes.Buffer
	err := cli.RunValidate(cli.ValidateOptions{
		SchemaPath: schema,
		DataPaths:  []string{good, bad},
		Format:     cli.FormatJSON,
		Out:        &out,
	})
	require.ErrorIs(t, err, cli.ErrInvalidInput)

	var results []map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &results))
	require.Len(t, results, 2)

	assert.Equal(t, "good.yaml", results[0]["name"])
	assert.Equal(t, true, results[0]["valid"])
	assert.Nil(t, results[0]["issues"])

	assert.Equal(t, false, results[1]["valid"])
	issues, ok := results[1]["issues"].([]any)
	require.True(t, ok, "failing result carries issues")
	require.Len(t, issues, 1)
	first, ok := issues[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, "too_small", first["code"])
}

func TestRunValidateReadsStdin(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "user.yaml", userSchemaDoc)

	var out bytes.Buffer
	err := cli.RunValidate(cli.ValidateOptions{
		SchemaPath: schema,
		DataPaths:  []string{"-"},
		In:         strings.NewReader("name: ada\nage: 1\n"),
		Out:        &out,
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "ok   stdin")
}

func TestRunValidateFromSchemaDirectory(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteSchemas(t, dir, map[string]string{
		"role.md": "---\nname: role\ntype: enum\nvalues: [admin, viewer]\n---\n",
		"user.md": "---\nname: user\ntype: object\nfields:\n  role:\n    type: ref\n    ref: role\n---\n",
	})
	data := writeFile(t, t.TempDir(), "in.yaml", "role: admin\n")

	var out bytes.Buffer
	err := cli.RunValidate(cli.ValidateOptions{
		Dir:       dir,
		Name:      "user",
		DataPaths: []string{data},
		Out:       &out,
	})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "ok   in.yaml")
}

func TestRunValidateAbortEarlyLimitsIssues(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "user.yaml", userSchemaDoc)
	bad := writeFile(t, dir, "bad.yaml", "name: \"\"\nage: -1\n")

	var out bytes.Buffer
	err := cli.RunValidate(cli.ValidateOptions{
		SchemaPath: schema,
		DataPaths:  []string{bad},
		AbortEarly: true,
		Out:        &out,
	})

	require.ErrorIs(t, err, cli.ErrInvalidInput)
	assert.Contains(t, out.String(), "FAIL bad.yaml (1 issues)")
}

func TestRunValidateOptionErrors(t *testing.T) {
	tests := []struct {
		name    string
		opts    cli.ValidateOptions
		wantErr string
	}{
		{
			name:    "no schema source",
			opts:    cli.ValidateOptions{DataPaths: []string{"x.yaml"}},
			wantErr: "schema document or --dir is required",
		},
		{
			name: "two schema sources",
			opts: cli.ValidateOptions{
				SchemaPath: "s.yaml", Dir: "schemas", DataPaths: []string{"x.yaml"},
			},
			wantErr: "mutually exclusive",
		},
		{
			name:    "no data",
			opts:    cli.ValidateOptions{SchemaPath: "s.yaml"},
			wantErr: "at least one data document",
		},
		{
			name: "bad format",
			opts: cli.ValidateOptions{
				SchemaPath: "s.yaml", DataPaths: []string{"x.yaml"}, Format: "xml",
			},
			wantErr: "unsupported format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.opts.Out = &bytes.Buffer{}
			err := cli.RunValidate(tt.opts)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}

func TestRunCheckCleanDirectory(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteSchemas(t, dir, map[string]string{
		"role.md": "---\nname: role\ntype: enum\nvalues: [admin, viewer]\n---\n",
		"user.md": "---\nname: user\ntype: object\nfields:\n  role:\n    type: ref\n    ref: role\n---\n",
	})

	var out bytes.Buffer
	err := cli.RunCheck(cli.CheckOptions{Dir: dir, Out: &out})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "ok: 2 schemas, no problems")
}

func TestRunCheckFindsDanglingRef(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteSchemas(t, dir, map[string]string{
		"user.md": "---\nname: user\ntype: object\nfields:\n  role:\n    type: ref\n    ref: ghost\n---\n",
	})

	var out bytes.Buffer
	err := cli.RunCheck(cli.CheckOptions{Dir: dir, Out: &out})

	require.ErrorIs(t, err, cli.ErrProblems)
	assert.Contains(t, out.String(), "ghost")
}

func TestRunDescribeRawMarkdown(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "user.yaml", userSchemaDoc)

	var out bytes.Buffer
	err := cli.RunDescribe(cli.DescribeOptions{SchemaPath: schema, Raw: true, Out: &out})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "# user")
	assert.Contains(t, out.String(), "## Fields")
	assert.Contains(t, out.String(), "- `age` — `int` (min 0)")
}

func TestRunDescribeFromDirectory(t *testing.T) {
	dir := t.TempDir()
	testutils.WriteSchemas(t, dir, map[string]string{
		"role.md": "---\nname: role\ntype: enum\nvalues: [admin, viewer]\n---\n\nAccess level.\n",
	})

	var out bytes.Buffer
	err := cli.RunDescribe(cli.DescribeOptions{Dir: dir, Name: "role", Out: &out})

	require.NoError(t, err)
	assert.Contains(t, out.String(), "# role")
	assert.Contains(t, out.String(), "Access level.")
	assert.Contains(t, out.String(), "- `admin`")
}

func TestRunExportWritesOpenAPIJSON(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "user.yaml", userSchemaDoc)

	var out bytes.Buffer
	err := cli.RunExport(cli.ExportOptions{SchemaPath: schema, Out: &out})
	require.NoError(t, err)

	var doc map[string]any
	require.NoError(t, json.Unmarshal(out.Bytes(), &doc))
	assert.Equal(t, "object", doc["type"])

	props, ok := doc["properties"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, props, "name")
	assert.Contains(t, props, "age")
}

func TestRunExportWritesYAMLFile(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "user.yaml", userSchemaDoc)
	target := filepath.Join(t.TempDir(), "user.openapi.yaml")

	err := cli.RunExport(cli.ExportOptions{
		SchemaPath: schema,
		Format:     cli.FormatOpenAPIYAML,
		OutPath:    target,
	})
	require.NoError(t, err)

	raw, err := os.ReadFile(target)
	require.NoError(t, err)
	assert.Contains(t, string(raw), "type: object")
}

func TestRunExportRejectsFunctionSchema(t *testing.T) {
	dir := t.TempDir()
	schema := writeFile(t, dir, "fn.yaml", "name: greet\ntype: function\ninput:\n  - type: string\n")

	err := cli.RunExport(cli.ExportOptions{SchemaPath: schema, Out: &bytes.Buffer{}})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot export")
}

func TestRunInitScaffoldsAndVerifies(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "schemas")

	var out bytes.Buffer
	require.NoError(t, cli.RunInit(cli.InitOptions{Dir: dir, Out: &out}))

	assert.FileExists(t, filepath.Join(dir, "user.md"))
	assert.FileExists(t, filepath.Join(dir, "role.md"))
	assert.Contains(t, out.String(), "Initialized")
	assert.Contains(t, out.String(), "role user")

	// A second run must not clobber files silently.
	err := cli.RunInit(cli.InitOptions{Dir: dir, Out: &out})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")

	require.NoError(t, cli.RunInit(cli.InitOptions{Dir: dir, Force: true, Quiet: true, Out: &out}))
}

package compiler_test

import (
	"fmt"
	"testing"

	"github.com/aretw0/sift"
	"github.com/aretw0/sift/internal/compiler"
	"github.com/aretw0/sift/pkg/issue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileYAMLDocument(t *testing.T) {
	doc := `
name: user
type: object
unknown: strict
fields:
  name:
    type: string
    min: 1
  age:
    type: int
    min: 0
    max: 150
  role:
    type: enum
    values: [admin, member]
  tags:
    type: "[string]"
    optional: true
`
	c := compiler.New()
	spec, err := c.Parse([]byte(doc))
	require.NoError(t, err)
	assert.Equal(t, "user", spec.Name)

	s, err := c.Compile(spec)
	require.NoError(t, err)
	require.Equal(t, sift.KindObject, s.Kind())

	t.Run("Accepts conforming input", func(t *testing.T) {
		got, err := sift.Parse(s, map[string]any{
			"name": "ada",
			"age":  36,
			"role": "admin",
			"tags": []any{"x"},
		})
		require.NoError(t, err)
		assert.Equal(t, int64(36), got.(map[string]any)["age"])
	})

	t.Run("Aggregates violations", func(t *testing.T) {
		_, err := sift.Parse(s, map[string]any{
			"name":  "",
			"age":   200,
			"role":  "root",
			"extra": true,
		})
		var verr *issue.Error
		require.ErrorAs(t, err, &verr)
		assert.Len(t, verr.Issues, 4, "short name, big age, bad role, unknown key")
	})
}

func TestCompileJSONDocument(t *testing.T) {
	doc := `{"name": "port", "type": "int", "min": 1, "max": 65535}`

	c := compiler.New()
	spec, err := c.Parse([]byte(doc))
	require.NoError(t, err)

	s, err := c.Compile(spec)
	require.NoError(t, err)

	_, err = sift.Parse(s, 8080)
	assert.NoError(t, err)
	_, err = sift.Parse(s, 0)
	assert.Error(t, err)
}

func TestCompileSliceShorthand(t *testing.T) {
	doc := `
name: labels
type: "[string]"
min: 1
`
	c := compiler.New()
	spec, err := c.Parse([]byte(doc))
	require.NoError(t, err)

	s, err := c.Compile(spec)
	require.NoError(t, err)
	require.Equal(t, sift.KindArray, s.Kind())

	_, err = sift.Parse(s, []any{"a"})
	assert.NoError(t, err)

	_, err = sift.Parse(s, []any{})
	var verr *issue.Error
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, issue.CodeTooSmall, verr.Issues[0].Code)

	_, err = sift.Parse(s, []any{1})
	require.ErrorAs(t, err, &verr)
	assert.Equal(t, issue.CodeInvalidType, verr.Issues[0].Code)
}

func TestCompileRefineExpression(t *testing.T) {
	doc := `
name: even
type: int
refine: "value % 2 == 0"
`
	c := compiler.New()
	spec, err := c.Parse([]byte(doc))
	require.NoError(t, err)

	s, err := c.Compile(spec)
	require.NoError(t, err)

	_, err = sift.Parse(s, 4)
	assert.NoError(t, err)

	_, err = sift.Parse(s, 3)
	var verr *issue.Error
	require.ErrorAs(t, err, &verr)
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, issue.CodeCustom, verr.Issues[0].Code)
	assert.Equal(t, "custom:expr", verr.Issues[0].Origin)

	t.Run("Skipped when the base rejects", func(t *testing.T) {
		_, err := sift.Parse(s, "three")
		var verr *issue.Error
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Issues, 1)
		assert.Equal(t, issue.CodeInvalidType, verr.Issues[0].Code)
	})
}

func TestCompileErrors(t *testing.T) {
	cases := []struct {
		name    string
		doc     string
		wantErr string
	}{
		{"unsupported type", "name: x\ntype: decimal", "unsupported type"},
		{"missing type", "name: x", "missing type"},
		{"enum without values", "name: x\ntype: enum", "at least one value"},
		{"array without items", "name: x\ntype: array", "requires items"},
		{"bad unknown mode", "name: x\ntype: object\nunknown: reject", "unsupported unknown mode"},
		{"bad pattern", "name: x\ntype: string\npattern: '['", "invalid pattern"},
		{"bad refine", "name: x\ntype: int\nrefine: 'value +'", "invalid refine expression"},
		{"ref without resolver", "name: x\ntype: ref\nref: other", "no resolver"},
	}

	c := compiler.New()
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			spec, err := c.Parse([]byte(tc.doc))
			require.NoError(t, err)
			_, err = c.Compile(spec)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestParseErrors(t *testing.T) {
	c := compiler.New()

	_, err := c.Parse([]byte("name: [broken"))
	assert.ErrorContains(t, err, "failed to parse schema document")

	_, err = c.Parse([]byte("type: string"))
	assert.ErrorContains(t, err, "missing name")
}

func TestCompileRefDelegatesLazily(t *testing.T) {
	known := map[string]sift.Schema{
		"id": sift.String().Min(3),
	}
	c := compiler.New(compiler.WithResolver(func(name string) (sift.Schema, error) {
		s, ok := known[name]
		if !ok {
			return nil, fmt.Errorf("schema not found: %s", name)
		}
		return s, nil
	}))

	spec, err := c.Parse([]byte("name: handle\ntype: ref\nref: id"))
	require.NoError(t, err)
	s, err := c.Compile(spec)
	require.NoError(t, err)

	_, err = sift.Parse(s, "abcd")
	assert.NoError(t, err)
	_, err = sift.Parse(s, "ab")
	assert.Error(t, err)

	t.Run("Unresolved refs fail the parse, not the process", func(t *testing.T) {
		spec, err := c.Parse([]byte("name: ghost\ntype: ref\nref: nowhere"))
		require.NoError(t, err)
		s, err := c.Compile(spec)
		require.NoError(t, err)

		_, err = sift.Parse(s, "anything")
		var verr *issue.Error
		require.ErrorAs(t, err, &verr)
		require.Len(t, verr.Issues, 1)
		assert.Equal(t, issue.CodeCustom, verr.Issues[0].Code)
		assert.Contains(t, verr.Issues[0].Message, "unresolved")
	})
}

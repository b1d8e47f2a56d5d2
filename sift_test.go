package sift_test

import (
	"strings"
	"testing"

	"github.com/aretw0/sift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Modifiers must return independent copies: a derived schema never changes
// what its base accepts.
func TestModifiersReturnIndependentCopies(t *testing.T) {
	t.Run("string bounds", func(t *testing.T) {
		base := sift.String()
		bounded := base.Min(3)

		_, err := base.Parse("x")
		require.NoError(t, err, "base schema is untouched by Min")

		_, err = bounded.Parse("x")
		assert.Error(t, err)
	})

	t.Run("object strictness", func(t *testing.T) {
		base := sift.Object(map[string]sift.Schema{"a": sift.Int()})
		strict := base.Strict()

		_, err := base.Parse(map[string]any{"a": 1, "extra": true})
		require.NoError(t, err, "base schema still ignores unknown keys")

		_, err = strict.Parse(map[string]any{"a": 1, "extra": true})
		assert.Error(t, err)
		assert.True(t, strict.IsStrict())
		assert.False(t, base.IsStrict())
	})

	t.Run("function signature", func(t *testing.T) {
		base := sift.Function()
		unary := base.Input(sift.String())

		assert.Len(t, base.Inputs(), 0)
		assert.Len(t, unary.Inputs(), 1)
	})
}

func TestKindTags(t *testing.T) {
	tests := []struct {
		schema sift.Schema
		want   sift.Kind
	}{
		{sift.String(), sift.KindString},
		{sift.Number(), sift.KindNumber},
		{sift.Int(), sift.KindInt},
		{sift.Bool(), sift.KindBool},
		{sift.Any(), sift.KindAny},
		{sift.Enum("a"), sift.KindEnum},
		{sift.Object(nil), sift.KindObject},
		{sift.Array(sift.Any()), sift.KindArray},
		{sift.Optional(sift.String()), sift.KindOptional},
		{sift.Function(), sift.KindFunction},
		{sift.Custom("x", func(any) error { return nil }), sift.KindCustom},
		{sift.Lazy(func() sift.Schema { return sift.Any() }), sift.KindLazy},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.schema.Kind())
	}
}

func TestVersionIsEmbedded(t *testing.T) {
	assert.NotEmpty(t, strings.TrimSpace(sift.Version))
}

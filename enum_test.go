package sift_test

import (
	"errors"
	"testing"

	"github.com/aretw0/sift"
	"github.com/aretw0/sift/pkg/issue"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnumAcceptsMember(t *testing.T) {
	role := sift.Enum("a", "b", "c")

	got, err := role.Parse("b")
	require.NoError(t, err)
	assert.Equal(t, "b", got)
}

func TestEnumRejectsNonMember(t *testing.T) {
	role := sift.Enum("a", "b", "c")

	_, err := role.Parse("z")
	var verr *issue.Error
	require.ErrorAs(t, err, &verr)

	// Exactly one issue, carrying the full allowed set in declaration
	// order. Consumers build deterministic messages from this.
	require.Len(t, verr.Issues, 1)
	is := verr.Issues[0]
	assert.Equal(t, issue.CodeInvalidEnumValue, is.Code)
	assert.Equal(t, []string{"a", "b", "c"}, is.Options)
	assert.Equal(t, "z", is.Input)
	assert.Equal(t, "enum", is.Origin)
	assert.Empty(t, is.Path)
}

func TestEnumRejectsNonString(t *testing.T) {
	role := sift.Enum("a", "b")

	_, err := role.Parse(42)
	var verr *issue.Error
	require.True(t, errors.As(err, &verr))
	require.Len(t, verr.Issues, 1)
	assert.Equal(t, issue.CodeInvalidEnumValue, verr.Issues[0].Code)
	assert.Equal(t, 42, verr.Issues[0].Input)
}

func TestEnumOptionsIsACopy(t *testing.T) {
	role := sift.Enum("a", "b")

	opts := role.Options()
	opts[0] = "mutated"

	assert.Equal(t, []string{"a", "b"}, role.Options())
}

func TestEnumConstructionPanics(t *testing.T) {
	t.Run("Empty set", func(t *testing.T) {
		assert.Panics(t, func() { sift.Enum() })
	})

	t.Run("Duplicate values", func(t *testing.T) {
		assert.Panics(t, func() { sift.Enum("a", "a") })
	})
}

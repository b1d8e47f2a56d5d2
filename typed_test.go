package sift_test

import (
	"testing"

	"github.com/aretw0/sift"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImplement2TypedWrapper(t *testing.T) {
	contract := sift.Function().
		Input(sift.String().Min(1), sift.Int()).
		Output(sift.String())

	repeat := sift.Implement2[string, int64, string](contract, func(s string, n int64) (string, error) {
		out := ""
		for i := int64(0); i < n; i++ {
			out += s
		}
		return out, nil
	})

	got, err := repeat("ab", 3)
	require.NoError(t, err)
	assert.Equal(t, "ababab", got)

	_, err = repeat("", 3)
	assert.Error(t, err, "argument validation still runs under the typed wrapper")
}

func TestImplement1CoercesBeforeAsserting(t *testing.T) {
	contract := sift.Function().Input(sift.Int()).Output(sift.Number())

	double := sift.Implement1[int64, float64](contract, func(n int64) (float64, error) {
		return float64(n) * 2, nil
	})

	got, err := double(21)
	require.NoError(t, err)
	assert.Equal(t, 42.0, got)
}

func TestImplement0VoidContract(t *testing.T) {
	contract := sift.Function()

	ping := sift.Implement0[string](contract, func() (string, error) {
		return "pong", nil
	})

	got, err := ping()
	require.NoError(t, err)
	assert.Equal(t, "pong", got)
}

func TestTypedWrapperPanicsOnArityMismatch(t *testing.T) {
	contract := sift.Function().Input(sift.String(), sift.Int())

	assert.Panics(t, func() {
		sift.Implement1[string, any](contract, func(s string) (any, error) {
			return s, nil
		})
	}, "arity mismatches surface when the wrapper is built, not when it runs")
}

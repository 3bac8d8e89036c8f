package planner

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIterateUntilConvergedReachesFixedPoint(t *testing.T) {
	// Halving converges to 0 for any starting point.
	halve := func(n int) (int, error) { return n / 2, nil }
	equal := func(a, b int) bool { return a == b }

	converge := IterateUntilConverged(halve, equal)

	got, err := converge(37)
	require.NoError(t, err)
	assert.Equal(t, 0, got)

	// At a fixed point, f(x) == x: applying the driver again is a no-op.
	again, err := converge(got)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestIterateUntilConvergedReturnsImmediatelyAtFixedPoint(t *testing.T) {
	calls := 0
	identity := func(s []string) ([]string, error) {
		calls++
		return s, nil
	}
	equal := func(a, b []string) bool { return len(a) == len(b) }

	converge := IterateUntilConverged(identity, equal)
	initial := []string{"a", "b"}

	got, err := converge(initial)
	require.NoError(t, err)
	assert.Equal(t, initial, got)
	assert.Equal(t, 1, calls, "one probe suffices to detect the fixed point")
}

func TestIterateUntilConvergedPropagatesErrors(t *testing.T) {
	boom := errors.New("step failed")
	step := func(n int) (int, error) {
		if n < 5 {
			return 0, boom
		}
		return n - 1, nil
	}
	converge := IterateUntilConverged(step, func(a, b int) bool { return a == b })

	_, err := converge(7)
	assert.ErrorIs(t, err, boom)
}

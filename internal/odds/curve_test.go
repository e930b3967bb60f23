package odds

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCurveFullDeck(t *testing.T) {
	curve := Curve(52, 16, 5)
	require.Len(t, curve, 6)

	for k, point := range curve {
		assert.Equal(t, k, point.K)
		assert.Equal(t, PMF(k, 52, 16, 5), point.P)
		assert.GreaterOrEqual(t, point.P, 0.0)
		assert.LessOrEqual(t, point.P, 1.0)
	}
	assert.InDelta(t, 1.0, Total(curve), 1e-9)
}

func TestCurveTruncatesAtSuccesses(t *testing.T) {
	curve := Curve(20, 2, 5)
	require.Len(t, curve, 3)
	assert.InDelta(t, 1.0, Total(curve), 1e-9)

	assert.Len(t, Curve(3, 3, 10), 0, "n larger than N is not a valid draw")
	assert.Nil(t, Curve(-1, 0, 3))
}

func TestMode(t *testing.T) {
	best, ok := Mode(Curve(52, 16, 5))
	require.True(t, ok)
	assert.Equal(t, 1, best.K)

	_, ok = Mode(nil)
	assert.False(t, ok)
}

func TestNextTrialsCycles(t *testing.T) {
	n := MinTrials
	seen := []int{n}
	for range 8 {
		n = NextTrials(n)
		seen = append(seen, n)
	}
	assert.Equal(t, []int{3, 4, 5, 6, 7, 8, 9, 10, 3}, seen)

	assert.Equal(t, MinTrials, NextTrials(0))
	assert.Equal(t, MinTrials, NextTrials(42))
	assert.True(t, ValidTrials(10))
	assert.False(t, ValidTrials(2))
}

package odds

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPMFKnownValues(t *testing.T) {
	// One card from a full deck is a ten 16 times in 52.
	assert.InDelta(t, 16.0/52.0, PMF(1, 52, 16, 1), 1e-12)
	// Two tens in two cards: 16/52 * 15/51.
	assert.InDelta(t, 16.0/52.0*15.0/51.0, PMF(2, 52, 16, 2), 1e-12)
	// No tens in five cards: C(36,5)/C(52,5).
	assert.InDelta(t, 376992.0/2598960.0, PMF(0, 52, 16, 5), 1e-12)
}

func TestPMFImpossibleCombinations(t *testing.T) {
	tests := []struct {
		k, N, K, n int
	}{
		{5, 52, 16, 1},  // k > n
		{3, 52, 2, 5},   // k > K
		{-1, 52, 16, 5}, // negative k
		{0, 10, 8, 5},   // n-k > N-K
		{1, 0, 0, 1},    // empty population
		{0, 0, 0, 1},    // draws from nothing
		{1, 5, 7, 1},    // K > N
		{1, 5, 2, 6},    // n > N
		{0, 5, -1, 1},   // negative K
	}

	for _, tt := range tests {
		t.Run(fmt.Sprintf("k=%d N=%d K=%d n=%d", tt.k, tt.N, tt.K, tt.n), func(t *testing.T) {
			assert.Zero(t, PMF(tt.k, tt.N, tt.K, tt.n))
		})
	}
}

func TestPMFSumsToOne(t *testing.T) {
	for N := 0; N <= 52; N += 4 {
		for K := 0; K <= N; K += 3 {
			for n := 0; n <= min(N, 10); n++ {
				sum := 0.0
				for k := 0; k <= min(n, K); k++ {
					p := PMF(k, N, K, n)
					assert.GreaterOrEqual(t, p, 0.0)
					assert.LessOrEqual(t, p, 1.0)
					sum += p
				}
				assert.InDelta(t, 1.0, sum, 1e-9, "N=%d K=%d n=%d", N, K, n)
			}
		}
	}
}

func TestPMFLargePopulationUsesLogSpace(t *testing.T) {
	// Six-deck shoe: 312 cards, 96 ten-valued.
	sum := 0.0
	for k := 0; k <= 20; k++ {
		sum += PMF(k, 312, 96, 20)
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.InDelta(t, 96.0/312.0, PMF(1, 312, 96, 1), 1e-12)
}

func TestCDF(t *testing.T) {
	assert.InDelta(t, 1.0, CDF(5, 52, 16, 5), 1e-12)
	assert.InDelta(t, PMF(0, 52, 16, 5), CDF(0, 52, 16, 5), 1e-12)
}

func TestMeanAndVariance(t *testing.T) {
	assert.InDelta(t, 5*16.0/52.0, Mean(52, 16, 5), 1e-12)

	p := 16.0 / 52.0
	assert.InDelta(t, 5*p*(1-p)*47.0/51.0, Variance(52, 16, 5), 1e-12)

	assert.Zero(t, Mean(0, 0, 0))
	assert.Zero(t, Variance(1, 1, 1))
	assert.Zero(t, Mean(5, 6, 1))
}

package odds

import (
	"math"

	"gonum.org/v1/gonum/stat/combin"
)

// exactLimit is the largest population for which combin.Binomial cannot
// overflow an int64 on any k. Beyond it the coefficients are taken in log space.
const exactLimit = 60

// PMF returns the probability of exactly k successes in n draws without
// replacement from a population of N items holding K successes. Impossible
// combinations, including N = 0 with n > 0, return 0.
func PMF(k, N, K, n int) float64 {
	if !possible(k, N, K, n) {
		return 0
	}

	if N <= exactLimit {
		num := float64(combin.Binomial(K, k)) * float64(combin.Binomial(N-K, n-k))
		return num / float64(combin.Binomial(N, n))
	}

	logP := combin.LogGeneralizedBinomial(float64(K), float64(k)) +
		combin.LogGeneralizedBinomial(float64(N-K), float64(n-k)) -
		combin.LogGeneralizedBinomial(float64(N), float64(n))
	return math.Exp(logP)
}

// CDF returns P(X <= k).
func CDF(k, N, K, n int) float64 {
	sum := 0.0
	for i := 0; i <= k; i++ {
		sum += PMF(i, N, K, n)
	}
	return math.Min(sum, 1)
}

// Mean returns the expected number of successes, n·K/N.
func Mean(N, K, n int) float64 {
	if !validPopulation(N, K, n) || N == 0 {
		return 0
	}
	return float64(n) * float64(K) / float64(N)
}

// Variance returns n·(K/N)·((N-K)/N)·((N-n)/(N-1)).
func Variance(N, K, n int) float64 {
	if !validPopulation(N, K, n) || N < 2 {
		return 0
	}
	p := float64(K) / float64(N)
	return float64(n) * p * (1 - p) * float64(N-n) / float64(N-1)
}

func validPopulation(N, K, n int) bool {
	return N >= 0 && K >= 0 && K <= N && n >= 0 && n <= N
}

func possible(k, N, K, n int) bool {
	if !validPopulation(N, K, n) {
		return false
	}
	if k < 0 || k > n || k > K {
		return false
	}
	return n-k <= N-K
}

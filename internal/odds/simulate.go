package odds

import (
	"context"
	"errors"
	"fmt"
	rand "math/rand/v2"
	"runtime"

	"golang.org/x/sync/errgroup"
	"gonum.org/v1/gonum/stat"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/lox/twentyone/internal/randutil"
)

var (
	// ErrInvalidPopulation is returned when N, K and n cannot describe a draw.
	ErrInvalidPopulation = errors.New("invalid population")
	// ErrInvalidTrials is returned for a non-positive number of simulations.
	ErrInvalidTrials = errors.New("number of simulations must be positive")
)

const maxWorkers = 8

// CheckPopulation returns ErrInvalidPopulation unless n cards can be drawn
// from N of which K are successes.
func CheckPopulation(N, K, n int) error {
	if !validPopulation(N, K, n) {
		return fmt.Errorf("%w: N=%d K=%d n=%d", ErrInvalidPopulation, N, K, n)
	}
	return nil
}

// Sample holds the outcome of repeated empirical draws.
type Sample struct {
	Population Population
	Draws      int
	Trials     int
	// Counts[k] is how many trials produced exactly k successes.
	Counts []int
}

// Frequency returns the observed relative frequency of k successes.
func (s Sample) Frequency(k int) float64 {
	if k < 0 || k >= len(s.Counts) || s.Trials == 0 {
		return 0
	}
	return float64(s.Counts[k]) / float64(s.Trials)
}

// Mean returns the observed mean number of successes.
func (s Sample) Mean() float64 {
	xs, ws := s.weighted()
	if len(xs) == 0 {
		return 0
	}
	return stat.Mean(xs, ws)
}

// Variance returns the observed (unbiased) variance of the number of successes.
func (s Sample) Variance() float64 {
	xs, ws := s.weighted()
	if s.Trials < 2 {
		return 0
	}
	return stat.Variance(xs, ws)
}

func (s Sample) weighted() ([]float64, []float64) {
	xs := make([]float64, 0, len(s.Counts))
	ws := make([]float64, 0, len(s.Counts))
	for k, c := range s.Counts {
		if c == 0 {
			continue
		}
		xs = append(xs, float64(k))
		ws = append(ws, float64(c))
	}
	return xs, ws
}

// Simulate draws n cards from a population of N with K successes, trials
// times, and counts the successes of each trial. Work is split across
// goroutines that each own a generator derived from rng, so a seeded rng
// gives reproducible counts.
func Simulate(ctx context.Context, N, K, n, trials int, rng *rand.Rand) (Sample, error) {
	if err := CheckPopulation(N, K, n); err != nil {
		return Sample{}, err
	}
	if trials <= 0 {
		return Sample{}, fmt.Errorf("%w: %d", ErrInvalidTrials, trials)
	}

	workers := min(runtime.NumCPU(), maxWorkers, trials)
	rngs := randutil.Split(rng, workers)
	perWorker := trials / workers
	remainder := trials % workers

	g, ctx := errgroup.WithContext(ctx)
	results := make([][]int, workers)

	for w := range workers {
		samples := perWorker
		if w < remainder {
			samples++
		}
		workerRng := rngs[w]

		g.Go(func() error {
			counts, err := runSampler(ctx, N, K, n, samples, workerRng)
			if err != nil {
				return err
			}
			results[w] = counts
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Sample{}, fmt.Errorf("simulation stopped: %w", err)
	}

	total := make([]int, n+1)
	for _, counts := range results {
		for k, c := range counts {
			total[k] += c
		}
	}

	return Sample{
		Population: Population{N: N, K: K},
		Draws:      n,
		Trials:     trials,
		Counts:     total,
	}, nil
}

func runSampler(ctx context.Context, N, K, n, samples int, rng *rand.Rand) ([]int, error) {
	counts := make([]int, n+1)
	for i := range samples {
		if i%256 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}
		counts[drawOnce(N, K, n, rng)]++
	}
	return counts, nil
}

// drawOnce draws n items sequentially; each draw is a success with
// probability (successes left)/(items left).
func drawOnce(N, K, n int, rng *rand.Rand) int {
	successes := 0
	left, good := N, K
	for range n {
		if rng.IntN(left) < good {
			successes++
			good--
		}
		left--
	}
	return successes
}

// FitResult compares an empirical sample with its theoretical curve.
type FitResult struct {
	ChiSquare        float64
	DegreesOfFreedom int
	PValue           float64
}

// Fit runs a chi-square goodness-of-fit test of sample against curve. Bins the
// curve gives zero probability are skipped.
func Fit(curve []Point, sample Sample) FitResult {
	var obs, exp []float64
	for _, p := range curve {
		if p.P <= 0 {
			continue
		}
		observed := 0.0
		if p.K < len(sample.Counts) {
			observed = float64(sample.Counts[p.K])
		}
		obs = append(obs, observed)
		exp = append(exp, p.P*float64(sample.Trials))
	}

	df := len(obs) - 1
	if df < 1 || sample.Trials == 0 {
		return FitResult{PValue: 1}
	}

	chi := stat.ChiSquare(obs, exp)
	return FitResult{
		ChiSquare:        chi,
		DegreesOfFreedom: df,
		PValue:           distuv.ChiSquared{K: float64(df)}.Survival(chi),
	}
}

package odds

const (
	// MinTrials and MaxTrials bound the number of draws shown on the PMF chart.
	MinTrials = 3
	MaxTrials = 10
	// DefaultSimulations is the number of empirical samples drawn per chart.
	DefaultSimulations = 1000
)

// Point is one bar of a probability mass function.
type Point struct {
	K int
	P float64
}

// Curve returns P(X = k) for k = 0..min(n, K, N).
func Curve(N, K, n int) []Point {
	top := min(n, K, N)
	if top < 0 || !validPopulation(N, K, n) {
		return nil
	}

	points := make([]Point, 0, top+1)
	for k := 0; k <= top; k++ {
		points = append(points, Point{K: k, P: PMF(k, N, K, n)})
	}
	return points
}

// Total sums the probabilities of the points.
func Total(points []Point) float64 {
	sum := 0.0
	for _, p := range points {
		sum += p.P
	}
	return sum
}

// Mode returns the point with the highest probability.
func Mode(points []Point) (Point, bool) {
	if len(points) == 0 {
		return Point{}, false
	}
	best := points[0]
	for _, p := range points[1:] {
		if p.P > best.P {
			best = p
		}
	}
	return best, true
}

// NextTrials steps the chart draw count through MinTrials..MaxTrials,
// wrapping back to MinTrials. Values outside the range restart it.
func NextTrials(n int) int {
	if n < MinTrials || n >= MaxTrials {
		return MinTrials
	}
	return n + 1
}

// ValidTrials reports whether n is inside the chart range.
func ValidTrials(n int) bool {
	return n >= MinTrials && n <= MaxTrials
}

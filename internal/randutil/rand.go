// Package randutil builds the random sources used for shuffling and sampling.
package randutil

import rand "math/rand/v2"

const (
	goldenRatio64 = 0x9e3779b97f4a7c15
)

// New returns a *rand.Rand seeded deterministically from the provided int64.
// Two generators built from the same seed deal the same cards and draw the
// same simulation samples.
func New(seed int64) *rand.Rand {
	u := uint64(seed)
	return rand.New(rand.NewPCG(mix(u), mix(u+goldenRatio64)))
}

// Fresh returns a generator seeded from the runtime entropy source.
func Fresh() *rand.Rand {
	return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
}

// Split derives n independent generators from parent. The derived sequence
// depends only on the state of parent, so a seeded parent yields seeded children.
func Split(parent *rand.Rand, n int) []*rand.Rand {
	out := make([]*rand.Rand, n)
	for i := range out {
		s := parent.Uint64()
		out[i] = rand.New(rand.NewPCG(mix(s), mix(s+goldenRatio64)))
	}
	return out
}

func mix(x uint64) uint64 {
	x ^= x >> 30
	x *= 0xbf58476d1ce4e5b9
	x ^= x >> 27
	x *= 0x94d049bb133111eb
	x ^= x >> 31
	return x
}

package dist

import (
	"math/rand/v2"
)

// Univariate is a sampling rule over a scalar domain. Implementations are
// immutable after construction; all randomness comes from the supplied rng.
type Univariate interface {
	Sample(rng *rand.Rand) float64
}

// SampleN draws n values from d.
func SampleN(d Univariate, rng *rand.Rand, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = d.Sample(rng)
	}
	return out
}

// NewRand returns a PCG-backed generator for the given seed. The same seed
// always yields the same sample sequence.
func NewRand(seed int64) *rand.Rand {
	return rand.New(rand.NewPCG(uint64(seed), uint64(seed)+0x9e3779b9))
}

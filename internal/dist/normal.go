package dist

import (
	"fmt"
	"math/rand/v2"
)

// Normal is a Gaussian with the given mean and standard deviation.
type Normal struct {
	Mean   float64
	StdDev float64
}

func NewNormal(mean, stdDev float64) (*Normal, error) {
	if stdDev <= 0 {
		return nil, fmt.Errorf("normal: std dev must be positive, got %f", stdDev)
	}
	return &Normal{Mean: mean, StdDev: stdDev}, nil
}

func (n *Normal) Sample(rng *rand.Rand) float64 {
	return n.Mean + n.StdDev*rng.NormFloat64()
}

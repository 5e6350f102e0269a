package dist

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Uniform samples from the half-open interval [Low, High).
type Uniform struct {
	Low  float64
	High float64
}

func NewUniform(low, high float64) (*Uniform, error) {
	if high <= low {
		return nil, fmt.Errorf("uniform: high %f must exceed low %f", high, low)
	}
	return &Uniform{Low: low, High: high}, nil
}

func (u *Uniform) Sample(rng *rand.Rand) float64 {
	return u.Low + rng.Float64()*(u.High-u.Low)
}

// PowerLaw samples x^N over [Low, High] by CDF inversion.
type PowerLaw struct {
	Low  float64
	High float64
	N    float64
}

func NewPowerLaw(low, high, n float64) (*PowerLaw, error) {
	if low < 0 || high <= low {
		return nil, fmt.Errorf("powerlaw: invalid interval [%f, %f]", low, high)
	}
	if n <= -1 {
		return nil, fmt.Errorf("powerlaw: exponent %f must exceed -1", n)
	}
	return &PowerLaw{Low: low, High: high, N: n}, nil
}

func (p *PowerLaw) Sample(rng *rand.Rand) float64 {
	k := p.N + 1
	lo := math.Pow(p.Low, k)
	hi := math.Pow(p.High, k)
	return math.Pow(lo+rng.Float64()*(hi-lo), 1/k)
}

package dist

import (
	"fmt"
	"math/rand/v2"
)

// Discrete samples from a finite value set with given relative weights.
type Discrete struct {
	values []float64
	cdf    []float64
}

func NewDiscrete(values, weights []float64) (*Discrete, error) {
	if len(values) == 0 {
		return nil, fmt.Errorf("discrete: empty value set")
	}
	if len(values) != len(weights) {
		return nil, fmt.Errorf("discrete: %d values but %d weights", len(values), len(weights))
	}
	total := 0.0
	for i, w := range weights {
		if w < 0 {
			return nil, fmt.Errorf("discrete: negative weight %f for value %f", w, values[i])
		}
		total += w
	}
	if total <= 0 {
		return nil, fmt.Errorf("discrete: weights sum to %f", total)
	}

	d := &Discrete{
		values: append([]float64(nil), values...),
		cdf:    make([]float64, len(weights)),
	}
	acc := 0.0
	for i, w := range weights {
		acc += w / total
		d.cdf[i] = acc
	}
	d.cdf[len(d.cdf)-1] = 1.0
	return d, nil
}

// Delta is a single value with probability 1.
func Delta(value float64) *Discrete {
	d, _ := NewDiscrete([]float64{value}, []float64{1})
	return d
}

func (d *Discrete) Sample(rng *rand.Rand) float64 {
	u := rng.Float64()
	for i, c := range d.cdf {
		if u < c {
			return d.values[i]
		}
	}
	return d.values[len(d.values)-1]
}

// Values returns the support of the distribution.
func (d *Discrete) Values() []float64 {
	return append([]float64(nil), d.values...)
}

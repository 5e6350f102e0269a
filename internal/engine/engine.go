package engine

import (
	"context"
	"fmt"

	"github.com/san-kum/srcsim/internal/dist"
	"github.com/san-kum/srcsim/internal/source"
)

// Engine draws particle batches from source descriptors. One Engine holds
// one seeded generator; runs with the same seed, sources and count produce
// identical batches.
type Engine struct {
	seed int64
}

func New(seed int64) *Engine {
	return &Engine{seed: seed}
}

// Batch is the result of one sampling run.
type Batch struct {
	Particles []source.Particle
	// Counts[i] is the number of particles drawn from sources[i].
	Counts []int
}

// Energies returns the energy of every particle in the batch.
func (b *Batch) Energies() []float64 {
	out := make([]float64, len(b.Particles))
	for i, p := range b.Particles {
		out[i] = p.Energy
	}
	return out
}

// Merge appends the particles of other, adding per-source counts
// elementwise. Both batches must come from the same source list.
func (b *Batch) Merge(other *Batch) *Batch {
	m := &Batch{
		Particles: append(append([]source.Particle(nil), b.Particles...), other.Particles...),
		Counts:    append([]int(nil), b.Counts...),
	}
	for len(m.Counts) < len(other.Counts) {
		m.Counts = append(m.Counts, 0)
	}
	for i, c := range other.Counts {
		m.Counts[i] += c
	}
	return m
}

// Run samples n particles from the given descriptors. Each particle first
// picks a source with probability proportional to strength, then draws the
// three attributes independently. Cancellation via ctx returns the partial
// batch together with ctx.Err().
func (e *Engine) Run(ctx context.Context, sources []*source.Source, n int) (*Batch, error) {
	if err := validate(sources, n); err != nil {
		return nil, err
	}

	rng := dist.NewRand(e.seed)

	cdf := make([]float64, len(sources))
	total := 0.0
	for _, s := range sources {
		total += s.Strength
	}
	acc := 0.0
	for i, s := range sources {
		acc += s.Strength / total
		cdf[i] = acc
	}
	cdf[len(cdf)-1] = 1

	batch := &Batch{
		Particles: make([]source.Particle, 0, n),
		Counts:    make([]int, len(sources)),
	}

	for i := 0; i < n; i++ {
		select {
		case <-ctx.Done():
			return batch, ctx.Err()
		default:
		}

		idx := 0
		u := rng.Float64()
		for idx < len(cdf)-1 && u >= cdf[idx] {
			idx++
		}
		s := sources[idx]

		batch.Particles = append(batch.Particles, source.Particle{
			Position:  s.Space.Sample(rng),
			Direction: s.Angle.Sample(rng),
			Energy:    s.Energy.Sample(rng),
			SourceIdx: idx,
		})
		batch.Counts[idx]++
	}

	return batch, nil
}

func validate(sources []*source.Source, n int) error {
	if n <= 0 {
		return fmt.Errorf("particle count must be positive, got %d", n)
	}
	if len(sources) == 0 {
		return fmt.Errorf("at least one source is required")
	}
	total := 0.0
	for _, s := range sources {
		if s.Strength < 0 {
			return fmt.Errorf("source %q: negative strength %f", s.Name, s.Strength)
		}
		total += s.Strength
	}
	if total <= 0 {
		return fmt.Errorf("source strengths sum to %f", total)
	}
	return nil
}

package engine

import (
	"context"
	"math"
	"testing"

	"github.com/san-kum/srcsim/internal/dist"
	"github.com/san-kum/srcsim/internal/source"
)

func pointSource(t *testing.T, name string, energy float64) *source.Source {
	t.Helper()
	s, err := source.NewPoint(name, 0, 0, 0, dist.Delta(energy))
	if err != nil {
		t.Fatalf("building source: %v", err)
	}
	return s
}

func TestRunBatchSize(t *testing.T) {
	s := pointSource(t, "p", 14.1e6)

	eng := New(42)
	batch, err := eng.Run(context.Background(), []*source.Source{s}, 5000)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	if len(batch.Particles) != 5000 {
		t.Errorf("expected 5000 particles, got %d", len(batch.Particles))
	}
	if batch.Counts[0] != 5000 {
		t.Errorf("expected 5000 counted, got %d", batch.Counts[0])
	}
}

func TestRunDeterministic(t *testing.T) {
	mk := func() *Batch {
		s := pointSource(t, "p", 1e6)
		batch, err := New(7).Run(context.Background(), []*source.Source{s}, 100)
		if err != nil {
			t.Fatalf("run failed: %v", err)
		}
		return batch
	}

	a, b := mk(), mk()
	for i := range a.Particles {
		if a.Particles[i] != b.Particles[i] {
			t.Fatalf("particle %d differs between seeded runs", i)
		}
	}
}

func TestRunStrengthWeighting(t *testing.T) {
	a := pointSource(t, "a", 1).WithStrength(3)
	b := pointSource(t, "b", 2).WithStrength(1)

	eng := New(11)
	batch, err := eng.Run(context.Background(), []*source.Source{a, b}, 100000)
	if err != nil {
		t.Fatalf("run failed: %v", err)
	}

	frac := float64(batch.Counts[0]) / 100000
	if math.Abs(frac-0.75) > 0.01 {
		t.Errorf("source a drew %f of particles, expected ~0.75", frac)
	}
}

func TestRunValidation(t *testing.T) {
	s := pointSource(t, "p", 1e6)
	eng := New(1)

	if _, err := eng.Run(context.Background(), []*source.Source{s}, 0); err == nil {
		t.Error("expected error for zero particles")
	}
	if _, err := eng.Run(context.Background(), nil, 10); err == nil {
		t.Error("expected error for no sources")
	}
	if _, err := eng.Run(context.Background(), []*source.Source{s.WithStrength(0)}, 10); err == nil {
		t.Error("expected error for zero total strength")
	}
}

func TestRunCancellation(t *testing.T) {
	s := pointSource(t, "p", 1e6)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	batch, err := New(1).Run(ctx, []*source.Source{s}, 1000)
	if err == nil {
		t.Fatal("expected context error")
	}
	if len(batch.Particles) >= 1000 {
		t.Errorf("expected a partial batch, got %d particles", len(batch.Particles))
	}
}

func TestBatchMerge(t *testing.T) {
	s := pointSource(t, "p", 1e6)

	b1, err := New(1).Run(context.Background(), []*source.Source{s}, 10)
	if err != nil {
		t.Fatal(err)
	}
	b2, err := New(2).Run(context.Background(), []*source.Source{s}, 15)
	if err != nil {
		t.Fatal(err)
	}

	m := b1.Merge(b2)
	if len(m.Particles) != 25 {
		t.Errorf("expected 25 merged particles, got %d", len(m.Particles))
	}
	if m.Counts[0] != 25 {
		t.Errorf("expected merged count 25, got %d", m.Counts[0])
	}
}

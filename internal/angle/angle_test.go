package angle

import (
	"math"
	"testing"

	"github.com/san-kum/srcsim/internal/dist"
)

func TestIsotropicUnitNorm(t *testing.T) {
	iso := NewIsotropic()
	rng := dist.NewRand(1)

	sumW := 0.0
	const n = 100000
	for i := 0; i < n; i++ {
		d := iso.Sample(rng)
		if math.Abs(d.Norm()-1) > 1e-12 {
			t.Fatalf("direction not on unit sphere: norm %v", d.Norm())
		}
		sumW += d.W
	}

	// uniform over the sphere has zero mean polar cosine
	if math.Abs(sumW/n) > 0.01 {
		t.Errorf("mean w = %f, expected ~0", sumW/n)
	}
}

func TestMonodirectionalNormalizes(t *testing.T) {
	m, err := NewMonodirectional(0, 0, 2)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	d := m.Sample(dist.NewRand(1))
	if d.W != 1 || d.U != 0 || d.V != 0 {
		t.Errorf("expected +z unit vector, got %+v", d)
	}

	if _, err := NewMonodirectional(0, 0, 0); err == nil {
		t.Error("expected error for zero direction")
	}
}

func TestPolarAzimuthalFixedMu(t *testing.T) {
	phi, err := dist.NewUniform(0, 2*math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	pa := NewPolarAzimuthal(dist.Delta(0.5), phi)

	rng := dist.NewRand(9)
	for i := 0; i < 1000; i++ {
		d := pa.Sample(rng)
		if math.Abs(d.W-0.5) > 1e-12 {
			t.Fatalf("expected w=0.5, got %f", d.W)
		}
		if math.Abs(d.Norm()-1) > 1e-12 {
			t.Fatalf("direction not normalized: %f", d.Norm())
		}
	}
}

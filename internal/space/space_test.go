package space

import (
	"math"
	"testing"

	"github.com/san-kum/srcsim/internal/dist"
)

func TestPointCollapses(t *testing.T) {
	p := NewPoint(1, 2, 3)
	rng := dist.NewRand(1)
	for i := 0; i < 1000; i++ {
		pos := p.Sample(rng)
		if pos.X != 1 || pos.Y != 2 || pos.Z != 3 {
			t.Fatalf("point source moved: %+v", pos)
		}
	}
}

func TestCylindricalRing(t *testing.T) {
	phi, err := dist.NewUniform(0, 2*math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	ring := NewCylindrical(dist.Delta(10), phi, dist.Delta(0), Position{})

	rng := dist.NewRand(2)
	for i := 0; i < 10000; i++ {
		pos := ring.Sample(rng)
		if math.Abs(pos.R()-10) > 1e-9 {
			t.Fatalf("radius %f, expected 10", pos.R())
		}
		if pos.Z != 0 {
			t.Fatalf("z %f, expected 0", pos.Z)
		}
		az := math.Atan2(pos.Y, pos.X)
		if az < -math.Pi || az > math.Pi {
			t.Fatalf("azimuth out of range: %f", az)
		}
	}
}

func TestCylindricalOrigin(t *testing.T) {
	phi, err := dist.NewUniform(0, 2*math.Pi)
	if err != nil {
		t.Fatal(err)
	}
	ring := NewCylindrical(dist.Delta(5), phi, dist.Delta(0), Position{X: 100, Z: -40})

	rng := dist.NewRand(3)
	for i := 0; i < 1000; i++ {
		pos := ring.Sample(rng)
		dx, dy := pos.X-100, pos.Y
		r := math.Sqrt(dx*dx + dy*dy)
		if math.Abs(r-5) > 1e-9 {
			t.Fatalf("radius about origin %f, expected 5", r)
		}
		if pos.Z != -40 {
			t.Fatalf("z %f, expected -40", pos.Z)
		}
	}
}

func TestCartesianIndependent(t *testing.T) {
	x, _ := dist.NewUniform(-1, 1)
	c := NewCartesian(x, dist.Delta(0), dist.Delta(7))

	rng := dist.NewRand(4)
	for i := 0; i < 1000; i++ {
		pos := c.Sample(rng)
		if pos.X < -1 || pos.X >= 1 {
			t.Fatalf("x out of range: %f", pos.X)
		}
		if pos.Y != 0 || pos.Z != 7 {
			t.Fatalf("fixed axes moved: %+v", pos)
		}
	}
}

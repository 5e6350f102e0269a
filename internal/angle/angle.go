package angle

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/san-kum/srcsim/internal/dist"
)

// Direction is a unit vector on the sphere.
type Direction struct {
	U, V, W float64
}

// Norm returns the Euclidean length of the direction.
func (d Direction) Norm() float64 {
	return math.Sqrt(d.U*d.U + d.V*d.V + d.W*d.W)
}

// Angular samples emission directions.
type Angular interface {
	Sample(rng *rand.Rand) Direction
}

// Isotropic is uniform over the unit sphere.
type Isotropic struct{}

func NewIsotropic() *Isotropic { return &Isotropic{} }

func (iso *Isotropic) Sample(rng *rand.Rand) Direction {
	u := 2*rng.Float64() - 1
	phi := 2 * math.Pi * rng.Float64()
	s := math.Sqrt(1 - u*u)
	return Direction{U: s * math.Cos(phi), V: s * math.Sin(phi), W: u}
}

// Monodirectional emits every particle along one fixed direction.
type Monodirectional struct {
	dir Direction
}

func NewMonodirectional(u, v, w float64) (*Monodirectional, error) {
	n := math.Sqrt(u*u + v*v + w*w)
	if n == 0 {
		return nil, fmt.Errorf("monodirectional: zero reference direction")
	}
	return &Monodirectional{dir: Direction{U: u / n, V: v / n, W: w / n}}, nil
}

func (m *Monodirectional) Sample(rng *rand.Rand) Direction {
	return m.dir
}

// PolarAzimuthal draws mu (cosine of the polar angle) and the azimuth from
// independent univariate rules about the z axis.
type PolarAzimuthal struct {
	Mu  dist.Univariate
	Phi dist.Univariate
}

func NewPolarAzimuthal(mu, phi dist.Univariate) *PolarAzimuthal {
	return &PolarAzimuthal{Mu: mu, Phi: phi}
}

func (p *PolarAzimuthal) Sample(rng *rand.Rand) Direction {
	mu := p.Mu.Sample(rng)
	if mu > 1 {
		mu = 1
	} else if mu < -1 {
		mu = -1
	}
	phi := p.Phi.Sample(rng)
	s := math.Sqrt(1 - mu*mu)
	return Direction{U: s * math.Cos(phi), V: s * math.Sin(phi), W: mu}
}

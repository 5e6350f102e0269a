package space

import (
	"math"
	"math/rand/v2"

	"github.com/san-kum/srcsim/internal/dist"
)

// Position is a point in 3-space (cm).
type Position struct {
	X, Y, Z float64
}

// R returns the cylindrical radius sqrt(x^2 + y^2).
func (p Position) R() float64 {
	return math.Sqrt(p.X*p.X + p.Y*p.Y)
}

// Spatial samples particle birth positions.
type Spatial interface {
	Sample(rng *rand.Rand) Position
}

// Point is the degenerate rule: every particle is born at one coordinate.
type Point struct {
	At Position
}

func NewPoint(x, y, z float64) *Point {
	return &Point{At: Position{X: x, Y: y, Z: z}}
}

func (p *Point) Sample(rng *rand.Rand) Position {
	return p.At
}

// Cartesian is the product of three independent rules over x, y and z.
type Cartesian struct {
	X, Y, Z dist.Univariate
}

func NewCartesian(x, y, z dist.Univariate) *Cartesian {
	return &Cartesian{X: x, Y: y, Z: z}
}

func (c *Cartesian) Sample(rng *rand.Rand) Position {
	return Position{
		X: c.X.Sample(rng),
		Y: c.Y.Sample(rng),
		Z: c.Z.Sample(rng),
	}
}

// Cylindrical is the product of three independent rules over radius,
// azimuth and height, translated by Origin.
type Cylindrical struct {
	R, Phi, Z dist.Univariate
	Origin    Position
}

func NewCylindrical(r, phi, z dist.Univariate, origin Position) *Cylindrical {
	return &Cylindrical{R: r, Phi: phi, Z: z, Origin: origin}
}

func (c *Cylindrical) Sample(rng *rand.Rand) Position {
	r := c.R.Sample(rng)
	phi := c.Phi.Sample(rng)
	return Position{
		X: c.Origin.X + r*math.Cos(phi),
		Y: c.Origin.Y + r*math.Sin(phi),
		Z: c.Origin.Z + c.Z.Sample(rng),
	}
}

package source

import (
	"fmt"

	"github.com/san-kum/srcsim/internal/angle"
	"github.com/san-kum/srcsim/internal/dist"
	"github.com/san-kum/srcsim/internal/space"
)

// Source is a particle source descriptor: three mutually independent
// sampling rules for birth position, emission direction and energy, plus a
// relative strength used when several sources are sampled together.
// Descriptors are immutable once constructed.
type Source struct {
	Name     string
	Space    space.Spatial
	Angle    angle.Angular
	Energy   dist.Univariate
	Strength float64
}

// New builds a descriptor with unit strength.
func New(name string, sp space.Spatial, ang angle.Angular, energy dist.Univariate) (*Source, error) {
	if sp == nil || ang == nil || energy == nil {
		return nil, fmt.Errorf("source %q: space, angle and energy rules are all required", name)
	}
	return &Source{Name: name, Space: sp, Angle: ang, Energy: energy, Strength: 1}, nil
}

// NewPoint is an isotropic point emitter at (x, y, z) with the given
// energy rule.
func NewPoint(name string, x, y, z float64, energy dist.Univariate) (*Source, error) {
	return New(name, space.NewPoint(x, y, z), angle.NewIsotropic(), energy)
}

// NewRing is an isotropic ring emitter: fixed radius and height, azimuth
// drawn from phi, translated by the origin offset.
func NewRing(name string, radius, z float64, phi dist.Univariate, origin space.Position, energy dist.Univariate) (*Source, error) {
	if radius < 0 {
		return nil, fmt.Errorf("source %q: ring radius must be non-negative, got %f", name, radius)
	}
	sp := space.NewCylindrical(dist.Delta(radius), phi, dist.Delta(z), origin)
	return New(name, sp, angle.NewIsotropic(), energy)
}

// WithStrength returns a copy of s with the given relative strength.
func (s *Source) WithStrength(strength float64) *Source {
	c := *s
	c.Strength = strength
	return &c
}

// Particle is one sampled birth record.
type Particle struct {
	Position  space.Position
	Direction angle.Direction
	Energy    float64
	SourceIdx int
}

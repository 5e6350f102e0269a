package plasma

import (
	"fmt"
	"math"

	"github.com/san-kum/srcsim/internal/dist"
	"github.com/san-kum/srcsim/internal/source"
	"github.com/san-kum/srcsim/internal/space"
)

// Mode is the plasma confinement regime.
type Mode string

const (
	ModeH Mode = "H" // high confinement, pedestal profiles
	ModeL Mode = "L" // low confinement, parabolic profiles
	ModeA Mode = "A" // advanced, treated as H for profile shapes
)

// Tokamak describes a D-T plasma equilibrium cross-section. Lengths are in
// cm, densities in m^-3, temperatures in keV. The zero value is not usable;
// construct with NewTokamak so the parameter domain is checked once.
type Tokamak struct {
	MajorRadius     float64
	MinorRadius     float64
	Elongation      float64
	Triangularity   float64
	PedestalRadius  float64
	ShafranovFactor float64

	IonDensityCentre     float64
	IonDensityPedestal   float64
	IonDensitySeparatrix float64
	IonDensityPeaking    float64

	IonTemperatureCentre     float64
	IonTemperaturePedestal   float64
	IonTemperatureSeparatrix float64
	IonTemperaturePeaking    float64
	IonTemperatureBeta       float64

	Mode       Mode
	SampleSize int
	// Toroidal angle range covered by the ring sub-sources.
	AngleStart, AngleEnd float64

	Seed int64
}

func NewTokamak(t Tokamak) (*Tokamak, error) {
	if t.MajorRadius <= 0 || t.MinorRadius <= 0 || t.MinorRadius >= t.MajorRadius {
		return nil, fmt.Errorf("tokamak: need 0 < minor %f < major %f", t.MinorRadius, t.MajorRadius)
	}
	if t.PedestalRadius <= 0 || t.PedestalRadius >= t.MinorRadius {
		return nil, fmt.Errorf("tokamak: pedestal radius %f must lie inside the minor radius %f", t.PedestalRadius, t.MinorRadius)
	}
	if math.Abs(t.ShafranovFactor) >= 0.5*t.MinorRadius {
		return nil, fmt.Errorf("tokamak: shafranov factor %f exceeds half the minor radius", t.ShafranovFactor)
	}
	if t.Elongation <= 0 {
		return nil, fmt.Errorf("tokamak: elongation must be positive, got %f", t.Elongation)
	}
	if t.Triangularity < -1 || t.Triangularity > 1 {
		return nil, fmt.Errorf("tokamak: triangularity %f outside [-1, 1]", t.Triangularity)
	}
	switch t.Mode {
	case ModeH, ModeL, ModeA:
	default:
		return nil, fmt.Errorf("tokamak: unknown mode %q", t.Mode)
	}
	if t.SampleSize <= 0 {
		return nil, fmt.Errorf("tokamak: sample size must be positive, got %d", t.SampleSize)
	}
	if t.AngleEnd <= t.AngleStart || t.AngleStart < 0 || t.AngleEnd > 2*math.Pi {
		return nil, fmt.Errorf("tokamak: angle range [%f, %f] must be increasing within [0, 2pi]", t.AngleStart, t.AngleEnd)
	}
	return &t, nil
}

// IonDensity evaluates the radial ion density profile (m^-3) at distance r
// (cm) from the magnetic axis.
func (t *Tokamak) IonDensity(r float64) float64 {
	if t.Mode == ModeL {
		return t.IonDensityCentre * math.Pow(1-sq(r/t.MajorRadius), t.IonDensityPeaking)
	}
	if r < t.PedestalRadius {
		return (t.IonDensityCentre-t.IonDensityPedestal)*
			math.Pow(1-sq(r/t.PedestalRadius), t.IonDensityPeaking) +
			t.IonDensityPedestal
	}
	return (t.IonDensityPedestal-t.IonDensitySeparatrix)*
		(t.MinorRadius-r)/(t.MinorRadius-t.PedestalRadius) +
		t.IonDensitySeparatrix
}

// IonTemperature evaluates the radial ion temperature profile (keV) at
// distance r (cm) from the magnetic axis.
func (t *Tokamak) IonTemperature(r float64) float64 {
	if t.Mode == ModeL {
		return t.IonTemperatureCentre * math.Pow(1-sq(r/t.MajorRadius), t.IonTemperaturePeaking)
	}
	if r < t.PedestalRadius {
		return t.IonTemperaturePedestal +
			(t.IonTemperatureCentre-t.IonTemperaturePedestal)*
				math.Pow(1-math.Pow(r/t.PedestalRadius, t.IonTemperatureBeta), t.IonTemperaturePeaking)
	}
	return t.IonTemperatureSeparatrix +
		(t.IonTemperaturePedestal-t.IonTemperatureSeparatrix)*
			(t.MinorRadius-r)/(t.MinorRadius-t.PedestalRadius)
}

// NeutronSourceDensity is the local D-T neutron emission density
// n^2/4 * <sigma v> at distance r from the magnetic axis.
func (t *Tokamak) NeutronSourceDensity(r float64) float64 {
	n := t.IonDensity(r)
	return 0.25 * n * n * Reactivity(t.IonTemperature(r))
}

// RZ converts flux-surface coordinates (a, alpha) to the poloidal plane:
// a is the distance from the magnetic axis, alpha the poloidal angle. The
// Shafranov shift moves inner surfaces outboard; triangularity and
// elongation shape the D cross-section.
func (t *Tokamak) RZ(a, alpha float64) (rMajor, z float64) {
	shift := t.ShafranovFactor * (1 - sq(a/t.MinorRadius))
	rMajor = t.MajorRadius + shift + a*math.Cos(alpha+t.Triangularity*math.Sin(alpha))
	z = t.Elongation * a * math.Sin(alpha)
	return rMajor, z
}

// MakeSources approximates the plasma volume as SampleSize ring emitters.
// Each sub-source sits on one sampled flux surface point: discrete major
// radius and height, uniform toroidal azimuth over the configured angle
// range, isotropic direction, and a Muir spectrum at the local ion
// temperature. Strengths are proportional to the local neutron source
// density and normalized to sum to one.
func (t *Tokamak) MakeSources() ([]*source.Source, error) {
	rng := dist.NewRand(t.Seed)

	sources := make([]*source.Source, 0, t.SampleSize)
	strengths := make([]float64, t.SampleSize)
	total := 0.0

	for i := 0; i < t.SampleSize; i++ {
		a := rng.Float64() * t.MinorRadius
		alpha := rng.Float64() * 2 * math.Pi

		rMajor, z := t.RZ(a, alpha)

		phi, err := dist.NewUniform(t.AngleStart, t.AngleEnd)
		if err != nil {
			return nil, err
		}
		ktEV := t.IonTemperature(a) * 1e3
		energy, err := dist.NewMuir(14.08e6, 5.0, ktEV)
		if err != nil {
			return nil, fmt.Errorf("sub-source %d: %w", i, err)
		}

		s, err := source.NewRing(fmt.Sprintf("plasma[%d]", i), rMajor, z, phi, space.Position{}, energy)
		if err != nil {
			return nil, err
		}
		sources = append(sources, s)

		strengths[i] = t.NeutronSourceDensity(a)
		total += strengths[i]
	}

	if total <= 0 {
		return nil, fmt.Errorf("tokamak: zero total neutron source density over %d samples", t.SampleSize)
	}
	for i := range sources {
		sources[i] = sources[i].WithStrength(strengths[i] / total)
	}
	return sources, nil
}

func sq(x float64) float64 { return x * x }

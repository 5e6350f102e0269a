package dist

import (
	"fmt"
	"math"
	"math/rand/v2"
)

// Maxwell is the Maxwellian energy spectrum p(E) ~ sqrt(E) exp(-E/Theta)
// with effective temperature Theta in eV.
type Maxwell struct {
	Theta float64
}

func NewMaxwell(theta float64) (*Maxwell, error) {
	if theta <= 0 {
		return nil, fmt.Errorf("maxwell: temperature must be positive, got %f", theta)
	}
	return &Maxwell{Theta: theta}, nil
}

func (m *Maxwell) Sample(rng *rand.Rand) float64 {
	return maxwellSample(m.Theta, rng)
}

// maxwellSample draws from a Maxwellian with temperature theta using the
// rule E = -theta*(ln r1 + ln r2 * cos^2(pi/2 r3)).
func maxwellSample(theta float64, rng *rand.Rand) float64 {
	r1 := rng.Float64()
	r2 := rng.Float64()
	r3 := rng.Float64()
	c := math.Cos(math.Pi / 2 * r3)
	return -theta * (math.Log(r1) + math.Log(r2)*c*c)
}

// Watt is the Watt fission spectrum p(E) ~ exp(-E/a) sinh(sqrt(bE)),
// parametrized by a (eV) and b (1/eV).
type Watt struct {
	A float64
	B float64
}

func NewWatt(a, b float64) (*Watt, error) {
	if a <= 0 || b <= 0 {
		return nil, fmt.Errorf("watt: parameters must be positive, got a=%f b=%f", a, b)
	}
	return &Watt{A: a, B: b}, nil
}

// Sample uses the Maxwellian-shift algorithm: draw w from a Maxwellian at
// temperature a, then E = w + a^2 b/4 + (2u-1) sqrt(a^2 b w).
func (w *Watt) Sample(rng *rand.Rand) float64 {
	m := maxwellSample(w.A, rng)
	u := 2*rng.Float64() - 1
	return m + w.A*w.A*w.B/4 + u*math.Sqrt(w.A*w.A*w.B*m)
}

// Muir is the Gaussian fusion peak of mean energy E0 (eV), reactant-to-
// neutron mass ratio MRat, and ion temperature KT (eV). The width follows
// the Brysk formula sigma = sqrt(2 E0 kT / mRat); for DT neutrons
// (E0 = 14.08 MeV, mRat = 5) it reproduces the 177 sqrt(Ti) keV FWHM.
type Muir struct {
	E0   float64
	MRat float64
	KT   float64
}

func NewMuir(e0, mRat, kt float64) (*Muir, error) {
	if e0 <= 0 || mRat <= 0 || kt <= 0 {
		return nil, fmt.Errorf("muir: parameters must be positive, got e0=%f mRat=%f kt=%f", e0, mRat, kt)
	}
	return &Muir{E0: e0, MRat: mRat, KT: kt}, nil
}

// StdDev is the Brysk thermal broadening width in eV.
func (m *Muir) StdDev() float64 {
	return math.Sqrt(2 * m.E0 * m.KT / m.MRat)
}

func (m *Muir) Sample(rng *rand.Rand) float64 {
	return m.E0 + m.StdDev()*rng.NormFloat64()
}

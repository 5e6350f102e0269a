package plasma

import "math"

// Bosch-Hale parametrization of the D-T fusion reactivity,
// Nucl. Fusion 32 (1992) 611, table VII. Valid for 0.2-100 keV.
const (
	bgSqrtKeV = 34.3827  // Gamow constant, sqrt(keV)
	mrc2KeV   = 1124656  // reduced mass energy, keV
	c1        = 1.17302e-9
	c2        = 1.51361e-2
	c3        = 7.51886e-2
	c4        = 4.60643e-3
	c5        = 1.35e-2
	c6        = -1.0675e-4
	c7        = 1.366e-5
)

// Reactivity returns the Maxwellian-averaged D-T reactivity <sigma v> in
// cm^3/s for an ion temperature kT in keV. Non-positive temperatures give 0.
func Reactivity(kT float64) float64 {
	if kT <= 0 {
		return 0
	}
	theta := kT / (1 - kT*(c2+kT*(c4+kT*c6))/(1+kT*(c3+kT*(c5+kT*c7))))
	xi := math.Cbrt(bgSqrtKeV * bgSqrtKeV / (4 * theta))
	return c1 * theta * math.Sqrt(xi/(mrc2KeV*kT*kT*kT)) * math.Exp(-3*xi)
}

// Package dose estimates the unshielded dose a distance from an isotropic
// point source: particle fluence over the sphere at that distance times an
// ICRP-116 fluence-to-dose coefficient at the nearest tabulated energy.
package dose

import (
	"fmt"
	"math"
)

// Abridged ICRP-116 anterior-posterior fluence-to-dose coefficients for
// neutrons, pSv cm^2 per particle. AP is the worst-case orientation; at
// 14.1 MeV the conversion is 495 pSv cm^2 per neutron.
var neutronAP = []struct {
	energy float64 // eV
	coeff  float64 // pSv cm^2
}{
	{2.5e-2, 8.2},
	{1e2, 12.0},
	{1e4, 46.0},
	{1e5, 103.0},
	{1e6, 294.0},
	{2e6, 352.0},
	{5e6, 405.0},
	{1e7, 440.0},
	{1.41e7, 495.0},
	{2e7, 520.0},
}

// Coefficient returns the AP neutron fluence-to-dose coefficient (Sv cm^2)
// at the tabulated energy closest to energy (eV).
func Coefficient(energy float64) float64 {
	best := neutronAP[0]
	for _, row := range neutronAP[1:] {
		if math.Abs(row.energy-energy) < math.Abs(best.energy-energy) {
			best = row
		}
	}
	return best.coeff * 1e-12
}

// Estimate is the dose in Sv at distance cm from a point source emitting
// the given number of particles of the given energy (eV), assuming no
// shielding.
func Estimate(particles float64, distance float64, energy float64) (float64, error) {
	if particles < 0 {
		return 0, fmt.Errorf("dose: negative particle count %f", particles)
	}
	if distance <= 0 {
		return 0, fmt.Errorf("dose: distance must be positive, got %f", distance)
	}
	fluence := particles / (4 * math.Pi * distance * distance)
	return fluence * Coefficient(energy), nil
}

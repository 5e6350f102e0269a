package config

import "math"

// Presets are ready-made source configurations covering the common cases:
// monoenergetic and spectral point sources, the fixed-radius ring, and an
// ITER-scale H-mode plasma discretized into 50 sub-sources.
var Presets = map[string]*Config{
	"point-dt": {
		Source: SourceConfig{
			Type: "point",
			Name: "point-dt",
			Energy: EnergyConfig{
				Type:  "discrete",
				Value: DTNeutronEnergy,
			},
		},
		Particles: DefaultParticles,
		Seed:      DefaultSeed,
		Bins:      DefaultBins,
	},
	"point-watt": {
		Source: SourceConfig{
			Type: "point",
			Name: "point-watt",
			// thermal fission of U-235
			Energy: EnergyConfig{
				Type: "watt",
				A:    0.988e6,
				B:    2.249e-6,
			},
		},
		Particles: DefaultParticles,
		Seed:      DefaultSeed,
		Bins:      DefaultBins,
	},
	"point-muir": {
		Source: SourceConfig{
			Type: "point",
			Name: "point-muir",
			// D-T fusion peak at 20 keV ion temperature
			Energy: EnergyConfig{
				Type: "muir",
				E0:   14.08e6,
				MRat: 5.0,
				KT:   2e4,
			},
		},
		Particles: DefaultParticles,
		Seed:      DefaultSeed,
		Bins:      DefaultBins,
	},
	"ring": {
		Source: SourceConfig{
			Type: "ring",
			Name: "ring",
			Ring: RingConfig{
				Radius:  10,
				Z:       0,
				PhiLow:  0,
				PhiHigh: 2 * math.Pi,
			},
			Energy: EnergyConfig{
				Type: "muir",
				E0:   14.08e6,
				MRat: 5.0,
				KT:   2e4,
			},
		},
		Particles: DefaultParticles,
		Seed:      DefaultSeed,
		Bins:      DefaultBins,
	},
	"tokamak": {
		Source: SourceConfig{
			Type: "plasma",
			Name: "tokamak",
			Plasma: PlasmaConfig{
				MajorRadius:     906,
				MinorRadius:     292.258,
				Elongation:      1.557,
				Triangularity:   0.270,
				PedestalRadius:  0.8 * 292.258,
				ShafranovFactor: 44.789,

				IonDensityCentre:     1.09e20,
				IonDensityPedestal:   1.09e20,
				IonDensitySeparatrix: 3e19,
				IonDensityPeaking:    1,

				IonTemperatureCentre:     45.9,
				IonTemperaturePedestal:   6.09,
				IonTemperatureSeparatrix: 0.1,
				IonTemperaturePeaking:    8.06,
				IonTemperatureBeta:       6,

				Mode:       "H",
				SampleSize: 50,
				AngleStart: 0,
				AngleEnd:   2 * math.Pi,
			},
		},
		Particles: DefaultParticles,
		Seed:      DefaultSeed,
		Bins:      DefaultBins,
	},
}

func GetPreset(name string) *Config {
	cfg, ok := Presets[name]
	if !ok {
		return nil
	}
	return cfg
}

func ListPresets() []string {
	names := make([]string, 0, len(Presets))
	for name := range Presets {
		names = append(names, name)
	}
	return names
}

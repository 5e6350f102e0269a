package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/san-kum/srcsim/internal/dist"
	"github.com/san-kum/srcsim/internal/plasma"
	"github.com/san-kum/srcsim/internal/source"
	"github.com/san-kum/srcsim/internal/space"
)

const (
	DefaultParticles = 5000
	DefaultBins      = 40
	DefaultSeed      = 42

	// D-T fusion neutron birth energy in eV.
	DTNeutronEnergy = 14.1e6
)

type Config struct {
	Source    SourceConfig `yaml:"source"`
	Particles int          `yaml:"particles"`
	Seed      int64        `yaml:"seed"`
	Bins      int          `yaml:"bins"`
}

type SourceConfig struct {
	Type     string         `yaml:"type"` // point, ring, plasma
	Name     string         `yaml:"name"`
	Position PositionConfig `yaml:"position"`
	Energy   EnergyConfig   `yaml:"energy"`
	Ring     RingConfig     `yaml:"ring"`
	Plasma   PlasmaConfig   `yaml:"plasma"`
}

type PositionConfig struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
	Z float64 `yaml:"z"`
}

type EnergyConfig struct {
	Type   string  `yaml:"type"` // discrete, uniform, normal, maxwell, watt, muir
	Value  float64 `yaml:"value"`
	Low    float64 `yaml:"low"`
	High   float64 `yaml:"high"`
	Mean   float64 `yaml:"mean"`
	StdDev float64 `yaml:"std_dev"`
	Theta  float64 `yaml:"theta"`
	A      float64 `yaml:"a"`
	B      float64 `yaml:"b"`
	E0     float64 `yaml:"e0"`
	MRat   float64 `yaml:"m_rat"`
	KT     float64 `yaml:"kt"`
}

type RingConfig struct {
	Radius  float64        `yaml:"radius"`
	Z       float64        `yaml:"z"`
	PhiLow  float64        `yaml:"phi_low"`
	PhiHigh float64        `yaml:"phi_high"`
	Origin  PositionConfig `yaml:"origin"`
}

type PlasmaConfig struct {
	MajorRadius     float64 `yaml:"major_radius"`
	MinorRadius     float64 `yaml:"minor_radius"`
	Elongation      float64 `yaml:"elongation"`
	Triangularity   float64 `yaml:"triangularity"`
	PedestalRadius  float64 `yaml:"pedestal_radius"`
	ShafranovFactor float64 `yaml:"shafranov_factor"`

	IonDensityCentre     float64 `yaml:"ion_density_centre"`
	IonDensityPedestal   float64 `yaml:"ion_density_pedestal"`
	IonDensitySeparatrix float64 `yaml:"ion_density_separatrix"`
	IonDensityPeaking    float64 `yaml:"ion_density_peaking"`

	IonTemperatureCentre     float64 `yaml:"ion_temperature_centre"`
	IonTemperaturePedestal   float64 `yaml:"ion_temperature_pedestal"`
	IonTemperatureSeparatrix float64 `yaml:"ion_temperature_separatrix"`
	IonTemperaturePeaking    float64 `yaml:"ion_temperature_peaking"`
	IonTemperatureBeta       float64 `yaml:"ion_temperature_beta"`

	Mode       string  `yaml:"mode"`
	SampleSize int     `yaml:"sample_size"`
	AngleStart float64 `yaml:"angle_start"`
	AngleEnd   float64 `yaml:"angle_end"`
}

func DefaultConfig() *Config {
	return &Config{
		Source: SourceConfig{
			Type: "point",
			Name: "point",
			Energy: EnergyConfig{
				Type:  "discrete",
				Value: DTNeutronEnergy,
			},
		},
		Particles: DefaultParticles,
		Seed:      DefaultSeed,
		Bins:      DefaultBins,
	}
}

func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func Save(path string, cfg *Config) error {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// BuildSources turns the configuration into source descriptors: one for a
// point or ring source, the full sub-source ensemble for a plasma.
func (c *Config) BuildSources() ([]*source.Source, error) {
	name := c.Source.Name
	if name == "" {
		name = c.Source.Type
	}

	switch c.Source.Type {
	case "point":
		energy, err := c.Source.Energy.Build()
		if err != nil {
			return nil, err
		}
		s, err := source.NewPoint(name, c.Source.Position.X, c.Source.Position.Y, c.Source.Position.Z, energy)
		if err != nil {
			return nil, err
		}
		return []*source.Source{s}, nil

	case "ring":
		energy, err := c.Source.Energy.Build()
		if err != nil {
			return nil, err
		}
		r := c.Source.Ring
		phiHigh := r.PhiHigh
		if phiHigh == 0 {
			phiHigh = 2 * math.Pi
		}
		phi, err := dist.NewUniform(r.PhiLow, phiHigh)
		if err != nil {
			return nil, err
		}
		origin := space.Position{X: r.Origin.X, Y: r.Origin.Y, Z: r.Origin.Z}
		s, err := source.NewRing(name, r.Radius, r.Z, phi, origin, energy)
		if err != nil {
			return nil, err
		}
		return []*source.Source{s}, nil

	case "plasma":
		tok, err := c.Source.Plasma.Build(c.Seed)
		if err != nil {
			return nil, err
		}
		return tok.MakeSources()

	default:
		return nil, fmt.Errorf("unknown source type: %s", c.Source.Type)
	}
}

// Build constructs the configured energy rule.
func (e *EnergyConfig) Build() (dist.Univariate, error) {
	switch e.Type {
	case "discrete":
		return dist.Delta(e.Value), nil
	case "uniform":
		return dist.NewUniform(e.Low, e.High)
	case "normal":
		return dist.NewNormal(e.Mean, e.StdDev)
	case "maxwell":
		return dist.NewMaxwell(e.Theta)
	case "watt":
		return dist.NewWatt(e.A, e.B)
	case "muir":
		return dist.NewMuir(e.E0, e.MRat, e.KT)
	default:
		return nil, fmt.Errorf("unknown energy distribution: %s", e.Type)
	}
}

// Build constructs the tokamak model behind the plasma configuration.
func (p *PlasmaConfig) Build(seed int64) (*plasma.Tokamak, error) {
	angleEnd := p.AngleEnd
	if angleEnd == 0 {
		angleEnd = 2 * math.Pi
	}
	return plasma.NewTokamak(plasma.Tokamak{
		MajorRadius:     p.MajorRadius,
		MinorRadius:     p.MinorRadius,
		Elongation:      p.Elongation,
		Triangularity:   p.Triangularity,
		PedestalRadius:  p.PedestalRadius,
		ShafranovFactor: p.ShafranovFactor,

		IonDensityCentre:     p.IonDensityCentre,
		IonDensityPedestal:   p.IonDensityPedestal,
		IonDensitySeparatrix: p.IonDensitySeparatrix,
		IonDensityPeaking:    p.IonDensityPeaking,

		IonTemperatureCentre:     p.IonTemperatureCentre,
		IonTemperaturePedestal:   p.IonTemperaturePedestal,
		IonTemperatureSeparatrix: p.IonTemperatureSeparatrix,
		IonTemperaturePeaking:    p.IonTemperaturePeaking,
		IonTemperatureBeta:       p.IonTemperatureBeta,

		Mode:       plasma.Mode(p.Mode),
		SampleSize: p.SampleSize,
		AngleStart: p.AngleStart,
		AngleEnd:   angleEnd,

		Seed: seed,
	})
}

package config

import (
	"math"
	"path/filepath"
	"testing"

	"github.com/san-kum/srcsim/internal/dist"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Source.Type != "point" {
		t.Errorf("expected point source, got %s", cfg.Source.Type)
	}
	if cfg.Particles <= 0 {
		t.Error("particle count should be positive")
	}
	if cfg.Bins <= 0 {
		t.Error("bin count should be positive")
	}
}

func TestGetPreset(t *testing.T) {
	cfg := GetPreset("ring")
	if cfg == nil {
		t.Fatal("expected preset, got nil")
	}
	if cfg.Source.Ring.Radius != 10 {
		t.Errorf("expected ring radius 10, got %f", cfg.Source.Ring.Radius)
	}
	if cfg.Source.Ring.Z != 0 {
		t.Errorf("expected ring z 0, got %f", cfg.Source.Ring.Z)
	}
}

func TestGetPreset_NotFound(t *testing.T) {
	if cfg := GetPreset("nonexistent"); cfg != nil {
		t.Error("expected nil for nonexistent preset")
	}
}

func TestListPresets(t *testing.T) {
	presets := ListPresets()
	if len(presets) == 0 {
		t.Error("expected presets")
	}
}

func TestBuildSourcesPoint(t *testing.T) {
	cfg := GetPreset("point-dt")
	sources, err := cfg.BuildSources()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(sources) != 1 {
		t.Fatalf("expected 1 source, got %d", len(sources))
	}

	e := sources[0].Energy.Sample(dist.NewRand(1))
	if e != DTNeutronEnergy {
		t.Errorf("expected %g eV, got %g", DTNeutronEnergy, e)
	}
}

func TestBuildSourcesRing(t *testing.T) {
	cfg := GetPreset("ring")
	sources, err := cfg.BuildSources()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}

	rng := dist.NewRand(2)
	for i := 0; i < 1000; i++ {
		pos := sources[0].Space.Sample(rng)
		if math.Abs(pos.R()-10) > 1e-9 {
			t.Fatalf("ring radius %f, expected 10", pos.R())
		}
		if pos.Z != 0 {
			t.Fatalf("ring z %f, expected 0", pos.Z)
		}
	}
}

func TestBuildSourcesPlasma(t *testing.T) {
	cfg := GetPreset("tokamak")
	sources, err := cfg.BuildSources()
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if len(sources) != cfg.Source.Plasma.SampleSize {
		t.Errorf("expected %d sub-sources, got %d", cfg.Source.Plasma.SampleSize, len(sources))
	}
}

func TestBuildSourcesUnknownType(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Source.Type = "cube"
	if _, err := cfg.BuildSources(); err == nil {
		t.Error("expected error for unknown source type")
	}
}

func TestEnergyConfigUnknownType(t *testing.T) {
	e := EnergyConfig{Type: "gaussianish"}
	if _, err := e.Build(); err == nil {
		t.Error("expected error for unknown energy distribution")
	}
}

func TestLoadSave(t *testing.T) {
	path := filepath.Join(t.TempDir(), "source.yaml")

	cfg := GetPreset("point-watt")
	if err := Save(path, cfg); err != nil {
		t.Fatalf("save failed: %v", err)
	}

	loaded, err := Load(path)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if loaded.Source.Energy.Type != "watt" {
		t.Errorf("expected watt energy, got %s", loaded.Source.Energy.Type)
	}
	if loaded.Source.Energy.A != 0.988e6 {
		t.Errorf("expected a=0.988e6, got %g", loaded.Source.Energy.A)
	}
}

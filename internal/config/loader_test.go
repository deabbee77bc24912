package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := Parse(DefaultYAML())
	if err != nil {
		t.Fatalf("embedded defaults failed to parse: %v", err)
	}

	def := DefaultConfig()
	if cfg.View != def.View {
		t.Errorf("view = %+v, expected %+v", cfg.View, def.View)
	}
	if cfg.Hero != def.Hero {
		t.Errorf("hero = %+v, expected %+v", cfg.Hero, def.Hero)
	}
	if cfg.Spawner.Interval != 1.125 {
		t.Errorf("spawner.interval = %v, expected 1.125", cfg.Spawner.Interval)
	}
	if len(cfg.Spawner.Tiers) != 3 {
		t.Fatalf("expected 3 tiers, got %d", len(cfg.Spawner.Tiers))
	}
	for i, tier := range def.Spawner.Tiers {
		if cfg.Spawner.Tiers[i] != tier {
			t.Errorf("tier %d = %+v, expected %+v", i, cfg.Spawner.Tiers[i], tier)
		}
	}
}

func TestLoadCustomPathOverridesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("rocket:\n  speed: 900\ntiming:\n  fixed_step: 0.01\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Rocket.Speed != 900 {
		t.Errorf("rocket.speed = %v, expected 900", cfg.Rocket.Speed)
	}
	if cfg.Timing.FixedStep != 0.01 {
		t.Errorf("timing.fixed_step = %v, expected 0.01", cfg.Timing.FixedStep)
	}
	// Untouched keys keep defaults
	if cfg.Rocket.Width != 48 || cfg.Hero.Mass != 200 {
		t.Errorf("unspecified keys should keep defaults, got rocket.width=%v hero.mass=%v", cfg.Rocket.Width, cfg.Hero.Mass)
	}
}

func TestLoadMissingCustomPath(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Load() with missing file should fail")
	}
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected wrapped ErrNotExist, got %v", err)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"zero view", func(c *Config) { c.View.Width = 0 }},
		{"zero mass", func(c *Config) { c.Hero.Mass = 0 }},
		{"no frames", func(c *Config) { c.Hero.FrameCount = 0 }},
		{"ground above view", func(c *Config) { c.Hero.GroundRatio = 1.5 }},
		{"rocket going left", func(c *Config) { c.Rocket.Speed = -1 }},
		{"no tiers", func(c *Config) { c.Spawner.Tiers = nil }},
		{"tier going right", func(c *Config) { c.Spawner.Tiers[1].Speed = 10 }},
		{"negative step", func(c *Config) { c.Timing.FixedStep = -0.1 }},
		{"fixed step without substeps", func(c *Config) {
			c.Timing.FixedStep = 0.01
			c.Timing.MaxSubsteps = 0
		}},
		{"loud", func(c *Config) { c.Audio.Volume = 2 }},
	}

	if err := DefaultConfig().Validate(); err != nil {
		t.Fatalf("default config should be valid: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if !errors.Is(err, ErrInvalid) {
				t.Errorf("Validate() = %v, expected ErrInvalid", err)
			}
		})
	}
}

func TestParseRejectsInvalid(t *testing.T) {
	if _, err := Parse([]byte("spawner:\n  interval: 0\n")); err == nil {
		t.Error("Parse should reject zero interval")
	}
	if _, err := Parse([]byte("view: [")); err == nil {
		t.Error("Parse should reject malformed YAML")
	}
}

func TestMarshalRoundTrip(t *testing.T) {
	data, err := Marshal(DefaultConfig())
	if err != nil {
		t.Fatalf("Marshal() failed: %v", err)
	}
	cfg, err := Parse(data)
	if err != nil {
		t.Fatalf("Parse(Marshal()) failed: %v", err)
	}
	if cfg.Hero != DefaultConfig().Hero {
		t.Errorf("hero changed through marshal: %+v", cfg.Hero)
	}
}

package config

import (
	_ "embed"
)

//go:embed defaults/bazooka.yaml
var defaultYAML []byte

// DefaultConfig returns the built-in configuration. It mirrors
// defaults/bazooka.yaml and is used when the embedded file cannot be parsed.
func DefaultConfig() Config {
	return Config{
		View: ViewConfig{
			Width:  1024,
			Height: 768,
		},
		Hero: HeroConfig{
			XRatio:       0.25,
			StartYRatio:  0.5,
			GroundRatio:  0.75,
			Mass:         200,
			Gravity:      9.8,
			JumpImpulse:  750,
			FrameCount:   4,
			AnimDuration: 1.0,
			Width:        92,
			Height:       126,
		},
		Rocket: RocketConfig{
			Speed:  400,
			Width:  48,
			Height: 16,
		},
		Enemy: EnemyConfig{
			Width:  80,
			Height: 64,
		},
		Spawner: SpawnerConfig{
			Interval: 1.125,
			Tiers: []TierConfig{
				{YRatio: 0.75, Speed: -400},
				{YRatio: 0.60, Speed: -550},
				{YRatio: 0.40, Speed: -650},
			},
		},
		Timing: TimingConfig{
			FixedStep:   0,
			MaxSubsteps: 5,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.6,
			Music:   true,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Package config provides YAML-based configuration loading for Tiny Bazooka.
package config

// Config contains all tunables for the game and its presentation.
type Config struct {
	View    ViewConfig    `yaml:"view"`
	Hero    HeroConfig    `yaml:"hero"`
	Rocket  RocketConfig  `yaml:"rocket"`
	Enemy   EnemyConfig   `yaml:"enemy"`
	Spawner SpawnerConfig `yaml:"spawner"`
	Timing  TimingConfig  `yaml:"timing"`
	Audio   AudioConfig   `yaml:"audio"`
}

// ViewConfig defines the size of the playfield in world units.
type ViewConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// HeroConfig defines hero placement, physics and animation.
type HeroConfig struct {
	XRatio       float64 `yaml:"x_ratio"`       // Horizontal position as fraction of view width
	StartYRatio  float64 `yaml:"start_y_ratio"` // Spawn height as fraction of view height
	GroundRatio  float64 `yaml:"ground_ratio"`  // Ground line as fraction of view height
	Mass         float64 `yaml:"mass"`
	Gravity      float64 `yaml:"gravity"`
	JumpImpulse  float64 `yaml:"jump_impulse"`
	FrameCount   int     `yaml:"frame_count"`
	AnimDuration float64 `yaml:"anim_duration"` // Seconds for one full animation cycle
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
}

// RocketConfig defines projectile speed and footprint.
type RocketConfig struct {
	Speed  float64 `yaml:"speed"`
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// EnemyConfig defines the enemy footprint. Speeds come from spawner tiers.
type EnemyConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// SpawnerConfig defines enemy cadence and the lane/speed tiers.
type SpawnerConfig struct {
	Interval float64      `yaml:"interval"`
	Tiers    []TierConfig `yaml:"tiers"`
}

// TierConfig is one (lane height, speed) preset.
type TierConfig struct {
	YRatio float64 `yaml:"y_ratio"`
	Speed  float64 `yaml:"speed"`
}

// TimingConfig selects between variable and fixed-step simulation.
type TimingConfig struct {
	FixedStep   float64 `yaml:"fixed_step"`   // Seconds per step; 0 = one step per frame
	MaxSubsteps int     `yaml:"max_substeps"` // Cap on fixed steps per frame
}

// AudioConfig controls the synthesized sound cues.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0 - 1.0
	Music   bool    `yaml:"music"`
}

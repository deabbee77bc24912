package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid config")

// Load loads the game configuration.
// Search order: customPath -> ~/.bazooka/configs/bazooka.yaml -> ./configs/bazooka.yaml -> embedded default.
// Files are layered over the defaults, so a file may set only the keys it cares about.
func Load(customPath string) (Config, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return Config{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := Parse(data)
		if err != nil {
			return Config{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("bazooka.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := Parse(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "bazooka.yaml")); err == nil {
		if cfg, err := Parse(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := Parse(defaultYAML)
	if err != nil {
		return DefaultConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// Parse decodes YAML on top of DefaultConfig and validates the result.
func Parse(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate checks that the configuration can drive a simulation.
func (c Config) Validate() error {
	switch {
	case c.View.Width <= 0 || c.View.Height <= 0:
		return fmt.Errorf("%w: view size must be positive, got %vx%v", ErrInvalid, c.View.Width, c.View.Height)
	case c.Hero.Mass <= 0:
		return fmt.Errorf("%w: hero.mass must be positive", ErrInvalid)
	case c.Hero.FrameCount <= 0:
		return fmt.Errorf("%w: hero.frame_count must be positive", ErrInvalid)
	case c.Hero.AnimDuration <= 0:
		return fmt.Errorf("%w: hero.anim_duration must be positive", ErrInvalid)
	case c.Hero.Width <= 0 || c.Hero.Height <= 0:
		return fmt.Errorf("%w: hero size must be positive", ErrInvalid)
	case c.Hero.GroundRatio <= 0 || c.Hero.GroundRatio > 1:
		return fmt.Errorf("%w: hero.ground_ratio must be in (0, 1]", ErrInvalid)
	case c.Rocket.Speed <= 0:
		return fmt.Errorf("%w: rocket.speed must be positive (rightward)", ErrInvalid)
	case c.Rocket.Width <= 0 || c.Rocket.Height <= 0:
		return fmt.Errorf("%w: rocket size must be positive", ErrInvalid)
	case c.Enemy.Width <= 0 || c.Enemy.Height <= 0:
		return fmt.Errorf("%w: enemy size must be positive", ErrInvalid)
	case c.Spawner.Interval <= 0:
		return fmt.Errorf("%w: spawner.interval must be positive", ErrInvalid)
	case len(c.Spawner.Tiers) == 0:
		return fmt.Errorf("%w: spawner.tiers must not be empty", ErrInvalid)
	case c.Timing.FixedStep < 0:
		return fmt.Errorf("%w: timing.fixed_step must not be negative", ErrInvalid)
	case c.Timing.FixedStep > 0 && c.Timing.MaxSubsteps <= 0:
		return fmt.Errorf("%w: timing.max_substeps must be positive with a fixed step", ErrInvalid)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: audio.volume must be in [0, 1]", ErrInvalid)
	}

	for i, tier := range c.Spawner.Tiers {
		if tier.Speed >= 0 {
			return fmt.Errorf("%w: spawner.tiers[%d].speed must be negative (leftward)", ErrInvalid, i)
		}
		if tier.YRatio < 0 || tier.YRatio > 1 {
			return fmt.Errorf("%w: spawner.tiers[%d].y_ratio must be in [0, 1]", ErrInvalid, i)
		}
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".bazooka", "configs", filename)
}

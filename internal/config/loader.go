package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-breakout/internal/core"
)

// LoadBreakout loads Breakout configuration.
// Search order: customPath -> ~/.arcade/configs/breakout.yaml -> ./configs/breakout.yaml -> embedded default
//
// Files are applied on top of the built-in defaults, so a file only needs the
// keys it wants to change.
func LoadBreakout(customPath string) (BreakoutConfig, error) {
	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		cfg, err := ParseBreakout(data)
		if err != nil {
			return BreakoutConfig{}, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory
	if userCfgPath := userConfigPath("breakout.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if cfg, err := ParseBreakout(data); err == nil {
				return cfg, nil
			}
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile(filepath.Join("configs", "breakout.yaml")); err == nil {
		if cfg, err := ParseBreakout(data); err == nil {
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg, err := ParseBreakout(defaultBreakoutYAML)
	if err != nil {
		return DefaultBreakoutConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// ParseBreakout decodes YAML on top of the defaults and validates the result.
func ParseBreakout(data []byte) (BreakoutConfig, error) {
	cfg := DefaultBreakoutConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return BreakoutConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return BreakoutConfig{}, err
	}
	return cfg, nil
}

// Marshal encodes the configuration as YAML.
func (c BreakoutConfig) Marshal() ([]byte, error) {
	return yaml.Marshal(c)
}

// Validate checks that the configuration describes a playable arena.
func (c BreakoutConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	colour := func(name, v string) {
		if _, err := core.ParseColour(v); err != nil {
			errs = append(errs, fmt.Errorf("%s: %w", name, err))
		}
	}

	positive("arena.width", c.Arena.Width)
	positive("arena.height", c.Arena.Height)
	positive("ball.size", c.Ball.Size)
	positive("ball.speed", c.Ball.Speed)
	positive("bat.width", c.Bat.Width)
	positive("bat.height", c.Bat.Height)
	positive("bat.step", c.Bat.Step)
	positive("bricks.width", c.Bricks.Width)
	positive("bricks.height", c.Bricks.Height)
	colour("ball.colour", c.Ball.Colour)
	colour("bat.colour", c.Bat.Colour)

	if c.Bat.MinX > c.Bat.MaxX {
		errs = append(errs, fmt.Errorf("bat.min_x (%v) must not exceed bat.max_x (%v)", c.Bat.MinX, c.Bat.MaxX))
	}
	if c.Bricks.Separation < 0 {
		errs = append(errs, fmt.Errorf("bricks.separation must not be negative, got %v", c.Bricks.Separation))
	}
	if c.Bricks.PerRow < 0 || c.Bricks.RowsPerBand < 0 {
		errs = append(errs, errors.New("bricks.per_row and bricks.rows_per_band must not be negative"))
	}
	for i, band := range c.Bricks.Bands {
		colour(fmt.Sprintf("bricks.bands[%d]", i), band)
	}
	if c.Timing.NormalDelayMS <= 0 || c.Timing.FastDelayMS <= 0 {
		errs = append(errs, fmt.Errorf("timing delays must be positive, got normal=%d fast=%d",
			c.Timing.NormalDelayMS, c.Timing.FastDelayMS))
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}

// ApplyBreakoutPreset modifies the config based on a difficulty preset.
func ApplyBreakoutPreset(cfg *BreakoutConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Timing.NormalDelayMS = 30
		cfg.Ball.Speed = 2
		cfg.Bat.Step = 8
	case DifficultyHard:
		cfg.Timing.NormalDelayMS = 12
		cfg.Ball.Speed = 4
		cfg.Bat.Step = 4
	}
}

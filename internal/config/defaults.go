package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultBreakoutYAML []byte

// DefaultBreakoutConfig returns the default Breakout configuration.
func DefaultBreakoutConfig() BreakoutConfig {
	return BreakoutConfig{
		Arena: ArenaConfig{
			Width:  600,
			Height: 800,
			Border: 6,
			Menu:   40,
		},
		Ball: BallConfig{
			Size:   18,
			StartX: 450,
			StartY: 450,
			Speed:  3,
			Colour: "red",
		},
		Bat: BatConfig{
			Width:   150,
			Height:  7.5,
			Step:    5,
			MinX:    10,
			MaxX:    440,
			OffsetY: 45, // Bat top sits 45 units above the arena bottom
			Colour:  "white",
		},
		Bricks: BricksConfig{
			Width:       48,
			Height:      20,
			Separation:  4,
			XOffset:     42,
			YOffset:     100,
			PerRow:      10,
			RowsPerBand: 2,
			Bands:       []string{"pink", "blue", "green", "orange", "cyan", "magenta", "yellow"},
		},
		Scoring: ScoringConfig{
			HitBrick:  50,
			HitBottom: -200,
		},
		Timing: TimingConfig{
			NormalDelayMS: 20,
			FastDelayMS:   2,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultBreakoutYAML
}

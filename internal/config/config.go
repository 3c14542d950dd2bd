// Package config provides YAML-based game configuration loading and
// difficulty presets for the breakout engine.
package config

import "time"

// BreakoutConfig contains all configuration for the Breakout engine.
type BreakoutConfig struct {
	Arena   ArenaConfig   `yaml:"arena"`
	Ball    BallConfig    `yaml:"ball"`
	Bat     BatConfig     `yaml:"bat"`
	Bricks  BricksConfig  `yaml:"bricks"`
	Scoring ScoringConfig `yaml:"scoring"`
	Timing  TimingConfig  `yaml:"timing"`
}

// ArenaConfig defines the playing area in arena units.
type ArenaConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Border float64 `yaml:"border"` // Offset of the left, right and bottom walls
	Menu   float64 `yaml:"menu"`   // Offset of the top wall, leaves room for the header
}

// BallConfig defines the ball.
type BallConfig struct {
	Size   float64 `yaml:"size"`
	StartX float64 `yaml:"start_x"`
	StartY float64 `yaml:"start_y"`
	Speed  float64 `yaml:"speed"` // Distance moved per tick on each axis
	Colour string  `yaml:"colour"`
}

// BatConfig defines the player's bat.
type BatConfig struct {
	Width   float64 `yaml:"width"`
	Height  float64 `yaml:"height"`
	Step    float64 `yaml:"step"`     // Distance moved per command
	MinX    float64 `yaml:"min_x"`    // Leftmost allowed x position
	MaxX    float64 `yaml:"max_x"`    // Rightmost allowed x position
	OffsetY float64 `yaml:"offset_y"` // Distance of the bat's top edge above the arena bottom
	Colour  string  `yaml:"colour"`
}

// BricksConfig defines the brick wall layout.
type BricksConfig struct {
	Width       float64  `yaml:"width"`
	Height      float64  `yaml:"height"`
	Separation  float64  `yaml:"separation"`
	XOffset     float64  `yaml:"x_offset"`
	YOffset     float64  `yaml:"y_offset"`
	PerRow      int      `yaml:"per_row"`
	RowsPerBand int      `yaml:"rows_per_band"`
	Bands       []string `yaml:"bands"` // One colour per band, top to bottom
}

// ScoringConfig defines score changes.
type ScoringConfig struct {
	HitBrick  int `yaml:"hit_brick"`
	HitBottom int `yaml:"hit_bottom"`
}

// TimingConfig defines tick intervals in milliseconds.
type TimingConfig struct {
	NormalDelayMS int `yaml:"normal_delay_ms"`
	FastDelayMS   int `yaml:"fast_delay_ms"`
}

// NormalDelay returns the normal tick interval.
func (t TimingConfig) NormalDelay() time.Duration {
	return time.Duration(t.NormalDelayMS) * time.Millisecond
}

// FastDelay returns the fast tick interval.
func (t TimingConfig) FastDelay() time.Duration {
	return time.Duration(t.FastDelayMS) * time.Millisecond
}

// BrickCount returns how many bricks the layout produces.
func (b BricksConfig) BrickCount() int {
	return len(b.Bands) * b.RowsPerBand * b.PerRow
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficulty resolves a preset name. An empty name yields an empty preset.
func ParseDifficulty(name string) (DifficultyPreset, bool) {
	switch DifficultyPreset(name) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard:
		return DifficultyPreset(name), true
	case "":
		return "", true
	default:
		return "", false
	}
}

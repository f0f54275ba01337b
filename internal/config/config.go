// Package config loads per-program YAML configuration and computes
// difficulty progression for the arcade.
package config

import (
	"errors"
	"fmt"
)

// BlocksConfig configures the falling-block game.
type BlocksConfig struct {
	Field      FieldConfig      `yaml:"field"`
	Gravity    GravityConfig    `yaml:"gravity"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// FieldConfig sets the playing grid size.
type FieldConfig struct {
	Rows int `yaml:"rows"`
	Cols int `yaml:"cols"`
}

// GravityConfig controls how often the falling figure drops on its own.
type GravityConfig struct {
	FallEvery    int `yaml:"fall_every"`     // Ticks between automatic drops at level 0
	MinFallEvery int `yaml:"min_fall_every"` // Fastest allowed interval at max difficulty
}

// SortConfig configures the sorting benchmark.
type SortConfig struct {
	Length int `yaml:"length"`
	Min    int `yaml:"min"` // Inclusive lower bound of generated values
	Max    int `yaml:"max"` // Exclusive upper bound of generated values
}

// GuessConfig configures the guessing game.
type GuessConfig struct {
	Attempts  int     `yaml:"attempts"`
	Tolerance float64 `yaml:"tolerance"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // Score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Extra speed at max difficulty (1.0 = twice as fast)
}

// DifficultyPreset is a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ErrUnknownPreset is returned by ParsePreset for unrecognized names.
var ErrUnknownPreset = errors.New("config: unknown difficulty preset")

// ParsePreset validates a preset name. The empty string means "use the
// config file as is" and is accepted.
func ParsePreset(name string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(name); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	}
	return "", fmt.Errorf("%w %q (want easy, normal, hard or fixed)", ErrUnknownPreset, name)
}

// InitialLevelForPreset returns the starting level for a preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyNormal:
		return 0.3
	case DifficultyHard:
		return 0.7
	default:
		return 0.0
	}
}

// Validate reports the first invalid setting.
func (c BlocksConfig) Validate() error {
	switch {
	case c.Field.Rows < 2 || c.Field.Cols < 4:
		return fmt.Errorf("config: field %dx%d is too small (min 2x4)", c.Field.Rows, c.Field.Cols)
	case c.Gravity.FallEvery <= 0:
		return fmt.Errorf("config: gravity.fall_every must be positive, got %d", c.Gravity.FallEvery)
	case c.Gravity.MinFallEvery <= 0 || c.Gravity.MinFallEvery > c.Gravity.FallEvery:
		return fmt.Errorf("config: gravity.min_fall_every must be in [1, %d], got %d", c.Gravity.FallEvery, c.Gravity.MinFallEvery)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c SortConfig) Validate() error {
	switch {
	case c.Length <= 0:
		return fmt.Errorf("config: sort length must be positive, got %d", c.Length)
	case c.Max <= c.Min:
		return fmt.Errorf("config: sort range [%d, %d) is empty", c.Min, c.Max)
	}
	return nil
}

// Validate reports the first invalid setting.
func (c GuessConfig) Validate() error {
	switch {
	case c.Attempts <= 0:
		return fmt.Errorf("config: guess attempts must be positive, got %d", c.Attempts)
	case c.Tolerance <= 0:
		return fmt.Errorf("config: guess tolerance must be positive, got %g", c.Tolerance)
	}
	return nil
}

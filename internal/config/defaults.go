package config

import (
	_ "embed"
)

//go:embed defaults/blocks.yaml
var defaultBlocksYAML []byte

//go:embed defaults/sort.yaml
var defaultSortYAML []byte

//go:embed defaults/guess.yaml
var defaultGuessYAML []byte

// DefaultBlocksConfig returns the built-in block game configuration.
func DefaultBlocksConfig() BlocksConfig {
	return BlocksConfig{
		Field: FieldConfig{
			Rows: 10,
			Cols: 10,
		},
		Gravity: GravityConfig{
			FallEvery:    30,
			MinFallEvery: 5,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 200,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 2.0,
			},
		},
	}
}

// DefaultSortConfig returns the built-in sorting benchmark configuration.
func DefaultSortConfig() SortConfig {
	return SortConfig{
		Length: 10,
		Min:    -100,
		Max:    100,
	}
}

// DefaultGuessConfig returns the built-in guessing game configuration.
func DefaultGuessConfig() GuessConfig {
	return GuessConfig{
		Attempts:  3,
		Tolerance: 0.0001,
	}
}

package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadBlocks loads the block game configuration.
// Search order: customPath -> ~/.arcade/configs/blocks.yaml -> ./configs/blocks.yaml -> embedded default
func LoadBlocks(customPath string) (BlocksConfig, error) {
	return load("blocks.yaml", customPath, searchDirs(), defaultBlocksYAML, DefaultBlocksConfig, BlocksConfig.Validate)
}

// LoadSort loads the sorting benchmark configuration.
// Search order: customPath -> ~/.arcade/configs/sort.yaml -> ./configs/sort.yaml -> embedded default
func LoadSort(customPath string) (SortConfig, error) {
	return load("sort.yaml", customPath, searchDirs(), defaultSortYAML, DefaultSortConfig, SortConfig.Validate)
}

// LoadGuess loads the guessing game configuration.
// Search order: customPath -> ~/.arcade/configs/guess.yaml -> ./configs/guess.yaml -> embedded default
func LoadGuess(customPath string) (GuessConfig, error) {
	return load("guess.yaml", customPath, searchDirs(), defaultGuessYAML, DefaultGuessConfig, GuessConfig.Validate)
}

// load resolves one config document. An explicit customPath must exist and
// be valid; files found in the search directories are skipped when they are
// unreadable or invalid. Documents are decoded over the hard-coded defaults
// so partial files only override what they mention.
func load[T any](name, customPath string, dirs []string, embedded []byte, defaults func() T, validate func(T) error) (T, error) {
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return defaults(), fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		cfg, err := decode(data, defaults, validate)
		if err != nil {
			return defaults(), fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		return cfg, nil
	}

	for _, dir := range dirs {
		data, err := os.ReadFile(filepath.Join(dir, name))
		if err != nil {
			continue
		}
		if cfg, err := decode(data, defaults, validate); err == nil {
			return cfg, nil
		}
	}

	if cfg, err := decode(embedded, defaults, validate); err == nil {
		return cfg, nil
	}
	return defaults(), nil // Fallback to hardcoded if the embedded file is broken
}

func decode[T any](data []byte, defaults func() T, validate func(T) error) (T, error) {
	cfg := defaults()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, err
	}
	if err := validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// searchDirs returns the user and local config directories, in that order.
func searchDirs() []string {
	var dirs []string
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".arcade", "configs"))
	}
	return append(dirs, "configs")
}

// ApplyBlocksPreset modifies the config based on a difficulty preset.
// The empty preset leaves the config untouched.
func ApplyBlocksPreset(cfg *BlocksConfig, preset DifficultyPreset) {
	switch preset {
	case "":
		return
	case DifficultyFixed:
		cfg.Difficulty.Enabled = false
		return
	}

	cfg.Difficulty.Enabled = true
	cfg.Difficulty.InitialLevel = InitialLevelForPreset(preset)

	// Adjust base gravity so the first figures already feel different
	switch preset {
	case DifficultyEasy:
		cfg.Gravity.FallEvery += cfg.Gravity.FallEvery / 3
	case DifficultyHard:
		cfg.Gravity.FallEvery = max(cfg.Gravity.MinFallEvery, cfg.Gravity.FallEvery*2/3)
	}
}

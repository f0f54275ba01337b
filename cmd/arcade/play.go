package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blockfield/arcade/internal/config"
	"github.com/blockfield/arcade/internal/core"
	"github.com/blockfield/arcade/internal/games/tetris"
	"github.com/blockfield/arcade/internal/platform/tui"
	"github.com/blockfield/arcade/internal/registry"
)

var (
	flagConfig     string
	flagDifficulty string
)

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a game",
	Long: `Start playing the specified game.

Controls:
  A/Left     - Move left
  D/Right    - Move right
  S/Down     - Move down one row
  Space      - Move down one row
  W/Up       - Rotate clockwise
  P          - Pause
  R          - Restart (after game over)
  B/Esc      - Back
  Q/Ctrl+C   - Quit

Difficulty options:
  easy   - Slower falling, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Faster falling, starts at 70% difficulty
  fixed  - No progression, stays at config's initial level

Examples:
  arcade play tetris
  arcade play tetris --difficulty easy
  arcade play tetris --seed 42
  arcade play tetris --config ./my-blocks.yaml`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	addGameFlags(playCmd)
}

func addGameFlags(cmd *cobra.Command) {
	cmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

// applyGameSettings hands --config and --difficulty to the games.
func applyGameSettings() error {
	preset, err := config.ParsePreset(flagDifficulty)
	if err != nil {
		return err
	}
	tetris.SetConfigPath(flagConfig)
	tetris.SetDifficultyPreset(preset)
	return nil
}

// runtimeConfig starts from the core defaults and applies the terminal
// size and the global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, ok := terminalSize(); ok {
		cfg.ScreenW, cfg.ScreenH = w, h
	}
	if flagFPS > 0 {
		cfg.TickRate = flagFPS
	}
	cfg.Seed = flagSeed
	return cfg
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		return fmt.Errorf("unknown game %q, run 'arcade list' to see available games", gameID)
	}
	if err := applyGameSettings(); err != nil {
		return err
	}

	game, err := registry.Create(gameID)
	if err != nil {
		return err
	}

	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Debug("starting game", "game", gameID, "seed", cfg.Seed, "fps", cfg.TickRate)

	if err := tui.Run(game, store, cfg); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}
	return nil
}

package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/blockfield/arcade/internal/config"
	"github.com/blockfield/arcade/internal/platform/tui"
	"github.com/blockfield/arcade/internal/registry"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the arcade with an interactive menu",
	Long: `Start the arcade in interactive menu mode.

Use arrow keys or j/k to navigate, Enter or a digit to select.
Everything returns to the menu when it ends.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  1-9          - Select by number
  Tab          - High scores
  Q            - Quit

Examples:
  arcade menu
  arcade menu --fps 60
  arcade menu --difficulty hard`,
	Args: cobra.NoArgs,
	RunE: runMenu,
}

func init() {
	addGameFlags(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) error {
	if err := applyGameSettings(); err != nil {
		return err
	}

	sortCfg, err := config.LoadSort("")
	if err != nil {
		logger.Warn("using default sort config", "err", err)
		sortCfg = config.DefaultSortConfig()
	}
	guessCfg, err := config.LoadGuess("")
	if err != nil {
		logger.Warn("using default guess config", "err", err)
		guessCfg = config.DefaultGuessConfig()
	}

	store := openStore()
	defer closeStore(store)

	cfg := runtimeConfig()

	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return err
		}
		cfg = result.Config
		if result.Quit {
			return nil
		}

		stay := true
		switch item := result.Item; item.Kind {
		case tui.ItemGame:
			game, err := registry.Create(item.GameID)
			if err != nil {
				return err
			}
			run := cfg
			if run.Seed == 0 {
				run.Seed = time.Now().UnixNano()
			}
			if err := tui.Run(game, store, run); err != nil {
				return fmt.Errorf("error running game: %w", err)
			}

		case tui.ItemGuess:
			stay, err = tui.RunGuess(guessCfg, store, cfg.ScreenW)

		case tui.ItemSort:
			stay, err = tui.RunSort(sortCfg, store, flagSeed, cfg.ScreenW)

		case tui.ItemScores:
			stay, err = tui.RunScoreboard(store, cfg.ScreenW, cfg.ScreenH)

		case tui.ItemAbout:
			stay, err = tui.RunAbout(cfg.ScreenW)
		}

		if err != nil {
			return err
		}
		if !stay {
			return nil
		}
	}
}

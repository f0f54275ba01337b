// arcade is a terminal arcade built around a falling-block puzzle.
//
// Usage:
//
//	arcade list              - List available games
//	arcade play <game>       - Play a game
//	arcade menu              - Start menu to pick games and programs
//	arcade console           - Plain text menu, one key per move
//	arcade sort              - Compare bubble sort and insertion sort
//	arcade guess             - Play the guessing game
//	arcade author            - Show author information
//
// Global flags:
//
//	--fps <rate>        - Set tick rate (default: 30)
//	--seed <value>      - Set RNG seed for reproducible gameplay
//	--log-level <level> - debug, info, warn or error (default: info)
//	--log-file <path>   - Write logs to a file (default: discarded)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/blockfield/arcade/internal/games/tetris"
	"github.com/blockfield/arcade/internal/logging"
	"github.com/blockfield/arcade/internal/platform/tui"
	"github.com/blockfield/arcade/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagLogLevel string
	flagLogFile  string

	logger  = logging.Discard()
	logFile io.Closer
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "arcade",
	Short: "Arcade - falling blocks and small console programs",
	Long: `Arcade is a terminal falling-block puzzle bundled with a guessing game,
a sorting benchmark and an author page.

Available commands:
  list     - Show all available games
  play     - Play a specific game directly
  menu     - Interactive menu
  console  - Plain text menu, one key per move
  sort     - Compare bubble sort and insertion sort
  guess    - Guess the result of a formula
  author   - Show author information

Scores are kept for the current session only.

Examples:
  arcade list
  arcade play tetris
  arcade menu --difficulty hard
  arcade console
  arcade play tetris --log-level debug --log-file arcade.log`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file (default: no logs)")

	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(consoleCmd)
	rootCmd.AddCommand(sortCmd)
	rootCmd.AddCommand(guessCmd)
	rootCmd.AddCommand(authorCmd)
}

// setupLogging builds the shared logger. Without --log-file logs are
// dropped so they never draw over the game.
func setupLogging(_ *cobra.Command, _ []string) error {
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		logger = logging.New(f, logging.Options{Level: flagLogLevel})
	}

	tetris.SetLogger(logger)
	tui.SetLogger(logger)
	log.SetDefault(logger)
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}

// openStore opens the session scoreboard. Programs keep working without
// it, so a failure is only logged.
func openStore() *storage.Store {
	store, err := storage.OpenMemory()
	if err != nil {
		logger.Warn("scores will not be recorded", "err", err)
		return nil
	}
	return store
}

func closeStore(store *storage.Store) {
	if store == nil {
		return
	}
	if err := store.Close(); err != nil {
		logger.Warn("cannot close score store", "err", err)
	}
}

// terminalSize returns the size of stdout. ok is false when stdout is not a
// terminal.
func terminalSize() (w, h int, ok bool) {
	w, h, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || w <= 0 || h <= 0 {
		return 0, 0, false
	}
	return w, h, true
}

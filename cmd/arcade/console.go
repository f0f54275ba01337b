package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/blockfield/arcade/internal/config"
	"github.com/blockfield/arcade/internal/console"
)

var consoleCmd = &cobra.Command{
	Use:   "console",
	Short: "Plain text menu with a turn-based falling-block game",
	Long: `Start the plain text menu:

  1. Guess the result
  2. About the author
  3. Array sorting
  4. Exit
  5. Tetris

In Tetris every key applies one move and redraws the field:
A left, D right, S or Space down, W rotate, Esc gives up.
When stdin is not a terminal, keys are read one character at a time.`,
	Args: cobra.NoArgs,
	RunE: runConsole,
}

func init() {
	consoleCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom field config YAML")
}

// newConsole wires a console to stdin and stdout with the loaded configs.
func newConsole(cmd *cobra.Command) (*console.Console, func()) {
	blocksCfg, err := config.LoadBlocks(flagConfig)
	if err != nil {
		logger.Warn("using default field config", "err", err)
		blocksCfg = config.DefaultBlocksConfig()
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

	var keys console.KeySource
	if term.IsTerminal(int(os.Stdin.Fd())) {
		keys = console.NewKeyboard(cmd.InOrStdin())
	} else {
		keys = console.NewReaderSource(cmd.InOrStdin())
	}

	store := openStore()
	c := console.New(console.Options{
		Input:  keys,
		Output: cmd.OutOrStdout(),
		Logger: logger,
		Store:  store,
		Seed:   flagSeed,
		Blocks: blocksCfg,
		Sort:   sortCfg,
		Guess:  guessCfg,
	})
	return c, func() { closeStore(store) }
}

func runConsole(cmd *cobra.Command, _ []string) error {
	c, done := newConsole(cmd)
	defer done()
	return c.Run()
}

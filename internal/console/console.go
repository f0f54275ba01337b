// Package console is the plain-text front end: a numbered menu over the
// guessing game, the author screen, the sorting benchmark and a turn-based
// falling-block game played one key at a time.
package console

import (
	"errors"
	"fmt"
	"io"
	"math/rand"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/blockfield/arcade/internal/about"
	"github.com/blockfield/arcade/internal/config"
	"github.com/blockfield/arcade/internal/logging"
	"github.com/blockfield/arcade/internal/storage"
)

// Rand is the randomness used for figures and benchmark arrays.
type Rand interface {
	Intn(n int) int
}

// Options configures a Console.
type Options struct {
	Input  KeySource
	Output io.Writer
	Logger *log.Logger
	Store  *storage.Store // Optional session scoreboard
	Seed   int64          // 0 picks a time-based seed

	Blocks config.BlocksConfig
	Sort   config.SortConfig
	Guess  config.GuessConfig
}

// Console runs the text menu. It is driven from a single goroutine.
type Console struct {
	in     KeySource
	out    io.Writer
	logger *log.Logger
	store  *storage.Store
	rng    Rand

	blocks config.BlocksConfig
	sort   config.SortConfig
	guess  config.GuessConfig
}

// New creates a console. Zero-valued configs fall back to the defaults.
func New(opts Options) *Console {
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = logging.Discard()
	}

	c := &Console{
		in:     opts.Input,
		out:    opts.Output,
		logger: logger.With("frontend", "console"),
		store:  opts.Store,
		rng:    rand.New(rand.NewSource(seed)),
		blocks: opts.Blocks,
		sort:   opts.Sort,
		guess:  opts.Guess,
	}
	if c.blocks.Field.Rows == 0 {
		c.blocks = config.DefaultBlocksConfig()
	}
	if c.sort.Length == 0 {
		c.sort = config.DefaultSortConfig()
	}
	if c.guess.Attempts == 0 {
		c.guess = config.DefaultGuessConfig()
	}
	return c
}

// SetSortLength overrides the benchmark array length.
func (c *Console) SetSortLength(n int) {
	if n > 0 {
		c.sort.Length = n
	}
}

const menu = `--- Program menu ---
1. Guess the result
2. About the author
3. Array sorting
4. Exit
5. Tetris
`

// Run shows the menu until the player confirms exit or input ends.
func (c *Console) Run() error {
	for {
		fmt.Fprint(c.out, menu)
		fmt.Fprint(c.out, "Choose a menu item: ")

		choice, err := c.in.ReadLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(c.out)
			return nil
		}
		if err != nil {
			return err
		}

		choice = strings.TrimSpace(choice)
		c.logger.Debug("menu choice", "choice", choice)

		switch choice {
		case "1":
			err = c.PlayGuess()
		case "2":
			c.ShowAuthor()
		case "3":
			err = c.RunSort()
		case "4":
			var exit bool
			exit, err = c.ConfirmExit()
			if err == nil && exit {
				return nil
			}
		case "5":
			err = c.PlayTetris()
		default:
			fmt.Fprintln(c.out, "Error! Enter a number from 1 to 5.")
		}

		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

// ConfirmExit asks until the answer is y or n and reports whether to exit.
func (c *Console) ConfirmExit() (bool, error) {
	fmt.Fprintln(c.out, "Are you sure you want to exit? [y/n]")
	for {
		line, err := c.in.ReadLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(line)) {
		case "y":
			fmt.Fprintln(c.out, "Program finished. Goodbye!")
			return true, nil
		case "n":
			fmt.Fprintln(c.out, "Returning to menu...")
			return false, nil
		default:
			fmt.Fprintln(c.out, "Input error. Enter 'y' to exit or 'n' to go back.")
		}
	}
}

// ShowAuthor prints the author information.
func (c *Console) ShowAuthor() {
	fmt.Fprintf(c.out, "--- %s ---\n", about.Title)
	fmt.Fprint(c.out, about.Text())
}

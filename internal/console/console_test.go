package console

import (
	"bytes"
	"io"
	"strings"
	"testing"

	"github.com/eiannone/keyboard"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockfield/arcade/internal/about"
	"github.com/blockfield/arcade/internal/blocks"
	"github.com/blockfield/arcade/internal/config"
	"github.com/blockfield/arcade/internal/games/tetris"
	"github.com/blockfield/arcade/internal/sorting"
	"github.com/blockfield/arcade/internal/storage"
)

// fixedRand always returns the same index.
type fixedRand int

func (r fixedRand) Intn(n int) int { return int(r) % n }

func newTestConsole(t *testing.T, input string, opts Options) (*Console, *bytes.Buffer) {
	t.Helper()
	var out bytes.Buffer
	opts.Input = NewReaderSource(strings.NewReader(input))
	opts.Output = &out
	opts.Seed = 42
	return New(opts), &out
}

func openStore(t *testing.T) *storage.Store {
	t.Helper()
	store, err := storage.OpenMemory()
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func smallField(rows, cols int) config.BlocksConfig {
	cfg := config.DefaultBlocksConfig()
	cfg.Field = config.FieldConfig{Rows: rows, Cols: cols}
	return cfg
}

func TestNewUsesDefaults(t *testing.T) {
	c := New(Options{Input: NewReaderSource(strings.NewReader("")), Output: io.Discard})
	assert.Equal(t, config.DefaultBlocksConfig(), c.blocks)
	assert.Equal(t, config.DefaultSortConfig(), c.sort)
	assert.Equal(t, config.DefaultGuessConfig(), c.guess)
}

func TestMenuInvalidChoiceAndExit(t *testing.T) {
	c, out := newTestConsole(t, "9\n\n4\nmaybe\nn\n 4 \nY\n", Options{})

	require.NoError(t, c.Run())

	got := out.String()
	assert.Equal(t, 2, strings.Count(got, "Error! Enter a number from 1 to 5."))
	assert.Equal(t, 2, strings.Count(got, "Are you sure you want to exit? [y/n]"))
	assert.Contains(t, got, "Input error. Enter 'y' to exit or 'n' to go back.")
	assert.Contains(t, got, "Returning to menu...")
	assert.True(t, strings.HasSuffix(got, "Program finished. Goodbye!\n"))
	assert.Equal(t, 4, strings.Count(got, "--- Program menu ---"))
}

func TestMenuEndsOnEOF(t *testing.T) {
	c, out := newTestConsole(t, "", Options{})
	require.NoError(t, c.Run())
	assert.Contains(t, out.String(), "5. Tetris")
}

func TestMenuAuthor(t *testing.T) {
	c, out := newTestConsole(t, "2\n", Options{})
	require.NoError(t, c.Run())
	assert.Contains(t, out.String(), "--- "+about.Title+" ---")
	assert.Contains(t, out.String(), about.Lines()[0])
}

func TestGuessWin(t *testing.T) {
	// Answer(0, 1) = 5π·ln(1) / (sin(0)+1) = 0.
	store := openStore(t)
	c, out := newTestConsole(t, "0\nB\n1\nabc\n0,00001\n", Options{Store: store})

	require.NoError(t, c.PlayGuess())

	got := out.String()
	assert.Equal(t, 2, strings.Count(got, "Enter a number:"))
	assert.Contains(t, got, "You have 3 attempts.")
	assert.Contains(t, got, "Congratulations! You guessed the correct answer: 0")
	assert.NotContains(t, got, "You lost!")
	assert.Contains(t, got, "Rounds won this session: 1 of 1")
}

func TestGuessLose(t *testing.T) {
	c, out := newTestConsole(t, "0\n1\n1\n2\n3\n", Options{})

	require.NoError(t, c.PlayGuess())

	got := out.String()
	assert.Contains(t, got, "Wrong. Attempts left: 2")
	assert.Contains(t, got, "Wrong. Attempts left: 1")
	assert.Contains(t, got, "Wrong. Attempts left: 0")
	assert.Contains(t, got, "You lost! The correct answer: 0")
	assert.NotContains(t, got, "Rounds won", "no store, no record")
}

func TestGuessInputEnds(t *testing.T) {
	c, _ := newTestConsole(t, "0\n1\n5\n", Options{})
	assert.ErrorIs(t, c.PlayGuess(), io.EOF)
}

func TestSortRecordsBenchmark(t *testing.T) {
	store := openStore(t)
	c, out := newTestConsole(t, "", Options{
		Store: store,
		Sort:  config.SortConfig{Length: 5, Min: 0, Max: 10},
	})

	require.NoError(t, c.RunSort())

	got := out.String()
	assert.Contains(t, got, "--- Array sorting ---")
	assert.Contains(t, got, "Bubble sort time:")
	assert.Contains(t, got, "is faster.")
	assert.NotContains(t, got, sorting.TooLongNotice)

	runs, err := store.RecentBenchmarks(10)
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, 5, runs[0].Length)
}

func TestSortTooLongToDisplay(t *testing.T) {
	c, out := newTestConsole(t, "", Options{Sort: config.SortConfig{Length: 11, Min: -100, Max: 100}})

	require.NoError(t, c.RunSort())
	assert.Equal(t, 3, strings.Count(out.String(), sorting.TooLongNotice))
}

func TestTetrisClearsLine(t *testing.T) {
	store := openStore(t)
	c, out := newTestConsole(t, "x ss\x1b", Options{Store: store, Blocks: smallField(2, 4)})
	c.rng = fixedRand(blocks.ShapeLine)

	require.NoError(t, c.PlayTetris())

	got := out.String()
	assert.True(t, strings.HasPrefix(got, "Welcome to Tetris!\n"))
	assert.Equal(t, 1, strings.Count(got, "Invalid input. Valid keys: A, D, S, W or Space."))
	assert.Contains(t, got, "Lines cleared: 1")
	assert.Equal(t, 1, strings.Count(got, "Game Over"))
	assert.Contains(t, got, "Final Score: 10")
	assert.Contains(t, got, "Session best: 10")

	top, err := store.TopScores(tetris.ID, 10)
	require.NoError(t, err)
	require.Len(t, top, 1)
	assert.Equal(t, 10, top[0].Score)
	assert.Equal(t, 1, top[0].Lines)
}

func TestTetrisEndsWhenTopRowFilled(t *testing.T) {
	c, out := newTestConsole(t, "s", Options{Blocks: smallField(2, 4)})
	c.rng = fixedRand(blocks.ShapeSquare)

	require.NoError(t, c.PlayTetris())

	got := out.String()
	assert.Equal(t, 1, strings.Count(got, "Game Over"))
	assert.Contains(t, got, "Final Score: 0")
	assert.NotContains(t, got, "Session best", "no store, no record")
}

func TestTetrisInputEnds(t *testing.T) {
	c, out := newTestConsole(t, "a", Options{})

	err := c.PlayTetris()
	assert.ErrorIs(t, err, io.EOF)
	assert.Equal(t, 1, strings.Count(out.String(), "Game Over"))
}

func TestTetrisRender(t *testing.T) {
	c, out := newTestConsole(t, "\x03", Options{Blocks: smallField(2, 4)})
	c.rng = fixedRand(blocks.ShapeSquare)

	require.NoError(t, c.PlayTetris())

	lines := strings.Split(out.String(), "\n")
	require.Greater(t, len(lines), 5)
	assert.Equal(t, "╔════════════╗", lines[1])
	assert.Equal(t, "║⬜ 🟦 🟦 ⬜ ║", lines[2])
	assert.Equal(t, "║⬜ 🟦 🟦 ⬜ ║", lines[3])
	assert.Equal(t, "╚════════════╝", lines[4])
	assert.Equal(t, "Score: 0", lines[5])
	assert.Equal(t, "Current figure: Square", lines[6])
}

func TestMenuPlaysTetris(t *testing.T) {
	c, out := newTestConsole(t, "5\ns\n4\ny\n", Options{Blocks: smallField(2, 4)})
	c.rng = fixedRand(blocks.ShapeSquare)

	require.NoError(t, c.Run())

	got := out.String()
	assert.Equal(t, 1, strings.Count(got, "Game Over"))
	assert.Contains(t, got, "Program finished. Goodbye!")
}

func TestReaderSource(t *testing.T) {
	src := NewReaderSource(strings.NewReader("first line\nw \n\x1bsecond"))

	line, err := src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "first line", line)

	ev, err := src.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, keyboard.KeyEvent{Rune: 'w'}, ev)

	ev, err = src.ReadKey()
	require.NoError(t, err)
	assert.Equal(t, keyboard.KeySpace, ev.Key)

	ev, err = src.ReadKey()
	require.NoError(t, err)
	assert.True(t, isQuitKey(ev))

	line, err = src.ReadLine()
	require.NoError(t, err)
	assert.Equal(t, "second", line)

	_, err = src.ReadLine()
	assert.ErrorIs(t, err, io.EOF)
	_, err = src.ReadKey()
	assert.ErrorIs(t, err, io.EOF)
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		ev   keyboard.KeyEvent
		want string
	}{
		{keyboard.KeyEvent{Rune: 'a'}, "a"},
		{keyboard.KeyEvent{Key: keyboard.KeySpace}, " "},
		{keyboard.KeyEvent{Key: keyboard.KeyArrowLeft}, "A"},
		{keyboard.KeyEvent{Key: keyboard.KeyArrowRight}, "D"},
		{keyboard.KeyEvent{Key: keyboard.KeyArrowDown}, "S"},
		{keyboard.KeyEvent{Key: keyboard.KeyArrowUp}, "W"},
		{keyboard.KeyEvent{Key: keyboard.KeyEnter}, ""},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, keyName(tc.ev), "keyName(%+v)", tc.ev)
	}
}

func TestSetSortLength(t *testing.T) {
	c, out := newTestConsole(t, "", Options{})
	c.SetSortLength(3)
	c.SetSortLength(-1)

	require.NoError(t, c.RunSort())
	lines := strings.Split(out.String(), "\n")
	require.Greater(t, len(lines), 2)
	assert.Len(t, strings.Split(lines[2], ", "), 3)
}

package console

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/blockfield/arcade/internal/blocks"
	"github.com/blockfield/arcade/internal/games/tetris"
	"github.com/blockfield/arcade/internal/storage"
)

const (
	filledGlyph = "🟦 "
	emptyGlyph  = "⬜ "
)

// errQuit ends a game early on Esc or Ctrl+C.
var errQuit = errors.New("console: game abandoned")

// PlayTetris runs one turn-based game: every accepted key applies a single
// move and redraws the field. Gravity only acts through S and Space.
func (c *Console) PlayTetris() error {
	fmt.Fprintln(c.out, "Welcome to Tetris!")

	field := blocks.NewField(c.blocks.Field.Rows, c.blocks.Field.Cols,
		blocks.WithLogger(c.logger),
	)
	runID := uuid.New()
	c.logger.Info("console game started", "run", runID)

	err := c.playField(field)
	switch {
	case errors.Is(err, errQuit), errors.Is(err, io.EOF):
		c.logger.Info("console game abandoned", "run", runID, "reason", err)
	case err != nil:
		return err
	}

	fmt.Fprintln(c.out, "Game Over")
	fmt.Fprintf(c.out, "Final Score: %d\n", field.Score())
	c.logger.Info("console game over", "run", runID, "score", field.Score(), "lines", field.Lines())

	c.recordScore(runID, field)

	// Input ran out mid-game; let the menu see it too.
	if errors.Is(err, io.EOF) {
		return io.EOF
	}
	return nil
}

// playField spawns figures while the top row is free and feeds moves to
// the falling one until it locks.
func (c *Console) playField(field *blocks.Field) error {
	for field.HasSpaceForNewFigure() {
		fig := blocks.CreateRandomFigure(c.rng)
		if err := field.SpawnFigure(fig); err != nil {
			if errors.Is(err, blocks.ErrGameOver) {
				return nil
			}
			return err
		}
		c.renderField(field)

		for field.CanMoveCurrentFigure() {
			m, err := c.readMove()
			if err != nil {
				return err
			}
			res := field.HandleMove(m)
			c.renderField(field)
			if res.LinesCleared > 0 {
				fmt.Fprintf(c.out, "Lines cleared: %d\n", res.LinesCleared)
			}
		}
	}
	return nil
}

// readMove prompts until a valid control key is pressed.
func (c *Console) readMove() (blocks.Movement, error) {
	for {
		fmt.Fprint(c.out, "Enter your move (A/D/S/W/Space): ")
		ev, err := c.in.ReadKey()
		fmt.Fprintln(c.out)
		if err != nil {
			return 0, err
		}
		if isQuitKey(ev) {
			return 0, errQuit
		}
		if m, ok := blocks.ParseMovement(keyName(ev)); ok {
			return m, nil
		}
		fmt.Fprintln(c.out, "Invalid input. Valid keys: A, D, S, W or Space.")
	}
}

// renderField draws the locked cells and the falling figure inside a
// double-line border, followed by the score and the current figure.
func (c *Console) renderField(field *blocks.Field) {
	var sb strings.Builder
	border := strings.Repeat("═", field.Cols()*3)

	sb.WriteString("╔" + border + "╗\n")
	for r := range field.Rows() {
		sb.WriteString("║")
		for col := range field.Cols() {
			if field.Occupied(r, col) {
				sb.WriteString(filledGlyph)
			} else {
				sb.WriteString(emptyGlyph)
			}
		}
		sb.WriteString("║\n")
	}
	sb.WriteString("╚" + border + "╝\n")
	fmt.Fprintf(&sb, "Score: %d\n", field.Score())

	if p, ok := field.Active(); ok {
		fmt.Fprintf(&sb, "Current figure: %s\n%s\n", p.Figure.Kind(), p.Figure.Grid())
	}
	io.WriteString(c.out, sb.String())
}

func (c *Console) recordScore(runID uuid.UUID, field *blocks.Field) {
	if c.store == nil {
		return
	}
	_, err := c.store.SaveScore(storage.ScoreEntry{
		RunID:  runID,
		GameID: tetris.ID,
		Score:  field.Score(),
		Lines:  field.Lines(),
	})
	if err != nil {
		c.logger.Warn("cannot record score", "err", err)
		return
	}
	best, err := c.store.HighScore(tetris.ID)
	if err != nil {
		c.logger.Warn("cannot read high score", "err", err)
		return
	}
	fmt.Fprintf(c.out, "Session best: %d\n", best)
}

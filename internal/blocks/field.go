package blocks

import (
	"fmt"
	"io"

	"github.com/charmbracelet/log"
)

// LineBonus is the score awarded for each cleared row.
const LineBonus = 10

// Position is the anchor of a figure's local grid inside the field.
type Position struct {
	Row int
	Col int
}

// Shifted returns the position moved by the given deltas.
func (p Position) Shifted(dRow, dCol int) Position {
	return Position{Row: p.Row + dRow, Col: p.Col + dCol}
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// Piece is the falling figure together with its anchor.
type Piece struct {
	Figure   Figure
	Position Position
}

// Covers reports whether the piece occupies field cell (row, col).
func (p Piece) Covers(row, col int) bool {
	return p.Figure.Occupied(row-p.Position.Row, col-p.Position.Col)
}

// MoveResult describes what HandleMove did. Rejected moves leave every flag
// false; they are not errors.
type MoveResult struct {
	Movement     Movement  // Movement that was applied (Down after a sideways conversion)
	Moved        bool      // Anchor changed
	Rotated      bool      // Figure was replaced by its rotation
	Converted    bool      // Sideways move was blocked and retried as Down
	Locked       bool      // Figure was written into the grid
	LinesCleared int       // Rows cleared by the lock
	Collision    Collision // Classification that stopped the move, if any
}

// Field is the playing grid plus the falling piece and score.
// A Field is owned by a single game session and is not safe for concurrent use.
type Field struct {
	rows   int
	cols   int
	cells  [][]bool
	score  int
	lines  int
	bonus  int
	active *Piece // nil when no figure is falling
	over   bool
	logger *log.Logger
}

// Option configures a Field.
type Option func(*Field)

// WithLogger routes debug traces of moves, locks and clears to logger.
func WithLogger(logger *log.Logger) Option {
	return func(f *Field) {
		if logger != nil {
			f.logger = logger
		}
	}
}

// WithLineBonus overrides the per-row bonus.
func WithLineBonus(bonus int) Option {
	return func(f *Field) {
		f.bonus = bonus
	}
}

// NewField creates an empty field. Dimensions must be positive.
func NewField(rows, cols int, opts ...Option) *Field {
	if rows <= 0 || cols <= 0 {
		panic(fmt.Sprintf("blocks: invalid field size %dx%d", rows, cols))
	}

	f := &Field{
		rows:   rows,
		cols:   cols,
		cells:  make([][]bool, rows),
		bonus:  LineBonus,
		logger: log.New(io.Discard),
	}
	for r := range f.cells {
		f.cells[r] = make([]bool, cols)
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// NewFieldFromGrid creates a field whose locked cells are copied from g.
func NewFieldFromGrid(g Grid, opts ...Option) *Field {
	f := NewField(g.Rows(), g.Cols(), opts...)
	for r := range f.rows {
		for c := range f.cols {
			f.cells[r][c] = g.At(r, c)
		}
	}
	return f
}

// Rows returns the field height.
func (f *Field) Rows() int { return f.rows }

// Cols returns the field width.
func (f *Field) Cols() int { return f.cols }

// Score returns the accumulated score.
func (f *Field) Score() int { return f.score }

// Lines returns the total number of cleared rows.
func (f *Field) Lines() int { return f.lines }

// GameOver reports whether a spawn has failed.
func (f *Field) GameOver() bool { return f.over }

// Cell reports whether a locked block occupies (row, col).
func (f *Field) Cell(row, col int) bool {
	if row < 0 || row >= f.rows || col < 0 || col >= f.cols {
		return false
	}
	return f.cells[row][col]
}

// Occupied reports whether (row, col) holds a locked block or part of the
// falling piece.
func (f *Field) Occupied(row, col int) bool {
	if f.Cell(row, col) {
		return true
	}
	return f.active != nil && f.active.Covers(row, col)
}

// Grid returns a snapshot of the locked cells.
func (f *Field) Grid() Grid {
	g := NewGrid(f.rows, f.cols)
	for r := range f.rows {
		copy(g.cells[r*f.cols:(r+1)*f.cols], f.cells[r])
	}
	return g
}

// Active returns the falling piece, if any.
func (f *Field) Active() (Piece, bool) {
	if f.active == nil {
		return Piece{}, false
	}
	return *f.active, true
}

// CanMoveCurrentFigure reports whether a figure is falling.
func (f *Field) CanMoveCurrentFigure() bool {
	return f.active != nil
}

// HasSpaceForNewFigure reports whether the top row is completely empty.
func (f *Field) HasSpaceForNewFigure() bool {
	for _, filled := range f.cells[0] {
		if filled {
			return false
		}
	}
	return true
}

// SpawnFigure places fig on row 0, horizontally centered. If that placement
// collides the field becomes game over and a *GameOverError is returned.
func (f *Field) SpawnFigure(fig Figure) error {
	pos := Position{Row: 0, Col: (f.cols - fig.Width()) / 2}

	if f.over {
		return &GameOverError{Kind: fig.Kind(), Collision: f.Classify(pos, fig), Score: f.score}
	}

	if c := f.Classify(pos, fig); c != CollisionNone {
		f.over = true
		f.active = nil
		f.logger.Debug("spawn blocked", "figure", fig.Kind(), "at", pos, "collision", c)
		return &GameOverError{Kind: fig.Kind(), Collision: c, Score: f.score}
	}

	f.active = &Piece{Figure: fig, Position: pos}
	f.logger.Debug("spawned figure", "figure", fig.Kind(), "at", pos)
	return nil
}

// HandleMove applies one movement to the falling piece. Moves that cannot
// be satisfied leave the state unchanged. A blocked Down locks the piece.
func (f *Field) HandleMove(m Movement) MoveResult {
	if f.active == nil {
		return MoveResult{Movement: m}
	}

	switch m {
	case MoveRotate:
		return f.rotate()
	case MoveLeft, MoveRight, MoveDown:
		return f.shift(m)
	default:
		return MoveResult{Movement: m}
	}
}

func (f *Field) rotate() MoveResult {
	cur := *f.active
	rotated := cur.Figure.RotateClockwise()

	c := f.Classify(cur.Position, rotated)
	if c != CollisionNone {
		f.logger.Debug("rotation blocked", "figure", cur.Figure.Kind(), "at", cur.Position, "collision", c)
		return MoveResult{Movement: MoveRotate, Collision: c}
	}

	f.active = &Piece{Figure: rotated, Position: cur.Position}
	return MoveResult{Movement: MoveRotate, Rotated: true}
}

func (f *Field) shift(m Movement) MoveResult {
	cur := *f.active

	var next Position
	switch m {
	case MoveLeft:
		next = cur.Position.Shifted(0, -1)
	case MoveRight:
		next = cur.Position.Shifted(0, 1)
	default:
		next = cur.Position.Shifted(1, 0)
	}

	c := f.Classify(next, cur.Figure)
	switch {
	case c == CollisionNone:
		f.active = &Piece{Figure: cur.Figure, Position: next}
		f.logger.Debug("move", "dir", m, "from", cur.Position, "to", next)
		return MoveResult{Movement: m, Moved: true}

	case m != MoveDown && (c == CollisionLeft || c == CollisionRight):
		// Can't slide further sideways; gravity still applies this tick.
		f.logger.Debug("sideways blocked, moving down instead", "dir", m, "collision", c)
		res := f.shift(MoveDown)
		res.Converted = true
		return res

	case m == MoveDown && (c == CollisionBottom || c == CollisionBlock):
		return f.lock(cur, c)
	}

	return MoveResult{Movement: m, Collision: c}
}

// lock writes the piece into the grid at its current position, clears the
// falling piece and then removes full rows.
func (f *Field) lock(p Piece, c Collision) MoveResult {
	for i := range p.Figure.Height() {
		for j := range p.Figure.Width() {
			if p.Figure.Occupied(i, j) {
				f.cells[p.Position.Row+i][p.Position.Col+j] = true
			}
		}
	}
	f.active = nil
	f.logger.Debug("locked figure", "figure", p.Figure.Kind(), "at", p.Position)

	cleared := f.clearFullRows()
	return MoveResult{Movement: MoveDown, Locked: true, LinesCleared: cleared, Collision: c}
}

// clearFullRows scans top to bottom. Each full row is emptied, the rows
// above it drop by one and the bonus is awarded. Shifting only touches rows
// at or above the current one, so the scan can simply continue downward.
func (f *Field) clearFullRows() int {
	cleared := 0
	for row := range f.rows {
		if !f.rowFull(row) {
			continue
		}
		f.dropRowsAbove(row)
		f.score += f.bonus
		f.lines++
		cleared++
	}
	if cleared > 0 {
		f.logger.Debug("rows cleared", "count", cleared, "score", f.score)
	}
	return cleared
}

func (f *Field) rowFull(row int) bool {
	for _, filled := range f.cells[row] {
		if !filled {
			return false
		}
	}
	return true
}

// dropRowsAbove empties row, moves every row above it down by one and
// reuses the emptied slice as the new top row.
func (f *Field) dropRowsAbove(row int) {
	emptied := f.cells[row]
	clear(emptied)
	copy(f.cells[1:row+1], f.cells[:row])
	f.cells[0] = emptied
}

// Classify tests fig anchored at pos against the field bounds and locked
// cells. Occupied cells are scanned top to bottom, left to right, and the
// first failing cell decides the result. Per cell the checks run in order:
// row < 0 (Bottom), row past the last row (Block), col < 0 (Left),
// col past the last column (Right), locked cell (Block).
func (f *Field) Classify(pos Position, fig Figure) Collision {
	for i := range fig.Height() {
		for j := range fig.Width() {
			if !fig.Occupied(i, j) {
				continue
			}
			row, col := pos.Row+i, pos.Col+j
			switch {
			case row < 0:
				return CollisionBottom
			case row >= f.rows:
				return CollisionBlock
			case col < 0:
				return CollisionLeft
			case col >= f.cols:
				return CollisionRight
			case f.cells[row][col]:
				return CollisionBlock
			}
		}
	}
	return CollisionNone
}

// Package blocks implements the falling-block puzzle simulation: the shape
// catalog, immutable figures, the random figure factory and the playing
// field state machine (spawn, move, rotate, lock, clear rows).
//
// The package has no terminal or timing dependencies. Drivers (TUI, console)
// feed it decoded movements and read its state back for rendering.
package blocks

import (
	"fmt"
	"strings"
)

// Grid is an immutable rectangular occupancy matrix. Row 0 is the top row.
// The zero value is an empty 0x0 grid.
type Grid struct {
	rows  int
	cols  int
	cells []bool // row-major
}

// NewGrid returns an empty grid with the given dimensions.
func NewGrid(rows, cols int) Grid {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("blocks: invalid grid size %dx%d", rows, cols))
	}
	return Grid{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
}

// ParseGrid builds a grid from text rows. '#' and '1' mark occupied cells,
// '.' and '0' mark empty ones. All rows must have the same length.
func ParseGrid(lines ...string) (Grid, error) {
	if len(lines) == 0 {
		return Grid{}, nil
	}

	cols := len(lines[0])
	g := NewGrid(len(lines), cols)
	for r, line := range lines {
		if len(line) != cols {
			return Grid{}, fmt.Errorf("blocks: row %d has %d cells, expected %d", r, len(line), cols)
		}
		for c, ch := range []byte(line) {
			switch ch {
			case '#', '1':
				g.cells[r*cols+c] = true
			case '.', '0':
			default:
				return Grid{}, fmt.Errorf("blocks: unexpected cell %q at row %d col %d", ch, r, c)
			}
		}
	}
	return g, nil
}

// MustParseGrid is like ParseGrid but panics on malformed input.
func MustParseGrid(lines ...string) Grid {
	g, err := ParseGrid(lines...)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g Grid) Cols() int { return g.cols }

// At reports whether the cell is occupied. Out-of-range cells are empty.
func (g Grid) At(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return false
	}
	return g.cells[row*g.cols+col]
}

// Count returns the number of occupied cells.
func (g Grid) Count() int {
	n := 0
	for _, v := range g.cells {
		if v {
			n++
		}
	}
	return n
}

// Equal reports whether both grids have the same dimensions and occupancy.
func (g Grid) Equal(other Grid) bool {
	if g.rows != other.rows || g.cols != other.cols {
		return false
	}
	for i := range g.cells {
		if g.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// Clone returns a grid that shares no storage with g.
func (g Grid) Clone() Grid {
	c := Grid{rows: g.rows, cols: g.cols, cells: make([]bool, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// String renders the grid with '#' for occupied and '.' for empty cells.
func (g Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.rows * (g.cols + 1))
	for r := range g.rows {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for c := range g.cols {
			if g.cells[r*g.cols+c] {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

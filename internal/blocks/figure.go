package blocks

import "fmt"

// Figure is an oriented piece. It is a value: rotation returns a new Figure
// and never changes the receiver.
type Figure struct {
	grid Grid
	kind ShapeKind
}

// NewFigure builds a figure of the given kind from an arbitrary grid.
// Most callers want CreateFigure instead.
func NewFigure(kind ShapeKind, grid Grid) Figure {
	return Figure{grid: grid.Clone(), kind: kind}
}

// Kind returns the shape kind. Rotation preserves it.
func (f Figure) Kind() ShapeKind { return f.kind }

// Width is the number of columns of the local grid.
func (f Figure) Width() int { return f.grid.Cols() }

// Height is the number of rows of the local grid.
func (f Figure) Height() int { return f.grid.Rows() }

// Grid returns the local occupancy grid.
func (f Figure) Grid() Grid { return f.grid }

// Occupied reports whether local cell (row, col) is filled.
func (f Figure) Occupied(row, col int) bool { return f.grid.At(row, col) }

// RotateClockwise returns the figure turned 90 degrees clockwise.
// Source cell (i, j) of an HxW grid lands on (j, H-1-i) of the WxH result.
func (f Figure) RotateClockwise() Figure {
	h, w := f.Height(), f.Width()
	rotated := NewGrid(w, h)
	for i := range h {
		for j := range w {
			rotated.cells[j*h+(h-1-i)] = f.grid.cells[i*w+j]
		}
	}
	return Figure{grid: rotated, kind: f.kind}
}

// Equal reports whether both figures have the same kind and occupancy.
func (f Figure) Equal(other Figure) bool {
	return f.kind == other.kind && f.grid.Equal(other.grid)
}

func (f Figure) String() string {
	return fmt.Sprintf("%s %dx%d\n%s", f.kind, f.Height(), f.Width(), f.grid)
}

package blocks

import (
	"errors"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCatalogShapes(t *testing.T) {
	tests := []struct {
		kind ShapeKind
		want []string
	}{
		{ShapeSquare, []string{"##", "##"}},
		{ShapeLine, []string{"####"}},
		{ShapeL, []string{"##", "#.", "#."}},
		{ShapeJ, []string{"##", ".#", ".#"}},
		{ShapeZ, []string{".##", "##."}},
		{ShapeS, []string{"##.", ".##"}},
		{ShapeT, []string{"###", ".#."}},
	}

	require.Len(t, Kinds(), len(tests))

	for _, tc := range tests {
		t.Run(tc.kind.String(), func(t *testing.T) {
			require.True(t, tc.kind.Valid())
			got := ShapeFor(tc.kind)
			assert.True(t, got.Equal(MustParseGrid(tc.want...)), "ShapeFor(%s) =\n%s", tc.kind, got)
			assert.Equal(t, 4, got.Count(), "every canonical figure has four cells")
		})
	}
}

func TestShapeForReturnsCopies(t *testing.T) {
	a := ShapeFor(ShapeT)
	b := ShapeFor(ShapeT)
	require.True(t, a.Equal(b))

	a.cells[0] = false
	c := ShapeFor(ShapeT)
	assert.True(t, c.At(0, 0), "catalog must not be affected by callers")
	assert.True(t, b.At(0, 0))
}

func TestShapeForUnknownKind(t *testing.T) {
	assert.False(t, ShapeKind(99).Valid())
	assert.False(t, ShapeKind(-1).Valid())

	g := ShapeFor(ShapeKind(99))
	assert.Equal(t, 0, g.Rows())
	assert.Equal(t, 0, g.Cols())
}

func TestRotateClockwise(t *testing.T) {
	l, err := CreateFigure(ShapeL)
	require.NoError(t, err)

	r := l.RotateClockwise()
	assert.Equal(t, ShapeL, r.Kind())
	assert.Equal(t, 2, r.Height())
	assert.Equal(t, 3, r.Width())
	assert.True(t, r.Grid().Equal(MustParseGrid(
		"###",
		"..#",
	)), "rotated L =\n%s", r.Grid())

	// The source figure is a value and stays as it was.
	assert.True(t, l.Grid().Equal(MustParseGrid("##", "#.", "#.")))
}

func TestRotateSwapsDimensions(t *testing.T) {
	for _, kind := range Kinds() {
		fig, err := CreateFigure(kind)
		require.NoError(t, err)

		r := fig.RotateClockwise()
		assert.Equal(t, fig.Width(), r.Height(), "%s height after rotation", kind)
		assert.Equal(t, fig.Height(), r.Width(), "%s width after rotation", kind)
		assert.Equal(t, fig.Grid().Count(), r.Grid().Count(), "%s cell count after rotation", kind)
	}
}

func TestRotateFourTimesIsIdentity(t *testing.T) {
	for _, kind := range Kinds() {
		t.Run(kind.String(), func(t *testing.T) {
			fig, err := CreateFigure(kind)
			require.NoError(t, err)

			got := fig.RotateClockwise().RotateClockwise().RotateClockwise().RotateClockwise()
			assert.True(t, got.Equal(fig), "rotate^4(%s) =\n%s", kind, got.Grid())
		})
	}
}

func TestCreateFigureInvalidShape(t *testing.T) {
	_, err := CreateFigure(ShapeKind(42))
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidShape)
	assert.NotErrorIs(t, err, ErrGameOver)

	var shapeErr *InvalidShapeError
	require.True(t, errors.As(err, &shapeErr))
	assert.Equal(t, ShapeKind(42), shapeErr.Kind)
}

// seqRand returns a fixed sequence of values.
type seqRand struct {
	vals []int
	i    int
}

func (s *seqRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func TestCreateRandomFigureUsesInjectedSource(t *testing.T) {
	rng := &seqRand{vals: []int{0, 1, 2, 3, 4, 5, 6}}
	for _, want := range Kinds() {
		assert.Equal(t, want, CreateRandomFigure(rng).Kind())
	}
}

func TestCreateRandomFigureDeterministic(t *testing.T) {
	a := rand.New(rand.NewSource(7))
	b := rand.New(rand.NewSource(7))
	seen := make(map[ShapeKind]int)
	for range 700 {
		fa := CreateRandomFigure(a)
		fb := CreateRandomFigure(b)
		require.Equal(t, fa.Kind(), fb.Kind())
		seen[fa.Kind()]++
	}
	assert.Len(t, seen, len(Kinds()), "every kind should be drawn")
}

func TestParseGrid(t *testing.T) {
	g, err := ParseGrid("#.", "01")
	require.NoError(t, err)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Cols())
	assert.True(t, g.At(0, 0))
	assert.False(t, g.At(1, 0))
	assert.True(t, g.At(1, 1))
	assert.False(t, g.At(5, 5))
	assert.Equal(t, "#.\n.#", g.String())

	_, err = ParseGrid("##", "#")
	assert.Error(t, err)
	_, err = ParseGrid("#x")
	assert.Error(t, err)
}

func TestParseMovement(t *testing.T) {
	tests := []struct {
		key  string
		want Movement
		ok   bool
	}{
		{"a", MoveLeft, true},
		{"A", MoveLeft, true},
		{"d", MoveRight, true},
		{"s", MoveDown, true},
		{" ", MoveDown, true},
		{"w", MoveRotate, true},
		{"x", 0, false},
		{"", 0, false},
	}

	for _, tc := range tests {
		got, ok := ParseMovement(tc.key)
		assert.Equal(t, tc.ok, ok, "ParseMovement(%q) ok", tc.key)
		if tc.ok {
			assert.Equal(t, tc.want, got, "ParseMovement(%q)", tc.key)
		}
	}
}

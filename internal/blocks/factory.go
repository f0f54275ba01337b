package blocks

// Rand is the randomness source used to pick figures. *math/rand.Rand
// satisfies it; tests substitute fixed sequences.
type Rand interface {
	Intn(n int) int
}

// CreateFigure builds a figure of the given kind in its catalog orientation.
func CreateFigure(kind ShapeKind) (Figure, error) {
	if !kind.Valid() {
		return Figure{}, &InvalidShapeError{Kind: kind}
	}
	return Figure{grid: ShapeFor(kind), kind: kind}, nil
}

// CreateRandomFigure draws a kind uniformly from the catalog using rng.
func CreateRandomFigure(rng Rand) Figure {
	kinds := Kinds()
	kind := kinds[rng.Intn(len(kinds))]

	fig, err := CreateFigure(kind)
	if err != nil {
		// Kinds and the catalog are defined together.
		panic(err)
	}
	return fig
}

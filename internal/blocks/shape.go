package blocks

import "fmt"

// ShapeKind identifies one of the seven canonical figures.
type ShapeKind int

const (
	ShapeSquare ShapeKind = iota
	ShapeLine
	ShapeL
	ShapeJ
	ShapeZ
	ShapeS
	ShapeT
)

// String returns the display name of the kind.
func (k ShapeKind) String() string {
	switch k {
	case ShapeSquare:
		return "Square"
	case ShapeLine:
		return "Line"
	case ShapeL:
		return "L"
	case ShapeJ:
		return "J"
	case ShapeZ:
		return "Z"
	case ShapeS:
		return "S"
	case ShapeT:
		return "T"
	default:
		return fmt.Sprintf("ShapeKind(%d)", int(k))
	}
}

// Valid reports whether k is one of the catalog kinds.
func (k ShapeKind) Valid() bool {
	return k >= ShapeSquare && k <= ShapeT
}

// Kinds returns every catalog kind in declaration order.
func Kinds() []ShapeKind {
	return []ShapeKind{ShapeSquare, ShapeLine, ShapeL, ShapeJ, ShapeZ, ShapeS, ShapeT}
}

var catalog = map[ShapeKind]Grid{
	ShapeSquare: MustParseGrid(
		"##",
		"##",
	),
	ShapeLine: MustParseGrid(
		"####",
	),
	ShapeL: MustParseGrid(
		"##",
		"#.",
		"#.",
	),
	ShapeJ: MustParseGrid(
		"##",
		".#",
		".#",
	),
	ShapeZ: MustParseGrid(
		".##",
		"##.",
	),
	ShapeS: MustParseGrid(
		"##.",
		".##",
	),
	ShapeT: MustParseGrid(
		"###",
		".#.",
	),
}

// ShapeFor returns a fresh copy of the catalog grid for kind. Kinds outside
// the catalog yield the empty 0x0 grid.
func ShapeFor(kind ShapeKind) Grid {
	return catalog[kind].Clone()
}

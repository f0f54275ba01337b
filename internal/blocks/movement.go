package blocks

import (
	"fmt"
	"strings"
)

// Movement is a player command already decoded from raw input.
type Movement int

const (
	MoveLeft Movement = iota
	MoveRight
	MoveDown
	MoveRotate
)

func (m Movement) String() string {
	switch m {
	case MoveLeft:
		return "Left"
	case MoveRight:
		return "Right"
	case MoveDown:
		return "Down"
	case MoveRotate:
		return "Rotate"
	default:
		return fmt.Sprintf("Movement(%d)", int(m))
	}
}

// ParseMovement decodes the classic console keys: A (left), D (right),
// S or space (down), W (rotate). Case is ignored.
func ParseMovement(key string) (Movement, bool) {
	switch strings.ToUpper(key) {
	case "A":
		return MoveLeft, true
	case "D":
		return MoveRight, true
	case "S", " ":
		return MoveDown, true
	case "W":
		return MoveRotate, true
	}
	return 0, false
}

// Collision classifies why a figure does not fit at a position.
type Collision int

const (
	CollisionNone Collision = iota
	CollisionLeft
	CollisionRight
	// CollisionBottom is reported when a cell lands above row 0 (row < 0).
	// The name is kept literal; it is not "below the floor".
	CollisionBottom
	// CollisionBlock covers both running past the last row and overlapping
	// a locked cell.
	CollisionBlock
)

func (c Collision) String() string {
	switch c {
	case CollisionNone:
		return "none"
	case CollisionLeft:
		return "left"
	case CollisionRight:
		return "right"
	case CollisionBottom:
		return "bottom"
	case CollisionBlock:
		return "block"
	default:
		return fmt.Sprintf("Collision(%d)", int(c))
	}
}

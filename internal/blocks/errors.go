package blocks

import (
	"errors"
	"fmt"
)

// Sentinel errors. Match with errors.Is; the concrete values carry details.
var (
	ErrGameOver     = errors.New("blocks: game over")
	ErrInvalidShape = errors.New("blocks: invalid shape")
)

// GameOverError is returned by SpawnFigure when the spawn position of a new
// figure already collides. It is terminal for the field.
type GameOverError struct {
	Kind      ShapeKind // Figure that could not be placed
	Collision Collision // Classification at the spawn position
	Score     int       // Final score
}

func (e *GameOverError) Error() string {
	return fmt.Sprintf("blocks: game over: no room to spawn %s (%s), final score %d",
		e.Kind, e.Collision, e.Score)
}

// Is reports whether target is ErrGameOver.
func (e *GameOverError) Is(target error) bool {
	return target == ErrGameOver
}

// InvalidShapeError is returned by CreateFigure for a kind outside the catalog.
type InvalidShapeError struct {
	Kind ShapeKind
}

func (e *InvalidShapeError) Error() string {
	return fmt.Sprintf("blocks: figure %s is not recognized", e.Kind)
}

// Is reports whether target is ErrInvalidShape.
func (e *InvalidShapeError) Is(target error) bool {
	return target == ErrInvalidShape
}

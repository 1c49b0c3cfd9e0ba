package costgrid

import (
	"errors"
	"fmt"
)

// Sentinel errors for costgrid operations.
var (
	// ErrInvalidGrid indicates empty input, rows of differing lengths,
	// or a cell that is not a valid non-negative cost.
	ErrInvalidGrid = errors.New("costgrid: invalid grid")

	// ErrOutOfBounds indicates a position outside the grid rectangle.
	ErrOutOfBounds = errors.New("costgrid: position out of bounds")
)

// Position addresses a single cell. It is a plain comparable value.
type Position struct {
	X, Y int
}

// Offset returns the position shifted by (dx, dy). The result is not
// bounds-checked; use Grid.InBounds.
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy}
}

// String formats the position as "(x,y)".
func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Grid is an immutable W×H array of non-negative integer costs.
// cells[y*Width+x] holds the cost of entering (x, y).
type Grid struct {
	width, height int
	cells         []int
}

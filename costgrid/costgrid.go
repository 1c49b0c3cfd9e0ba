package costgrid

import (
	"fmt"
	"strings"
)

// New builds a Grid from a non-empty, rectangular 2D slice indexed as
// rows[y][x]. The input is deep-copied, so later mutation of rows does not
// affect the Grid.
// Returns ErrInvalidGrid if rows is empty, if any row length differs from
// the first, or if any cell is negative.
// Complexity: O(W×H) time and memory.
func New(rows [][]int) (*Grid, error) {
	if len(rows) == 0 || len(rows[0]) == 0 {
		return nil, fmt.Errorf("%w: grid must have at least one row and one column", ErrInvalidGrid)
	}
	h, w := len(rows), len(rows[0])
	cells := make([]int, 0, w*h)
	for y, row := range rows {
		if len(row) != w {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrInvalidGrid, y, len(row), w)
		}
		for x, c := range row {
			if c < 0 {
				return nil, fmt.Errorf("%w: negative cost %d at (%d,%d)", ErrInvalidGrid, c, x, y)
			}
		}
		cells = append(cells, row...)
	}

	return &Grid{width: w, height: h, cells: cells}, nil
}

// Width returns the number of columns.
func (g *Grid) Width() int { return g.width }

// Height returns the number of rows.
func (g *Grid) Height() int { return g.height }

// Len returns the number of cells, Width×Height.
func (g *Grid) Len() int { return len(g.cells) }

// InBounds reports whether p lies within the grid boundaries.
// Complexity: O(1).
func (g *Grid) InBounds(p Position) bool {
	return p.X >= 0 && p.X < g.width && p.Y >= 0 && p.Y < g.height
}

// Cost returns the cost of entering p.
// Returns ErrOutOfBounds if p lies outside the grid.
// Complexity: O(1).
func (g *Grid) Cost(p Position) (int, error) {
	if !g.InBounds(p) {
		return 0, fmt.Errorf("%w: %v in %dx%d grid", ErrOutOfBounds, p, g.width, g.height)
	}

	return g.cells[g.Index(p)], nil
}

// Index maps p to its row-major index y*Width + x. p must be in bounds.
// Complexity: O(1).
func (g *Grid) Index(p Position) int {
	return p.Y*g.width + p.X
}

// PositionAt converts a row-major index back to a Position.
// Complexity: O(1).
func (g *Grid) PositionAt(idx int) Position {
	return Position{X: idx % g.width, Y: idx / g.width}
}

// TopLeft returns (0,0), the conventional start cell.
func (g *Grid) TopLeft() Position { return Position{} }

// BottomRight returns (W-1,H-1), the conventional target cell.
func (g *Grid) BottomRight() Position {
	return Position{X: g.width - 1, Y: g.height - 1}
}

// Rows returns a fresh copy of the grid as rows[y][x].
func (g *Grid) Rows() [][]int {
	rows := make([][]int, g.height)
	for y := range rows {
		rows[y] = make([]int, g.width)
		copy(rows[y], g.cells[y*g.width:(y+1)*g.width])
	}

	return rows
}

// PathCost sums the cost of every position in path after the first one,
// i.e. the price paid for entering each cell of a route that starts on
// path[0]. An empty or single-cell path costs 0.
// Returns ErrOutOfBounds if any position lies outside the grid.
func (g *Grid) PathCost(path []Position) (int64, error) {
	var total int64
	for i := 1; i < len(path); i++ {
		c, err := g.Cost(path[i])
		if err != nil {
			return 0, err
		}
		total += int64(c)
	}

	return total, nil
}

// String renders the grid in the textual digit format accepted by Parse.
// Cells whose cost does not fit a single digit are shown as '?'.
func (g *Grid) String() string {
	var sb strings.Builder
	sb.Grow(g.height * (g.width + 1))
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			c := g.cells[y*g.width+x]
			if c > 9 {
				sb.WriteByte('?')
				continue
			}
			sb.WriteByte(byte('0' + c))
		}
		sb.WriteByte('\n')
	}

	return sb.String()
}

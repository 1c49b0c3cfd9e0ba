package runpath

import (
	"fmt"

	"github.com/katalvlaran/crucible/costgrid"
)

// Heading is the direction of the current run.
type Heading int8

const (
	// HeadingNone marks the synthetic origin state before any move.
	HeadingNone Heading = -1
	// Up decreases Y.
	Up Heading = 0
	// Down increases Y.
	Down Heading = 1
	// Left decreases X.
	Left Heading = 2
	// Right increases X.
	Right Heading = 3

	headingCount = 4
)

// headings lists the four real headings in index order.
var headings = [headingCount]Heading{Up, Down, Left, Right}

// headingDeltas holds the (dx, dy) step for each real heading.
var headingDeltas = [headingCount][2]int{
	{0, -1}, {0, 1}, {-1, 0}, {1, 0},
}

// Opposite returns the reverse heading. HeadingNone has no opposite and
// maps to itself.
func (h Heading) Opposite() Heading {
	switch h {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	}

	return HeadingNone
}

// Valid reports whether h is one of the four real headings.
func (h Heading) Valid() bool {
	return h >= Up && h <= Right
}

// Delta returns the (dx, dy) unit step for h; (0,0) for HeadingNone.
func (h Heading) Delta() (dx, dy int) {
	if !h.Valid() {
		return 0, 0
	}
	d := headingDeltas[h]

	return d[0], d[1]
}

// String returns the heading name.
func (h Heading) String() string {
	switch h {
	case Up:
		return "Up"
	case Down:
		return "Down"
	case Left:
		return "Left"
	case Right:
		return "Right"
	case HeadingNone:
		return "None"
	}

	return fmt.Sprintf("Heading(%d)", int8(h))
}

// State is a node of the augmented search graph: where the mover is, which
// way it is going, and how many consecutive steps it has taken that way.
// Two states are equal iff all three fields match.
type State struct {
	Pos     costgrid.Position
	Heading Heading
	Run     int
}

// String formats the state as "(x,y) Heading×run".
func (s State) String() string {
	return fmt.Sprintf("%v %v×%d", s.Pos, s.Heading, s.Run)
}

// Transition is a legal move out of a state together with the cost of
// entering the destination cell.
type Transition struct {
	To   State
	Cost int64
}

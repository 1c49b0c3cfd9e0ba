package runpath

import (
	"fmt"

	"github.com/katalvlaran/crucible/costgrid"
)

// StateSpace is the lazily generated augmented graph over a grid under a
// policy. Nodes are addressed by a dense index so per-query bookkeeping can
// live in flat slices instead of hash maps:
//
//	index(s) = ((y*W + x)*4 + heading)*(runLimit+1) + run
//
// runLimit is MaxRun clamped to max(W,H)-1 (at least 1): no straight run on
// the grid can be longer, so the clamp changes no answer but keeps the
// arena sized by the grid rather than by the policy.
//
// The slot right after the last real index is reserved for the synthetic
// origin state (HeadingNone), of which a query has exactly one.
//
// A StateSpace is read-only after construction and safe for concurrent use.
type StateSpace struct {
	grid   *costgrid.Grid
	policy Policy
	maxRun int // run limit: min(MaxRun, max(W,H)-1), at least 1
	stride int // maxRun+1: run slots per (cell, heading)
	size   int // number of real states
}

// NewStateSpace binds a grid and a policy.
// Returns ErrNilGrid for a nil grid and ErrInvalidPolicy for a bad policy.
func NewStateSpace(g *costgrid.Grid, p Policy) (*StateSpace, error) {
	if g == nil {
		return nil, ErrNilGrid
	}
	if err := p.Validate(); err != nil {
		return nil, err
	}
	limit := max(min(p.MaxRun, max(g.Width(), g.Height())-1), 1)
	stride := limit + 1

	return &StateSpace{
		grid:   g,
		policy: p,
		maxRun: limit,
		stride: stride,
		size:   g.Len() * headingCount * stride,
	}, nil
}

// Grid returns the underlying cost grid.
func (ss *StateSpace) Grid() *costgrid.Grid { return ss.grid }

// Policy returns the movement policy.
func (ss *StateSpace) Policy() Policy { return ss.policy }

// RunLimit returns the longest run the state space tracks: the policy's
// MaxRun, clamped to the longest straight line that fits in the grid.
func (ss *StateSpace) RunLimit() int { return ss.maxRun }

// Size returns the number of real states, W×H×4×(RunLimit()+1). Index values
// range over [0, Size()]; Size() itself is the origin slot.
func (ss *StateSpace) Size() int { return ss.size }

// Origin returns the synthetic start state at pos.
func (ss *StateSpace) Origin(pos costgrid.Position) State {
	return State{Pos: pos, Heading: HeadingNone, Run: 0}
}

// Index maps s to its dense index.
// Returns costgrid.ErrOutOfBounds if s lies outside the grid, and
// ErrInvalidState if its heading is not real or its run is outside
// [1, RunLimit()].
func (ss *StateSpace) Index(s State) (int, error) {
	if !ss.grid.InBounds(s.Pos) {
		return 0, fmt.Errorf("%w: state %v", costgrid.ErrOutOfBounds, s)
	}
	if s.Heading == HeadingNone {
		if s.Run != 0 {
			return 0, fmt.Errorf("%w: origin state %v must have run 0", ErrInvalidState, s)
		}
		return ss.size, nil
	}
	if !s.Heading.Valid() || s.Run < 1 || s.Run > ss.maxRun {
		return 0, fmt.Errorf("%w: %v outside policy %v", ErrInvalidState, s, ss.policy)
	}

	return ss.index(s), nil
}

// index is Index without validation, for the search hot path.
func (ss *StateSpace) index(s State) int {
	return (ss.grid.Index(s.Pos)*headingCount+int(s.Heading))*ss.stride + s.Run
}

// StateAt decodes a dense index. The origin slot decodes to a HeadingNone
// state at (0,0); callers that need the real origin position keep it
// themselves.
func (ss *StateSpace) StateAt(idx int) State {
	if idx == ss.size {
		return State{Heading: HeadingNone}
	}
	run := idx % ss.stride
	rest := idx / ss.stride

	return State{
		Pos:     ss.grid.PositionAt(rest / headingCount),
		Heading: Heading(rest % headingCount),
		Run:     run,
	}
}

// Successors appends to buf every legal transition out of s and returns
// the extended slice. For each of the four headings h:
//
//  1. h == s.Heading:            legal iff s.Run < RunLimit(); run becomes s.Run+1.
//  2. h perpendicular:           legal iff s.Run ≥ MinRun or s is the origin; run becomes 1.
//  3. h == s.Heading.Opposite(): never legal.
//  4. a destination outside the grid is dropped.
//
// Each transition costs the destination cell's value.
// An error is only possible if the grid disagrees with its own bounds
// check, which would be a bug.
func (ss *StateSpace) Successors(s State, buf []Transition) ([]Transition, error) {
	origin := s.Heading == HeadingNone
	for _, h := range headings {
		var run int
		switch {
		case origin:
			run = 1
		case h == s.Heading:
			if s.Run >= ss.maxRun {
				continue
			}
			run = s.Run + 1
		case h == s.Heading.Opposite():
			continue
		default:
			if s.Run < ss.policy.MinRun {
				continue
			}
			run = 1
		}

		dx, dy := h.Delta()
		next := s.Pos.Offset(dx, dy)
		if !ss.grid.InBounds(next) {
			continue
		}
		c, err := ss.grid.Cost(next)
		if err != nil {
			return buf, fmt.Errorf("runpath: successor of %v: %w", s, err)
		}
		buf = append(buf, Transition{
			To:   State{Pos: next, Heading: h, Run: run},
			Cost: int64(c),
		})
	}

	return buf, nil
}

// IsGoal reports whether the mover may stop in s when aiming at target:
// it must stand on target and have held its heading for at least MinRun
// steps. The origin trivially satisfies the run condition.
func (ss *StateSpace) IsGoal(s State, target costgrid.Position) bool {
	if s.Pos != target {
		return false
	}

	return s.Heading == HeadingNone || s.Run >= ss.policy.MinRun
}

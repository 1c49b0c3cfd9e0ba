package runpath

import (
	"fmt"

	"github.com/katalvlaran/crucible/costgrid"
)

// States walks the predecessor links recorded by the search from the goal
// back to the origin and returns the visited states in travel order, origin
// first. It performs no grid reads and never recomputes cost.
//
// Returns ErrNoPathRecorded if the search did not find a path or ran
// without WithReturnPath.
// Complexity: O(path length).
func (r *Result) States() ([]State, error) {
	if r.Outcome != PathFound {
		return nil, fmt.Errorf("%w: search ended with %v", ErrNoPathRecorded, r.Outcome)
	}
	if r.prev == nil {
		return nil, fmt.Errorf("%w: search ran without WithReturnPath", ErrNoPathRecorded)
	}

	origin := r.space.size
	var rev []State
	for at := r.goal; at != origin; at = r.prev[at] {
		if at < 0 {
			return nil, fmt.Errorf("runpath: broken predecessor chain after %d states", len(rev))
		}
		rev = append(rev, r.space.StateAt(at))
	}
	rev = append(rev, r.space.Origin(r.start))

	// reverse in-place
	for l, h := 0, len(rev)-1; l < h; l, h = l+1, h-1 {
		rev[l], rev[h] = rev[h], rev[l]
	}

	return rev, nil
}

// Path returns the ordered cell positions from start to goal, inclusive.
// The sum of the grid costs of every position after the first equals
// r.Cost.
//
// Returns ErrNoPathRecorded under the same conditions as States.
func (r *Result) Path() ([]costgrid.Position, error) {
	states, err := r.States()
	if err != nil {
		return nil, err
	}
	path := make([]costgrid.Position, len(states))
	for i, s := range states {
		path[i] = s.Pos
	}

	return path, nil
}

// Package runpath_test contains test fixtures and helpers for runpath.
//
// Purpose:
//   - Provide the reference heat-loss grids and their known answers.
//   - Provide an independent, map-based reference solver used to cross-check
//     the engine on random grids.
package runpath_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/costgrid"
	"github.com/katalvlaran/crucible/runpath"
)

// sampleGrid is the 13×13 reference heat-loss map.
const sampleGrid = `
2413432311323
3215453535623
3255245654254
3446585845452
4546657867536
1438598798454
4457876987766
3637877979653
4654967986887
4564679986453
1224686865563
2546548887735
4322674655533
`

// corridorGrid is a 12×5 map whose cheap route forces a long straight run.
const corridorGrid = `
111111111111
999999999991
999999999991
999999999991
999999999991
`

// Known minimal costs, top-left to bottom-right.
const (
	sampleCrucibleCost      = 102
	sampleUltraCrucibleCost = 94
	corridorUltraCost       = 71
)

// mustParse parses a grid or fails the test.
func mustParse(t testing.TB, s string) *costgrid.Grid {
	t.Helper()
	g, err := costgrid.ParseString(s)
	require.NoError(t, err)

	return g
}

// randomGrid builds a deterministic w×h grid with costs in [lo, hi].
func randomGrid(t testing.TB, rng *rand.Rand, w, h, lo, hi int) *costgrid.Grid {
	t.Helper()
	rows := make([][]int, h)
	for y := range rows {
		rows[y] = make([]int, w)
		for x := range rows[y] {
			rows[y][x] = lo + rng.Intn(hi-lo+1)
		}
	}
	g, err := costgrid.New(rows)
	require.NoError(t, err)

	return g
}

// costOrInf maps a result to its cost, with -1 standing for "unreachable".
func costOrInf(res *runpath.Result) int64 {
	if !res.Found() {
		return -1
	}

	return res.Cost
}

// referenceCost solves the same problem with a queue-based label-correcting
// search over map-keyed states. It shares no code with the engine.
// Returns -1 when the target is unreachable.
func referenceCost(g *costgrid.Grid, p runpath.Policy, start, target costgrid.Position) int64 {
	type st struct{ x, y, dx, dy, run int }
	dirs := [4][2]int{{0, -1}, {0, 1}, {-1, 0}, {1, 0}}

	origin := st{x: start.X, y: start.Y}
	best := map[st]int64{origin: 0}
	queue := []st{origin}
	for len(queue) > 0 {
		s := queue[0]
		queue = queue[1:]
		c := best[s]
		for _, d := range dirs {
			moving := s.run > 0
			if moving && d[0] == -s.dx && d[1] == -s.dy {
				continue
			}
			var run int
			if moving && d[0] == s.dx && d[1] == s.dy {
				if s.run >= p.MaxRun {
					continue
				}
				run = s.run + 1
			} else {
				if moving && s.run < p.MinRun {
					continue
				}
				run = 1
			}
			np := costgrid.Position{X: s.x + d[0], Y: s.y + d[1]}
			cell, err := g.Cost(np)
			if err != nil {
				continue
			}
			n := st{x: np.X, y: np.Y, dx: d[0], dy: d[1], run: run}
			nc := c + int64(cell)
			if old, ok := best[n]; !ok || nc < old {
				best[n] = nc
				queue = append(queue, n)
			}
		}
	}

	answer := int64(-1)
	for s, c := range best {
		if s.x != target.X || s.y != target.Y {
			continue
		}
		if s.run != 0 && s.run < p.MinRun {
			continue
		}
		if answer < 0 || c < answer {
			answer = c
		}
	}

	return answer
}

// headingBetween returns the heading of a single step a→b.
func headingBetween(t testing.TB, a, b costgrid.Position) runpath.Heading {
	t.Helper()
	switch {
	case b.X == a.X && b.Y == a.Y-1:
		return runpath.Up
	case b.X == a.X && b.Y == a.Y+1:
		return runpath.Down
	case b.Y == a.Y && b.X == a.X-1:
		return runpath.Left
	case b.Y == a.Y && b.X == a.X+1:
		return runpath.Right
	}
	t.Fatalf("%v → %v is not a unit step", a, b)

	return runpath.HeadingNone
}

// requireLegalPath checks that path is a policy-legal route whose entered
// cells sum to cost: unit steps, no reversals, every straight run within
// [MinRun, MaxRun].
func requireLegalPath(t *testing.T, g *costgrid.Grid, p runpath.Policy, path []costgrid.Position, cost int64) {
	t.Helper()
	require.NotEmpty(t, path)

	total, err := g.PathCost(path)
	require.NoError(t, err)
	require.Equal(t, cost, total, "path cost must equal reported cost")

	if len(path) == 1 {
		return
	}

	var runs []int
	prev := headingBetween(t, path[0], path[1])
	run := 1
	for i := 2; i < len(path); i++ {
		h := headingBetween(t, path[i-1], path[i])
		require.NotEqual(t, prev.Opposite(), h, "reversal at step %d", i)
		if h == prev {
			run++
			continue
		}
		runs = append(runs, run)
		prev, run = h, 1
	}
	runs = append(runs, run)

	for i, r := range runs {
		require.GreaterOrEqual(t, r, p.MinRun, "run %d of %v too short", i, runs)
		require.LessOrEqual(t, r, p.MaxRun, "run %d of %v too long", i, runs)
	}
}

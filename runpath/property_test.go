package runpath_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/crucible/costgrid"
	"github.com/katalvlaran/crucible/runpath"
)

// Property-test sizing (avoid magic numbers in test bodies).
const (
	propSeed   = 17
	propGrids  = 25
	propMaxW   = 8
	propMaxH   = 6
	propMaxRun = 6
)

// solve runs a top-left → bottom-right query and fails the test on error.
func solve(t *testing.T, g *costgrid.Grid, p runpath.Policy) *runpath.Result {
	t.Helper()
	res, err := runpath.ShortestPath(g, p, g.TopLeft(), g.BottomRight(), runpath.WithReturnPath())
	require.NoError(t, err)

	return res
}

// TestProperty_MatchesReference cross-checks the engine against the
// map-based reference solver on random grids, including zero-cost cells.
func TestProperty_MatchesReference(t *testing.T) {
	rng := rand.New(rand.NewSource(propSeed))
	for i := 0; i < propGrids; i++ {
		w, h := 1+rng.Intn(propMaxW), 1+rng.Intn(propMaxH)
		g := randomGrid(t, rng, w, h, 0, 9)
		minRun := 1 + rng.Intn(3)
		p := runpath.Policy{MinRun: minRun, MaxRun: minRun + rng.Intn(4)}

		start := g.PositionAt(rng.Intn(g.Len()))
		target := g.PositionAt(rng.Intn(g.Len()))
		res, err := runpath.ShortestPath(g, p, start, target, runpath.WithReturnPath())
		require.NoError(t, err)

		want := referenceCost(g, p, start, target)
		require.Equal(t, want, costOrInf(res), "grid %d (%dx%d) policy %v %v→%v", i, w, h, p, start, target)

		if res.Found() {
			path, err := res.Path()
			require.NoError(t, err)
			assert.Equal(t, start, path[0])
			assert.Equal(t, target, path[len(path)-1])
			requireLegalPath(t, g, p, path, res.Cost)
		}
	}
}

// TestProperty_Deterministic repeats the same query and expects identical results.
func TestProperty_Deterministic(t *testing.T) {
	g := mustParse(t, sampleGrid)
	first := solve(t, g, runpath.UltraCrucible())
	firstPath, err := first.Path()
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		again := solve(t, g, runpath.UltraCrucible())
		assert.Equal(t, first.Cost, again.Cost)
		assert.Equal(t, first.Settled, again.Settled)
		path, err := again.Path()
		require.NoError(t, err)
		assert.Equal(t, firstPath, path)
	}
}

// TestProperty_MonotoneInMaxRun: for fixed MinRun, more MaxRun never costs more.
func TestProperty_MonotoneInMaxRun(t *testing.T) {
	rng := rand.New(rand.NewSource(propSeed + 1))
	for i := 0; i < propGrids; i++ {
		g := randomGrid(t, rng, 2+rng.Intn(propMaxW-1), 2+rng.Intn(propMaxH-1), 1, 9)
		for minRun := 1; minRun <= 3; minRun++ {
			prev := costOrInf(solve(t, g, runpath.Policy{MinRun: minRun, MaxRun: minRun}))
			for maxRun := minRun + 1; maxRun <= propMaxRun; maxRun++ {
				cur := costOrInf(solve(t, g, runpath.Policy{MinRun: minRun, MaxRun: maxRun}))
				if prev >= 0 {
					require.GreaterOrEqual(t, cur, int64(0), "grid %d: reachable at max %d but not at %d", i, maxRun-1, maxRun)
					require.LessOrEqual(t, cur, prev, "grid %d min %d max %d", i, minRun, maxRun)
				}
				prev = cur
			}
		}
	}
}

// TestProperty_TighteningMinRun: for fixed MaxRun, more MinRun never costs less.
func TestProperty_TighteningMinRun(t *testing.T) {
	rng := rand.New(rand.NewSource(propSeed + 2))
	for i := 0; i < propGrids; i++ {
		g := randomGrid(t, rng, 2+rng.Intn(propMaxW-1), 2+rng.Intn(propMaxH-1), 1, 9)
		for maxRun := 2; maxRun <= propMaxRun; maxRun++ {
			prev := costOrInf(solve(t, g, runpath.Policy{MinRun: 1, MaxRun: maxRun}))
			for minRun := 2; minRun <= maxRun; minRun++ {
				cur := costOrInf(solve(t, g, runpath.Policy{MinRun: minRun, MaxRun: maxRun}))
				if cur >= 0 {
					require.GreaterOrEqual(t, prev, int64(0), "grid %d: reachable at min %d but not at %d", i, minRun, minRun-1)
					require.GreaterOrEqual(t, cur, prev, "grid %d min %d max %d", i, minRun, maxRun)
				}
				prev = cur
			}
		}
	}
}

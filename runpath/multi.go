package runpath

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/crucible/costgrid"
)

// Query is one independent search request against a shared grid.
type Query struct {
	Start  costgrid.Position
	Target costgrid.Position
	Policy Policy
}

// Reduction selects how Best aggregates results.
type Reduction int

const (
	// Minimize picks the cheapest found path.
	Minimize Reduction = iota
	// Maximize picks the dearest found path.
	Maximize
)

// SolveAll runs every query concurrently against g and returns the results
// in query order. Each query owns its frontier and bookkeeping and only
// reads g, so no locking is involved. At most GOMAXPROCS searches run at
// once.
//
// opts apply to every query; the context passed here overrides any
// WithContext among them. The first failing query cancels the others and
// its error is returned, annotated with the query index.
func SolveAll(ctx context.Context, g *costgrid.Grid, queries []Query, opts ...Option) ([]*Result, error) {
	if g == nil {
		return nil, ErrNilGrid
	}

	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(runtime.GOMAXPROCS(0))

	// One state space per distinct policy.
	spaces := make(map[Policy]*StateSpace, 2)
	for i, q := range queries {
		if _, ok := spaces[q.Policy]; ok {
			continue
		}
		ss, err := NewStateSpace(g, q.Policy)
		if err != nil {
			return nil, fmt.Errorf("query %d: %w", i, err)
		}
		spaces[q.Policy] = ss
	}

	qopts := make([]Option, 0, len(opts)+1)
	qopts = append(qopts, opts...)
	qopts = append(qopts, WithContext(egCtx))

	results := make([]*Result, len(queries))
	for i, q := range queries {
		ss := spaces[q.Policy]
		eg.Go(func() error {
			res, err := ss.Search(q.Start, q.Target, qopts...)
			if err != nil {
				return fmt.Errorf("query %d: %w", i, err)
			}
			results[i] = res
			return nil
		})
	}
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

// Best returns the index of the found result with the lowest (Minimize) or
// highest (Maximize) cost, or -1 if no result found a path. Ties go to the
// lowest index.
func Best(results []*Result, red Reduction) int {
	best := -1
	for i, r := range results {
		if r == nil || !r.Found() {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		switch red {
		case Maximize:
			if r.Cost > results[best].Cost {
				best = i
			}
		default:
			if r.Cost < results[best].Cost {
				best = i
			}
		}
	}

	return best
}

// Package runpath finds minimal-cost routes across a costgrid.Grid for a
// mover that cannot turn on a whim.
//
// Overview:
//
//   - The mover never reverses, must hold a heading for at least MinRun
//     steps before it may turn or stop, and may hold it for at most MaxRun
//     steps before a turn is forced (see Policy).
//   - Because legality depends on recent history, the search runs over the
//     augmented state space (position, heading, run) rather than bare cells.
//   - Dijkstra with a min-heap expands states in increasing cost; the goal
//     is reached when the target cell is settled with Run ≥ MinRun.
//
// When to use:
//
//   - Heavy vehicles or crucibles with a turning radius on a heat-loss map.
//   - Any grid route where run length matters: minimum straight segments
//     for trains or conveyors, maximum straight segments for patrols.
//
// Key features:
//
//   - One engine for every policy; choose behaviour with Policy values such
//     as Crucible() {1..3} and UltraCrucible() {4..10}.
//   - WithReturnPath: keep predecessor links, then Result.Path / States.
//   - WithMaxCost: stop exploring beyond a cost budget.
//   - WithContext: cancellation checked once per frontier pop.
//   - WithOnSettle: observe each settled state (tracing, statistics).
//   - SolveAll / Best: run many independent queries concurrently over one
//     shared read-only grid and reduce them.
//
// Performance and complexity:
//
//   - States:  S ≤ W×H×4×min(MaxRun, max(W,H)-1), stored in flat slices
//     by dense index.
//   - Time:    O(S log S) heap operations in the worst case.
//   - Space:   O(S) for dist, settled and (optionally) prev.
//
// Outcomes and errors:
//
//   - PathNotFound is a normal Outcome, not an error: the target is
//     unreachable under the policy (e.g. a corridor shorter than MinRun).
//   - ErrNilGrid, ErrInvalidPolicy, costgrid.ErrOutOfBounds and
//     ErrOptionViolation are validation failures raised before searching.
//   - ErrCancelled wraps ctx.Err() when the context ends mid-search.
//   - ErrNoPathRecorded is returned by Result.Path when there is no path to
//     rebuild.
//
// Start-state convention:
//
//	The origin state carries HeadingNone and run 0. It may leave in any of
//	the four headings without satisfying MinRun, and if start == target the
//	answer is 0 whatever the policy.
//
// Example usage:
//
//	g, _ := costgrid.ParseString(input)
//	res, err := runpath.ShortestPath(g, runpath.UltraCrucible(),
//	    g.TopLeft(), g.BottomRight(), runpath.WithReturnPath())
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if res.Found() {
//	    path, _ := res.Path()
//	    fmt.Println(res.Cost, len(path))
//	}
package runpath

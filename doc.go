// Package crucible finds minimal-cost routes across weighted grids for a
// mover that can never reverse and must hold each heading for a bounded
// number of steps.
//
// What is here?
//
//	costgrid/     immutable cost grid, positions, digit-grid parsing
//	runpath/      movement policy, augmented state space, Dijkstra search,
//	              path reconstruction, parallel queries
//	cmd/crucible/ command-line front end (solve, sweep)
//
// A mover under policy {min..max} may continue straight only while its
// current run is shorter than max, may turn (or stop on the target) only
// once the run has reached min, and never turns back. Entering a cell costs
// that cell's value; the starting cell is free.
//
// Quick example:
//
//	g, _ := costgrid.ParseString("2413\n3215\n3255")
//	res, _ := runpath.ShortestPath(g, runpath.Crucible(), g.TopLeft(), g.BottomRight())
//	fmt.Println(res.Cost)
//
// The search runs over states (position, heading, run), so each cell may be
// reached many times with different histories. Everything is plain Go with
// no cgo; the only concurrency is runpath.SolveAll, which fans independent
// queries out over a bounded worker group.
package crucible

package runpath

import (
	"container/heap"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/costgrid"
)

// ShortestPath computes the minimal total cost of moving from start to
// target on g under policy p. Entering a cell costs that cell's value; the
// start cell is never charged.
//
// Returns:
//
//   - res: Outcome PathFound with the minimal Cost, or PathNotFound when no
//     policy-legal route exists (not an error), or CostLimitReached when
//     WithMaxCost pruned the search.
//   - err: a validation error, or ErrCancelled if the context ended first.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. g must be non-nil (ErrNilGrid).
//  3. p must satisfy 1 ≤ MinRun ≤ MaxRun (ErrInvalidPolicy).
//  4. start and target must lie inside g (costgrid.ErrOutOfBounds).
//
// Complexity:
//
//   - Time:  O(S log S), S = W×H×4×min(MaxRun, max(W,H)-1) states.
//   - Space: O(S).
func ShortestPath(g *costgrid.Grid, p Policy, start, target costgrid.Position, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	space, err := NewStateSpace(g, p)
	if err != nil {
		return nil, err
	}

	return space.search(start, target, cfg)
}

// Search runs ShortestPath on an existing state space, letting callers
// reuse one StateSpace for many queries.
func (ss *StateSpace) Search(start, target costgrid.Position, opts ...Option) (*Result, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, cfg.err
	}

	return ss.search(start, target, cfg)
}

func (ss *StateSpace) search(start, target costgrid.Position, cfg Options) (*Result, error) {
	if !ss.grid.InBounds(start) {
		return nil, fmt.Errorf("%w: start %v", costgrid.ErrOutOfBounds, start)
	}
	if !ss.grid.InBounds(target) {
		return nil, fmt.Errorf("%w: target %v", costgrid.ErrOutOfBounds, target)
	}

	r := newRunner(ss, start, target, cfg)
	r.init()
	if err := r.process(); err != nil {
		return nil, err
	}

	return r.res, nil
}

// runner holds the mutable state for a single search execution.
//
//   - dist, prev and settled are flat slices indexed by dense state index,
//     sized StateSpace.Size()+1.
//   - Decrease-key is lazy: duplicates are pushed and entries for settled
//     states are skipped on pop.
//   - The goal test runs when a state is settled, never when it is pushed.
type runner struct {
	space   *StateSpace
	opts    Options
	origin  State             // synthetic start state
	target  costgrid.Position // goal cell
	dist    []int64           // best known cost per state index
	prev    []int             // predecessor per state index; nil unless ReturnPath
	settled []bool            // whether a state's cost is final
	pq      nodePQ            // min-heap of frontier entries
	buf     []Transition      // reused successor buffer
	capped  bool              // whether MaxCost pruned any move
	res     *Result
}

func newRunner(ss *StateSpace, start, target costgrid.Position, cfg Options) *runner {
	n := ss.size + 1 // + origin slot
	r := &runner{
		space:   ss,
		opts:    cfg,
		origin:  ss.Origin(start),
		target:  target,
		dist:    make([]int64, n),
		settled: make([]bool, n),
		pq:      make(nodePQ, 0, ss.grid.Len()),
		buf:     make([]Transition, 0, headingCount),
		res:     &Result{Outcome: PathNotFound, start: start, space: ss},
	}
	if cfg.ReturnPath {
		r.prev = make([]int, n)
	}

	return r
}

// init sets every distance to +∞ and pushes the origin at cost 0.
func (r *runner) init() {
	for i := range r.dist {
		r.dist[i] = math.MaxInt64
	}
	for i := range r.prev {
		r.prev[i] = -1
	}

	o := r.space.size
	r.dist[o] = 0
	heap.Init(&r.pq)
	heap.Push(&r.pq, nodeItem{idx: o, cost: 0})
}

// process is the main loop. It pops the cheapest frontier entry, skips it
// if stale, settles it, stops on the goal, and otherwise relaxes its
// successors.
//
// Loop termination conditions:
//
//   - A goal state is settled (PathFound).
//   - The heap becomes empty (PathNotFound, or CostLimitReached if the cap
//     pruned anything).
//   - The context is done (ErrCancelled).
func (r *runner) process() error {
	ctx := r.opts.Ctx
	for r.pq.Len() > 0 {
		// cancellation check (once per pop)
		select {
		case <-ctx.Done():
			return fmt.Errorf("%w: %w", ErrCancelled, ctx.Err())
		default:
		}

		item := heap.Pop(&r.pq).(nodeItem)
		if r.settled[item.idx] {
			continue
		}
		r.settled[item.idx] = true
		r.res.Settled++

		s := r.stateAt(item.idx)
		r.opts.OnSettle(s, item.cost)

		if r.space.IsGoal(s, r.target) {
			r.res.Outcome = PathFound
			r.res.Cost = item.cost
			r.res.Goal = s
			r.res.goal = item.idx
			r.res.prev = r.prev
			return nil
		}

		if err := r.relax(item.idx, s, item.cost); err != nil {
			return err
		}
	}

	if r.capped {
		r.res.Outcome = CostLimitReached
	}

	return nil
}

// relax pushes every successor of s whose cost improves on the best known.
// Assumes r.dist[u] == d is final.
func (r *runner) relax(u int, s State, d int64) error {
	var err error
	r.buf, err = r.space.Successors(s, r.buf[:0])
	if err != nil {
		return err
	}

	for _, t := range r.buf {
		v := r.space.index(t.To)
		if r.settled[v] {
			continue
		}
		nd := d + t.Cost
		if nd > r.opts.MaxCost {
			r.capped = true
			continue
		}
		// Strict "<" avoids pushing duplicates at equal cost.
		if nd >= r.dist[v] {
			continue
		}
		r.dist[v] = nd
		if r.prev != nil {
			r.prev[v] = u
		}
		heap.Push(&r.pq, nodeItem{idx: v, cost: nd})
	}

	return nil
}

// stateAt decodes idx, substituting the real origin for the origin slot.
func (r *runner) stateAt(idx int) State {
	if idx == r.space.size {
		return r.origin
	}

	return r.space.StateAt(idx)
}

// nodeItem is a frontier entry: a state index and its tentative cost.
type nodeItem struct {
	idx  int
	cost int64
}

// nodePQ is a min-heap of nodeItem ordered by cost only; ties are broken
// arbitrarily.
type nodePQ []nodeItem

// Len returns the number of items in the heap.
func (pq nodePQ) Len() int { return len(pq) }

// Less defines the comparison: smaller cost → higher priority.
func (pq nodePQ) Less(i, j int) bool { return pq[i].cost < pq[j].cost }

// Swap swaps two elements in the heap.
func (pq nodePQ) Swap(i, j int) { pq[i], pq[j] = pq[j], pq[i] }

// Push adds a new element x onto the heap. x must be a nodeItem.
func (pq *nodePQ) Push(x interface{}) { *pq = append(*pq, x.(nodeItem)) }

// Pop removes and returns the last element; heap.Pop moves the minimum there first.
func (pq *nodePQ) Pop() interface{} {
	old := *pq
	n := len(old)
	item := old[n-1]
	*pq = old[:n-1]

	return item
}

package runpath

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/katalvlaran/crucible/costgrid"
)

// Sentinel errors returned by the runpath implementation.
var (
	// ErrNilGrid indicates that a nil *costgrid.Grid was passed.
	ErrNilGrid = errors.New("runpath: grid is nil")

	// ErrInvalidPolicy indicates MinRun < 1 or MaxRun < MinRun.
	ErrInvalidPolicy = errors.New("runpath: invalid movement policy")

	// ErrInvalidState indicates a state whose heading or run length cannot
	// occur under the state space's policy.
	ErrInvalidState = errors.New("runpath: invalid search state")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("runpath: invalid option supplied")

	// ErrCancelled indicates the search was stopped by its context before
	// reaching a verdict. The returned error also wraps ctx.Err().
	ErrCancelled = errors.New("runpath: search cancelled")

	// ErrNoPathRecorded indicates a path was requested from a search that
	// found none, or that ran without WithReturnPath.
	ErrNoPathRecorded = errors.New("runpath: no path recorded")
)

// Outcome classifies how a search ended. PathNotFound is a normal result,
// not an error.
type Outcome int

const (
	// PathNotFound means the frontier emptied without any state passing the
	// goal test: the target is unreachable under the policy.
	PathNotFound Outcome = iota

	// PathFound means a goal state was settled; Result.Cost is minimal.
	PathFound

	// CostLimitReached means no goal was found within the WithMaxCost cap
	// and at least one move was pruned by it; a dearer path may exist.
	CostLimitReached
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case PathNotFound:
		return "PathNotFound"
	case PathFound:
		return "PathFound"
	case CostLimitReached:
		return "CostLimitReached"
	}

	return fmt.Sprintf("Outcome(%d)", int(o))
}

// Option configures ShortestPath via functional arguments.
// If an Option is invalid (e.g. negative cost cap), it is recorded
// internally and surfaced as ErrOptionViolation when the search is invoked.
type Option func(*Options)

// Options holds parameters and callbacks for one search.
//
// Ctx        – cancellation and deadlines, checked once per frontier pop.
// ReturnPath – keep predecessor links so Result.Path can rebuild the route.
// MaxCost    – moves whose total cost would exceed this value are dropped;
//              the search goes on with the cheaper ones.
//
//	Must be ≥ 0. Default is math.MaxInt64 (no cap).
//
// OnSettle   – called every time a state's minimal cost becomes final.
type Options struct {
	Ctx        context.Context
	ReturnPath bool
	MaxCost    int64
	OnSettle   func(s State, cost int64)

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns Options with defaults:
//   - Ctx:        context.Background()
//   - ReturnPath: false (Result.Path returns ErrNoPathRecorded)
//   - MaxCost:    math.MaxInt64 (no cap)
//   - OnSettle:   no-op
func DefaultOptions() Options {
	return Options{
		Ctx:        context.Background(),
		ReturnPath: false,
		MaxCost:    math.MaxInt64,
		OnSettle:   func(State, int64) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithReturnPath keeps predecessor links for path reconstruction.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxCost caps the explored cost. States whose cost would exceed max
// are never expanded, and the search ends with CostLimitReached when
// nothing cheaper remains.
//
//	max ≥ 0: cap at max
//	max < 0: invalid option → ErrOptionViolation
func WithMaxCost(max int64) Option {
	return func(o *Options) {
		if max < 0 {
			o.err = fmt.Errorf("%w: MaxCost cannot be negative (%d)", ErrOptionViolation, max)
			return
		}
		o.MaxCost = max
	}
}

// WithOnSettle registers a callback run each time a state is settled,
// with that state's final cost. When used with SolveAll the callback runs
// on several goroutines at once.
func WithOnSettle(fn func(s State, cost int64)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnSettle = fn
		}
	}
}

// Result is the outcome of one ShortestPath query.
type Result struct {
	// Outcome tells whether a path was found.
	Outcome Outcome

	// Cost is the minimal total cost when Outcome == PathFound, 0 otherwise.
	Cost int64

	// Goal is the settled goal state when Outcome == PathFound.
	Goal State

	// Settled counts the states whose cost was finalised during the search.
	Settled int

	start costgrid.Position
	space *StateSpace
	prev  []int // predecessor index per state; nil unless ReturnPath
	goal  int   // dense index of Goal
}

// Found reports whether a path was found.
func (r *Result) Found() bool { return r.Outcome == PathFound }

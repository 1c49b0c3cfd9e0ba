package runpath

import "fmt"

// Policy bounds how long the mover must and may keep a heading.
//
//	MinRun – consecutive steps required before a turn, and before the goal
//	         test may succeed. Must be ≥ 1.
//	MaxRun – consecutive steps after which continuing straight is illegal.
//	         Must be ≥ MinRun.
type Policy struct {
	MinRun int
	MaxRun int
}

// NewPolicy returns a validated Policy.
// Returns ErrInvalidPolicy if minRun < 1 or maxRun < minRun.
func NewPolicy(minRun, maxRun int) (Policy, error) {
	p := Policy{MinRun: minRun, MaxRun: maxRun}
	if err := p.Validate(); err != nil {
		return Policy{}, err
	}

	return p, nil
}

// Validate checks the ordering constraint 1 ≤ MinRun ≤ MaxRun.
func (p Policy) Validate() error {
	if p.MinRun < 1 {
		return fmt.Errorf("%w: MinRun=%d must be at least 1", ErrInvalidPolicy, p.MinRun)
	}
	if p.MaxRun < p.MinRun {
		return fmt.Errorf("%w: MaxRun=%d is below MinRun=%d", ErrInvalidPolicy, p.MaxRun, p.MinRun)
	}

	return nil
}

// String formats the policy as "{min..max}".
func (p Policy) String() string {
	return fmt.Sprintf("{%d..%d}", p.MinRun, p.MaxRun)
}

// Crucible is the short-run policy: turn whenever you like, but never
// more than three steps straight.
func Crucible() Policy { return Policy{MinRun: 1, MaxRun: 3} }

// UltraCrucible is the long-run policy: at least four steps before a turn
// or stop, at most ten steps straight.
func UltraCrucible() Policy { return Policy{MinRun: 4, MaxRun: 10} }

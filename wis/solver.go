package wis

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/intervals/interval"
)

// Solver owns the memo, scratch and solution buffers needed to solve many
// problems one after another without reallocating. Buffers grow to the
// largest problem seen and are then reused.
//
// A Solver is not safe for concurrent use. Give each goroutine its own.
type Solver[T, W cmp.Ordered, I interval.WeightedInterval[T, W]] struct {
	opts     Options
	memo     []W
	scratch  []I // sorted copy used by Solve
	solution []I
}

// NewSolver builds a Solver from DefaultOptions plus the given overrides.
func NewSolver[T, W cmp.Ordered, I interval.WeightedInterval[T, W]](opts ...Option) *Solver[T, W, I] {
	cfg := DefaultOptions()
	var opt Option
	for _, opt = range opts {
		opt(&cfg)
	}

	s := &Solver[T, W, I]{opts: cfg}
	if cfg.Capacity > 0 {
		s.memo = make([]W, cfg.Capacity)
		s.scratch = make([]I, 0, cfg.Capacity)
		s.solution = make([]I, 0, cfg.Capacity)
	}

	return s
}

// Options returns the configuration the solver was built with.
func (s *Solver[T, W, I]) Options() Options { return s.opts }

// SolveSorted solves presorted xs in the solver's buffers.
//
// With Validate set, unsorted input yields ErrUnsortedInput and nothing is
// computed. Without it the precondition is trusted, as in the package-level
// SolveSorted.
//
// The returned slice aliases the solver's solution buffer: it is valid until
// the next call on this Solver. Copy it to keep it longer.
func (s *Solver[T, W, I]) SolveSorted(xs []I) ([]I, error) {
	if s.opts.Validate {
		// memo is grown by solve, so only the order can be wrong here
		if err := validateSorted[T](xs, len(xs)); err != nil {
			return nil, err
		}
	}

	return s.solve(xs), nil
}

// Solve accepts xs in any order. The input is copied into the solver's
// scratch buffer and sorted there; xs itself is not modified.
// The returned slice has the same lifetime rules as SolveSorted.
func (s *Solver[T, W, I]) Solve(xs []I) []I {
	s.scratch = append(s.scratch[:0], xs...)
	interval.SortByEnd[T](s.scratch)

	return s.solve(s.scratch)
}

// Reset drops references held by the buffers so the intervals of the last
// problem can be collected. Capacity is kept.
func (s *Solver[T, W, I]) Reset() {
	clear(s.scratch[:cap(s.scratch)])
	clear(s.solution[:cap(s.solution)])
	s.scratch = s.scratch[:0]
	s.solution = s.solution[:0]
}

func (s *Solver[T, W, I]) solve(xs []I) []I {
	if len(s.memo) < len(xs) {
		s.memo = make([]W, max(len(xs), 2*len(s.memo)))
	}
	s.solution = SolveSorted[T](xs, s.memo, s.solution[:0])
	if s.opts.Chronological {
		slices.Reverse(s.solution)
	}

	return s.solution
}

package wis

import "errors"

// Sentinel errors returned (or panicked with) by the solvers.
var (
	// ErrMemoTooSmall indicates a memo buffer shorter than the interval count.
	// SolveSorted panics with it; SolveSortedChecked returns it.
	ErrMemoTooSmall = errors.New("wis: memo buffer shorter than interval count")

	// ErrUnsortedInput indicates intervals not sorted ascending by end bound.
	ErrUnsortedInput = errors.New("wis: intervals not sorted by end bound")

	// ErrBadCapacity indicates a negative capacity passed to WithCapacity.
	ErrBadCapacity = errors.New("wis: capacity must be non-negative")
)

// Options configures a Solver.
//
// Capacity      – initial size of the memo, scratch and solution buffers.
//
//	Buffers still grow on demand; this only avoids the first allocations.
//
// Chronological – if true, results are returned earliest end first.
//
//	By default results keep reconstruction order (latest end first).
//
// Validate      – if true, Solver.SolveSorted checks that the input is sorted
//
//	by end bound and returns ErrUnsortedInput instead of a meaningless result.
type Options struct {
	Capacity      int
	Chronological bool
	Validate      bool
}

// Option represents a functional option for configuring a Solver.
type Option func(*Options)

// WithCapacity pre-sizes the solver buffers for problems of up to n intervals.
// Panics with ErrBadCapacity when n is negative.
func WithCapacity(n int) Option {
	return func(o *Options) {
		if n < 0 {
			panic(ErrBadCapacity.Error())
		}
		o.Capacity = n
	}
}

// WithChronological makes the solver return results earliest end first.
func WithChronological() Option {
	return func(o *Options) {
		o.Chronological = true
	}
}

// WithValidation makes Solver.SolveSorted verify the sort precondition.
func WithValidation() Option {
	return func(o *Options) {
		o.Validate = true
	}
}

// DefaultOptions returns the Solver defaults:
//   - Capacity:      0 (buffers grow on first use)
//   - Chronological: false (reconstruction order)
//   - Validate:      false (presorted input is trusted)
func DefaultOptions() Options {
	return Options{
		Capacity:      0,
		Chronological: false,
		Validate:      false,
	}
}

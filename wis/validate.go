package wis

import (
	"cmp"
	"fmt"

	"github.com/katalvlaran/intervals/interval"
)

// SolveSortedChecked is SolveSorted with its preconditions verified first.
// The extra cost is one O(n) scan; buffers are used exactly as SolveSorted
// uses them.
//
// Validation stages (first failure wins):
//  1. len(memo) < len(xs)       → ErrMemoTooSmall
//  2. xs not sorted by end bound → ErrUnsortedInput
//
// On error solution is returned unchanged and memo is not written.
func SolveSortedChecked[T, W cmp.Ordered, I interval.WeightedInterval[T, W]](xs []I, memo []W, solution []I) ([]I, error) {
	if err := validateSorted[T](xs, len(memo)); err != nil {
		return solution, err
	}

	return SolveSorted[T](xs, memo, solution), nil
}

// validateSorted checks the buffer size and the sort order of xs.
//
// Complexity: O(n).
func validateSorted[T cmp.Ordered, I interval.Interval[T]](xs []I, memoLen int) error {
	if memoLen < len(xs) {
		return fmt.Errorf("%w: len(memo)=%d, intervals=%d", ErrMemoTooSmall, memoLen, len(xs))
	}
	if idx, ok := interval.IsSortedByEnd[T](xs); !ok {
		return fmt.Errorf("%w: index %d ends at %v before index %d ends at %v",
			ErrUnsortedInput, idx, xs[idx].End(), idx-1, xs[idx-1].End())
	}

	return nil
}

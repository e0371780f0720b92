package wis

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/katalvlaran/intervals/interval"
)

// SolveSorted is the amortized-allocation solver. O(n log n) in the number of
// intervals.
//
// Contracts:
//   - xs must be sorted ascending by end bound. This is not checked: on
//     unsorted input the result is meaningless and weight arithmetic may
//     overflow. Use SolveSortedChecked or a validating Solver when unsure.
//   - len(memo) >= len(xs). memo is written, never cleared, and its old
//     contents are never read. An undersized memo panics with ErrMemoTooSmall
//     before anything is written.
//   - solution is appended to, exactly like the builtin append: the extended
//     slice is returned and the caller keeps it. Pass solution[:0] to reuse
//     the backing array for a fresh result, or keep old elements to merge
//     several results into one buffer.
//
// Empty xs returns solution untouched.
//
// Results are in reconstruction order: latest end bound first.
//
// Example:
//
//	memo := make([]int, maxN)
//	soln := make([]interval.Span[int, int], 0, maxN)
//	for _, jobs := range problems {
//	  interval.SortByEnd[int](jobs)
//	  soln = wis.SolveSorted[int](jobs, memo, soln[:0])
//	  // use soln before the next iteration recycles it
//	}
func SolveSorted[T, W cmp.Ordered, I interval.WeightedInterval[T, W]](xs []I, memo []W, solution []I) []I {
	if len(xs) == 0 {
		return solution
	}
	if len(memo) < len(xs) {
		panic(fmt.Errorf("%w: len(memo)=%d, intervals=%d", ErrMemoTooSmall, len(memo), len(xs)))
	}
	memo[0] = xs[0].Weight()

	return run[T](xs, memo, solution)
}

// Solve is the always-safe solver. It accepts intervals in any order, never
// modifies xs, and allocates a sorted copy, a memo table and the result on
// every call. Prefer SolveSorted or a Solver in hot loops.
//
// Empty xs yields an empty, non-nil slice without running the engine.
// Results are in reconstruction order: latest end bound first.
//
// Complexity: O(n log n) time, O(n) memory.
func Solve[T, W cmp.Ordered, I interval.WeightedInterval[T, W]](xs []I) []I {
	if len(xs) == 0 {
		return []I{}
	}

	// sort a private copy; the caller's order is unknown and theirs to keep
	sorted := slices.Clone(xs)
	interval.SortByEnd[T](sorted)

	memo := make([]W, len(sorted))
	memo[0] = sorted[0].Weight()

	return run[T](sorted, memo, nil)
}

// run fills the memo table and reconstructs the optimal subset.
// xs must be non-empty and memo[0] seeded with xs[0].Weight().
func run[T, W cmp.Ordered, I interval.WeightedInterval[T, W]](xs []I, memo []W, solution []I) []I {
	fill[T](xs, memo)

	return reconstruct[T](xs, memo, solution)
}

// fill computes memo[i], the best total achievable with xs[0..i], for i >= 1.
// memo is non-decreasing: excluded alone keeps memo[i] >= memo[i-1].
func fill[T, W cmp.Ordered, I interval.WeightedInterval[T, W]](xs []I, memo []W) {
	var (
		i        int
		included W
	)
	for i = 1; i < len(xs); i++ {
		included, _, _ = includedValue[T](xs, memo, i)
		memo[i] = max(included, memo[i-1])
	}
}

// reconstruct walks the memo table backward from the last index and appends
// the selected intervals to solution.
//
// The included value is recomputed instead of being cached during fill,
// trading an O(log n) search per step for an extra O(n) buffer.
// Selection needs included > memo[i-1]: on a tie the interval is left out.
func reconstruct[T, W cmp.Ordered, I interval.WeightedInterval[T, W]](xs []I, memo []W, solution []I) []I {
	var (
		i        = len(xs) - 1
		live     = true
		included W
		k        int
		ok       bool
	)
	for live {
		included, k, ok = includedValue[T](xs, memo, i)
		if i == 0 || included > memo[i-1] {
			solution = append(solution, xs[i])
			i, live = k, ok
		} else {
			i--
		}
	}

	return solution
}

// includedValue returns the best total when xs[i] is taken, along with the
// compatible predecessor it builds on (ok=false when there is none).
func includedValue[T, W cmp.Ordered, I interval.WeightedInterval[T, W]](xs []I, memo []W, i int) (W, int, bool) {
	k, ok := FinalCompatible[T](xs, i)
	if ok {
		return xs[i].Weight() + memo[k], k, true
	}

	return xs[i].Weight(), 0, false
}

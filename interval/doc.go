// Package interval defines the capability contracts consumed by the
// weighted interval scheduling solvers, together with a small
// batteries-included value type and a handful of helpers.
//
// 🚀 What is an interval here?
//
//	Anything with a start bound, an end bound and (optionally) a weight.
//	Bounds and weights are drawn from caller-chosen ordered types:
//	  • int64 unix seconds, time offsets, slot numbers
//	  • float64 measurements
//	  • any named type whose underlying type is ordered
//
// ✨ Key features:
//   - Interval[T] and Weighted[W] are independent contracts, so any data
//     shape can participate without wrapping.
//   - Span[T, W] is an immutable, comparable value for callers who do not
//     have their own representation.
//   - Touching intervals do not overlap: [0,5) and [5,9) are compatible.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/intervals/interval"
//
//	a := interval.New(0, 6, 3)
//	b := interval.New(6, 9, 7)
//	interval.Overlaps[int](a, b) // false, they touch at 6
//
//	jobs := []interval.Span[int, int]{b, a}
//	interval.SortByEnd[int](jobs)
//	total := interval.TotalWeight[int](jobs) // 10
//
// Performance:
//
//   - SortByEnd:     O(n log n), unstable
//   - IsSortedByEnd: O(n)
//   - Disjoint:      O(n²), for verifying results
package interval

// Package intervals picks the most valuable set of non-overlapping weighted
// intervals: bookings for one room, jobs for one machine, segments of one
// timeline.
//
// 🚀 What lives here?
//
//	A small generic library plus the wis command line tool:
//		• interval: the Interval / Weighted contracts, Span value type, helpers
//		• wis:      compatible-predecessor search, the DP engine, a reusable Solver
//		• dataset:  YAML, JSON and CSV problem files
//		• cmd/wis:  `wis solve FILE...` printing text, JSON or YAML
//
// ✨ Why use it?
//
//   - Generic over bounds and weights: anything in cmp.Ordered
//   - Works on your own types, no wrapping or copying into a library struct
//   - O(n log n) per problem, zero allocations on the presorted path
//
// Quick start:
//
//	xs := []interval.Span[int, int]{
//		interval.New(0, 6, 3),
//		interval.New(1, 4, 5),
//		interval.New(5, 9, 7),
//	}
//	best := wis.Solve[int, int](xs) // [5,9) w=7, [1,4) w=5
//
// See the package documentation of interval and wis for details.
package intervals

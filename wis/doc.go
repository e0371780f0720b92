// Package wis solves the Weighted Interval Scheduling problem: given
// intervals with a start bound, an end bound and a weight, select the
// mutually non-overlapping subset with the largest total weight.
//
// 🚀 What is Weighted Interval Scheduling?
//
//	Each interval competes for one shared resource (a machine, a room, a
//	person). Touching intervals do not conflict: one ending at t is
//	compatible with one starting at t. Typical uses:
//	  • Picking the most valuable set of bookings for a single room
//	  • Choosing non-conflicting jobs on one machine
//	  • Selecting highlight segments from a timeline
//
// ✨ Key features:
//   - Generic over bounds and weights: anything in cmp.Ordered
//   - Works on caller types through interval.WeightedInterval, no wrapping
//   - O(n log n) with a binary-searched compatible predecessor
//   - Zero-reallocation path: caller-owned memo and solution buffers
//   - Reusable Solver that owns those buffers across many problems
//
// Algorithm Outline:
//  1. Sort intervals ascending by end bound (Solve does this for you).
//  2. memo[0] = w(0). For i = 1..n-1:
//     included = w(i) + memo[p(i)]   (or w(i) when p(i) does not exist)
//     excluded = memo[i-1]
//     memo[i]  = max(included, excluded)
//     where p(i) is the last interval ending at or before start(i).
//  3. Walk back from n-1. Interval i is selected when i == 0 or
//     included > memo[i-1]; the cursor then jumps to p(i). Otherwise it
//     moves to i-1. Ties exclude the later interval.
//
// ⚙️ Usage:
//
//	import "github.com/katalvlaran/intervals/wis"
//
//	// any order, always safe:
//	best := wis.Solve[int, int](jobs)
//
//	// presorted, caller-owned buffers, no allocation once warmed up:
//	memo := make([]int, maxN)
//	soln := make([]interval.Span[int, int], 0, maxN)
//	for _, jobs := range problems {
//	  soln = wis.SolveSorted[int](jobs, memo, soln[:0])
//	}
//
// Both entry points return intervals in reconstruction order, latest end
// first. Reverse the slice (slices.Reverse) for chronological order, or use
// a Solver configured WithChronological.
//
// Performance:
//
//   - Time:   O(n log n)
//   - Memory: O(n) for memo; Solve also copies the input
//
// Nothing in this package is safe for concurrent use of the same buffers or
// the same Solver. Independent solves need independent buffers.
package wis

package interval

import (
	"cmp"
	"slices"
)

// Overlaps reports whether a and b share interior points.
// Touching bounds (a.End() == b.Start()) do not count as overlap.
func Overlaps[T cmp.Ordered](a, b Interval[T]) bool {
	return a.Start() < b.End() && b.Start() < a.End()
}

// SortByEnd sorts xs in place, ascending by end bound.
// The sort is unstable: order among equal end bounds is unspecified.
//
// Complexity: O(n log n).
func SortByEnd[T cmp.Ordered, I Interval[T]](xs []I) {
	slices.SortFunc(xs, func(a, b I) int {
		return cmp.Compare(a.End(), b.End())
	})
}

// IsSortedByEnd reports whether xs is non-decreasing by end bound.
// When it is not, the returned index is the first position whose end bound
// is smaller than its predecessor's; otherwise it is -1.
//
// Complexity: O(n).
func IsSortedByEnd[T cmp.Ordered, I Interval[T]](xs []I) (int, bool) {
	var i int
	for i = 1; i < len(xs); i++ {
		if xs[i].End() < xs[i-1].End() {
			return i, false
		}
	}

	return -1, true
}

// TotalWeight sums the weights of xs. An empty slice yields the zero value.
func TotalWeight[W cmp.Ordered, I Weighted[W]](xs []I) W {
	var total W
	for _, x := range xs {
		total += x.Weight()
	}

	return total
}

// Disjoint reports whether no two intervals in xs overlap, using the same
// rule as Overlaps. It is meant for verifying solver output.
//
// Complexity: O(n²).
func Disjoint[T cmp.Ordered, I Interval[T]](xs []I) bool {
	var i, j int
	for i = 0; i < len(xs); i++ {
		for j = i + 1; j < len(xs); j++ {
			if Overlaps[T](xs[i], xs[j]) {
				return false
			}
		}
	}

	return true
}

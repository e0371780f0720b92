package wis

import (
	"cmp"

	"github.com/katalvlaran/intervals/interval"
)

// FinalCompatible finds the compatible predecessor of xs[i]: the greatest
// index k < i such that xs[k].End() <= xs[i].Start().
// ok is false when no such index exists, which is always the case for i == 0.
//
// Contracts:
//   - xs must be sorted ascending by end bound.
//   - 0 <= i < len(xs).
//
// The search runs over [0, i-1] with an upper-mid bias so that it converges
// on the largest qualifying index rather than the first one. low always
// holds the current candidate; the final check rejects it when even xs[0]
// ends after the target.
//
// Complexity: O(log i).
func FinalCompatible[T cmp.Ordered, I interval.Interval[T]](xs []I, i int) (k int, ok bool) {
	if i == 0 {
		return 0, false
	}

	var (
		low    = 0
		high   = i - 1
		target = xs[i].Start()
		mid    int
	)
	for low < high {
		mid = low + (high-low+1)/2
		if xs[mid].End() <= target {
			low = mid
		} else {
			high = mid - 1
		}
	}
	if xs[low].End() > target {
		return 0, false
	}

	return low, true
}

// Package wis_test provides small helpers shared across *_test.go files:
// fixtures from the classic textbook instance, a brute-force reference
// solver for small n, and deterministic random instances.
package wis_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/intervals/interval"
	"github.com/stretchr/testify/require"
)

type span = interval.Span[int, int]

const (
	// seedDet keeps random instances reproducible across runs.
	seedDet = int64(20240611)

	// bruteMaxN bounds the brute-force reference (2^n subsets).
	bruteMaxN = 12
)

// textbook returns the classic eight-interval instance in input (unsorted)
// order. Optimum: (1,4,5) + (5,9,7) = 12.
func textbook() []span {
	return []span{
		interval.New(0, 6, 3),
		interval.New(1, 4, 5),
		interval.New(3, 5, 5),
		interval.New(3, 8, 8),
		interval.New(4, 7, 3),
		interval.New(5, 9, 7),
		interval.New(6, 10, 3),
		interval.New(8, 11, 4),
	}
}

// sortedCopy returns xs sorted by end bound without touching xs.
func sortedCopy(xs []span) []span {
	cp := append([]span(nil), xs...)
	interval.SortByEnd[int](cp)

	return cp
}

// bruteBest enumerates every non-empty subset of xs and returns the best
// total among the pairwise non-overlapping ones.
func bruteBest(t *testing.T, xs []span) int {
	t.Helper()
	require.LessOrEqual(t, len(xs), bruteMaxN, "brute force is exponential")

	var (
		best  int
		found bool
		mask  int
		picks []span
		i     int
	)
	for mask = 1; mask < 1<<len(xs); mask++ {
		picks = picks[:0]
		for i = 0; i < len(xs); i++ {
			if mask&(1<<i) != 0 {
				picks = append(picks, xs[i])
			}
		}
		if !interval.Disjoint[int](picks) {
			continue
		}
		if total := interval.TotalWeight[int](picks); !found || total > best {
			best, found = total, true
		}
	}

	return best
}

// randomSpans builds n intervals with positive length and positive weight.
func randomSpans(rng *rand.Rand, n int) []span {
	xs := make([]span, n)
	var (
		i, start, length int
	)
	for i = 0; i < n; i++ {
		start = rng.Intn(20)
		length = 1 + rng.Intn(8)
		xs[i] = interval.New(start, start+length, 1+rng.Intn(20))
	}

	return xs
}

package wis_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/intervals/interval"
	"github.com/katalvlaran/intervals/wis"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestSolve_Textbook checks the classic instance and the reconstruction order.
func TestSolve_Textbook(t *testing.T) {
	got := wis.Solve[int, int](textbook())

	require.Len(t, got, 2)
	assert.Equal(t, []span{interval.New(5, 9, 7), interval.New(1, 4, 5)}, got,
		"reconstruction order is latest end first")
	assert.Equal(t, 12, interval.TotalWeight[int](got))
}

// TestSolve_TextbookWithLeadingInterval adds (0,1,2) in front of the classic
// instance. It touches (1,4,5), so the optimum grows to 14.
func TestSolve_TextbookWithLeadingInterval(t *testing.T) {
	xs := append([]span{interval.New(0, 1, 2)}, textbook()...)

	got := wis.Solve[int, int](xs)

	assert.Equal(t, []span{
		interval.New(5, 9, 7),
		interval.New(1, 4, 5),
		interval.New(0, 1, 2),
	}, got)
	assert.Equal(t, 14, interval.TotalWeight[int](got))
	assert.Equal(t, bruteBest(t, xs), interval.TotalWeight[int](got))
}

// TestSolve_Empty verifies the empty-input short circuit of both entry points.
func TestSolve_Empty(t *testing.T) {
	got := wis.Solve[int, int]([]span{})
	assert.NotNil(t, got)
	assert.Empty(t, got)

	got = wis.Solve[int, int]([]span(nil))
	assert.Empty(t, got)

	// zero-length memo is fine: the engine is never invoked
	soln := wis.SolveSorted[int]([]span{}, []int{}, nil)
	assert.Empty(t, soln)

	prior := []span{interval.New(1, 2, 3)}
	soln = wis.SolveSorted[int]([]span{}, []int(nil), prior)
	assert.Equal(t, prior, soln, "solution buffer is returned untouched")
}

// TestSolve_Single returns the lone interval unchanged.
func TestSolve_Single(t *testing.T) {
	only := interval.New(0, 128, 15)

	assert.Equal(t, []span{only}, wis.Solve[int, int]([]span{only}))

	memo := []int{-99}
	assert.Equal(t, []span{only}, wis.SolveSorted[int]([]span{only}, memo, nil))
	assert.Equal(t, 15, memo[0], "memo[0] is seeded from the first interval")
}

// TestSolve_TieExcludesLaterInterval pins the tie-break policy: when the
// same total is reachable with and without interval i, i is left out.
func TestSolve_TieExcludesLaterInterval(t *testing.T) {
	t.Run("two overlapping equals", func(t *testing.T) {
		a := interval.New(0, 3, 5)
		b := interval.New(1, 4, 5)
		assert.Equal(t, []span{a}, wis.Solve[int, int]([]span{b, a}))
	})

	t.Run("one long versus two short", func(t *testing.T) {
		a := interval.New(0, 2, 3)
		b := interval.New(2, 4, 3)
		c := interval.New(0, 5, 6)
		assert.Equal(t, []span{b, a}, wis.Solve[int, int]([]span{c, b, a}))
	})

	t.Run("textbook neighbours", func(t *testing.T) {
		// (3,5,5) ties with (1,4,5) and (8,11,4) ties with the running best
		got := wis.Solve[int, int](textbook())
		assert.NotContains(t, got, interval.New(3, 5, 5))
		assert.NotContains(t, got, interval.New(8, 11, 4))
	})

	t.Run("deterministic", func(t *testing.T) {
		xs := []span{interval.New(0, 3, 5), interval.New(1, 4, 5)}
		first := wis.Solve[int, int](xs)
		var i int
		for i = 0; i < 10; i++ {
			assert.Equal(t, first, wis.Solve[int, int](xs))
		}
	})
}

// TestSolve_DoesNotModifyInput ensures Solve sorts a private copy.
func TestSolve_DoesNotModifyInput(t *testing.T) {
	xs := textbook()
	before := append([]span(nil), xs...)

	_ = wis.Solve[int, int](xs)

	assert.Equal(t, before, xs)
}

// TestSolve_MatchesBruteForce checks optimality and feasibility on random
// instances small enough to enumerate.
func TestSolve_MatchesBruteForce(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet))
	var round int
	for round = 0; round < 300; round++ {
		xs := randomSpans(rng, 1+rng.Intn(bruteMaxN))

		got := wis.Solve[int, int](xs)

		require.True(t, interval.Disjoint[int](got), "round %d: overlap in %v", round, got)
		require.Equal(t, bruteBest(t, xs), interval.TotalWeight[int](got), "round %d: %v", round, xs)
	}
}

// TestSolveSorted_Textbook runs the amortized entry point on presorted input.
func TestSolveSorted_Textbook(t *testing.T) {
	xs := sortedCopy(textbook())
	memo := make([]int, len(xs))

	got := wis.SolveSorted[int](xs, memo, nil)

	assert.Equal(t, []span{interval.New(5, 9, 7), interval.New(1, 4, 5)}, got)
	assert.Equal(t, []int{5, 5, 5, 8, 8, 12, 12, 12}, memo, "memo is non-decreasing")
}

// TestSolveSorted_StaleMemo shows that old memo contents are irrelevant.
func TestSolveSorted_StaleMemo(t *testing.T) {
	xs := sortedCopy(textbook())
	memo := []int{1000, -7, 42, 42, 42, 42, 42, 42, 999, 999}

	got := wis.SolveSorted[int](xs, memo, nil)

	assert.Equal(t, []span{interval.New(5, 9, 7), interval.New(1, 4, 5)}, got)
	assert.Equal(t, []int{999, 999}, memo[len(xs):], "entries past n are left alone")
}

// TestSolveSorted_Appends keeps earlier buffer contents, as append does.
func TestSolveSorted_Appends(t *testing.T) {
	xs := sortedCopy(textbook())
	memo := make([]int, len(xs))
	prior := interval.New(-5, -1, 1)

	got := wis.SolveSorted[int](xs, memo, []span{prior})

	assert.Equal(t, []span{prior, interval.New(5, 9, 7), interval.New(1, 4, 5)}, got)
}

// TestSolveSorted_Idempotent solves the same input into fresh buffers twice.
func TestSolveSorted_Idempotent(t *testing.T) {
	rng := rand.New(rand.NewSource(seedDet + 1))
	xs := sortedCopy(randomSpans(rng, 64))

	memo := make([]int, len(xs))
	soln := make([]span, 0, len(xs))
	first := append([]span(nil), wis.SolveSorted[int](xs, memo, soln[:0])...)

	clear(memo)
	second := wis.SolveSorted[int](xs, memo, soln[:0])

	assert.Equal(t, first, second)
}

// TestSolveSorted_MemoTooSmallPanics verifies the explicit undersized-memo panic.
func TestSolveSorted_MemoTooSmallPanics(t *testing.T) {
	xs := sortedCopy(textbook())
	soln := []span{interval.New(-5, -1, 1)}

	var recovered any
	func() {
		defer func() { recovered = recover() }()
		soln = wis.SolveSorted[int](xs, make([]int, 3), soln)
	}()

	err, ok := recovered.(error)
	require.True(t, ok, "panic value must be an error, got %v", recovered)
	assert.ErrorIs(t, err, wis.ErrMemoTooSmall)
	assert.Len(t, soln, 1, "nothing appended before the panic")
}

// weightedShift is a caller type with float bounds and uint weights.
type weightedShift struct {
	name     string
	from, to float64
	credits  uint16
}

func (w weightedShift) Start() float64 { return w.from }
func (w weightedShift) End() float64   { return w.to }
func (w weightedShift) Weight() uint16 { return w.credits }

// TestSolve_CustomType runs the solver on a caller-defined type.
func TestSolve_CustomType(t *testing.T) {
	xs := []weightedShift{
		{name: "night", from: 22.0, to: 30.0, credits: 9},
		{name: "early", from: 6.0, to: 14.0, credits: 4},
		{name: "late", from: 14.0, to: 22.0, credits: 4},
		{name: "double", from: 6.0, to: 22.5, credits: 10},
	}

	got := wis.Solve[float64, uint16](xs)

	names := make([]string, len(got))
	for i, s := range got {
		names[i] = s.name
	}
	assert.Equal(t, []string{"night", "late", "early"}, names)
	assert.Equal(t, uint16(17), interval.TotalWeight[uint16](got))
}

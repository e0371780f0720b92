package interval

import (
	"cmp"
	"errors"
	"fmt"
)

// ErrInvertedBounds indicates an interval whose end bound precedes its start bound.
var ErrInvertedBounds = errors.New("interval: end bound precedes start bound")

// Interval is anything with bounds over a one-dimensional ordered domain.
type Interval[T cmp.Ordered] interface {
	Start() T
	End() T
}

// Weighted is anything carrying a number-like value.
//
// Every type in cmp.Ordered supports both comparison and addition, which is
// exactly what the solvers need from a weight. Overflow is the weight
// type's own business: nothing in this module detects it.
type Weighted[W cmp.Ordered] interface {
	Weight() W
}

// WeightedInterval composes Interval and Weighted. It is the capability the
// solvers in package wis are written against.
type WeightedInterval[T, W cmp.Ordered] interface {
	Interval[T]
	Weighted[W]
}

// Span is the batteries-included weighted interval. It is an immutable,
// comparable value: two spans are == when bounds and weight match.
//
// Callers with their own representation do not need Span at all; implementing
// Start/End/Weight is enough.
type Span[T, W cmp.Ordered] struct {
	start  T
	end    T
	weight W
}

// compile-time check
var _ WeightedInterval[int, int] = Span[int, int]{}

// New builds a Span without validating its bounds.
func New[T, W cmp.Ordered](start, end T, weight W) Span[T, W] {
	return Span[T, W]{start: start, end: end, weight: weight}
}

// NewChecked builds a Span and returns ErrInvertedBounds when end < start.
func NewChecked[T, W cmp.Ordered](start, end T, weight W) (Span[T, W], error) {
	if end < start {
		return Span[T, W]{}, fmt.Errorf("%w: start=%v end=%v", ErrInvertedBounds, start, end)
	}

	return New(start, end, weight), nil
}

// Start returns the start bound.
func (s Span[T, W]) Start() T { return s.start }

// End returns the end bound.
func (s Span[T, W]) End() T { return s.end }

// Weight returns the weight.
func (s Span[T, W]) Weight() W { return s.weight }

// Tuple unpacks the span as (start, end, weight).
func (s Span[T, W]) Tuple() (T, T, W) { return s.start, s.end, s.weight }

// String renders the span as "[start, end) w=weight".
func (s Span[T, W]) String() string {
	return fmt.Sprintf("[%v, %v) w=%v", s.start, s.end, s.weight)
}

package segtree

import (
	"golang.org/x/exp/constraints"
)

type Number interface {
	constraints.Integer | constraints.Float
}

// Aggregator merges the values of two adjacent ranges. Combine must be
// associative; it need not be commutative, the left range is always x.
type Aggregator[T any] struct {
	Name    string
	Combine func(x, y T) T

	identity    T
	hasIdentity bool
}

func NewAggregator[T any](name string, combine func(x, y T) T) Aggregator[T] {
	return Aggregator[T]{Name: name, Combine: combine}
}

// WithIdentity returns a copy of a that uses id as the value of an empty range.
func (a Aggregator[T]) WithIdentity(id T) Aggregator[T] {
	a.identity = id
	a.hasIdentity = true
	return a
}

// Identity returns the empty-range value, if one was configured.
func (a Aggregator[T]) Identity() (T, bool) {
	return a.identity, a.hasIdentity
}

func Sum[T Number]() Aggregator[T] {
	return NewAggregator("sum", func(x, y T) T { return x + y }).WithIdentity(0)
}

// Min has no identity; use WithIdentity with a sentinel such as math.MaxInt64
// if empty ranges must be answered.
func Min[T constraints.Ordered]() Aggregator[T] {
	return NewAggregator("min", func(x, y T) T {
		if y < x {
			return y
		}
		return x
	})
}

func Max[T constraints.Ordered]() Aggregator[T] {
	return NewAggregator("max", func(x, y T) T {
		if y > x {
			return y
		}
		return x
	})
}

// GCD works on absolute values. gcd(0, x) = |x|, so 0 is an identity only up
// to sign; Query never folds it into a non-empty range.
func GCD[T constraints.Integer]() Aggregator[T] {
	return NewAggregator("gcd", func(x, y T) T {
		if x < 0 {
			x = -x
		}
		if y < 0 {
			y = -y
		}
		for y != 0 {
			x, y = y, x%y
		}
		return x
	}).WithIdentity(0)
}

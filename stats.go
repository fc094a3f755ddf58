package mathvector

import (
	"slices"

	"github.com/hazed7/math-vector/internal/selection"
)

// Sum returns the left fold of the elements with +, starting from the type's
// zero value. An empty vector sums to zero.
func (v *Vector[T]) Sum() T {
	var sum T
	for _, x := range v.elems {
		sum += x
	}
	return sum
}

// Product returns the left fold of the elements with *, starting from the
// type's multiplicative unit. An empty vector multiplies to one.
func (v *Vector[T]) Product() T {
	prod := T(1)
	for _, x := range v.elems {
		prod *= x
	}
	return prod
}

// Mean returns Sum divided by the element count, using T-typed division
// (truncating for integer element types). An empty vector fails with
// ErrEmptyVector.
func (v *Vector[T]) Mean() (T, error) {
	if len(v.elems) == 0 {
		var zero T
		return zero, ErrEmptyVector
	}
	return v.Sum() / T(len(v.elems)), nil
}

// Median returns the middle element in sorted order without fully sorting:
// a partial selection places the upper-middle element in expected linear
// time. For odd sizes that element is the median; for even sizes the result
// is the average of the two middle elements, with T-typed division.
//
// A single selection pass only guarantees the partition property around the
// selected index, not that the slot just before it holds the true
// predecessor. The predecessor is therefore taken as the maximum of the left
// partition, which is always correct given the partition invariant.
//
// An empty vector fails with ErrEmptyVector. The vector itself is not
// reordered; selection runs on a scratch copy.
func (v *Vector[T]) Median() (T, error) {
	n := len(v.elems)
	if n == 0 {
		var zero T
		return zero, ErrEmptyVector
	}

	work := slices.Clone(v.elems)
	mid := n / 2
	selection.Nth(work, mid)
	upper := work[mid]

	if n%2 == 1 {
		return upper, nil
	}

	lower := work[0]
	for _, x := range work[1:mid] {
		if x > lower {
			lower = x
		}
	}
	return (lower + upper) / 2, nil
}

package mathvector

import "slices"

// Number is the element constraint for Vector: any built-in numeric type
// supporting arithmetic, equality and ordering.
type Number interface {
	~int | ~int8 | ~int16 | ~int32 | ~int64 |
		~uint | ~uint8 | ~uint16 | ~uint32 | ~uint64 |
		~float32 | ~float64
}

// Float is the element constraint for operations that are only meaningful on
// floating-point element types (Magnitude, Normalize).
type Float interface {
	~float32 | ~float64
}

// Vector is a contiguous, exclusively-owned numeric sequence of a tracked
// logical size. The zero value is an empty vector ready for use.
//
// Element order is significant and preserved across all non-structural
// operations. Structural mutations (Insert, Erase, Resize) may reallocate the
// backing storage; raw views obtained via Elems must not be retained across
// a mutating call.
type Vector[T Number] struct {
	elems []T
}

// New creates a vector of size default-valued (zero) elements.
// A negative size fails with ErrInvalidSize.
func New[T Number](size int) (*Vector[T], error) {
	if size < 0 {
		return nil, ErrInvalidSize
	}
	return &Vector[T]{elems: make([]T, size)}, nil
}

// FromSlice adopts buf as the vector's storage. Ownership transfers: the
// caller must not access or modify buf afterward. A nil buf yields an empty
// vector.
func FromSlice[T Number](buf []T) *Vector[T] {
	return &Vector[T]{elems: buf}
}

// Of constructs a vector from the given elements.
func Of[T Number](elems ...T) *Vector[T] {
	return &Vector[T]{elems: elems}
}

// Clone returns a deep copy with freshly allocated storage.
func (v *Vector[T]) Clone() *Vector[T] {
	return &Vector[T]{elems: slices.Clone(v.elems)}
}

// Take transfers ownership of the backing storage to the caller and leaves
// the vector empty (size 0, no storage). This is the move operation: the
// returned slice is no longer aliased by the vector.
func (v *Vector[T]) Take() []T {
	elems := v.elems
	v.elems = nil
	return elems
}

// Len returns the logical element count.
func (v *Vector[T]) Len() int {
	return len(v.elems)
}

// IsEmpty reports whether the vector has size 0.
func (v *Vector[T]) IsEmpty() bool {
	return len(v.elems) == 0
}

// At returns the element at index i.
func (v *Vector[T]) At(i int) (T, error) {
	if i < 0 || i >= len(v.elems) {
		var zero T
		return zero, &ErrIndexOutOfRange{Index: i, Size: len(v.elems)}
	}
	return v.elems[i], nil
}

// Set writes val at index i.
func (v *Vector[T]) Set(i int, val T) error {
	if i < 0 || i >= len(v.elems) {
		return &ErrIndexOutOfRange{Index: i, Size: len(v.elems)}
	}
	v.elems[i] = val
	return nil
}

// Elems exposes the backing storage without copying. Mutating the returned
// slice mutates the vector; any structural mutation of the vector invalidates
// the returned slice.
func (v *Vector[T]) Elems() []T {
	return v.elems
}

// ToSlice returns an independent copy of the elements.
func (v *Vector[T]) ToSlice() []T {
	return slices.Clone(v.elems)
}

// SubVec returns a fresh copy of the half-open element range [start, end).
// start >= end or end > Len fails with ErrInvalidRange.
func (v *Vector[T]) SubVec(start, end int) (*Vector[T], error) {
	if start < 0 || start >= end || end > len(v.elems) {
		return nil, &ErrInvalidRange{First: start, Last: end, Size: len(v.elems)}
	}
	sub := make([]T, end-start)
	copy(sub, v.elems[start:end])
	return &Vector[T]{elems: sub}, nil
}

// Concat returns a fresh vector holding a's elements followed by b's.
func Concat[T Number](a, b *Vector[T]) *Vector[T] {
	joined := make([]T, 0, len(a.elems)+len(b.elems))
	joined = append(joined, a.elems...)
	joined = append(joined, b.elems...)
	return &Vector[T]{elems: joined}
}

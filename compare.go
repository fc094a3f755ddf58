package mathvector

import "slices"

// Equal reports structural equality: same size and equal elements at every
// position, independent of storage identity. Two vectors with identical
// contents in different allocations compare equal.
func Equal[T Number](a, b *Vector[T]) bool {
	return slices.Equal(a.elems, b.elems)
}

// Compare orders a and b lexicographically over their element sequences
// using the element type's natural ordering, returning -1, 0 or +1. On an
// equal prefix the shorter vector compares less.
func Compare[T Number](a, b *Vector[T]) int {
	return slices.Compare(a.elems, b.elems)
}

// Less reports whether a orders strictly before b.
func Less[T Number](a, b *Vector[T]) bool {
	return Compare(a, b) < 0
}

// Greater reports whether a orders strictly after b.
func Greater[T Number](a, b *Vector[T]) bool {
	return Compare(a, b) > 0
}

// LessOrEqual reports whether a does not order after b.
func LessOrEqual[T Number](a, b *Vector[T]) bool {
	return Compare(a, b) <= 0
}

// GreaterOrEqual reports whether a does not order before b.
func GreaterOrEqual[T Number](a, b *Vector[T]) bool {
	return Compare(a, b) >= 0
}

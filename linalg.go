package mathvector

import "math"

// Dot returns the elementwise-multiply-then-sum reduction of u and v, seeded
// at the type's zero value. Vectors of different sizes fail with
// ErrSizeMismatch. Dot is commutative.
func Dot[T Number](u, v *Vector[T]) (T, error) {
	var sum T
	if len(u.elems) != len(v.elems) {
		return sum, &ErrSizeMismatch{Expected: len(u.elems), Actual: len(v.elems)}
	}
	for i, x := range u.elems {
		sum += x * v.elems[i]
	}
	return sum, nil
}

// Cross returns the cross product of a and b as a fresh vector. Vectors of
// different sizes fail with ErrSizeMismatch; fewer than 3 components fail
// with ErrInvalidDimension.
//
// Every component follows the cyclic index pattern
//
//	w[i] = a[(i+1)%n] * b[(i+2)%n] - a[(i+2)%n] * b[(i+1)%n]
//
// which coincides with the standard 3D determinant formula for n == 3.
// Beyond 3 dimensions this is a heuristic generalization, not standard
// mathematics; it is kept as-is for compatibility with existing consumers.
func Cross[T Number](a, b *Vector[T]) (*Vector[T], error) {
	n := len(a.elems)
	if n != len(b.elems) {
		return nil, &ErrSizeMismatch{Expected: n, Actual: len(b.elems)}
	}
	if n < 3 {
		return nil, &ErrInvalidDimension{Dimension: n}
	}

	w := make([]T, n)
	for i := 0; i < n; i++ {
		j, k := (i+1)%n, (i+2)%n
		w[i] = a.elems[j]*b.elems[k] - a.elems[k]*b.elems[j]
	}
	return &Vector[T]{elems: w}, nil
}

// Magnitude returns the Euclidean length of v: the square root of Dot(v, v).
// It is non-negative, and zero exactly when every element is zero.
func Magnitude[T Float](v *Vector[T]) T {
	var sq T
	for _, x := range v.elems {
		sq += x * x
	}
	return T(math.Sqrt(float64(sq)))
}

// Normalize scales every element of v by 1/Magnitude(v) in place, giving v
// unit length. If the magnitude is exactly zero the vector is left unchanged
// and Normalize returns false.
func Normalize[T Float](v *Vector[T]) bool {
	mag := Magnitude(v)
	if mag == 0 {
		return false
	}
	v.Scale(1 / mag)
	return true
}

// Scale multiplies every element by scalar in place and returns the receiver
// for chaining.
func (v *Vector[T]) Scale(scalar T) *Vector[T] {
	for i := range v.elems {
		v.elems[i] *= scalar
	}
	return v
}

// Add returns a fresh vector holding the elementwise sum of a and b. Vectors
// of different sizes fail with ErrSizeMismatch. Neither operand is modified;
// use AddAssign for in-place accumulation.
func Add[T Number](a, b *Vector[T]) (*Vector[T], error) {
	if len(a.elems) != len(b.elems) {
		return nil, &ErrSizeMismatch{Expected: len(a.elems), Actual: len(b.elems)}
	}
	out := make([]T, len(a.elems))
	for i, x := range a.elems {
		out[i] = x + b.elems[i]
	}
	return &Vector[T]{elems: out}, nil
}

// Sub returns a fresh vector holding the elementwise difference a - b.
// Vectors of different sizes fail with ErrSizeMismatch.
func Sub[T Number](a, b *Vector[T]) (*Vector[T], error) {
	if len(a.elems) != len(b.elems) {
		return nil, &ErrSizeMismatch{Expected: len(a.elems), Actual: len(b.elems)}
	}
	out := make([]T, len(a.elems))
	for i, x := range a.elems {
		out[i] = x - b.elems[i]
	}
	return &Vector[T]{elems: out}, nil
}

// AddAssign adds other into v elementwise, in place. Vectors of different
// sizes fail with ErrSizeMismatch and v is left unchanged.
func (v *Vector[T]) AddAssign(other *Vector[T]) error {
	if len(v.elems) != len(other.elems) {
		return &ErrSizeMismatch{Expected: len(v.elems), Actual: len(other.elems)}
	}
	for i, x := range other.elems {
		v.elems[i] += x
	}
	return nil
}

// SubAssign subtracts other from v elementwise, in place. Vectors of
// different sizes fail with ErrSizeMismatch and v is left unchanged.
func (v *Vector[T]) SubAssign(other *Vector[T]) error {
	if len(v.elems) != len(other.elems) {
		return &ErrSizeMismatch{Expected: len(v.elems), Actual: len(other.elems)}
	}
	for i, x := range other.elems {
		v.elems[i] -= x
	}
	return nil
}

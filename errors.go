package mathvector

import (
	"errors"
	"fmt"
)

var (
	// ErrEmptyVector is returned by reductions that require at least one
	// element (Mean, Median, Max, Min) when the vector has size 0.
	ErrEmptyVector = errors.New("vector has no elements")

	// ErrInvalidSize is returned when a requested size or count is negative.
	ErrInvalidSize = errors.New("size must be non-negative")
)

// ErrIndexOutOfRange indicates an index argument outside the valid bounds of
// the vector.
type ErrIndexOutOfRange struct {
	Index int
	Size  int
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d (size %d)", e.Index, e.Size)
}

// ErrInvalidRange indicates a half-open range argument [First, Last) that
// violates the vector's bounds or is empty/inverted.
type ErrInvalidRange struct {
	First int
	Last  int
	Size  int
}

func (e *ErrInvalidRange) Error() string {
	return fmt.Sprintf("invalid range: [%d, %d) (size %d)", e.First, e.Last, e.Size)
}

// ErrSizeMismatch indicates an operation between two vectors of different
// sizes (Dot, Cross, Add, Sub).
type ErrSizeMismatch struct {
	Expected int
	Actual   int
}

func (e *ErrSizeMismatch) Error() string {
	return fmt.Sprintf("size mismatch: expected %d, got %d", e.Expected, e.Actual)
}

// ErrInvalidDimension indicates a vector of insufficient dimension for the
// requested operation (e.g. Cross on fewer than 3 components).
type ErrInvalidDimension struct {
	Dimension int
}

func (e *ErrInvalidDimension) Error() string {
	return fmt.Sprintf("invalid dimension: %d", e.Dimension)
}

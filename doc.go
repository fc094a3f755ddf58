// Package mathvector provides a generic, contiguous, owned numeric sequence
// type with value semantics.
//
// Vector[T] combines array-like storage with a curated set of math and
// statistics operations: reductions (Sum, Product, Mean, Median), order
// statistics with explicit tie reporting (Max, Min), index-addressed
// structural mutation (Insert, Erase, Resize), and elementary linear algebra
// (Dot, Cross, Magnitude, Normalize).
//
// # Quick Start
//
//	v := mathvector.Of(3.0, 1.0, 4.0, 1.0, 5.0)
//
//	sum := v.Sum()            // 14
//	med, _ := v.Median()      // 3
//
//	ext, _ := v.Min()
//	switch ext.Kind() {
//	case mathvector.KindSingle:
//	    pos, _ := ext.Position()
//	    fmt.Println("minimum at", pos)
//	case mathvector.KindTies:
//	    fmt.Println("minimum tied at", ext.Positions()) // [1 3]
//	}
//
// # Ownership and Views
//
// A Vector exclusively owns its storage. Elems exposes the raw backing slice
// for hot paths; any mutating call (Insert, Erase, Resize, Clear) may swap in
// a fresh buffer and invalidates previously obtained views. ToSlice returns
// an independent copy.
//
// # Error Model
//
// All argument errors are detected eagerly, before any mutation: a failed
// operation leaves the vector exactly as it was. Errors are matched with
// errors.Is / errors.As; see ErrIndexOutOfRange, ErrInvalidRange,
// ErrSizeMismatch, ErrInvalidDimension and the ErrEmptyVector sentinel.
//
// # Concurrency
//
// A Vector is a plain value type: safe to move between goroutines, not safe
// for concurrent mutation without external synchronization. All operations
// are synchronous and CPU-bound.
package mathvector

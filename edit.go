package mathvector

// Structural mutation: index-addressed, order-preserving insert/erase plus
// resize. Every mutation validates its arguments first, then builds a fresh
// buffer and swaps it in, so a failed call never leaves partial state and no
// slot is read after being overwritten.

// Resize changes the logical size to newSize. Same size is a no-op. Growing
// preserves the existing prefix and fills the new slots with fill; shrinking
// truncates the suffix. A negative newSize fails with ErrInvalidSize.
func (v *Vector[T]) Resize(newSize int, fill T) error {
	if newSize < 0 {
		return ErrInvalidSize
	}
	if newSize == len(v.elems) {
		return nil
	}

	next := make([]T, newSize)
	n := copy(next, v.elems)
	for i := n; i < newSize; i++ {
		next[i] = fill
	}

	v.elems = next
	return nil
}

// Clear releases the storage and resets the size to 0.
func (v *Vector[T]) Clear() {
	v.elems = nil
}

// Insert places val at position pos, shifting all elements at or after pos
// one slot to the right. pos may equal Len (append). pos > Len fails with
// ErrIndexOutOfRange.
func (v *Vector[T]) Insert(pos int, val T) error {
	return v.InsertN(pos, 1, val)
}

// InsertN places count copies of val at position pos; the shift distance is
// count. A count of 0 is a no-op; a negative count fails with ErrInvalidSize.
func (v *Vector[T]) InsertN(pos, count int, val T) error {
	if pos < 0 || pos > len(v.elems) {
		return &ErrIndexOutOfRange{Index: pos, Size: len(v.elems)}
	}
	if count < 0 {
		return ErrInvalidSize
	}
	if count == 0 {
		return nil
	}

	next := make([]T, len(v.elems)+count)
	copy(next, v.elems[:pos])
	for i := pos; i < pos+count; i++ {
		next[i] = val
	}
	copy(next[pos+count:], v.elems[pos:])

	v.elems = next
	return nil
}

// InsertSlice places the given ordered elements as a contiguous block at
// position pos; the size grows by len(elems).
func (v *Vector[T]) InsertSlice(pos int, elems []T) error {
	if pos < 0 || pos > len(v.elems) {
		return &ErrIndexOutOfRange{Index: pos, Size: len(v.elems)}
	}
	if len(elems) == 0 {
		return nil
	}

	next := make([]T, len(v.elems)+len(elems))
	copy(next, v.elems[:pos])
	copy(next[pos:], elems)
	copy(next[pos+len(elems):], v.elems[pos:])

	v.elems = next
	return nil
}

// InsertValues is the literal-list convenience form of InsertSlice.
func (v *Vector[T]) InsertValues(pos int, elems ...T) error {
	return v.InsertSlice(pos, elems)
}

// Erase removes the element at position pos, shifting all elements after pos
// one slot to the left. pos >= Len fails with ErrIndexOutOfRange.
func (v *Vector[T]) Erase(pos int) error {
	if pos < 0 || pos >= len(v.elems) {
		return &ErrIndexOutOfRange{Index: pos, Size: len(v.elems)}
	}
	return v.EraseRange(pos, pos+1)
}

// EraseRange removes the half-open element range [first, last), shifting the
// suffix starting at last down to position first; the size shrinks by
// last - first. first >= Len, last > Len or first >= last fails with
// ErrInvalidRange.
func (v *Vector[T]) EraseRange(first, last int) error {
	if first < 0 || first >= len(v.elems) || last > len(v.elems) || first >= last {
		return &ErrInvalidRange{First: first, Last: last, Size: len(v.elems)}
	}

	next := make([]T, len(v.elems)-(last-first))
	copy(next, v.elems[:first])
	copy(next[first:], v.elems[last:])

	v.elems = next
	return nil
}

package mathvector

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
)

// ExtremumKind discriminates the two alternatives of an Extremum result.
type ExtremumKind int

const (
	// KindSingle means the extreme value occurs at exactly one position.
	KindSingle ExtremumKind = iota
	// KindTies means the extreme value occurs at two or more positions.
	KindTies
)

func (k ExtremumKind) String() string {
	switch k {
	case KindSingle:
		return "Single"
	case KindTies:
		return "Ties"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Extremum is the result of a Max or Min query: either a single position
// holding the extreme value, or, when the extremum is attained more than
// once, the ordered set of all attaining positions. It is produced fresh per
// query and does not alias the vector.
//
// Callers discriminate with Kind and must handle both alternatives.
type Extremum[T Number] struct {
	value T
	kind  ExtremumKind
	pos   int
	ties  *roaring.Bitmap
}

// Kind returns which alternative is active.
func (e *Extremum[T]) Kind() ExtremumKind {
	return e.kind
}

// Value returns the extreme value itself, valid for both alternatives.
func (e *Extremum[T]) Value() T {
	return e.value
}

// Position returns the unique attaining position. The second result is false
// when the extremum is tied.
func (e *Extremum[T]) Position() (int, bool) {
	if e.kind != KindSingle {
		return 0, false
	}
	return e.pos, true
}

// Positions returns every position attaining the extreme value in ascending
// order. For the single alternative it has exactly one entry.
func (e *Extremum[T]) Positions() []int {
	if e.kind == KindSingle {
		return []int{e.pos}
	}
	positions := make([]int, 0, e.ties.GetCardinality())
	it := e.ties.Iterator()
	for it.HasNext() {
		positions = append(positions, int(it.Next()))
	}
	return positions
}

// TieSet returns the bitmap of attaining positions for the Ties alternative,
// or nil for Single. The bitmap is owned by the Extremum.
func (e *Extremum[T]) TieSet() *roaring.Bitmap {
	return e.ties
}

// Max finds the maximum element value. If it occurs exactly once the result
// is Single with that position; otherwise it is Ties with the ordered set of
// all attaining positions. An empty vector fails with ErrEmptyVector.
func (v *Vector[T]) Max() (*Extremum[T], error) {
	return v.extremum(func(candidate, best T) bool { return candidate > best })
}

// Min is the counterpart of Max for the minimum element value.
func (v *Vector[T]) Min() (*Extremum[T], error) {
	return v.extremum(func(candidate, best T) bool { return candidate < best })
}

// extremum scans for the extreme value under beats, then discriminates by
// occurrence count. Positions are tracked as 32-bit bitmap entries; vectors
// beyond 2^32 elements are out of scope.
func (v *Vector[T]) extremum(beats func(candidate, best T) bool) (*Extremum[T], error) {
	if len(v.elems) == 0 {
		return nil, ErrEmptyVector
	}

	best := v.elems[0]
	bestPos := 0
	count := 1
	for i, x := range v.elems[1:] {
		switch {
		case beats(x, best):
			best = x
			bestPos = i + 1
			count = 1
		case x == best:
			count++
		}
	}

	if count == 1 {
		return &Extremum[T]{value: best, kind: KindSingle, pos: bestPos}, nil
	}

	ties := roaring.New()
	for i, x := range v.elems {
		if x == best {
			ties.Add(uint32(i))
		}
	}
	return &Extremum[T]{value: best, kind: KindTies, ties: ties}, nil
}

// Package render turns vector contents and extremum results into their
// canonical text form: a bracketed, comma-separated list such as
// "[1, 2, 3]". It is a thin presentation collaborator; the container itself
// never formats, persists or transports anything.
package render

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	mathvector "github.com/hazed7/math-vector"
)

// Sequence renders elems as "[e0, e1, ..., en-1]". An empty or nil slice
// renders as "[]". Elements are formatted with %v.
func Sequence[T any](elems []T) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range elems {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "%v", e)
	}
	b.WriteByte(']')
	return b.String()
}

// Vector renders the vector's element sequence.
func Vector[T mathvector.Number](v *mathvector.Vector[T]) string {
	return Sequence(v.Elems())
}

// Positions renders a tie-set of positions in the same bracketed form.
func Positions(positions []int) string {
	return Sequence(positions)
}

// Extremum renders whichever alternative of the result is active: the single
// attaining position, or the bracketed list of all attaining positions.
func Extremum[T mathvector.Number](e *mathvector.Extremum[T]) string {
	if pos, ok := e.Position(); ok {
		return strconv.Itoa(pos)
	}
	return Positions(e.Positions())
}

// FprintVector writes the rendered vector to w.
func FprintVector[T mathvector.Number](w io.Writer, v *mathvector.Vector[T]) error {
	_, err := io.WriteString(w, Vector(v))
	return err
}

// FprintExtremum writes the rendered extremum result to w.
func FprintExtremum[T mathvector.Number](w io.Writer, e *mathvector.Extremum[T]) error {
	_, err := io.WriteString(w, Extremum(e))
	return err
}

package mathvector_test

import (
	"fmt"
	"log"

	mathvector "github.com/hazed7/math-vector"
	"github.com/hazed7/math-vector/render"
)

// Example demonstrates basic construction, reduction and rendering.
func Example() {
	v := mathvector.Of(3, 1, 4, 1, 5)

	fmt.Println(render.Vector(v))
	fmt.Println(v.Sum())
	// Output:
	// [3, 1, 4, 1, 5]
	// 14
}

// Example_extrema demonstrates exhaustive handling of max/min results.
func Example_extrema() {
	v := mathvector.Of(3, 1, 4, 1, 5)

	maxExt, err := v.Max()
	if err != nil {
		log.Fatal(err)
	}
	minExt, err := v.Min()
	if err != nil {
		log.Fatal(err)
	}

	for _, ext := range []*mathvector.Extremum[int]{maxExt, minExt} {
		switch ext.Kind() {
		case mathvector.KindSingle:
			pos, _ := ext.Position()
			fmt.Printf("value %d at position %d\n", ext.Value(), pos)
		case mathvector.KindTies:
			fmt.Printf("value %d tied at %s\n", ext.Value(), render.Positions(ext.Positions()))
		}
	}
	// Output:
	// value 5 at position 4
	// value 1 tied at [1, 3]
}

// Example_mutation demonstrates index-addressed insert and erase.
func Example_mutation() {
	v := mathvector.Of(10, 20, 30)

	if err := v.InsertN(1, 2, 9); err != nil {
		log.Fatal(err)
	}
	fmt.Println(render.Vector(v))

	if err := v.EraseRange(1, 3); err != nil {
		log.Fatal(err)
	}
	fmt.Println(render.Vector(v))
	// Output:
	// [10, 9, 9, 20, 30]
	// [10, 20, 30]
}

// Example_linalg demonstrates the linear-algebra surface.
func Example_linalg() {
	a := mathvector.Of(1.0, 0.0, 0.0)
	b := mathvector.Of(0.0, 1.0, 0.0)

	w, err := mathvector.Cross(a, b)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(render.Vector(w))

	v := mathvector.Of(2.0, 0.0)
	fmt.Println(mathvector.Magnitude(v))
	mathvector.Normalize(v)
	fmt.Println(render.Vector(v))
	// Output:
	// [0, 0, 1]
	// 2
	// [1, 0]
}

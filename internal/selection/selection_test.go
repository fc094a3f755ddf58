package selection

import (
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNth(t *testing.T) {
	tests := []struct {
		name  string
		elems []int
		n     int
	}{
		{"Single", []int{5}, 0},
		{"PairFirst", []int{2, 1}, 0},
		{"PairSecond", []int{2, 1}, 1},
		{"Sorted", []int{1, 2, 3, 4, 5}, 2},
		{"Reversed", []int{5, 4, 3, 2, 1}, 2},
		{"AllEqual", []int{7, 7, 7, 7}, 1},
		{"Duplicates", []int{3, 1, 3, 1, 3, 1}, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sorted := append([]int(nil), tt.elems...)
			sort.Ints(sorted)

			work := append([]int(nil), tt.elems...)
			Nth(work, tt.n)

			assert.Equal(t, sorted[tt.n], work[tt.n])
			for _, x := range work[:tt.n] {
				assert.LessOrEqual(t, x, work[tt.n])
			}
			for _, x := range work[tt.n+1:] {
				assert.GreaterOrEqual(t, x, work[tt.n])
			}
		})
	}
}

func TestNthRandomized(t *testing.T) {
	rng := rand.New(rand.NewSource(99))

	for iter := 0; iter < 200; iter++ {
		n := 1 + rng.Intn(300)
		elems := make([]int, n)
		for i := range elems {
			elems[i] = rng.Intn(20) // dense duplicates
		}

		sorted := append([]int(nil), elems...)
		sort.Ints(sorted)

		k := rng.Intn(n)
		work := append([]int(nil), elems...)
		Nth(work, k)

		require.Equal(t, sorted[k], work[k], "n=%d k=%d", n, k)

		// Same multiset before and after.
		resorted := append([]int(nil), work...)
		sort.Ints(resorted)
		require.Equal(t, sorted, resorted)

		for _, x := range work[:k] {
			require.LessOrEqual(t, x, work[k])
		}
		for _, x := range work[k+1:] {
			require.GreaterOrEqual(t, x, work[k])
		}
	}
}

func TestNthPanicsOutOfRange(t *testing.T) {
	assert.Panics(t, func() { Nth([]int{1, 2}, 2) })
	assert.Panics(t, func() { Nth([]int{1, 2}, -1) })
	assert.Panics(t, func() { Nth([]int{}, 0) })
}

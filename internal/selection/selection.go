// Package selection provides an in-place partial selection (quickselect)
// primitive: placing one designated element at its correct sorted position
// without fully ordering the rest.
package selection

import "cmp"

// Nth partially orders s so that s[n] holds the element that would occupy
// index n if s were fully sorted, every element of s[:n] is <= s[n], and
// every element of s[n+1:] is >= s[n]. The rest of s is left in unspecified
// order. Expected O(len(s)) time.
//
// n must be a valid index of s; Nth panics otherwise (programmer error, the
// callers validate their inputs first).
func Nth[T cmp.Ordered](s []T, n int) {
	if n < 0 || n >= len(s) {
		panic("selection: nth index out of range")
	}

	lo, hi := 0, len(s)-1
	for lo < hi {
		// Small ranges are cheaper to finish by insertion sort than by
		// further partitioning.
		if hi-lo < 12 {
			insertionSort(s, lo, hi)
			return
		}

		p := partition(s, lo, hi)
		switch {
		case n < p:
			hi = p - 1
		case n > p:
			lo = p + 1
		default:
			return
		}
	}
}

// partition uses a median-of-three pivot and Hoare-style swaps, returning the
// pivot's final index.
func partition[T cmp.Ordered](s []T, lo, hi int) int {
	mid := lo + (hi-lo)/2
	medianOfThree(s, lo, mid, hi)

	// Pivot parked at hi-1 by medianOfThree ordering below.
	s[mid], s[hi-1] = s[hi-1], s[mid]
	pivot := s[hi-1]

	i, j := lo, hi-1
	for {
		for i++; s[i] < pivot; i++ {
		}
		for j--; s[j] > pivot; j-- {
		}
		if i >= j {
			break
		}
		s[i], s[j] = s[j], s[i]
	}

	s[i], s[hi-1] = s[hi-1], s[i]
	return i
}

// medianOfThree orders s[a] <= s[b] <= s[c].
func medianOfThree[T cmp.Ordered](s []T, a, b, c int) {
	if s[b] < s[a] {
		s[a], s[b] = s[b], s[a]
	}
	if s[c] < s[b] {
		s[b], s[c] = s[c], s[b]
		if s[b] < s[a] {
			s[a], s[b] = s[b], s[a]
		}
	}
}

func insertionSort[T cmp.Ordered](s []T, lo, hi int) {
	for i := lo + 1; i <= hi; i++ {
		for j := i; j > lo && s[j] < s[j-1]; j-- {
			s[j], s[j-1] = s[j-1], s[j]
		}
	}
}

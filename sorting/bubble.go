// SPDX-License-Identifier: MIT

package sorting

import "cmp"

// BubbleSort returns a sorted copy of s using bubble sort with early exit.
//
// Complexity: O(n²) worst and average, O(n) on already sorted input.
// Stable.
func BubbleSort[T cmp.Ordered](s []T) []T {
	return BubbleSortFunc(s, cmp.Compare[T])
}

// BubbleSortFunc is BubbleSort with a caller-supplied three-way comparator.
// Elements are swapped only when cmp(a, b) > 0, so equal elements keep
// their relative order.
func BubbleSortFunc[T any](s []T, cmp func(a, b T) int) []T {
	out := clone(s)
	n := len(out)

	for i := 0; i < n-1; i++ {
		swapped := false
		// After pass i the last i elements are in their final slots.
		for j := 0; j < n-i-1; j++ {
			if cmp(out[j], out[j+1]) > 0 {
				out[j], out[j+1] = out[j+1], out[j]
				swapped = true
			}
		}
		if !swapped {
			break
		}
	}

	return out
}

// clone copies s into a new non-nil slice.
func clone[T any](s []T) []T {
	out := make([]T, len(s))
	copy(out, s)

	return out
}

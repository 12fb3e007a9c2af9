// SPDX-License-Identifier: MIT

package sorting

import "cmp"

// MergeSort returns a sorted copy of s using top-down merge sort.
//
// Complexity: O(n log n) time in every case, O(n) auxiliary space. Stable.
func MergeSort[T cmp.Ordered](s []T) []T {
	return MergeSortFunc(s, cmp.Compare[T])
}

// MergeSortFunc is MergeSort with a caller-supplied three-way comparator.
func MergeSortFunc[T any](s []T, cmp func(a, b T) int) []T {
	return mergeSort(s, cmp)
}

// mergeSort never writes into s; each level allocates its merged output.
func mergeSort[T any](s []T, cmp func(a, b T) int) []T {
	if len(s) <= 1 {
		return clone(s)
	}
	mid := len(s) / 2
	left := mergeSort(s[:mid], cmp)
	right := mergeSort(s[mid:], cmp)

	return merge(left, right, cmp)
}

// merge combines two sorted slices. Ties take the left head first.
func merge[T any](left, right []T, cmp func(a, b T) int) []T {
	out := make([]T, 0, len(left)+len(right))
	i, j := 0, 0
	for i < len(left) && j < len(right) {
		if cmp(left[i], right[j]) <= 0 {
			out = append(out, left[i])
			i++
		} else {
			out = append(out, right[j])
			j++
		}
	}
	out = append(out, left[i:]...)
	out = append(out, right[j:]...)

	return out
}

// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
	"fmt"
)

// Sort dispatches to the algorithm selected by alg.
// Options only affect Quick; unknown algorithms return ErrUnknownAlgorithm.
func Sort[T cmp.Ordered](alg Algorithm, s []T, opts ...Option) ([]T, error) {
	return SortFunc(alg, s, cmp.Compare[T], opts...)
}

// SortFunc is Sort with a caller-supplied three-way comparator.
func SortFunc[T any](alg Algorithm, s []T, cmp func(a, b T) int, opts ...Option) ([]T, error) {
	switch alg {
	case Bubble:
		return BubbleSortFunc(s, cmp), nil
	case Quick:
		return QuickSortFunc(s, cmp, opts...), nil
	case Merge:
		return MergeSortFunc(s, cmp), nil
	default:
		return nil, fmt.Errorf("%w: %v", ErrUnknownAlgorithm, alg)
	}
}

// IsSorted reports whether s is in non-decreasing order under cmp.
func IsSorted[T any](s []T, cmp func(a, b T) int) bool {
	for i := 1; i < len(s); i++ {
		if cmp(s[i-1], s[i]) > 0 {
			return false
		}
	}

	return true
}

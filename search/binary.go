// SPDX-License-Identifier: MIT

package search

import "cmp"

// Binary searches the ascending slice s for target.
// The ordering precondition is not verified.
func Binary[T cmp.Ordered](s []T, target T, opts ...Option) (int, bool) {
	return BinaryFunc(s, target, cmp.Compare[T], opts...)
}

// BinaryFunc is Binary with a caller-supplied three-way comparator;
// s must be sorted ascending under the same comparator.
func BinaryFunc[T, K any](s []T, target K, cmp func(elem T, target K) int, opts ...Option) (int, bool) {
	var cfg Options
	for _, opt := range opts {
		opt(&cfg)
	}

	low, high := 0, len(s)-1
	hit := NotFound
	for low <= high {
		mid := low + (high-low)/2
		c := cmp(s[mid], target)
		switch {
		case c == 0:
			switch cfg.Duplicates {
			case FirstMatch:
				hit, high = mid, mid-1
			case LastMatch:
				hit, low = mid, mid+1
			default:
				return mid, true
			}
		case c < 0:
			low = mid + 1
		default:
			high = mid - 1
		}
	}

	return hit, hit != NotFound
}

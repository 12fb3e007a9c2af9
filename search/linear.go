// SPDX-License-Identifier: MIT

package search

// Linear returns the index of the first element equal to target.
func Linear[T comparable](s []T, target T) (int, bool) {
	for i, v := range s {
		if v == target {
			return i, true
		}
	}

	return NotFound, false
}

// LinearFunc returns the index of the first element for which match is true.
func LinearFunc[T any](s []T, match func(T) bool) (int, bool) {
	for i, v := range s {
		if match(v) {
			return i, true
		}
	}

	return NotFound, false
}

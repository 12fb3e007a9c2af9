// SPDX-License-Identifier: MIT

// Package search implements linear and binary search over slices.
//
// Results are reported as (index, found). When found is false the index is
// NotFound (-1), so a miss can never be mistaken for a valid position.
//
// Linear scans left to right and returns the first index whose element equals
// the target. O(n).
//
// Binary requires the slice to be sorted in non-decreasing order; the
// precondition is NOT checked, and results on unsorted input are unspecified.
// It narrows a closed interval [low, high] around mid = low + (high-low)/2.
// O(log n).
//
// Duplicates:
//
// With several equal elements, the default AnyMatch policy returns whichever
// matching mid the narrowing reaches first, which is neither guaranteed to be
// the first nor the last occurrence. WithDuplicates(FirstMatch) and
// WithDuplicates(LastMatch) keep narrowing after a hit and return the leftmost
// or rightmost occurrence instead, still in O(log n).
//
//	i, ok := search.Binary([]int{1, 2, 3, 5, 8}, 5) // 3, true
//	i, ok = search.Binary([]int{1, 2, 3, 5, 8}, 9)  // -1, false
package search

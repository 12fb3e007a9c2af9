// SPDX-License-Identifier: MIT

package sorting

import (
	"cmp"
	"math/rand"
)

// QuickSort returns a sorted copy of s using recursive quick sort with
// Lomuto partitioning.
//
// With the default PivotLast strategy the pivot is the last element of each
// subrange, which degrades to O(n²) time and O(n) recursion depth on sorted or
// reverse sorted input. Not stable.
func QuickSort[T cmp.Ordered](s []T, opts ...Option) []T {
	return QuickSortFunc(s, cmp.Compare[T], opts...)
}

// QuickSortFunc is QuickSort with a caller-supplied three-way comparator.
func QuickSortFunc[T any](s []T, cmp func(a, b T) int, opts ...Option) []T {
	out := clone(s)
	if len(out) < 2 {
		return out
	}

	q := quickSorter[T]{cmp: cmp, opts: buildOptions(opts)}
	q.sort(out, 0, len(out)-1)

	return out
}

// quickSorter carries the comparator and pivot configuration through recursion.
type quickSorter[T any] struct {
	cmp  func(a, b T) int
	opts Options
}

func (q *quickSorter[T]) sort(a []T, low, high int) {
	if low >= high {
		return
	}
	p := q.partition(a, low, high)
	q.sort(a, low, p-1)
	q.sort(a, p+1, high)
}

// partition moves the chosen pivot to a[high], then runs Lomuto: every element
// <= pivot is moved left of the boundary i, and the pivot lands at i+1.
// Returns the pivot's final index.
func (q *quickSorter[T]) partition(a []T, low, high int) int {
	if idx := q.pivotIndex(a, low, high); idx != high {
		a[idx], a[high] = a[high], a[idx]
	}

	pivot := a[high]
	i := low - 1
	for j := low; j < high; j++ {
		if q.cmp(a[j], pivot) <= 0 {
			i++
			a[i], a[j] = a[j], a[i]
		}
	}
	a[i+1], a[high] = a[high], a[i+1]

	return i + 1
}

func (q *quickSorter[T]) pivotIndex(a []T, low, high int) int {
	switch q.opts.Pivot {
	case PivotMedianOfThree:
		return medianOfThree(a, low, low+(high-low)/2, high, q.cmp)
	case PivotRandom:
		return randomIndex(q.opts.Rand, low, high)
	default:
		return high
	}
}

// medianOfThree returns whichever of i, j, k indexes the median value.
func medianOfThree[T any](a []T, i, j, k int, cmp func(a, b T) int) int {
	if cmp(a[i], a[j]) > 0 {
		i, j = j, i
	}
	// a[i] <= a[j]
	if cmp(a[j], a[k]) <= 0 {
		return j
	}
	if cmp(a[i], a[k]) <= 0 {
		return k
	}

	return i
}

func randomIndex(r *rand.Rand, low, high int) int {
	return low + r.Intn(high-low+1)
}

// SPDX-License-Identifier: MIT

// Package sorting implements three classic comparison sorts over slices:
// bubble sort, quick sort (Lomuto partition) and merge sort.
//
// Overview:
//
//   - Every function returns a NEW slice; the caller's slice is never mutated.
//   - Ordered variants (BubbleSort, QuickSort, MergeSort) accept any cmp.Ordered
//     element type; the Func variants accept an arbitrary element type plus a
//     three-way comparator with the same contract as slices.SortFunc.
//   - Empty and single-element inputs are returned as an (empty or one-element)
//     copy without error.
//
// Algorithms:
//
//   - Bubble: adjacent compare-and-swap passes over a shrinking prefix, stops on
//     the first pass without a swap. Stable. O(n²) worst/average, O(n) best.
//   - Quick: recursive Lomuto partition, pivot = last element of the subrange.
//     Not stable. O(n log n) average, O(n²) on already sorted or reverse sorted
//     input. WithPivot(PivotMedianOfThree) or WithPivot(PivotRandom) pick a
//     different pivot, swap it into the last slot and partition exactly as before.
//   - Merge: split at len/2, sort both halves, merge taking the left head on ties.
//     Stable. O(n log n) time, O(n) auxiliary space.
//
// Example:
//
//	out := sorting.QuickSort([]int{5, 3, 8, 1, 2})
//	fmt.Println(out) // [1 2 3 5 8]
//
//	byAge := sorting.MergeSortFunc(people, func(a, b Person) int {
//	    return cmp.Compare(a.Age, b.Age)
//	})
package sorting

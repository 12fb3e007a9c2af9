// SPDX-License-Identifier: MIT

package sorting_test

import (
	"math/rand"
	"testing"

	"github.com/katalvlaran/algokit/sorting"
)

func randomInts(n int) []int {
	rng := rand.New(rand.NewSource(1))
	out := make([]int, n)
	for i := range out {
		out[i] = rng.Intn(n * 10)
	}

	return out
}

func ascendingInts(n int) []int {
	out := make([]int, n)
	for i := range out {
		out[i] = i
	}

	return out
}

// BenchmarkBubbleSort_Random1K measures bubble sort on 1 000 random ints.
func BenchmarkBubbleSort_Random1K(b *testing.B) {
	in := randomInts(1000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.BubbleSort(in)
	}
}

// BenchmarkBubbleSort_Sorted10K shows the O(n) early exit.
func BenchmarkBubbleSort_Sorted10K(b *testing.B) {
	in := ascendingInts(10000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.BubbleSort(in)
	}
}

// BenchmarkQuickSort_Random10K measures quick sort with the default pivot.
func BenchmarkQuickSort_Random10K(b *testing.B) {
	in := randomInts(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.QuickSort(in)
	}
}

// BenchmarkQuickSort_Sorted2K_Last exposes the last-pivot worst case.
func BenchmarkQuickSort_Sorted2K_Last(b *testing.B) {
	in := ascendingInts(2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.QuickSort(in)
	}
}

// BenchmarkQuickSort_Sorted2K_Median3 is the same input with median-of-three.
func BenchmarkQuickSort_Sorted2K_Median3(b *testing.B) {
	in := ascendingInts(2000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.QuickSort(in, sorting.WithPivot(sorting.PivotMedianOfThree))
	}
}

// BenchmarkMergeSort_Random10K measures merge sort on 10 000 random ints.
func BenchmarkMergeSort_Random10K(b *testing.B) {
	in := randomInts(10000)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = sorting.MergeSort(in)
	}
}

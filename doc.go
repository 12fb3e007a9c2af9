// SPDX-License-Identifier: MIT

// Package algokit is a small collection of classic algorithms written as
// plain, stateless Go functions.
//
// Packages:
//
//	sorting/    bubble sort (early exit), quick sort (Lomuto), merge sort
//	search/     linear search, binary search with a duplicate policy
//	dijkstra/   O(V²) single-source shortest paths over an adjacency map
//	instrument/ timing decorators reporting to charmbracelet/log and Prometheus
//
// Every function works on copies of its inputs and returns fresh results, so
// calls never interfere with each other or with the caller's data.
//
// Quick example:
//
//	sorted := sorting.MergeSort([]int{5, 3, 8, 1, 2}) // [1 2 3 5 8]
//	i, ok := search.Binary(sorted, 5)                // 3, true
//	dist, _, err := dijkstra.Dijkstra(g, "A")
//
// The algokit command (cmd/algokit) runs all of them on generated or
// user-supplied data.
package algokit

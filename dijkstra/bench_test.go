// SPDX-License-Identifier: MIT

package dijkstra_test

import (
	"testing"

	"github.com/katalvlaran/algokit/dijkstra"
	"github.com/katalvlaran/algokit/internal/gen"
)

func randomGraph(b *testing.B, n int, p float64) dijkstra.Graph[string] {
	b.Helper()
	g, err := gen.RandomGraph(gen.NewRand(1), n, p, 1, 100)
	if err != nil {
		b.Fatalf("RandomGraph failed: %v", err)
	}

	return g
}

// BenchmarkDijkstra_Dense100 runs the O(V²) loop on a complete 100-vertex digraph.
func BenchmarkDijkstra_Dense100(b *testing.B) {
	g := randomGraph(b, 100, 1)
	src := gen.VertexID(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.Dijkstra(g, src); err != nil {
			b.Fatalf("Dijkstra failed: %v", err)
		}
	}
}

// BenchmarkDijkstra_Sparse500 runs on a 500-vertex graph with ~2% edge density.
func BenchmarkDijkstra_Sparse500(b *testing.B) {
	g := randomGraph(b, 500, 0.02)
	src := gen.VertexID(0)
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, _, err := dijkstra.Dijkstra(g, src, dijkstra.WithReturnPath()); err != nil {
			b.Fatalf("Dijkstra failed: %v", err)
		}
	}
}

// BenchmarkDijkstra_Chain1K runs on a 1 000-vertex chain, the sparse worst case.
func BenchmarkDijkstra_Chain1K(b *testing.B) {
	g := dijkstra.Graph[int]{}
	for i := 0; i < 1000; i++ {
		g.AddEdge(i, i+1, 1)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_, _, _ = dijkstra.Dijkstra(g, 0, dijkstra.WithReturnPath())
	}
}

// SPDX-License-Identifier: MIT

package gen

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/algokit/dijkstra"
)

var (
	// ErrTooFewVertices is returned when a graph generator receives n < 1.
	ErrTooFewVertices = errors.New("gen: need at least one vertex")

	// ErrInvalidProbability is returned when an edge probability is outside [0, 1].
	ErrInvalidProbability = errors.New("gen: edge probability must lie in [0,1]")

	// ErrInvalidWeightRange is returned when the weight interval is empty or negative.
	ErrInvalidWeightRange = errors.New("gen: require 0 ≤ minWeight ≤ maxWeight")
)

// VertexID names vertex i as "v<i>".
func VertexID(i int) string {
	return fmt.Sprintf("v%d", i)
}

// RandomGraph samples an Erdős–Rényi-like directed graph on n vertices: each
// ordered pair (i, j), i != j, becomes an edge with probability p and an
// integer weight drawn uniformly from [minW, maxW].
//
// Determinism: vertices are added for i ascending and trials run for i asc,
// j asc, so a fixed seed always yields the same graph.
func RandomGraph(rng *rand.Rand, n int, p float64, minW, maxW int) (dijkstra.Graph[string], error) {
	if n < 1 {
		return nil, fmt.Errorf("RandomGraph: n=%d: %w", n, ErrTooFewVertices)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("RandomGraph: p=%.6f: %w", p, ErrInvalidProbability)
	}
	if minW < 0 || maxW < minW {
		return nil, fmt.Errorf("RandomGraph: [%d,%d]: %w", minW, maxW, ErrInvalidWeightRange)
	}

	g := make(dijkstra.Graph[string], n)
	for i := 0; i < n; i++ {
		g.AddVertex(VertexID(i))
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if i == j || rng.Float64() >= p {
				continue
			}
			w := minW + rng.Intn(maxW-minW+1)
			g.AddEdge(VertexID(i), VertexID(j), float64(w))
		}
	}

	return g, nil
}

// SampleGraph returns the undirected four-vertex graph used by the demo.
func SampleGraph() dijkstra.Graph[string] {
	return dijkstra.Graph[string]{
		"A": {"B": 2, "C": 4},
		"B": {"A": 2, "C": 1, "D": 7},
		"C": {"A": 4, "B": 1, "D": 3},
		"D": {"B": 7, "C": 3},
	}
}

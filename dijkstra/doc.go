// SPDX-License-Identifier: MIT

// Package dijkstra computes single-source shortest paths on directed graphs
// with non-negative edge weights, using the textbook O(V²) selection loop.
//
// Overview:
//
//   - The graph is a plain adjacency map, Graph[V] = map[V]map[V]float64.
//   - Every vertex starts at Infinity except the source (0). All vertices start
//     unvisited. Each round selects the unvisited vertex with the smallest
//     distance by a linear scan, stops early if that distance is Infinity,
//     otherwise marks it visited and relaxes its outgoing edges
//     (dist[u] + w < dist[v] ⇒ dist[v] = dist[u] + w).
//   - There is no priority queue. For dense graphs O(V²) is optimal; for large
//     sparse graphs a heap-based variant would be faster.
//
// Determinism:
//
//   - The unvisited set is kept in ascending identifier order, so ties on the
//     minimum distance always select the lowest identifier. Ties only change the
//     visiting order, never the final distances.
//
// Validation:
//
//   - Empty graph: empty distance map, no error.
//   - Missing source in a non-empty graph: ErrVertexNotFound.
//   - Negative or NaN weights are rejected up front (ErrNegativeWeight,
//     ErrInvalidWeight) by an O(E) scan before the main loop, so the algorithm
//     never silently returns wrong distances.
//
// Options:
//
//   - WithReturnPath():          also return a predecessor map; see PathTo.
//   - WithMaxDistance(d):        stop once the closest unvisited vertex is farther than d.
//   - WithInfEdgeThreshold(t):   edges with weight ≥ t are impassable walls.
//
// Example:
//
//	g := dijkstra.Graph[string]{
//	    "A": {"B": 2, "C": 4},
//	    "B": {"A": 2, "C": 1, "D": 7},
//	    "C": {"A": 4, "B": 1, "D": 3},
//	    "D": {"B": 7, "C": 3},
//	}
//	dist, _, err := dijkstra.Dijkstra(g, "A")
//	// dist == {A:0 B:2 C:3 D:6}
//
// Thread safety:
//
//   - Dijkstra only reads g. Concurrent calls on the same graph are safe as long
//     as nobody mutates it meanwhile.
package dijkstra

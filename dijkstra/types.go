// SPDX-License-Identifier: MIT

// Package dijkstra defines the graph, result and option types for the
// naive-selection Dijkstra shortest-path algorithm.
//
// Graph is a plain adjacency map: g[u][v] = w is a directed edge u→v of
// weight w. Undirected graphs list every edge in both directions.
//
// Errors (sentinel):
//
//	– ErrVertexNotFound  if the source vertex does not exist in a non-empty graph.
//	– ErrNegativeWeight  if an edge weight is below zero.
//	– ErrInvalidWeight   if an edge weight is NaN.
//	– ErrOptionViolation if an Option was given an out-of-domain value.
//	– ErrNoPath          from PathTo when the destination was not reached.
package dijkstra

import (
	"cmp"
	"errors"
	"fmt"
	"math"
)

// Sentinel errors returned by the Dijkstra implementation.
var (
	// ErrVertexNotFound indicates that the specified source vertex does not exist
	// in the provided graph.
	ErrVertexNotFound = errors.New("dijkstra: source vertex not found in graph")

	// ErrNegativeWeight indicates that a negative edge weight was detected in the graph.
	ErrNegativeWeight = errors.New("dijkstra: negative edge weight encountered")

	// ErrInvalidWeight indicates a NaN edge weight, which has no ordering.
	ErrInvalidWeight = errors.New("dijkstra: edge weight is NaN")

	// ErrOptionViolation indicates that an Option was given an invalid value
	// (negative MaxDistance, non-positive InfEdgeThreshold).
	ErrOptionViolation = errors.New("dijkstra: invalid option supplied")

	// ErrNoPath indicates that PathTo was asked for an unreachable destination.
	ErrNoPath = errors.New("dijkstra: no path to destination")
)

// Infinity is the distance recorded for vertices unreachable from the source.
var Infinity = math.Inf(1)

// Graph maps every vertex to its outgoing neighbors and non-negative edge
// weights. Vertices that only appear as neighbors are treated as vertices
// without outgoing edges.
type Graph[V cmp.Ordered] map[V]map[V]float64

// AddEdge inserts or overwrites the directed edge from→to, creating both
// endpoints as needed.
func (g Graph[V]) AddEdge(from, to V, w float64) {
	g.AddVertex(from)
	g.AddVertex(to)
	g[from][to] = w
}

// AddUndirectedEdge inserts from→to and to→from with the same weight.
func (g Graph[V]) AddUndirectedEdge(a, b V, w float64) {
	g.AddEdge(a, b, w)
	g.AddEdge(b, a, w)
}

// AddVertex ensures v is present as a key, with no edges if it was new.
func (g Graph[V]) AddVertex(v V) {
	if _, ok := g[v]; !ok {
		g[v] = make(map[V]float64)
	}
}

// HasVertex reports whether v is a key or a neighbor of some key.
func (g Graph[V]) HasVertex(v V) bool {
	if _, ok := g[v]; ok {
		return true
	}
	for _, nbrs := range g {
		if _, ok := nbrs[v]; ok {
			return true
		}
	}

	return false
}

// Distances maps each vertex to its minimum distance from the source,
// Infinity when unreachable.
type Distances[V cmp.Ordered] map[V]float64

// Reachable reports whether v has a finite distance.
func (d Distances[V]) Reachable(v V) bool {
	dv, ok := d[v]

	return ok && !math.IsInf(dv, 1)
}

// Options configures the behavior of the Dijkstra algorithm.
//
// ReturnPath       – if true, return the predecessor map; otherwise prev map is nil.
// MaxDistance      – stop once the closest unvisited vertex is farther than this.
//
//	Must be ≥ 0. Default is +Inf (no cap).
//
// InfEdgeThreshold – treat edges with weight ≥ this threshold as impassable.
//
//	Must be > 0. Default is +Inf (no obstacles).
type Options struct {
	ReturnPath       bool    // Whether to return the predecessor map
	MaxDistance      float64 // Maximum distance to explore
	InfEdgeThreshold float64 // Weight threshold above which edges are non-traversable

	// internal error recorded during option parsing
	err error
}

// Option represents a functional option for configuring Dijkstra.
type Option func(*Options)

// WithReturnPath enables generation of the predecessor map in the result.
func WithReturnPath() Option {
	return func(o *Options) {
		o.ReturnPath = true
	}
}

// WithMaxDistance sets a maximum distance threshold. Vertices whose shortest
// distance exceeds max are left at Infinity.
// A negative or NaN max is surfaced as ErrOptionViolation by Dijkstra.
func WithMaxDistance(max float64) Option {
	return func(o *Options) {
		if max < 0 || math.IsNaN(max) {
			o.err = fmt.Errorf("%w: MaxDistance must be non-negative, got %g", ErrOptionViolation, max)
			return
		}
		o.MaxDistance = max
	}
}

// WithInfEdgeThreshold makes every edge with weight ≥ threshold impassable.
// A zero, negative or NaN threshold is surfaced as ErrOptionViolation.
func WithInfEdgeThreshold(threshold float64) Option {
	return func(o *Options) {
		if !(threshold > 0) {
			o.err = fmt.Errorf("%w: InfEdgeThreshold must be positive, got %g", ErrOptionViolation, threshold)
			return
		}
		o.InfEdgeThreshold = threshold
	}
}

// DefaultOptions returns no predecessor map, no distance cap and no
// impassable edges.
func DefaultOptions() Options {
	return Options{
		ReturnPath:       false,
		MaxDistance:      Infinity,
		InfEdgeThreshold: Infinity,
	}
}

// SPDX-License-Identifier: MIT

package dijkstra

import (
	"cmp"
	"fmt"
	"math"

	"github.com/emirpasic/gods/sets/treeset"
)

// Dijkstra computes shortest distances from source to every vertex of g.
//
// Returns:
//
//   - dist: map from vertex to minimum distance (Infinity if unreachable).
//     Every vertex of g is present, including neighbor-only vertices.
//   - prev: predecessor map if WithReturnPath was given, nil otherwise.
//     prev[v] == u means a shortest path to v ends with u→v; the source and
//     unreachable vertices have no entry.
//   - err:  one of the sentinel errors from types.go, wrapped with context.
//
// Preconditions and validation (in order):
//  1. Options must be valid (ErrOptionViolation).
//  2. An empty graph yields an empty distance map and no error.
//  3. g must contain source (ErrVertexNotFound).
//  4. No edge may be negative (ErrNegativeWeight) or NaN (ErrInvalidWeight).
//
// Tie-break: among unvisited vertices with equal minimum distance the lowest
// identifier is selected.
//
// Complexity:
//
//   - Time:  O(V² + E) selection scans plus edge relaxations.
//   - Space: O(V).
func Dijkstra[V cmp.Ordered](g Graph[V], source V, opts ...Option) (Distances[V], map[V]V, error) {
	cfg := DefaultOptions()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.err != nil {
		return nil, nil, cfg.err
	}

	if len(g) == 0 {
		return Distances[V]{}, nil, nil
	}

	if !g.HasVertex(source) {
		return nil, nil, fmt.Errorf("%w: %v", ErrVertexNotFound, source)
	}

	if err := validateWeights(g); err != nil {
		return nil, nil, err
	}

	r := newRunner(g, source, cfg)
	r.process()

	if !cfg.ReturnPath {
		return r.dist, nil, nil
	}

	return r.dist, r.prev, nil
}

// validateWeights scans every edge once and fails on the first negative or
// NaN weight.
func validateWeights[V cmp.Ordered](g Graph[V]) error {
	for u, nbrs := range g {
		for v, w := range nbrs {
			if math.IsNaN(w) {
				return fmt.Errorf("%w: edge %v→%v", ErrInvalidWeight, u, v)
			}
			if w < 0 {
				return fmt.Errorf("%w: edge %v→%v weight=%g", ErrNegativeWeight, u, v, w)
			}
		}
	}

	return nil
}

// runner holds the mutable state for a single Dijkstra execution.
type runner[V cmp.Ordered] struct {
	g         Graph[V]
	options   Options
	dist      Distances[V]
	prev      map[V]V
	unvisited *treeset.Set // ascending vertex ids; only ever shrinks
}

// newRunner sets every distance to Infinity except the source and puts every
// vertex, keys and neighbor-only ones alike, into the unvisited set.
func newRunner[V cmp.Ordered](g Graph[V], source V, cfg Options) *runner[V] {
	r := &runner[V]{
		g:         g,
		options:   cfg,
		dist:      make(Distances[V], len(g)),
		unvisited: treeset.NewWith(compareVertices[V]),
	}
	if cfg.ReturnPath {
		r.prev = make(map[V]V, len(g))
	}

	for u, nbrs := range g {
		r.enroll(u)
		for v := range nbrs {
			r.enroll(v)
		}
	}
	r.dist[source] = 0

	return r
}

func (r *runner[V]) enroll(v V) {
	if _, seen := r.dist[v]; seen {
		return
	}
	r.dist[v] = Infinity
	r.unvisited.Add(v)
}

// process repeatedly selects the closest unvisited vertex and relaxes its
// outgoing edges.
//
// Loop termination conditions:
//
//   - The unvisited set is empty.
//   - The closest unvisited vertex is at Infinity (nothing else is reachable).
//   - The closest unvisited vertex is farther than MaxDistance.
func (r *runner[V]) process() {
	for !r.unvisited.Empty() {
		u, d := r.closest()
		if math.IsInf(d, 1) || d > r.options.MaxDistance {
			return
		}
		r.unvisited.Remove(u)
		r.relax(u)
	}
}

// closest scans the unvisited set in ascending id order and returns the
// first vertex holding the minimum distance.
func (r *runner[V]) closest() (V, float64) {
	var (
		best  V
		bestD = math.Inf(1)
		found bool
	)
	it := r.unvisited.Iterator()
	for it.Next() {
		v := it.Value().(V)
		if d := r.dist[v]; !found || d < bestD {
			best, bestD, found = v, d, true
		}
	}

	return best, bestD
}

// relax updates every neighbor reachable through a strictly shorter path via u.
// Candidates beyond MaxDistance are discarded, so vertices past the cap stay
// at Infinity.
func (r *runner[V]) relax(u V) {
	du := r.dist[u]
	for v, w := range r.g[u] {
		if w >= r.options.InfEdgeThreshold {
			continue
		}
		nd := du + w
		if nd > r.options.MaxDistance {
			continue
		}
		if nd < r.dist[v] {
			r.dist[v] = nd
			if r.prev != nil {
				r.prev[v] = u
			}
		}
	}
}

// compareVertices adapts cmp.Compare to the treeset comparator signature.
func compareVertices[V cmp.Ordered](a, b interface{}) int {
	return cmp.Compare(a.(V), b.(V))
}

// SPDX-License-Identifier: MIT

package dijkstra

import (
	"cmp"
	"fmt"
	"slices"
)

// PathTo rebuilds the shortest path source→…→dest from a predecessor map
// returned by Dijkstra with WithReturnPath. The result starts with source and
// ends with dest; PathTo(prev, s, s) is [s].
//
// Returns ErrNoPath if dest has no predecessor chain leading back to source.
func PathTo[V cmp.Ordered](prev map[V]V, source, dest V) ([]V, error) {
	path := []V{dest}
	seen := map[V]bool{dest: true}
	for cur := dest; cur != source; {
		p, ok := prev[cur]
		if !ok || seen[p] {
			return nil, fmt.Errorf("%w: %v→%v", ErrNoPath, source, dest)
		}
		seen[p] = true
		path = append(path, p)
		cur = p
	}
	slices.Reverse(path)

	return path, nil
}

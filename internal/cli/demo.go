// SPDX-License-Identifier: MIT

package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/dijkstra"
	"github.com/katalvlaran/algokit/instrument"
	"github.com/katalvlaran/algokit/internal/gen"
	"github.com/katalvlaran/algokit/search"
	"github.com/katalvlaran/algokit/sorting"
)

func newDemoCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run every algorithm on generated data",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			size, err := sizeSetting(cmd, a.cfg.Size)
			if err != nil {
				return err
			}
			rng := gen.NewRand(a.cfg.Seed)
			data := gen.Ints(rng, size, a.cfg.MaxValue)
			pivot, err := sorting.ParsePivot(a.cfg.Pivot)
			if err != nil {
				return err
			}
			printField(a.out, "data", preview(data))

			printTitle(a.out, "sorting")
			var sorted []int
			for _, alg := range []sorting.Algorithm{sorting.Bubble, sorting.Quick, sorting.Merge} {
				if sorted, err = a.sort(alg, data, a.sortOptions(pivot)...); err != nil {
					return err
				}
				printField(a.out, alg.String(), preview(sorted))
			}

			printTitle(a.out, "searching")
			target, ok := gen.Pick(rng, data)
			if !ok {
				printField(a.out, "target", "none (empty data)")
			} else {
				printField(a.out, "target", target)
				i, found := a.linearSearch(data, target)
				printField(a.out, "linear", renderIndex(i, found))
				i, found = a.binarySearch(sorted, target, search.AnyMatch)
				printField(a.out, "binary", renderIndex(i, found))
			}

			printTitle(a.out, "shortest paths")
			g := gen.SampleGraph()
			for _, u := range []string{"A", "B", "C", "D"} {
				nbrs := make([]string, 0, len(g[u]))
				for _, v := range []string{"A", "B", "C", "D"} {
					if w, ok := g[u][v]; ok {
						nbrs = append(nbrs, v+":"+renderDistance(w))
					}
				}
				printField(a.out, u, "{"+strings.Join(nbrs, ", ")+"}")
			}
			timed := instrument.Decorate("dijkstra", a.reporter, dijkstra.Dijkstra[string])
			dist, _, err := timed(g, "A")
			if err != nil {
				return err
			}
			printDistances(a.out, "A", dist)
			return nil
		},
	}
	cmd.Flags().Int("size", 100, "number of generated values")
	return cmd
}

// SPDX-License-Identifier: MIT

package cli

import (
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/algokit/dijkstra"
	"github.com/katalvlaran/algokit/instrument"
	"github.com/katalvlaran/algokit/internal/gen"
	"github.com/katalvlaran/algokit/internal/graphfile"
)

func newDijkstraCmd(a *app) *cobra.Command {
	var (
		graphPath string
		source    string
		to        string
		maxDist   float64
	)
	cmd := &cobra.Command{
		Use:   "dijkstra",
		Short: "Shortest distances from a source vertex",
		Long: `Compute shortest distances from --source to every vertex.

The graph is read from a TOML file (--graph); without one the built-in
four-vertex sample graph is used. --to also prints one shortest path.`,
		Example: `  algokit dijkstra --source A --to D
  algokit dijkstra --graph roads.toml --source depot`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			g := gen.SampleGraph()
			if graphPath != "" {
				var err error
				if g, err = graphfile.Load(graphPath); err != nil {
					return err
				}
				loggerFromContext(cmd.Context()).Debug("graph loaded", "path", graphPath, "vertices", len(g))
			}

			opts := []dijkstra.Option{dijkstra.WithReturnPath()}
			if cmd.Flags().Changed("max-distance") {
				opts = append(opts, dijkstra.WithMaxDistance(maxDist))
			}

			timed := instrument.Decorate("dijkstra", a.reporter, dijkstra.Dijkstra[string])
			dist, prev, err := timed(g, source, opts...)
			if err != nil {
				return err
			}

			printDistances(a.out, source, dist)
			if to == "" {
				return nil
			}
			path, err := dijkstra.PathTo(prev, source, to)
			switch {
			case errors.Is(err, dijkstra.ErrNoPath):
				printField(a.out, "path", styleMiss.Render("unreachable"))
			case err != nil:
				return err
			default:
				printField(a.out, "path", strings.Join(path, " → "))
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&graphPath, "graph", "g", "", "TOML graph file (default: built-in sample)")
	cmd.Flags().StringVarP(&source, "source", "s", "A", "source vertex")
	cmd.Flags().StringVar(&to, "to", "", "print a shortest path to this vertex")
	cmd.Flags().Float64Var(&maxDist, "max-distance", 0, "stop exploring beyond this distance")
	return cmd
}

// printDistances lists vertices in ascending order for stable output.
func printDistances(w io.Writer, source string, dist dijkstra.Distances[string]) {
	vertices := make([]string, 0, len(dist))
	for v := range dist {
		vertices = append(vertices, v)
	}
	slices.Sort(vertices)
	for _, v := range vertices {
		printField(w, fmt.Sprintf("%s→%s", source, v), renderDistance(dist[v]))
	}
}

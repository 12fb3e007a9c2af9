// SPDX-License-Identifier: MIT

// Package graphfile decodes weighted graphs from TOML documents:
//
//	directed = false
//	vertices = ["E"]          # optional isolated vertices
//
//	[[edge]]
//	from = "A"
//	to = "B"
//	weight = 2
//
// Undirected documents add every edge in both directions.
package graphfile

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/katalvlaran/algokit/dijkstra"
)

var (
	// ErrInvalidEdge is returned for an edge without both endpoints.
	ErrInvalidEdge = errors.New("graphfile: edge needs from and to")

	// ErrUnknownKey is returned when the document contains keys this package
	// does not understand, which usually means a typo.
	ErrUnknownKey = errors.New("graphfile: unknown key")
)

// Document is the TOML layout of a graph file.
type Document struct {
	Directed bool     `toml:"directed"`
	Vertices []string `toml:"vertices"`
	Edges    []Edge   `toml:"edge"`
}

// Edge is one [[edge]] table.
type Edge struct {
	From   string  `toml:"from"`
	To     string  `toml:"to"`
	Weight float64 `toml:"weight"`
}

// Load reads and parses the graph file at path.
func Load(path string) (dijkstra.Graph[string], error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}

	return Parse(string(data))
}

// Parse decodes a TOML document into a graph. Weights are not validated here;
// dijkstra.Dijkstra rejects negative ones.
func Parse(doc string) (dijkstra.Graph[string], error) {
	var d Document
	md, err := toml.Decode(doc, &d)
	if err != nil {
		return nil, fmt.Errorf("graphfile: %w", err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}

	return d.Graph()
}

// Graph converts the document into an adjacency map.
func (d Document) Graph() (dijkstra.Graph[string], error) {
	g := dijkstra.Graph[string]{}
	for _, v := range d.Vertices {
		g.AddVertex(v)
	}
	for i, e := range d.Edges {
		if e.From == "" || e.To == "" {
			return nil, fmt.Errorf("%w: edge #%d", ErrInvalidEdge, i+1)
		}
		if d.Directed {
			g.AddEdge(e.From, e.To, e.Weight)
		} else {
			g.AddUndirectedEdge(e.From, e.To, e.Weight)
		}
	}

	return g, nil
}

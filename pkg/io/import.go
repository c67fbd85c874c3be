package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/sfas/pkg/graph"
)

// edgeList is the wire shape shared by the JSON and TOML formats.
type edgeList struct {
	Nodes []string `json:"nodes,omitempty" toml:"nodes"`
	Edges []edge   `json:"edges" toml:"edges"`
}

type edge struct {
	From   string `json:"from" toml:"from"`
	To     string `json:"to" toml:"to"`
	Weight *int64 `json:"weight,omitempty" toml:"weight"`
}

// ReadJSON decodes a JSON edge list from r into a multigraph.
//
// The input must be a JSON object with an "edges" array and an optional
// "nodes" array of isolated node IDs to retain in the order:
//
//	{
//	  "nodes": ["standalone"],
//	  "edges": [
//	    {"from": "a", "to": "b", "weight": 2},
//	    {"from": "b", "to": "a"}
//	  ]
//	}
//
// A missing weight defaults to 1, so unweighted graphs need only from/to.
// Parallel edges and self-loops are legal. ReadJSON returns an error if the
// JSON is malformed, an ID is empty, or a weight is negative; errors name
// the offending edge or node. No partial graph is returned on error.
func ReadJSON(r io.Reader) (*graph.Multigraph, error) {
	var data edgeList
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return data.build()
}

// ReadTOML decodes a TOML edge list from r into a multigraph.
//
// The format mirrors [ReadJSON]:
//
//	nodes = ["standalone"]
//
//	[[edges]]
//	from = "a"
//	to = "b"
//	weight = 2
//
// A missing weight defaults to 1.
func ReadTOML(r io.Reader) (*graph.Multigraph, error) {
	var data edgeList
	if _, err := toml.NewDecoder(r).Decode(&data); err != nil {
		return nil, fmt.Errorf("decode: %w", err)
	}
	return data.build()
}

// ImportFile reads an edge-list file and returns the decoded multigraph.
// The format is chosen by extension: .json or .toml. Errors are wrapped with
// the file path for context.
func ImportFile(path string) (*graph.Multigraph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		g, err := ReadJSON(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return g, nil
	case ".toml":
		g, err := ReadTOML(f)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", path, err)
		}
		return g, nil
	default:
		return nil, fmt.Errorf("%s: unsupported format %q (use .json or .toml)", path, filepath.Ext(path))
	}
}

// build validates the decoded edge list and assembles the multigraph.
// Validation failures abort the whole import: no silent truncation of the
// node set is permitted.
func (d *edgeList) build() (*graph.Multigraph, error) {
	g := graph.New()
	for i, e := range d.Edges {
		weight := int64(1)
		if e.Weight != nil {
			weight = *e.Weight
		}
		if err := g.AddEdge(e.From, e.To, weight); err != nil {
			return nil, fmt.Errorf("edge %d (%s->%s): %w", i, e.From, e.To, err)
		}
	}
	for _, id := range d.Nodes {
		if err := g.AddNode(id); err != nil {
			return nil, fmt.Errorf("node %q: %w", id, err)
		}
	}
	return g, nil
}

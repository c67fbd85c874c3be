package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/sfas/pkg/fas"
	"github.com/matzehuels/sfas/pkg/graph"
)

// result is the wire shape of an ordering result.
type result struct {
	Order          []string   `json:"order"`
	FeedbackWeight int64      `json:"feedback_weight"`
	FeedbackEdges  []wireEdge `json:"feedback_edges"`
	SelfLoops      int        `json:"self_loops,omitempty"`
}

type wireEdge struct {
	From   string `json:"from"`
	To     string `json:"to"`
	Weight int64  `json:"weight"`
}

// WriteResult encodes an ordering result as indented JSON and writes it to w.
// The output carries the full order, the total backward weight, and the list
// of backward edges - everything needed to break the input's cycles.
func WriteResult(res *fas.Result, w io.Writer) error {
	out := result{
		Order:          res.Order,
		FeedbackWeight: res.FeedbackWeight,
		FeedbackEdges:  wireEdges(res.FeedbackEdges),
		SelfLoops:      res.SelfLoops,
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(out); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// ExportResult writes an ordering result to a JSON file at path.
// This is a convenience wrapper around [WriteResult] for file-based output.
func ExportResult(res *fas.Result, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer f.Close()
	return WriteResult(res, f)
}

func wireEdges(edges []graph.Edge) []wireEdge {
	out := make([]wireEdge, len(edges))
	for i, e := range edges {
		out[i] = wireEdge{From: e.From, To: e.To, Weight: e.Weight}
	}
	return out
}

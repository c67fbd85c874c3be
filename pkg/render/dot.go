package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/sfas/pkg/fas"
	"github.com/matzehuels/sfas/pkg/graph"
)

// Options configures DOT generation.
type Options struct {
	// ShowWeights adds edge weight labels.
	ShowWeights bool
	// ShowSelfLoops includes self-loops, drawn dotted and grey. They never
	// count toward the feedback set.
	ShowSelfLoops bool
}

// ToDOT converts a graph and its computed order to Graphviz DOT format.
// Nodes are pinned left to right in order; feedback edges are drawn dashed
// and red with constraint=false so they bend back over the order instead of
// distorting it. The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(g *graph.Multigraph, res *fas.Result, opts Options) string {
	backward := make(map[graph.Edge]int)
	for _, e := range res.FeedbackEdges {
		backward[e]++
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white];\n")
	buf.WriteString("\n")

	for _, id := range res.Order {
		fmt.Fprintf(&buf, "  %q;\n", id)
	}

	// Invisible chain pinning the computed order.
	buf.WriteString("\n")
	for i := 0; i+1 < len(res.Order); i++ {
		fmt.Fprintf(&buf, "  %q -> %q [style=invis, weight=100];\n", res.Order[i], res.Order[i+1])
	}

	buf.WriteString("\n")
	for _, e := range g.Edges() {
		attrs := ""
		if opts.ShowWeights {
			attrs = fmt.Sprintf("label=%q", fmt.Sprint(e.Weight))
		}
		if backward[e] > 0 {
			backward[e]--
			if attrs != "" {
				attrs += ", "
			}
			attrs += "color=red, style=dashed, constraint=false"
		}
		if attrs != "" {
			attrs = " [" + attrs + "]"
		}
		fmt.Fprintf(&buf, "  %q -> %q%s;\n", e.From, e.To, attrs)
	}

	if opts.ShowSelfLoops {
		for _, e := range g.SelfLoops() {
			fmt.Fprintf(&buf, "  %q -> %q [color=grey, style=dotted];\n", e.From, e.To)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}

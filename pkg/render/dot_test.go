package render

import (
	"strings"
	"testing"

	"github.com/matzehuels/sfas/pkg/fas"
	"github.com/matzehuels/sfas/pkg/graph"
)

func orderedTriangle(t *testing.T) (*graph.Multigraph, *fas.Result) {
	t.Helper()
	g := graph.New()
	_ = g.AddEdge("a", "b", 1)
	_ = g.AddEdge("b", "c", 1)
	_ = g.AddEdge("c", "a", 2)

	res, err := fas.Order(g, fas.Options{Seed: 0})
	if err != nil {
		t.Fatalf("Order() error = %v", err)
	}
	return g, res
}

func TestToDOT_MarksFeedbackEdges(t *testing.T) {
	g, res := orderedTriangle(t)

	dot := ToDOT(g, res, Options{})

	if !strings.Contains(dot, `"b" -> "c" [color=red, style=dashed, constraint=false];`) {
		t.Errorf("feedback edge b->c not marked:\n%s", dot)
	}
	if strings.Contains(dot, `"c" -> "a" [color=red`) {
		t.Errorf("forward edge c->a wrongly marked as feedback:\n%s", dot)
	}
}

func TestToDOT_PinsOrderWithInvisibleChain(t *testing.T) {
	g, res := orderedTriangle(t)

	dot := ToDOT(g, res, Options{})

	// Order is [c a b]: the chain must be c->a->b.
	if !strings.Contains(dot, `"c" -> "a" [style=invis, weight=100];`) {
		t.Errorf("missing invisible chain c->a:\n%s", dot)
	}
	if !strings.Contains(dot, `"a" -> "b" [style=invis, weight=100];`) {
		t.Errorf("missing invisible chain a->b:\n%s", dot)
	}
}

func TestToDOT_Weights(t *testing.T) {
	g, res := orderedTriangle(t)

	dot := ToDOT(g, res, Options{ShowWeights: true})
	if !strings.Contains(dot, `"c" -> "a" [label="2"];`) {
		t.Errorf("weight label missing:\n%s", dot)
	}
}

func TestToDOT_SelfLoops(t *testing.T) {
	g := graph.New()
	_ = g.AddEdge("a", "b", 1)
	_ = g.AddEdge("a", "a", 3)
	res, err := fas.Order(g, fas.Options{})
	if err != nil {
		t.Fatalf("Order() error = %v", err)
	}

	hidden := ToDOT(g, res, Options{})
	if strings.Contains(hidden, `"a" -> "a"`) {
		t.Errorf("self-loop rendered without ShowSelfLoops:\n%s", hidden)
	}

	shown := ToDOT(g, res, Options{ShowSelfLoops: true})
	if !strings.Contains(shown, `"a" -> "a" [color=grey, style=dotted];`) {
		t.Errorf("self-loop missing with ShowSelfLoops:\n%s", shown)
	}
}

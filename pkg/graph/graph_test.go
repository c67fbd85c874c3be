package graph

import (
	"errors"
	"slices"
	"testing"
)

func TestAddEdge_RejectsNegativeWeight(t *testing.T) {
	g := New()
	err := g.AddEdge("a", "b", -1)
	if !errors.Is(err, ErrNegativeWeight) {
		t.Fatalf("AddEdge() error = %v, want ErrNegativeWeight", err)
	}
	if g.NodeCount() != 0 || g.EdgeCount() != 0 {
		t.Errorf("rejected edge mutated graph: %d nodes, %d edges", g.NodeCount(), g.EdgeCount())
	}
}

func TestAddEdge_RejectsEmptyEndpoint(t *testing.T) {
	g := New()
	if err := g.AddEdge("", "b", 1); !errors.Is(err, ErrEmptyNodeID) {
		t.Errorf("AddEdge(\"\", b) error = %v, want ErrEmptyNodeID", err)
	}
	if err := g.AddEdge("a", "", 1); !errors.Is(err, ErrEmptyNodeID) {
		t.Errorf("AddEdge(a, \"\") error = %v, want ErrEmptyNodeID", err)
	}
}

func TestAddEdge_SeparatesSelfLoops(t *testing.T) {
	g := New()
	if err := g.AddEdge("a", "a", 5); err != nil {
		t.Fatalf("AddEdge() = %v", err)
	}
	if err := g.AddEdge("a", "b", 2); err != nil {
		t.Fatalf("AddEdge() = %v", err)
	}

	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1 (self-loop excluded)", g.EdgeCount())
	}
	if loops := g.SelfLoops(); len(loops) != 1 || loops[0].Weight != 5 {
		t.Errorf("SelfLoops() = %v, want one loop of weight 5", loops)
	}
	if g.TotalWeight() != 2 {
		t.Errorf("TotalWeight() = %d, want 2 (self-loop weight excluded)", g.TotalWeight())
	}
}

func TestAddEdge_KeepsParallelEdges(t *testing.T) {
	g := New()
	for range 3 {
		if err := g.AddEdge("a", "b", 1); err != nil {
			t.Fatalf("AddEdge() = %v", err)
		}
	}

	if g.EdgeCount() != 3 {
		t.Errorf("EdgeCount() = %d, want 3 (multigraph keeps parallels)", g.EdgeCount())
	}
	if g.TotalWeight() != 3 {
		t.Errorf("TotalWeight() = %d, want 3", g.TotalWeight())
	}
}

func TestNodes_FirstAppearanceOrder(t *testing.T) {
	g := New()
	_ = g.AddEdge("c", "a", 1)
	_ = g.AddEdge("a", "b", 1)
	_ = g.AddNode("c") // already present: no-op
	_ = g.AddNode("d")

	want := []string{"c", "a", "b", "d"}
	if got := g.Nodes(); !slices.Equal(got, want) {
		t.Errorf("Nodes() = %v, want %v", got, want)
	}
	if g.NodeCount() != 4 {
		t.Errorf("NodeCount() = %d, want 4", g.NodeCount())
	}
}

func TestAddNode_RejectsEmptyID(t *testing.T) {
	g := New()
	if err := g.AddNode(""); !errors.Is(err, ErrEmptyNodeID) {
		t.Errorf("AddNode(\"\") error = %v, want ErrEmptyNodeID", err)
	}
}

func TestHas(t *testing.T) {
	g := New()
	_ = g.AddEdge("a", "b", 0)

	if !g.Has("a") || !g.Has("b") {
		t.Errorf("Has() missing edge endpoints")
	}
	if g.Has("c") {
		t.Errorf("Has(c) = true for absent node")
	}
}

func TestEdges_ReturnsCopy(t *testing.T) {
	g := New()
	_ = g.AddEdge("a", "b", 1)

	edges := g.Edges()
	edges[0].Weight = 99

	if g.Edges()[0].Weight != 1 {
		t.Errorf("mutating Edges() result changed the graph")
	}
}

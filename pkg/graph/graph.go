package graph

import (
	"errors"
	"slices"
)

var (
	// ErrEmptyNodeID is returned by [Multigraph.AddNode] and [Multigraph.AddEdge]
	// when a node identifier is empty. All nodes must have non-empty identifiers.
	ErrEmptyNodeID = errors.New("node ID must not be empty")

	// ErrNegativeWeight is returned by [Multigraph.AddEdge] when the edge weight
	// is negative. Feedback arc set minimization is defined over non-negative
	// weights only; zero-weight edges are legal but carry no ordering influence.
	ErrNegativeWeight = errors.New("edge weight must be non-negative")
)

// Edge is a directed weighted edge as supplied by the caller.
// Parallel edges between the same ordered pair are legal and are summed
// during aggregation.
type Edge struct {
	From   string // Source node ID
	To     string // Target node ID
	Weight int64  // Non-negative weight
}

// Multigraph is a directed weighted multigraph under construction.
// It records edges in insertion order, registers nodes on first appearance,
// and separates self-loops from ordering-relevant edges. Aggregation into a
// canonical simple-edge adjacency happens later, inside the ordering
// computation.
//
// The zero value is not usable - use [New]. Multigraph is not safe for
// concurrent use without external synchronization.
type Multigraph struct {
	order []string       // node IDs in first-appearance order
	index map[string]int // node ID -> position in order
	edges []Edge         // non-self-loop edges, insertion order
	loops []Edge         // self-loops, kept for reporting only
	total int64          // sum of non-self-loop weights
}

// New creates an empty multigraph.
func New() *Multigraph {
	return &Multigraph{index: make(map[string]int)}
}

// AddNode registers a node without any edges. This is how callers retain
// isolated nodes in the computed order; nodes referenced by edges are
// registered automatically. Adding an already-present node is a no-op.
// Returns ErrEmptyNodeID if id is empty.
func (g *Multigraph) AddNode(id string) error {
	if id == "" {
		return ErrEmptyNodeID
	}
	g.register(id)
	return nil
}

// AddEdge records a directed edge from→to with the given weight.
// Both endpoints are registered as nodes on first appearance. A self-loop
// (from == to) is accepted but excluded from all degree accounting; it is
// retained only for reporting via [Multigraph.SelfLoops].
//
// Returns ErrEmptyNodeID if either endpoint is empty, or ErrNegativeWeight
// if weight < 0. Zero-weight edges are legal and inert.
func (g *Multigraph) AddEdge(from, to string, weight int64) error {
	if from == "" || to == "" {
		return ErrEmptyNodeID
	}
	if weight < 0 {
		return ErrNegativeWeight
	}
	g.register(from)
	g.register(to)
	e := Edge{From: from, To: to, Weight: weight}
	if from == to {
		g.loops = append(g.loops, e)
		return nil
	}
	g.edges = append(g.edges, e)
	g.total += weight
	return nil
}

func (g *Multigraph) register(id string) {
	if _, ok := g.index[id]; ok {
		return
	}
	g.index[id] = len(g.order)
	g.order = append(g.order, id)
}

// Nodes returns all node IDs in first-appearance order.
// The returned slice is a copy and can be modified freely.
func (g *Multigraph) Nodes() []string { return slices.Clone(g.order) }

// NodeCount returns the number of distinct nodes.
func (g *Multigraph) NodeCount() int { return len(g.order) }

// Edges returns a copy of all non-self-loop edges in insertion order.
// Parallel edges appear as separate entries.
func (g *Multigraph) Edges() []Edge { return slices.Clone(g.edges) }

// EdgeCount returns the number of non-self-loop edges (parallel edges
// counted individually).
func (g *Multigraph) EdgeCount() int { return len(g.edges) }

// SelfLoops returns a copy of all recorded self-loops in insertion order.
// Self-loops never influence the computed order.
func (g *Multigraph) SelfLoops() []Edge { return slices.Clone(g.loops) }

// TotalWeight returns the sum of all non-self-loop edge weights.
func (g *Multigraph) TotalWeight() int64 { return g.total }

// Has reports whether a node with the given ID is present.
func (g *Multigraph) Has(id string) bool {
	_, ok := g.index[id]
	return ok
}

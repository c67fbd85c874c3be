// Package graph provides the raw input representation for feedback arc set
// computation: a directed, weighted multigraph.
//
// # Overview
//
// Callers build a [Multigraph] from edge triples (from, to, weight) and,
// optionally, isolated nodes they want retained in the final order. The type
// is deliberately permissive: parallel edges between the same ordered pair
// are legal (they are summed during aggregation), self-loops are legal (they
// are recorded but never influence the order), and zero-weight edges are
// legal but inert.
//
// The only inputs rejected outright are empty node identifiers and negative
// weights - feedback arc set minimization is defined over non-negative
// weights, so a negative weight is a caller error and fails fast.
//
// # Usage
//
//	g := graph.New()
//	g.AddEdge("a", "b", 1)
//	g.AddEdge("b", "c", 1)
//	g.AddEdge("c", "a", 2)
//	g.AddNode("isolated") // retained, ordered with score 0
//
// Pass the finished graph to [fas.Order] to compute the node ordering.
//
// # Determinism
//
// Nodes are indexed in first-appearance order and edges in insertion order,
// so the same sequence of AddNode/AddEdge calls always produces an identical
// graph. All randomness in the downstream computation comes from an explicit
// seed, never from iteration order.
//
// [fas.Order]: github.com/matzehuels/sfas/pkg/fas
package graph

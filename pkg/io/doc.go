// Package io provides edge-list import and result export for feedback arc
// set computation.
//
// # Overview
//
// The ordering core takes its input as an in-memory [graph.Multigraph]; this
// package bridges that to files. Two input formats carry the same shape - an
// optional list of retained isolated nodes plus a list of weighted edges -
// and the computed order is exported as JSON.
//
// These are CLI conveniences, not persistence: nothing intermediate is ever
// stored, and a result file is only written where the caller explicitly
// asks for one.
//
// # JSON Input
//
//	{
//	  "nodes": ["standalone"],
//	  "edges": [
//	    {"from": "a", "to": "b", "weight": 2},
//	    {"from": "b", "to": "a"}
//	  ]
//	}
//
// # TOML Input
//
//	nodes = ["standalone"]
//
//	[[edges]]
//	from = "a"
//	to = "b"
//	weight = 2
//
// In both formats a missing weight defaults to 1, so unweighted graphs need
// only from/to pairs. Parallel edges and self-loops are legal; negative
// weights and empty IDs abort the whole import with an error naming the
// offending entry.
//
// # Output
//
// [WriteResult] emits the order, the total backward weight, and the backward
// edges:
//
//	{
//	  "order": ["c", "a", "b"],
//	  "feedback_weight": 1,
//	  "feedback_edges": [{"from": "b", "to": "c", "weight": 1}]
//	}
//
// [graph.Multigraph]: github.com/matzehuels/sfas/pkg/graph.Multigraph
package io

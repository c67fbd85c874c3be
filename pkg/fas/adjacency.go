package fas

import (
	"fmt"
	"maps"
	"slices"

	"github.com/matzehuels/sfas/pkg/graph"
)

// residual is the canonical adjacency of the not-yet-peeled subgraph, over
// compact node indices 0..n-1. Parallel input edges are aggregated into at
// most one weighted entry per direction per node pair; self-loops never
// enter. Nodes are removed one at a time during peeling and the weight
// totals shrink with them.
type residual struct {
	ids []string // compact index -> node ID, first-appearance order

	out []map[int]int64 // aggregated outgoing weights
	in  []map[int]int64 // aggregated incoming weights

	outW []int64 // residual weighted out-degree per node
	inW  []int64 // residual weighted in-degree per node

	feedback int64 // running backward weight: anti-parallel charges plus greedy peels
	pairs    int   // number of anti-parallel pairs cancelled
}

// newResidual aggregates the multigraph into a canonical adjacency with
// initial degree totals. Zero-weight entries are dropped outright: they are
// inert for scores and, because sources and sinks are classified by weighted
// degree, inert for structure too.
func newResidual(g *graph.Multigraph) *residual {
	ids := g.Nodes()
	n := len(ids)

	index := make(map[string]int, n)
	for i, id := range ids {
		index[id] = i
	}

	r := &residual{
		ids:  ids,
		out:  make([]map[int]int64, n),
		in:   make([]map[int]int64, n),
		outW: make([]int64, n),
		inW:  make([]int64, n),
	}
	for i := range n {
		r.out[i] = make(map[int]int64)
		r.in[i] = make(map[int]int64)
	}

	for _, e := range g.Edges() {
		if e.Weight == 0 {
			continue
		}
		u, v := index[e.From], index[e.To]
		r.out[u][v] += e.Weight
		r.in[v][u] += e.Weight
		r.outW[u] += e.Weight
		r.inW[v] += e.Weight
	}

	return r
}

// score returns the degree delta of a present node.
func (r *residual) score(v int) int64 { return r.outW[v] - r.inW[v] }

// maxScoreMagnitude returns the largest possible |score| over all nodes.
// A node's score is bounded by its initial incident weight on either side,
// so this is the bucket array's half-width W.
func (r *residual) maxScoreMagnitude() int64 {
	var w int64
	for v := range r.ids {
		w = max(w, r.outW[v], r.inW[v])
	}
	return w
}

// cancelAntiParallel reduces every anti-parallel pair u→v / v→u by removing
// the lighter direction and subtracting its weight from the heavier one. The
// removed weight is charged to the feedback total up front: whichever way
// the pair ends up ordered, exactly the lighter direction's weight (plus any
// residual charged during peeling) points backward.
//
// Ties keep neither direction. Pairs are visited in ascending index order so
// the reduction is deterministic.
func (r *residual) cancelAntiParallel() {
	for u := range r.ids {
		for _, v := range slices.Sorted(maps.Keys(r.out[u])) {
			if v <= u {
				continue
			}
			wvu, ok := r.out[v][u]
			if !ok {
				continue
			}
			wuv := r.out[u][v]
			light := min(wuv, wvu)

			r.removeEdge(u, v, light)
			r.removeEdge(v, u, light)
			r.feedback += light
			r.pairs++
		}
	}
}

// removeEdge subtracts w from the aggregated edge u→v, deleting the entry
// when it reaches zero.
func (r *residual) removeEdge(u, v int, w int64) {
	left := r.out[u][v] - w
	if left < 0 {
		panic(fmt.Sprintf("fas: residual edge %s->%s weight went negative", r.ids[u], r.ids[v]))
	}
	if left == 0 {
		delete(r.out[u], v)
		delete(r.in[v], u)
	} else {
		r.out[u][v] = left
		r.in[v][u] = left
	}
	r.outW[u] -= w
	r.inW[v] -= w
}

// removeNode deletes v and all its residual incident edges, updating the
// degree totals of every neighbor. It returns the affected neighbors in
// ascending index order so the caller can re-bucket them deterministically.
func (r *residual) removeNode(v int) []int {
	neighbors := make(map[int]struct{}, len(r.in[v])+len(r.out[v]))

	for u, w := range r.in[v] {
		delete(r.out[u], v)
		r.outW[u] -= w
		neighbors[u] = struct{}{}
	}
	for u, w := range r.out[v] {
		delete(r.in[u], v)
		r.inW[u] -= w
		neighbors[u] = struct{}{}
	}

	r.in[v] = nil
	r.out[v] = nil
	r.inW[v] = 0
	r.outW[v] = 0

	affected := slices.Sorted(maps.Keys(neighbors))
	for _, u := range affected {
		if r.inW[u] < 0 || r.outW[u] < 0 {
			panic(fmt.Sprintf("fas: negative residual degree on %s after removing %s", r.ids[u], r.ids[v]))
		}
	}
	return affected
}

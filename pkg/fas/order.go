package fas

import (
	"fmt"
	"io"
	"math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/sfas/pkg/graph"
)

// progressEvery is the peel count between progress log lines at debug level.
const progressEvery = 1000

// Options configures a single ordering computation.
type Options struct {
	// Seed drives all tie-breaking among equally qualified nodes. The same
	// input graph and seed always produce the same order; the zero seed is a
	// valid seed like any other.
	Seed uint64

	// Logger receives progress and statistics as a side channel. Info level
	// carries input/result summaries, debug level carries per-peel decisions
	// and periodic progress. Nil means silent.
	Logger *log.Logger
}

// Result is the outcome of one ordering computation.
type Result struct {
	// Order contains every distinct input node exactly once. Reading it left
	// to right, the total weight of edges pointing backward is small; for an
	// acyclic input it is zero and Order is a topological order.
	Order []string

	// FeedbackWeight is the total weight of input edges pointing backward in
	// Order. Removing those edges makes the graph acyclic.
	FeedbackWeight int64

	// FeedbackEdges lists the input edges (parallel edges individually) that
	// point backward in Order. Self-loops are never included.
	FeedbackEdges []graph.Edge

	// SelfLoops is the number of input self-loops, which are excluded from
	// ordering influence and from FeedbackWeight.
	SelfLoops int
}

// Order computes a node ordering of g that greedily minimizes the total
// weight of backward edges, following the three-step peeling priority:
// sources to the front, then sinks to the back, then the maximum-score node
// to the front. See the package documentation for the algorithm.
//
// The computation is one-shot and owns all its state; g is not modified.
// A nil or empty graph yields an empty order. Invalid input is rejected
// before any peeling begins.
func Order(g *graph.Multigraph, opts Options) (*Result, error) {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	if g == nil || g.NodeCount() == 0 {
		return &Result{Order: []string{}}, nil
	}

	// Fail fast: reject malformed edges before building anything. Multigraph
	// already enforces this at AddEdge, so a hit here means the caller
	// bypassed it.
	for _, e := range g.Edges() {
		if e.Weight < 0 {
			return nil, fmt.Errorf("edge %s->%s: %w", e.From, e.To, graph.ErrNegativeWeight)
		}
	}

	logger.Info("Ordering graph", "nodes", g.NodeCount(), "edges", g.EdgeCount(), "totalWeight", g.TotalWeight())
	if n := len(g.SelfLoops()); n > 0 {
		logger.Debug("Excluded self-loops from ordering", "count", n)
	}

	r := newResidual(g)
	r.cancelAntiParallel()
	if r.pairs > 0 {
		logger.Debug("Cancelled anti-parallel pairs", "pairs", r.pairs, "weight", r.feedback)
	}

	rng := rand.New(rand.NewPCG(opts.Seed, opts.Seed^0xdeadbeef))
	queue := newBucketQueue(len(r.ids), r.maxScoreMagnitude(), rng)
	for v := range r.ids {
		queue.insert(v, r.inW[v], r.outW[v])
	}
	logger.Debug("Initial bucket occupancy", "histogram", queue.histogram())

	front, back := peel(r, queue, logger)

	res := assemble(g, r, front, back)
	res.SelfLoops = len(g.SelfLoops())

	logger.Info("Ordering complete",
		"feedbackWeight", res.FeedbackWeight,
		"feedbackEdges", len(res.FeedbackEdges),
		"share", percentage(res.FeedbackWeight, g.TotalWeight()))
	return res, nil
}

// peel runs the main loop: one extraction per node until the residual graph
// is empty. It returns the front and back sequences of compact indices and
// leaves the accumulated feedback weight in r.feedback.
func peel(r *residual, queue *bucketQueue, logger *log.Logger) (front, back []int) {
	total := len(r.ids)
	nextReport := progressEvery

	for queue.len() > 0 {
		if placed := total - queue.len(); placed >= nextReport {
			logger.Debug("Peeling progress", "placed", placed, "of", total, "feedbackWeight", r.feedback)
			nextReport += progressEvery
		}

		if v, ok := queue.popSource(); ok {
			logger.Debug("Peeled source", "node", r.ids[v])
			front = append(front, v)
			rebucket(r, queue, v)
			continue
		}
		if v, ok := queue.popSink(); ok {
			logger.Debug("Peeled sink", "node", r.ids[v])
			back = append(back, v)
			rebucket(r, queue, v)
			continue
		}
		v, ok := queue.popMax()
		if !ok {
			panic(fmt.Sprintf("fas: %d nodes present but no bucket is nonempty", queue.len()))
		}
		// The greedy step: every residual incoming edge of v will point
		// backward once v is placed in front of its remaining neighbors.
		r.feedback += r.inW[v]
		logger.Debug("Peeled max-score node", "node", r.ids[v], "score", r.score(v), "backwardWeight", r.inW[v])
		front = append(front, v)
		rebucket(r, queue, v)
	}
	return front, back
}

// rebucket removes the peeled node's incident edges and moves every affected
// neighbor to its new bucket.
func rebucket(r *residual, queue *bucketQueue, v int) {
	for _, u := range r.removeNode(v) {
		queue.update(u, r.inW[u], r.outW[u])
	}
}

// assemble concatenates the front sequence with the reversed back sequence,
// maps compact indices back to node IDs, and verifies the permutation and
// feedback-weight invariants against the original edge list.
func assemble(g *graph.Multigraph, r *residual, front, back []int) *Result {
	n := len(r.ids)
	order := make([]string, 0, n)
	seen := make([]bool, n)

	place := func(v int) {
		if seen[v] {
			panic(fmt.Sprintf("fas: node %s placed twice", r.ids[v]))
		}
		seen[v] = true
		order = append(order, r.ids[v])
	}
	for _, v := range front {
		place(v)
	}
	for i := len(back) - 1; i >= 0; i-- {
		place(back[i])
	}
	if len(order) != n {
		panic(fmt.Sprintf("fas: order has %d nodes, want %d", len(order), n))
	}

	pos := make(map[string]int, n)
	for i, id := range order {
		pos[id] = i
	}

	var backward []graph.Edge
	var weight int64
	for _, e := range g.Edges() {
		if pos[e.From] > pos[e.To] {
			backward = append(backward, e)
			weight += e.Weight
		}
	}
	if weight != r.feedback {
		panic(fmt.Sprintf("fas: backward weight %d does not match tracked feedback weight %d", weight, r.feedback))
	}

	return &Result{Order: order, FeedbackWeight: weight, FeedbackEdges: backward}
}

// percentage formats part as an integer percentage of whole, for log output.
func percentage(part, whole int64) string {
	if whole == 0 {
		return "0%"
	}
	return fmt.Sprintf("%d%%", 100*part/whole)
}

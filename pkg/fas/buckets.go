package fas

import (
	"fmt"
	"math/rand/v2"
	"strings"
)

// bucket kinds for locating a node inside the queue.
const (
	inNone   = iota // not present
	inSource        // weighted in-degree 0
	inSink          // weighted out-degree 0 (and not a source)
	inDelta         // bucketed by score
)

// loc records where a present node currently lives: which bucket kind, which
// delta bucket (for inDelta), and its position inside that bucket's slice.
type loc struct {
	kind int
	key  int // delta bucket index, only meaningful for inDelta
	pos  int
}

// bucketQueue is the degree-delta priority structure. Present nodes sit in
// one of three places: a dedicated source bucket, a dedicated sink bucket, or
// a score bucket in a bounded array indexed by score+offset over [-W, W].
//
// Extraction of the maximum-score node scans downward from a watermark that
// only moves down as higher buckets empty and is pushed back up on insert,
// making extraction amortized O(1). Insert, remove and update are O(1) via
// swap-with-last removal and a per-node location index.
//
// Tie-breaking among a bucket's occupants is a uniform draw from the queue's
// seeded generator, which is the only source of randomness in the whole
// computation.
type bucketQueue struct {
	offset  int64   // W: buckets[score+offset]
	deltas  [][]int // 2W+1 score buckets
	sources []int
	sinks   []int

	locs  []loc // node -> current location
	count int   // present nodes
	top   int   // watermark: highest delta index that may be nonempty

	rng *rand.Rand
}

// newBucketQueue creates an empty queue for n nodes with scores bounded by
// [-maxScore, maxScore], drawing tie-breaks from rng.
func newBucketQueue(n int, maxScore int64, rng *rand.Rand) *bucketQueue {
	return &bucketQueue{
		offset: maxScore,
		deltas: make([][]int, 2*int(maxScore)+1),
		locs:   make([]loc, n),
		top:    -1,
		rng:    rng,
	}
}

// insert places node v according to its weighted degrees. Sources win over
// sinks, matching the peeling priority; everything else is bucketed by score.
func (q *bucketQueue) insert(v int, inW, outW int64) {
	switch {
	case inW == 0:
		q.locs[v] = loc{kind: inSource, pos: len(q.sources)}
		q.sources = append(q.sources, v)
	case outW == 0:
		q.locs[v] = loc{kind: inSink, pos: len(q.sinks)}
		q.sinks = append(q.sinks, v)
	default:
		key := int(outW - inW + q.offset)
		if key < 0 || key >= len(q.deltas) {
			panic(fmt.Sprintf("fas: score %d out of bucket range [-%d, %d]", outW-inW, q.offset, q.offset))
		}
		q.locs[v] = loc{kind: inDelta, key: key, pos: len(q.deltas[key])}
		q.deltas[key] = append(q.deltas[key], v)
		if key > q.top {
			q.top = key
		}
	}
	q.count++
}

// remove takes node v out of whatever bucket holds it.
func (q *bucketQueue) remove(v int) {
	l := q.locs[v]
	switch l.kind {
	case inSource:
		q.sources = q.swapDelete(q.sources, l.pos)
	case inSink:
		q.sinks = q.swapDelete(q.sinks, l.pos)
	case inDelta:
		q.deltas[l.key] = q.swapDelete(q.deltas[l.key], l.pos)
	default:
		panic(fmt.Sprintf("fas: remove of absent node %d", v))
	}
	q.locs[v] = loc{kind: inNone}
	q.count--
}

// update re-buckets a present node after its residual degrees changed.
func (q *bucketQueue) update(v int, inW, outW int64) {
	q.remove(v)
	q.insert(v, inW, outW)
}

// swapDelete removes index i from s in O(1), fixing the moved node's
// position index.
func (q *bucketQueue) swapDelete(s []int, i int) []int {
	last := len(s) - 1
	s[i] = s[last]
	q.locs[s[i]].pos = i
	return s[:last]
}

// popSource extracts a uniformly chosen source, if any exist.
func (q *bucketQueue) popSource() (int, bool) { return q.popFrom(&q.sources) }

// popSink extracts a uniformly chosen sink, if any exist.
func (q *bucketQueue) popSink() (int, bool) { return q.popFrom(&q.sinks) }

func (q *bucketQueue) popFrom(bucket *[]int) (int, bool) {
	if len(*bucket) == 0 {
		return 0, false
	}
	v := (*bucket)[q.rng.IntN(len(*bucket))]
	q.remove(v)
	return v, true
}

// popMax extracts a uniformly chosen node from the highest nonempty score
// bucket. The watermark moves monotonically down between inserts, so the
// scan cost amortizes to O(1) per extraction.
func (q *bucketQueue) popMax() (int, bool) {
	for q.top >= 0 && len(q.deltas[q.top]) == 0 {
		q.top--
	}
	if q.top < 0 {
		return 0, false
	}
	bucket := q.deltas[q.top]
	v := bucket[q.rng.IntN(len(bucket))]
	q.remove(v)
	return v, true
}

// len returns the number of present nodes.
func (q *bucketQueue) len() int { return q.count }

// histogram summarizes the current occupancy for debug logging: source and
// sink counts followed by every nonempty score bucket as "score:count" in
// ascending score order.
func (q *bucketQueue) histogram() string {
	var b strings.Builder
	fmt.Fprintf(&b, "sources:%d sinks:%d", len(q.sources), len(q.sinks))
	for key, bucket := range q.deltas {
		if len(bucket) > 0 {
			fmt.Fprintf(&b, " %d:%d", int64(key)-q.offset, len(bucket))
		}
	}
	return b.String()
}

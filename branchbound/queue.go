package branchbound

import "github.com/bits-and-blooms/bitset"

// searchNode is one frontier entry of the best-first search: a partial
// decision state over the ratio-sorted item list.
//
// level marks the next undecided sorted item; profit/weight accumulate
// the decisions made so far; bound is the fractional-relaxation upper
// estimate of any completion. picks records membership by original
// index. Each live node owns its selection set — no node shares mutable
// state with another (a parent's set may be handed to exactly one child
// at branch time, after which the parent is discarded).
type searchNode struct {
	level  int
	profit int
	weight int
	bound  float64
	picks  *bitset.BitSet
	seq    uint64 // insertion sequence, last-resort tie-break
}

// boundQueue implements container/heap as a max-first queue on bound:
// the node with the single greatest promise pops next.
//
// Tie-break for equal bounds: greater profit, then lower level, then
// earlier insertion sequence. Floating-point bounds alone would leave
// pop order unspecified on ties; this chain keeps runs reproducible.
type boundQueue []*searchNode

func (q boundQueue) Len() int { return len(q) }

func (q boundQueue) Less(i, j int) bool {
	a, b := q[i], q[j]
	if a.bound != b.bound {
		return a.bound > b.bound
	}
	if a.profit != b.profit {
		return a.profit > b.profit
	}
	if a.level != b.level {
		return a.level < b.level
	}

	return a.seq < b.seq
}

func (q boundQueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *boundQueue) Push(x any) { *q = append(*q, x.(*searchNode)) }

func (q *boundQueue) Pop() any {
	old := *q
	n := len(old)
	nd := old[n-1]
	old[n-1] = nil // release the node for GC
	*q = old[:n-1]

	return nd
}

// Package branchbound — best-first branch-and-bound for the 0/1 knapsack.
//
// Solve explores the same binary decision tree as backtrack, but ordered
// by promise instead of depth: a max-heap keyed on each node's
// fractional-relaxation upper bound always expands the most promising
// frontier node next.
//
// Rationale (succinct):
//  1. Items are sorted by value/weight ratio descending (core.RatioItems);
//     the greedy prefix of that order is what makes the relaxation tight.
//  2. Bound at a node with profit P, weight Wc, level L: starting from P,
//     add whole items from L onward while they fit; when the next item no
//     longer fits whole, add remaining-capacity × its ratio. This is the
//     LP relaxation of the suffix — never below any integral completion,
//     so pruning on it never cuts an optimal branch. A node already over
//     capacity gets bound 0 (infeasible).
//  3. Pop loop: a popped node whose bound cannot beat the incumbent is
//     discarded — only that node; later queue entries may still qualify.
//     A popped node at level n is a complete solution and may advance
//     the incumbent.
//  4. Branching pushes "include" (only if it fits) and "exclude"
//     children, each with a freshly computed bound, and only when that
//     bound strictly exceeds the incumbent.
//  5. Incumbent updates happen at BOTH sites: when a level-n node is
//     popped, and immediately when an include child reaches level n at
//     generation time. The generation-time site tightens the push filter
//     for every sibling branch generated afterwards; dropping either
//     site weakens pruning and, with the push filter in place, can leave
//     the incumbent too low.
//
// Complexity:
//   - Worst case exponential nodes (exact search).
//   - Per node: O(n) bound computation + O(n/64) selection-set clone.
//   - Memory: O(queue size × n/64) bits for selection sets — each live
//     entry owns a full copy, which is why the sets are compact bitsets
//     rather than bool slices.
//
// Errors: core.ValidateInstance sentinels for malformed input; valid
// input never fails.
package branchbound

import (
	"container/heap"

	"github.com/bits-and-blooms/bitset"
	"github.com/katalvlaran/knapx/core"
)

// bbEngine holds all search data for one Solve invocation.
type bbEngine struct {
	capacity int
	items    []core.Item // ratio-descending order
	n        int

	queue boundQueue
	seq   uint64 // monotonically increasing push counter

	// Incumbent: best complete feasible solution found so far.
	bestValue int
	bestPicks *bitset.BitSet
}

// bound computes the fractional-relaxation upper bound for a partial
// state. Zero-weight items always fit whole, so the fractional tail
// item (if any) has positive weight and a finite ratio — the +Inf
// zero-weight ratio never multiplies into the bound.
func (e *bbEngine) bound(level, weight, profit int) float64 {
	if weight > e.capacity {
		return 0 // infeasible state, no valid completion
	}

	var (
		b = float64(profit)
		w = weight
		i = level
	)

	// Greedy whole-item fill over the undecided suffix.
	for i < e.n && w+e.items[i].Weight <= e.capacity {
		w += e.items[i].Weight
		b += float64(e.items[i].Value)
		i++
	}

	// Fractional share of the first item that no longer fits whole.
	if i < e.n {
		b += float64(e.capacity-w) * e.items[i].Ratio
	}

	return b
}

// record commits a new incumbent. The node handing over its selection
// set is never mutated afterwards, so the set transfers by reference.
func (e *bbEngine) record(profit int, picks *bitset.BitSet) {
	e.bestValue = profit
	e.bestPicks = picks
}

// push enqueues nd only if its bound can still beat the incumbent.
func (e *bbEngine) push(nd *searchNode) {
	if nd.bound > float64(e.bestValue) {
		e.seq++
		nd.seq = e.seq
		heap.Push(&e.queue, nd)
	}
}

// branch generates the include/exclude children of nd and filters them
// through the bound test before they ever enter the queue.
func (e *bbEngine) branch(nd *searchNode) {
	it := e.items[nd.level]

	// Include child — only if the item fits.
	if nd.weight+it.Weight <= e.capacity {
		inc := &searchNode{
			level:  nd.level + 1,
			profit: nd.profit + it.Value,
			weight: nd.weight + it.Weight,
			picks:  nd.picks.Clone(),
		}
		inc.picks.Set(uint(it.Index))
		inc.bound = e.bound(inc.level, inc.weight, inc.profit)

		// Generation-time incumbent site: a complete solution formed here
		// must advance the incumbent now, before the sibling is filtered.
		if inc.level == e.n && inc.profit > e.bestValue {
			e.record(inc.profit, inc.picks)
		}
		e.push(inc)
	}

	// Exclude child — the parent is discarded after branching, so its
	// selection set transfers to this child unchanged.
	exc := &searchNode{
		level:  nd.level + 1,
		profit: nd.profit,
		weight: nd.weight,
		picks:  nd.picks,
	}
	exc.bound = e.bound(exc.level, exc.weight, exc.profit)
	e.push(exc)
}

// Solve runs the best-first search and returns the optimum.
func Solve(capacity int, weights, values []int) (core.Result, error) {
	if err := core.ValidateInstance(capacity, weights, values); err != nil {
		return core.Result{}, err
	}

	var e bbEngine
	e.capacity = capacity
	e.items = core.RatioItems(weights, values)
	e.n = len(e.items)
	e.queue = make(boundQueue, 0, 2*e.n+1)
	e.bestPicks = bitset.New(uint(e.n)) // empty selection is feasible at value 0
	heap.Init(&e.queue)

	// Root: nothing decided yet.
	root := &searchNode{picks: bitset.New(uint(e.n))}
	root.bound = e.bound(0, 0, 0)
	e.push(root)

	for e.queue.Len() > 0 {
		nd := heap.Pop(&e.queue).(*searchNode)

		// The incumbent may have advanced since nd was pushed.
		if nd.bound <= float64(e.bestValue) {
			continue
		}

		// Pop-time incumbent site: all n items decided.
		if nd.level == e.n {
			if nd.profit > e.bestValue {
				e.record(nd.profit, nd.picks)
			}

			continue
		}

		e.branch(nd)
	}

	// Bitset iteration yields original indices in ascending order.
	picked := make([]int, 0, e.bestPicks.Count())
	for i, ok := e.bestPicks.NextSet(0); ok; i, ok = e.bestPicks.NextSet(i + 1) {
		picked = append(picked, int(i))
	}

	return core.Result{Value: e.bestValue, Picked: picked}, nil
}

// Package core - ratio ordering shared by the search solvers.
//
// Backtracking and branch-and-bound both explore items in descending
// Value/Weight ratio: the greedy-best prefix tightens the value upper
// bound early, which is what makes pruning effective. The DP solvers are
// index-order-invariant and do not use this ordering.
package core

import (
	"math"
	"sort"
)

// byRatioDesc orders items by descending Ratio.
// Equal ratios break ties by ascending original index, keeping the order
// fully deterministic across runs and platforms.
type byRatioDesc []Item

func (s byRatioDesc) Len() int { return len(s) }
func (s byRatioDesc) Less(i, j int) bool {
	if s[i].Ratio == s[j].Ratio {
		return s[i].Index < s[j].Index
	}

	return s[i].Ratio > s[j].Ratio
}
func (s byRatioDesc) Swap(i, j int) { s[i], s[j] = s[j], s[i] }

// RatioItems builds the auxiliary item list {weight, value, ratio,
// original index} sorted by ratio descending. The input slices are not
// modified; the returned slice is freshly allocated.
//
// Zero-weight items receive Ratio=+Inf and therefore sort first.
//
// Precondition: len(weights) == len(values) (checked by ValidateInstance;
// callers inside this module validate before building items).
//
// Complexity: O(n log n) time, O(n) space.
func RatioItems(weights, values []int) []Item {
	var n int
	n = len(weights)
	items := make([]Item, n)

	var i int
	for i = 0; i < n; i++ {
		items[i] = Item{
			Weight: weights[i],
			Value:  values[i],
			Ratio:  ratio(values[i], weights[i]),
			Index:  i,
		}
	}
	sort.Sort(byRatioDesc(items))

	return items
}

// ratio computes value/weight with the explicit zero-weight policy:
// a weightless item is infinitely dense, so its ratio is +Inf.
func ratio(value, weight int) float64 {
	if weight == 0 {
		return math.Inf(1)
	}

	return float64(value) / float64(weight)
}

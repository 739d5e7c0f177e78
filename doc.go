// Package knapx is a workbench for exact 0/1 knapsack solving — three
// independent algorithmic strategies sharing one contract, built for
// empirical performance comparison.
//
// 🚀 What is knapx?
//
//	A small, deterministic library that solves the same problem three ways:
//		• Backtracking: pruned depth-first search over include/exclude choices
//		• Branch-and-Bound: best-first search with a fractional-relaxation bound
//		• Dynamic Programming: full (n+1)×(W+1) table, or a rolling row
//		  with an auxiliary chosen-grid for reconstruction
//
// ✨ Why choose knapx?
//
//   - Exact answers – every solver returns the true optimum, never a heuristic
//   - One contract – (capacity, weights, values) in; (value, picked indices) out
//   - Deterministic – documented tie-breaks, seedable instance generation
//   - Comparable – an experiment runner times all solvers over instance sets
//
// The module is organized into focused subpackages:
//
//	core/        — Item model, ratio ordering, validation, Result contract
//	dynprog/     — dynamic-programming solver (full-table and rolling modes)
//	backtrack/   — pruned depth-first solver
//	branchbound/ — best-first branch-and-bound solver
//	solver/      — Algo enum + unified dispatcher
//	instance/    — plain-text instance format + random generator
//	experiment/  — batch benchmarking with CSV results
//	cmd/knapx/   — command-line front end (generate / solve / experiment)
//
// Quick start:
//
//	res, err := solver.Solve(solver.DynamicProgramming, 10,
//		[]int{2, 3, 4, 5}, []int{3, 4, 5, 6})
//	// res.Value == 13, res.Picked == []int{0, 1, 3}
//
//	go get github.com/katalvlaran/knapx
package knapx

// Package core defines the shared model of the 0/1 knapsack problem:
// the Item auxiliary record, the ratio-descending ordering used by the
// search solvers, the Result contract every solver returns, and the
// staged validation of raw (capacity, weights, values) input.
//
// All solver packages (backtrack, branchbound, dynprog) depend on core;
// core depends on nothing but the standard library.
package core

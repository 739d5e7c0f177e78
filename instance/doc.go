// Package instance reads, writes, and randomly generates plain-text
// 0/1 knapsack instances.
//
// The file format is one capacity line followed by one "weight value"
// pair per line. The generator is fully deterministic from its seed and
// writes batches under $INSTANCES_DIR (default ./output/instances) in
// instances_n<N>_W<W>/instance_<i>.txt.
//
// The solver packages never consume this format directly; parse with
// Read and hand the arrays to solver.Solve.
package instance

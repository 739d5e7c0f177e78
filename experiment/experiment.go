// Package experiment - batch benchmarking of the knapsack solvers.
//
// Run takes a list of instance files and a set of algorithms, solves
// every (instance, algorithm) pair, and records wall-clock duration,
// optimal value, and selection size per pair. Instances run in parallel
// under a bounded errgroup; each solver call itself stays synchronous
// and single-threaded, so parallel instances share no mutable state.
//
// Every instance is also cross-checked: all requested algorithms must
// report the identical optimal value, otherwise Run fails with
// ErrValueMismatch — a disagreement means a solver bug, and silently
// benchmarking wrong answers would be worse than no benchmark.
//
// Results serialize to CSV via WriteCSV with the header
//
//	algorithm,instance,n,capacity,value,picked,duration_us
package experiment

import (
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/knapx/instance"
	"github.com/katalvlaran/knapx/solver"
)

// Sentinel errors for the experiment runner.
var (
	// ErrValueMismatch indicates two algorithms disagreed on an
	// instance's optimal value.
	ErrValueMismatch = errors.New("experiment: solvers disagree on the optimal value")

	// ErrNoAlgos indicates an empty algorithm set.
	ErrNoAlgos = errors.New("experiment: at least one algorithm is required")
)

// Record is one (instance, algorithm) measurement.
type Record struct {
	// Algo is the measured algorithm.
	Algo solver.Algo

	// Instance is the instance file path as passed to Run.
	Instance string

	// Items and Capacity describe the instance.
	Items    int
	Capacity int

	// Value is the optimal value; Picked is the selection size.
	Value  int
	Picked int

	// Duration is the wall-clock time of the single Solve call.
	Duration time.Duration
}

// Options configures a Run.
type Options struct {
	// Algos is the algorithm set to measure; order is the CSV row order
	// within each instance.
	Algos []solver.Algo

	// Workers bounds how many instances solve concurrently.
	// Values < 1 mean GOMAXPROCS-many.
	Workers int
}

// DefaultOptions measures every algorithm with one worker per CPU.
func DefaultOptions() Options {
	return Options{Algos: solver.Algos(), Workers: runtime.NumCPU()}
}

// Run measures every (instance, algorithm) pair and returns the records
// grouped by instance in input order, algorithms in opts order. A nil
// opts selects DefaultOptions. The first instance read error, solve
// error, value mismatch, or context cancellation aborts the run.
func Run(ctx context.Context, paths []string, opts *Options) ([]Record, error) {
	o := DefaultOptions()
	if opts != nil {
		o = *opts
	}
	if len(o.Algos) == 0 {
		return nil, ErrNoAlgos
	}
	if o.Workers < 1 {
		o.Workers = runtime.NumCPU()
	}

	// One slot per instance keeps output order deterministic without
	// a mutex, regardless of worker interleaving.
	perInstance := make([][]Record, len(paths))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(o.Workers)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			in, err := instance.Read(path)
			if err != nil {
				return err
			}

			recs := make([]Record, 0, len(o.Algos))
			for _, algo := range o.Algos {
				start := time.Now()
				res, err := solver.Solve(algo, in.Capacity, in.Weights, in.Values)
				elapsed := time.Since(start)
				if err != nil {
					return fmt.Errorf("%s on %s: %w", algo, path, err)
				}

				// Cross-check against the first algorithm's answer.
				if len(recs) > 0 && res.Value != recs[0].Value {
					return fmt.Errorf("%w: %s=%d vs %s=%d on %s",
						ErrValueMismatch, o.Algos[0], recs[0].Value, algo, res.Value, path)
				}

				recs = append(recs, Record{
					Algo:     algo,
					Instance: path,
					Items:    len(in.Weights),
					Capacity: in.Capacity,
					Value:    res.Value,
					Picked:   len(res.Picked),
					Duration: elapsed,
				})
			}
			perInstance[i] = recs

			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	out := make([]Record, 0, len(paths)*len(o.Algos))
	for _, recs := range perInstance {
		out = append(out, recs...)
	}

	return out, nil
}

// WriteCSV serializes records with a header row.
func WriteCSV(w io.Writer, recs []Record) error {
	cw := csv.NewWriter(w)

	if err := cw.Write([]string{
		"algorithm", "instance", "n", "capacity", "value", "picked", "duration_us",
	}); err != nil {
		return err
	}
	for _, r := range recs {
		if err := cw.Write([]string{
			r.Algo.String(),
			r.Instance,
			strconv.Itoa(r.Items),
			strconv.Itoa(r.Capacity),
			strconv.Itoa(r.Value),
			strconv.Itoa(r.Picked),
			strconv.FormatInt(r.Duration.Microseconds(), 10),
		}); err != nil {
			return err
		}
	}
	cw.Flush()

	return cw.Error()
}

// ResultsDir resolves the base directory for result files:
// $RESULTS_DIR when set, otherwise ./output/results.
func ResultsDir() string {
	if dir := os.Getenv("RESULTS_DIR"); dir != "" {
		return dir
	}

	return "./output/results"
}

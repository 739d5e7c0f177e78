// Command knapx is the front end for the knapsack solver suite:
//
//	knapx generate   -count 10 -items 50 -capacity 200 -seed 7
//	knapx solve      -file instance_1.txt -algo branch_and_bound
//	knapx experiment -dir ./output/instances/instances_n50_W200 -out results.csv
//
// generate writes random instances under $INSTANCES_DIR, solve runs one
// algorithm on one instance file, and experiment times every requested
// algorithm over a directory of instances and writes a CSV under
// $RESULTS_DIR (or the -out path).
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/katalvlaran/knapx/experiment"
	"github.com/katalvlaran/knapx/instance"
	"github.com/katalvlaran/knapx/solver"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "generate":
		err = runGenerate(os.Args[2:])
	case "solve":
		err = runSolve(os.Args[2:])
	case "experiment":
		err = runExperiment(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, "knapx:", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: knapx <generate|solve|experiment> [flags]")
}

func runGenerate(args []string) error {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	count := fs.Int("count", 10, "number of instances to generate")
	items := fs.Int("items", 50, "items per instance")
	capacity := fs.Int("capacity", 200, "knapsack capacity")
	seed := fs.Int64("seed", 0, "RNG seed (0 = fixed default)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := instance.DefaultGenerateConfig(*count, *items, *capacity)
	cfg.Seed = *seed

	paths, err := instance.Generate(cfg)
	if err != nil {
		return err
	}
	for _, p := range paths {
		fmt.Println(p)
	}

	return nil
}

func runSolve(args []string) error {
	fs := flag.NewFlagSet("solve", flag.ExitOnError)
	file := fs.String("file", "", "instance file to solve")
	algoName := fs.String("algo", solver.DynamicProgramming.String(),
		"algorithm: "+strings.Join(algoNames(), ", "))
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *file == "" {
		return fmt.Errorf("solve: -file is required")
	}

	algo, err := solver.ParseAlgo(*algoName)
	if err != nil {
		return err
	}

	in, err := instance.Read(*file)
	if err != nil {
		return err
	}

	start := time.Now()
	res, err := solver.Solve(algo, in.Capacity, in.Weights, in.Values)
	elapsed := time.Since(start)
	if err != nil {
		return err
	}

	fmt.Printf("algorithm: %s\n", algo)
	fmt.Printf("items:     %d, capacity: %d\n", len(in.Weights), in.Capacity)
	fmt.Printf("value:     %d\n", res.Value)
	fmt.Printf("picked:    %v\n", res.Picked)
	fmt.Printf("duration:  %s\n", elapsed)

	return nil
}

func runExperiment(args []string) error {
	fs := flag.NewFlagSet("experiment", flag.ExitOnError)
	dir := fs.String("dir", "", "directory of instance .txt files")
	algoList := fs.String("algos", strings.Join(algoNames(), ","),
		"comma-separated algorithms to measure")
	workers := fs.Int("workers", 0, "parallel instances (0 = one per CPU)")
	out := fs.String("out", "", "output CSV path (default $RESULTS_DIR/results.csv)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	paths := fs.Args()
	if *dir != "" {
		found, err := filepath.Glob(filepath.Join(*dir, "*.txt"))
		if err != nil {
			return err
		}
		sort.Strings(found) // stable row order across filesystems
		paths = append(paths, found...)
	}
	if len(paths) == 0 {
		return fmt.Errorf("experiment: no instance files (use -dir or list files)")
	}

	opts := experiment.DefaultOptions()
	opts.Algos = opts.Algos[:0]
	for _, name := range strings.Split(*algoList, ",") {
		algo, err := solver.ParseAlgo(strings.TrimSpace(name))
		if err != nil {
			return err
		}
		opts.Algos = append(opts.Algos, algo)
	}
	if *workers > 0 {
		opts.Workers = *workers
	}

	recs, err := experiment.Run(context.Background(), paths, &opts)
	if err != nil {
		return err
	}

	target := *out
	if target == "" {
		if err = os.MkdirAll(experiment.ResultsDir(), 0o755); err != nil {
			return err
		}
		target = filepath.Join(experiment.ResultsDir(), "results.csv")
	}

	f, err := os.Create(target)
	if err != nil {
		return err
	}
	if err = experiment.WriteCSV(f, recs); err != nil {
		f.Close()

		return err
	}
	if err = f.Close(); err != nil {
		return err
	}

	fmt.Printf("wrote %d records to %s\n", len(recs), target)

	return nil
}

// algoNames lists the stable algorithm names in dispatch order.
func algoNames() []string {
	names := make([]string, 0, len(solver.Algos()))
	for _, a := range solver.Algos() {
		names = append(names, a.String())
	}

	return names
}

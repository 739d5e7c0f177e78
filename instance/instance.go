// Package instance - the plain-text knapsack instance format.
//
// Format:
//
//	line 1:  capacity
//	line 2+: one item per line, "weight value", whitespace-separated
//
// Blank lines are ignored. Writers emit a tab between weight and value;
// readers accept any run of spaces or tabs.
//
// Design principles:
//   - Deterministic round-trip: Write then Read reproduces the instance.
//   - Only sentinel errors (optionally wrapped with the offending line).
//   - The solver core never touches this format — it receives the
//     already-parsed arrays.
package instance

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/katalvlaran/knapx/core"
)

// Sentinel errors for instance file handling.
var (
	// ErrEmptyFile indicates a file with no capacity line.
	ErrEmptyFile = errors.New("instance: file has no capacity line")

	// ErrBadFormat indicates an unparsable line; wrapped errors carry
	// the line number and content.
	ErrBadFormat = errors.New("instance: malformed line")
)

// Instance is one parsed knapsack problem instance.
type Instance struct {
	Capacity int
	Weights  []int
	Values   []int
}

// Validate applies the module-wide instance contract (core sentinels).
func (in Instance) Validate() error {
	return core.ValidateInstance(in.Capacity, in.Weights, in.Values)
}

// Read parses an instance file. The returned instance is validated.
func Read(path string) (Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return Instance{}, err
	}
	defer f.Close()

	var (
		in      Instance
		sc      = bufio.NewScanner(f)
		lineNo  int
		gotCap  bool
		fields  []string
		w, v, c int
	)
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue // blank lines carry no meaning
		}

		if !gotCap {
			// First non-blank line: the capacity.
			c, err = strconv.Atoi(line)
			if err != nil {
				return Instance{}, fmt.Errorf("%w: line %d: %q", ErrBadFormat, lineNo, line)
			}
			in.Capacity = c
			gotCap = true

			continue
		}

		// Item line: "weight value".
		fields = strings.Fields(line)
		if len(fields) != 2 {
			return Instance{}, fmt.Errorf("%w: line %d: %q", ErrBadFormat, lineNo, line)
		}
		w, err = strconv.Atoi(fields[0])
		if err != nil {
			return Instance{}, fmt.Errorf("%w: line %d: %q", ErrBadFormat, lineNo, line)
		}
		v, err = strconv.Atoi(fields[1])
		if err != nil {
			return Instance{}, fmt.Errorf("%w: line %d: %q", ErrBadFormat, lineNo, line)
		}
		in.Weights = append(in.Weights, w)
		in.Values = append(in.Values, v)
	}
	if err = sc.Err(); err != nil {
		return Instance{}, err
	}
	if !gotCap {
		return Instance{}, ErrEmptyFile
	}
	if err = in.Validate(); err != nil {
		return Instance{}, err
	}

	return in, nil
}

// Write serializes an instance to path in the canonical format
// (capacity line, then tab-separated "weight\tvalue" lines).
func Write(path string, in Instance) error {
	if err := in.Validate(); err != nil {
		return err
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	bw := bufio.NewWriter(f)
	fmt.Fprintf(bw, "%d\n", in.Capacity)
	for i := range in.Weights {
		fmt.Fprintf(bw, "%d\t%d\n", in.Weights[i], in.Values[i])
	}
	if err = bw.Flush(); err != nil {
		f.Close()

		return err
	}

	return f.Close()
}

// InstancesDir resolves the base directory for generated instances:
// $INSTANCES_DIR when set, otherwise ./output/instances.
func InstancesDir() string {
	if dir := os.Getenv("INSTANCES_DIR"); dir != "" {
		return dir
	}

	return "./output/instances"
}

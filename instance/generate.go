// Package instance - deterministic random instance generation.
//
// This file centralizes random generation for the experiment pipeline.
//
// Goals:
//   - Determinism: same seed ⇒ identical instance files across platforms.
//   - Encapsulation: a single RNG factory; no time-based sources hidden anywhere.
//   - Safety: no panics; only sentinel errors.
package instance

import (
	"errors"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
)

// ErrBadGenerateConfig indicates a non-positive count, capacity, or an
// inverted weight/value range in a GenerateConfig.
var ErrBadGenerateConfig = errors.New("instance: generate config values must be positive")

// defaultRNGSeed is the fixed “zero” seed used when callers pass Seed==0.
// The value is arbitrary but stable to keep reproducible defaults.
const defaultRNGSeed int64 = 1

// Default item ranges, matching the experiment design the module was
// built to reproduce: weights uniform in [1,30], values in [1,100].
const (
	defaultMinWeight = 1
	defaultMaxWeight = 30
	defaultMinValue  = 1
	defaultMaxValue  = 100
)

// GenerateConfig describes one batch of random instances.
type GenerateConfig struct {
	// Instances is how many files to produce.
	Instances int

	// Items is the item count n per instance.
	Items int

	// Capacity is the knapsack capacity W per instance.
	Capacity int

	// Seed drives the RNG; 0 selects a fixed default seed.
	Seed int64

	// MinWeight..MaxWeight is the inclusive uniform weight range.
	MinWeight, MaxWeight int

	// MinValue..MaxValue is the inclusive uniform value range.
	MinValue, MaxValue int
}

// DefaultGenerateConfig returns a config with the canonical item ranges.
func DefaultGenerateConfig(instances, items, capacity int) GenerateConfig {
	return GenerateConfig{
		Instances: instances,
		Items:     items,
		Capacity:  capacity,
		MinWeight: defaultMinWeight,
		MaxWeight: defaultMaxWeight,
		MinValue:  defaultMinValue,
		MaxValue:  defaultMaxValue,
	}
}

// validate checks counts and ranges. Complexity: O(1).
func (cfg GenerateConfig) validate() error {
	if cfg.Instances <= 0 || cfg.Items <= 0 || cfg.Capacity <= 0 {
		return ErrBadGenerateConfig
	}
	if cfg.MinWeight <= 0 || cfg.MaxWeight < cfg.MinWeight {
		return ErrBadGenerateConfig
	}
	if cfg.MinValue <= 0 || cfg.MaxValue < cfg.MinValue {
		return ErrBadGenerateConfig
	}

	return nil
}

// rngFromSeed returns a deterministic *rand.Rand.
// Policy: seed==0 ⇒ use defaultRNGSeed; otherwise use the seed verbatim.
func rngFromSeed(seed int64) *rand.Rand {
	s := seed
	if s == 0 {
		s = defaultRNGSeed
	}

	return rand.New(rand.NewSource(s))
}

// Generate produces cfg.Instances random instance files under
//
//	<InstancesDir()>/instances_n<Items>_W<Capacity>/instance_<i>.txt
//
// (1-based i), creating directories as needed, and returns the written
// paths in order. Same config ⇒ same files, byte for byte.
func Generate(cfg GenerateConfig) ([]string, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	dir := filepath.Join(InstancesDir(),
		fmt.Sprintf("instances_n%d_W%d", cfg.Items, cfg.Capacity))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	var (
		rng   = rngFromSeed(cfg.Seed)
		paths = make([]string, 0, cfg.Instances)
		in    = Instance{Capacity: cfg.Capacity}
	)
	in.Weights = make([]int, cfg.Items)
	in.Values = make([]int, cfg.Items)

	var i, j int
	for i = 1; i <= cfg.Instances; i++ {
		for j = 0; j < cfg.Items; j++ {
			in.Weights[j] = cfg.MinWeight + rng.Intn(cfg.MaxWeight-cfg.MinWeight+1)
			in.Values[j] = cfg.MinValue + rng.Intn(cfg.MaxValue-cfg.MinValue+1)
		}

		path := filepath.Join(dir, fmt.Sprintf("instance_%d.txt", i))
		if err := Write(path, in); err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}

	return paths, nil
}

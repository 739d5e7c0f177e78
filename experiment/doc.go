// Package experiment runs the empirical comparison the module exists
// for: every requested algorithm over every instance file, timed,
// cross-checked for value agreement, and serialized to CSV under
// $RESULTS_DIR (default ./output/results).
package experiment

// Package batch runs parameter sweeps: the cartesian product of named
// parameter value lists, each combination repeated for a number of
// iterations, every run bounded by a step limit and executed through the
// runner package.
//
// Runs execute concurrently with a configurable bound. Sweeps are described
// either in code (Config) or loaded from a YAML file:
//
//	parameters:
//	  agents: [10, 50, 100]
//	  density: [0.6, 0.8]
//	iterations: 5
//	max_steps: 200
//	concurrency: 4
//
// End-of-run reporters sample each finished model, producing one result row
// per run for downstream analysis.
package batch

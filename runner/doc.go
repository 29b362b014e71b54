// Package runner drives a single model run: it loops the model's Step
// method until the model stops itself, a step bound is reached or the
// context is cancelled, optionally collecting data after each step.
//
// The runner owns no model state; it only sequences steps, observes the
// running flag and reports timing. Parameter sweeps over many runs live in
// the batch package.
package runner

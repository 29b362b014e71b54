package core

import (
	"context"
	"math/rand"
)

// Model is the accessor surface a running simulation exposes to its
// collaborators. The concrete base implementation lives in the model package;
// user models embed it and add their own state on top.
type Model interface {
	// RunID returns the identifier assigned to this model run.
	RunID() string

	// RNG returns the model's random source. All stochastic behavior in a
	// run should draw from it so a fixed seed reproduces the run exactly.
	RNG() *rand.Rand

	// Schedule returns the scheduler driving agent activation, or nil if
	// none has been attached yet.
	Schedule() Scheduler

	// Running reports whether the model wants to keep stepping. Runners
	// stop the run loop once this turns false.
	Running() bool
}

// Steppable is implemented by concrete models that advance in discrete
// steps. A model step typically activates the scheduler once and collects
// data afterwards.
type Steppable interface {
	Step(ctx context.Context) error
}

package core

import "context"

// Agent is the unit of behavior in a simulation. Concrete agents usually
// embed agent.Base for identity plumbing and implement Step with their
// domain behavior.
//
// UniqueID must be stable for the lifetime of the agent and unique within
// one model run; schedulers and spaces index agents by it.
type Agent interface {
	// UniqueID returns the agent's identifier within its model.
	UniqueID() int

	// Step executes one activation of the agent. Returning an error aborts
	// the current scheduler step.
	Step(ctx context.Context) error
}

// Advancer is an optional second activation phase used by simultaneous
// activation: Step computes the agent's next state without applying it,
// Advance applies it after every agent has stepped.
type Advancer interface {
	Advance(ctx context.Context) error
}

// StagedAgent is implemented by agents participating in staged activation.
// StageStep is invoked once per configured stage and step, in stage order.
type StagedAgent interface {
	Agent

	StageStep(ctx context.Context, stage string) error
}

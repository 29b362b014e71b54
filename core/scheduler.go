package core

import "context"

// Scheduler controls the activation order of agents. Implementations live in
// the time package (insertion order, random, staged, simultaneous); user
// models may provide their own as long as they honor this contract.
//
// All methods must be safe for concurrent use: simultaneous activation steps
// agents from multiple goroutines and agents commonly add or remove peers
// while a step is in flight.
type Scheduler interface {
	// Add registers an agent for activation. Adding an agent whose unique id
	// is already registered is an error.
	Add(a Agent) error

	// Remove deregisters the agent with the given unique id. Removing an
	// unknown id is a no-op.
	Remove(id int)

	// Step activates all registered agents once according to the
	// scheduler's policy and advances the simulation clock.
	Step(ctx context.Context) error

	// Steps returns the number of completed Step calls.
	Steps() int

	// Time returns the simulation clock. For most schedulers this equals
	// Steps; staged activation advances it in stage fractions.
	Time() float64

	// Agents returns a snapshot of the registered agents in insertion order.
	Agents() []Agent

	// Count returns the number of registered agents.
	Count() int
}

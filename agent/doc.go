// Package agent contains the embeddable identity base for simulation agents
// plus a deterministic mock used in tests and examples.
//
// Design principles:
//   - Minimal hidden state: an agent is its unique id, a back-reference to
//     the owning model and whatever domain fields the user adds
//   - Composability: embed Base and implement Step (and optionally Advance
//     or StageStep) to satisfy the core interfaces
//   - Reproducibility: agents draw randomness from the model RNG exposed via
//     Base.RNG rather than package-global sources
//
// A typical agent:
//
//	type Walker struct {
//	    agent.Base
//	    pos space.Coordinate
//	}
//
//	func (w *Walker) Step(ctx context.Context) error { ... }
package agent

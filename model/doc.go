// Package model provides the embeddable base for user-defined simulation
// models.
//
// Core goals:
//   - Own the per-run state every model needs: run id, seeded random source,
//     scheduler reference and the running flag
//   - Keep runs reproducible: all stochastic behavior draws from the model
//     RNG, so a fixed seed replays a run exactly
//   - Stay out of the way: user models embed Base, add their own fields and
//     implement Step (see core.Steppable)
//
// A typical model:
//
//	type MoneyModel struct {
//	    *model.Base
//	}
//
//	func (m *MoneyModel) Step(ctx context.Context) error {
//	    return m.Schedule().Step(ctx)
//	}
//
// Runners (runner, batch) drive any value satisfying core.Model plus
// core.Steppable.
package model

// Package core defines the shared contracts of the mesa simulation framework:
// the Agent behavior interface, the Scheduler activation contract and the
// Model accessor surface that spatial structures, data collection and runners
// build upon.
//
// Keeping these interfaces in a leaf package makes the dependency direction
// explicit: every other package imports core, core imports nothing from the
// framework. This is what allows a model to reference its scheduler and an
// agent to reference its model without import cycles.
//
// Design principles:
//   - Interfaces stay minimal so user models only implement what they use
//   - Optional capabilities (Advancer, StagedAgent) are discovered via type
//     assertion by the scheduler that needs them
//   - context.Context flows through every activation so long runs can be
//     cancelled from the outside
package core

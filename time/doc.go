// Package time provides the schedulers that control agent activation order
// within a model step.
//
// Four activation regimes are included:
//
//   - BaseScheduler: agents activate in insertion order, one step advances
//     the clock by one unit
//   - RandomActivation: activation order is reshuffled every step from the
//     model RNG, so a fixed seed reproduces the run
//   - StagedActivation: each step runs a fixed list of named stages across
//     all agents, advancing the clock in stage fractions
//   - SimultaneousActivation: all agents compute their next state
//     concurrently, then apply it in a separate advance phase
//
// All schedulers implement core.Scheduler and tolerate agents being added or
// removed while a step is in flight: a snapshot of the membership is taken
// at the start of the step and agents removed mid-step are skipped.
package time

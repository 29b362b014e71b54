// Package datacollection gathers time series from a running model.
//
// A DataCollector is configured with three kinds of sinks:
//
//   - model reporters: named closures sampled once per Collect call,
//     producing one series per name keyed by step
//   - agent reporters: named functions applied to every scheduled agent per
//     Collect call, producing one record per agent and step
//   - tables: free-form rows appended by the model itself (lifecycle events,
//     transactions) validated against a fixed column set
//
// Collected data can be exported as CSV (WriteModelCSV, WriteAgentCSV,
// WriteTableCSV) or persisted across runs in a SQLite database via Store,
// which keeps one row per run plus the full variable history for later
// comparison between runs.
package datacollection

// Package visualization provides a text-mode renderer for running models:
// no server, no browser, just periodic snapshots written to an io.Writer.
//
// Three building blocks are included:
//
//   - TextGrid renders a grid space to a rune matrix through a user-supplied
//     cell converter
//   - TextData renders the latest DataCollector model values as a table
//   - TextVisualization composes elements and writes one framed snapshot per
//     step
//
// The renderer is deliberately simple; models needing charts should export
// collected data (CSV, SQLite) and plot elsewhere.
package visualization

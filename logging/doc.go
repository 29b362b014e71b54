// Package logging provides a minimal logging interface and adapters for mesa.
//
// The Logger interface defines the standard logging methods (Debug, Info,
// Warn, Error) that runners, schedulers and stores use for observability.
// This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//   - MesaLogger with simulation-specific helpers (step and run metrics)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "text", false)
//	r := runner.New(m, func(o *runner.Options) { o.Logger = logger })
//
// The design intentionally keeps the interface minimal to avoid vendor
// lock-in while supporting structured logging where available.
package logging

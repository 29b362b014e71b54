package logging

import (
	"context"
	"io"
	"log/slog"
	"os"
	"time"
)

// LogLevel decouples user-facing level configuration from slog.
type LogLevel int

const (
	LogLevelDebug LogLevel = iota
	LogLevelInfo
	LogLevelWarn
	LogLevelError
)

// String returns the level name.
func (l LogLevel) String() string {
	switch l {
	case LogLevelDebug:
		return "DEBUG"
	case LogLevelInfo:
		return "INFO"
	case LogLevelWarn:
		return "WARN"
	case LogLevelError:
		return "ERROR"
	default:
		return "UNKNOWN"
	}
}

func (l LogLevel) slogLevel() slog.Level {
	switch l {
	case LogLevelDebug:
		return slog.LevelDebug
	case LogLevelWarn:
		return slog.LevelWarn
	case LogLevelError:
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// Logger is the minimal logging contract the framework depends on. Args are
// alternating key/value pairs, as in log/slog.
type Logger interface {
	Debug(msg string, args ...any)
	Info(msg string, args ...any)
	Warn(msg string, args ...any)
	Error(msg string, args ...any)
}

// SlogAdapter exposes an existing *slog.Logger through the Logger interface.
type SlogAdapter struct {
	*slog.Logger
}

// NewSlogAdapter wraps a *slog.Logger.
func NewSlogAdapter(logger *slog.Logger) Logger {
	return &SlogAdapter{Logger: logger}
}

// NewDefaultSlogLogger wraps slog.Default().
func NewDefaultSlogLogger() Logger {
	return NewSlogAdapter(slog.Default())
}

// NoOpLogger discards everything. It is the default wherever a Logger is
// optional.
type NoOpLogger struct{}

func (NoOpLogger) Debug(string, ...any) {}
func (NoOpLogger) Info(string, ...any)  {}
func (NoOpLogger) Warn(string, ...any)  {}
func (NoOpLogger) Error(string, ...any) {}

// LoggerConfig configures construction of a MesaLogger.
type LoggerConfig struct {
	Level LogLevel
	// Format selects the slog handler: "json" (default) or "text".
	Format    string
	Output    io.Writer
	AddSource bool
	// Component names the emitting part of the framework (scheduler,
	// runner, collector) and is attached to every entry.
	Component string
	// RunID ties entries to one simulation run.
	RunID string
}

// DefaultLoggerConfig is JSON to stdout at info level.
func DefaultLoggerConfig() *LoggerConfig {
	return &LoggerConfig{Level: LogLevelInfo, Format: "json", Output: os.Stdout}
}

// MesaLogger is the framework's own Logger: slog underneath, plus cloning
// helpers that pin component/run attributes and convenience methods for
// step and run metrics. With* methods return copies, so a logger can be
// shared and specialized per collaborator.
type MesaLogger struct {
	logger    *slog.Logger
	level     LogLevel
	attrs     []slog.Attr
	component string
	runID     string
}

// NewLogger builds a MesaLogger from cfg; a nil cfg means defaults.
func NewLogger(cfg *LoggerConfig) *MesaLogger {
	if cfg == nil {
		cfg = DefaultLoggerConfig()
	}

	out := cfg.Output
	if out == nil {
		out = os.Stdout
	}

	opts := &slog.HandlerOptions{Level: cfg.Level.slogLevel(), AddSource: cfg.AddSource}

	var handler slog.Handler
	if cfg.Format == "text" {
		handler = slog.NewTextHandler(out, opts)
	} else {
		handler = slog.NewJSONHandler(out, opts)
	}

	return &MesaLogger{
		logger:    slog.New(handler),
		level:     cfg.Level,
		component: cfg.Component,
		runID:     cfg.RunID,
	}
}

// NewSlogLogger is shorthand for NewLogger with the three common knobs.
func NewSlogLogger(level LogLevel, format string, addSource bool) *MesaLogger {
	cfg := DefaultLoggerConfig()
	cfg.Level = level
	if format != "" {
		cfg.Format = format
	}
	cfg.AddSource = addSource
	return NewLogger(cfg)
}

func (l *MesaLogger) clone() *MesaLogger {
	nl := *l
	nl.attrs = append([]slog.Attr(nil), l.attrs...)
	return &nl
}

// WithContext returns a copy attaching key/value to every entry.
func (l *MesaLogger) WithContext(key string, value any) *MesaLogger {
	nl := l.clone()
	nl.attrs = append(nl.attrs, slog.Any(key, value))
	return nl
}

// WithComponent returns a copy pinned to the named component.
func (l *MesaLogger) WithComponent(c string) *MesaLogger {
	nl := l.clone()
	nl.component = c
	return nl
}

// WithRun returns a copy pinned to the given run.
func (l *MesaLogger) WithRun(runID string) *MesaLogger {
	nl := l.clone()
	nl.runID = runID
	return nl
}

func (l *MesaLogger) pinned(extra ...slog.Attr) []slog.Attr {
	attrs := make([]slog.Attr, 0, len(l.attrs)+len(extra)+2)
	if l.component != "" {
		attrs = append(attrs, slog.String("component", l.component))
	}
	if l.runID != "" {
		attrs = append(attrs, slog.String("run_id", l.runID))
	}
	attrs = append(attrs, l.attrs...)
	return append(attrs, extra...)
}

func (l *MesaLogger) log(level slog.Level, min LogLevel, msg string, args []any) {
	if l.level > min {
		return
	}
	attrs := l.pinned()
	for i := 0; i+1 < len(args); i += 2 {
		key, ok := args[i].(string)
		if !ok {
			key = "!BADKEY"
		}
		attrs = append(attrs, slog.Any(key, args[i+1]))
	}
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// Debug logs at debug level with key/value args.
func (l *MesaLogger) Debug(msg string, args ...any) {
	l.log(slog.LevelDebug, LogLevelDebug, msg, args)
}

// Info logs at info level with key/value args.
func (l *MesaLogger) Info(msg string, args ...any) {
	l.log(slog.LevelInfo, LogLevelInfo, msg, args)
}

// Warn logs at warn level with key/value args.
func (l *MesaLogger) Warn(msg string, args ...any) {
	l.log(slog.LevelWarn, LogLevelWarn, msg, args)
}

// Error logs at error level with key/value args.
func (l *MesaLogger) Error(msg string, args ...any) {
	l.log(slog.LevelError, LogLevelError, msg, args)
}

// LogStep records one scheduler step. Failed steps log at error level.
func (l *MesaLogger) LogStep(step int, agents int, dur time.Duration, err error) {
	attrs := l.pinned(
		slog.Int("step", step),
		slog.Int("agent_count", agents),
		slog.Duration("duration", dur),
	)
	level, msg := slog.LevelDebug, "Step completed"
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		level, msg = slog.LevelError, "Step failed"
	}
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// LogRun records aggregate metrics for a finished run.
func (l *MesaLogger) LogRun(runID string, steps int, dur time.Duration, err error) {
	attrs := l.pinned(
		slog.String("run_id", runID),
		slog.Int("step_count", steps),
		slog.Duration("duration", dur),
	)
	level, msg := slog.LevelInfo, "Run completed"
	if err != nil {
		attrs = append(attrs, slog.String("error", err.Error()))
		level, msg = slog.LevelError, "Run failed"
	}
	l.logger.LogAttrs(context.Background(), level, msg, attrs...)
}

// StartTimer returns a closure logging the elapsed duration when called.
func (l *MesaLogger) StartTimer(op string) func() {
	start := time.Now()
	return func() {
		l.Info("Operation completed", "operation", op, "duration", time.Since(start))
	}
}

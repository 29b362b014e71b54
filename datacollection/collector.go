package datacollection

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/hupe1980/mesa/core"
)

var (
	// ErrUnknownTable is returned for operations on an unconfigured table.
	ErrUnknownTable = errors.New("datacollection: unknown table")
	// ErrUnknownSeries is returned when querying an unconfigured model reporter.
	ErrUnknownSeries = errors.New("datacollection: unknown series")
	// ErrUnknownColumn is returned when a table row carries an undeclared column.
	ErrUnknownColumn = errors.New("datacollection: unknown column")
)

// ModelReporter samples one model-level value. Reporters are closures over
// the model so the collector stays decoupled from concrete model types.
type ModelReporter func() any

// AgentReporter samples one value from an agent.
type AgentReporter func(a core.Agent) any

// AgentRecord is one agent's sampled values at one step.
type AgentRecord struct {
	Step    int
	AgentID int
	Values  map[string]any
}

// Options holds the reporter and table configuration passed to New().
type Options struct {
	// ModelReporters maps series names to model-level sampling closures.
	ModelReporters map[string]ModelReporter
	// AgentReporters maps variable names to per-agent sampling functions.
	AgentReporters map[string]AgentReporter
	// Tables maps table names to their fixed column sets.
	Tables map[string][]string
}

type table struct {
	columns []string
	rows    []map[string]any
}

// DataCollector snapshots model and agent reporters every Collect call and
// accumulates free-form table rows. All methods are goroutine-safe.
type DataCollector struct {
	mu sync.Mutex

	modelReporters map[string]ModelReporter
	agentReporters map[string]AgentReporter

	steps        []int
	modelSeries  map[string][]any
	agentRecords []AgentRecord
	tables       map[string]*table
}

// New constructs a DataCollector from the given configuration.
func New(optFns ...func(o *Options)) *DataCollector {
	opts := Options{}
	for _, fn := range optFns {
		fn(&opts)
	}

	dc := &DataCollector{
		modelReporters: make(map[string]ModelReporter, len(opts.ModelReporters)),
		agentReporters: make(map[string]AgentReporter, len(opts.AgentReporters)),
		modelSeries:    make(map[string][]any, len(opts.ModelReporters)),
		tables:         make(map[string]*table, len(opts.Tables)),
	}

	for name, r := range opts.ModelReporters {
		dc.modelReporters[name] = r
		dc.modelSeries[name] = make([]any, 0)
	}
	for name, r := range opts.AgentReporters {
		dc.agentReporters[name] = r
	}
	for name, cols := range opts.Tables {
		dc.tables[name] = &table{columns: append([]string(nil), cols...)}
	}

	return dc
}

// Collect samples every model and agent reporter at the model's current
// step. Models typically call it at the end of their Step method.
func (dc *DataCollector) Collect(m core.Model) {
	step := 0
	var agents []core.Agent
	if sched := m.Schedule(); sched != nil {
		step = sched.Steps()
		if len(dc.agentReporters) > 0 {
			agents = sched.Agents()
		}
	}

	dc.mu.Lock()
	defer dc.mu.Unlock()

	dc.steps = append(dc.steps, step)
	for name, r := range dc.modelReporters {
		dc.modelSeries[name] = append(dc.modelSeries[name], r())
	}

	for _, a := range agents {
		values := make(map[string]any, len(dc.agentReporters))
		for name, r := range dc.agentReporters {
			values[name] = r(a)
		}
		dc.agentRecords = append(dc.agentRecords, AgentRecord{
			Step:    step,
			AgentID: a.UniqueID(),
			Values:  values,
		})
	}
}

// Steps returns the model steps at which Collect was called, in call order.
func (dc *DataCollector) Steps() []int {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return append([]int(nil), dc.steps...)
}

// ModelVarNames returns the configured model series names, sorted.
func (dc *DataCollector) ModelVarNames() []string {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return sortedKeys(dc.modelReporters)
}

// AgentVarNames returns the configured agent variable names, sorted.
func (dc *DataCollector) AgentVarNames() []string {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return sortedKeys(dc.agentReporters)
}

// ModelSeries returns the collected values for one model reporter, parallel
// to Steps().
func (dc *DataCollector) ModelSeries(name string) ([]any, error) {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	series, ok := dc.modelSeries[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownSeries, name)
	}
	return append([]any(nil), series...), nil
}

// LatestModelVars returns the most recently collected value of every model
// series, or an empty map before the first Collect.
func (dc *DataCollector) LatestModelVars() map[string]any {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	out := make(map[string]any, len(dc.modelSeries))
	for name, series := range dc.modelSeries {
		if len(series) == 0 {
			continue
		}
		out[name] = series[len(series)-1]
	}
	return out
}

// AgentRecords returns all collected agent records in collection order.
func (dc *DataCollector) AgentRecords() []AgentRecord {
	dc.mu.Lock()
	defer dc.mu.Unlock()
	return append([]AgentRecord(nil), dc.agentRecords...)
}

// AddTableRow appends a row to a configured table. Undeclared columns are
// rejected; declared columns missing from the row are stored as nil.
func (dc *DataCollector) AddTableRow(name string, row map[string]any) error {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	tbl, ok := dc.tables[name]
	if !ok {
		return fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}

	stored := make(map[string]any, len(tbl.columns))
	for col, v := range row {
		if !contains(tbl.columns, col) {
			return fmt.Errorf("%w: %q in table %q", ErrUnknownColumn, col, name)
		}
		stored[col] = v
	}
	for _, col := range tbl.columns {
		if _, ok := stored[col]; !ok {
			stored[col] = nil
		}
	}
	tbl.rows = append(tbl.rows, stored)

	return nil
}

// TableColumns returns the declared column set of a table.
func (dc *DataCollector) TableColumns(name string) ([]string, error) {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	tbl, ok := dc.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}
	return append([]string(nil), tbl.columns...), nil
}

// TableRows returns the accumulated rows of a table in append order.
func (dc *DataCollector) TableRows(name string) ([]map[string]any, error) {
	dc.mu.Lock()
	defer dc.mu.Unlock()

	tbl, ok := dc.tables[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownTable, name)
	}

	out := make([]map[string]any, len(tbl.rows))
	for i, row := range tbl.rows {
		cp := make(map[string]any, len(row))
		for k, v := range row {
			cp[k] = v
		}
		out[i] = cp
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func contains(ss []string, s string) bool {
	for _, v := range ss {
		if v == s {
			return true
		}
	}
	return false
}

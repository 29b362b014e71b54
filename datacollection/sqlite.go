package datacollection

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite"
)

// Store persists collected runs in a SQLite database so variable histories
// can be compared across runs.
type Store struct {
	db   *sql.DB
	path string
}

// RunInfo is one persisted run.
type RunInfo struct {
	RunID     string
	Seed      int64
	Steps     int
	CreatedAt time.Time
}

// StepValue is one persisted sample of a model variable.
type StepValue struct {
	Step  int
	Value any
}

// NewStore opens (creating if necessary) a SQLite-backed run store at path.
func NewStore(path string) (*Store, error) {
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("datacollection: create db directory: %w", err)
		}
	}

	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("datacollection: open sqlite db: %w", err)
	}
	db.SetMaxOpenConns(1)
	if _, err := db.Exec("PRAGMA foreign_keys = ON;"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("datacollection: enable foreign keys: %w", err)
	}
	if _, err := db.Exec(schemaV1); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("datacollection: migrate schema: %w", err)
	}

	return &Store{db: db, path: path}, nil
}

// Close releases the underlying database handle.
func (s *Store) Close() error { return s.db.Close() }

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// SaveRun persists one run: the run row plus the full model and agent
// variable history held by the collector. Values are stored JSON-encoded.
func (s *Store) SaveRun(ctx context.Context, runID string, seed int64, dc *DataCollector) error {
	steps := dc.Steps()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("datacollection: begin tx: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO runs (run_id, seed, steps) VALUES (?, ?, ?)`,
		runID, seed, len(steps),
	); err != nil {
		return fmt.Errorf("datacollection: insert run: %w", err)
	}

	for _, name := range dc.ModelVarNames() {
		series, err := dc.ModelSeries(name)
		if err != nil {
			return err
		}
		for i, v := range series {
			encoded, err := encodeValue(v)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO model_vars (run_id, step, name, value) VALUES (?, ?, ?, ?)`,
				runID, steps[i], name, encoded,
			); err != nil {
				return fmt.Errorf("datacollection: insert model var: %w", err)
			}
		}
	}

	for _, rec := range dc.AgentRecords() {
		for name, v := range rec.Values {
			encoded, err := encodeValue(v)
			if err != nil {
				return err
			}
			if _, err := tx.ExecContext(ctx,
				`INSERT INTO agent_vars (run_id, step, agent_id, name, value) VALUES (?, ?, ?, ?, ?)`,
				runID, rec.Step, rec.AgentID, name, encoded,
			); err != nil {
				return fmt.Errorf("datacollection: insert agent var: %w", err)
			}
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("datacollection: commit: %w", err)
	}
	return nil
}

// Runs lists all persisted runs, newest first.
func (s *Store) Runs(ctx context.Context) ([]RunInfo, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT run_id, seed, steps, created_at FROM runs ORDER BY created_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("datacollection: query runs: %w", err)
	}
	defer rows.Close()

	out := make([]RunInfo, 0)
	for rows.Next() {
		var info RunInfo
		if err := rows.Scan(&info.RunID, &info.Seed, &info.Steps, &info.CreatedAt); err != nil {
			return nil, fmt.Errorf("datacollection: scan run: %w", err)
		}
		out = append(out, info)
	}
	return out, rows.Err()
}

// ModelVarHistory returns the persisted samples of one model variable for a
// run, ordered by step.
func (s *Store) ModelVarHistory(ctx context.Context, runID, name string) ([]StepValue, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT step, value FROM model_vars WHERE run_id = ? AND name = ? ORDER BY step`,
		runID, name)
	if err != nil {
		return nil, fmt.Errorf("datacollection: query model vars: %w", err)
	}
	defer rows.Close()

	out := make([]StepValue, 0)
	for rows.Next() {
		var (
			sv      StepValue
			encoded string
		)
		if err := rows.Scan(&sv.Step, &encoded); err != nil {
			return nil, fmt.Errorf("datacollection: scan model var: %w", err)
		}
		if err := json.Unmarshal([]byte(encoded), &sv.Value); err != nil {
			return nil, fmt.Errorf("datacollection: decode value: %w", err)
		}
		out = append(out, sv)
	}
	return out, rows.Err()
}

func encodeValue(v any) (string, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return "", fmt.Errorf("datacollection: encode value: %w", err)
	}
	return string(b), nil
}

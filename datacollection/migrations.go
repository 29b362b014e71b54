package datacollection

const schemaV1 = `
CREATE TABLE IF NOT EXISTS runs (
    run_id      TEXT PRIMARY KEY,
    seed        INTEGER,
    steps       INTEGER DEFAULT 0,
    created_at  DATETIME DEFAULT CURRENT_TIMESTAMP
);

CREATE TABLE IF NOT EXISTS model_vars (
    id      INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id  TEXT NOT NULL,
    step    INTEGER NOT NULL,
    name    TEXT NOT NULL,
    value   TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_model_vars_run ON model_vars(run_id);
CREATE INDEX IF NOT EXISTS idx_model_vars_name ON model_vars(run_id, name, step);

CREATE TABLE IF NOT EXISTS agent_vars (
    id        INTEGER PRIMARY KEY AUTOINCREMENT,
    run_id    TEXT NOT NULL,
    step      INTEGER NOT NULL,
    agent_id  INTEGER NOT NULL,
    name      TEXT NOT NULL,
    value     TEXT,
    FOREIGN KEY (run_id) REFERENCES runs(run_id) ON DELETE CASCADE
);

CREATE INDEX IF NOT EXISTS idx_agent_vars_run ON agent_vars(run_id);
CREATE INDEX IF NOT EXISTS idx_agent_vars_agent ON agent_vars(run_id, agent_id, step);
`

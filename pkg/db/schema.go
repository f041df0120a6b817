package db

const schema = `
-- Performance and reliability settings
PRAGMA journal_mode = WAL;
PRAGMA synchronous = NORMAL;
PRAGMA foreign_keys = ON;
PRAGMA temp_store = MEMORY;

-- Properties: process-wide key-value state.
-- Holds the backfill resume cursor under 'backfill.cursor'.
CREATE TABLE IF NOT EXISTS properties (
    key TEXT PRIMARY KEY,
    value TEXT NOT NULL,
    updated_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

-- Day documents: registry of rendered daily journal files.
-- One row per calendar day; re-rendering a day replaces its row.
CREATE TABLE IF NOT EXISTS day_documents (
    day TEXT PRIMARY KEY,            -- YYYY-MM-DD
    file_path TEXT NOT NULL,
    entry_count INTEGER NOT NULL,
    truncated BOOLEAN NOT NULL DEFAULT 0,
    rendered_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP
);

CREATE INDEX IF NOT EXISTS idx_day_documents_rendered ON day_documents(rendered_at DESC);

-- Backfill runs: one row per controller invocation.
CREATE TABLE IF NOT EXISTS backfill_runs (
    run_id TEXT PRIMARY KEY,
    range_start TEXT NOT NULL,       -- YYYY-MM-DD
    range_end TEXT NOT NULL,         -- YYYY-MM-DD
    overwrite BOOLEAN NOT NULL DEFAULT 0,
    started_at TIMESTAMP DEFAULT CURRENT_TIMESTAMP,
    finished_at TIMESTAMP,
    processed INTEGER DEFAULT 0,
    skipped INTEGER DEFAULT 0,
    failed INTEGER DEFAULT 0
);

CREATE INDEX IF NOT EXISTS idx_backfill_runs_started ON backfill_runs(started_at DESC);
`

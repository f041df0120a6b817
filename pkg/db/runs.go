package db

import (
	"database/sql"
	"fmt"
	"time"
)

// BackfillRun is one controller invocation's accounting row.
type BackfillRun struct {
	RunID      string
	RangeStart string
	RangeEnd   string
	Overwrite  bool
	StartedAt  time.Time
	FinishedAt sql.NullTime
	Processed  int
	Skipped    int
	Failed     int
}

// InsertBackfillRun records the start of a backfill run.
func (db *DB) InsertBackfillRun(runID, rangeStart, rangeEnd string, overwrite bool) error {
	_, err := db.Exec(`
		INSERT INTO backfill_runs (run_id, range_start, range_end, overwrite)
		VALUES (?, ?, ?, ?)
	`, runID, rangeStart, rangeEnd, overwrite)
	if err != nil {
		return fmt.Errorf("failed to insert backfill run: %w", err)
	}
	return nil
}

// FinishBackfillRun stores the final counters for a run.
func (db *DB) FinishBackfillRun(runID string, processed, skipped, failed int) error {
	_, err := db.Exec(`
		UPDATE backfill_runs
		SET finished_at = CURRENT_TIMESTAMP, processed = ?, skipped = ?, failed = ?
		WHERE run_id = ?
	`, processed, skipped, failed, runID)
	if err != nil {
		return fmt.Errorf("failed to finish backfill run: %w", err)
	}
	return nil
}

// ListBackfillRuns returns the most recent runs, newest first.
func (db *DB) ListBackfillRuns(limit int) ([]BackfillRun, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := db.Query(`
		SELECT run_id, range_start, range_end, overwrite, started_at, finished_at, processed, skipped, failed
		FROM backfill_runs
		ORDER BY started_at DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list backfill runs: %w", err)
	}
	defer rows.Close()

	var runs []BackfillRun
	for rows.Next() {
		var r BackfillRun
		if err := rows.Scan(&r.RunID, &r.RangeStart, &r.RangeEnd, &r.Overwrite, &r.StartedAt, &r.FinishedAt, &r.Processed, &r.Skipped, &r.Failed); err != nil {
			return nil, fmt.Errorf("failed to scan backfill run: %w", err)
		}
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate backfill runs: %w", err)
	}
	return runs, nil
}

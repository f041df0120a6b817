package db

import "testing"

func TestBackfillRunLifecycle(t *testing.T) {
	db := setupTestDB(t)

	if err := db.InsertBackfillRun("run-1", "2025-01-01", "2025-01-31", true); err != nil {
		t.Fatalf("InsertBackfillRun failed: %v", err)
	}

	runs, err := db.ListBackfillRuns(0)
	if err != nil {
		t.Fatalf("ListBackfillRuns failed: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].FinishedAt.Valid {
		t.Error("expected unfinished run to have null finished_at")
	}
	if !runs[0].Overwrite {
		t.Error("expected overwrite=true")
	}

	if err := db.FinishBackfillRun("run-1", 25, 5, 1); err != nil {
		t.Fatalf("FinishBackfillRun failed: %v", err)
	}

	runs, err = db.ListBackfillRuns(0)
	if err != nil {
		t.Fatalf("ListBackfillRuns failed: %v", err)
	}
	r := runs[0]
	if !r.FinishedAt.Valid {
		t.Error("expected finished run to have finished_at set")
	}
	if r.Processed != 25 || r.Skipped != 5 || r.Failed != 1 {
		t.Errorf("expected counters (25, 5, 1), got (%d, %d, %d)", r.Processed, r.Skipped, r.Failed)
	}
}

package backfill

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"
)

type fakeStore struct {
	values  map[string]string
	setErrs int
}

func newFakeStore() *fakeStore {
	return &fakeStore{values: make(map[string]string)}
}

func (s *fakeStore) GetProperty(key string) (string, bool, error) {
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *fakeStore) SetProperty(key, value string) error {
	if s.setErrs > 0 {
		s.setErrs--
		return errors.New("store unavailable")
	}
	s.values[key] = value
	return nil
}

func (s *fakeStore) DeleteProperty(key string) error {
	delete(s.values, key)
	return nil
}

type runRecorder struct {
	days    []string
	failOn  map[string]bool
	sleeps  []time.Duration
	control *Controller
}

func newTestController(t *testing.T, store *fakeStore, existing map[string]bool, overwrite bool) (*Controller, *runRecorder) {
	t.Helper()
	rec := &runRecorder{failOn: make(map[string]bool)}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	c := New(store, func(day string) error {
		rec.days = append(rec.days, day)
		if rec.failOn[day] {
			return errors.New("fetch blew up")
		}
		return nil
	}, existing, overwrite, logger)
	c.sleep = func(d time.Duration) { rec.sleeps = append(rec.sleeps, d) }
	rec.control = c
	return c, rec
}

func TestRunProcessesFullRange(t *testing.T) {
	store := newFakeStore()
	c, rec := newTestController(t, store, nil, false)

	summary, err := c.Run("2025-01-01", "2025-01-03")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	want := []string{"2025-01-01", "2025-01-02", "2025-01-03"}
	if len(rec.days) != len(want) {
		t.Fatalf("expected %d pipeline invocations, got %v", len(want), rec.days)
	}
	for i, day := range want {
		if rec.days[i] != day {
			t.Errorf("invocation %d: expected %s, got %s", i, day, rec.days[i])
		}
	}
	if summary.Processed != 3 || summary.Skipped != 0 || summary.Failed != 0 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.Cursor != "2025-01-03" {
		t.Errorf("expected final cursor 2025-01-03, got %q", summary.Cursor)
	}
}

func TestRunSkipsExistingDays(t *testing.T) {
	store := newFakeStore()
	existing := map[string]bool{"2025-01-02": true}
	c, rec := newTestController(t, store, existing, false)

	summary, err := c.Run("2025-01-01", "2025-01-03")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(rec.days) != 2 || rec.days[0] != "2025-01-01" || rec.days[1] != "2025-01-03" {
		t.Errorf("expected pipeline for 01 and 03 only, got %v", rec.days)
	}
	if summary.Skipped != 1 || summary.Processed != 2 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	// Skipped days pace lighter than processed ones.
	if rec.sleeps[1] != skipPacing {
		t.Errorf("expected skip pacing for 2025-01-02, got %v", rec.sleeps[1])
	}
	if rec.sleeps[0] != dayPacing || rec.sleeps[2] != dayPacing {
		t.Errorf("expected day pacing for processed days, got %v", rec.sleeps)
	}
}

func TestRunOverwriteIgnoresExisting(t *testing.T) {
	store := newFakeStore()
	existing := map[string]bool{"2025-01-01": true, "2025-01-02": true}
	c, rec := newTestController(t, store, existing, true)

	if _, err := c.Run("2025-01-01", "2025-01-02"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(rec.days) != 2 {
		t.Errorf("expected both days re-processed with overwrite, got %v", rec.days)
	}
}

func TestRunResumesAtCursorDay(t *testing.T) {
	store := newFakeStore()
	store.values[CursorKey] = "2025-01-05"
	c, rec := newTestController(t, store, nil, false)

	if _, err := c.Run("2025-01-01", "2025-01-07"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	// Resume re-attempts the cursor day itself, not the day after.
	if len(rec.days) == 0 || rec.days[0] != "2025-01-05" {
		t.Fatalf("expected resume at 2025-01-05, got %v", rec.days)
	}
	if len(rec.days) != 3 {
		t.Errorf("expected days 05..07, got %v", rec.days)
	}
}

func TestRunCursorBeforeRangeIsIgnored(t *testing.T) {
	store := newFakeStore()
	store.values[CursorKey] = "2024-12-20"
	c, rec := newTestController(t, store, nil, false)

	if _, err := c.Run("2025-01-01", "2025-01-02"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(rec.days) == 0 || rec.days[0] != "2025-01-01" {
		t.Errorf("expected start at range start, got %v", rec.days)
	}
}

func TestRunContinuesPastFailedDay(t *testing.T) {
	store := newFakeStore()
	c, rec := newTestController(t, store, nil, false)
	rec.failOn["2025-01-02"] = true

	summary, err := c.Run("2025-01-01", "2025-01-04")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}

	if len(rec.days) != 4 {
		t.Errorf("expected all 4 days attempted despite failure, got %v", rec.days)
	}
	if summary.Failed != 1 || summary.Processed != 3 {
		t.Errorf("unexpected summary: %+v", summary)
	}
	if summary.Cursor != "2025-01-04" {
		t.Errorf("expected final cursor at range end, got %q", summary.Cursor)
	}
	if store.values[CursorKey] != "2025-01-04" {
		t.Errorf("expected persisted cursor 2025-01-04, got %q", store.values[CursorKey])
	}
}

func TestRunCursorWrittenAfterFailedDay(t *testing.T) {
	store := newFakeStore()
	c, rec := newTestController(t, store, nil, false)
	rec.failOn["2025-01-01"] = true
	rec.failOn["2025-01-02"] = true

	if _, err := c.Run("2025-01-01", "2025-01-02"); err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if store.values[CursorKey] != "2025-01-02" {
		t.Errorf("expected cursor advanced through failures, got %q", store.values[CursorKey])
	}
}

func TestRunStoreWriteFailureIsNonFatal(t *testing.T) {
	store := newFakeStore()
	store.setErrs = 1
	c, rec := newTestController(t, store, nil, false)

	summary, err := c.Run("2025-01-01", "2025-01-02")
	if err != nil {
		t.Fatalf("Run failed: %v", err)
	}
	if len(rec.days) != 2 {
		t.Errorf("expected both days attempted, got %v", rec.days)
	}
	if summary.Cursor != "2025-01-02" {
		t.Errorf("expected cursor from the successful write, got %q", summary.Cursor)
	}
}

func TestRunInvalidInput(t *testing.T) {
	store := newFakeStore()
	c, _ := newTestController(t, store, nil, false)

	if _, err := c.Run("not-a-date", "2025-01-02"); err == nil {
		t.Error("expected error for invalid start date")
	}
	if _, err := c.Run("2025-01-02", "2025-01-01"); err == nil {
		t.Error("expected error for inverted range")
	}
}

// Package backfill re-runs the single-day pipeline across a historical date
// range, resuming from a persisted cursor and skipping days that already have
// a rendered document.
package backfill

import (
	"fmt"
	"log/slog"
	"time"

	"lifelog-journal/pkg/window"
)

// CursorKey is the properties-table key holding the last attempted day.
const CursorKey = "backfill.cursor"

// Pacing between days keeps a long historical range from bursting the
// upstream API. Skipped days pace lighter since no fetch happened.
const (
	dayPacing  = 2 * time.Second
	skipPacing = 500 * time.Millisecond
)

// PropertyStore is the key-value store holding the resume cursor.
type PropertyStore interface {
	GetProperty(key string) (string, bool, error)
	SetProperty(key, value string) error
	DeleteProperty(key string) error
}

// Controller walks a closed date range one day at a time. Each day is either
// skipped (document exists, overwrite off), processed, or failed; failures
// are logged and never abort the range.
type Controller struct {
	store     PropertyStore
	pipeline  func(date string) error
	existing  map[string]bool
	overwrite bool
	logger    *slog.Logger

	sleep func(time.Duration)
}

// Summary is the accounting for one controller run.
type Summary struct {
	Processed int
	Skipped   int
	Failed    int
	Cursor    string
}

// New creates a controller. existing is the set of days that already have a
// rendered document, captured once at start; it is not updated mid-run.
func New(store PropertyStore, pipeline func(date string) error, existing map[string]bool, overwrite bool, logger *slog.Logger) *Controller {
	return &Controller{
		store:     store,
		pipeline:  pipeline,
		existing:  existing,
		overwrite: overwrite,
		logger:    logger,
		sleep:     time.Sleep,
	}
}

// Run processes every day in [from, to]. The effective start is the later of
// the persisted cursor and the range start, so a restarted run re-attempts
// the last in-flight day rather than skipping it or starting over.
func (c *Controller) Run(from, to string) (*Summary, error) {
	start, err := time.Parse(window.DateLayout, from)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", window.ErrInvalidDate, from)
	}
	end, err := time.Parse(window.DateLayout, to)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", window.ErrInvalidDate, to)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("range end %s is before start %s", to, from)
	}

	if cursor, ok, err := c.store.GetProperty(CursorKey); err != nil {
		return nil, fmt.Errorf("failed to read resume cursor: %w", err)
	} else if ok {
		if resumed, perr := time.Parse(window.DateLayout, cursor); perr == nil && resumed.After(start) {
			c.logger.Info("resuming backfill from cursor", "cursor", cursor)
			start = resumed
		}
	}

	summary := &Summary{}
	for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
		day := d.Format(window.DateLayout)

		if c.existing[day] && !c.overwrite {
			c.logger.Info("skipping existing day", "day", day)
			summary.Skipped++
			c.writeCursor(day, summary)
			c.sleep(skipPacing)
			continue
		}

		if err := c.pipeline(day); err != nil {
			c.logger.Error("day failed, continuing", "day", day, "error", err)
			summary.Failed++
		} else {
			summary.Processed++
		}

		c.writeCursor(day, summary)
		c.sleep(dayPacing)
	}

	return summary, nil
}

// writeCursor persists progress after every attempt. A store failure is
// logged but does not stop the run; losing the cursor only costs a re-attempt
// on resume, which is safe because rendering a day is idempotent.
func (c *Controller) writeCursor(day string, summary *Summary) {
	if err := c.store.SetProperty(CursorKey, day); err != nil {
		c.logger.Error("failed to persist backfill cursor", "day", day, "error", err)
		return
	}
	summary.Cursor = day
}

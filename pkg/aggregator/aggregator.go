// Package aggregator drives the per-window fetch across a whole day and
// produces the final, sorted entry list handed to the renderer.
package aggregator

import (
	"fmt"
	"log/slog"
	"sort"
	"time"

	"lifelog-journal/models"
	"lifelog-journal/pkg/window"
)

// WindowFetcher fetches all entries for one window.
type WindowFetcher interface {
	FetchWindow(w models.Window) ([]models.Entry, error)
}

// Aggregator is the single-day fetch driver. Windows are processed strictly
// in chronological order, one at a time; the upstream is the bottleneck and
// parallel windows would only trip its rate limits.
type Aggregator struct {
	fetcher WindowFetcher
	loc     *time.Location
	logger  *slog.Logger
}

func New(fetcher WindowFetcher, loc *time.Location, logger *slog.Logger) *Aggregator {
	return &Aggregator{fetcher: fetcher, loc: loc, logger: logger}
}

// BuildDay fetches all 24 windows of date and returns the entries sorted
// ascending by start timestamp. Entries without a start timestamp sort
// before all timestamped ones (empty string, lexicographic); ties keep
// input order. Any window failure fails the whole day.
func (a *Aggregator) BuildDay(date string) ([]models.Entry, error) {
	windows, err := window.PlanDay(date, a.loc)
	if err != nil {
		return nil, err
	}

	var entries []models.Entry
	for _, w := range windows {
		got, err := a.fetcher.FetchWindow(w)
		if err != nil {
			return nil, fmt.Errorf("window %s: %w", w.Label, err)
		}
		if len(got) > 0 {
			a.logger.Info("window fetched", "window", w.Label, "entries", len(got))
		}
		entries = append(entries, got...)
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].SortKey() < entries[j].SortKey()
	})

	a.logger.Info("day aggregated", "date", date, "entries", len(entries))
	return entries, nil
}

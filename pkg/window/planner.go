// Package window splits a calendar day into fixed hour-aligned fetch
// windows so each upstream query stays within the API's page limits.
package window

import (
	"errors"
	"fmt"
	"time"

	"lifelog-journal/models"
)

// WindowsPerDay is fixed: one window per local wall-clock hour.
const WindowsPerDay = 24

// DateLayout is the only accepted calendar-date format.
const DateLayout = "2006-01-02"

// ErrInvalidDate is returned when a date string does not parse as YYYY-MM-DD.
var ErrInvalidDate = errors.New("invalid date, want YYYY-MM-DD")

// PlanDay returns the 24 contiguous wall-clock hour windows of date in loc,
// each expressed as absolute instants. On a DST transition day the windows
// together span 23 or 25 real hours; an hour skipped by spring-forward
// yields a zero-width window so the count stays at 24.
func PlanDay(date string, loc *time.Location) ([]models.Window, error) {
	day, err := time.ParseInLocation(DateLayout, date, loc)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDate, date)
	}

	year, month, dom := day.Date()
	windows := make([]models.Window, 0, WindowsPerDay)
	for h := 0; h < WindowsPerDay; h++ {
		// time.Date normalizes wall-clock times the zone skips, so
		// boundaries stay monotonic across DST transitions.
		start := time.Date(year, month, dom, h, 0, 0, 0, loc)
		end := time.Date(year, month, dom, h+1, 0, 0, 0, loc)
		windows = append(windows, models.Window{
			Start: start,
			End:   end,
			Label: fmt.Sprintf("%s %02d:00-%02d:00", date, h, h+1),
		})
	}
	return windows, nil
}

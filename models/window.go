package models

import "time"

// Window is one wall-clock hour slice of a calendar day, expressed as
// absolute instants in the target time zone. Immutable once planned.
type Window struct {
	Start time.Time
	End   time.Time
	Label string
}

// Empty reports whether the window has zero width. This happens for the
// hour a DST spring-forward transition skips.
func (w Window) Empty() bool {
	return !w.End.After(w.Start)
}

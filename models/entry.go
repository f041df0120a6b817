package models

import "strings"

// TruncationIDPrefix marks synthetic entries appended when a window hits the
// page cap. These are real rows in the rendered document, not errors.
const TruncationIDPrefix = "truncated:"

// Entry is one transcribed lifelog segment returned by the source API.
// The upstream schema drifts between releases; only ID is reliably present.
// Timestamps stay raw strings so sort order matches the upstream exactly.
type Entry struct {
	ID        string `json:"id" yaml:"id"`
	Title     string `json:"title,omitempty" yaml:"title,omitempty"`
	Heading   string `json:"heading,omitempty" yaml:"heading,omitempty"`
	StartTime string `json:"startTime,omitempty" yaml:"start_time,omitempty"`
	EndTime   string `json:"endTime,omitempty" yaml:"end_time,omitempty"`
	Markdown  string `json:"markdown,omitempty" yaml:"markdown,omitempty"`
}

// DisplayTitle picks the best available title for rendering.
func (e Entry) DisplayTitle() string {
	if t := strings.TrimSpace(e.Title); t != "" {
		return t
	}
	if h := strings.TrimSpace(e.Heading); h != "" {
		return h
	}
	return "Untitled"
}

// SortKey is the raw start timestamp; entries without one sort as the empty
// string, ahead of every timestamped entry. Kept lexicographic for
// compatibility with the upstream's own ordering.
func (e Entry) SortKey() string {
	return e.StartTime
}

// IsTruncationMarker reports whether this is a synthetic page-cap marker.
func (e Entry) IsTruncationMarker() bool {
	return strings.HasPrefix(e.ID, TruncationIDPrefix)
}

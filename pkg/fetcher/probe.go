package fetcher

import (
	"bytes"
	"encoding/json"

	"lifelog-journal/models"
)

// The upstream has moved its item list and cursor between releases. Rather
// than pinning one envelope shape, each page is probed against the known
// locations in order; the first match wins and an unknown shape is an empty
// page, not an error.

var entryPaths = [][]string{
	nil, // top-level array
	{"lifelogs"},
	{"items"},
	{"results"},
	{"data"}, // only when .data is itself an array
	{"data", "lifelogs"},
	{"data", "items"},
	{"data", "results"},
}

var cursorPaths = [][]string{
	{"nextCursor"},
	{"meta", "nextCursor"},
	{"meta", "lifelogs", "nextCursor"},
	{"data", "nextCursor"},
}

// dig walks a path of object keys through raw JSON.
func dig(body []byte, path ...string) (json.RawMessage, bool) {
	cur := json.RawMessage(body)
	for _, key := range path {
		var obj map[string]json.RawMessage
		if err := json.Unmarshal(cur, &obj); err != nil {
			return nil, false
		}
		next, ok := obj[key]
		if !ok {
			return nil, false
		}
		cur = next
	}
	if len(bytes.TrimSpace(cur)) == 0 || bytes.Equal(bytes.TrimSpace(cur), []byte("null")) {
		return nil, false
	}
	return cur, true
}

func entriesAt(body []byte, path ...string) ([]models.Entry, bool) {
	raw, ok := dig(body, path...)
	if !ok {
		return nil, false
	}
	var entries []models.Entry
	if err := json.Unmarshal(raw, &entries); err != nil {
		return nil, false
	}
	return entries, true
}

// extractEntries returns the page's item list, or nil when no known
// location holds a sequence.
func extractEntries(body []byte) []models.Entry {
	for _, path := range entryPaths {
		if entries, ok := entriesAt(body, path...); ok {
			return entries
		}
	}
	return nil
}

// extractNextCursor returns the continuation token for the next page, or ""
// when pagination is exhausted.
func extractNextCursor(body []byte) string {
	for _, path := range cursorPaths {
		raw, ok := dig(body, path...)
		if !ok {
			continue
		}
		var cursor string
		if err := json.Unmarshal(raw, &cursor); err == nil && cursor != "" {
			return cursor
		}
	}
	return ""
}

// Package renderer turns a sorted day of entries into a markdown journal
// document on disk, and keeps the rendered-day registry up to date.
package renderer

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/araddon/dateparse"

	"lifelog-journal/models"
	"lifelog-journal/pkg/db"
)

type Renderer struct {
	outputDir string
	suffix    string
	store     *db.DB
	logger    *slog.Logger
}

// New creates a renderer writing into outputDir. The store is optional; when
// present, rendered days are recorded in the day_documents registry.
func New(outputDir, suffix string, store *db.DB, logger *slog.Logger) (*Renderer, error) {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output directory %q: %w", outputDir, err)
	}
	return &Renderer{
		outputDir: outputDir,
		suffix:    suffix,
		store:     store,
		logger:    logger,
	}, nil
}

// DocumentName is the naming convention for a rendered day.
func DocumentName(day, suffix string) string {
	return day + " " + suffix + ".md"
}

// RenderDay writes the document for one day, replacing any previous file with
// the same name. Returns the path of the written file.
func (r *Renderer) RenderDay(day, timezone string, entries []models.Entry) (string, error) {
	path := filepath.Join(r.outputDir, DocumentName(day, r.suffix))

	content := r.buildDocument(day, timezone, entries)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return "", fmt.Errorf("failed to write document %q: %w", path, err)
	}

	count := 0
	truncated := false
	for _, e := range entries {
		if e.IsTruncationMarker() {
			truncated = true
			continue
		}
		count++
	}

	if r.store != nil {
		// Registry is inspection-only state; a failed write must not
		// invalidate the document already on disk.
		if err := r.store.UpsertDayDocument(day, path, count, truncated); err != nil {
			r.logger.Warn("failed to record rendered day", "day", day, "error", err)
		}
	}

	r.logger.Info("rendered day", "day", day, "path", path, "entries", count, "truncated", truncated)
	return path, nil
}

func (r *Renderer) buildDocument(day, timezone string, entries []models.Entry) string {
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", day)
	fmt.Fprintf(&b, "Timezone: %s\n\n", timezone)

	if len(entries) == 0 {
		b.WriteString("_No entries recorded for this day._\n")
		return b.String()
	}

	loc, err := time.LoadLocation(timezone)
	if err != nil {
		loc = time.UTC
	}

	for _, e := range entries {
		if e.IsTruncationMarker() {
			b.WriteString("> **Note:** some entries in this day were omitted because the source returned more pages than the per-window limit.\n\n")
			continue
		}

		fmt.Fprintf(&b, "## %s %s\n\n", displayTime(e.StartTime, loc), e.DisplayTitle())
		fmt.Fprintf(&b, "*Category: %s*\n\n", Categorize(e))
		if s := Summarize(e.Markdown); s != "" {
			fmt.Fprintf(&b, "> %s\n\n", s)
		}

		notes := ExtractSections(e.Markdown)
		writeSection(&b, "Decisions", notes.Decisions)
		writeSection(&b, "Action Items", notes.ActionItems)
		writeSection(&b, "Risks", notes.Risks)

		if body := strings.TrimSpace(e.Markdown); body != "" {
			b.WriteString(body)
			b.WriteString("\n\n")
		}
	}

	return b.String()
}

func writeSection(b *strings.Builder, title string, lines []string) {
	if len(lines) == 0 {
		return
	}
	fmt.Fprintf(b, "**%s**\n\n", title)
	for _, line := range lines {
		fmt.Fprintf(b, "- %s\n", line)
	}
	b.WriteString("\n")
}

// displayTime formats a raw upstream timestamp as local wall-clock time.
// Unparseable timestamps are shown as-is rather than dropped.
func displayTime(raw string, loc *time.Location) string {
	if raw == "" {
		return "--:--"
	}
	t, err := dateparse.ParseIn(raw, loc)
	if err != nil {
		return raw
	}
	return t.In(loc).Format("15:04")
}

package db

import (
	"database/sql"
	"errors"
	"fmt"
	"time"
)

// DayDocument is one row of the rendered-day registry.
type DayDocument struct {
	Day        string    `yaml:"day"`
	FilePath   string    `yaml:"file_path"`
	EntryCount int       `yaml:"entry_count"`
	Truncated  bool      `yaml:"truncated"`
	RenderedAt time.Time `yaml:"rendered_at"`
}

// UpsertDayDocument records a rendered day, replacing any previous row for
// the same day. Mirrors the renderer's overwrite-not-duplicate guarantee.
func (db *DB) UpsertDayDocument(day, filePath string, entryCount int, truncated bool) error {
	_, err := db.Exec(`
		INSERT INTO day_documents (day, file_path, entry_count, truncated, rendered_at)
		VALUES (?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(day) DO UPDATE SET
			file_path = excluded.file_path,
			entry_count = excluded.entry_count,
			truncated = excluded.truncated,
			rendered_at = CURRENT_TIMESTAMP
	`, day, filePath, entryCount, truncated)
	if err != nil {
		return fmt.Errorf("failed to upsert day document %q: %w", day, err)
	}
	return nil
}

// GetDayDocument returns the registry row for one day.
func (db *DB) GetDayDocument(day string) (*DayDocument, error) {
	doc := &DayDocument{}
	err := db.QueryRow(`
		SELECT day, file_path, entry_count, truncated, rendered_at
		FROM day_documents WHERE day = ?
	`, day).Scan(&doc.Day, &doc.FilePath, &doc.EntryCount, &doc.Truncated, &doc.RenderedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("no document recorded for day %q", day)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get day document %q: %w", day, err)
	}
	return doc, nil
}

// ListDayDocuments returns the most recently rendered days, newest first.
func (db *DB) ListDayDocuments(limit int) ([]DayDocument, error) {
	if limit <= 0 {
		limit = 30
	}
	rows, err := db.Query(`
		SELECT day, file_path, entry_count, truncated, rendered_at
		FROM day_documents
		ORDER BY day DESC
		LIMIT ?
	`, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list day documents: %w", err)
	}
	defer rows.Close()

	var docs []DayDocument
	for rows.Next() {
		var doc DayDocument
		if err := rows.Scan(&doc.Day, &doc.FilePath, &doc.EntryCount, &doc.Truncated, &doc.RenderedAt); err != nil {
			return nil, fmt.Errorf("failed to scan day document: %w", err)
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate day documents: %w", err)
	}
	return docs, nil
}

package db

import (
	"database/sql"
	"errors"
	"fmt"
)

// GetProperty returns the stored value for key and whether it exists.
func (db *DB) GetProperty(key string) (string, bool, error) {
	var value string
	err := db.QueryRow("SELECT value FROM properties WHERE key = ?", key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to get property %q: %w", key, err)
	}
	return value, true, nil
}

// SetProperty stores or replaces a property value.
func (db *DB) SetProperty(key, value string) error {
	_, err := db.Exec(`
		INSERT INTO properties (key, value, updated_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value, updated_at = CURRENT_TIMESTAMP
	`, key, value)
	if err != nil {
		return fmt.Errorf("failed to set property %q: %w", key, err)
	}
	return nil
}

// DeleteProperty removes a property. Deleting a missing key is not an error.
func (db *DB) DeleteProperty(key string) error {
	_, err := db.Exec("DELETE FROM properties WHERE key = ?", key)
	if err != nil {
		return fmt.Errorf("failed to delete property %q: %w", key, err)
	}
	return nil
}

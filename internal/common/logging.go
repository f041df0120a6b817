package common

import (
	"log/slog"
	"os"
)

// NewLogger builds the structured logger shared by all commands. Logs go to
// stderr so document paths printed on stdout stay pipeable.
func NewLogger(quiet bool) *slog.Logger {
	level := slog.LevelInfo
	if quiet {
		level = slog.LevelError
	}
	return slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level}))
}

package main

import (
	"log/slog"
	"os"
)

// NewLogger returns a structured slog.Logger with the given level. Records
// carry their source location at debug level.
func NewLogger(level slog.Leveler) *slog.Logger {
	opts := &slog.HandlerOptions{Level: level, AddSource: level.Level() <= slog.LevelDebug}
	h := slog.NewJSONHandler(os.Stderr, opts)
	return slog.New(h).With("app", "pdf-cropper")
}

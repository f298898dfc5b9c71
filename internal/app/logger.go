package app

import (
	"io"
	"log/slog"

	"github.com/katalvlaran/cliquegate/internal/config"
)

// newLogger builds an isolated logger for the log section of a profile.
// The global logger is left alone. An unknown level falls back to info;
// Validate rejects it long before this point.
func newLogger(l config.Log, w io.Writer) *slog.Logger {
	level, _ := l.SlogLevel()
	opts := &slog.HandlerOptions{Level: level}

	if l.JSON() {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

// SPDX-License-Identifier: MIT
// Package: cliquegate/builder
//
// config.go — internal configuration and deterministic defaults.
//
// Design:
//   • builderConfig is the single source of truth for all builder knobs.
//   • Defaults are deterministic and documented; no globals.
//   • newBuilderConfig applies options in-order (later overrides earlier).
//
// Defaults:
//   • logger = discard (the generator stays silent unless asked)

package builder

import (
	"io"
	"log/slog"
)

// builderConfig aggregates all knobs used by constructors.
// It is passed by VALUE to constructors (immutable to callers).
type builderConfig struct {
	// logger receives stage-level diagnostics (allocation, merge, wiring).
	logger *slog.Logger
}

// newBuilderConfig constructs a config with deterministic defaults and
// applies all options in order.
// Complexity: O(len(opts)) time, O(1) space.
func newBuilderConfig(opts ...BuilderOption) builderConfig {
	cfg := builderConfig{
		logger: discardLogger(),
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// discardLogger returns a logger whose output is dropped.
func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// SPDX-License-Identifier: MIT
// Package: cliquegate/builder
//
// options.go — functional options for the builder package.
//
// Contract (strict):
//   • Options are functional (type BuilderOption func(*builderConfig)).
//   • Option constructors VALIDATE and PANIC on meaningless inputs.
//     Constructors and Generate themselves MUST NOT panic.

package builder

import "log/slog"

// BuilderOption customizes the behavior of a constructor by mutating a
// builderConfig instance before graph construction begins.
type BuilderOption func(*builderConfig)

// WithLogger routes stage diagnostics to l. Records are emitted at Debug
// level, except the final summary at Info.
// Panics on nil to surface programmer error early.
func WithLogger(l *slog.Logger) BuilderOption {
	if l == nil {
		panic("builder: WithLogger(nil)")
	}
	return func(c *builderConfig) {
		c.logger = l
	}
}

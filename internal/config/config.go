package config

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/katalvlaran/cliquegate/builder"
	"github.com/katalvlaran/cliquegate/layout"
)

// ErrInvalidConfig is returned by Validate for any rejected setting.
// Topology rejections additionally wrap the builder sentinel that caused
// them, so errors.Is(err, builder.ErrInvalidArgument) keeps working.
var ErrInvalidConfig = errors.New("config: invalid configuration")

// Config is a complete, resolved generation profile.
type Config struct {
	Topology Topology
	Layout   Layout
	Log      Log
}

// Topology holds the three generator parameters.
type Topology struct {
	Components    int
	ComponentSize int
	GateSize      int
}

// Layout holds the spring embedder parameters.
type Layout struct {
	Updates   int
	Repulsion float64
	Rate      float64
	Theta     float64
}

// Log selects the diagnostic logger.
type Log struct {
	Level  string // debug, info, warn, error
	Format string // FormatText or FormatJSON
}

// Log output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
)

// logLevels maps the accepted level names onto slog levels.
var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// SlogLevel resolves Level, ignoring case.
func (l Log) SlogLevel() (slog.Level, error) {
	level, ok := logLevels[strings.ToLower(l.Level)]
	if !ok {
		return slog.LevelInfo, fmt.Errorf("%w: log.level must be 'debug', 'info', 'warn', or 'error', got %q",
			ErrInvalidConfig, l.Level)
	}

	return level, nil
}

// JSON reports whether records should be JSON encoded.
func (l Log) JSON() bool { return strings.EqualFold(l.Format, FormatJSON) }

// Default returns the profile used when neither a file nor flags set a value.
// Topology is zeroed; callers are expected to supply it.
func Default() *Config {
	return &Config{
		Topology: Topology{ComponentSize: builder.MinComponentSize},
		Layout: Layout{
			Updates:   layout.DefaultUpdates,
			Repulsion: layout.DefaultRepulsion,
			Rate:      layout.DefaultRate,
			Theta:     layout.DefaultTheta,
		},
		Log: Log{Level: "info", Format: FormatText},
	}
}

// Validate checks every section. It stops at the first problem.
func (c *Config) Validate() error {
	t := c.Topology
	if err := builder.Validate(t.Components, t.ComponentSize, t.GateSize); err != nil {
		return fmt.Errorf("%w: topology: %w", ErrInvalidConfig, err)
	}

	l := c.Layout
	switch {
	case l.Updates < 1:
		return fmt.Errorf("%w: layout.updates must be ≥ 1, got %d", ErrInvalidConfig, l.Updates)
	case l.Repulsion <= 0:
		return fmt.Errorf("%w: layout.repulsion must be > 0, got %g", ErrInvalidConfig, l.Repulsion)
	case l.Rate <= 0:
		return fmt.Errorf("%w: layout.rate must be > 0, got %g", ErrInvalidConfig, l.Rate)
	case l.Theta < 0:
		return fmt.Errorf("%w: layout.theta must be ≥ 0, got %g", ErrInvalidConfig, l.Theta)
	}

	if _, err := c.Log.SlogLevel(); err != nil {
		return err
	}
	switch strings.ToLower(c.Log.Format) {
	case FormatText, FormatJSON:
	default:
		return fmt.Errorf("%w: log.format must be 'text' or 'json', got %q", ErrInvalidConfig, c.Log.Format)
	}

	return nil
}

// LayoutOptions translates the layout section into layout.Spring options.
// Call it only on a validated Config; the option constructors panic on
// values Validate rejects.
func (c *Config) LayoutOptions() []layout.Option {
	return []layout.Option{
		layout.WithUpdates(c.Layout.Updates),
		layout.WithRepulsion(c.Layout.Repulsion),
		layout.WithRate(c.Layout.Rate),
		layout.WithTheta(c.Layout.Theta),
	}
}

package app

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/katalvlaran/cliquegate/adjlist"
	"github.com/katalvlaran/cliquegate/bfs"
	"github.com/katalvlaran/cliquegate/builder"
	"github.com/katalvlaran/cliquegate/internal/config"
	"github.com/katalvlaran/cliquegate/internal/ctxlog"
	"github.com/katalvlaran/cliquegate/layout"
)

// App holds the output streams and the resolved profile for one run.
type App struct {
	outW   io.Writer
	logger *slog.Logger
	config *config.Config
}

// NewApp wires an App. The document goes to outW; diagnostics go to logW.
// cfg must already be validated.
func NewApp(outW, logW io.Writer, cfg *config.Config) *App {
	logger := newLogger(cfg.Log, logW)
	logger.Debug("Logger configured successfully.")

	return &App{
		outW:   outW,
		logger: logger,
		config: cfg,
	}
}

// Run generates the graph, computes its layout and writes the adjacency
// list. The document is rendered in memory first, so outW receives either
// the whole document or nothing.
func (a *App) Run(ctx context.Context) error {
	ctx = ctxlog.WithLogger(ctx, a.logger)
	a.logger.Debug("App.Run method started.")

	t := a.config.Topology
	top, err := builder.Generate(t.Components, t.ComponentSize, t.GateSize, builder.WithLogger(a.logger))
	if err != nil {
		return fmt.Errorf("failed to generate graph: %w", err)
	}

	if a.logger.Enabled(ctx, slog.LevelDebug) {
		parts, err := bfs.Components(ctx, top.Graph())
		if err != nil {
			return fmt.Errorf("failed to audit connectivity: %w", err)
		}
		st := top.Graph().Snapshot()
		a.logger.Debug("Connectivity audited.", "components", len(parts),
			"min_degree", st.MinDegree, "max_degree", st.MaxDegree)
	}

	pos, err := layout.Spring(ctx, top.Graph(), a.config.LayoutOptions()...)
	if err != nil {
		return fmt.Errorf("failed to compute layout: %w", err)
	}
	ctxlog.FromContext(ctx).Debug("Layout computed.", "nodes", len(pos), "updates", a.config.Layout.Updates)

	var buf bytes.Buffer
	if err = adjlist.Write(&buf, top.Graph(), pos); err != nil {
		return fmt.Errorf("failed to render adjacency list: %w", err)
	}
	if _, err = a.outW.Write(buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write output: %w", err)
	}

	a.logger.Debug("App.Run method finished.", "bytes", buf.Len())
	return nil
}

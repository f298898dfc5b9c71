package app

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquegate/adjlist"
	"github.com/katalvlaran/cliquegate/builder"
	"github.com/katalvlaran/cliquegate/internal/config"
)

func testConfig(n, s, g int) *config.Config {
	c := config.Default()
	c.Topology = config.Topology{Components: n, ComponentSize: s, GateSize: g}
	c.Layout.Updates = 10
	return c
}

func TestRun_WritesDocument(t *testing.T) {
	var out, logs bytes.Buffer
	cfg := testConfig(3, 3, 3)
	require.NoError(t, cfg.Validate())

	require.NoError(t, NewApp(&out, &logs, cfg).Run(context.Background()))

	doc, err := adjlist.Read(&out)
	require.NoError(t, err)
	require.Equal(t, 18, doc.NodeCount)
	require.Len(t, doc.Positions, 18)

	// Info-level logs land on the log stream, never on the document stream.
	require.Contains(t, logs.String(), "clique-gate graph generated")
}

func TestRun_DebugAudit(t *testing.T) {
	var logs bytes.Buffer
	cfg := testConfig(3, 2, 1)
	cfg.Log.Level = "debug"

	require.NoError(t, NewApp(&bytes.Buffer{}, &logs, cfg).Run(context.Background()))
	require.Contains(t, logs.String(), "components=3")
	require.Contains(t, logs.String(), "Layout computed.")
}

func TestRun_Empty(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, NewApp(&out, &bytes.Buffer{}, testConfig(0, 1, 0)).Run(context.Background()))
	require.Equal(t, "0\n\n\n", out.String())
}

func TestRun_NoPartialOutput(t *testing.T) {
	var out bytes.Buffer
	err := NewApp(&out, &bytes.Buffer{}, testConfig(2, 1, 4)).Run(context.Background())
	require.ErrorIs(t, err, builder.ErrSizeMismatch)
	require.Zero(t, out.Len())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	err = NewApp(&out, &bytes.Buffer{}, testConfig(3, 3, 2)).Run(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.Zero(t, out.Len())
}

func TestRun_WriteFailure(t *testing.T) {
	sink := errors.New("closed pipe")
	err := NewApp(failingWriter{sink}, &bytes.Buffer{}, testConfig(2, 2, 2)).Run(context.Background())
	require.ErrorIs(t, err, sink)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(config.Log{Level: "warn", Format: config.FormatJSON}, &buf)
	logger.Info("hidden")
	logger.Warn("shown", "k", 1)

	out := buf.String()
	require.NotContains(t, out, "hidden")
	require.True(t, strings.HasPrefix(out, "{"), "expected JSON, got %q", out)
	require.Contains(t, out, `"msg":"shown"`)

	buf.Reset()
	newLogger(config.Log{Level: "DEBUG", Format: config.FormatText}, &buf).Debug("dbg")
	require.Contains(t, buf.String(), "level=DEBUG")
}

type failingWriter struct{ err error }

func (w failingWriter) Write([]byte) (int, error) { return 0, w.err }

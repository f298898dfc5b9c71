package cli_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/cliquegate/builder"
	"github.com/katalvlaran/cliquegate/internal/cli"
	"github.com/katalvlaran/cliquegate/internal/config"
	"github.com/katalvlaran/cliquegate/internal/ctxlog"
)

func withTopology(n, s, g int) *config.Config {
	c := config.Default()
	c.Topology = config.Topology{Components: n, ComponentSize: s, GateSize: g}
	return c
}

func TestParse(t *testing.T) {
	t.Parallel()

	debugJSON := withTopology(3, 10, 4)
	debugJSON.Log = config.Log{Level: "debug", Format: "json"}
	debugJSON.Layout.Updates = 7

	testCases := []struct {
		name           string
		args           []string
		expectExit     bool
		expectCode     int
		expectSentinel error
		expectedConfig *config.Config
	}{
		{
			name:           "three positionals",
			args:           []string{"3", "10", "4"},
			expectedConfig: withTopology(3, 10, 4),
		},
		{
			name:           "legacy fourth argument ignored",
			args:           []string{"2", "3", "2", "whatever"},
			expectedConfig: withTopology(2, 3, 2),
		},
		{
			name:           "flags before positionals",
			args:           []string{"-log-level=DEBUG", "-log-format", "json", "-layout-updates=7", "3", "10", "4"},
			expectedConfig: debugJSON,
		},
		{
			name:       "no arguments prints usage",
			args:       nil,
			expectExit: true,
		},
		{
			name:       "two arguments prints usage",
			args:       []string{"3", "10"},
			expectExit: true,
		},
		{
			name:       "help flag",
			args:       []string{"-h"},
			expectExit: true,
		},
		{
			name:           "too many arguments",
			args:           []string{"1", "2", "3", "4", "5"},
			expectCode:     cli.ExitUsage,
			expectSentinel: builder.ErrInvalidArgument,
		},
		{
			name:           "non-integer argument",
			args:           []string{"3", "ten", "4"},
			expectCode:     cli.ExitUsage,
			expectSentinel: builder.ErrInvalidArgument,
		},
		{
			name:           "zero gate with two components",
			args:           []string{"2", "3", "0"},
			expectCode:     cli.ExitUsage,
			expectSentinel: builder.ErrInvalidArgument,
		},
		{
			name:           "gate half exceeds component",
			args:           []string{"2", "1", "3"},
			expectCode:     cli.ExitUsage,
			expectSentinel: builder.ErrSizeMismatch,
		},
		{
			name:       "unknown flag",
			args:       []string{"-nodes=3"},
			expectCode: cli.ExitUsage,
		},
		{
			name:           "bad log format",
			args:           []string{"-log-format=xml", "1", "1", "0"},
			expectCode:     cli.ExitUsage,
			expectSentinel: config.ErrInvalidConfig,
		},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			var out bytes.Buffer
			cfg, shouldExit, err := cli.Parse(context.Background(), tc.args, &out)

			if tc.expectCode != 0 {
				var exitErr *cli.ExitError
				require.True(t, errors.As(err, &exitErr), "expected *cli.ExitError, got %v", err)
				require.Equal(t, tc.expectCode, exitErr.Code)
				if tc.expectSentinel != nil {
					require.ErrorIs(t, err, tc.expectSentinel)
				}
				return
			}
			require.NoError(t, err)
			require.Equal(t, tc.expectExit, shouldExit)
			if tc.expectExit {
				require.Nil(t, cfg)
				require.Contains(t, out.String(), "Usage:")
				return
			}
			if diff := cmp.Diff(tc.expectedConfig, cfg); diff != "" {
				t.Fatalf("config mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParse_ErrorNamesOffendingText(t *testing.T) {
	t.Parallel()

	_, _, err := cli.Parse(context.Background(), []string{"3", "4", "x7"}, &bytes.Buffer{})
	require.Error(t, err)
	require.Contains(t, err.Error(), `"x7"`)
}

func TestParse_ConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profile.hcl")
	require.NoError(t, os.WriteFile(path, []byte(`
topology {
  components     = 4
  component_size = 5
  gate_size      = 2
}
layout {
  updates = 20
}
log {
  level = "warn"
}
`), 0o600))

	cfg, shouldExit, err := cli.Parse(context.Background(), []string{"-config", path}, &bytes.Buffer{})
	require.NoError(t, err)
	require.False(t, shouldExit)
	want := withTopology(4, 5, 2)
	want.Layout.Updates = 20
	want.Log.Level = "warn"
	require.Equal(t, want, cfg)

	// Flags and positionals override the file.
	cfg, _, err = cli.Parse(context.Background(), []string{"-config", path, "-log-level=error", "-layout-updates=3", "2", "2", "2"}, &bytes.Buffer{})
	require.NoError(t, err)
	want = withTopology(2, 2, 2)
	want.Layout.Updates = 3
	want.Log.Level = "error"
	require.Equal(t, want, cfg)

	// With a profile, sizes come in threes or not at all.
	_, _, err = cli.Parse(context.Background(), []string{"-config", path, "2"}, &bytes.Buffer{})
	require.ErrorIs(t, err, builder.ErrInvalidArgument)

	_, _, err = cli.Parse(context.Background(), []string{"-config", filepath.Join(t.TempDir(), "missing.hcl")}, &bytes.Buffer{})
	var exitErr *cli.ExitError
	require.True(t, errors.As(err, &exitErr))
	require.Equal(t, cli.ExitUsage, exitErr.Code)
}

// TestParse_LogsThroughContext checks that profile loading reports to the
// logger the caller attached, not the global one.
func TestParse_LogsThroughContext(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "profile.hcl")
	require.NoError(t, os.WriteFile(path, []byte("topology {\n  components = 1\n}\n"), 0o600))

	var logs bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	ctx := ctxlog.WithLogger(context.Background(), logger)

	_, _, err := cli.Parse(ctx, []string{"-config", path}, &bytes.Buffer{})
	require.NoError(t, err)
	require.Contains(t, logs.String(), "Loading profile.")
	require.Contains(t, logs.String(), path)
	require.Contains(t, logs.String(), "CLI parser finished successfully.")
}

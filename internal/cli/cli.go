package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/cliquegate/builder"
	"github.com/katalvlaran/cliquegate/internal/config"
	"github.com/katalvlaran/cliquegate/internal/ctxlog"
)

// Exit codes returned through ExitError.
const (
	ExitFailure = 1
	ExitUsage   = 2
)

// maxPositional counts the three sizes plus the accepted legacy argument.
const maxPositional = 4

// ExitError is an error that carries the process exit code.
type ExitError struct {
	Code    int
	Message string
	Err     error
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Unwrap exposes the underlying cause, if any.
func (e *ExitError) Unwrap() error { return e.Err }

func usageError(err error) *ExitError {
	return &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
}

// Parse processes command-line arguments. It returns a validated Config,
// a boolean telling the caller to exit cleanly (usage was printed), or an
// *ExitError. Diagnostics, including those of profile loading, go to the
// logger carried by ctx.
func Parse(ctx context.Context, args []string, output io.Writer) (*config.Config, bool, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("cliquegate", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
cliquegate - generate a clique-gate graph with a 2D layout.

Usage:
  cliquegate [options] num_big_components big_component_size gate_size [legacy]
  cliquegate -config profile.hcl [options] [num_big_components big_component_size gate_size]

Arguments:
  num_big_components  number of big cliques (n ≥ 0)
  big_component_size  nodes per big clique (s ≥ 1)
  gate_size           nodes per gate clique (g ≥ 1 when n ≥ 2)
  legacy              accepted and ignored

The adjacency list with node coordinates is written to stdout.

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to an HCL generation profile.")
	logLevelFlag := flagSet.String("log-level", "info", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	updatesFlag := flagSet.Int("layout-updates", config.Default().Layout.Updates, "Number of spring layout iterations.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: ExitUsage, Message: err.Error(), Err: err}
	}

	positional := flagSet.Args()
	if len(positional) > maxPositional {
		return nil, false, usageError(fmt.Errorf("%w: expected at most %d arguments, got %d",
			builder.ErrInvalidArgument, maxPositional, len(positional)))
	}
	if *configFlag == "" && len(positional) < 3 {
		logger.Debug("Not enough arguments, printing usage and exiting.")
		flagSet.Usage()
		return nil, true, nil
	}
	if *configFlag != "" && len(positional) > 0 && len(positional) < 3 {
		return nil, false, usageError(fmt.Errorf("%w: expected 3 size arguments with -config, got %d",
			builder.ErrInvalidArgument, len(positional)))
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(ctx, *configFlag)
		if err != nil {
			return nil, false, usageError(err)
		}
		cfg = loaded
	}

	if len(positional) >= 3 {
		sizes, err := parseSizes(positional[:3])
		if err != nil {
			return nil, false, usageError(err)
		}
		cfg.Topology = config.Topology{Components: sizes[0], ComponentSize: sizes[1], GateSize: sizes[2]}
	}

	// Explicit flags win over the profile.
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "log-level":
			cfg.Log.Level = strings.ToLower(*logLevelFlag)
		case "log-format":
			cfg.Log.Format = strings.ToLower(*logFormatFlag)
		case "layout-updates":
			cfg.Layout.Updates = *updatesFlag
		}
	})

	if err := cfg.Validate(); err != nil {
		return nil, false, usageError(err)
	}

	logger.Debug("CLI parser finished successfully.", "topology", cfg.Topology)
	return cfg, false, nil
}

// parseSizes converts the three size arguments. The error names the
// offending text.
func parseSizes(args []string) ([3]int, error) {
	var sizes [3]int
	for i, a := range args {
		v, err := strconv.Atoi(a)
		if err != nil {
			return sizes, fmt.Errorf("%w: argument %d is not an integer: %q", builder.ErrInvalidArgument, i+1, a)
		}
		sizes[i] = v
	}

	return sizes, nil
}

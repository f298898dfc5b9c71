package config

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/zclconf/go-cty/cty"

	"github.com/katalvlaran/cliquegate/internal/ctxlog"
)

// hclFile mirrors the profile file. Every block and attribute is optional;
// nil means "keep the default".
type hclFile struct {
	Topology *hclTopology `hcl:"topology,block"`
	Layout   *hclLayout   `hcl:"layout,block"`
	Log      *hclLog      `hcl:"log,block"`
}

type hclTopology struct {
	Components    *int `hcl:"components,optional"`
	ComponentSize *int `hcl:"component_size,optional"`
	GateSize      *int `hcl:"gate_size,optional"`
}

type hclLayout struct {
	Updates   *int     `hcl:"updates,optional"`
	Repulsion *float64 `hcl:"repulsion,optional"`
	Rate      *float64 `hcl:"rate,optional"`
	Theta     *float64 `hcl:"theta,optional"`
}

type hclLog struct {
	Level  *string `hcl:"level,optional"`
	Format *string `hcl:"format,optional"`
}

// Load parses the HCL profile at path on top of Default(). Expressions may
// read the process environment as env.NAME. The result is not validated.
func Load(ctx context.Context, path string) (*Config, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Loading profile.", "path", path)

	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, diags)
	}

	var raw hclFile
	diags = gohcl.DecodeBody(file.Body, evalContext(os.Environ()), &raw)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config file %s: %w", path, diags)
	}

	cfg := Default()
	raw.apply(cfg)
	logger.Debug("Profile loaded.", "path", path, "topology", cfg.Topology)

	return cfg, nil
}

// evalContext exposes environ ("KEY=VALUE" pairs) as the env object.
func evalContext(environ []string) *hcl.EvalContext {
	vars := make(map[string]cty.Value, len(environ))
	for _, kv := range environ {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || name == "" {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	env := cty.EmptyObjectVal
	if len(vars) > 0 {
		env = cty.ObjectVal(vars)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{"env": env},
	}
}

// apply copies every value present in the file into cfg.
func (f *hclFile) apply(cfg *Config) {
	if t := f.Topology; t != nil {
		setInt(&cfg.Topology.Components, t.Components)
		setInt(&cfg.Topology.ComponentSize, t.ComponentSize)
		setInt(&cfg.Topology.GateSize, t.GateSize)
	}
	if l := f.Layout; l != nil {
		setInt(&cfg.Layout.Updates, l.Updates)
		setFloat(&cfg.Layout.Repulsion, l.Repulsion)
		setFloat(&cfg.Layout.Rate, l.Rate)
		setFloat(&cfg.Layout.Theta, l.Theta)
	}
	if l := f.Log; l != nil {
		if l.Level != nil {
			cfg.Log.Level = strings.ToLower(*l.Level)
		}
		if l.Format != nil {
			cfg.Log.Format = strings.ToLower(*l.Format)
		}
	}
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func setFloat(dst *float64, v *float64) {
	if v != nil {
		*dst = *v
	}
}

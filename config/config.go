// SPDX-License-Identifier: MIT

// Package config loads fgviz settings from defaults, an optional TOML file,
// FGVIZ_* environment variables and command-line flags.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"strings"

	"github.com/knadh/koanf/parsers/toml/v2"
	"github.com/knadh/koanf/providers/confmap"
	"github.com/knadh/koanf/providers/env"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/posflag"
	"github.com/knadh/koanf/v2"
	"github.com/spf13/pflag"
)

// DefaultFile is the optional config file read from the working directory.
const DefaultFile = "fgviz.toml"

// EnvPrefix prefixes environment overrides, e.g. FGVIZ_ROWS=8.
const EnvPrefix = "FGVIZ_"

// MaxCells bounds rows×cols so the grid and its preallocation stay in memory.
const MaxCells = 1 << 20

// ErrInvalid is wrapped by Validate failures.
var ErrInvalid = errors.New("config: invalid value")

// Config holds all settings for the fgviz command.
type Config struct {
	Rows      int     `koanf:"rows"`
	Cols      int     `koanf:"cols"`
	Coupling  float64 `koanf:"coupling"`
	Field     float64 `koanf:"field"`
	Seed      int64   `koanf:"seed"`
	Root      string  `koanf:"root"`
	GraphOut  string  `koanf:"graph-out"`
	TreeOut   string  `koanf:"tree-out"`
	LogLevel  string  `koanf:"log-level"`
	LogFormat string  `koanf:"log-format"`
}

func defaults() map[string]interface{} {
	return map[string]interface{}{
		"rows":       3,
		"cols":       3,
		"coupling":   1.0,
		"field":      0.0,
		"seed":       0,
		"root":       "0,0",
		"graph-out":  "-",
		"tree-out":   "",
		"log-level":  "info",
		"log-format": "compact",
	}
}

// Flags registers every setting on a new pflag set named name.
func Flags(name string) *pflag.FlagSet {
	d := defaults()
	f := pflag.NewFlagSet(name, pflag.ContinueOnError)
	f.String("config", DefaultFile, "Path to an optional TOML config file")
	f.Int("rows", d["rows"].(int), "Ising grid rows")
	f.Int("cols", d["cols"].(int), "Ising grid columns")
	f.Float64("coupling", d["coupling"].(float64), "Pairwise coupling J")
	f.Float64("field", d["field"].(float64), "External field h (0 disables unary factors)")
	f.Int64("seed", 0, "Draw couplings as ±J from this seed (0 keeps uniform J)")
	f.String("root", d["root"].(string), "Root variable of the spanning tree")
	f.String("graph-out", d["graph-out"].(string), "Factor graph DOT output path (- for stdout, empty to skip)")
	f.String("tree-out", d["tree-out"].(string), "Spanning tree DOT output path (- for stdout, empty to skip)")
	f.String("log-level", d["log-level"].(string), "Log level: debug, info, warn, error")
	f.String("log-format", d["log-format"].(string), "Log format: compact or json")
	return f
}

// Load resolves configuration. Priority: Flags > Env > Config File > Defaults.
// f may be nil; if it carries a "config" flag, that path replaces DefaultFile.
// A missing config file is not an error.
func Load(f *pflag.FlagSet) (*Config, error) {
	k := koanf.New(".")

	if err := k.Load(confmap.Provider(defaults(), "."), nil); err != nil {
		return nil, fmt.Errorf("failed to load defaults: %w", err)
	}

	path := DefaultFile
	if f != nil {
		if p, err := f.GetString("config"); err == nil && p != "" {
			path = p
		}
	}
	// A missing file is fine; any other error means it exists but is broken.
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}

	if err := k.Load(env.Provider(EnvPrefix, ".", func(s string) string {
		return strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(s, EnvPrefix)), "_", "-")
	}), nil); err != nil {
		return nil, fmt.Errorf("failed to load env vars: %w", err)
	}

	if f != nil {
		if err := k.Load(posflag.Provider(f, ".", k), nil); err != nil {
			return nil, fmt.Errorf("failed to load flags: %w", err)
		}
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate reports the first setting the command cannot run with.
func (c *Config) Validate() error {
	switch {
	case c.Rows < 1:
		return fmt.Errorf("%w: rows=%d must be ≥ 1", ErrInvalid, c.Rows)
	case c.Cols < 1:
		return fmt.Errorf("%w: cols=%d must be ≥ 1", ErrInvalid, c.Cols)
	case c.Rows > MaxCells/c.Cols:
		return fmt.Errorf("%w: rows×cols=%d×%d exceeds %d", ErrInvalid, c.Rows, c.Cols, MaxCells)
	case math.IsNaN(c.Coupling) || math.IsInf(c.Coupling, 0):
		return fmt.Errorf("%w: coupling=%v must be finite", ErrInvalid, c.Coupling)
	case math.IsNaN(c.Field) || math.IsInf(c.Field, 0):
		return fmt.Errorf("%w: field=%v must be finite", ErrInvalid, c.Field)
	case c.TreeOut != "" && c.Root == "":
		return fmt.Errorf("%w: tree-out requires a root", ErrInvalid)
	}
	return nil
}

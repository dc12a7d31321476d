package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/hashicorp/go-multierror"
	"github.com/joho/godotenv"
	"github.com/sdboyer/enumjen"
	"github.com/urfave/cli/v2"
)

// Config is the batch configuration read by `enumjen batch`.
//
//	outdir = "src/generated"
//	header = "Code generated by enumjen. DO NOT EDIT."
//
//	[[enum]]
//	name = "Country"
//	source = "data/countries.json"
//
//	[[enum]]
//	name = "Direction"
//	values = ["north", "south", "east", "west"]
type Config struct {
	OutDir    string `toml:"outdir"`
	Header    string `toml:"header"`
	NoClobber bool   `toml:"no_clobber"`
	Enums     []Job  `toml:"enum"`
}

// Job is one conversion of a batch.
type Job struct {
	// Name of the enum, or of the output file for CSV sources.
	Name string `toml:"name"`

	// Source is the input file. Mutually exclusive with Values.
	Source string `toml:"source"`

	// Kind overrides the input format otherwise taken from the Source
	// extension: one of json, yaml, csv.
	Kind string `toml:"kind"`

	// Values are list entries given inline.
	Values []string `toml:"values"`
}

// loadConfig reads a TOML batch config. A .env file next to it is loaded
// first; ${VAR} references in outdir and source are expanded. Relative paths
// are resolved against the directory holding the config.
func loadConfig(path string) (*Config, error) {
	dir := filepath.Dir(path)
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("%s: error loading .env: %w", dir, err)
	}

	var cfg Config
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.OutDir = resolve(dir, os.ExpandEnv(cfg.OutDir))
	for i := range cfg.Enums {
		if cfg.Enums[i].Source != "" {
			cfg.Enums[i].Source = resolve(dir, os.ExpandEnv(cfg.Enums[i].Source))
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%s: invalid config: %w", path, err)
	}
	return &cfg, nil
}

func resolve(dir, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(dir, p)
}

// Validate reports every malformed job.
func (c *Config) Validate() error {
	var result *multierror.Error
	if len(c.Enums) == 0 {
		result = multierror.Append(result, errors.New("no [[enum]] entries"))
	}
	for i, j := range c.Enums {
		if j.Name == "" {
			result = multierror.Append(result, fmt.Errorf("enum %d: name is required", i))
		}
		if (j.Source == "") == (j.Values == nil) {
			result = multierror.Append(result, fmt.Errorf("enum %d: exactly one of source or values is required", i))
			continue
		}
		if _, err := j.kind(); err != nil {
			result = multierror.Append(result, fmt.Errorf("enum %d: %w", i, err))
		}
	}
	return result.ErrorOrNil()
}

func (j Job) kind() (string, error) {
	if j.Values != nil {
		return "list", nil
	}
	kind := j.Kind
	if kind == "" {
		kind = strings.TrimPrefix(filepath.Ext(j.Source), ".")
	}
	switch kind {
	case "json", "csv", "yaml":
		return kind, nil
	case "yml":
		return "yaml", nil
	}
	return "", fmt.Errorf("cannot determine input format of %q", j.Source)
}

func (j Job) run(ctx context.Context, c *enumjen.Converter) error {
	kind, err := j.kind()
	if err != nil {
		return err
	}
	switch kind {
	case "json":
		return c.FromJSON(ctx, j.Source, j.Name)
	case "yaml":
		return c.FromYAML(ctx, j.Source, j.Name)
	case "csv":
		return c.FromCSV(ctx, j.Source, j.Name)
	default:
		return c.FromArray(ctx, j.Values, j.Name)
	}
}

var cmdBatch = &cli.Command{
	Name:  "batch",
	Usage: "run every conversion listed in a TOML config",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to the batch config",
			Value:   "enumjen.toml",
			EnvVars: []string{"ENUMJEN_CONFIG"},
		},
		watchFlag,
	},
	Action: func(cctx *cli.Context) error {
		cfg, err := loadConfig(cctx.String("config"))
		if err != nil {
			return err
		}
		c, err := newConverter(cctx)
		if err != nil {
			return err
		}
		if !cctx.IsSet("outdir") {
			c.OutDir = cfg.OutDir
		}
		if !cctx.IsSet("header") {
			c.Header = cfg.Header
		}
		c.NoClobber = c.NoClobber || cfg.NoClobber

		bySource := make(map[string][]Job)
		var sources []string
		for _, j := range cfg.Enums {
			if j.Source == "" {
				continue
			}
			abs, err := filepath.Abs(j.Source)
			if err != nil {
				return err
			}
			if _, seen := bySource[abs]; !seen {
				sources = append(sources, abs)
			}
			bySource[abs] = append(bySource[abs], j)
		}

		if !cctx.Bool("watch") {
			return runJobs(cctx.Context, c, cfg.Enums)
		}
		if err := runJobs(cctx.Context, c, cfg.Enums); err != nil {
			c.Logger.Error("initial generation failed", "err", err)
		}
		return watch(cctx.Context, c.Logger, sources, func(path string) error {
			return runJobs(cctx.Context, c, bySource[path])
		})
	},
}

// runJobs runs every job, continuing past failures, and returns all errors.
func runJobs(ctx context.Context, c *enumjen.Converter, jobs []Job) error {
	var result *multierror.Error
	for _, j := range jobs {
		if err := j.run(ctx, c); err != nil {
			result = multierror.Append(result, fmt.Errorf("enum %q: %w", j.Name, err))
			continue
		}
		c.Logger.Info("generated enums", "name", j.Name, "source", j.Source)
	}
	return result.ErrorOrNil()
}

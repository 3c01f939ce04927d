package config

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-ontology/pkg/loader"
	"github.com/dd0wney/cluso-ontology/pkg/logging"
	"github.com/dd0wney/cluso-ontology/pkg/metrics"
	"github.com/dd0wney/cluso-ontology/pkg/ontology"
	"github.com/dd0wney/cluso-ontology/pkg/validation"
)

// MaxSenseDepthLimit bounds max_sense_depth.
const MaxSenseDepthLimit = 64

// Load reads a YAML file over the defaults, applies ONTOLOGY_* environment
// overrides and validates the result. An empty path skips the file.
func Load(path string) (*Config, error) {
	cfg := DefaultConfig()
	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config: %w", err)
		}
		if err := cfg.Decode(data); err != nil {
			return nil, err
		}
	}
	if err := cfg.ApplyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := validation.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Decode overlays YAML onto cfg. Unknown keys are rejected.
func (c *Config) Decode(data []byte) error {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
		return fmt.Errorf("parse config: %w", err)
	}
	return nil
}

// ApplyEnv overrides fields from environment variables.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	str := func(name string, dst *string) {
		if v, ok := lookup(name); ok && v != "" {
			*dst = v
		}
	}
	boolean := func(name string, dst *bool) error {
		v, ok := lookup(name)
		if !ok || v == "" {
			return nil
		}
		b, err := strconv.ParseBool(v)
		if err != nil {
			return fmt.Errorf("invalid %s: %w", name, err)
		}
		*dst = b
		return nil
	}

	str("ONTOLOGY_PATH", &c.Ontology)
	str("ONTOLOGY_LEXICON", &c.Lexicon)
	str("ONTOLOGY_SENSES", &c.Senses)
	str("ONTOLOGY_STOPLIST", &c.Stoplist)
	str("ONTOLOGY_ALLOWLIST", &c.Allowlist)
	str("ONTOLOGY_GLOSS_PATTERN", &c.GlossPattern)
	str("LOG_LEVEL", &c.LogLevel)
	c.LogLevel = strings.ToLower(strings.TrimSpace(c.LogLevel))

	if v, ok := lookup("ONTOLOGY_MAX_SENSE_DEPTH"); ok && v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("invalid ONTOLOGY_MAX_SENSE_DEPTH: %w", err)
		}
		c.MaxSenseDepth = n
	}
	for name, dst := range map[string]*bool{
		"ONTOLOGY_USE_GLOSS":          &c.UseGloss,
		"ONTOLOGY_INCLUDE_STOPLISTED": &c.IncludeStoplisted,
		"ONTOLOGY_CACHE":              &c.CacheEnabled,
		"ONTOLOGY_METRICS":            &c.MetricsEnabled,
	} {
		if err := boolean(name, dst); err != nil {
			return err
		}
	}
	return nil
}

// Validate checks every field and reports all problems at once.
func (c *Config) Validate() error {
	return validation.NewConfigValidator("config").
		Required("ontology", c.Ontology).
		FileExists("ontology", c.Ontology).
		FileExists("lexicon", c.Lexicon).
		FileExists("senses", c.Senses).
		FileExists("stoplist", c.Stoplist).
		FileExists("allowlist", c.Allowlist).
		RangeInt("max_sense_depth", c.MaxSenseDepth, 1, MaxSenseDepthLimit).
		OneOf("log_level", c.LogLevel, LogLevels).
		When(c.GlossPattern != "", func(cv *validation.ConfigValidator) {
			cv.Regexp("gloss_pattern", c.GlossPattern)
		}).
		Validate()
}

// Paths returns the loader inputs.
func (c *Config) Paths() loader.Paths {
	return loader.Paths{
		Ontology:  c.Ontology,
		Lexicon:   c.Lexicon,
		Senses:    c.Senses,
		Stoplist:  c.Stoplist,
		Allowlist: c.Allowlist,
	}
}

// Level returns the configured log level.
func (c *Config) Level() logging.Level {
	return logging.ParseLevel(c.LogLevel)
}

// BuildOptions maps the configuration onto graph options. reg is attached
// only when metrics are enabled.
func (c *Config) BuildOptions(logger logging.Logger, reg *metrics.Registry) (ontology.Options, error) {
	opts := ontology.DefaultOptions()
	opts.MaxSenseDepth = validation.DefaultOrInt(c.MaxSenseDepth, opts.MaxSenseDepth)
	opts.UseGloss = c.UseGloss
	opts.IncludeStoplisted = c.IncludeStoplisted
	opts.StoplistAtLookup = c.StoplistAtLookup
	opts.DisableCache = !c.CacheEnabled
	opts.Logger = logger
	if c.MetricsEnabled {
		opts.Metrics = reg
	}
	if c.GlossPattern != "" {
		re, err := regexp.Compile(c.GlossPattern)
		if err != nil {
			return ontology.Options{}, fmt.Errorf("gloss_pattern: %w", err)
		}
		opts.GlossPattern = re
	}
	return opts, nil
}

// Open loads the configured files and builds the graph.
func (c *Config) Open(ctx context.Context, logger logging.Logger, reg *metrics.Registry) (*ontology.Graph, error) {
	opts, err := c.BuildOptions(logger, reg)
	if err != nil {
		return nil, err
	}
	bundle, err := loader.Load(ctx, c.Paths(), logger)
	if err != nil {
		return nil, err
	}
	return bundle.Graph(opts)
}

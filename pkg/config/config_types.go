// Package config holds the YAML configuration of the ontology service and
// turns it into loader paths and graph options.
package config

import (
	"github.com/dd0wney/cluso-ontology/pkg/ontology"
	"github.com/dd0wney/cluso-ontology/pkg/senses"
)

// Config describes where the ontology data lives and how it is indexed.
type Config struct {
	// Input files. Ontology is required; the rest are optional.
	Ontology  string `yaml:"ontology"`
	Lexicon   string `yaml:"lexicon"`
	Senses    string `yaml:"senses"`
	Stoplist  string `yaml:"stoplist"`
	Allowlist string `yaml:"allowlist"`

	MaxSenseDepth     int    `yaml:"max_sense_depth"`
	UseGloss          bool   `yaml:"use_gloss"`
	GlossPattern      string `yaml:"gloss_pattern"`
	IncludeStoplisted bool   `yaml:"include_stoplisted"`
	StoplistAtLookup  bool   `yaml:"stoplist_at_lookup"`

	CacheEnabled   bool   `yaml:"cache_enabled"`
	LogLevel       string `yaml:"log_level"`
	MetricsEnabled bool   `yaml:"metrics_enabled"`
}

// LogLevels are the accepted log_level values.
var LogLevels = []string{"debug", "info", "warn", "error"}

// DefaultConfig returns a configuration with caching on, gloss concepts
// dropped and the default sense depth.
func DefaultConfig() *Config {
	return &Config{
		MaxSenseDepth: senses.DefaultMaxDepth,
		GlossPattern:  ontology.DefaultGlossPattern,
		CacheEnabled:  true,
		LogLevel:      "info",
	}
}

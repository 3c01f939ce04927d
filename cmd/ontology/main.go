package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dd0wney/cluso-ontology/pkg/config"
	"github.com/dd0wney/cluso-ontology/pkg/logging"
	"github.com/dd0wney/cluso-ontology/pkg/metrics"
	"github.com/dd0wney/cluso-ontology/pkg/ontology"
)

// app carries flags and the lazily opened graph shared by all commands.
type app struct {
	out io.Writer

	configPath string
	overrides  config.Config
	asJSON     bool

	graph *ontology.Graph
}

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd(out io.Writer) *cobra.Command {
	a := &app{out: out}

	root := &cobra.Command{
		Use:   "ontology",
		Short: "Query a concept hierarchy and its word and sense indexes",
		Long: `Query a concept hierarchy cross-indexed with a lexicon and a sense graph.

Keys:
  ont::NAME   concept by name (tag optional)
  w::WORD     concepts for a word (see --pos)
  wn::KEY     concepts for a sense key
  q::WORD     word plus sense lookup
  p::POS      concepts and words for a part of speech
  d::TEXT     definition search`,
		SilenceUsage: true,
	}
	root.SetOut(out)

	flags := root.PersistentFlags()
	flags.StringVarP(&a.configPath, "config", "c", os.Getenv("ONTOLOGY_CONFIG"), "YAML config file")
	flags.StringVar(&a.overrides.Ontology, "ontology", "", "ontology file (overrides config)")
	flags.StringVar(&a.overrides.Lexicon, "lexicon", "", "lexicon file (overrides config)")
	flags.StringVar(&a.overrides.Senses, "senses", "", "sense graph file (overrides config)")
	flags.StringVar(&a.overrides.Stoplist, "stoplist", "", "sense-key stoplist (overrides config)")
	flags.StringVar(&a.overrides.LogLevel, "log-level", "", "debug, info, warn or error")
	flags.BoolVar(&a.asJSON, "json", false, "print results as JSON")

	root.AddCommand(
		newQueryCmd(a),
		newDescribeCmd(a),
		newLCSCmd(a),
		newSimilarityCmd(a),
		newClosureCmd(a),
		newStatsCmd(a),
		newTagCmd(a),
		newCandidatesCmd(a),
		newReplCmd(a),
	)
	return root
}

// loadConfig merges the config file, environment and flag overrides.
func (a *app) loadConfig() (*config.Config, error) {
	cfg := config.DefaultConfig()
	if a.configPath != "" {
		data, err := os.ReadFile(a.configPath)
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

	o := a.overrides
	for dst, v := range map[*string]string{
		&cfg.Ontology: o.Ontology,
		&cfg.Lexicon:  o.Lexicon,
		&cfg.Senses:   o.Senses,
		&cfg.Stoplist: o.Stoplist,
		&cfg.LogLevel: o.LogLevel,
	} {
		if v != "" {
			*dst = v
		}
	}
	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func (a *app) open(ctx context.Context) (*ontology.Graph, error) {
	if a.graph != nil {
		return a.graph, nil
	}
	cfg, err := a.loadConfig()
	if err != nil {
		return nil, err
	}
	logger := logging.NewJSONLogger(os.Stderr, cfg.Level())
	logging.SetDefaultLogger(logger)

	g, err := cfg.Open(ctx, logger, metrics.DefaultRegistry())
	if err != nil {
		return nil, err
	}
	a.graph = g
	return g, nil
}

func (a *app) printJSON(v any) error {
	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

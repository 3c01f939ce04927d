package ontology

import (
	"regexp"

	"github.com/dd0wney/cluso-ontology/pkg/logging"
	"github.com/dd0wney/cluso-ontology/pkg/metrics"
	"github.com/dd0wney/cluso-ontology/pkg/senses"
)

// DefaultGlossPattern matches concept names generated from sense glosses.
const DefaultGlossPattern = `(?i)(^|[-_:])gloss([-_]|$)`

// Options control how a Graph is built and queried.
type Options struct {
	// Provider is the external sense graph. Nil disables sense closure.
	Provider senses.Provider

	// Stoplist removes sense keys at build time.
	Stoplist *senses.Stoplist

	// IncludeStoplisted keeps stoplisted keys and lexical senses.
	IncludeStoplisted bool

	// StoplistAtLookup re-applies the stoplist to word lookups.
	StoplistAtLookup bool

	// UseGloss keeps gloss-derived concepts. When false, concepts whose
	// name matches GlossPattern are dropped along with their subtree.
	UseGloss     bool
	GlossPattern *regexp.Regexp

	// MaxSenseDepth bounds upward sense closure.
	MaxSenseDepth int

	DisableCache bool

	Logger  logging.Logger
	Metrics *metrics.Registry
}

// DefaultOptions returns options with no sense provider, gloss concepts
// dropped and the default closure depth.
func DefaultOptions() Options {
	return Options{
		GlossPattern:  regexp.MustCompile(DefaultGlossPattern),
		MaxSenseDepth: senses.DefaultMaxDepth,
	}
}

func (o Options) withDefaults() Options {
	if o.GlossPattern == nil {
		o.GlossPattern = regexp.MustCompile(DefaultGlossPattern)
	}
	if o.MaxSenseDepth <= 0 {
		o.MaxSenseDepth = senses.DefaultMaxDepth
	}
	if o.Logger == nil {
		o.Logger = logging.NewNopLogger()
	}
	return o
}

func (o Options) isGloss(name string) bool {
	return !o.UseGloss && o.GlossPattern.MatchString(name)
}

func (o Options) blocks(key string) bool {
	return !o.IncludeStoplisted && o.Stoplist.Blocks(key)
}

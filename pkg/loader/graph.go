package loader

import (
	"fmt"

	"github.com/dd0wney/cluso-ontology/pkg/ontology"
	"github.com/dd0wney/cluso-ontology/pkg/senses"
)

// Graph builds an ontology from the bundle. When the bundle carries synsets
// they become the sense provider, and its stoplist replaces opts.Stoplist
// unless that is already set.
func (b *Bundle) Graph(opts ontology.Options) (*ontology.Graph, error) {
	if len(b.Synsets) > 0 && opts.Provider == nil {
		provider, err := senses.NewMemoryGraph(b.Synsets)
		if err != nil {
			return nil, fmt.Errorf("build sense graph: %w", err)
		}
		opts.Provider = provider
	}
	if opts.Stoplist == nil && (len(b.Stoplist.Exclude) > 0 || len(b.Stoplist.Include) > 0) {
		opts.Stoplist = senses.NewStoplist(b.Stoplist.Exclude, b.Stoplist.Include)
	}
	return ontology.Build(b.Concepts, b.Lexicon, opts)
}

package ontology

import (
	"time"

	"github.com/dd0wney/cluso-ontology/pkg/logging"
)

// Result is the outcome of a query. Results may be shared through the
// cache; callers must not modify the slices.
type Result struct {
	Kind     string
	Concepts []*Concept

	// Words is set for part-of-speech queries.
	Words []string

	// Lexical and Senses split a lookup query into its word-index and
	// sense-closure halves. Concepts holds their union.
	Lexical []*Concept
	Senses  []*Concept
}

// Empty reports whether the query matched nothing.
func (r Result) Empty() bool {
	return len(r.Concepts) == 0 && len(r.Words) == 0
}

// First returns the first concept or nil.
func (r Result) First() *Concept {
	if len(r.Concepts) == 0 {
		return nil
	}
	return r.Concepts[0]
}

// Names returns the concept names in result order.
func (r Result) Names() []string {
	out := make([]string, len(r.Concepts))
	for i, c := range r.Concepts {
		out[i] = c.name
	}
	return out
}

// Query parses and resolves a raw key.
func (g *Graph) Query(raw string) Result {
	return g.Resolve(ParseKey(raw, ""))
}

// QueryPOS is Query with a part of speech for word and lookup keys.
func (g *Graph) QueryPOS(raw, pos string) Result {
	return g.Resolve(ParseKey(raw, pos))
}

// Resolve answers a parsed key, memoizing the result for the graph's
// lifetime. Resolved concepts are returned without touching the cache.
func (g *Graph) Resolve(k Key) Result {
	if rk, ok := k.(ResolvedKey); ok {
		return g.resolve(rk)
	}
	return g.cache.get(k, g.resolveTimed)
}

func (g *Graph) resolveTimed(k Key) Result {
	start := time.Now()
	r := g.resolve(k)
	elapsed := time.Since(start)
	if g.opts.Metrics != nil {
		g.opts.Metrics.RecordQuery(k.Kind(), len(r.Concepts), elapsed)
	}
	g.logger.Debug("query resolved",
		logging.QueryKey(k.String()),
		logging.QueryKind(k.Kind()),
		logging.Count(len(r.Concepts)),
		logging.Latency(elapsed),
	)
	return r
}

func (g *Graph) resolve(k Key) Result {
	r := Result{Kind: k.Kind()}
	switch k := k.(type) {
	case ConceptKey:
		if c := g.Get(k.Name); c != nil {
			r.Concepts = []*Concept{c}
		}
	case ResolvedKey:
		if k.Concept != nil {
			r.Concepts = []*Concept{k.Concept}
		}
	case WordKey:
		r.Concepts = g.Word(k.Word, k.POS)
	case SenseKey:
		r.Concepts = g.Senses(k.Key)
	case SynsetKey:
		r.Concepts = g.SynsetConcepts(k.ID, g.opts.MaxSenseDepth)
	case LookupKey:
		r.Lexical = g.Word(k.Word, k.POS)
		r.Senses = g.wordSenses(k.Word, k.POS)
		r.Concepts = unionConcepts(r.Lexical, r.Senses)
	case PartOfSpeechKey:
		r.Concepts = g.PartOfSpeech(k.POS)
		r.Words = g.Vocabulary(k.POS)
	case DefinitionKey:
		r.Concepts = g.SearchDefinitions(k.Text)
	case InvalidKey:
	}
	return r
}

func unionConcepts(lists ...[]*Concept) []*Concept {
	set := make(map[string]*Concept)
	for _, list := range lists {
		for _, c := range list {
			set[c.name] = c
		}
	}
	return sortConcepts(set)
}

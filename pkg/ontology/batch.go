package ontology

import (
	"strings"

	"github.com/dd0wney/cluso-ontology/pkg/parallel"
)

// Request is one query of a batch.
type Request struct {
	Key string
	POS string
}

// QueryBatch resolves requests on up to workers goroutines. Results are in
// request order and share the graph's cache. A request that panics leaves
// an empty result and the error wraps parallel.ErrTaskPanicked.
func (g *Graph) QueryBatch(reqs []Request, workers int) ([]Result, error) {
	return parallel.Map(reqs, workers, g.logger, func(r Request) Result {
		return g.QueryPOS(r.Key, r.POS)
	})
}

// Token is a word to tag, with its lemma and part of speech as produced by
// a tagger.
type Token struct {
	Text  string
	Lemma string
	POS   string
}

// NormalizePOS maps universal and sense-graph tags onto n, v, a and r.
// Other tags yield "".
func NormalizePOS(tag string) string {
	switch strings.ToLower(strings.TrimSpace(tag)) {
	case "n", "noun", "propn":
		return "n"
	case "v", "verb":
		return "v"
	case "a", "s", "adj":
		return "a"
	case "r", "adv":
		return "r"
	default:
		return ""
	}
}

// Tag assigns each token the concepts reached by lookup queries on its
// surface form and its lemma. Tokens without a content part of speech get
// no concepts. Panics are reported as in QueryBatch.
func (g *Graph) Tag(tokens []Token, workers int) ([][]*Concept, error) {
	return parallel.Map(tokens, workers, g.logger, g.tagToken)
}

func (g *Graph) tagToken(t Token) []*Concept {
	pos := NormalizePOS(t.POS)
	if pos == "" {
		return nil
	}
	found := g.QueryPOS("q::"+t.Text, pos).Concepts
	if t.Lemma != "" && !strings.EqualFold(t.Lemma, t.Text) {
		found = unionConcepts(found, g.QueryPOS("q::"+t.Lemma, pos).Concepts)
	}
	return found
}

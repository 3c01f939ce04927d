package ontology

import (
	"sort"
	"strings"

	"github.com/dd0wney/cluso-ontology/pkg/senses"
)

// Default bounds for downward closures.
const (
	DefaultWordClosureDepth = 3
	DefaultIsAClosureDepth  = 3
)

// Senses returns the concepts for a sense key with the default depth.
func (g *Graph) Senses(key string) []*Concept {
	return g.SensesWithDepth(key, g.opts.MaxSenseDepth)
}

// SensesWithDepth returns the concepts anchored at key, or at the nearest
// broader sense within maxDepth levels. Depth 0 matches nothing.
func (g *Graph) SensesWithDepth(key string, maxDepth int) []*Concept {
	m := g.senses.Lookup(key, maxDepth)
	g.recordClosure("up", m.Visited)
	return g.conceptsNamed(m.Concepts)
}

// SynsetConcepts returns the concepts reached upward from a synset.
func (g *Graph) SynsetConcepts(id senses.SynsetID, maxDepth int) []*Concept {
	m := g.senses.LookupSynset(id, maxDepth)
	g.recordClosure("up", m.Visited)
	return g.conceptsNamed(m.Concepts)
}

func (g *Graph) conceptsNamed(names []string) []*Concept {
	if len(names) == 0 {
		return nil
	}
	out := make([]*Concept, 0, len(names))
	for _, name := range names {
		if c, ok := g.concepts[name]; ok {
			out = append(out, c)
		}
	}
	return out
}

func (g *Graph) recordClosure(direction string, visited int) {
	if g.opts.Metrics != nil {
		g.opts.Metrics.RecordClosure(direction, visited)
	}
}

// wordSenses maps every sense of word to concepts through sense closure.
func (g *Graph) wordSenses(word, pos string) []*Concept {
	p := g.senses.Provider()
	if p == nil {
		return nil
	}
	set := make(map[string]*Concept)
	for _, id := range p.Synsets(word, pos) {
		for _, c := range g.SynsetConcepts(id, g.opts.MaxSenseDepth) {
			set[c.name] = c
		}
	}
	return sortConcepts(set)
}

// SenseClosure returns c's own synsets plus the narrower synsets, up to
// maxDepth levels down, that still map back to c or a concept below it.
// A non-empty pos filters the result.
func (g *Graph) SenseClosure(c *Concept, maxDepth int, pos string) []senses.SynsetID {
	p := g.senses.Provider()
	if p == nil || c == nil {
		return nil
	}
	pos = strings.ToLower(strings.TrimSpace(pos))
	roots := c.Synsets()

	keep := func(id senses.SynsetID) bool {
		for _, r := range g.SynsetConcepts(id, g.opts.MaxSenseDepth) {
			if c.SubsumesOrEqual(r) {
				return true
			}
		}
		return false
	}
	below := g.senses.Descend(roots, maxDepth, keep)
	g.recordClosure("down", len(below))

	var out []senses.SynsetID
	for _, id := range append(roots, below...) {
		if pos == "" || p.POS(id) == pos {
			out = append(out, id)
		}
	}
	return out
}

// WordClosure returns the lemma names of SenseClosure, sorted and unique.
func (g *Graph) WordClosure(c *Concept, maxDepth int, pos string) []string {
	p := g.senses.Provider()
	if p == nil {
		return nil
	}
	set := make(map[string]struct{})
	for _, id := range g.SenseClosure(c, maxDepth, pos) {
		for _, l := range p.Lemmas(id) {
			set[strings.ToLower(l.Name)] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// IsAClosure returns the word closure of c and of every concept below it.
func (g *Graph) IsAClosure(c *Concept, maxDepth int) []string {
	if c == nil {
		return nil
	}
	set := make(map[string]struct{})
	for _, n := range append([]*Concept{c}, c.Descendants()...) {
		for _, w := range g.WordClosure(n, maxDepth, "") {
			set[w] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// SenseCandidates returns the senses of word whose concepts are target or
// lie below it.
func (g *Graph) SenseCandidates(target any, word, pos string) ([]senses.SynsetID, error) {
	c, err := g.Operand(target)
	if err != nil {
		return nil, err
	}
	p := g.senses.Provider()
	if p == nil {
		return nil, nil
	}
	var out []senses.SynsetID
	for _, id := range p.Synsets(word, pos) {
		for _, r := range g.SynsetConcepts(id, g.opts.MaxSenseDepth) {
			if c.SubsumesOrEqual(r) {
				out = append(out, id)
				break
			}
		}
	}
	return out, nil
}

func sortedKeys(set map[string]struct{}) []string {
	if len(set) == 0 {
		return nil
	}
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

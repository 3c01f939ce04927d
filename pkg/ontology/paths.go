package ontology

import (
	"sort"

	"github.com/dd0wney/cluso-ontology/pkg/senses"
)

// SensePath explains how a sense reaches a concept: the synsets climbed from
// the sense to its anchor, then the anchored concept's path to the root.
type SensePath struct {
	Synsets  []senses.SynsetID
	Concepts []*Concept
}

// Concept is the concept the path lands on.
func (p SensePath) Concept() *Concept {
	if len(p.Concepts) == 0 {
		return nil
	}
	return p.Concepts[0]
}

// SenseWeights price each step of a SensePath.
type SenseWeights struct {
	Synset  float64
	Concept float64
}

// DefaultSenseWeights counts every step as 1.
func DefaultSenseWeights() SenseWeights {
	return SenseWeights{Synset: 1, Concept: 1}
}

// Weight sums the step weights of p. When stop lies on the concept path,
// only the steps before it count.
func (p SensePath) Weight(w SenseWeights, stop *Concept) float64 {
	concepts := len(p.Concepts)
	if stop != nil {
		for i, c := range p.Concepts {
			if c.name == stop.name {
				concepts = i
				break
			}
		}
	}
	return float64(len(p.Synsets))*w.Synset + float64(concepts)*w.Concept
}

func (p SensePath) passes(c *Concept) bool {
	for _, n := range p.Concepts {
		if n.name == c.name {
			return true
		}
	}
	return false
}

// SensePaths returns the paths from a sense key to the concepts it maps to,
// climbing at most maxDepth levels. A directly indexed key yields one path per
// anchored concept. Depth 0 yields nothing.
func (g *Graph) SensePaths(key string, maxDepth int) []SensePath {
	if maxDepth <= 0 {
		return nil
	}
	key = senses.NormalizeKey(key)
	p := g.senses.Provider()

	if direct := g.senses.Direct(key); len(direct) > 0 {
		var synsets []senses.SynsetID
		if p != nil {
			if id, ok := p.Synset(key); ok {
				synsets = []senses.SynsetID{id}
			}
		}
		return g.pathsTo(synsets, direct)
	}
	if p == nil {
		return nil
	}
	id, ok := p.Synset(key)
	if !ok {
		return nil
	}
	return g.SynsetPaths(id, maxDepth)
}

// SynsetPaths is SensePaths starting from a synset.
func (g *Graph) SynsetPaths(id senses.SynsetID, maxDepth int) []SensePath {
	var out []SensePath
	for _, chain := range g.senses.Chains(id, maxDepth) {
		out = append(out, g.pathsTo(chain.Synsets, chain.Concepts)...)
	}
	return out
}

func (g *Graph) pathsTo(synsets []senses.SynsetID, names []string) []SensePath {
	var out []SensePath
	for _, c := range g.conceptsNamed(names) {
		out = append(out, SensePath{Synsets: synsets, Concepts: c.PathToRoot()})
	}
	return out
}

// WeightedCandidate is a sense of a word that reaches a target concept,
// with the cheapest path weight and the paths that pass through the target.
type WeightedCandidate struct {
	Synset senses.SynsetID
	Weight float64
	Paths  []SensePath
}

// WeightedSenseCandidates ranks the senses of word whose paths pass through
// target, cheapest first. Path weights stop at the target.
func (g *Graph) WeightedSenseCandidates(target any, word, pos string, w SenseWeights) ([]WeightedCandidate, error) {
	c, err := g.Operand(target)
	if err != nil {
		return nil, err
	}
	p := g.senses.Provider()
	if p == nil {
		return nil, nil
	}

	var out []WeightedCandidate
	for _, id := range p.Synsets(word, pos) {
		var cand *WeightedCandidate
		for _, path := range g.SynsetPaths(id, g.opts.MaxSenseDepth) {
			if !path.passes(c) {
				continue
			}
			weight := path.Weight(w, c)
			if cand == nil {
				cand = &WeightedCandidate{Synset: id, Weight: weight}
			} else if weight < cand.Weight {
				cand.Weight = weight
			}
			cand.Paths = append(cand.Paths, path)
		}
		if cand != nil {
			out = append(out, *cand)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Weight < out[j].Weight })
	return out, nil
}

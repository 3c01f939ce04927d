package senses

import (
	"fmt"
	"sort"
	"strings"

	"github.com/dd0wney/cluso-ontology/pkg/records"
	"github.com/dd0wney/cluso-ontology/pkg/validation"
)

// MemoryGraph is an in-memory Provider built from synset records.
type MemoryGraph struct {
	synsets   map[SynsetID]*synsetNode
	byKey     map[string]SynsetID
	byWord    map[string][]SynsetID // lowercased lemma name -> synsets, record order
	edgeCount int
}

type synsetNode struct {
	pos              string
	definition       string
	lemmas           []Lemma
	hypernyms        []SynsetID
	instanceOf       []SynsetID
	hyponyms         []SynsetID
	instanceHyponyms []SynsetID
}

// NewMemoryGraph builds a sense graph. Every record must be well formed,
// every sense key unique, and every broader-term reference must name a
// synset in recs.
func NewMemoryGraph(recs []records.Synset) (*MemoryGraph, error) {
	g := &MemoryGraph{
		synsets: make(map[SynsetID]*synsetNode, len(recs)),
		byKey:   make(map[string]SynsetID),
		byWord:  make(map[string][]SynsetID),
	}

	for i := range recs {
		rec := &recs[i]
		if err := validation.ValidateSynset(rec); err != nil {
			return nil, fmt.Errorf("synset %d: %w", i, err)
		}
		id := SynsetID(strings.ToLower(rec.ID))
		if _, dup := g.synsets[id]; dup {
			return nil, fmt.Errorf("duplicate synset %q", id)
		}

		node := &synsetNode{
			pos:        strings.ToLower(rec.POS),
			definition: rec.Definition,
		}
		for _, l := range rec.Lemmas {
			key := NormalizeKey(l.Key)
			if prev, dup := g.byKey[key]; dup {
				return nil, fmt.Errorf("sense key %q claimed by %q and %q", key, prev, id)
			}
			g.byKey[key] = id
			name := strings.ToLower(l.Name)
			node.lemmas = append(node.lemmas, Lemma{Name: name, Key: key})
			g.byWord[name] = append(g.byWord[name], id)
		}
		for _, h := range rec.Hypernyms {
			node.hypernyms = append(node.hypernyms, SynsetID(strings.ToLower(h)))
		}
		for _, h := range rec.InstanceHypernyms {
			node.instanceOf = append(node.instanceOf, SynsetID(strings.ToLower(h)))
		}
		g.synsets[id] = node
	}

	// Narrower edges are the inverse of broader ones; ids are visited in
	// sorted order so hyponym lists are deterministic.
	ids := make([]SynsetID, 0, len(g.synsets))
	for id := range g.synsets {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	for _, id := range ids {
		node := g.synsets[id]
		for _, h := range node.hypernyms {
			parent, ok := g.synsets[h]
			if !ok {
				return nil, fmt.Errorf("synset %q: unknown hypernym %q", id, h)
			}
			parent.hyponyms = append(parent.hyponyms, id)
			g.edgeCount++
		}
		for _, h := range node.instanceOf {
			parent, ok := g.synsets[h]
			if !ok {
				return nil, fmt.Errorf("synset %q: unknown instance hypernym %q", id, h)
			}
			parent.instanceHyponyms = append(parent.instanceHyponyms, id)
			g.edgeCount++
		}
	}

	return g, nil
}

// Len returns the number of synsets.
func (g *MemoryGraph) Len() int { return len(g.synsets) }

// EdgeCount returns the number of broader-term edges, instance edges included.
func (g *MemoryGraph) EdgeCount() int { return g.edgeCount }

func (g *MemoryGraph) Synset(key string) (SynsetID, bool) {
	id, ok := g.byKey[NormalizeKey(key)]
	return id, ok
}

func (g *MemoryGraph) Synsets(word, pos string) []SynsetID {
	word = strings.ToLower(strings.TrimSpace(word))
	pos = strings.ToLower(pos)
	var out []SynsetID
	for _, id := range g.byWord[strings.ReplaceAll(word, " ", "_")] {
		if pos == "" || g.synsets[id].pos == pos {
			out = append(out, id)
		}
	}
	return out
}

func (g *MemoryGraph) Lemmas(id SynsetID) []Lemma {
	if n, ok := g.synsets[id]; ok {
		return append([]Lemma(nil), n.lemmas...)
	}
	return nil
}

func (g *MemoryGraph) POS(id SynsetID) string {
	if n, ok := g.synsets[id]; ok {
		return n.pos
	}
	return ""
}

func (g *MemoryGraph) Definition(id SynsetID) string {
	if n, ok := g.synsets[id]; ok {
		return n.definition
	}
	return ""
}

func (g *MemoryGraph) Hypernyms(id SynsetID) []SynsetID {
	if n, ok := g.synsets[id]; ok {
		return n.hypernyms
	}
	return nil
}

func (g *MemoryGraph) InstanceHypernyms(id SynsetID) []SynsetID {
	if n, ok := g.synsets[id]; ok {
		return n.instanceOf
	}
	return nil
}

func (g *MemoryGraph) Hyponyms(id SynsetID) []SynsetID {
	if n, ok := g.synsets[id]; ok {
		return n.hyponyms
	}
	return nil
}

func (g *MemoryGraph) InstanceHyponyms(id SynsetID) []SynsetID {
	if n, ok := g.synsets[id]; ok {
		return n.instanceHyponyms
	}
	return nil
}

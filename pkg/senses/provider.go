package senses

// SynsetID identifies a synonym set in the external sense graph.
type SynsetID string

// Lemma is one word form of a synset.
type Lemma struct {
	Name string
	Key  string
}

// Provider supplies the external sense graph. Implementations report misses
// with empty results; they never fail.
type Provider interface {
	// Synset resolves a normalized sense key to its synset.
	Synset(key string) (SynsetID, bool)
	// Synsets lists the synsets of a word, optionally restricted to a part
	// of speech ("" means any).
	Synsets(word, pos string) []SynsetID
	Lemmas(id SynsetID) []Lemma
	POS(id SynsetID) string
	Definition(id SynsetID) string

	// Hypernyms are the ordinary broader terms of a synset.
	Hypernyms(id SynsetID) []SynsetID
	// InstanceHypernyms are instance-of edges, which the sense graph does not
	// count among ordinary broader terms.
	InstanceHypernyms(id SynsetID) []SynsetID
	Hyponyms(id SynsetID) []SynsetID
	InstanceHyponyms(id SynsetID) []SynsetID
}

// Broader returns ordinary and instance-of broader terms.
func Broader(p Provider, id SynsetID) []SynsetID {
	return appendUnique(p.Hypernyms(id), p.InstanceHypernyms(id))
}

// Narrower returns ordinary and instance narrower terms.
func Narrower(p Provider, id SynsetID) []SynsetID {
	return appendUnique(p.Hyponyms(id), p.InstanceHyponyms(id))
}

func appendUnique(a, b []SynsetID) []SynsetID {
	if len(b) == 0 {
		return a
	}
	out := make([]SynsetID, 0, len(a)+len(b))
	seen := make(map[SynsetID]struct{}, len(a)+len(b))
	for _, list := range [][]SynsetID{a, b} {
		for _, id := range list {
			if _, ok := seen[id]; ok {
				continue
			}
			seen[id] = struct{}{}
			out = append(out, id)
		}
	}
	return out
}

package ontology

import (
	"sort"
	"strings"
)

// normalizeWord lowercases a word and joins multiword forms with spaces.
func normalizeWord(word string) string {
	word = strings.ToLower(strings.TrimSpace(word))
	return strings.ReplaceAll(word, "_", " ")
}

// Word returns the concepts a word maps to. An empty pos searches every
// part of speech. Entries whose class is not in the graph are skipped.
func (g *Graph) Word(word, pos string) []*Concept {
	word = normalizeWord(word)
	pos = strings.ToLower(strings.TrimSpace(pos))

	set := make(map[string]*Concept)
	collect := func(entries []wordEntry) {
		for _, e := range entries {
			if g.hidden(e) {
				continue
			}
			if c, ok := g.concepts[e.class]; ok {
				set[c.name] = c
			}
		}
	}

	if pos != "" {
		collect(g.words[pos][word])
	} else {
		for _, byWord := range g.words {
			collect(byWord[word])
		}
	}
	return sortConcepts(set)
}

// PartsOfSpeech lists the parts of speech present in the lexicon.
func (g *Graph) PartsOfSpeech() []string {
	out := make([]string, 0, len(g.words))
	for pos := range g.words {
		out = append(out, pos)
	}
	sort.Strings(out)
	return out
}

// Vocabulary returns the sorted words listed under pos.
func (g *Graph) Vocabulary(pos string) []string {
	byWord := g.words[strings.ToLower(strings.TrimSpace(pos))]
	out := make([]string, 0, len(byWord))
	for w, entries := range byWord {
		for _, e := range entries {
			if !g.hidden(e) {
				out = append(out, w)
				break
			}
		}
	}
	sort.Strings(out)
	return out
}

// PartOfSpeech returns every concept reachable from a word under pos.
func (g *Graph) PartOfSpeech(pos string) []*Concept {
	pos = strings.ToLower(strings.TrimSpace(pos))
	set := make(map[string]*Concept)
	for _, entries := range g.words[pos] {
		for _, e := range entries {
			if g.hidden(e) {
				continue
			}
			if c, ok := g.concepts[e.class]; ok {
				set[c.name] = c
			}
		}
	}
	return sortConcepts(set)
}

// hidden reports whether the stoplist, re-applied at lookup, masks e.
func (g *Graph) hidden(e wordEntry) bool {
	return g.opts.StoplistAtLookup && e.senseKey != "" && g.opts.Stoplist.Blocks(e.senseKey)
}

func sortConcepts(set map[string]*Concept) []*Concept {
	if len(set) == 0 {
		return nil
	}
	out := make([]*Concept, 0, len(set))
	for _, c := range set {
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].name < out[j].name })
	return out
}

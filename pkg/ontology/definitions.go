package ontology

import (
	"encoding/json"
	"fmt"
	"sort"
	"strings"
)

// definitionText renders definition payloads in a stable order.
func definitionText(defs []any) string {
	parts := make([]string, 0, len(defs))
	for _, d := range defs {
		b, err := json.Marshal(d)
		if err != nil {
			parts = append(parts, fmt.Sprint(d))
			continue
		}
		parts = append(parts, string(b))
	}
	sort.Strings(parts)
	return strings.Join(parts, "\n")
}

// SearchDefinitions returns concepts whose definition text contains text,
// case-insensitively. Empty text matches nothing.
func (g *Graph) SearchDefinitions(text string) []*Concept {
	text = strings.ToLower(strings.TrimSpace(text))
	text = strings.TrimPrefix(text, "d::")
	if text == "" {
		return nil
	}
	set := make(map[string]*Concept)
	for _, def := range g.defTexts {
		if !strings.Contains(strings.ToLower(def), text) {
			continue
		}
		for _, name := range g.definitions[def] {
			set[name] = g.concepts[name]
		}
	}
	return sortConcepts(set)
}

// SharedDefinitions returns the other concepts with exactly the same
// definition as c.
func (g *Graph) SharedDefinitions(c *Concept) []*Concept {
	if c == nil || c.definition == "" {
		return nil
	}
	set := make(map[string]*Concept)
	for _, name := range g.definitions[c.definition] {
		if name != c.name {
			set[name] = g.concepts[name]
		}
	}
	return sortConcepts(set)
}

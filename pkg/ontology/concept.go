package ontology

import (
	"strings"

	"github.com/dd0wney/cluso-ontology/pkg/senses"
)

// RootName is the name of the unique root concept.
const RootName = "root"

// NamePrefix tags concept names in queries and rendering.
const NamePrefix = "ont::"

// NormalizeName lowercases a concept name and strips the "ont::" tag.
func NormalizeName(name string) string {
	name = strings.ToLower(strings.TrimSpace(name))
	return strings.TrimPrefix(name, NamePrefix)
}

// Concept is a node of the hierarchy. Relations are held by name and
// resolved through the owning Graph.
type Concept struct {
	name         string
	parent       string
	children     []string
	words        []string
	senseKeys    []string
	restrictions []Restriction
	frame        Frame
	definitions  []any
	definition   string
	depth        int
	g            *Graph
}

func (c *Concept) Name() string { return c.name }

// String renders the concept as "ont::name".
func (c *Concept) String() string { return NamePrefix + c.name }

func (c *Concept) IsRoot() bool { return c.name == RootName }

// ParentName is empty for the root.
func (c *Concept) ParentName() string { return c.parent }

// Parent returns nil for the root.
func (c *Concept) Parent() *Concept {
	if c.parent == "" {
		return nil
	}
	return c.g.Get(c.parent)
}

// ChildNames returns the declared and implied children in order.
func (c *Concept) ChildNames() []string {
	return append([]string(nil), c.children...)
}

// Children resolves ChildNames, skipping names unknown to the graph.
func (c *Concept) Children() []*Concept {
	out := make([]*Concept, 0, len(c.children))
	for _, name := range c.children {
		if child := c.g.Get(name); child != nil {
			out = append(out, child)
		}
	}
	return out
}

// Words returns the "word.pos" entries that map to this concept.
func (c *Concept) Words() []string {
	return append([]string(nil), c.words...)
}

// SenseKeys returns the normalized external sense keys anchored here.
func (c *Concept) SenseKeys() []string {
	return append([]string(nil), c.senseKeys...)
}

func (c *Concept) Restrictions() []Restriction {
	return append([]Restriction(nil), c.restrictions...)
}

// Restriction returns the restriction for role, if any.
func (c *Concept) Restriction(role string) (Restriction, bool) {
	role = strings.ToLower(strings.TrimSpace(role))
	for _, r := range c.restrictions {
		if r.role == role {
			return r, true
		}
	}
	return Restriction{}, false
}

func (c *Concept) Frame() Frame { return c.frame }

// Definitions returns the raw definition payloads.
func (c *Concept) Definitions() []any {
	return append([]any(nil), c.definitions...)
}

// DefinitionText is the canonical text form used for definition search.
func (c *Concept) DefinitionText() string { return c.definition }

// Depth is the number of edges to the root.
func (c *Concept) Depth() int { return c.depth }

// Synsets resolves the concept's sense keys through the sense provider.
func (c *Concept) Synsets() []senses.SynsetID {
	p := c.g.senses.Provider()
	if p == nil {
		return nil
	}
	out := make([]senses.SynsetID, 0, len(c.senseKeys))
	seen := make(map[senses.SynsetID]struct{}, len(c.senseKeys))
	for _, key := range c.senseKeys {
		id, ok := p.Synset(key)
		if !ok {
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}

// ConceptView is a flat, serializable description of a concept.
type ConceptView struct {
	Name         string              `json:"name" yaml:"name"`
	Parent       string              `json:"parent,omitempty" yaml:"parent,omitempty"`
	Children     []string            `json:"children,omitempty" yaml:"children,omitempty"`
	Depth        int                 `json:"depth" yaml:"depth"`
	Words        []string            `json:"words,omitempty" yaml:"words,omitempty"`
	SenseKeys    []string            `json:"sense_keys,omitempty" yaml:"sense_keys,omitempty"`
	Restrictions map[string][]string `json:"restrictions,omitempty" yaml:"restrictions,omitempty"`
	FrameType    string              `json:"frame_type" yaml:"frame_type"`
	Features     map[string]any      `json:"features,omitempty" yaml:"features,omitempty"`
	Definition   string              `json:"definition,omitempty" yaml:"definition,omitempty"`
	Significant  bool                `json:"significant" yaml:"significant"`
}

// Describe snapshots the concept for display.
func (c *Concept) Describe() ConceptView {
	v := ConceptView{
		Name:        c.name,
		Parent:      c.parent,
		Children:    c.ChildNames(),
		Depth:       c.depth,
		Words:       c.Words(),
		SenseKeys:   c.SenseKeys(),
		FrameType:   c.frame.Type(),
		Features:    c.frame.Effective(),
		Definition:  c.definition,
		Significant: c.g.IsSignificant(c),
	}
	if len(c.restrictions) > 0 {
		v.Restrictions = make(map[string][]string, len(c.restrictions))
		for _, r := range c.restrictions {
			names := make([]string, 0, len(r.targets))
			for _, t := range r.Targets() {
				names = append(names, t.name)
			}
			v.Restrictions[r.role] = names
		}
	}
	return v
}

package ontology

import (
	"sort"
	"strings"
)

// Restriction is the set of concepts allowed to fill one argument role.
// Targets resolve lazily through the graph; unknown names drop out.
type Restriction struct {
	role        string
	targets     []string
	optionality string
	g           *Graph
}

func newRestriction(g *Graph, role string, terms []any, optionality string) Restriction {
	set := make(map[string]struct{})
	add := func(name string) {
		if name = NormalizeName(name); name != "" {
			set[name] = struct{}{}
		}
	}
	for _, term := range terms {
		switch v := term.(type) {
		case string:
			add(v)
		case []string:
			for i := 2; i < len(v); i++ {
				add(v[i])
			}
		case []any:
			for i := 2; i < len(v); i++ {
				if s, ok := v[i].(string); ok {
					add(s)
				}
			}
		}
	}

	targets := make([]string, 0, len(set))
	for name := range set {
		targets = append(targets, name)
	}
	sort.Strings(targets)

	return Restriction{
		role:        strings.ToLower(strings.TrimSpace(role)),
		targets:     targets,
		optionality: optionality,
		g:           g,
	}
}

func (r Restriction) Role() string { return r.role }

func (r Restriction) Optionality() string { return r.optionality }

// TargetNames returns the declared target names, normalized and sorted.
func (r Restriction) TargetNames() []string {
	return append([]string(nil), r.targets...)
}

// Targets returns the target concepts that exist in the graph.
func (r Restriction) Targets() []*Concept {
	out := make([]*Concept, 0, len(r.targets))
	for _, name := range r.targets {
		if c := r.g.Get(name); c != nil {
			out = append(out, c)
		}
	}
	return out
}

func (r Restriction) String() string {
	targets := r.Targets()
	names := make([]string, len(targets))
	for i, t := range targets {
		names[i] = t.String()
	}
	return "[:" + r.role + " " + strings.Join(names, ", ") + "]"
}

// rolePairs is the set of resolved (role, target) pairs of a concept. A role
// without resolvable targets still contributes a pair with an empty target.
func rolePairs(restrictions []Restriction) map[[2]string]struct{} {
	pairs := make(map[[2]string]struct{})
	for _, r := range restrictions {
		targets := r.Targets()
		if len(targets) == 0 {
			pairs[[2]string{r.role, ""}] = struct{}{}
			continue
		}
		for _, t := range targets {
			pairs[[2]string{r.role, t.name}] = struct{}{}
		}
	}
	return pairs
}

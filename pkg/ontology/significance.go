package ontology

// Differs reports whether two concepts are semantically distinguishable:
// their frames differ or their resolved (role, target) pairs differ.
func Differs(a, b *Concept) bool {
	if a.frame.Differs(b.frame) {
		return true
	}
	pa, pb := rolePairs(a.restrictions), rolePairs(b.restrictions)
	if len(pa) != len(pb) {
		return true
	}
	for p := range pa {
		if _, ok := pb[p]; !ok {
			return true
		}
	}
	return false
}

// IsSignificant reports whether c differs from its parent. The root is
// always significant.
func (g *Graph) IsSignificant(c *Concept) bool {
	p := c.Parent()
	return p == nil || Differs(c, p)
}

// Significant returns the nearest significant ancestor-or-self of c.
func (g *Graph) Significant(c *Concept) *Concept {
	cur := c
	for !g.IsSignificant(cur) {
		cur = cur.Parent()
	}
	return cur
}

// SignificantChildren returns the significant concepts directly below c,
// looking through insignificant children.
func (g *Graph) SignificantChildren(c *Concept) []*Concept {
	return g.significantChildren(c, map[string]struct{}{c.name: {}})
}

func (g *Graph) significantChildren(c *Concept, seen map[string]struct{}) []*Concept {
	var out []*Concept
	for _, child := range c.Children() {
		if _, dup := seen[child.name]; dup {
			continue
		}
		seen[child.name] = struct{}{}
		if g.IsSignificant(child) {
			out = append(out, child)
			continue
		}
		out = append(out, g.significantChildren(child, seen)...)
	}
	return out
}

// SignificantAncestors returns the significant proper ancestors of c,
// nearest first.
func (g *Graph) SignificantAncestors(c *Concept) []*Concept {
	var out []*Concept
	for _, a := range c.Ancestors() {
		if g.IsSignificant(a) {
			out = append(out, a)
		}
	}
	return out
}

// SignificantDescendants returns the significant concepts anywhere below c.
func (g *Graph) SignificantDescendants(c *Concept) []*Concept {
	var out []*Concept
	for _, d := range c.Descendants() {
		if g.IsSignificant(d) {
			out = append(out, d)
		}
	}
	return out
}

package ontology

// PathToRoot returns c and its ancestors, ending at the root.
func (c *Concept) PathToRoot() []*Concept {
	path := make([]*Concept, 0, c.depth+1)
	for cur := c; cur != nil; cur = cur.Parent() {
		path = append(path, cur)
	}
	return path
}

// Ancestors returns the proper ancestors of c, nearest first.
func (c *Concept) Ancestors() []*Concept {
	return c.PathToRoot()[1:]
}

// Descendants returns every concept below c in depth-first order. Each
// concept is visited once.
func (c *Concept) Descendants() []*Concept {
	var out []*Concept
	seen := map[string]struct{}{c.name: {}}
	stack := []*Concept{c}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if n != c {
			if _, dup := seen[n.name]; dup {
				continue
			}
			seen[n.name] = struct{}{}
			out = append(out, n)
		}
		kids := n.Children()
		for i := len(kids) - 1; i >= 0; i-- {
			stack = append(stack, kids[i])
		}
	}
	return out
}

// Subsumes reports whether c is a proper ancestor of other. A concept does
// not subsume itself and nothing subsumes the root.
func (c *Concept) Subsumes(other *Concept) bool {
	if c == nil || other == nil {
		return false
	}
	for cur := other; cur != nil && !cur.IsRoot(); cur = cur.Parent() {
		if cur.parent == c.name {
			return true
		}
	}
	return false
}

// SubsumesOrEqual reports whether other is c or one of its descendants.
func (c *Concept) SubsumesOrEqual(other *Concept) bool {
	return c != nil && other != nil && (c.name == other.name || c.Subsumes(other))
}

// LCS returns the deepest concept that is an ancestor-or-self of both.
func (c *Concept) LCS(other *Concept) *Concept {
	a, b := c.PathToRoot(), other.PathToRoot()
	var lcs *Concept
	for i, j := len(a)-1, len(b)-1; i >= 0 && j >= 0; i, j = i-1, j-1 {
		if a[i].name != b[j].name {
			break
		}
		lcs = a[i]
	}
	return lcs
}

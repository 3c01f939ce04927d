package ontology

import "fmt"

// Operand resolves a comparison operand: a *Concept (possibly from another
// build, matched by name) or a concept name.
func (g *Graph) Operand(x any) (*Concept, error) {
	switch v := x.(type) {
	case *Concept:
		if v == nil {
			return nil, fmt.Errorf("%w: nil concept", ErrOperandType)
		}
		if v.g == g {
			return v, nil
		}
		if c := g.Get(v.name); c != nil {
			return c, nil
		}
		return nil, fmt.Errorf("%w: %s", ErrConceptNotFound, v)
	case string:
		if c := g.Get(v); c != nil {
			return c, nil
		}
		return nil, fmt.Errorf("%w: %q", ErrConceptNotFound, v)
	default:
		return nil, fmt.Errorf("%w: %T", ErrOperandType, x)
	}
}

func (g *Graph) operands(a, b any) (*Concept, *Concept, error) {
	ca, err := g.Operand(a)
	if err != nil {
		return nil, nil, err
	}
	cb, err := g.Operand(b)
	if err != nil {
		return nil, nil, err
	}
	return ca, cb, nil
}

// Subsumes reports whether a is a proper ancestor of b.
func (g *Graph) Subsumes(a, b any) (bool, error) {
	ca, cb, err := g.operands(a, b)
	if err != nil {
		return false, err
	}
	return ca.Subsumes(cb), nil
}

// LCS returns the lowest common subsumer of a and b.
func (g *Graph) LCS(a, b any) (*Concept, error) {
	ca, cb, err := g.operands(a, b)
	if err != nil {
		return nil, err
	}
	return ca.LCS(cb), nil
}

// Equal reports whether a and b name the same concept.
func (g *Graph) Equal(a, b any) (bool, error) {
	ca, cb, err := g.operands(a, b)
	if err != nil {
		return false, err
	}
	return ca == cb, nil
}

// Similarity scores a and b with m.
func (g *Graph) Similarity(a, b any, m Metric) (float64, error) {
	ca, cb, err := g.operands(a, b)
	if err != nil {
		return 0, err
	}
	return m.Score(ca, cb), nil
}

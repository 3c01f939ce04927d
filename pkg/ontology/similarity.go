package ontology

import (
	"fmt"
	"math"
	"strings"
)

// Metric selects a similarity measure.
type Metric int

const (
	MetricWuPalmer Metric = iota
	MetricCosine
	MetricPath
)

func (m Metric) String() string {
	switch m {
	case MetricWuPalmer:
		return "wup"
	case MetricCosine:
		return "cosine"
	case MetricPath:
		return "path"
	default:
		return fmt.Sprintf("metric(%d)", int(m))
	}
}

// ParseMetric accepts "wup", "cosine" or "path".
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "wup", "wu-palmer", "wupalmer", "":
		return MetricWuPalmer, nil
	case "cosine":
		return MetricCosine, nil
	case "path":
		return MetricPath, nil
	default:
		return 0, fmt.Errorf("unknown similarity metric %q", s)
	}
}

// PathLength is the number of edges between a and b through their LCS.
func PathLength(a, b *Concept) int {
	lcs := a.LCS(b)
	return a.depth + b.depth - 2*lcs.depth
}

// WuPalmer is 2*depth(lcs) / (depth(a)+depth(b)); two roots score 1.
func WuPalmer(a, b *Concept) float64 {
	total := a.depth + b.depth
	if total == 0 {
		return 1
	}
	return 2 * float64(a.LCS(b).depth) / float64(total)
}

// Cosine is depth(lcs) / sqrt(depth(a)*depth(b)). When either concept is the
// root the score is 1 for identical concepts and 0 otherwise.
func Cosine(a, b *Concept) float64 {
	if a.depth == 0 || b.depth == 0 {
		if a.name == b.name {
			return 1
		}
		return 0
	}
	return float64(a.LCS(b).depth) / math.Sqrt(float64(a.depth)*float64(b.depth))
}

// Score applies m to a and b. The path metric is reported as 1/(1+length).
func (m Metric) Score(a, b *Concept) float64 {
	switch m {
	case MetricCosine:
		return Cosine(a, b)
	case MetricPath:
		return 1 / (1 + float64(PathLength(a, b)))
	default:
		return WuPalmer(a, b)
	}
}

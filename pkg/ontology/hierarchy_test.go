package ontology

import (
	"fmt"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func names(cs []*Concept) []string {
	return Result{Concepts: cs}.Names()
}

func TestSubsumes(t *testing.T) {
	g := buildTestGraph(t)

	tests := []struct {
		a, b string
		want bool
	}{
		{"animal", "dog", true},
		{"root", "dog", true},
		{"mammal", "dog", true},
		{"dog", "animal", false},
		{"dog", "dog", false},
		{"dog", "cat", false},
		{"dog", "root", false},
		{"root", "root", false},
		{"situation", "bark-sound", true},
		{"phys-object", "bark-sound", false},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%s/%s", tt.a, tt.b), func(t *testing.T) {
			got, err := g.Subsumes(tt.a, tt.b)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPathToRoot(t *testing.T) {
	g := buildTestGraph(t)
	assert.Equal(t,
		[]string{"dog", "mammal", "animal", "living-thing", "phys-object", "root"},
		names(g.Get("dog").PathToRoot()))
	assert.Equal(t, []string{"root"}, names(g.Root().PathToRoot()))
	assert.Empty(t, g.Root().Ancestors())
}

func TestDescendants(t *testing.T) {
	g := buildTestGraph(t)
	assert.Equal(t,
		[]string{"animal", "mammal", "cat", "dog", "young-organism"},
		names(g.Get("living-thing").Descendants()))
	assert.Empty(t, g.Get("dog").Descendants())
}

func TestLCSAndSimilarity(t *testing.T) {
	g := buildTestGraph(t)

	tests := []struct {
		a, b   string
		lcs    string
		path   int
		wup    float64
		cosine float64
	}{
		{"dog", "cat", "mammal", 2, 0.8, 0.8},
		{"dog", "dog", "dog", 0, 1, 1},
		{"dog", "animal", "animal", 2, 0.75, 3 / math.Sqrt(15)},
		{"dog", "tree-part", "phys-object", 5, 2.0 / 7.0, 1 / math.Sqrt(10)},
		{"dog", "bark-sound", "root", 7, 0, 0},
		{"root", "root", "root", 0, 1, 1},
		{"root", "dog", "root", 5, 0, 0},
	}
	for _, tt := range tests {
		t.Run(tt.a+"/"+tt.b, func(t *testing.T) {
			a, b := g.Get(tt.a), g.Get(tt.b)

			lcs, err := g.LCS(a, b)
			require.NoError(t, err)
			assert.Equal(t, tt.lcs, lcs.Name())
			assert.Equal(t, tt.lcs, b.LCS(a).Name(), "LCS is symmetric")

			assert.Equal(t, tt.path, PathLength(a, b))
			assert.InDelta(t, tt.wup, WuPalmer(a, b), 1e-9)
			assert.InDelta(t, tt.cosine, Cosine(a, b), 1e-9)
		})
	}
}

func TestSimilarityMetrics(t *testing.T) {
	g := buildTestGraph(t)

	wup, err := g.Similarity("dog", "cat", MetricWuPalmer)
	require.NoError(t, err)
	assert.InDelta(t, 0.8, wup, 1e-9)

	path, err := g.Similarity("dog", "cat", MetricPath)
	require.NoError(t, err)
	assert.InDelta(t, 1.0/3.0, path, 1e-9)

	m, err := ParseMetric("Cosine")
	require.NoError(t, err)
	assert.Equal(t, MetricCosine, m)
	assert.Equal(t, "cosine", m.String())

	_, err = ParseMetric("jaccard")
	assert.Error(t, err)
}

func TestOperands(t *testing.T) {
	g := buildTestGraph(t)
	other := buildTestGraph(t)

	eq, err := g.Equal("ont::dog", other.Get("dog"))
	require.NoError(t, err, "concepts from another build resolve by name")
	assert.True(t, eq)

	eq, err = g.Equal("dog", "cat")
	require.NoError(t, err)
	assert.False(t, eq)

	_, err = g.Subsumes("dog", "unicorn")
	assert.True(t, IsNotFound(err))
	assert.False(t, IsConstructionError(err))

	_, err = g.LCS(42, "dog")
	assert.ErrorIs(t, err, ErrOperandType)

	_, err = g.Similarity((*Concept)(nil), "dog", MetricWuPalmer)
	assert.ErrorIs(t, err, ErrOperandType)
}

func TestSignificance(t *testing.T) {
	g := buildTestGraph(t)

	significant := map[string]bool{
		"root":           true,
		"phys-object":    true,
		"living-thing":   true,
		"animal":         true,
		"mammal":         false,
		"cat":            false,
		"dog":            true,
		"young-organism": false,
		"tree-part":      true,
		"situation":      false,
		"bark-sound":     true,
	}
	for name, want := range significant {
		assert.Equal(t, want, g.IsSignificant(g.Get(name)), name)
	}

	assert.Equal(t, "animal", g.Significant(g.Get("cat")).Name())
	assert.Equal(t, "animal", g.Significant(g.Get("mammal")).Name())
	assert.Equal(t, "dog", g.Significant(g.Get("dog")).Name())
	assert.Equal(t, "root", g.Significant(g.Root()).Name())

	assert.Equal(t, []string{"dog"}, names(g.SignificantChildren(g.Get("animal"))))
	assert.Equal(t, []string{"animal"}, names(g.SignificantChildren(g.Get("living-thing"))))
	assert.Equal(t,
		[]string{"animal", "living-thing", "phys-object", "root"},
		names(g.SignificantAncestors(g.Get("dog"))))
	assert.Equal(t, []string{"animal", "dog"}, names(g.SignificantDescendants(g.Get("living-thing"))))
}

func TestFrame(t *testing.T) {
	f := NewFrame("", map[string]any{"Origin": "living", "form": "animal"}, map[string]any{"form": "pet"})
	assert.Equal(t, DefaultFrameType, f.Type())
	assert.Equal(t, map[string]any{"origin": "living", "form": "pet"}, f.Effective(), "defaults override features")
	assert.Equal(t, []string{"form", "origin"}, f.FeatureNames())

	same := NewFrame("phys-obj", map[string]any{"origin": "living", "form": "pet"}, nil)
	assert.False(t, f.Differs(same), "type tags are not compared")

	wider := NewFrame("", map[string]any{"origin": "living", "form": "pet", "size": "small"}, nil)
	assert.True(t, f.SubsumedBy(wider))
	assert.False(t, wider.SubsumedBy(f))
	assert.True(t, f.Differs(wider))

	typed := NewFrame("", map[string]any{"type": "a"}, nil)
	retyped := NewFrame("", map[string]any{"type": "b"}, nil)
	assert.False(t, typed.Differs(retyped), "the type feature only needs to be present")
}

func TestDefinitions(t *testing.T) {
	concepts := testConcepts()
	concepts = append(concepts, concepts[5])
	concepts[len(concepts)-1].Name = "hound-type"
	concepts[len(concepts)-1].SenseKeys = nil

	g, err := Build(concepts, testLexicon(), testOptions(t))
	require.NoError(t, err)

	dog := g.Get("dog")
	assert.Equal(t, `{"text":"a domesticated Canine"}`, dog.DefinitionText())
	assert.Equal(t, []string{"hound-type"}, names(g.SharedDefinitions(dog)))
	assert.Equal(t, []string{"dog", "hound-type"}, names(g.SearchDefinitions("d::domesticated")))
	assert.Empty(t, g.SearchDefinitions(""))
	assert.Empty(t, g.SharedDefinitions(g.Get("cat")))
}

func TestDefinitionText_Stable(t *testing.T) {
	a := definitionText([]any{map[string]any{"b": 1, "a": 2}, "plain"})
	b := definitionText([]any{"plain", map[string]any{"a": 2, "b": 1}})
	assert.Equal(t, a, b)
	assert.Equal(t, "\"plain\"\n{\"a\":2,\"b\":1}", a)
}

func TestDescendants_VisitsEachConceptOnce(t *testing.T) {
	g := &Graph{concepts: make(map[string]*Concept)}
	for _, c := range []*Concept{
		{name: "a", parent: RootName, children: []string{"b"}, g: g},
		{name: "b", parent: "a", children: []string{"a", "c"}, g: g},
		{name: "c", parent: "b", children: []string{"b"}, g: g},
	} {
		g.concepts[c.name] = c
	}

	assert.Equal(t, []string{"b", "c"}, names(g.Get("a").Descendants()))
	assert.Equal(t, []string{"a", "c"}, names(g.Get("b").Descendants()))
}

package ontology

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-ontology/pkg/records"
	"github.com/dd0wney/cluso-ontology/pkg/senses"
)

// animalFrame is shared by animal, mammal and cat so the latter two are not
// significant.
func animalFrame() *records.Sem {
	return &records.Sem{Type: "phys-obj", Features: map[string]any{"origin": "living", "form": "animal"}}
}

// testConcepts builds:
//
//	root
//	├── phys-object
//	│   ├── living-thing            organism%1:03:00::
//	│   │   ├── animal              animal%1:03:00::
//	│   │   │   └── mammal          mammal%1:05:00::
//	│   │   │       ├── cat
//	│   │   │       └── dog         dog%1:05:00::
//	│   │   │           └── gloss-dog (dropped unless UseGloss)
//	│   │   │               └── gloss-dog-kid
//	│   │   └── young-organism      puppy%1:05:00::
//	│   └── tree-part
//	└── situation
//	    └── bark-sound
func testConcepts() []records.Concept {
	return []records.Concept{
		{Name: "phys-object", Sem: &records.Sem{Type: "phys-obj", Features: map[string]any{"origin": "any"}}},
		{Name: "living-thing", Parent: "phys-object", Sem: &records.Sem{Type: "phys-obj", Features: map[string]any{"origin": "living"}}, SenseKeys: []string{"organism%1:03:00::"}},
		{Name: "ONT::animal", Parent: "ont::living-thing", Sem: animalFrame(), SenseKeys: []string{"animal%1:03:00::"}},
		{Name: "mammal", Parent: "animal", Sem: animalFrame(), SenseKeys: []string{"mammal%1:05:00::"}},
		{Name: "cat", Parent: "mammal", Sem: animalFrame()},
		{
			Name:   "dog",
			Parent: "mammal",
			Sem: &records.Sem{
				Type:     "phys-obj",
				Features: map[string]any{"origin": "living", "form": "animal"},
				Default:  map[string]any{"size": "medium"},
			},
			SenseKeys:   []string{"dog%1:05:00::"},
			Definitions: []any{map[string]any{"text": "a domesticated Canine"}},
		},
		{Name: "gloss-dog", Parent: "dog"},
		{Name: "gloss-dog-kid", Parent: "gloss-dog"},
		{Name: "young-organism", Parent: "living-thing", Sem: &records.Sem{Type: "phys-obj", Features: map[string]any{"origin": "living"}}, SenseKeys: []string{"puppy%1:05:00::"}},
		{Name: "tree-part", Parent: "phys-object", Sem: &records.Sem{Type: "phys-obj", Features: map[string]any{"origin": "natural"}}},
		{Name: "situation", Sem: &records.Sem{Type: "situation"}},
		{
			Name:      "bark-sound",
			Parent:    "situation",
			Sem:       &records.Sem{Type: "situation"},
			Arguments: []records.Argument{{Role: "ONT::agent", Restrictions: []any{"ont::animal", []any{"or", "x", "ont::ghost"}}}},
		},
	}
}

func testLexicon() []records.Lexicon {
	return []records.Lexicon{
		{Word: "dog", Senses: []records.LexicalSense{{POS: "n", ParentClass: "dog", SenseKey: "dog%1:05:00::"}}},
		{Word: "bark", Senses: []records.LexicalSense{
			{POS: "v", ParentClass: "bark-sound"},
			{POS: "n", ParentClass: "ont::tree-part", SenseKey: "bark%1:20:00::"},
		}},
		{Word: "cat", Senses: []records.LexicalSense{{POS: "n", ParentClass: "cat"}, {POS: "n", ParentClass: "unknown-class"}}},
		{Word: "hound", Senses: []records.LexicalSense{{POS: "n", ParentClass: "dog", SenseKey: "hound%1:05:00::"}}},
		{Word: "thing", Senses: []records.LexicalSense{{POS: "n"}}},
	}
}

// testSynsets mirrors a slice of the external sense graph:
//
//	entity -> organism -> animal -> mammal -> {cat, dog}
//	puppy is a hyponym of dog; fido is an instance of dog
func testSynsets() []records.Synset {
	return []records.Synset{
		{ID: "entity.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "entity", Key: "entity%1:03:00::"}}},
		{ID: "organism.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "organism", Key: "organism%1:03:00::"}}, Hypernyms: []string{"entity.n.01"}},
		{ID: "animal.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "animal", Key: "animal%1:03:00::"}}, Hypernyms: []string{"organism.n.01"}},
		{ID: "mammal.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "mammal", Key: "mammal%1:05:00::"}}, Hypernyms: []string{"animal.n.01"}},
		{ID: "cat.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "cat", Key: "cat%1:05:00::"}, {Name: "true_cat", Key: "true_cat%1:05:00::"}}, Hypernyms: []string{"mammal.n.01"}},
		{ID: "dog.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "dog", Key: "dog%1:05:00::"}}, Hypernyms: []string{"mammal.n.01"}},
		{ID: "puppy.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "puppy", Key: "puppy%1:05:00::"}}, Hypernyms: []string{"dog.n.01"}},
		{ID: "fido.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "fido", Key: "fido%1:18:00::"}}, InstanceHypernyms: []string{"dog.n.01"}},
		{ID: "bark.v.01", POS: "v", Lemmas: []records.Lemma{{Name: "bark", Key: "bark%2:32:00::"}}},
		{ID: "bark.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "bark", Key: "bark%1:20:00::"}}},
	}
}

func testProvider(t *testing.T) senses.Provider {
	t.Helper()
	p, err := senses.NewMemoryGraph(testSynsets())
	require.NoError(t, err)
	return p
}

func testOptions(t *testing.T) Options {
	opts := DefaultOptions()
	opts.Provider = testProvider(t)
	opts.Stoplist = senses.NewStoplist([]string{"hound%1:05:00::"}, nil)
	return opts
}

func buildTestGraph(t *testing.T, mutate ...func(*Options)) *Graph {
	t.Helper()
	opts := testOptions(t)
	for _, m := range mutate {
		m(&opts)
	}
	g, err := Build(testConcepts(), testLexicon(), opts)
	require.NoError(t, err)
	return g
}

// countingProvider counts synset expansions to observe cache behaviour.
type countingProvider struct {
	senses.Provider
	lemmaCalls int
}

func (c *countingProvider) Lemmas(id senses.SynsetID) []senses.Lemma {
	c.lemmaCalls++
	return c.Provider.Lemmas(id)
}

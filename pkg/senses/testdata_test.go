package senses

import (
	"testing"

	"github.com/dd0wney/cluso-ontology/pkg/records"
)

// animalSynsets is a small sense graph:
//
//	entity -> organism -> animal -> mammal -> {cat, dog}
//	fido is an instance of dog; puppy is a hyponym of dog
func animalSynsets() []records.Synset {
	return []records.Synset{
		{ID: "entity.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "entity", Key: "entity%1:03:00::"}}},
		{ID: "organism.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "organism", Key: "organism%1:03:00::"}, {Name: "being", Key: "being%1:03:00::"}}, Hypernyms: []string{"entity.n.01"}},
		{ID: "animal.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "animal", Key: "animal%1:03:00::"}}, Hypernyms: []string{"organism.n.01"}},
		{ID: "mammal.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "mammal", Key: "mammal%1:05:00::"}}, Hypernyms: []string{"animal.n.01"}},
		{ID: "cat.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "cat", Key: "cat%1:05:00::"}, {Name: "true_cat", Key: "true_cat%1:05:00::"}}, Hypernyms: []string{"mammal.n.01"}, Definition: "feline mammal usually having thick soft fur"},
		{ID: "dog.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "dog", Key: "dog%1:05:00::"}}, Hypernyms: []string{"mammal.n.01"}},
		{ID: "puppy.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "puppy", Key: "puppy%1:05:00::"}}, Hypernyms: []string{"dog.n.01"}},
		{ID: "fido.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "fido", Key: "fido%1:18:00::"}}, InstanceHypernyms: []string{"dog.n.01"}},
		{ID: "bark.v.01", POS: "v", Lemmas: []records.Lemma{{Name: "bark", Key: "bark%2:32:00::"}}},
		{ID: "bark.n.01", POS: "n", Lemmas: []records.Lemma{{Name: "bark", Key: "bark%1:20:00::"}}},
	}
}

func newAnimalGraph(t *testing.T) *MemoryGraph {
	t.Helper()
	g, err := NewMemoryGraph(animalSynsets())
	if err != nil {
		t.Fatalf("NewMemoryGraph failed: %v", err)
	}
	return g
}

// countingProvider wraps a Provider and counts synset expansions.
type countingProvider struct {
	Provider
	lemmaCalls int
}

func (c *countingProvider) Lemmas(id SynsetID) []Lemma {
	c.lemmaCalls++
	return c.Provider.Lemmas(id)
}

package senses

import (
	"strings"
	"testing"

	"github.com/dd0wney/cluso-ontology/pkg/records"
)

func TestMemoryGraph_Lookups(t *testing.T) {
	g := newAnimalGraph(t)

	if g.Len() != 10 {
		t.Errorf("Len() = %d, want 10", g.Len())
	}
	if g.EdgeCount() != 7 {
		t.Errorf("EdgeCount() = %d, want 7", g.EdgeCount())
	}

	id, ok := g.Synset("wn::TRUE_CAT%1:05:00")
	if !ok || id != "cat.n.01" {
		t.Errorf("Synset(true_cat) = %q, %v", id, ok)
	}
	if _, ok := g.Synset("unicorn%1:05:00::"); ok {
		t.Error("unknown key should miss")
	}

	if got := g.Synsets("bark", ""); len(got) != 2 {
		t.Errorf("Synsets(bark) = %v", got)
	}
	if got := g.Synsets("Bark", "v"); len(got) != 1 || got[0] != "bark.v.01" {
		t.Errorf("Synsets(bark, v) = %v", got)
	}
	if got := g.Synsets("true cat", "n"); len(got) != 1 {
		t.Errorf("Synsets(true cat) = %v", got)
	}

	if got := g.Hyponyms("mammal.n.01"); len(got) != 2 || got[0] != "cat.n.01" || got[1] != "dog.n.01" {
		t.Errorf("Hyponyms(mammal) = %v", got)
	}
	if got := g.InstanceHyponyms("dog.n.01"); len(got) != 1 || got[0] != "fido.n.01" {
		t.Errorf("InstanceHyponyms(dog) = %v", got)
	}
	if got := Broader(g, "fido.n.01"); len(got) != 1 || got[0] != "dog.n.01" {
		t.Errorf("Broader(fido) = %v", got)
	}
	if got := Narrower(g, "dog.n.01"); len(got) != 2 {
		t.Errorf("Narrower(dog) = %v", got)
	}
	if g.Definition("cat.n.01") == "" || g.POS("bark.v.01") != "v" {
		t.Error("definition/pos not recorded")
	}
	if g.Lemmas("missing") != nil || g.Hypernyms("missing") != nil {
		t.Error("unknown synset should yield nil")
	}
}

func TestMemoryGraph_Errors(t *testing.T) {
	tests := []struct {
		name    string
		recs    []records.Synset
		wantErr string
	}{
		{
			name:    "unknown hypernym",
			recs:    []records.Synset{{ID: "a", POS: "n", Lemmas: []records.Lemma{{Name: "a", Key: "a%1"}}, Hypernyms: []string{"b"}}},
			wantErr: "unknown hypernym",
		},
		{
			name: "duplicate synset",
			recs: []records.Synset{
				{ID: "a", POS: "n", Lemmas: []records.Lemma{{Name: "a", Key: "a%1"}}},
				{ID: "A", POS: "n", Lemmas: []records.Lemma{{Name: "b", Key: "b%1"}}},
			},
			wantErr: "duplicate synset",
		},
		{
			name: "shared key",
			recs: []records.Synset{
				{ID: "a", POS: "n", Lemmas: []records.Lemma{{Name: "a", Key: "a%1"}}},
				{ID: "b", POS: "n", Lemmas: []records.Lemma{{Name: "a", Key: "a%1::::"}}},
			},
			wantErr: "claimed by",
		},
		{
			name:    "malformed",
			recs:    []records.Synset{{ID: "a", POS: "n"}},
			wantErr: "synset 0",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewMemoryGraph(tt.recs)
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Fatalf("error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

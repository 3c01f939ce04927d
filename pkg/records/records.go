// Package records defines the already-parsed input shapes the ontology is
// built from: concept records, lexicon records, sense-graph synsets and
// stoplists. Field names follow the JSON export of the ontology and lexicon.
package records

// Concept is one ontology type as exported by the ontology source.
type Concept struct {
	Name        string     `json:"name" yaml:"name" validate:"required"`
	Parent      string     `json:"parent,omitempty" yaml:"parent,omitempty"`
	Children    []string   `json:"children,omitempty" yaml:"children,omitempty" validate:"dive,required"`
	Arguments   []Argument `json:"arguments,omitempty" yaml:"arguments,omitempty" validate:"dive"`
	Sem         *Sem       `json:"sem,omitempty" yaml:"sem,omitempty"`
	SenseKeys   []string   `json:"wordnet_sense_keys,omitempty" yaml:"wordnet_sense_keys,omitempty" validate:"dive,required"`
	Definitions []any      `json:"definitions,omitempty" yaml:"definitions,omitempty"`
}

// Argument is a semantic argument role with its restriction terms.
//
// A restriction term is either a concept name or a list whose elements from
// index 2 onward are concept names, e.g. ["or", "ont::x", "ont::y"] is read as
// targets starting after the operator and its first operand slot.
type Argument struct {
	Role         string `json:"role" yaml:"role" validate:"required"`
	Restrictions []any  `json:"restrictions,omitempty" yaml:"restrictions,omitempty"`
	Optionality  string `json:"optionality,omitempty" yaml:"optionality,omitempty"`
}

// Sem is the semantic feature frame of a concept.
type Sem struct {
	Type     string         `json:"type,omitempty" yaml:"type,omitempty"`
	Features map[string]any `json:"features,omitempty" yaml:"features,omitempty"`
	Default  map[string]any `json:"default,omitempty" yaml:"default,omitempty"`
}

// Lexicon is one surface word with its senses.
type Lexicon struct {
	Word   string         `json:"word" yaml:"word" validate:"required"`
	Senses []LexicalSense `json:"senses" yaml:"senses" validate:"dive"`
}

// LexicalSense maps a word under a part of speech to an ontology class.
// ParentClass may be empty; SenseKey is the external sense the entry was
// derived from, if any.
type LexicalSense struct {
	POS         string `json:"pos" yaml:"pos" validate:"required"`
	ParentClass string `json:"parent_class,omitempty" yaml:"parent_class,omitempty"`
	SenseKey    string `json:"sense_key,omitempty" yaml:"sense_key,omitempty"`
}

// Synset is one node of the external sense graph.
type Synset struct {
	ID                string   `json:"id" yaml:"id" validate:"required"`
	POS               string   `json:"pos" yaml:"pos" validate:"required"`
	Lemmas            []Lemma  `json:"lemmas" yaml:"lemmas" validate:"required,min=1,dive"`
	Hypernyms         []string `json:"hypernyms,omitempty" yaml:"hypernyms,omitempty"`
	InstanceHypernyms []string `json:"instance_hypernyms,omitempty" yaml:"instance_hypernyms,omitempty"`
	Definition        string   `json:"definition,omitempty" yaml:"definition,omitempty"`
}

// Lemma is a word form of a synset with its sense key.
type Lemma struct {
	Name string `json:"name" yaml:"name" validate:"required"`
	Key  string `json:"key" yaml:"key" validate:"required"`
}

// Stoplist holds sense keys excluded from indexing and keys that are kept
// even when excluded.
type Stoplist struct {
	Exclude []string `json:"exclude,omitempty" yaml:"exclude,omitempty"`
	Include []string `json:"include,omitempty" yaml:"include,omitempty"`
}

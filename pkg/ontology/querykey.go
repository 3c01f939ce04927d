package ontology

import (
	"strings"

	"github.com/dd0wney/cluso-ontology/pkg/senses"
)

// Query kinds, also used as metric and log labels.
const (
	KindConcept      = "concept"
	KindWord         = "word"
	KindSense        = "sense"
	KindSynset       = "synset"
	KindLookup       = "lookup"
	KindPartOfSpeech = "pos"
	KindDefinition   = "definition"
	KindResolved     = "resolved"
	KindInvalid      = "invalid"
)

// Key is a parsed query. The set of implementations is closed; Resolve
// switches over all of them.
type Key interface {
	Kind() string
	String() string
	cacheKey() string
}

// ConceptKey looks up a concept by name ("ont::name" or a bare name).
type ConceptKey struct{ Name string }

// WordKey looks up the concepts of a word ("w::word").
type WordKey struct{ Word, POS string }

// SenseKey looks up the concepts anchored at a sense key ("wn::key").
type SenseKey struct{ Key string }

// SynsetKey looks up the concepts reached from a synset.
type SynsetKey struct{ ID senses.SynsetID }

// LookupKey combines WordKey with the concepts of every sense of the word
// ("q::word").
type LookupKey struct{ Word, POS string }

// PartOfSpeechKey lists concepts and words for a part of speech ("p::pos").
type PartOfSpeechKey struct{ POS string }

// DefinitionKey searches definition text ("d::text").
type DefinitionKey struct{ Text string }

// ResolvedKey wraps an already resolved concept and returns it unchanged.
type ResolvedKey struct{ Concept *Concept }

// InvalidKey is a key that cannot match anything.
type InvalidKey struct{ Raw string }

func (ConceptKey) Kind() string      { return KindConcept }
func (WordKey) Kind() string         { return KindWord }
func (SenseKey) Kind() string        { return KindSense }
func (SynsetKey) Kind() string       { return KindSynset }
func (LookupKey) Kind() string       { return KindLookup }
func (PartOfSpeechKey) Kind() string { return KindPartOfSpeech }
func (DefinitionKey) Kind() string   { return KindDefinition }
func (ResolvedKey) Kind() string     { return KindResolved }
func (InvalidKey) Kind() string      { return KindInvalid }

func (k ConceptKey) String() string      { return NamePrefix + k.Name }
func (k WordKey) String() string         { return "w::" + k.Word + posSuffix(k.POS) }
func (k SenseKey) String() string        { return senses.KeyPrefix + k.Key }
func (k SynsetKey) String() string       { return string(k.ID) }
func (k LookupKey) String() string       { return "q::" + k.Word + posSuffix(k.POS) }
func (k PartOfSpeechKey) String() string { return "p::" + k.POS }
func (k DefinitionKey) String() string   { return "d::" + k.Text }
func (k InvalidKey) String() string      { return k.Raw }

func (k ResolvedKey) String() string {
	if k.Concept == nil {
		return ""
	}
	return k.Concept.String()
}

func posSuffix(pos string) string {
	if pos == "" {
		return ""
	}
	return " (" + pos + ")"
}

func (k ConceptKey) cacheKey() string      { return "ont\x00" + k.Name }
func (k WordKey) cacheKey() string         { return "w\x00" + k.Word + "\x00" + k.POS }
func (k SenseKey) cacheKey() string        { return "wn\x00" + k.Key }
func (k SynsetKey) cacheKey() string       { return "ss\x00" + string(k.ID) }
func (k LookupKey) cacheKey() string       { return "q\x00" + k.Word + "\x00" + k.POS }
func (k PartOfSpeechKey) cacheKey() string { return "p\x00" + k.POS }
func (k DefinitionKey) cacheKey() string   { return "d\x00" + k.Text }
func (k InvalidKey) cacheKey() string      { return "invalid\x00" + k.Raw }
func (ResolvedKey) cacheKey() string       { return "" }

// ParseKey parses a raw query. pos applies to word and lookup keys only;
// an unknown tag yields an InvalidKey.
func ParseKey(raw, pos string) Key {
	s := strings.ToLower(strings.TrimSpace(raw))
	pos = strings.ToLower(strings.TrimSpace(pos))
	if s == "" {
		return InvalidKey{Raw: raw}
	}

	tag, payload, tagged := strings.Cut(s, "::")
	if !tagged {
		return ConceptKey{Name: s}
	}
	payload = strings.TrimSpace(payload)
	if payload == "" {
		return InvalidKey{Raw: raw}
	}

	switch tag {
	case "ont":
		return ConceptKey{Name: payload}
	case "w":
		return WordKey{Word: normalizeWord(payload), POS: pos}
	case "wn":
		return SenseKey{Key: senses.NormalizeKey(payload)}
	case "q":
		return LookupKey{Word: normalizeWord(payload), POS: pos}
	case "p":
		return PartOfSpeechKey{POS: payload}
	case "d":
		return DefinitionKey{Text: payload}
	default:
		return InvalidKey{Raw: raw}
	}
}

// KeyOf converts a query operand into a Key. Strings are parsed, concepts
// pass through and anything else is invalid.
func KeyOf(x any) Key {
	switch v := x.(type) {
	case Key:
		return v
	case string:
		return ParseKey(v, "")
	case *Concept:
		if v == nil {
			return InvalidKey{}
		}
		return ResolvedKey{Concept: v}
	case senses.SynsetID:
		return SynsetKey{ID: v}
	default:
		return InvalidKey{}
	}
}

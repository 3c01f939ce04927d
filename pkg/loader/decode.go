package loader

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/dd0wney/cluso-ontology/pkg/records"
)

// rawConcept accepts both argument spellings found in ontology exports.
type rawConcept struct {
	Name        string        `json:"name"`
	Parent      string        `json:"parent"`
	Children    []string      `json:"children"`
	Arguments   []rawArgument `json:"arguments"`
	Sem         *records.Sem  `json:"sem"`
	SenseKeys   []string      `json:"wordnet_sense_keys"`
	Wordnet     []string      `json:"wordnet"`
	Definitions []any         `json:"definitions"`
}

type rawArgument struct {
	Role         string `json:"role"`
	Restrictions []any  `json:"restrictions"`
	Restriction  []any  `json:"restriction"`
	Optionality  any    `json:"optionality"`
}

func (r rawConcept) record(fallbackName string) records.Concept {
	c := records.Concept{
		Name:        r.Name,
		Parent:      r.Parent,
		Children:    r.Children,
		Sem:         r.Sem,
		SenseKeys:   r.SenseKeys,
		Definitions: r.Definitions,
	}
	if c.Name == "" {
		c.Name = fallbackName
	}
	if len(c.SenseKeys) == 0 {
		c.SenseKeys = r.Wordnet
	}
	for _, a := range r.Arguments {
		arg := records.Argument{Role: a.Role, Restrictions: a.Restrictions}
		if len(arg.Restrictions) == 0 {
			arg.Restrictions = a.Restriction
		}
		if a.Optionality != nil {
			arg.Optionality = fmt.Sprint(a.Optionality)
		}
		c.Arguments = append(c.Arguments, arg)
	}
	return c
}

// DecodeConcepts reads ontology records from a JSON array or from an object
// keyed by concept name. Keyed input is returned in name order.
func DecodeConcepts(data []byte) ([]records.Concept, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var raw []rawConcept
		if err := json.Unmarshal(data, &raw); err != nil {
			return nil, fmt.Errorf("decode ontology: %w", err)
		}
		out := make([]records.Concept, len(raw))
		for i, r := range raw {
			out[i] = r.record("")
		}
		return out, nil
	}

	var keyed map[string]rawConcept
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("decode ontology: %w", err)
	}
	names := sortedKeys(keyed)
	out := make([]records.Concept, 0, len(keyed))
	for _, name := range names {
		out = append(out, keyed[name].record(name))
	}
	return out, nil
}

// legacySense is one entry of the keyed lexicon shape
// {word: {pos: [{"sense": class}]}}.
type legacySense struct {
	Sense    string `json:"sense"`
	SenseKey string `json:"sense_key"`
}

// DecodeLexicon reads lexicon records from a JSON array or from the keyed
// word -> pos -> senses shape. Keyed input is returned in word order.
func DecodeLexicon(data []byte) ([]records.Lexicon, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}

	if data[0] == '[' {
		var out []records.Lexicon
		if err := json.Unmarshal(data, &out); err != nil {
			return nil, fmt.Errorf("decode lexicon: %w", err)
		}
		return out, nil
	}

	var keyed map[string]map[string][]legacySense
	if err := json.Unmarshal(data, &keyed); err != nil {
		return nil, fmt.Errorf("decode lexicon: %w", err)
	}
	out := make([]records.Lexicon, 0, len(keyed))
	for _, word := range sortedKeys(keyed) {
		entry := records.Lexicon{Word: word}
		byPOS := keyed[word]
		for _, pos := range sortedKeys(byPOS) {
			for _, s := range byPOS[pos] {
				entry.Senses = append(entry.Senses, records.LexicalSense{
					POS:         pos,
					ParentClass: s.Sense,
					SenseKey:    s.SenseKey,
				})
			}
		}
		out = append(out, entry)
	}
	return out, nil
}

// DecodeSynsets reads sense-graph records from a JSON array.
func DecodeSynsets(data []byte) ([]records.Synset, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return nil, nil
	}
	var out []records.Synset
	if err := json.Unmarshal(data, &out); err != nil {
		return nil, fmt.Errorf("decode senses: %w", err)
	}
	return out, nil
}

// DecodeStoplist reads a stoplist. JSON and YAML input is either a bare
// list of excluded keys or a document with exclude and include lists. Text
// input has one excluded key per line with "#" comments.
func DecodeStoplist(data []byte, kind string) (records.Stoplist, error) {
	switch kind {
	case "json":
		return decodeStructuredStoplist(data, json.Unmarshal)
	case "yaml":
		return decodeStructuredStoplist(data, yaml.Unmarshal)
	default:
		keys, err := decodeTextKeys(data)
		return records.Stoplist{Exclude: keys}, err
	}
}

func decodeStructuredStoplist(data []byte, unmarshal func([]byte, any) error) (records.Stoplist, error) {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return records.Stoplist{}, nil
	}
	var list []string
	if err := unmarshal(data, &list); err == nil {
		return records.Stoplist{Exclude: list}, nil
	}
	var doc records.Stoplist
	if err := unmarshal(data, &doc); err != nil {
		return records.Stoplist{}, fmt.Errorf("decode stoplist: %w", err)
	}
	return doc, nil
}

func decodeTextKeys(data []byte) ([]string, error) {
	var out []string
	scanner := bufio.NewScanner(bytes.NewReader(data))
	for scanner.Scan() {
		line := scanner.Text()
		if i := strings.IndexByte(line, '#'); i >= 0 {
			line = line[:i]
		}
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("decode key list: %w", err)
	}
	return out, nil
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

package loader

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-ontology/pkg/records"
)

func TestDecodeConcepts_Array(t *testing.T) {
	data := []byte(`[
	  {"name": "b", "parent": "a", "wordnet": ["x%1:00:00::"]},
	  {"name": "a", "arguments": [{"role": "agent", "restrictions": [["or", "", "ont::b"]]}]}
	]`)
	got, err := DecodeConcepts(data)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "b", got[0].Name, "array order is kept")
	assert.Equal(t, []string{"x%1:00:00::"}, got[0].SenseKeys, "legacy wordnet field")
	assert.Equal(t, []any{[]any{"or", "", "ont::b"}}, got[1].Arguments[0].Restrictions)
	assert.Empty(t, got[1].Arguments[0].Optionality)
}

func TestDecodeConcepts_Empty(t *testing.T) {
	got, err := DecodeConcepts([]byte("  \n"))
	require.NoError(t, err)
	assert.Nil(t, got)

	_, err = DecodeConcepts([]byte(`[{"name": 1}]`))
	assert.Error(t, err)
}

func TestDecodeLexicon_Array(t *testing.T) {
	data := []byte(`[{"word": "bark", "senses": [{"pos": "v", "parent_class": "bark-sound"}]}]`)
	got, err := DecodeLexicon(data)
	require.NoError(t, err)
	assert.Equal(t, []records.Lexicon{{
		Word:   "bark",
		Senses: []records.LexicalSense{{POS: "v", ParentClass: "bark-sound"}},
	}}, got)
}

func TestDecodeSynsets(t *testing.T) {
	got, err := DecodeSynsets([]byte(sensesJSON))
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, []string{"animal.n.01"}, got[1].Hypernyms)

	_, err = DecodeSynsets([]byte(`{}`))
	assert.Error(t, err)
}

func TestDecodeStoplist(t *testing.T) {
	tests := []struct {
		name string
		data string
		kind string
		want records.Stoplist
	}{
		{"json list", `["a%1:00:00::"]`, "json", records.Stoplist{Exclude: []string{"a%1:00:00::"}}},
		{"json document", `{"exclude": ["a"], "include": ["b"]}`, "json", records.Stoplist{Exclude: []string{"a"}, Include: []string{"b"}}},
		{"yaml list", "- a\n- b\n", "yaml", records.Stoplist{Exclude: []string{"a", "b"}}},
		{"yaml document", "include: [c]\n", "yaml", records.Stoplist{Include: []string{"c"}}},
		{"text", "a  # first\n\n  b\n# done\n", "text", records.Stoplist{Exclude: []string{"a", "b"}}},
		{"empty json", "", "json", records.Stoplist{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeStoplist([]byte(tt.data), tt.kind)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := DecodeStoplist([]byte(`{"exclude": 3}`), "json")
	assert.Error(t, err)
}

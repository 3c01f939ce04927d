package loader

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/golang/snappy"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dd0wney/cluso-ontology/pkg/ontology"
)

const ontologyJSON = `{
  "animal": {"name": "animal", "wordnet_sense_keys": ["animal%1:03:00::"]},
  "dog": {"parent": "ont::animal", "arguments": [{"role": "ont::figure", "restriction": ["ont::animal"], "optionality": false}],
          "definitions": [{"text": "a canine"}]},
  "cat": {"parent": "animal", "sem": {"type": "phys-obj", "features": {"origin": "living"}}}
}`

const lexiconJSON = `{
  "dog": {"n": [{"sense": "dog", "sense_key": "dog%1:05:00::"}]},
  "bark": {"v": [{"sense": "missing"}], "n": [{"sense": "animal"}]}
}`

const sensesJSON = `[
  {"id": "animal.n.01", "pos": "n", "lemmas": [{"name": "animal", "key": "animal%1:03:00::"}]},
  {"id": "dog.n.01", "pos": "n", "lemmas": [{"name": "dog", "key": "dog%1:05:00::"}], "hypernyms": ["animal.n.01"]}
]`

func writeFile(t *testing.T, dir, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, data, 0o600))
	return path
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	plain := writeFile(t, dir, "plain.json", []byte(`[1,2]`))
	packed := writeFile(t, dir, "packed.json.sz", snappy.Encode(nil, []byte(`[3]`)))
	empty := writeFile(t, dir, "empty.txt", nil)
	broken := writeFile(t, dir, "broken.sz", []byte("not snappy"))

	data, err := ReadFile(plain)
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(data))

	data, err = ReadFile(packed)
	require.NoError(t, err)
	assert.Equal(t, `[3]`, string(data))

	data, err = ReadFile(empty)
	require.NoError(t, err)
	assert.Empty(t, data)

	_, err = ReadFile(broken)
	assert.Error(t, err)

	_, err = ReadFile(filepath.Join(dir, "missing.json"))
	assert.Error(t, err)
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "json", format("a/stop.JSON"))
	assert.Equal(t, "json", format("stop.json.sz"))
	assert.Equal(t, "yaml", format("stop.yml"))
	assert.Equal(t, "text", format("stop.txt"))
	assert.Equal(t, "text", format("stop"))
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	paths := Paths{
		Ontology:  writeFile(t, dir, "ontology.json.sz", snappy.Encode(nil, []byte(ontologyJSON))),
		Lexicon:   writeFile(t, dir, "lexicon.json", []byte(lexiconJSON)),
		Senses:    writeFile(t, dir, "senses.json", []byte(sensesJSON)),
		Stoplist:  writeFile(t, dir, "stop.yaml", []byte("exclude:\n  - dog%1:05:00::\n  - cat%1:05:00::\n")),
		Allowlist: writeFile(t, dir, "allow.txt", []byte("# keep dogs\ndog%1:05:00::\n")),
	}

	b, err := Load(context.Background(), paths, nil)
	require.NoError(t, err)

	require.Len(t, b.Concepts, 3)
	assert.Equal(t, []string{"animal", "cat", "dog"}, []string{b.Concepts[0].Name, b.Concepts[1].Name, b.Concepts[2].Name})
	dog := b.Concepts[2]
	require.Len(t, dog.Arguments, 1)
	assert.Equal(t, []any{"ont::animal"}, dog.Arguments[0].Restrictions)
	assert.Equal(t, "false", dog.Arguments[0].Optionality)

	require.Len(t, b.Lexicon, 2)
	assert.Equal(t, "bark", b.Lexicon[0].Word)
	assert.Equal(t, "n", b.Lexicon[0].Senses[0].POS, "parts of speech are read in order")
	assert.Len(t, b.Synsets, 2)
	assert.Equal(t, []string{"dog%1:05:00::", "cat%1:05:00::"}, b.Stoplist.Exclude)
	assert.Equal(t, []string{"dog%1:05:00::"}, b.Stoplist.Include)

	g, err := b.Graph(ontology.DefaultOptions())
	require.NoError(t, err)
	assert.Equal(t, []string{"dog"}, g.Query("w::dog").Names(), "allow-listed sense survives")
	assert.Equal(t, []string{"animal"}, g.QueryPOS("w::bark", "").Names())
	assert.Equal(t, []string{"animal"}, g.Query("wn::dog%1:05:00").Names(), "climbs to the nearest anchored sense")
	assert.Equal(t, []string{"dog"}, g.Query("d::canine").Names())
}

func TestLoad_Errors(t *testing.T) {
	dir := t.TempDir()

	_, err := Load(context.Background(), Paths{}, nil)
	assert.Error(t, err)

	_, err = Load(context.Background(), Paths{Ontology: filepath.Join(dir, "nope.json")}, nil)
	assert.Error(t, err)

	bad := writeFile(t, dir, "bad.json", []byte(`{"dog": 3}`))
	_, err = Load(context.Background(), Paths{Ontology: bad}, nil)
	assert.ErrorContains(t, err, "bad.json")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	good := writeFile(t, dir, "good.json", []byte(`[]`))
	_, err = Load(ctx, Paths{Ontology: good}, nil)
	assert.ErrorIs(t, err, context.Canceled)
}

package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testOntology = `[
  {"name": "animal", "sem": {"features": {"form": "animal"}}},
  {"name": "dog", "parent": "animal", "sem": {"features": {"form": "animal"}, "default": {"size": "medium"}}},
  {"name": "cat", "parent": "animal", "sem": {"features": {"form": "animal"}}},
  {"name": "plant"}
]`

const testLexicon = `[{"word": "dog", "senses": [{"pos": "n", "parent_class": "dog"}]}]`

func fixture(t *testing.T) []string {
	t.Helper()
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("ONTOLOGY_CONFIG", "")
	dir := t.TempDir()
	ont := filepath.Join(dir, "ontology.json")
	lex := filepath.Join(dir, "lexicon.json")
	require.NoError(t, os.WriteFile(ont, []byte(testOntology), 0o600))
	require.NoError(t, os.WriteFile(lex, []byte(testLexicon), 0o600))
	return []string{"--ontology", ont, "--lexicon", lex}
}

func run(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd(&out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestQueryCommand(t *testing.T) {
	flags := fixture(t)

	out, err := run(t, "", append([]string{"query", "w::dog", "--pos", "n"}, flags...)...)
	require.NoError(t, err)
	assert.Equal(t, "ont::dog\n", out)

	out, err = run(t, "", append([]string{"query", "ont::unicorn"}, flags...)...)
	require.NoError(t, err)
	assert.Equal(t, "no match\n", out)

	out, err = run(t, "", append([]string{"--json", "query", "p::n"}, flags...)...)
	require.NoError(t, err)
	var got map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	assert.Equal(t, []any{"dog"}, got["concepts"])
	assert.Equal(t, []any{"dog"}, got["words"])
}

func TestLCSAndSimilarityCommands(t *testing.T) {
	flags := fixture(t)

	out, err := run(t, "", append([]string{"lcs", "dog", "cat"}, flags...)...)
	require.NoError(t, err)
	assert.Equal(t, "ont::animal (depth 1)\n", out)

	out, err = run(t, "", append([]string{"similarity", "dog", "cat", "--metric", "wup"}, flags...)...)
	require.NoError(t, err)
	assert.Equal(t, "wup 0.5000\n", out)

	_, err = run(t, "", append([]string{"lcs", "dog", "unicorn"}, flags...)...)
	assert.Error(t, err)

	_, err = run(t, "", append([]string{"similarity", "dog", "cat", "--metric", "jaccard"}, flags...)...)
	assert.Error(t, err)
}

func TestDescribeCommand(t *testing.T) {
	flags := fixture(t)

	out, err := run(t, "", append([]string{"--json", "describe", "dog"}, flags...)...)
	require.NoError(t, err)
	var view map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &view))
	assert.Equal(t, "dog", view["name"])
	assert.Equal(t, "animal", view["parent"])
	assert.Equal(t, true, view["significant"])
	assert.Equal(t, []any{"dog.n"}, view["words"])
}

func TestStatsCommand(t *testing.T) {
	flags := fixture(t)
	out, err := run(t, "", append([]string{"stats"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "concepts:   5\n")
	assert.Contains(t, out, "words:      1\n")
}

func TestMissingOntology(t *testing.T) {
	t.Setenv("ONTOLOGY_PATH", "")
	t.Setenv("ONTOLOGY_CONFIG", "")
	_, err := run(t, "", "query", "dog")
	assert.Error(t, err)
}

func TestRepl(t *testing.T) {
	flags := fixture(t)
	script := strings.Join([]string{
		"dog",
		"lcs dog cat",
		"subsumes animal dog",
		"significant cat",
		"pos n",
		"w::dog",
		"lcs dog",
		"exit",
	}, "\n")

	out, err := run(t, script, append([]string{"repl"}, flags...)...)
	require.NoError(t, err)
	assert.Contains(t, out, "Loaded 5 concepts")
	assert.Contains(t, out, "ont> ont::dog\n")
	assert.Contains(t, out, "ont> ont::animal\n")
	assert.Contains(t, out, "ont> true\n")
	assert.Contains(t, out, "ont> pos = \"n\"\n")
	assert.Contains(t, out, "error: usage: lcs <a> <b>")
	assert.Equal(t, 2, strings.Count(out, "ont> ont::animal\n"), "lcs and significant both land on animal")
}

func TestTagCommand(t *testing.T) {
	flags := fixture(t)

	out, err := run(t, "", append([]string{"tag", "the/DET", "dogs/NOUN/dog", "cat"}, flags...)...)
	require.NoError(t, err)
	assert.Equal(t, "the\t\ndogs\tont::dog\ncat\t\n", out)

	out, err = run(t, "dog/NOUN\n", append([]string{"--json", "tag"}, flags...)...)
	require.NoError(t, err)
	var got []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "n", got[0]["pos"])
	assert.Equal(t, []any{"ont::dog"}, got[0]["concepts"])
}

func TestParseToken(t *testing.T) {
	assert.Equal(t, "n", parseToken("dog").POS)
	tok := parseToken("ran/VERB/run")
	assert.Equal(t, "ran", tok.Text)
	assert.Equal(t, "VERB", tok.POS)
	assert.Equal(t, "run", tok.Lemma)
}

func TestCandidatesCommand(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")
	t.Setenv("ONTOLOGY_CONFIG", "")
	dir := t.TempDir()
	ont := filepath.Join(dir, "ontology.json")
	syn := filepath.Join(dir, "senses.json")
	require.NoError(t, os.WriteFile(ont, []byte(`[
  {"name": "animal", "wordnet_sense_keys": ["animal%1:03:00::"]},
  {"name": "dog", "parent": "animal"}
]`), 0o600))
	require.NoError(t, os.WriteFile(syn, []byte(`[
  {"id": "animal.n.01", "pos": "n", "lemmas": [{"name": "animal", "key": "animal%1:03:00::"}]},
  {"id": "dog.n.01", "pos": "n", "lemmas": [{"name": "dog", "key": "dog%1:05:00::"}], "hypernyms": ["animal.n.01"]}
]`), 0o600))
	flags := []string{"--ontology", ont, "--senses", syn}

	out, err := run(t, "", append([]string{"candidates", "animal", "dog", "--pos", "n"}, flags...)...)
	require.NoError(t, err)
	assert.Equal(t, "dog.n.01 2.00\n", out)

	out, err = run(t, "", append([]string{"candidates", "animal", "dog", "--synset-weight", "0.5"}, flags...)...)
	require.NoError(t, err)
	assert.Equal(t, "dog.n.01 1.00\n", out)

	out, err = run(t, "", append([]string{"candidates", "dog", "dog"}, flags...)...)
	require.NoError(t, err)
	assert.Equal(t, "no match\n", out)
}

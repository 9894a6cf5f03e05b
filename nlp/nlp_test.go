package nlp_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/future-architect/nlptour/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fieldsTokenizer struct{}

func (fieldsTokenizer) Tokenize(text string) []nlp.Token {
	return nlp.AlignTokens(text, strings.Fields(text))
}

func init() {
	nlp.Register(nlp.KindTokenizer, "test-fields", func(m *nlp.Manifest) (interface{}, error) {
		return fieldsTokenizer{}, nil
	})
	nlp.Register(nlp.KindTokenizer, "test-broken", func(m *nlp.Manifest) (interface{}, error) {
		return nil, errors.New("broken model")
	})
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadManifest(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "en-sent.yaml", `
kind: sentdetect
engine: punkt
language: en
data: training/english.json
params:
  abbrev: "Dr, Mr"
`)
	manifest, err := nlp.LoadManifest(path)
	require.NoError(t, err)
	assert.Equal(t, nlp.KindSentenceDetector, manifest.Kind)
	assert.Equal(t, "punkt", manifest.Engine)
	assert.Equal(t, path, manifest.Path())
	assert.Equal(t, filepath.Join(dir, "training", "english.json"), manifest.DataPath())
	assert.Equal(t, []string{"Dr", "Mr"}, manifest.ListParam("abbrev"))
	assert.Equal(t, "fallback", manifest.Param("missing", "fallback"))
}

func TestLoadManifest_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{
			name:    "unknown kind",
			content: "kind: parser\nengine: treebank\n",
		},
		{
			name:    "missing engine",
			content: "kind: tokenizer\n",
		},
		{
			name:    "broken yaml",
			content: "kind: [tokenizer\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeFile(t, t.TempDir(), "model.yaml", tt.content)
			_, err := nlp.LoadManifest(path)
			assert.Error(t, err)
		})
	}
}

func TestLoadManifest_Missing(t *testing.T) {
	_, err := nlp.LoadManifest(filepath.Join(t.TempDir(), "none.yaml"))
	assert.True(t, errors.Is(err, os.ErrNotExist))
}

func TestOpenTokenizer(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "xx-token.yaml", "kind: tokenizer\nengine: test-fields\n")
	tokenizer, err := nlp.OpenTokenizer(path)
	require.NoError(t, err)
	tokens := tokenizer.Tokenize("cats like milk")
	assert.Equal(t, []string{"cats", "like", "milk"}, nlp.Words(tokens))
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()

	path := writeFile(t, dir, "unknown.yaml", "kind: tokenizer\nengine: nothing\n")
	_, err := nlp.OpenTokenizer(path)
	assert.True(t, errors.Is(err, nlp.ErrUnknownEngine))

	path = writeFile(t, dir, "wrong-kind.yaml", "kind: tokenizer\nengine: test-fields\n")
	_, err = nlp.OpenTagger(path)
	assert.True(t, errors.Is(err, nlp.ErrKindMismatch))

	path = writeFile(t, dir, "broken.yaml", "kind: tokenizer\nengine: test-broken\n")
	_, err = nlp.OpenTokenizer(path)
	assert.EqualError(t, err, "can't open tokenizer model "+path+": broken model")
}

func TestEngines(t *testing.T) {
	assert.Equal(t, []string{"test-broken", "test-fields"}, nlp.Engines(nlp.KindTokenizer))
	assert.Empty(t, nlp.Engines(nlp.KindChunker))
}

func TestFindStemmer(t *testing.T) {
	_, err := nlp.FindStemmer("no-such-stemmer")
	assert.True(t, errors.Is(err, nlp.ErrUnknownEngine))
}

func TestAlignTokens(t *testing.T) {
	text := "Cats like milk. Cats!"
	tokens := nlp.AlignTokens(text, []string{"Cats", "like", "milk", ".", "Cats", "!", "``"})
	for _, token := range tokens[:6] {
		assert.Equal(t, token.Text, text[token.Start:token.End])
	}
	assert.Equal(t, 16, tokens[4].Start)
	assert.Equal(t, -1, tokens[6].Start)
	assert.Equal(t, -1, tokens[6].End)
}

func TestSplitTokenizer(t *testing.T) {
	tokenizer := nlp.NewSplitTokenizer(strings.Fields, "the")
	tokens := tokenizer.Tokenize("put the knives on the table")
	assert.Equal(t, []string{"put", "knives", "on", "table"}, nlp.Words(tokens))
	assert.Equal(t, 22, tokens[3].Start)
}

func TestNormalize(t *testing.T) {
	// "e" + combining acute accent
	assert.Equal(t, "forc\u00e9ment", nlp.Normalize("force\u0301ment"))
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "[Cats, like, milk]", nlp.FormatList([]string{"Cats", "like", "milk"}))
	assert.Equal(t, "[]", nlp.FormatList(nil))
}

package treebank

import (
	"strings"
	"testing"

	"github.com/future-architect/nlptour/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenizer(t *testing.T) {
	tokenizer := NewTokenizer()
	text := "They were domesticated there, around 9500 years ago (7500 BC)."
	tokens := tokenizer.Tokenize(text)
	words := nlp.Words(tokens)
	assert.Contains(t, words, "domesticated")
	assert.Contains(t, words, ",")
	assert.Contains(t, words, "BC")
	assert.Equal(t, ".", words[len(words)-1])
	for _, token := range tokens {
		if token.Start >= 0 {
			assert.Equal(t, token.Text, text[token.Start:token.End])
		}
	}
}

func TestTagger(t *testing.T) {
	tagger := NewTagger()
	sentences := [][]string{
		{"Cats", "like", "milk"},
		{"She", "put", "the", "big", "knives", "on", "the", "table"},
	}
	for _, words := range sentences {
		tags := tagger.Tag(words)
		assert.Len(t, tags, len(words))
	}
	tags := tagger.Tag(sentences[1])
	assert.Equal(t, "PRP", tags[0])
	assert.Equal(t, "DT", tags[2])
}

func TestChunker(t *testing.T) {
	chunker, err := NewChunker(NounPhrases)
	require.NoError(t, err)
	words := []string{"She", "put", "the", "big", "knives", "on", "the", "table"}
	tags := []string{"PRP", "VBD", "DT", "JJ", "NNS", "IN", "DT", "NN"}
	assert.Equal(t, []string{"the big knives", "the table"}, chunker.Chunk(words, tags))
	assert.Nil(t, chunker.Chunk(words, tags[:3]))

	_, err = NewChunker("(DT__")
	assert.Error(t, err)
}

func TestNameFinder(t *testing.T) {
	finder := NewNameFinder()
	names := finder.FindNames("The first large information retrieval research group was formed by Gerard Salton at Cornell.")
	found := false
	for _, name := range names {
		if strings.Contains(name, "Gerard Salton") {
			found = true
		}
	}
	assert.True(t, found, "names: %v", names)
}

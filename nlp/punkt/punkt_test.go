package punkt

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/future-architect/nlptour/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetector_English(t *testing.T) {
	detector, err := NewDetector(nlp.LanguageEnglish, nil)
	require.NoError(t, err)

	text := "Hi. How are you? Welcome to OpenNLP. We provide multiple built-in methods for Natural Language Processing."
	sentences := detector.SentDetect(text)
	require.Len(t, sentences, 4)
	assert.Equal(t, []string{
		"Hi.",
		"How are you?",
		"Welcome to OpenNLP.",
		"We provide multiple built-in methods for Natural Language Processing.",
	}, nlp.SentenceTexts(sentences))
	for _, sentence := range sentences {
		assert.Equal(t, sentence.Text, text[sentence.Start:sentence.End])
	}
	assert.Equal(t, 4, sentences[1].Start)
}

func TestDetector_TrimsWhitespace(t *testing.T) {
	detector, err := NewDetector(nlp.LanguageEnglish, nil)
	require.NoError(t, err)

	text := "  Cats like milk.   Dogs do not.\n"
	sentences := detector.SentDetect(text)
	require.Len(t, sentences, 2)
	for _, sentence := range sentences {
		assert.Equal(t, strings.TrimSpace(sentence.Text), sentence.Text)
		assert.Equal(t, sentence.Text, text[sentence.Start:sentence.End])
	}
	assert.Equal(t, 2, sentences[0].Start)
}

func TestDetector_Abbreviation(t *testing.T) {
	detector, err := NewDetector("", nil)
	require.NoError(t, err)
	sentences := detector.SentDetect("Mr. Smith went to Washington. He arrived on Monday.")
	assert.Len(t, sentences, 2)
}

func TestNewDetector_NeedsTraining(t *testing.T) {
	_, err := NewDetector(nlp.LanguageGerman, nil)
	assert.Error(t, err)
}

func TestLoadTraining_Missing(t *testing.T) {
	_, err := LoadTraining(filepath.Join(t.TempDir(), "german.json"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestOpenSentenceDetector(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "en-sent.yaml")
	require.NoError(t, os.WriteFile(path, []byte("kind: sentdetect\nengine: punkt\nlanguage: en\n"), 0o644))
	detector, err := nlp.OpenSentenceDetector(path)
	require.NoError(t, err)
	assert.Len(t, detector.SentDetect("Cats like milk. Dogs do not."), 2)
}

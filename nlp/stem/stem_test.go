package stem

import (
	"testing"

	"github.com/future-architect/nlptour/nlp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPorterStemmer(t *testing.T) {
	tests := []struct {
		word string
		want string
	}{
		{"Processing", "process"},
		{"methods", "method"},
		{"provide", "provid"},
		{"cats", "cat"},
		{"caresses", "caress"},
		{"ponies", "poni"},
		{"relational", "relat"},
		{"Language", "languag"},
	}
	stemmer := PorterStemmer{}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			assert.Equal(t, tt.want, stemmer.Stem(tt.word))
		})
	}
}

func TestSnowballStemmer(t *testing.T) {
	english := SnowballStemmer{Language: "english"}
	assert.Equal(t, "run", english.Stem("running"))
	assert.Equal(t, "cat", english.Stem("cats"))

	unknown := SnowballStemmer{Language: "klingon"}
	assert.Equal(t, "Qapla", unknown.Stem("Qapla"))
}

func TestRegisteredStemmers(t *testing.T) {
	stemmer, err := nlp.FindStemmer(Porter)
	require.NoError(t, err)
	assert.Equal(t, []string{"hi", "how", "method"}, nlp.StemAll(stemmer, []string{"Hi", "How", "methods"}))

	for _, lang := range SnowballLanguages {
		_, err := nlp.FindStemmer(SnowballName(lang))
		assert.NoError(t, err, lang)
	}
}

func TestStemmers(t *testing.T) {
	names := nlp.Stemmers()
	assert.Len(t, names, len(SnowballLanguages)+1)
	assert.Contains(t, names, Porter)
	assert.Contains(t, names, "snowball-english")
	assert.NotContains(t, names, "snowball-german")
}

package langdetect

import (
	"testing"

	"github.com/abadojack/whatlanggo"
	"github.com/stretchr/testify/assert"
)

func TestDetector_PredictLanguage(t *testing.T) {
	detector := NewDetector(nil, nil)
	tests := []struct {
		name string
		text string
		want string
	}{
		{
			name: "english",
			text: "The two things are not really related. Many cats like milk because in some ways it reminds them of their mother's milk.",
			want: "eng",
		},
		{
			name: "french",
			text: "Le lait n'est pas forcément mauvais pour les chats, mais beaucoup de chats adultes ne le digèrent pas bien.",
			want: "fra",
		},
		{
			name: "german",
			text: "Der Normalfall ist allerdings der, dass Salonlöwen Milch weder brauchen noch gut verdauen können.",
			want: "deu",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := detector.PredictLanguage(tt.text)
			assert.Equal(t, tt.want, got.Code)
			assert.True(t, got.Confidence > 0 && got.Confidence <= 1, "confidence %f", got.Confidence)
		})
	}
}

func TestDetector_Whitelist(t *testing.T) {
	detector := NewDetector(map[whatlanggo.Lang]bool{whatlanggo.Fra: true, whatlanggo.Deu: true}, nil)
	got := detector.PredictLanguage("Der Normalfall ist allerdings der, dass Katzen Milch weder brauchen noch gut verdauen können.")
	assert.Equal(t, "deu", got.Code)
}

func Test_parseLanguages(t *testing.T) {
	langs, err := parseLanguages([]string{"eng", "deu"})
	assert.NoError(t, err)
	assert.Equal(t, map[whatlanggo.Lang]bool{whatlanggo.Eng: true, whatlanggo.Deu: true}, langs)

	langs, err = parseLanguages(nil)
	assert.NoError(t, err)
	assert.Nil(t, langs)

	_, err = parseLanguages([]string{"xx"})
	assert.Error(t, err)
}

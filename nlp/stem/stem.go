// Package stem registers word stemmers: the classic Porter algorithm and the
// Snowball family.
package stem

import (
	"github.com/future-architect/nlptour/nlp"
	"github.com/kljensen/snowball"
	porterstemmer "github.com/reiver/go-porterstemmer"
)

const Porter = "porter"

// SnowballLanguages are the languages the snowball module implements.
var SnowballLanguages = []string{
	"english", "french", "hungarian", "norwegian", "russian", "spanish", "swedish",
}

func init() {
	nlp.RegisterStemmer(Porter, PorterStemmer{})
	for _, lang := range SnowballLanguages {
		nlp.RegisterStemmer(SnowballName(lang), SnowballStemmer{Language: lang})
	}
}

func SnowballName(lang string) string {
	return "snowball-" + lang
}

// PorterStemmer lower-cases the word and applies the Porter algorithm.
type PorterStemmer struct{}

func (PorterStemmer) Stem(word string) string {
	return porterstemmer.StemString(word)
}

// SnowballStemmer stems stop words too, so every input yields a stem.
type SnowballStemmer struct {
	Language string
}

func (s SnowballStemmer) Stem(word string) string {
	stemmed, err := snowball.Stem(word, s.Language, true)
	if err != nil {
		return word
	}
	return stemmed
}

// Package nlp defines the model manifests, the engine registry and the small
// interfaces every wrapped NLP engine is adapted to.
package nlp

const (
	LanguageJapanese = "ja"
	LanguageEnglish  = "en"
	LanguageGerman   = "de"
)

// Language is a detection result. Code is ISO 639-3.
type Language struct {
	Code       string
	Name       string
	Confidence float64
}

// Sentence is a detected sentence with byte offsets into the input.
type Sentence struct {
	Text  string
	Start int
	End   int
}

type LanguageDetector interface {
	PredictLanguage(text string) Language
}

type Tokenizer interface {
	Tokenize(text string) []Token
}

type SentenceDetector interface {
	SentDetect(text string) []Sentence
}

// Tagger labels each word with a Penn Treebank part-of-speech tag.
type Tagger interface {
	Tag(words []string) []string
}

// Chunker groups tagged words into phrases.
type Chunker interface {
	Chunk(words, tags []string) []string
}

// Lemmatizer returns one lemma per (word, tag) pair. Unknown pairs yield
// UnknownLemma.
type Lemmatizer interface {
	Lemmatize(words, tags []string) []string
}

type NameFinder interface {
	FindNames(text string) []string
}

type Stemmer interface {
	Stem(word string) string
}

// UnknownLemma is returned for words missing from a lemma dictionary.
const UnknownLemma = "O"

// Words returns the surface forms of tokens.
func Words(tokens []Token) []string {
	result := make([]string, len(tokens))
	for i, token := range tokens {
		result[i] = token.Text
	}
	return result
}

// SentenceTexts returns the text of each sentence.
func SentenceTexts(sentences []Sentence) []string {
	result := make([]string, len(sentences))
	for i, sentence := range sentences {
		result[i] = sentence.Text
	}
	return result
}

// StemAll stems every word with the given stemmer.
func StemAll(stemmer Stemmer, words []string) []string {
	result := make([]string, len(words))
	for i, word := range words {
		result[i] = stemmer.Stem(word)
	}
	return result
}

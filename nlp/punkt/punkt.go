// Package punkt detects sentence boundaries with the unsupervised Punkt
// model. Manifests may point at a Punkt training file; English falls back to
// the training data bundled with the sentences module.
package punkt

import (
	"fmt"
	"os"
	"strings"

	"github.com/future-architect/nlptour/nlp"
	"github.com/neurosnap/sentences"
	"github.com/neurosnap/sentences/english"
)

func init() {
	nlp.Register(nlp.KindSentenceDetector, "punkt", func(m *nlp.Manifest) (interface{}, error) {
		var training *sentences.Storage
		if path := m.DataPath(); path != "" {
			var err error
			training, err = LoadTraining(path)
			if err != nil {
				return nil, err
			}
		}
		return NewDetector(m.Language, training)
	})
}

// LoadTraining reads a Punkt training file (JSON).
func LoadTraining(path string) (*sentences.Storage, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't read punkt training data: %w", err)
	}
	training, err := sentences.LoadTraining(data)
	if err != nil {
		return nil, fmt.Errorf("can't load punkt training data %s: %w", path, err)
	}
	return training, nil
}

type sentenceTokenizer interface {
	Tokenize(text string) []*sentences.Sentence
}

type Detector struct {
	tokenizer sentenceTokenizer
}

// NewDetector builds a detector for lang. training may be nil only for
// English.
func NewDetector(lang string, training *sentences.Storage) (*Detector, error) {
	if lang == "" || lang == nlp.LanguageEnglish {
		tokenizer, err := english.NewSentenceTokenizer(training)
		if err != nil {
			return nil, fmt.Errorf("can't build english sentence tokenizer: %w", err)
		}
		return &Detector{tokenizer: tokenizer}, nil
	}
	if training == nil {
		return nil, fmt.Errorf("punkt model for %q needs training data", lang)
	}
	return &Detector{tokenizer: sentences.NewSentenceTokenizer(training)}, nil
}

// SentDetect returns the sentences without surrounding whitespace. Start and
// End are byte offsets of the trimmed text.
func (d Detector) SentDetect(text string) []nlp.Sentence {
	var trimmed []string
	for _, sentence := range d.tokenizer.Tokenize(text) {
		if s := strings.TrimSpace(sentence.Text); s != "" {
			trimmed = append(trimmed, s)
		}
	}
	var result []nlp.Sentence
	for _, token := range nlp.AlignTokens(text, trimmed) {
		result = append(result, nlp.Sentence{
			Text:  token.Text,
			Start: token.Start,
			End:   token.End,
		})
	}
	return result
}

// Package treebank wraps the prose English models: a Penn Treebank word
// tokenizer, an averaged perceptron POS tagger and regexp chunking over the
// tagger's output.
package treebank

import (
	"fmt"
	"regexp"
	"sync"

	"github.com/future-architect/nlptour/nlp"
	"github.com/jdkato/prose/chunk"
	"github.com/jdkato/prose/tag"
	"github.com/jdkato/prose/tokenize"
)

// NounPhrases matches an optional determiner, any adjectives and a run of
// nouns. Tags are padded to four characters with '_'.
const NounPhrases = `(DT__|PRP\$)?(JJ__|JJR_|JJS_)*(NN__|NNS_|NNP_|NNPS)+`

func init() {
	nlp.Register(nlp.KindTokenizer, "treebank", func(m *nlp.Manifest) (interface{}, error) {
		return NewTokenizer(), nil
	})
	nlp.Register(nlp.KindTagger, "perceptron", func(m *nlp.Manifest) (interface{}, error) {
		return NewTagger(), nil
	})
	nlp.Register(nlp.KindChunker, "regexp", func(m *nlp.Manifest) (interface{}, error) {
		return NewChunker(m.Param("pattern", NounPhrases))
	})
	nlp.Register(nlp.KindNameFinder, "treebank", func(m *nlp.Manifest) (interface{}, error) {
		return NewNameFinder(), nil
	})
}

type Tokenizer struct {
	treebank *tokenize.TreebankWordTokenizer
}

func NewTokenizer() *Tokenizer {
	return &Tokenizer{
		treebank: tokenize.NewTreebankWordTokenizer(),
	}
}

func (t Tokenizer) Tokenize(text string) []nlp.Token {
	return nlp.AlignTokens(text, t.treebank.Tokenize(text))
}

var (
	perceptronOnce sync.Once
	perceptron     *tag.PerceptronTagger
)

// sharedPerceptron decodes the bundled weights once per process.
func sharedPerceptron() *tag.PerceptronTagger {
	perceptronOnce.Do(func() {
		perceptron = tag.NewPerceptronTagger()
	})
	return perceptron
}

type Tagger struct {
	perceptron *tag.PerceptronTagger
}

func NewTagger() *Tagger {
	return &Tagger{perceptron: sharedPerceptron()}
}

func (t Tagger) Tag(words []string) []string {
	tokens := t.perceptron.Tag(words)
	result := make([]string, len(tokens))
	for i, token := range tokens {
		result[i] = token.Tag
	}
	return result
}

type Chunker struct {
	rule *regexp.Regexp
}

func NewChunker(pattern string) (*Chunker, error) {
	rule, err := regexp.Compile(pattern)
	if err != nil {
		return nil, fmt.Errorf("invalid chunk pattern: %w", err)
	}
	return &Chunker{rule: rule}, nil
}

func (c Chunker) Chunk(words, tags []string) []string {
	if len(words) != len(tags) {
		return nil
	}
	return chunk.Chunk(tagged(words, tags), c.rule)
}

func tagged(words, tags []string) []tag.Token {
	result := make([]tag.Token, len(words))
	for i := range words {
		result[i] = tag.Token{Text: words[i], Tag: tags[i]}
	}
	return result
}

// NameFinder reports runs of proper nouns as names.
type NameFinder struct {
	perceptron *tag.PerceptronTagger
}

func NewNameFinder() *NameFinder {
	return &NameFinder{perceptron: sharedPerceptron()}
}

func (n NameFinder) FindNames(text string) []string {
	words := tokenize.TextToWords(text)
	return chunk.Chunk(n.perceptron.Tag(words), chunk.TreebankNamedEntities)
}

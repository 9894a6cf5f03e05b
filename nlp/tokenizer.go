package nlp

import (
	"strings"
	"unicode/utf8"
)

// Token is a word or punctuation unit. Start and End are byte offsets into
// the tokenized text, both -1 when the engine rewrote the surface form.
type Token struct {
	Text  string
	Start int
	End   int
}

// SplitTokenizer adapts a plain splitter function to Tokenizer.
type SplitTokenizer struct {
	splitter func(string) []string
	omit     map[string]bool
}

func NewSplitTokenizer(splitter func(string) []string, omit ...string) *SplitTokenizer {
	omitWords := make(map[string]bool)
	for _, word := range omit {
		omitWords[word] = true
	}
	return &SplitTokenizer{
		splitter: splitter,
		omit:     omitWords,
	}
}

func (t SplitTokenizer) Tokenize(content string) []Token {
	var words []string
	for _, word := range t.splitter(content) {
		if t.omit[word] {
			continue
		}
		words = append(words, word)
	}
	return AlignTokens(content, words)
}

// AlignTokens finds each word in text, scanning forward from the first rune
// of the previous match so that overlapping n-grams still align.
func AlignTokens(text string, words []string) []Token {
	tokens := make([]Token, len(words))
	cursor := 0
	for i, word := range words {
		tokens[i] = Token{Text: word, Start: -1, End: -1}
		if word == "" {
			continue
		}
		index := strings.Index(text[cursor:], word)
		if index < 0 {
			continue
		}
		tokens[i].Start = cursor + index
		tokens[i].End = cursor + index + len(word)
		_, size := utf8.DecodeRuneInString(word)
		cursor = tokens[i].Start + size
	}
	return tokens
}

// Package ngram provides character n-gram tokenizers for scripts without
// word delimiters.
package ngram

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/future-architect/nlptour/nlp"
)

func init() {
	nlp.Register(nlp.KindTokenizer, "unigram", func(m *nlp.Manifest) (interface{}, error) {
		return nlp.NewSplitTokenizer(unigramSplitter), nil
	})
	nlp.Register(nlp.KindTokenizer, "bigram", func(m *nlp.Manifest) (interface{}, error) {
		return nlp.NewSplitTokenizer(bigramSplitter), nil
	})
	nlp.Register(nlp.KindTokenizer, "ngram", func(m *nlp.Manifest) (interface{}, error) {
		size, err := strconv.Atoi(m.Param("size", "2"))
		if err != nil || size < 1 {
			return nil, fmt.Errorf("invalid n-gram size %q", m.Param("size", ""))
		}
		return nlp.NewSplitTokenizer(Splitter(size)), nil
	})
}

func unigramSplitter(content string) []string {
	return strings.Split(content, "")
}

func bigramSplitter(content string) []string {
	return Splitter(2)(content)
}

// Splitter returns a function cutting text into overlapping runs of size
// characters. Text shorter than size yields no grams.
func Splitter(size int) func(string) []string {
	return func(content string) []string {
		chars := strings.Split(content, "")
		if len(chars) < size {
			return []string{}
		}
		result := make([]string, len(chars)-size+1)
		for i := range result {
			result[i] = strings.Join(chars[i:i+size], "")
		}
		return result
	}
}

// Package lemma reduces words to their dictionary form using a
// tab-separated lemma dictionary.
package lemma

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/future-architect/nlptour/nlp"
)

func init() {
	nlp.Register(nlp.KindLemmatizer, "dictionary", func(m *nlp.Manifest) (interface{}, error) {
		if m.DataPath() == "" {
			return nil, fmt.Errorf("dictionary lemmatizer %s needs a data file", m.Path())
		}
		lemmatizer, err := LoadDictionary(m.DataPath())
		if err != nil {
			return nil, err
		}
		switch fallback := m.Param("fallback", ""); fallback {
		case "":
		case "golem":
			pack, err := englishPack()
			if err != nil {
				return nil, err
			}
			lemmatizer.fallback = pack
		default:
			return nil, fmt.Errorf("unknown lemmatizer fallback %q", fallback)
		}
		return lemmatizer, nil
	})
}

type dictKey struct {
	word   string
	posTag string
}

// DictionaryLemmatizer looks lemmas up by lower-cased word and POS tag.
// Each dictionary line is "word<TAB>postag<TAB>lemma", alternative lemmas
// joined with "#".
type DictionaryLemmatizer struct {
	entries  map[dictKey][]string
	fallback fallbackLemmatizer
}

type fallbackLemmatizer interface {
	lookup(word string) (string, bool)
}

func LoadDictionary(path string) (*DictionaryLemmatizer, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("can't open lemma dictionary: %w", err)
	}
	defer f.Close()
	lemmatizer, err := ReadDictionary(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return lemmatizer, nil
}

func ReadDictionary(r io.Reader) (*DictionaryLemmatizer, error) {
	result := &DictionaryLemmatizer{
		entries: make(map[dictKey][]string),
	}
	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimRight(scanner.Text(), "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		fields := strings.Split(line, "\t")
		if len(fields) != 3 || fields[0] == "" || fields[1] == "" || fields[2] == "" {
			return nil, fmt.Errorf("line %d: want word, postag and lemma separated by tabs: %q", lineNo, line)
		}
		key := dictKey{word: normalize(fields[0]), posTag: fields[1]}
		result.entries[key] = append(result.entries[key], strings.Split(fields[2], "#")...)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func normalize(word string) string {
	return strings.ToLower(nlp.Normalize(word))
}

func (d DictionaryLemmatizer) Len() int {
	return len(d.entries)
}

// Lemmatize returns the first lemma for each word, nlp.UnknownLemma for
// misses. words and tags must be parallel; nil is returned otherwise.
func (d DictionaryLemmatizer) Lemmatize(words, tags []string) []string {
	candidates := d.Lemmas(words, tags)
	if candidates == nil {
		return nil
	}
	result := make([]string, len(candidates))
	for i, lemmas := range candidates {
		result[i] = lemmas[0]
	}
	return result
}

// Lemmas returns every candidate lemma for each word.
func (d DictionaryLemmatizer) Lemmas(words, tags []string) [][]string {
	if len(words) != len(tags) {
		return nil
	}
	result := make([][]string, len(words))
	for i, word := range words {
		word = normalize(word)
		if lemmas, ok := d.entries[dictKey{word: word, posTag: tags[i]}]; ok {
			result[i] = lemmas
			continue
		}
		if d.fallback != nil {
			if lemma, ok := d.fallback.lookup(word); ok {
				result[i] = []string{lemma}
				continue
			}
		}
		result[i] = []string{nlp.UnknownLemma}
	}
	return result
}

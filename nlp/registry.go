package nlp

import (
	"errors"
	"fmt"
	"sort"
)

var (
	ErrUnknownEngine = errors.New("unknown engine")
	ErrKindMismatch  = errors.New("model kind mismatch")
)

// Opener builds an engine instance from its manifest.
type Opener func(manifest *Manifest) (interface{}, error)

var (
	engines  = make(map[Kind]map[string]Opener)
	stemmers = make(map[string]Stemmer)
)

// Register makes an engine available for manifests of the given kind.
// Engine packages call it from init().
func Register(kind Kind, engine string, opener Opener) {
	if engines[kind] == nil {
		engines[kind] = make(map[string]Opener)
	}
	engines[kind][engine] = opener
}

// Engines lists the registered engine names of a kind.
func Engines(kind Kind) []string {
	var result []string
	for name := range engines[kind] {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func RegisterStemmer(name string, stemmer Stemmer) {
	stemmers[name] = stemmer
}

func FindStemmer(name string) (Stemmer, error) {
	stemmer, ok := stemmers[name]
	if !ok {
		return nil, fmt.Errorf("can't find stemmer %s: %w", name, ErrUnknownEngine)
	}
	return stemmer, nil
}

// Stemmers lists the registered stemmer names.
func Stemmers() []string {
	var result []string
	for name := range stemmers {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}

func openManifest(manifest *Manifest) (interface{}, error) {
	opener, ok := engines[manifest.Kind][manifest.Engine]
	if !ok {
		return nil, fmt.Errorf("can't find %s engine %q for %s: %w", manifest.Kind, manifest.Engine, manifest.Path(), ErrUnknownEngine)
	}
	model, err := opener(manifest)
	if err != nil {
		return nil, fmt.Errorf("can't open %s model %s: %w", manifest.Kind, manifest.Path(), err)
	}
	return model, nil
}

func open[T any](path string, kind Kind) (T, error) {
	var zero T
	manifest, err := LoadManifest(path)
	if err != nil {
		return zero, err
	}
	if manifest.Kind != kind {
		return zero, fmt.Errorf("%s is a %s model, not %s: %w", path, manifest.Kind, kind, ErrKindMismatch)
	}
	model, err := openManifest(manifest)
	if err != nil {
		return zero, err
	}
	result, ok := model.(T)
	if !ok {
		return zero, fmt.Errorf("%s engine %q returned %T: %w", kind, manifest.Engine, model, ErrKindMismatch)
	}
	return result, nil
}

func OpenLanguageDetector(path string) (LanguageDetector, error) {
	return open[LanguageDetector](path, KindLanguageDetector)
}

func OpenTokenizer(path string) (Tokenizer, error) {
	return open[Tokenizer](path, KindTokenizer)
}

func OpenSentenceDetector(path string) (SentenceDetector, error) {
	return open[SentenceDetector](path, KindSentenceDetector)
}

func OpenTagger(path string) (Tagger, error) {
	return open[Tagger](path, KindTagger)
}

func OpenChunker(path string) (Chunker, error) {
	return open[Chunker](path, KindChunker)
}

func OpenLemmatizer(path string) (Lemmatizer, error) {
	return open[Lemmatizer](path, KindLemmatizer)
}

func OpenNameFinder(path string) (NameFinder, error) {
	return open[NameFinder](path, KindNameFinder)
}

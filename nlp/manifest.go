package nlp

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

type Kind string

const (
	KindLanguageDetector Kind = "langdetect"
	KindTokenizer        Kind = "tokenizer"
	KindSentenceDetector Kind = "sentdetect"
	KindTagger           Kind = "postag"
	KindChunker          Kind = "chunker"
	KindLemmatizer       Kind = "lemmatizer"
	KindNameFinder       Kind = "namefind"
)

// Manifest describes one model artifact: which engine serves it and the
// engine's data file and parameters.
type Manifest struct {
	Kind     Kind              `yaml:"kind" validate:"required,oneof=langdetect tokenizer sentdetect postag chunker lemmatizer namefind"`
	Engine   string            `yaml:"engine" validate:"required"`
	Language string            `yaml:"language" validate:"omitempty,min=2,max=3"`
	Data     string            `yaml:"data"`
	Params   map[string]string `yaml:"params"`

	path string
}

var validate = validator.New()

// LoadManifest reads and validates a model manifest.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("can't load model manifest %s: %w", path, err)
	}
	return ParseManifest(path, data)
}

// ParseManifest decodes manifest content. path is used to resolve Data.
func ParseManifest(path string, data []byte) (*Manifest, error) {
	var manifest Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return nil, fmt.Errorf("can't parse model manifest %s: %w", path, err)
	}
	if err := validate.Struct(&manifest); err != nil {
		return nil, fmt.Errorf("invalid model manifest %s: %w", path, err)
	}
	manifest.path = path
	return &manifest, nil
}

func (m Manifest) Path() string {
	return m.path
}

// DataPath resolves Data relative to the manifest directory. It returns ""
// when the manifest has no data file.
func (m Manifest) DataPath() string {
	if m.Data == "" {
		return ""
	}
	if filepath.IsAbs(m.Data) {
		return m.Data
	}
	return filepath.Join(filepath.Dir(m.path), m.Data)
}

func (m Manifest) Param(key, defaultValue string) string {
	if value, ok := m.Params[key]; ok && value != "" {
		return value
	}
	return defaultValue
}

// ListParam splits a comma separated parameter.
func (m Manifest) ListParam(key string) []string {
	var result []string
	for _, item := range strings.Split(m.Param(key, ""), ",") {
		item = strings.TrimSpace(item)
		if item != "" {
			result = append(result, item)
		}
	}
	return result
}

// Package langdetect identifies the natural language of a text with the
// whatlanggo trigram profiles.
package langdetect

import (
	"fmt"

	"github.com/abadojack/whatlanggo"
	"github.com/future-architect/nlptour/nlp"
)

// Undetermined is the ISO 639 code reported when no language is recognized.
const Undetermined = "und"

func init() {
	nlp.Register(nlp.KindLanguageDetector, "whatlanggo", func(m *nlp.Manifest) (interface{}, error) {
		whitelist, err := parseLanguages(m.ListParam("whitelist"))
		if err != nil {
			return nil, err
		}
		blacklist, err := parseLanguages(m.ListParam("blacklist"))
		if err != nil {
			return nil, err
		}
		return NewDetector(whitelist, blacklist), nil
	})
}

func parseLanguages(codes []string) (map[whatlanggo.Lang]bool, error) {
	if len(codes) == 0 {
		return nil, nil
	}
	result := make(map[whatlanggo.Lang]bool)
	for _, code := range codes {
		lang := whatlanggo.CodeToLang(code)
		if lang.Iso6393() != code {
			return nil, fmt.Errorf("unknown ISO 639-3 language code %q", code)
		}
		result[lang] = true
	}
	return result, nil
}

type Detector struct {
	options whatlanggo.Options
}

func NewDetector(whitelist, blacklist map[whatlanggo.Lang]bool) *Detector {
	return &Detector{
		options: whatlanggo.Options{
			Whitelist: whitelist,
			Blacklist: blacklist,
		},
	}
}

func (d Detector) PredictLanguage(text string) nlp.Language {
	info := whatlanggo.DetectWithOptions(nlp.Normalize(text), d.options)
	code := info.Lang.Iso6393()
	if code == "" {
		return nlp.Language{Code: Undetermined, Name: "Unknown"}
	}
	return nlp.Language{
		Code:       code,
		Name:       info.Lang.String(),
		Confidence: info.Confidence,
	}
}

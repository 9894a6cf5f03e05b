// Package japanese tokenizes Japanese text with the kagome morphological
// analyzer and the IPA dictionary.
package japanese

import (
	"fmt"
	"sync"

	"github.com/future-architect/nlptour/nlp"
	"github.com/ikawaha/kagome-dict/ipa"
	"github.com/ikawaha/kagome/v2/tokenizer"
)

const Language = nlp.LanguageJapanese

func init() {
	nlp.Register(nlp.KindTokenizer, "kagome", func(m *nlp.Manifest) (interface{}, error) {
		mode, err := parseMode(m.Param("mode", "normal"))
		if err != nil {
			return nil, err
		}
		return NewTokenizer(mode, m.ListParam("omit")...)
	})
}

var once sync.Once
var kagomeTokenizer *tokenizer.Tokenizer
var kagomeErr error

func sharedTokenizer() (*tokenizer.Tokenizer, error) {
	once.Do(func() {
		kagomeTokenizer, kagomeErr = tokenizer.New(ipa.Dict(), tokenizer.OmitBosEos())
	})
	return kagomeTokenizer, kagomeErr
}

func parseMode(mode string) (tokenizer.TokenizeMode, error) {
	switch mode {
	case "normal":
		return tokenizer.Normal, nil
	case "search":
		return tokenizer.Search, nil
	case "extended":
		return tokenizer.Extended, nil
	}
	return tokenizer.Normal, fmt.Errorf("unknown kagome mode %q", mode)
}

// Tokenizer splits text into morphemes. Morphemes whose top-level part of
// speech is listed in omit (e.g. 助詞, 記号) are dropped.
type Tokenizer struct {
	kagome *tokenizer.Tokenizer
	mode   tokenizer.TokenizeMode
	omit   map[string]bool
}

func NewTokenizer(mode tokenizer.TokenizeMode, omit ...string) (*Tokenizer, error) {
	kagome, err := sharedTokenizer()
	if err != nil {
		return nil, fmt.Errorf("can't build kagome tokenizer: %w", err)
	}
	omitPOS := make(map[string]bool)
	for _, pos := range omit {
		omitPOS[pos] = true
	}
	return &Tokenizer{
		kagome: kagome,
		mode:   mode,
		omit:   omitPOS,
	}, nil
}

func (t Tokenizer) Tokenize(content string) []nlp.Token {
	var result []nlp.Token
	for _, token := range t.kagome.Analyze(content, t.mode) {
		if token.Class == tokenizer.DUMMY {
			continue
		}
		features := token.Features()
		if len(features) > 0 && t.omit[features[0]] {
			continue
		}
		result = append(result, nlp.Token{
			Text:  token.Surface,
			Start: token.Position,
			End:   token.Position + len(token.Surface),
		})
	}
	return result
}

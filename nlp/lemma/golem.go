package lemma

import (
	"fmt"
	"sync"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

var (
	golemOnce sync.Once
	golemPack *golemLemmatizer
	golemErr  error
)

type golemLemmatizer struct {
	lemmatizer *golem.Lemmatizer
}

func englishPack() (*golemLemmatizer, error) {
	golemOnce.Do(func() {
		lemmatizer, err := golem.New(en.New())
		if err != nil {
			golemErr = fmt.Errorf("can't load golem english dictionary: %w", err)
			return
		}
		golemPack = &golemLemmatizer{lemmatizer: lemmatizer}
	})
	return golemPack, golemErr
}

func (g *golemLemmatizer) lookup(word string) (string, bool) {
	if !g.lemmatizer.InDict(word) {
		return "", false
	}
	return g.lemmatizer.Lemma(word), true
}

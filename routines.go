package nlptour

import (
	"time"

	"github.com/future-architect/nlptour/nlp"
	"go.uber.org/zap"
)

// load opens a model from the model directory and logs how long it took.
func load[T any](t *Tour, kind nlp.Kind, model string, open func(path string) (T, error)) (T, error) {
	started := time.Now()
	path := t.ModelPath(model)
	result, err := open(path)
	if err != nil {
		return result, err
	}
	t.logger.Debug("model loaded",
		zap.String("kind", string(kind)),
		zap.String("path", path),
		zap.Duration("elapsed", time.Since(started)))
	return result, nil
}

func (t *Tour) LanguageDetection() error {
	t.out.heading("Language detection")
	return t.DetectLanguages(languageSamples...)
}

// DetectLanguages prints the most probable language of each text.
func (t *Tour) DetectLanguages(texts ...string) error {
	detector, err := load(t, nlp.KindLanguageDetector, LanguageDetectorModel, nlp.OpenLanguageDetector)
	if err != nil {
		return err
	}
	for _, text := range texts {
		t.out.input(text)
		language := detector.PredictLanguage(text)
		t.out.result("Language: %s, %.2f", language.Code, language.Confidence)
	}
	return nil
}

func (t *Tour) Tokenization() error {
	if err := t.Tokenize(EnglishTokenizerModel, tokenizationSamples...); err != nil {
		return err
	}
	if err := t.Tokenize(GermanTokenizerModel, tokenizationSamples...); err != nil {
		return err
	}
	return t.Tokenize(JapaneseTokenizerModel, japaneseTokenizationSamples...)
}

// Tokenize prints the tokens the named tokenizer model finds in each text.
func (t *Tour) Tokenize(model string, texts ...string) error {
	path := t.ModelPath(model)
	t.out.heading("Tokenization %s", path)
	tokenizer, err := load(t, nlp.KindTokenizer, model, nlp.OpenTokenizer)
	if err != nil {
		return err
	}
	for _, text := range texts {
		t.out.input(text)
		t.out.list(nlp.Words(tokenizer.Tokenize(text)))
	}
	return nil
}

func (t *Tour) SentenceDetection() error {
	t.out.heading("Sentence detection")
	return t.DetectSentences(sentenceSamples...)
}

// DetectSentences prints the sentences found in each text.
func (t *Tour) DetectSentences(texts ...string) error {
	detector, err := load(t, nlp.KindSentenceDetector, SentenceModel, nlp.OpenSentenceDetector)
	if err != nil {
		return err
	}
	for _, text := range texts {
		t.out.input(text)
		t.out.list(nlp.SentenceTexts(detector.SentDetect(text)))
	}
	return nil
}

func (t *Tour) PartOfSpeechTagging() error {
	t.out.heading("Part of speech tagging")
	return t.Tag(taggingSamples...)
}

// Tag prints each pre-tokenized sentence followed by its POS tags.
func (t *Tour) Tag(sentences ...[]string) error {
	tagger, err := load(t, nlp.KindTagger, PartOfSpeechModel, nlp.OpenTagger)
	if err != nil {
		return err
	}
	for _, sentence := range sentences {
		t.out.list(sentence)
		t.out.list(tagger.Tag(sentence))
	}
	return nil
}

func (t *Tour) Lemmatization() error {
	t.out.heading("Lemmatizer")
	return t.Lemmatize(wordSample)
}

// Lemmatize tags the sentence and prints the lemma of every word.
func (t *Tour) Lemmatize(sentence []string) error {
	lemmatizer, err := load(t, nlp.KindLemmatizer, LemmatizerModel, nlp.OpenLemmatizer)
	if err != nil {
		return err
	}
	tagger, err := load(t, nlp.KindTagger, PartOfSpeechModel, nlp.OpenTagger)
	if err != nil {
		return err
	}
	tags := tagger.Tag(sentence)
	t.out.list(sentence)
	t.out.list(lemmatizer.Lemmatize(sentence, tags))
	return nil
}

func (t *Tour) Stemming() error {
	t.out.heading("Stemmer")
	return t.Stem(wordSample)
}

// Stem prints the sentence, then one line of stems per configured stemmer.
func (t *Tour) Stem(sentence []string) error {
	t.out.list(sentence)
	for _, name := range t.stemmers {
		stemmer, err := nlp.FindStemmer(name)
		if err != nil {
			return err
		}
		t.out.result("%s %s", name, nlp.FormatList(nlp.StemAll(stemmer, sentence)))
	}
	return nil
}

func (t *Tour) Chunking() error {
	t.out.heading("Chunker")
	return t.Chunk(chunkingSample.words, chunkingSample.tags)
}

// Chunk prints the phrases the chunker model groups the tagged words into.
func (t *Tour) Chunk(words, tags []string) error {
	chunker, err := load(t, nlp.KindChunker, ChunkerModel, nlp.OpenChunker)
	if err != nil {
		return err
	}
	t.out.list(words)
	t.out.list(tags)
	t.out.list(chunker.Chunk(words, tags))
	return nil
}

func (t *Tour) NameFinding() error {
	t.out.heading("Name finder")
	return t.FindNames(nameFindingSample)
}

// FindNames prints the names found in each text.
func (t *Tour) FindNames(texts ...string) error {
	finder, err := load(t, nlp.KindNameFinder, NameModel, nlp.OpenNameFinder)
	if err != nil {
		return err
	}
	for _, text := range texts {
		t.out.input(text)
		t.out.list(finder.FindNames(text))
	}
	return nil
}

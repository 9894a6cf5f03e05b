package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/future-architect/nlptour"
	"github.com/future-architect/nlptour/nlp"
	_ "github.com/future-architect/nlptour/nlp/japanese"
	_ "github.com/future-architect/nlptour/nlp/langdetect"
	_ "github.com/future-architect/nlptour/nlp/lemma"
	_ "github.com/future-architect/nlptour/nlp/ngram"
	_ "github.com/future-architect/nlptour/nlp/punkt"
	_ "github.com/future-architect/nlptour/nlp/stem"
	_ "github.com/future-architect/nlptour/nlp/treebank"
	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"gopkg.in/alecthomas/kingpin.v2"
)

var (
	debug    = kingpin.Flag("debug", "Verbose development logging").Bool()
	noColor  = kingpin.Flag("no-color", "Disable colored output").Bool()
	modelDir = kingpin.Flag("models", "Model directory").Envar("NLPTOUR_MODEL_DIR").Default(nlptour.DefaultModelDir).String()

	demoCmd      = kingpin.Command("demo", "Run the NLP tour").Default()
	routines     = demoCmd.Flag("routine", "Routine to run (repeatable)").Enums(routineNames()...)
	withChunking = demoCmd.Flag("with-chunking", "Also run the chunker").Bool()
	withNames    = demoCmd.Flag("with-names", "Also run the name finder").Bool()

	checkCmd = kingpin.Command("check", "Check that every model file is present")

	detectCmd   = kingpin.Command("detect", "Detect the language of texts")
	detectTexts = detectCmd.Arg("TEXT", "Texts (stdin when missing)").Strings()

	tokenizeCmd   = kingpin.Command("tokenize", "Tokenize texts")
	tokenizeModel = tokenizeCmd.Flag("model", "Tokenizer model in the model directory").Default(nlptour.EnglishTokenizerModel).String()
	tokenizeTexts = tokenizeCmd.Arg("TEXT", "Texts (stdin when missing)").Strings()

	sentencesCmd   = kingpin.Command("sentences", "Split texts into sentences")
	sentencesTexts = sentencesCmd.Arg("TEXT", "Texts (stdin when missing)").Strings()

	tagCmd   = kingpin.Command("tag", "Tag words with parts of speech")
	tagWords = tagCmd.Arg("WORDS", "Words (stdin when missing)").Strings()

	lemmatizeCmd   = kingpin.Command("lemmatize", "Lemmatize words")
	lemmatizeWords = lemmatizeCmd.Arg("WORDS", "Words (stdin when missing)").Strings()

	stemCmd     = kingpin.Command("stem", "Stem words")
	stemmerName = stemCmd.Flag("stemmer", "Stemmer (repeatable)").Enums(nlp.Stemmers()...)
	stemWords   = stemCmd.Arg("WORDS", "Words (stdin when missing)").Strings()
)

func routineNames() []string {
	var result []string
	for _, routine := range nlptour.AllRoutines {
		result = append(result, string(routine))
	}
	return result
}

func newLogger() (*zap.Logger, error) {
	if *debug {
		return zap.NewDevelopment()
	}
	config := zap.NewProductionConfig()
	config.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	return config.Build()
}

func texts(args []string) ([]string, error) {
	if len(args) > 0 {
		return args, nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("can't read stdin: %w", err)
	}
	text := strings.TrimSpace(string(data))
	if text == "" {
		return nil, fmt.Errorf("no input text")
	}
	return []string{text}, nil
}

func words(args []string) ([]string, error) {
	input, err := texts(args)
	if err != nil {
		return nil, err
	}
	if len(args) > 0 {
		return input, nil
	}
	return strings.Fields(input[0]), nil
}

func demo(ctx context.Context, option nlptour.Option) error {
	for _, name := range *routines {
		option.Routines = append(option.Routines, nlptour.Routine(name))
	}
	if len(option.Routines) == 0 {
		option.Routines = append(option.Routines, nlptour.DefaultRoutines...)
	}
	if *withChunking {
		option.Routines = append(option.Routines, nlptour.RoutineChunking)
	}
	if *withNames {
		option.Routines = append(option.Routines, nlptour.RoutineNameFinding)
	}
	tour, err := nlptour.NewTour(option)
	if err != nil {
		return err
	}
	if err := tour.CheckModels(); err != nil {
		return err
	}
	return tour.Run(ctx)
}

func check(option nlptour.Option) error {
	option.Routines = nlptour.AllRoutines
	tour, err := nlptour.NewTour(option)
	if err != nil {
		return err
	}
	if err := tour.CheckModels(); err != nil {
		return err
	}
	for _, path := range tour.RequiredModels() {
		color.Green("  ok %s", path)
	}
	return nil
}

func adhoc(option nlptour.Option, command string) error {
	if command == stemCmd.FullCommand() {
		option.Stemmers = *stemmerName
	}
	tour, err := nlptour.NewTour(option)
	if err != nil {
		return err
	}
	switch command {
	case detectCmd.FullCommand():
		input, err := texts(*detectTexts)
		if err != nil {
			return err
		}
		return tour.DetectLanguages(input...)
	case tokenizeCmd.FullCommand():
		input, err := texts(*tokenizeTexts)
		if err != nil {
			return err
		}
		return tour.Tokenize(*tokenizeModel, input...)
	case sentencesCmd.FullCommand():
		input, err := texts(*sentencesTexts)
		if err != nil {
			return err
		}
		return tour.DetectSentences(input...)
	case tagCmd.FullCommand():
		input, err := words(*tagWords)
		if err != nil {
			return err
		}
		return tour.Tag(input)
	case lemmatizeCmd.FullCommand():
		input, err := words(*lemmatizeWords)
		if err != nil {
			return err
		}
		return tour.Lemmatize(input)
	case stemCmd.FullCommand():
		input, err := words(*stemWords)
		if err != nil {
			return err
		}
		return tour.Stem(input)
	}
	return fmt.Errorf("unknown command %q", command)
}

func main() {
	_ = godotenv.Load()
	ctx := context.Background()

	command := kingpin.Parse()
	if *noColor {
		color.NoColor = true
	}
	logger, err := newLogger()
	if err != nil {
		fmt.Fprintf(os.Stderr, "logger error: %s\n", err.Error())
		os.Exit(1)
	}
	defer logger.Sync()

	option := nlptour.Option{
		ModelDir: *modelDir,
		Logger:   logger,
	}
	switch command {
	case demoCmd.FullCommand():
		err = demo(ctx, option)
	case checkCmd.FullCommand():
		err = check(option)
	default:
		err = adhoc(option, command)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err.Error())
		logger.Sync()
		os.Exit(1)
	}
}

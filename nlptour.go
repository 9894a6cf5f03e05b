package nlptour

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/rs/xid"
	"go.uber.org/zap"
)

type Routine string

const (
	RoutineLanguageDetection Routine = "langdetect"
	RoutineTokenization      Routine = "tokenize"
	RoutineSentenceDetection Routine = "sentdetect"
	RoutinePartOfSpeech      Routine = "postag"
	RoutineLemmatization     Routine = "lemmatize"
	RoutineStemming          Routine = "stem"
	RoutineChunking          Routine = "chunk"
	RoutineNameFinding       Routine = "namefind"
)

// AllRoutines is the run order.
var AllRoutines = []Routine{
	RoutineLanguageDetection,
	RoutineTokenization,
	RoutineSentenceDetection,
	RoutinePartOfSpeech,
	RoutineLemmatization,
	RoutineStemming,
	RoutineChunking,
	RoutineNameFinding,
}

// DefaultRoutines leaves chunking and name finding out.
var DefaultRoutines = AllRoutines[:6:6]

const (
	LanguageDetectorModel  = "langdetect.yaml"
	EnglishTokenizerModel  = "en-token.yaml"
	GermanTokenizerModel   = "de-token.yaml"
	JapaneseTokenizerModel = "ja-token.yaml"
	SentenceModel          = "en-sent.yaml"
	PartOfSpeechModel      = "en-pos.yaml"
	ChunkerModel           = "en-chunker.yaml"
	LemmatizerModel        = "en-lemmatizer.yaml"
	NameModel              = "en-ner-person.yaml"
)

var requiredModels = map[Routine][]string{
	RoutineLanguageDetection: {LanguageDetectorModel},
	RoutineTokenization:      {EnglishTokenizerModel, GermanTokenizerModel, JapaneseTokenizerModel},
	RoutineSentenceDetection: {SentenceModel},
	RoutinePartOfSpeech:      {PartOfSpeechModel},
	RoutineLemmatization:     {PartOfSpeechModel, LemmatizerModel},
	RoutineChunking:          {ChunkerModel},
	RoutineNameFinding:       {NameModel},
}

const DefaultModelDir = "resources/models"

type Option struct {
	ModelDir string
	Routines []Routine
	Stemmers []string
	Output   io.Writer
	Logger   *zap.Logger
}

func initOpt(opt ...Option) (Option, error) {
	var option Option
	if len(opt) > 0 {
		option = opt[0]
	}
	if option.ModelDir == "" {
		option.ModelDir = os.Getenv("NLPTOUR_MODEL_DIR")
	}
	if option.ModelDir == "" {
		option.ModelDir = DefaultModelDir
	}
	if len(option.Routines) == 0 {
		option.Routines = DefaultRoutines
	}
	for _, routine := range option.Routines {
		if !isRoutine(routine) {
			return option, fmt.Errorf("unknown routine %q", routine)
		}
	}
	if len(option.Stemmers) == 0 {
		option.Stemmers = []string{"porter", "snowball-english"}
	}
	if option.Output == nil {
		option.Output = os.Stdout
	}
	if option.Logger == nil {
		option.Logger = zap.NewNop()
	}
	return option, nil
}

func isRoutine(routine Routine) bool {
	for _, r := range AllRoutines {
		if r == routine {
			return true
		}
	}
	return false
}

// Tour runs the demonstration routines against the models in one directory.
type Tour struct {
	modelDir string
	routines map[Routine]bool
	stemmers []string
	out      printer
	logger   *zap.Logger
}

func NewTour(opt ...Option) (*Tour, error) {
	option, err := initOpt(opt...)
	if err != nil {
		return nil, err
	}
	result := &Tour{
		modelDir: option.ModelDir,
		routines: make(map[Routine]bool),
		stemmers: option.Stemmers,
		out:      printer{w: option.Output},
		logger:   option.Logger.With(zap.String("run_id", xid.New().String())),
	}
	for _, routine := range option.Routines {
		result.routines[routine] = true
	}
	return result, nil
}

// ModelPath returns the location of a model file inside the model directory.
// Absolute names are used as they are.
func (t *Tour) ModelPath(name string) string {
	if filepath.IsAbs(name) {
		return name
	}
	return filepath.Join(t.modelDir, name)
}

// Routines returns the enabled routines in run order.
func (t *Tour) Routines() []Routine {
	var result []Routine
	for _, routine := range AllRoutines {
		if t.routines[routine] {
			result = append(result, routine)
		}
	}
	return result
}

// Run executes the enabled routines one after another and stops at the
// first failure.
func (t *Tour) Run(ctx context.Context) error {
	for _, routine := range t.Routines() {
		if err := ctx.Err(); err != nil {
			return err
		}
		started := time.Now()
		t.logger.Debug("routine started", zap.String("routine", string(routine)))
		if err := t.runRoutine(routine); err != nil {
			t.logger.Error("routine failed", zap.String("routine", string(routine)), zap.Error(err))
			return fmt.Errorf("%s: %w", routine, err)
		}
		t.logger.Info("routine finished", zap.String("routine", string(routine)), zap.Duration("elapsed", time.Since(started)))
	}
	return nil
}

func (t *Tour) runRoutine(routine Routine) error {
	switch routine {
	case RoutineLanguageDetection:
		return t.LanguageDetection()
	case RoutineTokenization:
		return t.Tokenization()
	case RoutineSentenceDetection:
		return t.SentenceDetection()
	case RoutinePartOfSpeech:
		return t.PartOfSpeechTagging()
	case RoutineLemmatization:
		return t.Lemmatization()
	case RoutineStemming:
		return t.Stemming()
	case RoutineChunking:
		return t.Chunking()
	case RoutineNameFinding:
		return t.NameFinding()
	}
	return fmt.Errorf("unknown routine %q", routine)
}

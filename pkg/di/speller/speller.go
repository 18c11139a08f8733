package speller_di

import (
	"github.com/lintang-b-s/spellcheck/pkg/corpus"
	"github.com/lintang-b-s/spellcheck/pkg/di/config"
	"github.com/lintang-b-s/spellcheck/pkg/http/usecases"
	"github.com/lintang-b-s/spellcheck/pkg/speller"

	"github.com/spf13/viper"
	"go.uber.org/zap"
)

// New builds the frequency model from the corpus file named by CORPUS_FILE
// and hands out the engine the service layer wraps.
func New(_ *config.Config, log *zap.Logger) (usecases.Speller, error) {
	viper.SetDefault("CORPUS_FILE", "corpus.txt")
	corpusFile := viper.GetString("CORPUS_FILE")

	text, err := corpus.Load(corpusFile)
	if err != nil {
		return nil, err
	}

	engine := speller.NewSpeller(speller.NewFrequencyModel())
	if err := engine.BuildCorpus(text); err != nil {
		return nil, err
	}
	log.Info("frequency model built", zap.String("corpus_file", corpusFile),
		zap.Int("corpus_bytes", len(text)))

	return engine, nil
}

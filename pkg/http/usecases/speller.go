package usecases

import (
	"runtime"

	"github.com/lintang-b-s/spellcheck/pkg/concurrent"
	"github.com/lintang-b-s/spellcheck/pkg/speller"

	"go.uber.org/zap"
)

type SpellerService struct {
	log     *zap.Logger
	speller Speller
}

func New(log *zap.Logger, speller Speller) *SpellerService {
	return &SpellerService{
		log:     log,
		speller: speller,
	}
}

func (s *SpellerService) BuildCorpus(text string) error {
	if err := s.speller.BuildCorpus(text); err != nil {
		return err
	}
	s.log.Info("frequency model rebuilt", zap.Int("corpus_bytes", len(text)))
	return nil
}

func (s *SpellerService) SuggestAlternatives(word string) ([]string, error) {
	return s.speller.SuggestAlternatives(word)
}

func (s *SpellerService) Check(text string) ([]speller.SpellCheckItem, error) {
	return s.speller.Check(text)
}

func (s *SpellerService) AutoCorrect(text string) (string, error) {
	return s.speller.AutoCorrect(text)
}

type documentJob struct {
	id   int
	text string
}

func (j documentJob) JobID() int { return j.id }

type documentResult struct {
	id        int
	corrected string
	err       error
}

// AutoCorrectDocuments corrects texts on a worker pool. Every worker reads
// the same model snapshot, so results match correcting the documents one by
// one; order is preserved.
func (s *SpellerService) AutoCorrectDocuments(texts []string) ([]string, error) {
	if len(texts) == 0 {
		return []string{}, nil
	}

	workers := runtime.NumCPU()
	if workers > len(texts) {
		workers = len(texts)
	}

	worker := concurrent.NewBackgroundWorker(workers, len(texts),
		func(job documentJob) documentResult {
			corrected, err := s.speller.AutoCorrect(job.text)
			return documentResult{id: job.id, corrected: corrected, err: err}
		})
	worker.Start()
	for i, text := range texts {
		worker.TriggerProcessing(documentJob{id: i, text: text})
	}
	worker.Close()

	corrected := make([]string, len(texts))
	for result := range worker.Results() {
		if result.err != nil {
			return nil, result.err
		}
		corrected[result.id] = result.corrected
	}
	return corrected, nil
}

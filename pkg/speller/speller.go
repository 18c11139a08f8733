package speller

import (
	"sort"
	"strings"
)

// Speller is the spelling suggestion engine facade: one frequency model plus
// the two-generation nearest-known-word search on top of it.
type Speller struct {
	model *FrequencyModel
}

func NewSpeller(model *FrequencyModel) *Speller {
	return &Speller{model: model}
}

// BuildCorpus replaces the frequency model with one built from text.
func (s *Speller) BuildCorpus(text string) error {
	s.model.Build(text)
	return nil
}

// FindKnownWords returns the distinct members of words present in the model.
func (s *Speller) FindKnownWords(words []string) ([]string, error) {
	return s.model.FilterKnown(words)
}

// FindUnknownWords returns the distinct members of words absent from the model.
func (s *Speller) FindUnknownWords(words []string) ([]string, error) {
	return s.model.FilterUnknown(words)
}

// SuggestAlternatives returns known words near word, ranked by descending
// corpus frequency. A word already in the model short-circuits to itself. The
// search is a fixed two-generation pipeline: one-edit candidates filtered
// against the model and, only when none of those are known, the two-edit
// expansion of the full first generation. An empty result means nothing known
// lives within two edits.
func (s *Speller) SuggestAlternatives(word string) ([]string, error) {
	word = strings.ToLower(word)
	known, err := s.model.IsKnown(word)
	if err != nil {
		return nil, err
	}
	if known {
		return []string{word}, nil
	}

	gen1 := GenerateCandidates(word)
	known1, err := s.model.FilterKnown(gen1)
	if err != nil {
		return nil, err
	}
	if len(known1) > 0 {
		return s.rankByFrequency(known1)
	}

	// second generation expands every first-generation candidate, known or
	// not. cost is O((alphabet*len(word))^2) lookups, bound word length
	// externally if that matters.
	seen := make(map[string]struct{})
	gen2 := []string{}
	for _, candidate := range gen1 {
		for _, expanded := range GenerateCandidates(candidate) {
			if _, dup := seen[expanded]; dup {
				continue
			}
			seen[expanded] = struct{}{}
			gen2 = append(gen2, expanded)
		}
	}
	known2, err := s.model.FilterKnown(gen2)
	if err != nil {
		return nil, err
	}
	if len(known2) > 0 {
		return s.rankByFrequency(known2)
	}
	return []string{}, nil
}

// rankByFrequency sorts candidates by descending corpus frequency, ties
// broken by ascending lexicographic order so results are stable across runs.
func (s *Speller) rankByFrequency(candidates []string) ([]string, error) {
	frequencies := make(map[string]int, len(candidates))
	for _, candidate := range candidates {
		freq, err := s.model.Frequency(candidate)
		if err != nil {
			return nil, err
		}
		frequencies[candidate] = freq
	}

	sort.Slice(candidates, func(i, j int) bool {
		if frequencies[candidates[i]] != frequencies[candidates[j]] {
			return frequencies[candidates[i]] > frequencies[candidates[j]]
		}
		return candidates[i] < candidates[j]
	})
	return candidates, nil
}

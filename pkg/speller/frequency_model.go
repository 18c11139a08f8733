package speller

import (
	"strings"
	"sync/atomic"

	"github.com/lintang-b-s/spellcheck/pkg"
)

// FrequencyModel maps every known lowercase word to its occurrence count in
// the corpus it was built from. Build publishes a fresh immutable snapshot
// behind an atomic pointer, so readers racing a rebuild see either the old or
// the new mapping in full, never a partial one.
type FrequencyModel struct {
	snapshot atomic.Pointer[map[string]int]
}

func NewFrequencyModel() *FrequencyModel {
	return &FrequencyModel{}
}

// Build tokenizes text, counts the occurrences of each distinct word and
// replaces the whole mapping. Rebuilding with the same text yields the same
// mapping, counts never accumulate across builds.
func (fm *FrequencyModel) Build(text string) {
	counts := make(map[string]int)
	for _, word := range ExtractWords(text) {
		counts[word]++
	}
	fm.snapshot.Store(&counts)
}

func (fm *FrequencyModel) mapping() (map[string]int, error) {
	m := fm.snapshot.Load()
	if m == nil {
		return nil, pkg.ErrNotInitialized
	}
	return *m, nil
}

// IsKnown reports whether the lowercased word is a key in the mapping.
func (fm *FrequencyModel) IsKnown(word string) (bool, error) {
	m, err := fm.mapping()
	if err != nil {
		return false, err
	}
	_, ok := m[strings.ToLower(word)]
	return ok, nil
}

// Frequency returns the occurrence count of word. Unknown words have count
// zero, guard with IsKnown when the distinction matters.
func (fm *FrequencyModel) Frequency(word string) (int, error) {
	m, err := fm.mapping()
	if err != nil {
		return 0, err
	}
	return m[strings.ToLower(word)], nil
}

// FilterKnown returns the distinct known members of words, lowercased, in
// first-occurrence order.
func (fm *FrequencyModel) FilterKnown(words []string) ([]string, error) {
	return fm.filter(words, true)
}

// FilterUnknown returns the distinct unknown members of words, lowercased, in
// first-occurrence order.
func (fm *FrequencyModel) FilterUnknown(words []string) ([]string, error) {
	return fm.filter(words, false)
}

func (fm *FrequencyModel) filter(words []string, wantKnown bool) ([]string, error) {
	m, err := fm.mapping()
	if err != nil {
		return nil, err
	}

	seen := make(map[string]struct{}, len(words))
	filtered := []string{}
	for _, word := range words {
		word = strings.ToLower(word)
		if _, dup := seen[word]; dup {
			continue
		}
		seen[word] = struct{}{}
		if _, known := m[word]; known == wantKnown {
			filtered = append(filtered, word)
		}
	}
	return filtered, nil
}

package speller

import (
	"regexp"
	"strings"
)

// SpellCheckItem pairs an unknown word, as found in the checked text, with its
// ranked suggestions. Immutable once produced.
type SpellCheckItem struct {
	SuspectedWord         string   `json:"suspected_word"`
	SuggestedAlternatives []string `json:"suggested_alternatives"`
}

// Check returns one item per distinct unknown word in text, in
// first-occurrence order, each paired with its ranked suggestions (possibly
// empty).
func (s *Speller) Check(text string) ([]SpellCheckItem, error) {
	unknown, err := s.model.FilterUnknown(ExtractWords(text))
	if err != nil {
		return nil, err
	}

	items := make([]SpellCheckItem, 0, len(unknown))
	for _, word := range unknown {
		alternatives, err := s.SuggestAlternatives(word)
		if err != nil {
			return nil, err
		}
		items = append(items, SpellCheckItem{
			SuspectedWord:         word,
			SuggestedAlternatives: alternatives,
		})
	}
	return items, nil
}

// AutoCorrect rewrites text, replacing every occurrence of each unknown word
// that has suggestions with its top suggestion. An occurrence whose first
// character was uppercase keeps an uppercase first character.
//
// Matching is case-insensitive and substring based: a suspected word that is
// a substring of a longer word gets replaced inside that word too. The item
// set is fixed by a single Check against the original input, but each item is
// applied to the text as mutated by the items before it, so corrections can
// interact. Both are documented behavior.
func (s *Speller) AutoCorrect(text string) (string, error) {
	items, err := s.Check(text)
	if err != nil {
		return "", err
	}

	for _, item := range items {
		if len(item.SuggestedAlternatives) == 0 {
			continue
		}
		replacement := item.SuggestedAlternatives[0]
		pattern := regexp.MustCompile(`(?i)` + regexp.QuoteMeta(item.SuspectedWord))
		text = pattern.ReplaceAllStringFunc(text, func(match string) string {
			if match[0] >= 'A' && match[0] <= 'Z' {
				return strings.ToUpper(replacement[:1]) + replacement[1:]
			}
			return replacement
		})
	}
	return text, nil
}

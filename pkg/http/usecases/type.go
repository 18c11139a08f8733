package usecases

import "github.com/lintang-b-s/spellcheck/pkg/speller"

type Speller interface {
	BuildCorpus(text string) error
	FindKnownWords(words []string) ([]string, error)
	FindUnknownWords(words []string) ([]string, error)
	SuggestAlternatives(word string) ([]string, error)
	Check(text string) ([]speller.SpellCheckItem, error)
	AutoCorrect(text string) (string, error)
}

package controllers

import "github.com/lintang-b-s/spellcheck/pkg/speller"

type SpellerService interface {
	BuildCorpus(text string) error
	SuggestAlternatives(word string) ([]string, error)
	Check(text string) ([]speller.SpellCheckItem, error)
	AutoCorrect(text string) (string, error)
	AutoCorrectDocuments(texts []string) ([]string, error)
}

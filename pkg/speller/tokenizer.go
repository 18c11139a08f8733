package speller

import (
	"regexp"
	"strings"
)

var wordPattern = regexp.MustCompile("[a-z]+")

// ExtractWords returns the lowercase of every maximal run of roman letters in
// text, in order of appearance and not deduplicated (frequency counting
// depends on the repeats). Digits, punctuation and accented letters act as
// separators and are dropped.
func ExtractWords(text string) []string {
	return wordPattern.FindAllString(strings.ToLower(text), -1)
}

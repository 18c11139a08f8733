package speller

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractWords(t *testing.T) {
	tests := []struct {
		name string
		text string

		wantRes []string
	}{
		{
			name:    "mixed case and punctuation",
			text:    "The quick, brown fox!",
			wantRes: []string{"the", "quick", "brown", "fox"},
		},
		{
			name:    "repeats are kept",
			text:    "the the THE",
			wantRes: []string{"the", "the", "the"},
		},
		{
			name:    "digits split runs",
			text:    "abc123def",
			wantRes: []string{"abc", "def"},
		},
		{
			name:    "accented letters split runs",
			text:    "café résumé",
			wantRes: []string{"caf", "r", "sum"},
		},
		{
			name:    "no letters at all",
			text:    "123 !?",
			wantRes: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.wantRes, ExtractWords(tt.text))
		})
	}
}

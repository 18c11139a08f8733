package speller

import (
	"testing"

	"github.com/lintang-b-s/spellcheck/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSpeller(t *testing.T, corpus string) *Speller {
	t.Helper()
	speller := NewSpeller(NewFrequencyModel())
	require.NoError(t, speller.BuildCorpus(corpus))
	return speller
}

func TestSpellerNotInitialized(t *testing.T) {
	speller := NewSpeller(NewFrequencyModel())

	_, err := speller.SuggestAlternatives("teh")
	assert.ErrorIs(t, err, pkg.ErrNotInitialized)

	_, err = speller.FindKnownWords([]string{"teh"})
	assert.ErrorIs(t, err, pkg.ErrNotInitialized)

	_, err = speller.Check("teh")
	assert.ErrorIs(t, err, pkg.ErrNotInitialized)

	_, err = speller.AutoCorrect("teh")
	assert.ErrorIs(t, err, pkg.ErrNotInitialized)
}

func TestSuggestAlternatives(t *testing.T) {
	speller := newTestSpeller(t, "the quick brown fox the the")

	tests := []struct {
		name string
		word string

		wantRes []string
	}{
		{
			name:    "known word short-circuits to itself",
			word:    "quick",
			wantRes: []string{"quick"},
		},
		{
			name:    "known word any casing returns lowercase",
			word:    "QuIcK",
			wantRes: []string{"quick"},
		},
		{
			name:    "one edit away",
			word:    "teh",
			wantRes: []string{"the"},
		},
		{
			name:    "two edits away",
			word:    "tehh",
			wantRes: []string{"the"},
		},
		{
			name:    "nothing within two generations",
			word:    "xzqvt",
			wantRes: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := speller.SuggestAlternatives(tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRes, got)
		})
	}
}

func TestSuggestAlternativesRanking(t *testing.T) {
	// bat and rat tie on frequency, lexicographic order breaks the tie.
	speller := newTestSpeller(t, "cat bat bat rat rat")

	got, err := speller.SuggestAlternatives("zat")
	require.NoError(t, err)
	assert.Equal(t, []string{"bat", "rat", "cat"}, got)
}

func TestCheck(t *testing.T) {
	speller := newTestSpeller(t, "i saw the quick brown fox the the")

	t.Run("single unknown word", func(t *testing.T) {
		items, err := speller.Check("I saw teh fox")
		require.NoError(t, err)
		assert.Equal(t, []SpellCheckItem{
			{SuspectedWord: "teh", SuggestedAlternatives: []string{"the"}},
		}, items)
	})

	t.Run("distinct items in first-occurrence order", func(t *testing.T) {
		items, err := speller.Check("xzqvt teh fox teh Xzqvt")
		require.NoError(t, err)
		require.Len(t, items, 2)
		assert.Equal(t, "xzqvt", items[0].SuspectedWord)
		assert.Empty(t, items[0].SuggestedAlternatives)
		assert.Equal(t, "teh", items[1].SuspectedWord)
		assert.Equal(t, []string{"the"}, items[1].SuggestedAlternatives)
	})

	t.Run("clean text yields no items", func(t *testing.T) {
		items, err := speller.Check("I saw the fox")
		require.NoError(t, err)
		assert.Empty(t, items)
	})
}

func TestAutoCorrect(t *testing.T) {
	speller := newTestSpeller(t, "the quick brown fox the the")

	tests := []struct {
		name string
		text string

		wantRes string
	}{
		{
			name:    "simple correction",
			text:    "I saw teh fox",
			wantRes: "I saw the fox",
		},
		{
			name:    "capitalization is preserved",
			text:    "Teh fox",
			wantRes: "The fox",
		},
		{
			name:    "capitalization is preserved per occurrence",
			text:    "Teh fox saw teh fox",
			wantRes: "The fox saw the fox",
		},
		{
			name:    "no known word within two generations leaves text unchanged",
			text:    "xzqvt fox",
			wantRes: "xzqvt fox",
		},
		{
			name:    "clean text passes through",
			text:    "The quick brown fox",
			wantRes: "The quick brown fox",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := speller.AutoCorrect(tt.text)
			require.NoError(t, err)
			assert.Equal(t, tt.wantRes, got)
		})
	}
}

// substring matching is documented behavior: a suspected word that is a
// substring of a longer word is rewritten inside that word, and later items
// see the already-edited text.
func TestAutoCorrectSubstringBehavior(t *testing.T) {
	speller := newTestSpeller(t, "the cat")

	got, err := speller.AutoCorrect("teh tehre")
	require.NoError(t, err)
	assert.Equal(t, "the there", got)
}

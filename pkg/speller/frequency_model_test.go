package speller

import (
	"testing"

	"github.com/lintang-b-s/spellcheck/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFrequencyModelNotInitialized(t *testing.T) {
	model := NewFrequencyModel()

	_, err := model.IsKnown("the")
	assert.ErrorIs(t, err, pkg.ErrNotInitialized)

	_, err = model.Frequency("the")
	assert.ErrorIs(t, err, pkg.ErrNotInitialized)

	_, err = model.FilterKnown([]string{"the"})
	assert.ErrorIs(t, err, pkg.ErrNotInitialized)

	_, err = model.FilterUnknown([]string{"the"})
	assert.ErrorIs(t, err, pkg.ErrNotInitialized)
}

func TestFrequencyModelBuild(t *testing.T) {
	model := NewFrequencyModel()
	model.Build("the quick brown fox the the")

	t.Run("counts per word", func(t *testing.T) {
		for word, wantCount := range map[string]int{
			"the": 3, "quick": 1, "brown": 1, "fox": 1,
		} {
			known, err := model.IsKnown(word)
			require.NoError(t, err)
			assert.True(t, known, word)

			count, err := model.Frequency(word)
			require.NoError(t, err)
			assert.Equal(t, wantCount, count, word)
		}
	})

	t.Run("queries are case-insensitive", func(t *testing.T) {
		known, err := model.IsKnown("The")
		require.NoError(t, err)
		assert.True(t, known)

		count, err := model.Frequency("THE")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("unknown word", func(t *testing.T) {
		known, err := model.IsKnown("teh")
		require.NoError(t, err)
		assert.False(t, known)
	})

	t.Run("rebuild is idempotent", func(t *testing.T) {
		model.Build("the quick brown fox the the")
		count, err := model.Frequency("the")
		require.NoError(t, err)
		assert.Equal(t, 3, count)
	})

	t.Run("rebuild replaces the mapping wholesale", func(t *testing.T) {
		replaced := NewFrequencyModel()
		replaced.Build("alpha alpha")
		replaced.Build("beta")

		known, err := replaced.IsKnown("alpha")
		require.NoError(t, err)
		assert.False(t, known)

		count, err := replaced.Frequency("beta")
		require.NoError(t, err)
		assert.Equal(t, 1, count)
	})
}

func TestFrequencyModelFilter(t *testing.T) {
	model := NewFrequencyModel()
	model.Build("the quick brown fox")

	t.Run("known keeps first-occurrence order and dedups", func(t *testing.T) {
		known, err := model.FilterKnown([]string{"Fox", "teh", "the", "THE", "quick"})
		require.NoError(t, err)
		assert.Equal(t, []string{"fox", "the", "quick"}, known)
	})

	t.Run("unknown keeps first-occurrence order and dedups", func(t *testing.T) {
		unknown, err := model.FilterUnknown([]string{"teh", "fox", "Teh", "xyzzy"})
		require.NoError(t, err)
		assert.Equal(t, []string{"teh", "xyzzy"}, unknown)
	})
}

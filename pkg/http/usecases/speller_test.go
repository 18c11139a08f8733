package usecases

import (
	"testing"

	"github.com/lintang-b-s/spellcheck/pkg"
	"github.com/lintang-b-s/spellcheck/pkg/speller"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestService(t *testing.T, corpus string) *SpellerService {
	t.Helper()
	engine := speller.NewSpeller(speller.NewFrequencyModel())
	service := New(zap.NewNop(), engine)
	if corpus != "" {
		require.NoError(t, service.BuildCorpus(corpus))
	}
	return service
}

func TestAutoCorrectDocuments(t *testing.T) {
	service := newTestService(t, "the quick brown fox the the")

	t.Run("corrects each document independently, order preserved", func(t *testing.T) {
		corrected, err := service.AutoCorrectDocuments([]string{
			"I saw teh fox",
			"Teh fox",
			"xzqvt fox",
		})
		require.NoError(t, err)
		assert.Equal(t, []string{
			"I saw the fox",
			"The fox",
			"xzqvt fox",
		}, corrected)
	})

	t.Run("empty batch", func(t *testing.T) {
		corrected, err := service.AutoCorrectDocuments([]string{})
		require.NoError(t, err)
		assert.Empty(t, corrected)
	})

	t.Run("many documents share one snapshot", func(t *testing.T) {
		texts := make([]string, 64)
		want := make([]string, 64)
		for i := range texts {
			texts[i] = "teh fox"
			want[i] = "the fox"
		}
		corrected, err := service.AutoCorrectDocuments(texts)
		require.NoError(t, err)
		assert.Equal(t, want, corrected)
	})
}

func TestAutoCorrectDocumentsNotInitialized(t *testing.T) {
	service := newTestService(t, "")

	_, err := service.AutoCorrectDocuments([]string{"teh fox"})
	assert.ErrorIs(t, err, pkg.ErrNotInitialized)
}

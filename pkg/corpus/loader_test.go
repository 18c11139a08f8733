package corpus

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lintang-b-s/spellcheck/pkg"
)

func TestLoadPlainText(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "corpus.txt")
	require.NoError(t, os.WriteFile(filename, []byte("the quick brown fox"), 0600))

	text, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, "the quick brown fox", text)
}

func TestLoadGzip(t *testing.T) {
	filename := filepath.Join(t.TempDir(), "corpus.txt.gz")
	file, err := os.Create(filename)
	require.NoError(t, err)

	gzWriter := gzip.NewWriter(file)
	_, err = gzWriter.Write([]byte("the quick brown fox"))
	require.NoError(t, err)
	require.NoError(t, gzWriter.Close())
	require.NoError(t, file.Close())

	text, err := Load(filename)
	require.NoError(t, err)
	assert.Equal(t, "the quick brown fox", text)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "no-such-corpus.txt"))
	assert.ErrorIs(t, err, pkg.ErrCorpusLoad)
}

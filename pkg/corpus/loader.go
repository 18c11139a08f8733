package corpus

import (
	"io"
	"os"
	"strings"

	"github.com/k0kubun/go-ansi"
	"github.com/klauspost/compress/gzip"
	"github.com/schollz/progressbar/v3"

	"github.com/lintang-b-s/spellcheck/pkg"
)

// Load reads the corpus file at filename into raw text. Files ending in .gz
// are gunzipped transparently. Every failure wraps pkg.ErrCorpusLoad so the
// caller can keep its previous model intact and report the load separately.
func Load(filename string) (string, error) {
	file, err := os.Open(filename)
	if err != nil {
		return "", pkg.WrapErrorf(err, pkg.ErrCorpusLoad, "error when opening corpus file %s", filename)
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return "", pkg.WrapErrorf(err, pkg.ErrCorpusLoad, "error when getting file stat %s", filename)
	}

	bar := progressbar.NewOptions(int(stat.Size()),
		progressbar.OptionSetWriter(ansi.NewAnsiStdout()),
		progressbar.OptionEnableColorCodes(true),
		progressbar.OptionShowBytes(true),
		progressbar.OptionSetWidth(15),
		progressbar.OptionSetDescription("[cyan][1/2]Reading corpus..."),
		progressbar.OptionSetTheme(progressbar.Theme{
			Saucer:        "[green]=[reset]",
			SaucerHead:    "[green]>[reset]",
			SaucerPadding: " ",
			BarStart:      "[",
			BarEnd:        "]",
		}))

	var reader io.Reader = io.TeeReader(file, bar)
	if strings.HasSuffix(filename, ".gz") {
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return "", pkg.WrapErrorf(err, pkg.ErrCorpusLoad, "error when opening gzip corpus %s", filename)
		}
		defer gzReader.Close()
		reader = gzReader
	}

	text, err := io.ReadAll(reader)
	if err != nil {
		return "", pkg.WrapErrorf(err, pkg.ErrCorpusLoad, "error when reading corpus file %s", filename)
	}
	return string(text), nil
}

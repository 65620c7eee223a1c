package loader

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockAnalyzer/internal/model"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func TestLoader_ReadsFiles(t *testing.T) {
	dir := t.TempDir()
	var logs bytes.Buffer
	l := &Loader{
		FundamentalsFile: writeFile(t, dir, "fundamenta.txt", "Ericsson\n38\n14.2\n1.1\n"),
		PricesFile:       writeFile(t, dir, "kurser.txt", "Ericsson\nd1 1\nd2 oops\nd3 3\n"),
		BenchmarkFile:    writeFile(t, dir, "omx.txt", "d1 10\nd2 11\n"),
		Instruments:      known,
		Log:              zerolog.New(&logs),
	}

	recs, err := l.Fundamentals()
	require.NoError(t, err)
	assert.Contains(t, recs, "Ericsson")

	book, err := l.Prices()
	require.NoError(t, err)
	s, _ := book.Series("Ericsson")
	assert.Equal(t, model.PriceSeries{1, 3}, s)
	assert.Contains(t, logs.String(), "unparsable price, skipped")

	bench, err := l.Benchmark()
	require.NoError(t, err)
	assert.Equal(t, model.PriceSeries{10, 11}, bench)
}

func TestLoader_MissingFile(t *testing.T) {
	dir := t.TempDir()
	l := &Loader{
		FundamentalsFile: filepath.Join(dir, "none1.txt"),
		PricesFile:       filepath.Join(dir, "none2.txt"),
		BenchmarkFile:    filepath.Join(dir, "none3.txt"),
		Log:              zerolog.Nop(),
	}

	_, err := l.Fundamentals()
	assert.ErrorIs(t, err, model.ErrMissingFile)
	assert.Contains(t, err.Error(), "none1.txt")

	_, err = l.Prices()
	assert.ErrorIs(t, err, model.ErrMissingFile)

	_, err = l.Benchmark()
	assert.ErrorIs(t, err, model.ErrMissingFile)
}

package loader

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/rs/zerolog"

	"StockAnalyzer/internal/model"
)

// Loader reads the three data files from disk. Every call reads the file
// again; nothing is cached.
type Loader struct {
	FundamentalsFile string
	PricesFile       string
	BenchmarkFile    string
	Instruments      []string
	Log              zerolog.Logger
}

// Fundamentals reads the fundamentals file.
func (l *Loader) Fundamentals() (map[string]model.FundamentalRecord, error) {
	f, err := open(l.FundamentalsFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	recs, bad, err := ParseFundamentals(f, l.FundamentalsFile)
	if err != nil {
		return nil, err
	}
	l.report(bad)
	l.Log.Debug().Str("file", l.FundamentalsFile).Int("records", len(recs)).Msg("fundamentals loaded")
	return recs, nil
}

// Prices reads the price history file.
func (l *Loader) Prices() (*model.PriceBook, error) {
	f, err := open(l.PricesFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	book, bad, err := ParsePrices(f, l.PricesFile, l.Instruments)
	if err != nil {
		return nil, err
	}
	l.report(bad)
	l.Log.Debug().Str("file", l.PricesFile).Int("instruments", book.Len()).Msg("prices loaded")
	return book, nil
}

// Benchmark reads the benchmark index file.
func (l *Loader) Benchmark() (model.PriceSeries, error) {
	f, err := open(l.BenchmarkFile)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	series, bad, err := ParseBenchmark(f, l.BenchmarkFile)
	if err != nil {
		return nil, err
	}
	l.report(bad)
	l.Log.Debug().Str("file", l.BenchmarkFile).Int("observations", len(series)).Msg("benchmark loaded")
	return series, nil
}

func (l *Loader) report(bad []*model.MalformedRecordError) {
	for _, e := range bad {
		l.Log.Warn().Str("file", e.File).Int("line", e.Line).Str("text", e.Text).Msg(e.Reason + ", skipped")
	}
}

func open(path string) (*os.File, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", model.ErrMissingFile, path)
	}
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", path, err)
	}
	return f, nil
}

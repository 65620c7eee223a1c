package loader

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockAnalyzer/internal/model"
)

var known = []string{"Ericsson", "Electrolux", "AstraZeneca"}

func TestParseFundamentals(t *testing.T) {
	in := "Ericsson\n38\n14.2\n1.1\nElectrolux\n21\n-\n0.3\n"

	recs, bad, err := ParseFundamentals(strings.NewReader(in), "fundamenta.txt")
	require.NoError(t, err)
	assert.Empty(t, bad)
	require.Len(t, recs, 2)
	assert.Equal(t, model.FundamentalRecord{Name: "Ericsson", Solvency: "38", PE: "14.2", PS: "1.1"}, recs["Ericsson"])
	assert.Equal(t, "-", recs["Electrolux"].PE)
}

func TestParseFundamentals_IncompleteTrailingRecord(t *testing.T) {
	in := "Ericsson\n38\n14.2\n1.1\nAstraZeneca\n45\n"

	recs, bad, err := ParseFundamentals(strings.NewReader(in), "f.txt")
	require.NoError(t, err)
	assert.Len(t, recs, 1)
	require.Len(t, bad, 1)
	assert.ErrorIs(t, bad[0], model.ErrMalformedRecord)
	assert.Equal(t, 5, bad[0].Line)
}

func TestParseFundamentals_NoResync(t *testing.T) {
	// Missing P/S for Ericsson shifts the following record.
	in := "Ericsson\n38\n14.2\nElectrolux\n21\n9\n0.3\n"

	recs, bad, err := ParseFundamentals(strings.NewReader(in), "f.txt")
	require.NoError(t, err)
	assert.Equal(t, "Electrolux", recs["Ericsson"].PS)
	assert.NotContains(t, recs, "Electrolux")
	assert.Len(t, bad, 1)
}

func TestParseFundamentals_Empty(t *testing.T) {
	recs, bad, err := ParseFundamentals(strings.NewReader("  \n"), "f.txt")
	require.NoError(t, err)
	assert.Empty(t, recs)
	assert.Empty(t, bad)
}

func TestParsePrices(t *testing.T) {
	in := strings.Join([]string{
		"2024-01-01 5",
		"Ericsson",
		"2024-01-01 60.5",
		"2024-01-02 61",
		"2024-01-03 n/a",
		"garbage",
		"2024-01-04 62 extra",
		"",
		"Electrolux",
		"2024-01-01 100",
		"AstraZeneca",
		"2024-01-01 1400",
		"Ericsson",
		"2024-02-01 70",
	}, "\n")

	book, bad, err := ParsePrices(strings.NewReader(in), "kurser.txt", known)
	require.NoError(t, err)

	// a repeated header restarts the series but keeps its position
	assert.Equal(t, []string{"Ericsson", "Electrolux", "AstraZeneca"}, book.Names())
	eric, ok := book.Series("Ericsson")
	require.True(t, ok)
	assert.Equal(t, model.PriceSeries{70}, eric)
	elux, _ := book.Series("Electrolux")
	assert.Equal(t, model.PriceSeries{100}, elux)

	require.Len(t, bad, 4)
	assert.Equal(t, 1, bad[0].Line)
	assert.Equal(t, "price before any instrument header", bad[0].Reason)
	assert.Equal(t, "unparsable price", bad[1].Reason)
	assert.Equal(t, "expected 2 tokens, got 1", bad[2].Reason)
	assert.Equal(t, "expected 2 tokens, got 3", bad[3].Reason)
	for _, b := range bad {
		assert.ErrorIs(t, b, model.ErrMalformedRecord)
	}
}

func TestParsePrices_UnknownHeaderIsMalformed(t *testing.T) {
	in := "Ericsson\nd1 1\nVolvo\nd2 2\n"
	book, bad, err := ParsePrices(strings.NewReader(in), "k.txt", known)
	require.NoError(t, err)
	eric, _ := book.Series("Ericsson")
	assert.Equal(t, model.PriceSeries{1, 2}, eric)
	assert.Len(t, bad, 1)
}

func TestParsePrices_NonFinite(t *testing.T) {
	in := "Ericsson\nd1 NaN\nd2 1\nd3 Inf\nd4 -inf\nd5 1e400\nd6 2\n"
	book, bad, err := ParsePrices(strings.NewReader(in), "kurser.txt", known)
	require.NoError(t, err)
	eric, _ := book.Series("Ericsson")
	assert.Equal(t, model.PriceSeries{1, 2}, eric)

	require.Len(t, bad, 4)
	assert.Equal(t, "non-finite price", bad[0].Reason)
	assert.Equal(t, "non-finite price", bad[1].Reason)
	assert.Equal(t, "non-finite price", bad[2].Reason)
	assert.Equal(t, "unparsable price", bad[3].Reason)
}

func TestParseBenchmark(t *testing.T) {
	in := "2024-01-01 2300.5\r\n2024-01-02 x\r\nbad line here\r\n2024-01-03 2310\r\n"
	series, bad, err := ParseBenchmark(strings.NewReader(in), "omx.txt")
	require.NoError(t, err)
	assert.Equal(t, model.PriceSeries{2300.5, 2310}, series)
	assert.Len(t, bad, 2)
}

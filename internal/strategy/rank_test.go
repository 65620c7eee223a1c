package strategy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"StockAnalyzer/internal/model"
)

func bookOf(t *testing.T, rows ...any) *model.PriceBook {
	t.Helper()
	b := model.NewPriceBook()
	for i := 0; i < len(rows); i += 2 {
		name := rows[i].(string)
		b.Reset(name)
		for _, p := range rows[i+1].(model.PriceSeries) {
			b.Append(name, p)
		}
	}
	return b
}

var benchmark = model.PriceSeries{100, 100, 100, 100, 200} // +100%

func TestRankByBeta_DescendingAndExcludesUnavailable(t *testing.T) {
	book := bookOf(t,
		"A", model.PriceSeries{100, 100, 100, 100, 150}, // 0.5
		"B", model.PriceSeries{100, 100, 100, 100, 220}, // 1.2
		"C", model.PriceSeries{100, 100, 100, 100, 300},
	)
	overrides := map[string]model.Quote{}

	got := RankByBeta(book, benchmark, overrides)
	require.Len(t, got, 3)
	assert.Equal(t, model.RankEntry{Position: 1, Instrument: "C", Beta: 2}, got[0])
	assert.Equal(t, model.RankEntry{Position: 2, Instrument: "B", Beta: 1.2}, got[1])
	assert.Equal(t, model.RankEntry{Position: 3, Instrument: "A", Beta: 0.5}, got[2])

	flat := model.PriceSeries{100, 100, 100, 100, 100}
	assert.Empty(t, RankByBeta(book, flat, overrides))
}

func TestRankByBeta_StableTies(t *testing.T) {
	book := bookOf(t,
		"X", model.PriceSeries{10, 10, 10, 10, 20},
		"Y", model.PriceSeries{5, 5, 5, 5, 10},
		"Z", model.PriceSeries{1, 1, 1, 1, 2},
	)
	got := RankByBeta(book, benchmark, nil)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"X", "Y", "Z"}, []string{got[0].Instrument, got[1].Instrument, got[2].Instrument})
	assert.Equal(t, []int{1, 2, 3}, []int{got[0].Position, got[1].Position, got[2].Position})
}

func TestRank_SkipsShortAndInvalid(t *testing.T) {
	book := bookOf(t,
		"Short", model.PriceSeries{1, 2, 3, 4},
		"Zero", model.PriceSeries{0, 2, 3, 4, 5},
		"Good", model.PriceSeries{100, 100, 100, 100, 150},
	)
	entries, skipped := Rank(book, benchmark, nil)
	require.Len(t, entries, 1)
	assert.Equal(t, "Good", entries[0].Instrument)

	require.Len(t, skipped, 2)
	assert.Equal(t, "Short", skipped[0].Instrument)
	assert.ErrorIs(t, skipped[0].Reason, model.ErrInsufficientData)
	assert.Equal(t, "Zero", skipped[1].Instrument)
	assert.ErrorIs(t, skipped[1].Reason, model.ErrInvalidInput)

	short := model.PriceSeries{100, 200}
	entries, skipped = Rank(book, short, nil)
	assert.Empty(t, entries)
	assert.Len(t, skipped, 3)
}

func TestRankByBeta_UsesOverrides(t *testing.T) {
	book := bookOf(t,
		"A", model.PriceSeries{100, 100, 100, 100, 150},
		"B", model.PriceSeries{100, 100, 100, 100, 120},
	)
	got := RankByBeta(book, benchmark, map[string]model.Quote{"B": model.Found(300)})
	require.Len(t, got, 2)
	assert.Equal(t, "B", got[0].Instrument)
	assert.Equal(t, 2.0, got[0].Beta)
	assert.Equal(t, "A", got[1].Instrument)
}

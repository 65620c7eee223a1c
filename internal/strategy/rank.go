package strategy

import (
	"sort"

	"StockAnalyzer/internal/calculator"
	"StockAnalyzer/internal/model"
)

// Skipped explains why an instrument was left out of a ranking.
type Skipped struct {
	Instrument string
	Reason     error
}

// RankByBeta computes the beta of every instrument in book and returns them
// ordered by beta, highest first. Instruments with too little data, invalid
// prices or an unavailable beta are left out. Equal betas keep book order.
func RankByBeta(book *model.PriceBook, benchmark model.PriceSeries, overrides map[string]model.Quote) []model.RankEntry {
	entries, _ := Rank(book, benchmark, overrides)
	return entries
}

// Rank is RankByBeta that also reports which instruments were skipped.
func Rank(book *model.PriceBook, benchmark model.PriceSeries, overrides map[string]model.Quote) ([]model.RankEntry, []Skipped) {
	var (
		entries []model.RankEntry
		skipped []Skipped
	)
	for _, name := range book.Names() {
		series, _ := book.Series(name)
		if !calculator.Sufficient(series, benchmark) {
			skipped = append(skipped, Skipped{Instrument: name, Reason: model.ErrInsufficientData})
			continue
		}
		res, err := calculator.ComputeReturnAndBeta(series, benchmark, overrides[name])
		if err != nil {
			skipped = append(skipped, Skipped{Instrument: name, Reason: err})
			continue
		}
		beta, ok := res.Beta.Value()
		if !ok {
			skipped = append(skipped, Skipped{Instrument: name, Reason: errBetaUnavailable})
			continue
		}
		entries = append(entries, model.RankEntry{Instrument: name, Beta: beta})
	}

	sort.SliceStable(entries, func(i, j int) bool { return entries[i].Beta > entries[j].Beta })
	for i := range entries {
		entries[i].Position = i + 1
	}
	return entries, skipped
}

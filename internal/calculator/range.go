package calculator

import (
	"errors"
	"math"

	"StockAnalyzer/internal/model"
)

// HighLow scans the whole series and returns its highest and lowest price.
func HighLow(series model.PriceSeries) (high, low float64, err error) {
	if len(series) == 0 {
		return 0, 0, errors.New("no prices provided")
	}
	high = math.Inf(-1)
	low = math.Inf(1)
	for _, p := range series {
		if p > high {
			high = p
		}
		if p < low {
			low = p
		}
	}
	return high, low, nil
}

// PeriodReturn returns last/first - 1 for the series.
func PeriodReturn(first, last float64) (float64, error) {
	if first <= 0 {
		return 0, errors.New("starting price must be positive")
	}
	return last/first - 1, nil
}

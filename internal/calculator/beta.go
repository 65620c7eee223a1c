package calculator

import (
	"fmt"
	"math"

	"github.com/shopspring/decimal"

	"StockAnalyzer/internal/model"
)

const (
	// MinObservations is the minimum length of both the instrument series
	// and the benchmark series.
	MinObservations = 5

	// MinBenchmarkReturn is the smallest absolute benchmark return for which
	// a beta is reported.
	MinBenchmarkReturn = 0.01
)

// Sufficient reports whether both series are long enough to analyse.
func Sufficient(series, benchmark model.PriceSeries) bool {
	return len(series) >= MinObservations && len(benchmark) >= MinObservations
}

// Round2 rounds v to two decimals, half away from zero. NaN and ±Inf are
// returned unchanged.
func Round2(v float64) float64 {
	if !finite(v) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

// ComputeReturnAndBeta computes the percentage return of series over its
// whole span and its beta against benchmark. When latest holds a price it
// replaces the last stored observation as end price; high and low always
// cover the stored series only.
func ComputeReturnAndBeta(series, benchmark model.PriceSeries, latest model.Quote) (model.BetaResult, error) {
	if !Sufficient(series, benchmark) {
		return model.BetaResult{}, fmt.Errorf("%w: %d observations, %d benchmark observations, need %d",
			model.ErrInsufficientData, len(series), len(benchmark), MinObservations)
	}

	start := series[0]
	end, live := latest.Price()
	if !live {
		end = series.Last()
	}

	instrumentReturn, err := PeriodReturn(start, end)
	if err != nil {
		return model.BetaResult{}, fmt.Errorf("%w: instrument: %v", model.ErrInvalidInput, err)
	}
	benchmarkReturn, err := PeriodReturn(benchmark[0], benchmark.Last())
	if err != nil {
		return model.BetaResult{}, fmt.Errorf("%w: benchmark: %v", model.ErrInvalidInput, err)
	}

	percent := instrumentReturn * 100
	if !finite(start, end, instrumentReturn, benchmarkReturn, percent) {
		return model.BetaResult{}, fmt.Errorf("%w: return of %v to %v is not a finite number", model.ErrInvalidInput, start, end)
	}

	beta := model.BetaUnavailable()
	if math.Abs(benchmarkReturn) >= MinBenchmarkReturn {
		ratio := instrumentReturn / benchmarkReturn
		if !finite(ratio) {
			return model.BetaResult{}, fmt.Errorf("%w: beta is not a finite number", model.ErrInvalidInput)
		}
		beta = model.BetaOf(Round2(ratio))
	}

	high, low, err := HighLow(series)
	if err != nil {
		return model.BetaResult{}, fmt.Errorf("%w: %v", model.ErrInsufficientData, err)
	}

	return model.BetaResult{
		PercentReturn: Round2(percent),
		Beta:          beta,
		High:          high,
		Low:           low,
		StartPrice:    start,
		EndPrice:      end,
		Live:          live,
	}, nil
}

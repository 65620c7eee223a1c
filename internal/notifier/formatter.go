package notifier

import (
	"fmt"
	"strconv"
	"strings"

	"StockAnalyzer/internal/model"
)

// Dialog titles.
const (
	TitleRanking = "Instrument ranking"
	TitleError   = "Error"
)

// FundamentalTitle returns the title of the fundamental analysis dialog.
func FundamentalTitle(instrument string) string {
	return "Fundamental analysis - " + instrument
}

// TechnicalTitle returns the title of the technical analysis dialog.
func TechnicalTitle(instrument string) string {
	return "Technical analysis - " + instrument
}

// FormatFundamental renders the fundamentals record verbatim.
func FormatFundamental(rec model.FundamentalRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Solvency: %s%%\n", rec.Solvency)
	fmt.Fprintf(&b, "P/E: %s\n", rec.PE)
	fmt.Fprintf(&b, "P/S: %s", rec.PS)
	return b.String()
}

// FormatNoFundamentals is shown when the selected instrument has no record.
func FormatNoFundamentals() string {
	return "No data found."
}

// FormatTechnical renders a BetaResult. An unavailable beta is shown as such.
func FormatTechnical(res model.BetaResult) string {
	beta := "unavailable"
	if v, ok := res.Beta.Value(); ok {
		beta = num(v)
	}
	source := "last stored price"
	if res.Live {
		source = "live quote"
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Price change: %s%%\n", num(res.PercentReturn))
	fmt.Fprintf(&b, "Beta: %s\n", beta)
	fmt.Fprintf(&b, "High: %s\n", num(res.High))
	fmt.Fprintf(&b, "Low: %s\n", num(res.Low))
	fmt.Fprintf(&b, "End price: %s (%s)", num(res.EndPrice), source)
	return b.String()
}

// FormatRanking renders the ranking as a numbered list.
func FormatRanking(entries []model.RankEntry) string {
	if len(entries) == 0 {
		return "No instruments could be ranked."
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = fmt.Sprintf("%d. %s - %s", e.Position, e.Instrument, num(e.Beta))
	}
	return strings.Join(lines, "\n")
}

// FormatHistory renders recorded analyses, newest first.
func FormatHistory(rows []model.BetaResult) string {
	if len(rows) == 0 {
		return "No analyses recorded."
	}
	lines := make([]string, len(rows))
	for i, r := range rows {
		beta := "unavailable"
		if v, ok := r.Beta.Value(); ok {
			beta = num(v)
		}
		lines[i] = fmt.Sprintf("%s: %s%%, beta %s", r.Instrument, num(r.PercentReturn), beta)
	}
	return strings.Join(lines, "\n")
}

func num(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

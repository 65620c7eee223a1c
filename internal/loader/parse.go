package loader

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"StockAnalyzer/internal/model"
)

// fundamentalLines is the number of lines in one fundamentals record:
// name, solvency, P/E and P/S.
const fundamentalLines = 4

// ParseFundamentals reads consecutive 4-line records. A trailing record with
// fewer than four lines is reported as malformed and dropped. Records are not
// resynchronised: a missing line shifts every record after it.
func ParseFundamentals(r io.Reader, file string) (map[string]model.FundamentalRecord, []*model.MalformedRecordError, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", file, err)
	}
	out := make(map[string]model.FundamentalRecord)
	text := strings.TrimSpace(string(data))
	if text == "" {
		return out, nil, nil
	}

	lines := strings.Split(text, "\n")
	for i := range lines {
		lines[i] = strings.TrimSpace(lines[i])
	}

	var bad []*model.MalformedRecordError
	for i := 0; i < len(lines); i += fundamentalLines {
		if i+fundamentalLines > len(lines) {
			bad = append(bad, &model.MalformedRecordError{
				File:   file,
				Line:   i + 1,
				Text:   lines[i],
				Reason: fmt.Sprintf("incomplete record, %d of %d lines", len(lines)-i, fundamentalLines),
			})
			break
		}
		rec := model.FundamentalRecord{
			Name:     lines[i],
			Solvency: lines[i+1],
			PE:       lines[i+2],
			PS:       lines[i+3],
		}
		out[rec.Name] = rec
	}
	return out, bad, nil
}

// ParsePrices reads a price history file. A line equal to one of the known
// instrument names starts that instrument's series; other lines must be
// "<date> <price>".
func ParsePrices(r io.Reader, file string, known []string) (*model.PriceBook, []*model.MalformedRecordError, error) {
	names := make(map[string]bool, len(known))
	for _, n := range known {
		names[n] = true
	}

	book := model.NewPriceBook()
	var (
		current string
		bad     []*model.MalformedRecordError
	)
	err := scanLines(r, func(n int, line string) {
		if names[line] {
			current = line
			book.Reset(current)
			return
		}
		if line == "" {
			return
		}
		if current == "" {
			bad = append(bad, &model.MalformedRecordError{File: file, Line: n, Text: line, Reason: "price before any instrument header"})
			return
		}
		price, reason := parsePriceLine(line)
		if reason != "" {
			bad = append(bad, &model.MalformedRecordError{File: file, Line: n, Text: line, Reason: reason})
			return
		}
		book.Append(current, price)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", file, err)
	}
	return book, bad, nil
}

// ParseBenchmark reads a single series of "<date> <price>" lines.
func ParseBenchmark(r io.Reader, file string) (model.PriceSeries, []*model.MalformedRecordError, error) {
	series := model.PriceSeries{}
	var bad []*model.MalformedRecordError
	err := scanLines(r, func(n int, line string) {
		if line == "" {
			return
		}
		price, reason := parsePriceLine(line)
		if reason != "" {
			bad = append(bad, &model.MalformedRecordError{File: file, Line: n, Text: line, Reason: reason})
			return
		}
		series = append(series, price)
	})
	if err != nil {
		return nil, nil, fmt.Errorf("read %s: %w", file, err)
	}
	return series, bad, nil
}

func scanLines(r io.Reader, fn func(n int, line string)) error {
	sc := bufio.NewScanner(r)
	n := 0
	for sc.Scan() {
		n++
		fn(n, strings.TrimSpace(sc.Text()))
	}
	return sc.Err()
}

// parsePriceLine returns the price token of a "<date> <price>" line, or a
// non-empty reason when the line is malformed.
func parsePriceLine(line string) (float64, string) {
	fields := strings.Fields(line)
	if len(fields) != 2 {
		return 0, fmt.Sprintf("expected 2 tokens, got %d", len(fields))
	}
	price, err := strconv.ParseFloat(fields[1], 64)
	if err != nil {
		return 0, "unparsable price"
	}
	if math.IsNaN(price) || math.IsInf(price, 0) {
		return 0, "non-finite price"
	}
	return price, ""
}

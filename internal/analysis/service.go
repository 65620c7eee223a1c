package analysis

import (
	"context"
	"fmt"

	"github.com/rs/zerolog"

	"StockAnalyzer/internal/calculator"
	"StockAnalyzer/internal/collector"
	"StockAnalyzer/internal/model"
	"StockAnalyzer/internal/recorder"
	"StockAnalyzer/internal/strategy"
)

// DataSource provides fresh copies of the three data files.
type DataSource interface {
	Fundamentals() (map[string]model.FundamentalRecord, error)
	Prices() (*model.PriceBook, error)
	Benchmark() (model.PriceSeries, error)
}

// QuoteResolver resolves live prices. It never fails.
type QuoteResolver interface {
	ResolveLatestPrice(ctx context.Context, in model.Instrument) model.Quote
}

// Service runs the user actions. Each call reads its inputs again and
// returns one result; nothing is kept between calls.
type Service struct {
	instruments []model.Instrument
	data        DataSource
	quotes      QuoteResolver
	rec         recorder.Recorder
	log         zerolog.Logger
}

// NewService creates a Service over the given catalogue. A nil recorder
// disables history.
func NewService(instruments []model.Instrument, data DataSource, quotes QuoteResolver, rec recorder.Recorder, log zerolog.Logger) *Service {
	if rec == nil {
		rec = recorder.NewNoopRecorder()
	}
	if quotes == nil {
		quotes = collector.NewResolver(nil, 0, log)
	}
	return &Service{
		instruments: instruments,
		data:        data,
		quotes:      quotes,
		rec:         rec,
		log:         log,
	}
}

// Instruments returns the catalogue.
func (s *Service) Instruments() []model.Instrument {
	return append([]model.Instrument(nil), s.instruments...)
}

func (s *Service) lookup(name string) (model.Instrument, error) {
	for _, in := range s.instruments {
		if in.Name == name {
			return in, nil
		}
	}
	return model.Instrument{}, fmt.Errorf("%w: %q", model.ErrUnknownInstrument, name)
}

// Fundamental returns the fundamentals record of the selected instrument.
func (s *Service) Fundamental(_ context.Context, name string) (model.FundamentalRecord, error) {
	if _, err := s.lookup(name); err != nil {
		return model.FundamentalRecord{}, err
	}
	recs, err := s.data.Fundamentals()
	if err != nil {
		return model.FundamentalRecord{}, err
	}
	rec, ok := recs[name]
	if !ok {
		return model.FundamentalRecord{}, fmt.Errorf("%w: no fundamentals for %q", model.ErrUnknownInstrument, name)
	}
	return rec, nil
}

// Technical computes return, beta and price range of the selected instrument.
func (s *Service) Technical(ctx context.Context, name string) (*model.BetaResult, error) {
	in, err := s.lookup(name)
	if err != nil {
		return nil, err
	}
	book, err := s.data.Prices()
	if err != nil {
		return nil, err
	}
	bench, err := s.data.Benchmark()
	if err != nil {
		return nil, err
	}

	series, _ := book.Series(name)
	if !calculator.Sufficient(series, bench) {
		return nil, fmt.Errorf("%w: %s has %d observations, benchmark has %d, need %d",
			model.ErrInsufficientData, name, len(series), len(bench), calculator.MinObservations)
	}

	res, err := calculator.ComputeReturnAndBeta(series, bench, s.quotes.ResolveLatestPrice(ctx, in))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}
	res.Instrument = name

	if err := s.rec.RecordAnalysis(&res); err != nil {
		s.log.Error().Err(err).Msg("record analysis")
	}
	s.log.Info().Str("instrument", name).Float64("return_pct", res.PercentReturn).Bool("live", res.Live).Msg("technical analysis")
	return &res, nil
}

// Rank orders every instrument with enough data by beta, highest first.
// Instruments whose beta is unavailable are left out.
func (s *Service) Rank(ctx context.Context) ([]model.RankEntry, error) {
	book, err := s.data.Prices()
	if err != nil {
		return nil, err
	}
	bench, err := s.data.Benchmark()
	if err != nil {
		return nil, err
	}

	overrides := make(map[string]model.Quote)
	for _, name := range book.Names() {
		series, _ := book.Series(name)
		if !calculator.Sufficient(series, bench) {
			continue
		}
		in, err := s.lookup(name)
		if err != nil {
			continue
		}
		overrides[name] = s.quotes.ResolveLatestPrice(ctx, in)
	}

	entries, skipped := strategy.Rank(book, bench, overrides)
	for _, sk := range skipped {
		s.log.Info().Str("instrument", sk.Instrument).AnErr("reason", sk.Reason).Msg("left out of ranking")
	}

	if err := s.rec.RecordRanking(entries); err != nil {
		s.log.Error().Err(err).Msg("record ranking")
	}
	return entries, nil
}

// History returns up to limit recorded technical analyses, newest first.
func (s *Service) History(limit int) ([]model.BetaResult, error) {
	return s.rec.RecentAnalyses(limit)
}

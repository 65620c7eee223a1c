package collector

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"StockAnalyzer/internal/calculator"
	"StockAnalyzer/internal/model"
)

// Resolver turns live lookups into quotes. It never fails: any lookup error
// yields an unavailable quote and the caller falls back to stored prices.
type Resolver struct {
	fetcher Fetcher
	limiter *rate.Limiter
	log     zerolog.Logger
}

// NewResolver wraps fetcher with a rate limit of perSecond lookups. A nil
// fetcher gives a resolver that always returns unavailable quotes.
func NewResolver(fetcher Fetcher, perSecond float64, log zerolog.Logger) *Resolver {
	limit := rate.Inf
	if perSecond > 0 {
		limit = rate.Limit(perSecond)
	}
	return &Resolver{
		fetcher: fetcher,
		limiter: rate.NewLimiter(limit, 1),
		log:     log,
	}
}

// Enabled reports whether the resolver performs live lookups.
func (r *Resolver) Enabled() bool { return r != nil && r.fetcher != nil }

// ResolveLatestPrice looks up the latest close of in, rounded to two
// decimals.
func (r *Resolver) ResolveLatestPrice(ctx context.Context, in model.Instrument) model.Quote {
	if !r.Enabled() {
		return model.Unavailable()
	}
	log := r.log.With().Str("instrument", in.Name).Str("ticker", in.Ticker).Str("source", r.fetcher.Name()).Logger()
	if in.Ticker == "" {
		log.Warn().Msg("no ticker configured, using stored price")
		return model.Unavailable()
	}
	if err := r.limiter.Wait(ctx); err != nil {
		log.Warn().Err(err).Msg("quote lookup cancelled, using stored price")
		return model.Unavailable()
	}

	price, err := r.fetcher.FetchLatestClose(ctx, in.Ticker)
	if err == nil && price <= 0 {
		err = errors.New("non-positive price")
	}
	if err != nil {
		log.Warn().Err(err).Msg("quote lookup failed, using stored price")
		return model.Unavailable()
	}
	price = calculator.Round2(price)
	log.Debug().Float64("price", price).Msg("live quote")
	return model.Found(price)
}

package collector

import (
	"context"
	"fmt"
	"sync"

	"StockAnalyzer/internal/model"
)

// MockFetcher returns fixed prices per ticker for development and testing.
// Tickers not in Prices fail with ErrRemoteLookup.
type MockFetcher struct {
	Prices map[string]float64
	Err    error

	mu    sync.Mutex
	calls []string
}

func (m *MockFetcher) Name() string { return "mock" }

func (m *MockFetcher) FetchLatestClose(_ context.Context, ticker string) (float64, error) {
	m.mu.Lock()
	m.calls = append(m.calls, ticker)
	m.mu.Unlock()

	if m.Err != nil {
		return 0, m.Err
	}
	p, ok := m.Prices[ticker]
	if !ok {
		return 0, fmt.Errorf("%w: no price for %s", model.ErrRemoteLookup, ticker)
	}
	return p, nil
}

// Calls returns the tickers requested so far.
func (m *MockFetcher) Calls() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.calls...)
}

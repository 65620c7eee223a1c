package collector

import (
	"context"
	"net/http"
	"net/url"
	"time"
)

// Fetcher looks up the latest closing price for a ticker.
type Fetcher interface {
	FetchLatestClose(ctx context.Context, ticker string) (float64, error)
	Name() string
}

func newHTTPClient(proxyURL string) *http.Client {
	transport := &http.Transport{}
	if proxyURL != "" {
		if u, err := url.Parse(proxyURL); err == nil {
			transport.Proxy = http.ProxyURL(u)
		}
	}
	return &http.Client{
		Timeout:   30 * time.Second,
		Transport: transport,
	}
}

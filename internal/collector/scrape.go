package collector

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"unicode"

	"github.com/PuerkitoBio/goquery"

	"StockAnalyzer/internal/model"
)

// ScrapeFetcher reads the price from an HTML quote page. URLTemplate must
// contain one %s, replaced by the escaped ticker; Selector picks the element
// whose text is the price.
type ScrapeFetcher struct {
	URLTemplate string
	Selector    string
	Client      *http.Client
}

// NewScrapeFetcher creates a new HTML scraping fetcher.
func NewScrapeFetcher(urlTemplate, selector, proxyURL string) *ScrapeFetcher {
	return &ScrapeFetcher{
		URLTemplate: urlTemplate,
		Selector:    selector,
		Client:      newHTTPClient(proxyURL),
	}
}

func (f *ScrapeFetcher) Name() string { return "scrape" }

func (f *ScrapeFetcher) FetchLatestClose(ctx context.Context, ticker string) (float64, error) {
	u := fmt.Sprintf(f.URLTemplate, url.PathEscape(ticker))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return 0, err
	}
	req.Header.Set("User-Agent", "Mozilla/5.0")

	resp, err := f.Client.Do(req)
	if err != nil {
		return 0, fmt.Errorf("%w: scrape fetch: %v", model.ErrRemoteLookup, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return 0, fmt.Errorf("%w: scrape: status %d", model.ErrRemoteLookup, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return 0, fmt.Errorf("%w: parse html: %v", model.ErrRemoteLookup, err)
	}
	sel := doc.Find(f.Selector).First()
	if sel.Length() == 0 {
		return 0, fmt.Errorf("%w: selector %q matched nothing for %s", model.ErrRemoteLookup, f.Selector, ticker)
	}
	price, err := parseQuotedNumber(sel.Text())
	if err != nil {
		return 0, fmt.Errorf("%w: %v", model.ErrRemoteLookup, err)
	}
	return price, nil
}

// parseQuotedNumber accepts "1 234,50", "1,234.50", "$61" and "61.2 SEK"
// style text.
func parseQuotedNumber(s string) (float64, error) {
	s = strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
	s = strings.TrimLeftFunc(s, func(r rune) bool { return !isNumberRune(r) })
	if i := strings.IndexFunc(s, func(r rune) bool { return !isNumberRune(r) }); i >= 0 {
		s = s[:i]
	}
	if strings.Contains(s, ",") && strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ",", "")
	} else {
		s = strings.ReplaceAll(s, ",", ".")
	}
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("parse price %q: %w", s, err)
	}
	return v, nil
}

func isNumberRune(r rune) bool {
	return (r >= '0' && r <= '9') || r == ',' || r == '.' || r == '-'
}

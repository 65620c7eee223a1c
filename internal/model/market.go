package model

// Instrument is one entry of the configured catalogue. Name is the identity
// shown to the user; Ticker is the symbol used for live quote lookups.
type Instrument struct {
	Name   string `yaml:"name"`
	Ticker string `yaml:"ticker"`
}

// PriceSeries is a chronological list of prices, earliest first.
type PriceSeries []float64

// Last returns the latest observation. The series must not be empty.
func (s PriceSeries) Last() float64 {
	return s[len(s)-1]
}

// PriceBook holds one price series per instrument, in the order the
// instruments first appeared in the price history file.
type PriceBook struct {
	order  []string
	series map[string]PriceSeries
}

// NewPriceBook creates an empty PriceBook.
func NewPriceBook() *PriceBook {
	return &PriceBook{series: make(map[string]PriceSeries)}
}

// Reset starts an empty series for name. A name seen before keeps its
// original position.
func (b *PriceBook) Reset(name string) {
	if _, ok := b.series[name]; !ok {
		b.order = append(b.order, name)
	}
	b.series[name] = PriceSeries{}
}

// Append adds a price to the series of name.
func (b *PriceBook) Append(name string, price float64) {
	if _, ok := b.series[name]; !ok {
		b.Reset(name)
	}
	b.series[name] = append(b.series[name], price)
}

// Series returns the series of name and whether it exists.
func (b *PriceBook) Series(name string) (PriceSeries, bool) {
	s, ok := b.series[name]
	return s, ok
}

// Names returns instrument names in file order.
func (b *PriceBook) Names() []string {
	out := make([]string, len(b.order))
	copy(out, b.order)
	return out
}

// Len returns the number of instruments in the book.
func (b *PriceBook) Len() int { return len(b.order) }

// FundamentalRecord carries the fundamental ratios of one instrument as
// text. The values are displayed as-is and never computed on.
type FundamentalRecord struct {
	Name     string
	Solvency string
	PE       string
	PS       string
}

package model

// Quote is the outcome of a live price lookup: either a found price or
// unavailable. The zero value is unavailable.
type Quote struct {
	price float64
	found bool
}

// Found returns a quote holding price.
func Found(price float64) Quote { return Quote{price: price, found: true} }

// Unavailable returns a quote with no price.
func Unavailable() Quote { return Quote{} }

// Price returns the quoted price and whether one was found.
func (q Quote) Price() (float64, bool) { return q.price, q.found }

// Beta is a beta coefficient that may be unavailable when the benchmark
// return is too close to zero. The zero value is unavailable.
type Beta struct {
	value float64
	ok    bool
}

// BetaOf returns an available beta.
func BetaOf(v float64) Beta { return Beta{value: v, ok: true} }

// BetaUnavailable returns a beta with no value.
func BetaUnavailable() Beta { return Beta{} }

// Value returns the coefficient and whether it is available.
func (b Beta) Value() (float64, bool) { return b.value, b.ok }

// BetaResult is the technical analysis of one instrument.
type BetaResult struct {
	Instrument    string
	PercentReturn float64
	Beta          Beta
	High          float64
	Low           float64
	StartPrice    float64
	EndPrice      float64
	Live          bool // EndPrice came from a live quote
}

// RankEntry is one line of the beta ranking. Position starts at 1.
type RankEntry struct {
	Position   int
	Instrument string
	Beta       float64
}

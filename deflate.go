package realincome

import "fmt"

// Result holds the outcome of a real-value computation, whatever the mode.
type Result struct {
	Nominal float64
	Real    float64
	Loss    float64
	LossPct Percent
}

// DeflateRatio computes the real value from a pair of price-index levels:
//
//	real = nominal * (indexStart / indexLatest)
//
// Index levels must be strictly positive, which the resolver guarantees, so
// the division is always defined. Equal levels mean zero change: the real
// value equals the nominal one and the loss is exactly zero.
func DeflateRatio(nominal, indexStart, indexLatest float64) Result {
	ratio := indexStart / indexLatest
	real := nominal * ratio
	return Result{
		Nominal: nominal,
		Real:    real,
		Loss:    nominal - real,
		LossPct: Percent((1 - ratio) * 100),
	}
}

// DeflateChain computes the real value from a compounding deflator:
//
//	real = nominal / deflator
//
// The deflator is a product of strictly positive factors, see Chain.
func DeflateChain(nominal, deflator float64) Result {
	real := nominal / deflator
	return Result{
		Nominal: nominal,
		Real:    real,
		Loss:    nominal - real,
		LossPct: Percent((1 - 1/deflator) * 100),
	}
}

// Chain compounds annual percentage changes into a deflator, the running
// product of (1 + pct/100) over the rates in ascending year order. It
// returns the deflator and the greatest year that had data. Rates are
// already filtered to the requested range with missing years skipped; an
// empty sequence means nothing in the range had data.
func Chain(rates []YearlyRate) (deflator float64, latestYear int, err error) {
	if len(rates) == 0 {
		return 0, 0, fmt.Errorf("no annual rates to compound: %w", ErrNoRecords)
	}
	deflator = 1.0
	for _, r := range rates {
		deflator *= 1.0 + r.Pct/100.0
		if r.Year > latestYear {
			latestYear = r.Year
		}
	}
	return deflator, latestYear, nil
}

package entities

import "time"

const (
	// PrimaryWindowDays is the main trailing window for average daily sales.
	PrimaryWindowDays = 30
	// SecondaryWindowDays is the short trend window compared against the
	// primary window in detail views.
	SecondaryWindowDays = 7
)

// SalesObservation records one day of shipping activity for a product.
type SalesObservation struct {
	Date          time.Time
	UnitsShipped  Quantity
	UnitsReturned Quantity
}

// NetUnits returns units shipped minus units returned for the day.
func (o SalesObservation) NetUnits() Quantity {
	return o.UnitsShipped - o.UnitsReturned
}

// SalesHistory is a product's rolling window of daily observations.
type SalesHistory []SalesObservation

// TrailingAverage computes the average net units per day over the windowDays
// days ending at asOf (inclusive). Days without an observation count as zero
// sales; the divisor is always the full window length.
func (h SalesHistory) TrailingAverage(asOf time.Time, windowDays int) float64 {
	if windowDays <= 0 {
		return 0
	}

	windowStart := asOf.AddDate(0, 0, -(windowDays - 1))
	var total Quantity
	for _, obs := range h {
		if obs.Date.Before(windowStart) || obs.Date.After(asOf) {
			continue
		}
		total += obs.NetUnits()
	}

	return float64(total) / float64(windowDays)
}

// StockDaysRemaining estimates how many days the on-hand stock lasts at the
// given daily rate. Returns ok=false when the rate is non-positive.
func StockDaysRemaining(onHand Quantity, avgDaily float64) (float64, bool) {
	if avgDaily <= 0 {
		return 0, false
	}
	return float64(onHand) / avgDaily, true
}

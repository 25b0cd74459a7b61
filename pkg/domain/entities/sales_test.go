package entities

import (
	"testing"
	"time"
)

func TestSalesHistory_TrailingAverage(t *testing.T) {
	asOf := time.Date(2026, 5, 20, 0, 0, 0, 0, time.UTC)

	history := SalesHistory{
		{Date: asOf, UnitsShipped: 10, UnitsReturned: 2},
		{Date: asOf.AddDate(0, 0, -1), UnitsShipped: 6},
		{Date: asOf.AddDate(0, 0, -6), UnitsShipped: 7},
		// Outside a 7-day window ending at asOf
		{Date: asOf.AddDate(0, 0, -7), UnitsShipped: 100},
		// Future observations never count
		{Date: asOf.AddDate(0, 0, 1), UnitsShipped: 50},
	}

	got := history.TrailingAverage(asOf, 7)
	want := 21.0 / 7.0
	if got != want {
		t.Errorf("Expected 7-day average %.3f, got %.3f", want, got)
	}

	got30 := history.TrailingAverage(asOf, 30)
	want30 := 121.0 / 30.0
	if got30 != want30 {
		t.Errorf("Expected 30-day average %.3f, got %.3f", want30, got30)
	}
}

func TestSalesHistory_TrailingAverage_Empty(t *testing.T) {
	var history SalesHistory

	if got := history.TrailingAverage(time.Now(), PrimaryWindowDays); got != 0 {
		t.Errorf("Expected zero average for empty history, got %.3f", got)
	}
	if got := history.TrailingAverage(time.Now(), 0); got != 0 {
		t.Errorf("Expected zero average for zero window, got %.3f", got)
	}
}

func TestStockDaysRemaining(t *testing.T) {
	testCases := []struct {
		name     string
		onHand   Quantity
		avgDaily float64
		want     float64
		wantOK   bool
	}{
		{"normal rate", 60, 4, 15, true},
		{"zero rate", 60, 0, 0, false},
		{"negative rate", 60, -2, 0, false},
		{"empty stock", 0, 4, 0, true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := StockDaysRemaining(tc.onHand, tc.avgDaily)
			if ok != tc.wantOK {
				t.Fatalf("Expected ok=%v, got %v", tc.wantOK, ok)
			}
			if ok && got != tc.want {
				t.Errorf("Expected %.1f days, got %.1f", tc.want, got)
			}
		})
	}
}

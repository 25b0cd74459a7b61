package report

import (
	"math"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storesim/invperf/pkg/domain/entities"
	"github.com/storesim/invperf/pkg/infrastructure/repositories/memory"
)

func testAggregator(t *testing.T) (*Aggregator, *memory.BandRepository, *memory.CurveRepository, *memory.SalesRepository) {
	t.Helper()
	bandRepo := memory.NewBandRepository()
	curveRepo := memory.NewCurveRepository()
	salesRepo := memory.NewSalesRepository()
	return NewAggregator(bandRepo, curveRepo, salesRepo), bandRepo, curveRepo, salesRepo
}

// steadySales loads days of constant daily sales ending at asOf.
func steadySales(t *testing.T, repo *memory.SalesRepository, productID entities.ProductID, asOf time.Time, days int, perDay entities.Quantity) {
	t.Helper()
	var observations []entities.SalesObservation
	for i := 0; i < days; i++ {
		observations = append(observations, entities.SalesObservation{
			Date:         asOf.AddDate(0, 0, -i),
			UnitsShipped: perDay,
		})
	}
	if err := repo.LoadObservations(productID, observations); err != nil {
		t.Fatalf("Failed to load observations: %v", err)
	}
}

func TestAggregator_BuildRow(t *testing.T) {
	aggregator, bandRepo, curveRepo, salesRepo := testAggregator(t)
	asOf := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

	mode := 18.0
	band, _ := entities.NewBandConfig("apparel", 2, 1, 5, 10, 30)
	band.ExpectedMode = &mode
	bandRepo.AddBand(*band)

	weeks := make([]float64, entities.WeeksPerYear)
	for i := range weeks {
		weeks[i] = 40
	}
	weeks[10], weeks[11], weeks[12] = 0, 0, 0
	curve, _ := entities.NewSeasonCurve(entities.CurveScopeKey("summer", "north"), weeks)
	if err := curveRepo.LoadCurves([]*entities.SeasonCurve{curve}); err != nil {
		t.Fatalf("Failed to load curves: %v", err)
	}

	steadySales(t, salesRepo, "PROD-1", asOf, 30, 25)

	row, err := aggregator.BuildRow(asOf, 0, ProductInput{
		ID:                  "PROD-1",
		Name:                "Linen Shirt",
		CategoryKey:         "apparel",
		QualityLevel:        2,
		Tier:                3,
		StockOnHand:         500,
		PriceIndex:          1.0,
		UnitMargin:          decimal.RequireFromString("4.50"),
		BaselineUnitsPerDay: 5,
		CurveScopeKey:       entities.CurveScopeKey("summer", "north"),
	})
	if err != nil {
		t.Fatalf("BuildRow failed: %v", err)
	}

	if row.AvgDaily != 25 {
		t.Errorf("Expected avg daily 25, got %.2f", row.AvgDaily)
	}
	if row.Score.Label != entities.LabelGood {
		t.Errorf("Expected Good label, got %s", row.Score.Label)
	}
	if row.Band == nil || row.Band.Grade != entities.GradeVeryGood {
		t.Errorf("Expected Very good grade, got %+v", row.Band)
	}
	if row.Band.Percentile != 75 {
		t.Errorf("Expected percentile 75, got %.1f", row.Band.Percentile)
	}
	if row.Price.Tone != entities.ToneNeutral {
		t.Errorf("Expected neutral price tone, got %s", row.Price.Tone)
	}
	if !row.DailyProfit.Equal(decimal.RequireFromString("112.5")) {
		t.Errorf("Expected daily profit 112.5, got %s", row.DailyProfit)
	}
	if row.StockDays == nil || *row.StockDays != 20 {
		t.Errorf("Expected 20 stock days, got %v", row.StockDays)
	}
	if row.SeasonFit == nil || *row.SeasonFit != 40 {
		t.Errorf("Expected season fit 40, got %v", row.SeasonFit)
	}
	if row.Forecast == nil {
		t.Fatal("Expected a forecast")
	}
	if row.ExpectedSold == nil || math.Abs(*row.ExpectedSold-140) > 1e-9 {
		t.Errorf("Expected sold 140, got %v", row.ExpectedSold)
	}
	if row.ExpectedLeftover == nil || math.Abs(*row.ExpectedLeftover-360) > 1e-9 {
		t.Errorf("Expected leftover 360, got %v", row.ExpectedLeftover)
	}
}

func TestAggregator_BuildRow_MissingConfiguration(t *testing.T) {
	aggregator, _, _, salesRepo := testAggregator(t)
	asOf := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

	steadySales(t, salesRepo, "PROD-2", asOf, 30, 3)

	row, err := aggregator.BuildRow(asOf, 12, ProductInput{
		ID:            "PROD-2",
		Name:          "Unbanded Widget",
		CategoryKey:   "gadgets",
		QualityLevel:  1,
		Tier:          2,
		StockOnHand:   90,
		PriceIndex:    0.85,
		CurveScopeKey: "missing|zone",
	})
	if err != nil {
		t.Fatalf("BuildRow failed: %v", err)
	}

	// No band: coarse heuristic applies, no percentile grade
	if row.Score.Label != entities.LabelAverage {
		t.Errorf("Expected Average via fallback heuristic, got %s", row.Score.Label)
	}
	if row.Band != nil {
		t.Errorf("Expected no band evaluation, got %+v", row.Band)
	}

	// No curve: forecast and season fit omitted
	if row.Forecast != nil {
		t.Error("Expected no forecast without a curve")
	}
	if row.SeasonFit != nil {
		t.Error("Expected no season fit without a curve")
	}
	if row.ExpectedSold != nil || row.ExpectedLeftover != nil {
		t.Error("Expected projection fields to stay nil without a curve")
	}
}

func TestAggregator_BuildDetail(t *testing.T) {
	aggregator, bandRepo, curveRepo, salesRepo := testAggregator(t)
	asOf := time.Date(2026, 7, 15, 0, 0, 0, 0, time.UTC)

	band, _ := entities.NewBandConfig("apparel", 2, 1, 5, 10, 30)
	bandRepo.AddBand(*band)

	weeks := make([]float64, entities.WeeksPerYear)
	for i := range weeks {
		weeks[i] = 50
	}
	weeks[8] = 100 // peak two months out from week 0
	curve, _ := entities.NewSeasonCurve("summer|north", weeks)
	if err := curveRepo.LoadCurves([]*entities.SeasonCurve{curve}); err != nil {
		t.Fatalf("Failed to load curves: %v", err)
	}

	// 20/day over the older weeks, 24/day over the last 7 days
	var observations []entities.SalesObservation
	for i := 0; i < 30; i++ {
		perDay := entities.Quantity(20)
		if i < 7 {
			perDay = 24
		}
		observations = append(observations, entities.SalesObservation{
			Date:         asOf.AddDate(0, 0, -i),
			UnitsShipped: perDay,
		})
	}
	if err := salesRepo.LoadObservations("PROD-1", observations); err != nil {
		t.Fatalf("Failed to load observations: %v", err)
	}

	campaign := &entities.CampaignSnapshot{Name: "Summer Push", Active: true, BoostPercent: 15}

	detail, err := aggregator.BuildDetail(asOf, 0, ProductInput{
		ID:                  "PROD-1",
		Name:                "Linen Shirt",
		CategoryKey:         "apparel",
		QualityLevel:        2,
		Tier:                3,
		StockOnHand:         100,
		PriceIndex:          1.0,
		UnitMargin:          decimal.RequireFromString("2"),
		BaselineUnitsPerDay: 6,
		CurveScopeKey:       "summer|north",
		Campaign:            campaign,
	})
	if err != nil {
		t.Fatalf("BuildDetail failed: %v", err)
	}

	if detail.AvgDaily7 != 24 {
		t.Errorf("Expected 7-day average 24, got %.2f", detail.AvgDaily7)
	}
	wantAvg30 := (23.0*20 + 7*24) / 30
	if math.Abs(detail.AvgDaily-wantAvg30) > 1e-9 {
		t.Errorf("Expected 30-day average %.3f, got %.3f", wantAvg30, detail.AvgDaily)
	}
	wantTrend := (24 - wantAvg30) / wantAvg30 * 100
	if math.Abs(detail.TrendPct-wantTrend) > 1e-9 {
		t.Errorf("Expected trend %.2f%%, got %.2f%%", wantTrend, detail.TrendPct)
	}

	if detail.Campaign == nil || detail.Campaign.Name != "Summer Push" {
		t.Errorf("Expected campaign snapshot, got %+v", detail.Campaign)
	}

	if detail.PeakMonth == nil {
		t.Fatal("Expected a peak month")
	}
	// Week 8 (score 100) falls in bucket index 2
	if detail.PeakMonth.Index != 2 {
		t.Errorf("Expected peak month 2, got %d", detail.PeakMonth.Index)
	}
	// 100 units against ~84/month potential: stockout in month 1, before
	// the month-2 peak
	if !detail.StockoutBeforePeak {
		t.Error("Expected stockout before the peak month")
	}
}

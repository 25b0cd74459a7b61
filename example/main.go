package main

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storesim/invperf/pkg/application/services/orchestration"
	"github.com/storesim/invperf/pkg/application/services/report"
	"github.com/storesim/invperf/pkg/domain/entities"
	"github.com/storesim/invperf/pkg/infrastructure/events"
	"github.com/storesim/invperf/pkg/infrastructure/repositories/memory"
)

func main() {
	ctx := context.Background()

	// Create repositories
	bandRepo := memory.NewBandRepository()
	curveRepo := memory.NewCurveRepository()
	salesRepo := memory.NewSalesRepository()
	backlogRepo := memory.NewBacklogRepository()

	// Simulated day: mid June, week 24 of the year
	today := time.Date(2026, 6, 15, 0, 0, 0, 0, time.UTC)
	weekIndex := 23

	setupSummerScenario(bandRepo, curveRepo, salesRepo, backlogRepo, today)

	journal := events.NewJournal()
	aggregator := report.NewAggregator(bandRepo, curveRepo, salesRepo)
	orchestrator := orchestration.NewDayOrchestrator(backlogRepo, aggregator, journal)

	staffRate, err := entities.NewTempStaffRate(8, decimal.NewFromInt(80), decimal.RequireFromString("1.25"))
	if err != nil {
		fmt.Printf("Scenario setup failed: %v\n", err)
		return
	}

	todaysOrder, err := entities.NewBacklogEntry("GNOME-01", today, 25)
	if err != nil {
		fmt.Printf("Scenario setup failed: %v\n", err)
		return
	}

	plans := []orchestration.WarehouseDayPlan{
		{
			WarehouseID:    "WH-NORTH",
			Capacity:       entities.CapacityConfig{WarehouseID: "WH-NORTH", UnitsPerDay: 30},
			TodaysOrders:   []*entities.BacklogEntry{todaysOrder},
			RequestedStaff: 1,
			StaffRate:      staffRate,
		},
	}

	products := []report.ProductInput{
		{
			ID:                  "GNOME-01",
			Name:                "Garden Gnome",
			CategoryKey:         "decor",
			QualityLevel:        2,
			Tier:                3,
			StockOnHand:         420,
			PriceIndex:          1.06,
			UnitMargin:          decimal.RequireFromString("4.50"),
			BaselineUnitsPerDay: 6,
			CurveScopeKey:       entities.CurveScopeKey("summer-decor", "north"),
		},
		{
			ID:           "SHOVEL-01",
			Name:         "Snow Shovel",
			CategoryKey:  "tools",
			QualityLevel: 1,
			Tier:         3,
			StockOnHand:  80,
			PriceIndex:   0.85,
			UnitMargin:   decimal.RequireFromString("2.00"),
		},
	}

	fmt.Println("Running warehouse day for", today.Format("2006-01-02"))
	fmt.Println()

	result, err := orchestrator.RunDay(ctx, today, weekIndex, plans, products, report.SortPerformance, false)
	if err != nil {
		fmt.Printf("Day run failed: %v\n", err)
		return
	}

	for _, warehouse := range result.Warehouses {
		fmt.Printf("%s: capacity %d (%d temp staff, cost %s)\n",
			warehouse.WarehouseID,
			warehouse.TotalCapacity,
			warehouse.StaffQuote.StaffCount,
			warehouse.StaffQuote.Cost.StringFixed(2))
		fmt.Printf("  shipped %d from backlog, %d from today's orders, %d units remain\n",
			warehouse.Allocation.ShippedFromBacklog,
			warehouse.Allocation.ShippedFromToday,
			warehouse.BacklogRemaining())
	}
	fmt.Println()

	fmt.Println("Product performance:")
	for _, row := range result.Products {
		fmt.Printf("  %s (%s): %s - %.2f units/day, %s profit/day, stock %d\n",
			row.ProductID, row.Name, row.Score.Label, row.AvgDaily,
			row.DailyProfit.StringFixed(2), row.StockOnHand)
		if row.Band != nil {
			fmt.Printf("    band grade %s at %.0f%% of expected range\n",
				row.Band.Grade, row.Band.Percentile)
		}
		if row.Forecast != nil && !row.Forecast.OutOfSeason {
			fmt.Printf("    season forecast: %.0f units potential, %.0f expected to sell\n",
				row.Forecast.TotalPotential, row.Forecast.ExpectedSold)
		}
		fmt.Printf("    %s\n", row.Price.Label)
	}
	fmt.Println()

	fmt.Printf("Journal: %d events recorded\n", len(journal.ReadAll()))
}

func setupSummerScenario(
	bandRepo *memory.BandRepository,
	curveRepo *memory.CurveRepository,
	salesRepo *memory.SalesRepository,
	backlogRepo *memory.BacklogRepository,
	today time.Time,
) {
	// Expected daily-sales bands: decorative items sell 10-30/day in
	// mid-tier warehouses, cheap tools 1-8/day everywhere
	expected := 18.0
	decorBand, _ := entities.NewBandConfig("decor", 2, 1, 3, 10, 30)
	decorBand.ExpectedMode = &expected
	toolsBand, _ := entities.NewBandConfig("tools", 1, 1, 5, 1, 8)
	_ = bandRepo.LoadBands([]*entities.BandConfig{decorBand, toolsBand})

	// Summer curve: strong demand weeks 20-38, dead in winter
	weeks := make([]float64, entities.WeeksPerYear)
	for w := 19; w < 38; w++ {
		weeks[w] = 80
	}
	curve, _ := entities.NewSeasonCurve(entities.CurveScopeKey("summer-decor", "north"), weeks)
	_ = curveRepo.LoadCurves([]*entities.SeasonCurve{curve})

	// A month of sales history: gnomes moving well, shovels barely at all
	for i := 0; i < entities.PrimaryWindowDays; i++ {
		day := today.AddDate(0, 0, -i)
		_ = salesRepo.LoadObservations("GNOME-01", []entities.SalesObservation{
			{Date: day, UnitsShipped: 22},
		})
		_ = salesRepo.LoadObservations("SHOVEL-01", []entities.SalesObservation{
			{Date: day, UnitsShipped: 1},
		})
	}

	// Two days of unshipped orders waiting in the backlog
	older, _ := entities.NewBacklogEntry("GNOME-01", today.AddDate(0, 0, -2), 12)
	newer, _ := entities.NewBacklogEntry("SHOVEL-01", today.AddDate(0, 0, -1), 4)
	_ = backlogRepo.AppendEntries("WH-NORTH", []*entities.BacklogEntry{older, newer})
}

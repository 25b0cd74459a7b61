package report

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storesim/invperf/pkg/application/services/forecast"
	"github.com/storesim/invperf/pkg/application/services/performance"
	"github.com/storesim/invperf/pkg/domain/entities"
	"github.com/storesim/invperf/pkg/domain/repositories"
)

// ProductInput carries the per-product facts the aggregator combines. All
// of it is supplied by the calling orchestrator; the aggregator adds no
// state of its own.
type ProductInput struct {
	ID             entities.ProductID
	Name           string
	CategoryKey    string
	QualityLevel   int
	Tier           int
	StockOnHand    entities.Quantity
	PriceIndex     float64
	BlockedByPrice bool
	// UnitMargin is the per-unit profit used for the profitability column.
	UnitMargin decimal.Decimal
	// BaselineUnitsPerDay is the demand rate at a full curve score of 100.
	// Non-positive means no demand estimate is available.
	BaselineUnitsPerDay float64
	CurveScopeKey       string
	Campaign            *entities.CampaignSnapshot
}

// ProductRow is one line of the warehouse performance list. Optional
// numeric fields are nil when the underlying data is missing rather than
// zero, so sorting can place them deterministically.
type ProductRow struct {
	ProductID   entities.ProductID
	Name        string
	Score       performance.ScoreResult
	Band        *performance.BandEvaluation
	Price       performance.PriceFeedback
	AvgDaily    float64
	DailyProfit decimal.Decimal
	StockOnHand entities.Quantity
	StockDays   *float64
	// SeasonFit is the current week's curve score, nil without a curve.
	SeasonFit        *float64
	ExpectedSold     *float64
	ExpectedLeftover *float64
	Forecast         *forecast.SeasonForecast
}

// ProductDetail extends a row with the short-window trend and context shown
// on a single product's page.
type ProductDetail struct {
	ProductRow
	AvgDaily7 float64
	// TrendPct is the 7-day rate relative to the 30-day rate, as a signed
	// percentage. Zero when the 30-day rate is zero.
	TrendPct float64
	Campaign *entities.CampaignSnapshot
	// PeakMonth is the forecast bucket with the highest potential, nil
	// without a usable forecast.
	PeakMonth *forecast.MonthBucket
	// StockoutBeforePeak is set when stock is projected to run out in a
	// bucket at or before the peak month.
	StockoutBeforePeak bool
}

// Aggregator combines band scoring, price feedback and season forecasting
// into list rows and detail views.
type Aggregator struct {
	bandRepo  repositories.BandRepository
	curveRepo repositories.CurveRepository
	salesRepo repositories.SalesRepository

	scorer     *performance.BandScorer
	prices     *performance.PriceEvaluator
	forecaster *forecast.Forecaster
}

// NewAggregator creates a report aggregator over the given repositories
func NewAggregator(bandRepo repositories.BandRepository, curveRepo repositories.CurveRepository, salesRepo repositories.SalesRepository) *Aggregator {
	return &Aggregator{
		bandRepo:   bandRepo,
		curveRepo:  curveRepo,
		salesRepo:  salesRepo,
		scorer:     performance.NewBandScorer(),
		prices:     performance.NewPriceEvaluator(),
		forecaster: forecast.NewForecaster(),
	}
}

// BuildRow assembles one product's list row as of the given simulated day
// and week index.
func (a *Aggregator) BuildRow(asOf time.Time, weekIndex int, in ProductInput) (*ProductRow, error) {
	history, err := a.salesRepo.GetHistory(in.ID, asOf, entities.PrimaryWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get sales history for %s: %w", in.ID, err)
	}
	avgDaily := history.TrailingAverage(asOf, entities.PrimaryWindowDays)

	band, err := a.bandRepo.FindBand(in.CategoryKey, in.QualityLevel, in.Tier)
	if err != nil {
		return nil, fmt.Errorf("failed to look up band for %s: %w", in.ID, err)
	}

	row := &ProductRow{
		ProductID:   in.ID,
		Name:        in.Name,
		AvgDaily:    avgDaily,
		DailyProfit: in.UnitMargin.Mul(decimal.NewFromFloat(avgDaily)),
		StockOnHand: in.StockOnHand,
		Price:       a.prices.Evaluate(in.PriceIndex, in.BlockedByPrice),
		Band:        a.scorer.EvaluateBand(avgDaily, band),
	}

	if days, ok := entities.StockDaysRemaining(in.StockOnHand, avgDaily); ok {
		row.StockDays = &days
	}
	row.Score = a.scorer.Score(avgDaily, band, in.StockOnHand, row.StockDays)

	curve, err := a.curveRepo.GetCurve(in.CurveScopeKey)
	if err != nil {
		return nil, fmt.Errorf("failed to get curve for %s: %w", in.ID, err)
	}
	if curve != nil && curve.HasFullYear() {
		fit := curve.ScoreAt(weekIndex)
		row.SeasonFit = &fit
	}

	if projection := a.forecaster.Forecast(curve, weekIndex, in.BaselineUnitsPerDay, in.StockOnHand); projection != nil {
		row.Forecast = projection
		if !projection.NoDemandEstimate {
			sold := projection.ExpectedSold
			leftover := projection.ExpectedLeftover
			row.ExpectedSold = &sold
			row.ExpectedLeftover = &leftover
		}
	}

	return row, nil
}

// BuildDetail assembles the single-product view: the list row plus the
// 7-day versus 30-day trend, campaign snapshot and peak-month comparison.
func (a *Aggregator) BuildDetail(asOf time.Time, weekIndex int, in ProductInput) (*ProductDetail, error) {
	row, err := a.BuildRow(asOf, weekIndex, in)
	if err != nil {
		return nil, err
	}

	history, err := a.salesRepo.GetHistory(in.ID, asOf, entities.SecondaryWindowDays)
	if err != nil {
		return nil, fmt.Errorf("failed to get recent sales for %s: %w", in.ID, err)
	}
	avg7 := history.TrailingAverage(asOf, entities.SecondaryWindowDays)

	detail := &ProductDetail{
		ProductRow: *row,
		AvgDaily7:  avg7,
		Campaign:   in.Campaign,
	}
	if row.AvgDaily > 0 {
		detail.TrendPct = (avg7 - row.AvgDaily) / row.AvgDaily * 100
	}

	if row.Forecast != nil && len(row.Forecast.Months) > 0 {
		peak := row.Forecast.Months[0]
		for _, month := range row.Forecast.Months[1:] {
			if month.PotentialUnits > peak.PotentialUnits {
				peak = month
			}
		}
		detail.PeakMonth = &peak
		if row.Forecast.StockoutMonth != nil && *row.Forecast.StockoutMonth <= peak.Index {
			detail.StockoutBeforePeak = true
		}
	}

	return detail, nil
}

package forecast

import "github.com/storesim/invperf/pkg/domain/entities"

const (
	// MaxForecastMonths caps the horizon at six 4-week buckets.
	MaxForecastMonths = 6
	// WeeksPerMonth is the width of one forecast bucket.
	WeeksPerMonth = 4
)

// MonthBucket aggregates up to four consecutive in-season weeks.
type MonthBucket struct {
	Index          int
	WeeksIncluded  int
	ScoreAvg       float64
	PotentialUnits float64
}

// SeasonForecast projects remaining seasonal demand against on-hand stock.
type SeasonForecast struct {
	// OutOfSeason is set when the current week itself scores zero.
	OutOfSeason bool
	// NoDemandEstimate is set when no positive baseline rate is known;
	// all unit projections are zero in that case.
	NoDemandEstimate bool
	// FirstZeroStep is the number of weeks until the season ends, nil when
	// the curve stays nonzero across the whole year.
	FirstZeroStep *int
	Months        []MonthBucket
	TotalPotential float64
	// ExpectedSold is the lesser of stock and total potential. It reads as
	// "could sell through", not a commitment; returns inside the horizon
	// are deliberately not modeled.
	ExpectedSold     float64
	ExpectedLeftover float64
	// StockoutMonth is the bucket index at which cumulative potential
	// exhausts on-hand stock, nil when stock covers the whole horizon.
	StockoutMonth *int
}

// Forecaster computes seasonal demand projections from a 52-week curve.
// Pure given its inputs; safe to call concurrently per product.
type Forecaster struct{}

// NewForecaster creates a new season forecaster
func NewForecaster() *Forecaster {
	return &Forecaster{}
}

// Forecast projects demand for the remainder of the season starting at
// currentWeek. Returns nil when no full-year curve is available; the caller
// omits the forecast section rather than guessing.
func (f *Forecaster) Forecast(curve *entities.SeasonCurve, currentWeek int, baselineUnitsPerDay float64, stockOnHand entities.Quantity) *SeasonForecast {
	if curve == nil || !curve.HasFullYear() {
		return nil
	}

	outOfSeason := curve.ScoreAt(currentWeek) == 0

	if baselineUnitsPerDay <= 0 {
		return &SeasonForecast{
			OutOfSeason:      outOfSeason,
			NoDemandEstimate: true,
			ExpectedLeftover: float64(stockOnHand),
		}
	}

	firstZeroStep := scanSeasonEnd(curve, currentWeek)

	result := &SeasonForecast{
		OutOfSeason:   outOfSeason,
		FirstZeroStep: firstZeroStep,
	}

	for month := 0; month < MaxForecastMonths; month++ {
		bucket, stop := buildBucket(curve, currentWeek, month, firstZeroStep, baselineUnitsPerDay)
		if bucket != nil {
			result.Months = append(result.Months, *bucket)
			result.TotalPotential += bucket.PotentialUnits
		}
		if stop {
			break
		}
	}

	stock := float64(stockOnHand)
	result.ExpectedSold = stock
	if result.TotalPotential < stock {
		result.ExpectedSold = result.TotalPotential
	}
	result.ExpectedLeftover = stock - result.TotalPotential
	if result.ExpectedLeftover < 0 {
		result.ExpectedLeftover = 0
	}

	cumulative := 0.0
	for i := range result.Months {
		cumulative += result.Months[i].PotentialUnits
		if cumulative >= stock {
			month := i
			result.StockoutMonth = &month
			break
		}
	}

	return result
}

// scanSeasonEnd walks forward through the circular curve looking for the
// first zero-score week. Seasons may span the year boundary, so the scan
// wraps past week 51 back to week 0.
func scanSeasonEnd(curve *entities.SeasonCurve, currentWeek int) *int {
	for step := 0; step < entities.WeeksPerYear; step++ {
		if curve.ScoreAt(currentWeek+step) == 0 {
			found := step
			return &found
		}
	}
	return nil
}

// buildBucket aggregates one 4-week bucket. The second return value signals
// that the season boundary was hit and no further buckets should be built.
func buildBucket(curve *entities.SeasonCurve, currentWeek, month int, firstZeroStep *int, baselineUnitsPerDay float64) (*MonthBucket, bool) {
	scoreSum := 0.0
	weeks := 0

	for offset := 0; offset < WeeksPerMonth; offset++ {
		step := month*WeeksPerMonth + offset
		if firstZeroStep != nil && step >= *firstZeroStep {
			return finishBucket(month, weeks, scoreSum, baselineUnitsPerDay), true
		}
		scoreSum += curve.ScoreAt(currentWeek + step)
		weeks++
	}

	return finishBucket(month, weeks, scoreSum, baselineUnitsPerDay), false
}

func finishBucket(month, weeks int, scoreSum, baselineUnitsPerDay float64) *MonthBucket {
	if weeks == 0 {
		return nil
	}

	scoreAvg := scoreSum / float64(weeks)
	return &MonthBucket{
		Index:          month,
		WeeksIncluded:  weeks,
		ScoreAvg:       scoreAvg,
		PotentialUnits: baselineUnitsPerDay * entities.DaysPerWeek * float64(weeks) * (scoreAvg / 100),
	}
}

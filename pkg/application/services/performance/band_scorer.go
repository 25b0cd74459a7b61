package performance

import (
	"fmt"

	"github.com/storesim/invperf/pkg/domain/entities"
)

// Threshold constants for the band score ladder. Actual daily sales are
// compared against the configured band edges scaled by these fractions.
const (
	// poorMinFraction marks sales below this fraction of the band minimum
	// as Poor.
	poorMinFraction = 0.6
	// averageExpectedFraction marks sales below this fraction of the
	// expected rate as Average.
	averageExpectedFraction = 0.9
	// goodMaxFraction marks sales up to this fraction of the band maximum
	// as Good; above it is Excellent.
	goodMaxFraction = 1.1
)

// Fallback thresholds used when no band is configured for a product.
const (
	unconfiguredPoorCeiling    = 2.0
	unconfiguredAverageCeiling = 5.0
)

// Percentile cut points for the finer-grained band-relative grade.
const (
	gradeBadCeilingPct      = 35.0
	gradeGoodCeilingPct     = 70.0
	gradeVeryGoodCeilingPct = 95.0
)

// ScoreResult is the coarse performance classification for a product.
type ScoreResult struct {
	Label entities.PerformanceLabel
	Note  string
	Rank  int
}

// BandEvaluation is the band-relative percentile grade used for list
// display.
type BandEvaluation struct {
	Grade      entities.BandGrade
	Tone       entities.Tone
	Percentile float64
}

// BandScorer maps actual daily sales onto a configured expectation band.
// All methods are pure and safe for concurrent use.
type BandScorer struct{}

// NewBandScorer creates a new band scorer
func NewBandScorer() *BandScorer {
	return &BandScorer{}
}

// Score classifies a product's trailing average daily sales against its
// band. A nil band degrades to a coarse heuristic rather than failing, so
// missing configuration never breaks a report.
func (s *BandScorer) Score(actualAvgDaily float64, band *entities.BandConfig, stockOnHand entities.Quantity, stockDaysRemaining *float64) ScoreResult {
	label := s.classify(actualAvgDaily, band)

	return ScoreResult{
		Label: label,
		Note:  s.note(label, actualAvgDaily, band, stockOnHand, stockDaysRemaining),
		Rank:  label.Rank(),
	}
}

func (s *BandScorer) classify(actual float64, band *entities.BandConfig) entities.PerformanceLabel {
	if band == nil {
		switch {
		case actual <= 0:
			return entities.LabelPoor
		case actual < unconfiguredPoorCeiling:
			return entities.LabelPoor
		case actual < unconfiguredAverageCeiling:
			return entities.LabelAverage
		default:
			return entities.LabelGood
		}
	}

	expected := band.ExpectedDaily()
	switch {
	case actual <= 0:
		return entities.LabelPoor
	case actual < band.MinDaily*poorMinFraction:
		return entities.LabelPoor
	case actual < expected*averageExpectedFraction:
		return entities.LabelAverage
	case actual <= band.MaxDaily*goodMaxFraction:
		return entities.LabelGood
	default:
		return entities.LabelExcellent
	}
}

func (s *BandScorer) note(label entities.PerformanceLabel, actual float64, band *entities.BandConfig, stockOnHand entities.Quantity, stockDaysRemaining *float64) string {
	if actual <= 0 {
		if stockOnHand > 0 {
			return fmt.Sprintf("No recent sales; %d units on hand are not moving", stockOnHand)
		}
		return "No recent sales and no stock on hand"
	}

	if band == nil {
		return fmt.Sprintf("Selling %.1f/day; no expectation band configured for this product", actual)
	}

	base := fmt.Sprintf("Selling %.1f/day against an expected %.1f/day", actual, band.ExpectedDaily())
	if stockDaysRemaining != nil {
		base += fmt.Sprintf("; stock lasts about %.0f more days", *stockDaysRemaining)
	}

	switch label {
	case entities.LabelPoor:
		return base + "; well below the configured band"
	case entities.LabelExcellent:
		return base + "; outselling the band, watch stock cover"
	default:
		return base
	}
}

// EvaluateBand grades actual daily sales on a percentile scale inside the
// band. Returns nil when no band is configured; the coarse Score path
// covers that case.
func (s *BandScorer) EvaluateBand(actual float64, band *entities.BandConfig) *BandEvaluation {
	if band == nil {
		return nil
	}

	pct := bandPercentile(actual, band)

	switch {
	case actual <= band.MinDaily:
		return &BandEvaluation{Grade: entities.GradeWeak, Tone: entities.ToneDanger, Percentile: pct}
	case actual > band.MaxDaily || pct >= 100:
		return &BandEvaluation{Grade: entities.GradeSuper, Tone: entities.ToneSuccess, Percentile: pct}
	case pct < gradeBadCeilingPct:
		return &BandEvaluation{Grade: entities.GradeBad, Tone: entities.ToneDanger, Percentile: pct}
	case pct < gradeGoodCeilingPct:
		return &BandEvaluation{Grade: entities.GradeGood, Tone: entities.ToneNeutral, Percentile: pct}
	case pct < gradeVeryGoodCeilingPct:
		return &BandEvaluation{Grade: entities.GradeVeryGood, Tone: entities.ToneSuccess, Percentile: pct}
	default:
		return &BandEvaluation{Grade: entities.GradeSuper, Tone: entities.ToneSuccess, Percentile: pct}
	}
}

// bandPercentile places actual inside [MinDaily, MaxDaily] as a 0-100
// percentile. The degenerate single-point band resolves to 0 or 100 only.
func bandPercentile(actual float64, band *entities.BandConfig) float64 {
	if band.MaxDaily == band.MinDaily {
		if actual >= band.MaxDaily {
			return 100
		}
		return 0
	}

	ratio := (actual - band.MinDaily) / (band.MaxDaily - band.MinDaily)
	if ratio < 0 {
		ratio = 0
	}
	if ratio > 1 {
		ratio = 1
	}
	return ratio * 100
}

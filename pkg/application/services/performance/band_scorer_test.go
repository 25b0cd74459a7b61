package performance

import (
	"math"
	"testing"

	"github.com/storesim/invperf/pkg/domain/entities"
)

func testBand(t *testing.T, minDaily, maxDaily float64, expectedMode *float64) *entities.BandConfig {
	t.Helper()
	band, err := entities.NewBandConfig("apparel", 2, 1, 5, minDaily, maxDaily)
	if err != nil {
		t.Fatalf("Failed to create band: %v", err)
	}
	band.ExpectedMode = expectedMode
	return band
}

func TestBandScorer_Score_NoBand(t *testing.T) {
	scorer := NewBandScorer()

	testCases := []struct {
		name   string
		actual float64
		want   entities.PerformanceLabel
	}{
		{"zero sales", 0, entities.LabelPoor},
		{"negative net sales", -1, entities.LabelPoor},
		{"below poor ceiling", 1.9, entities.LabelPoor},
		{"below average ceiling", 4.9, entities.LabelAverage},
		{"at average ceiling", 5, entities.LabelGood},
		{"high sales", 40, entities.LabelGood},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := scorer.Score(tc.actual, nil, 100, nil)
			if result.Label != tc.want {
				t.Errorf("Score(%.1f, nil) = %s, want %s", tc.actual, result.Label, tc.want)
			}
			if result.Rank != tc.want.Rank() {
				t.Errorf("Expected rank %d, got %d", tc.want.Rank(), result.Rank)
			}
			if result.Note == "" {
				t.Error("Expected a narrative note")
			}
		})
	}
}

func TestBandScorer_Score_WithBand(t *testing.T) {
	scorer := NewBandScorer()
	mode := 18.0
	band := testBand(t, 10, 30, &mode)

	testCases := []struct {
		name   string
		actual float64
		want   entities.PerformanceLabel
	}{
		{"zero sales", 0, entities.LabelPoor},
		{"below 60pct of min", 5.9, entities.LabelPoor},
		{"at 60pct of min", 6, entities.LabelAverage},
		{"below 90pct of expected", 16.1, entities.LabelAverage},
		{"at 90pct of expected", 16.2, entities.LabelGood},
		{"spec example", 25, entities.LabelGood},
		{"at 110pct of max", 33, entities.LabelGood},
		{"above 110pct of max", 33.1, entities.LabelExcellent},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			result := scorer.Score(tc.actual, band, 100, nil)
			if result.Label != tc.want {
				t.Errorf("Score(%.1f) = %s, want %s", tc.actual, result.Label, tc.want)
			}
		})
	}
}

func TestBandScorer_Score_MidpointExpected(t *testing.T) {
	scorer := NewBandScorer()
	band := testBand(t, 10, 30, nil)

	// Without an expected mode the midpoint (20) applies: 17.9 < 18 = 0.9*20
	if got := scorer.Score(17.9, band, 0, nil).Label; got != entities.LabelAverage {
		t.Errorf("Expected Average below 90%% of midpoint, got %s", got)
	}
	if got := scorer.Score(18, band, 0, nil).Label; got != entities.LabelGood {
		t.Errorf("Expected Good at 90%% of midpoint, got %s", got)
	}
}

func TestBandScorer_RankMonotonicity(t *testing.T) {
	scorer := NewBandScorer()
	band := testBand(t, 10, 30, nil)

	prevRank := -1
	for actual := -5.0; actual <= 60; actual += 0.25 {
		rank := scorer.Score(actual, band, 0, nil).Rank
		if rank < prevRank {
			t.Fatalf("Rank decreased from %d to %d at actual=%.2f", prevRank, rank, actual)
		}
		prevRank = rank
	}
}

func TestBandScorer_EvaluateBand(t *testing.T) {
	scorer := NewBandScorer()
	band := testBand(t, 10, 30, nil)

	testCases := []struct {
		name     string
		actual   float64
		want     entities.BandGrade
		wantTone entities.Tone
		wantPct  float64
	}{
		{"at band minimum", 10, entities.GradeWeak, entities.ToneDanger, 0},
		{"below band minimum", 4, entities.GradeWeak, entities.ToneDanger, 0},
		{"low in band", 14, entities.GradeBad, entities.ToneDanger, 20},
		{"middle of band", 20, entities.GradeGood, entities.ToneNeutral, 50},
		{"spec example", 25, entities.GradeVeryGood, entities.ToneSuccess, 75},
		{"near band top", 29.5, entities.GradeSuper, entities.ToneSuccess, 97.5},
		{"above band", 31, entities.GradeSuper, entities.ToneSuccess, 100},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			eval := scorer.EvaluateBand(tc.actual, band)
			if eval == nil {
				t.Fatal("Expected an evaluation")
			}
			if eval.Grade != tc.want {
				t.Errorf("Grade = %s, want %s", eval.Grade, tc.want)
			}
			if eval.Tone != tc.wantTone {
				t.Errorf("Tone = %s, want %s", eval.Tone, tc.wantTone)
			}
			if math.Abs(eval.Percentile-tc.wantPct) > 1e-9 {
				t.Errorf("Percentile = %.2f, want %.2f", eval.Percentile, tc.wantPct)
			}
		})
	}

	if scorer.EvaluateBand(10, nil) != nil {
		t.Error("Expected nil evaluation without a band")
	}
}

func TestBandScorer_PercentileBounds(t *testing.T) {
	scorer := NewBandScorer()
	band := testBand(t, 5, 40, nil)

	for actual := -100.0; actual <= 200; actual += 1.5 {
		eval := scorer.EvaluateBand(actual, band)
		if eval.Percentile < 0 || eval.Percentile > 100 {
			t.Fatalf("Percentile %.2f out of [0,100] at actual=%.1f", eval.Percentile, actual)
		}
	}
}

func TestBandScorer_DegenerateBand(t *testing.T) {
	scorer := NewBandScorer()
	band := testBand(t, 12, 12, nil)

	below := scorer.EvaluateBand(11, band)
	if below.Percentile != 0 {
		t.Errorf("Expected percentile 0 below a single-point band, got %.2f", below.Percentile)
	}
	if below.Grade != entities.GradeWeak {
		t.Errorf("Expected Weak below a single-point band, got %s", below.Grade)
	}

	at := scorer.EvaluateBand(12, band)
	if at.Percentile != 100 {
		t.Errorf("Expected percentile 100 at a single-point band, got %.2f", at.Percentile)
	}
	// actual <= MinDaily takes precedence in the grade ladder
	if at.Grade != entities.GradeWeak {
		t.Errorf("Expected Weak at the single-point value, got %s", at.Grade)
	}

	above := scorer.EvaluateBand(13, band)
	if above.Percentile != 100 || above.Grade != entities.GradeSuper {
		t.Errorf("Expected Super at 100 above a single-point band, got %s at %.2f", above.Grade, above.Percentile)
	}
}

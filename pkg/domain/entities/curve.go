package entities

import "fmt"

// SeasonCurve holds a year of weekly demand-strength scores for a scenario
// and market zone. Scores are clamped to [0,100] on construction and the
// curve is immutable afterwards. A curve shorter than WeeksPerYear is not
// usable for forecasting; callers should check HasFullYear.
type SeasonCurve struct {
	ScopeKey string
	Weeks    []float64
}

// CurveScopeKey builds the lookup key for a season curve from its scenario
// definition and market zone.
func CurveScopeKey(definition, zone string) string {
	return definition + "|" + zone
}

// NewSeasonCurve creates a SeasonCurve, clamping each weekly score into
// [0,100]. Short curves are accepted here and rejected at forecast time so
// that partially configured scenarios still load.
func NewSeasonCurve(scopeKey string, weeks []float64) (*SeasonCurve, error) {
	if scopeKey == "" {
		return nil, fmt.Errorf("scope key cannot be empty")
	}

	clamped := make([]float64, len(weeks))
	for i, score := range weeks {
		switch {
		case score < 0:
			clamped[i] = 0
		case score > 100:
			clamped[i] = 100
		default:
			clamped[i] = score
		}
	}

	return &SeasonCurve{ScopeKey: scopeKey, Weeks: clamped}, nil
}

// HasFullYear reports whether the curve covers all 52 weeks.
func (c *SeasonCurve) HasFullYear() bool {
	return len(c.Weeks) >= WeeksPerYear
}

// ScoreAt returns the demand score for a week index, wrapping past the end
// of the year.
func (c *SeasonCurve) ScoreAt(week int) float64 {
	return c.Weeks[((week%WeeksPerYear)+WeeksPerYear)%WeeksPerYear]
}

package repositories

import "github.com/storesim/invperf/pkg/domain/entities"

// CurveRepository provides access to season curves keyed by scenario
// definition and market zone.
type CurveRepository interface {
	// GetCurve returns the curve for a scope key, or (nil, nil) when no
	// curve is configured for that scope.
	GetCurve(scopeKey string) (*entities.SeasonCurve, error)
	LoadCurves(curves []*entities.SeasonCurve) error
}

package memory

import (
	"github.com/storesim/invperf/pkg/domain/entities"
	"github.com/storesim/invperf/pkg/domain/repositories"
)

// CurveRepository provides in-memory season curve storage keyed by scope.
type CurveRepository struct {
	curves map[string]entities.SeasonCurve
}

// NewCurveRepository creates a new in-memory curve repository
func NewCurveRepository() *CurveRepository {
	return &CurveRepository{
		curves: make(map[string]entities.SeasonCurve),
	}
}

// Verify interface compliance
var _ repositories.CurveRepository = (*CurveRepository)(nil)

// LoadCurves loads curves into the repository, replacing any existing curve
// with the same scope key
func (r *CurveRepository) LoadCurves(curves []*entities.SeasonCurve) error {
	for _, curve := range curves {
		r.curves[curve.ScopeKey] = *curve
	}
	return nil
}

// GetCurve returns the curve for a scope key, or nil when none is loaded
func (r *CurveRepository) GetCurve(scopeKey string) (*entities.SeasonCurve, error) {
	curve, exists := r.curves[scopeKey]
	if !exists {
		return nil, nil
	}
	return &curve, nil
}

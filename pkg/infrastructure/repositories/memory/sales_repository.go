package memory

import (
	"sort"
	"time"

	"github.com/storesim/invperf/pkg/domain/entities"
	"github.com/storesim/invperf/pkg/domain/repositories"
)

// SalesRepository provides in-memory sales observation storage.
type SalesRepository struct {
	observations map[entities.ProductID]entities.SalesHistory
}

// NewSalesRepository creates a new in-memory sales repository
func NewSalesRepository() *SalesRepository {
	return &SalesRepository{
		observations: make(map[entities.ProductID]entities.SalesHistory),
	}
}

// Verify interface compliance
var _ repositories.SalesRepository = (*SalesRepository)(nil)

// LoadObservations adds observations for a product
func (r *SalesRepository) LoadObservations(productID entities.ProductID, observations []entities.SalesObservation) error {
	r.observations[productID] = append(r.observations[productID], observations...)
	return nil
}

// GetHistory returns a product's observations within the window ending at
// asOf, ordered by date ascending
func (r *SalesRepository) GetHistory(productID entities.ProductID, asOf time.Time, windowDays int) (entities.SalesHistory, error) {
	if windowDays <= 0 {
		return entities.SalesHistory{}, nil
	}

	windowStart := asOf.AddDate(0, 0, -(windowDays - 1))

	var history entities.SalesHistory
	for _, obs := range r.observations[productID] {
		if obs.Date.Before(windowStart) || obs.Date.After(asOf) {
			continue
		}
		history = append(history, obs)
	}
	sort.Slice(history, func(i, j int) bool {
		return history[i].Date.Before(history[j].Date)
	})

	return history, nil
}

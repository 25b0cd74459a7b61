package repositories

import (
	"time"

	"github.com/storesim/invperf/pkg/domain/entities"
)

// SalesRepository provides access to daily sales observations.
type SalesRepository interface {
	// GetHistory returns a product's observations within the windowDays
	// days ending at asOf, ordered by date ascending.
	GetHistory(productID entities.ProductID, asOf time.Time, windowDays int) (entities.SalesHistory, error)
	LoadObservations(productID entities.ProductID, observations []entities.SalesObservation) error
}

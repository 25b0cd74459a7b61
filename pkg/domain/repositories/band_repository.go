package repositories

import "github.com/storesim/invperf/pkg/domain/entities"

// BandRepository provides access to sales-expectation band configuration.
//
// Bands form an ordered rule list: FindBand returns the first band whose
// category, quality and tier range match, in the order bands were loaded.
// Overlapping tier ranges are tolerated; the first match wins
// deterministically.
type BandRepository interface {
	// FindBand looks up the band for a category, quality level and tier.
	// The tier is clamped to the valid range before matching. Returns
	// (nil, nil) when no band is configured.
	FindBand(categoryKey string, qualityLevel, tier int) (*entities.BandConfig, error)
	GetAllBands() ([]*entities.BandConfig, error)
	LoadBands(bands []*entities.BandConfig) error
}

package memory

import (
	"github.com/storesim/invperf/pkg/domain/entities"
	"github.com/storesim/invperf/pkg/domain/repositories"
)

// BandRepository provides in-memory band configuration storage. Bands keep
// their load order so that overlapping tier ranges resolve deterministically
// to the first match.
type BandRepository struct {
	bands []entities.BandConfig
}

// NewBandRepository creates a new in-memory band repository
func NewBandRepository() *BandRepository {
	return &BandRepository{
		bands: []entities.BandConfig{},
	}
}

// Verify interface compliance
var _ repositories.BandRepository = (*BandRepository)(nil)

// LoadBands appends bands to the ordered rule list
func (r *BandRepository) LoadBands(bands []*entities.BandConfig) error {
	for _, band := range bands {
		r.AddBand(*band)
	}
	return nil
}

// AddBand appends a single band to the ordered rule list
func (r *BandRepository) AddBand(band entities.BandConfig) {
	r.bands = append(r.bands, band)
}

// FindBand returns the first band matching the category, quality level and
// clamped tier, or nil when none is configured.
func (r *BandRepository) FindBand(categoryKey string, qualityLevel, tier int) (*entities.BandConfig, error) {
	clamped := entities.ClampTier(tier)

	for i := range r.bands {
		band := &r.bands[i]
		if band.Matches(categoryKey, qualityLevel, clamped) {
			return band, nil
		}
	}

	return nil, nil
}

// GetAllBands returns all bands in load order
func (r *BandRepository) GetAllBands() ([]*entities.BandConfig, error) {
	var bands []*entities.BandConfig
	for i := range r.bands {
		bands = append(bands, &r.bands[i])
	}
	return bands, nil
}

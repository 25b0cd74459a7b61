package entities

import "fmt"

// BandConfig defines the expected daily-sales range for a category, quality
// level and warehouse tier range. Bands are matched by exact category and
// quality plus a tier falling inside [TierMin, TierMax]; where ranges
// overlap, lookup order decides (first match wins).
type BandConfig struct {
	CategoryKey  string
	QualityLevel int
	TierMin      int
	TierMax      int
	MinDaily     float64
	MaxDaily     float64
	// ExpectedMode overrides the band midpoint as the expected daily rate.
	// Nil means "use the midpoint".
	ExpectedMode *float64
}

// NewBandConfig creates a validated BandConfig
func NewBandConfig(categoryKey string, qualityLevel, tierMin, tierMax int, minDaily, maxDaily float64) (*BandConfig, error) {
	if categoryKey == "" {
		return nil, fmt.Errorf("category key cannot be empty")
	}
	if tierMin < MinTier || tierMin > MaxTier {
		return nil, fmt.Errorf("tier min must be in [%d,%d], got %d", MinTier, MaxTier, tierMin)
	}
	if tierMax < MinTier || tierMax > MaxTier {
		return nil, fmt.Errorf("tier max must be in [%d,%d], got %d", MinTier, MaxTier, tierMax)
	}
	if tierMin > tierMax {
		return nil, fmt.Errorf("tier min %d exceeds tier max %d", tierMin, tierMax)
	}
	if minDaily > maxDaily {
		return nil, fmt.Errorf("min daily %.2f exceeds max daily %.2f", minDaily, maxDaily)
	}

	return &BandConfig{
		CategoryKey:  categoryKey,
		QualityLevel: qualityLevel,
		TierMin:      tierMin,
		TierMax:      tierMax,
		MinDaily:     minDaily,
		MaxDaily:     maxDaily,
	}, nil
}

// Matches reports whether this band applies to the given category, quality
// and (already clamped) tier.
func (b *BandConfig) Matches(categoryKey string, qualityLevel, tier int) bool {
	return b.CategoryKey == categoryKey &&
		b.QualityLevel == qualityLevel &&
		tier >= b.TierMin && tier <= b.TierMax
}

// ExpectedDaily returns the expected daily sales rate: the explicit expected
// mode when configured, otherwise the band midpoint.
func (b *BandConfig) ExpectedDaily() float64 {
	if b.ExpectedMode != nil {
		return *b.ExpectedMode
	}
	return (b.MinDaily + b.MaxDaily) / 2
}

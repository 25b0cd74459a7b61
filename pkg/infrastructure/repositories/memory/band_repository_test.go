package memory

import (
	"testing"

	"github.com/storesim/invperf/pkg/domain/entities"
)

func TestBandRepository_FirstMatchWins(t *testing.T) {
	repo := NewBandRepository()

	first, _ := entities.NewBandConfig("apparel", 2, 1, 3, 5, 15)
	overlapping, _ := entities.NewBandConfig("apparel", 2, 2, 4, 8, 25)
	if err := repo.LoadBands([]*entities.BandConfig{first, overlapping}); err != nil {
		t.Fatalf("Failed to load bands: %v", err)
	}

	// Tier 2 falls in both ranges; load order decides
	band, err := repo.FindBand("apparel", 2, 2)
	if err != nil {
		t.Fatalf("FindBand failed: %v", err)
	}
	if band == nil {
		t.Fatal("Expected a band match")
	}
	if band.MinDaily != 5 {
		t.Errorf("Expected first loaded band (min 5), got min %.0f", band.MinDaily)
	}

	// Tier 4 only matches the second band
	band, err = repo.FindBand("apparel", 2, 4)
	if err != nil {
		t.Fatalf("FindBand failed: %v", err)
	}
	if band == nil || band.MinDaily != 8 {
		t.Errorf("Expected second band (min 8) for tier 4, got %+v", band)
	}
}

func TestBandRepository_ClampsTier(t *testing.T) {
	repo := NewBandRepository()
	band, _ := entities.NewBandConfig("toys", 1, 1, 2, 3, 9)
	repo.AddBand(*band)

	// Tier 0 clamps to 1, tier 99 clamps to 5 (outside the band's range)
	got, err := repo.FindBand("toys", 1, 0)
	if err != nil {
		t.Fatalf("FindBand failed: %v", err)
	}
	if got == nil {
		t.Error("Expected clamped tier 0 to match tier-1 band")
	}

	got, err = repo.FindBand("toys", 1, 99)
	if err != nil {
		t.Fatalf("FindBand failed: %v", err)
	}
	if got != nil {
		t.Error("Expected clamped tier 99 (= 5) to miss a tier 1-2 band")
	}
}

func TestBandRepository_NoMatch(t *testing.T) {
	repo := NewBandRepository()

	band, err := repo.FindBand("unconfigured", 1, 3)
	if err != nil {
		t.Fatalf("FindBand failed: %v", err)
	}
	if band != nil {
		t.Errorf("Expected nil for unconfigured category, got %+v", band)
	}
}

package entities

import "testing"

func TestBandConfig_Validation(t *testing.T) {
	validBand, err := NewBandConfig("apparel", 2, 1, 3, 5, 20)
	if err != nil {
		t.Fatalf("Expected valid band creation to succeed: %v", err)
	}
	if validBand.MaxDaily != 20 {
		t.Errorf("Expected max daily 20, got %.1f", validBand.MaxDaily)
	}

	testCases := []struct {
		name        string
		categoryKey string
		tierMin     int
		tierMax     int
		minDaily    float64
		maxDaily    float64
		expectError string
	}{
		{"empty category", "", 1, 3, 5, 20, "category key cannot be empty"},
		{"tier min below range", "apparel", 0, 3, 5, 20, "tier min must be in [1,5], got 0"},
		{"tier max above range", "apparel", 1, 6, 5, 20, "tier max must be in [1,5], got 6"},
		{"inverted tier range", "apparel", 4, 2, 5, 20, "tier min 4 exceeds tier max 2"},
		{"inverted daily range", "apparel", 1, 3, 25, 20, "min daily 25.00 exceeds max daily 20.00"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := NewBandConfig(tc.categoryKey, 2, tc.tierMin, tc.tierMax, tc.minDaily, tc.maxDaily)
			if err == nil {
				t.Fatalf("Expected error for %s, but got none", tc.name)
			}
			if err.Error() != tc.expectError {
				t.Errorf("Expected error '%s', got '%s'", tc.expectError, err.Error())
			}
		})
	}
}

func TestBandConfig_Matches(t *testing.T) {
	band, err := NewBandConfig("toys", 1, 2, 4, 3, 12)
	if err != nil {
		t.Fatalf("Failed to create band: %v", err)
	}

	testCases := []struct {
		name     string
		category string
		quality  int
		tier     int
		want     bool
	}{
		{"tier at lower bound", "toys", 1, 2, true},
		{"tier at upper bound", "toys", 1, 4, true},
		{"tier below range", "toys", 1, 1, false},
		{"tier above range", "toys", 1, 5, false},
		{"wrong category", "apparel", 1, 3, false},
		{"wrong quality", "toys", 2, 3, false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			if got := band.Matches(tc.category, tc.quality, tc.tier); got != tc.want {
				t.Errorf("Matches(%s, %d, %d) = %v, want %v", tc.category, tc.quality, tc.tier, got, tc.want)
			}
		})
	}
}

func TestBandConfig_ExpectedDaily(t *testing.T) {
	band, err := NewBandConfig("toys", 1, 1, 5, 10, 30)
	if err != nil {
		t.Fatalf("Failed to create band: %v", err)
	}

	if got := band.ExpectedDaily(); got != 20 {
		t.Errorf("Expected midpoint 20 without expected mode, got %.1f", got)
	}

	mode := 18.0
	band.ExpectedMode = &mode
	if got := band.ExpectedDaily(); got != 18 {
		t.Errorf("Expected explicit mode 18, got %.1f", got)
	}
}

func TestClampTier(t *testing.T) {
	testCases := []struct {
		input int
		want  int
	}{
		{-3, 1},
		{0, 1},
		{1, 1},
		{3, 3},
		{5, 5},
		{9, 5},
	}

	for _, tc := range testCases {
		if got := ClampTier(tc.input); got != tc.want {
			t.Errorf("ClampTier(%d) = %d, want %d", tc.input, got, tc.want)
		}
	}
}

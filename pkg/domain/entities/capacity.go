package entities

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// CapacityConfig holds a warehouse's fixed daily shipping capacity. The
// value is derived externally from a tier/level lookup and treated as an
// opaque integer here.
type CapacityConfig struct {
	WarehouseID WarehouseID
	UnitsPerDay Quantity
}

// TempStaffRate prices purchasable one-day shipping capacity.
type TempStaffRate struct {
	// CapacityPerWorker is the extra units one temp worker ships in a day.
	CapacityPerWorker Quantity
	// BaseCostPerWorker is the daily hire cost before regional adjustment.
	BaseCostPerWorker decimal.Decimal
	// SalaryMultiplier scales the base cost for the warehouse's region.
	SalaryMultiplier decimal.Decimal
}

// NewTempStaffRate creates a validated TempStaffRate.
func NewTempStaffRate(capacityPerWorker Quantity, baseCostPerWorker, salaryMultiplier decimal.Decimal) (*TempStaffRate, error) {
	if capacityPerWorker <= 0 {
		return nil, fmt.Errorf("capacity per worker must be positive, got %d", capacityPerWorker)
	}
	if baseCostPerWorker.IsNegative() {
		return nil, fmt.Errorf("base cost per worker cannot be negative, got %s", baseCostPerWorker)
	}
	if salaryMultiplier.IsNegative() {
		return nil, fmt.Errorf("salary multiplier cannot be negative, got %s", salaryMultiplier)
	}

	return &TempStaffRate{
		CapacityPerWorker: capacityPerWorker,
		BaseCostPerWorker: baseCostPerWorker,
		SalaryMultiplier:  salaryMultiplier,
	}, nil
}

// CampaignSnapshot is a read-only view of a product's running marketing
// campaign, shown alongside performance in detail views.
type CampaignSnapshot struct {
	Name         string
	Active       bool
	StartedAt    time.Time
	BoostPercent float64
}

package dto

import (
	"time"

	"github.com/storesim/invperf/pkg/application/services/capacity"
	"github.com/storesim/invperf/pkg/application/services/report"
	"github.com/storesim/invperf/pkg/domain/entities"
)

// WarehouseDayResult is the outcome of one warehouse's daily allocation
// pass, handed to the presentation layer.
type WarehouseDayResult struct {
	WarehouseID   entities.WarehouseID
	Date          time.Time
	BaseCapacity  entities.Quantity
	StaffQuote    capacity.StaffQuote
	TotalCapacity entities.Quantity
	Allocation    *capacity.AllocationResult
}

// BacklogRemaining returns the units still outstanding after the day.
func (r *WarehouseDayResult) BacklogRemaining() entities.Quantity {
	if r.Allocation == nil {
		return 0
	}
	return capacity.TotalOutstanding(r.Allocation.UpdatedBacklog)
}

// DayRunResult aggregates a full simulated day: every warehouse's
// allocation plus the product performance report.
type DayRunResult struct {
	Date       time.Time
	WeekIndex  int
	Warehouses []*WarehouseDayResult
	Products   []report.ProductRow
}

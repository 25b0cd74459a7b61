package orchestration

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/storesim/invperf/pkg/application/dto"
	"github.com/storesim/invperf/pkg/application/services/capacity"
	"github.com/storesim/invperf/pkg/application/services/report"
	"github.com/storesim/invperf/pkg/domain/entities"
	"github.com/storesim/invperf/pkg/domain/repositories"
	"github.com/storesim/invperf/pkg/infrastructure/events"
)

// WarehouseDayPlan is one warehouse's input for a simulated day.
type WarehouseDayPlan struct {
	WarehouseID  entities.WarehouseID
	Capacity     entities.CapacityConfig
	TodaysOrders []*entities.BacklogEntry
	// RequestedStaff buys a one-day capacity boost when a rate is set.
	RequestedStaff int
	StaffRate      *entities.TempStaffRate
}

// DayOrchestrator runs the engine once per simulated day. Scoring and
// forecasting are pure and fan out per product; the backlog is the one
// mutable resource, so each warehouse's allocation pass runs exactly once
// per day while separate warehouses run in parallel.
type DayOrchestrator struct {
	backlogRepo repositories.BacklogRepository
	aggregator  *report.Aggregator
	allocator   *capacity.Allocator
	journal     *events.Journal
}

// NewDayOrchestrator creates a day orchestrator. The journal may be nil
// when no audit trail is wanted.
func NewDayOrchestrator(backlogRepo repositories.BacklogRepository, aggregator *report.Aggregator, journal *events.Journal) *DayOrchestrator {
	return &DayOrchestrator{
		backlogRepo: backlogRepo,
		aggregator:  aggregator,
		allocator:   capacity.NewAllocator(),
		journal:     journal,
	}
}

// RunWarehouseDay performs the single-writer allocation pass for one
// warehouse: read the open backlog, apply any temp-staff boost, allocate,
// and persist the updated snapshot.
func (o *DayOrchestrator) RunWarehouseDay(ctx context.Context, date time.Time, plan WarehouseDayPlan) (*dto.WarehouseDayResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	open, err := o.backlogRepo.GetOpenBacklog(plan.WarehouseID)
	if err != nil {
		return nil, fmt.Errorf("failed to read backlog for %s: %w", plan.WarehouseID, err)
	}

	var quote capacity.StaffQuote
	if plan.StaffRate != nil && plan.RequestedStaff > 0 {
		quote = capacity.QuoteTempStaff(plan.RequestedStaff, capacity.TotalOutstanding(open), *plan.StaffRate)
	}

	totalCapacity := plan.Capacity.UnitsPerDay + quote.ExtraCapacity
	allocation, err := o.allocator.Allocate(totalCapacity, open, plan.TodaysOrders)
	if err != nil {
		return nil, fmt.Errorf("failed to allocate capacity for %s: %w", plan.WarehouseID, err)
	}

	if err := o.backlogRepo.SaveBacklog(plan.WarehouseID, allocation.UpdatedBacklog); err != nil {
		return nil, fmt.Errorf("failed to save backlog for %s: %w", plan.WarehouseID, err)
	}

	result := &dto.WarehouseDayResult{
		WarehouseID:   plan.WarehouseID,
		Date:          date,
		BaseCapacity:  plan.Capacity.UnitsPerDay,
		StaffQuote:    quote,
		TotalCapacity: totalCapacity,
		Allocation:    allocation,
	}

	o.recordDay(plan, result)

	return result, nil
}

func (o *DayOrchestrator) recordDay(plan WarehouseDayPlan, result *dto.WarehouseDayResult) {
	if o.journal == nil {
		return
	}

	stream := string(plan.WarehouseID)
	if result.StaffQuote.StaffCount > 0 {
		o.journal.Append(stream, events.TypeTempStaffHired, events.TempStaffHiredData{
			WarehouseID:   plan.WarehouseID,
			Date:          result.Date,
			StaffCount:    result.StaffQuote.StaffCount,
			ExtraCapacity: result.StaffQuote.ExtraCapacity,
			Cost:          result.StaffQuote.Cost,
		})
	}
	o.journal.Append(stream, events.TypeDayAllocated, events.DayAllocatedData{
		WarehouseID:        plan.WarehouseID,
		Date:               result.Date,
		Capacity:           result.TotalCapacity,
		ShippedFromBacklog: result.Allocation.ShippedFromBacklog,
		ShippedFromToday:   result.Allocation.ShippedFromToday,
		BacklogRemaining:   result.BacklogRemaining(),
	})
}

// RunDay executes a full simulated day: every warehouse's allocation pass
// in parallel (one goroutine per warehouse, never two for the same
// warehouse) followed by the product report fan-out.
func (o *DayOrchestrator) RunDay(ctx context.Context, date time.Time, weekIndex int, plans []WarehouseDayPlan, products []report.ProductInput, sortBy report.SortField, ascending bool) (*dto.DayRunResult, error) {
	result := &dto.DayRunResult{
		Date:       date,
		WeekIndex:  weekIndex,
		Warehouses: make([]*dto.WarehouseDayResult, len(plans)),
	}

	var wg sync.WaitGroup
	var mutex sync.Mutex
	var firstErr error

	setErr := func(err error) {
		mutex.Lock()
		defer mutex.Unlock()
		if firstErr == nil {
			firstErr = err
		}
	}

	for i := range plans {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			dayResult, err := o.RunWarehouseDay(ctx, date, plans[i])
			if err != nil {
				setErr(err)
				return
			}
			result.Warehouses[i] = dayResult
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}

	rows, err := o.BuildReport(ctx, date, weekIndex, products)
	if err != nil {
		return nil, err
	}
	report.SortRows(rows, sortBy, ascending)
	result.Products = rows

	return result, nil
}

// BuildReport scores every product in parallel. Row order matches the
// input order; callers sort afterwards.
func (o *DayOrchestrator) BuildReport(ctx context.Context, asOf time.Time, weekIndex int, products []report.ProductInput) ([]report.ProductRow, error) {
	rows := make([]report.ProductRow, len(products))

	var wg sync.WaitGroup
	var mutex sync.Mutex
	var firstErr error

	for i := range products {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			if err := ctx.Err(); err != nil {
				mutex.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mutex.Unlock()
				return
			}
			row, err := o.aggregator.BuildRow(asOf, weekIndex, products[i])
			if err != nil {
				mutex.Lock()
				if firstErr == nil {
					firstErr = err
				}
				mutex.Unlock()
				return
			}
			rows[i] = *row
		}(i)
	}
	wg.Wait()

	if firstErr != nil {
		return nil, firstErr
	}
	return rows, nil
}

package capacity

import (
	"errors"
	"fmt"
	"sort"

	"github.com/storesim/invperf/pkg/domain/entities"
)

// Domain errors for invariant violations the caller must fix. These signal
// corrupted upstream state and are surfaced instead of silently patched.
var (
	ErrNegativeCapacity = errors.New("daily capacity cannot be negative")
	ErrNegativeOrderQty = errors.New("ordered quantity cannot be negative")
	ErrOverFulfilled    = errors.New("fulfilled quantity exceeds ordered quantity")
)

// AllocationResult reports how a day's capacity was spent and the backlog
// snapshot to persist for the next day.
type AllocationResult struct {
	ShippedFromBacklog entities.Quantity
	ShippedFromToday   entities.Quantity
	// UpdatedBacklog holds the remaining unresolved entries (prior backlog
	// plus today's unshipped remainder) in FIFO order. Resolved entries
	// are dropped from the snapshot.
	UpdatedBacklog []*entities.BacklogEntry
}

// TotalShipped returns units shipped across backlog and today's orders.
func (r *AllocationResult) TotalShipped() entities.Quantity {
	return r.ShippedFromBacklog + r.ShippedFromToday
}

// Allocator distributes a warehouse's daily shipping capacity over the
// accumulated backlog and the current day's new orders.
//
// Policy is strict FIFO by order date: older backlog ships first, and
// today's orders count as the newest entries regardless of their timestamps.
// Capacity is a hard ceiling. The allocator never mutates its inputs; it
// returns an updated snapshot for the caller to persist transactionally.
type Allocator struct{}

// NewAllocator creates a new capacity allocator
func NewAllocator() *Allocator {
	return &Allocator{}
}

// Allocate spends up to dailyCapacity units across the backlog and today's
// orders. Already-resolved entries are skipped, so re-entry with a stale
// snapshot is idempotent.
func (a *Allocator) Allocate(dailyCapacity entities.Quantity, backlog, todaysOrders []*entities.BacklogEntry) (*AllocationResult, error) {
	if dailyCapacity < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrNegativeCapacity, dailyCapacity)
	}
	if err := validateEntries(backlog); err != nil {
		return nil, fmt.Errorf("backlog entry: %w", err)
	}
	if err := validateEntries(todaysOrders); err != nil {
		return nil, fmt.Errorf("today's order: %w", err)
	}

	// Work on copies: the input snapshot stays untouched.
	aged := copyEntries(backlog)
	sort.SliceStable(aged, func(i, j int) bool {
		return aged[i].OrderDate.Before(aged[j].OrderDate)
	})
	fresh := copyEntries(todaysOrders)

	result := &AllocationResult{}
	remaining := dailyCapacity

	result.ShippedFromBacklog = fulfillInOrder(aged, &remaining)
	result.ShippedFromToday = fulfillInOrder(fresh, &remaining)

	for _, entry := range aged {
		if !entry.Resolved() {
			result.UpdatedBacklog = append(result.UpdatedBacklog, entry)
		}
	}
	for _, entry := range fresh {
		if !entry.Resolved() {
			result.UpdatedBacklog = append(result.UpdatedBacklog, entry)
		}
	}

	return result, nil
}

// fulfillInOrder consumes capacity entry-by-entry, incrementing
// QtyFulfilled, and returns the units shipped.
func fulfillInOrder(entries []*entities.BacklogEntry, remaining *entities.Quantity) entities.Quantity {
	var shipped entities.Quantity

	for _, entry := range entries {
		if *remaining == 0 {
			break
		}
		outstanding := entry.Outstanding()
		if outstanding <= 0 {
			continue
		}

		allocated := outstanding
		if allocated > *remaining {
			allocated = *remaining
		}

		entry.QtyFulfilled += allocated
		shipped += allocated
		*remaining -= allocated
	}

	return shipped
}

func validateEntries(entries []*entities.BacklogEntry) error {
	for _, entry := range entries {
		if entry.QtyOrdered < 0 {
			return fmt.Errorf("%w: %s ordered %d", ErrNegativeOrderQty, entry.ID, entry.QtyOrdered)
		}
		if entry.QtyFulfilled > entry.QtyOrdered {
			return fmt.Errorf("%w: %s fulfilled %d of %d", ErrOverFulfilled, entry.ID, entry.QtyFulfilled, entry.QtyOrdered)
		}
	}
	return nil
}

func copyEntries(entries []*entities.BacklogEntry) []*entities.BacklogEntry {
	copied := make([]*entities.BacklogEntry, len(entries))
	for i, entry := range entries {
		dup := *entry
		copied[i] = &dup
	}
	return copied
}

// TotalOutstanding sums the unfulfilled units across entries.
func TotalOutstanding(entries []*entities.BacklogEntry) entities.Quantity {
	var total entities.Quantity
	for _, entry := range entries {
		if outstanding := entry.Outstanding(); outstanding > 0 {
			total += outstanding
		}
	}
	return total
}

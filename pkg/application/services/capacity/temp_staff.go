package capacity

import (
	"github.com/shopspring/decimal"

	"github.com/storesim/invperf/pkg/domain/entities"
)

// StaffQuote is a priced one-day capacity boost. The extra capacity applies
// to a single day's allocation only; it is not a standing configuration
// change.
type StaffQuote struct {
	StaffCount    int
	ExtraCapacity entities.Quantity
	Cost          decimal.Decimal
}

// QuoteTempStaff prices a temp staff purchase for one day. The requested
// head count is clamped to [0, ceil(backlogUnits/capacityPerWorker)] so a
// caller cannot buy more clearing power than there is backlog to clear.
func QuoteTempStaff(requestedStaff int, backlogUnits entities.Quantity, rate entities.TempStaffRate) StaffQuote {
	staff := clampStaffCount(requestedStaff, backlogUnits, rate.CapacityPerWorker)

	cost := rate.BaseCostPerWorker.
		Mul(rate.SalaryMultiplier).
		Mul(decimal.NewFromInt(int64(staff)))

	return StaffQuote{
		StaffCount:    staff,
		ExtraCapacity: entities.Quantity(staff) * rate.CapacityPerWorker,
		Cost:          cost,
	}
}

func clampStaffCount(requested int, backlogUnits, capacityPerWorker entities.Quantity) int {
	if requested <= 0 || backlogUnits <= 0 || capacityPerWorker <= 0 {
		return 0
	}

	maxUseful := int((backlogUnits + capacityPerWorker - 1) / capacityPerWorker)
	if requested > maxUseful {
		return maxUseful
	}
	return requested
}

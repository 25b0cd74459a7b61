package events

import (
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"github.com/storesim/invperf/pkg/domain/entities"
)

// Type identifies a journal event kind.
type Type string

const (
	TypeDayAllocated   Type = "day_allocated"
	TypeTempStaffHired Type = "temp_staff_hired"
)

// Event is one immutable journal record. Streams are keyed by warehouse so
// a warehouse's day-by-day history reads back in order.
type Event struct {
	Type       Type
	Stream     string
	OccurredAt time.Time
	Version    int
	Data       interface{}
}

// DayAllocatedData records the outcome of one warehouse-day allocation.
type DayAllocatedData struct {
	WarehouseID        entities.WarehouseID
	Date               time.Time
	Capacity           entities.Quantity
	ShippedFromBacklog entities.Quantity
	ShippedFromToday   entities.Quantity
	BacklogRemaining   entities.Quantity
}

// TempStaffHiredData records a purchased one-day capacity boost.
type TempStaffHiredData struct {
	WarehouseID   entities.WarehouseID
	Date          time.Time
	StaffCount    int
	ExtraCapacity entities.Quantity
	Cost          decimal.Decimal
}

// Journal is an append-only in-memory event log. The engine's orchestrator
// appends to it as days run; callers read it back for audit output.
type Journal struct {
	mutex   sync.RWMutex
	streams map[string][]Event
	all     []Event
}

// NewJournal creates an empty journal
func NewJournal() *Journal {
	return &Journal{
		streams: make(map[string][]Event),
	}
}

// Append records an event on a stream, stamping version and time
func (j *Journal) Append(stream string, eventType Type, data interface{}) Event {
	j.mutex.Lock()
	defer j.mutex.Unlock()

	event := Event{
		Type:       eventType,
		Stream:     stream,
		OccurredAt: time.Now(),
		Version:    len(j.streams[stream]) + 1,
		Data:       data,
	}

	j.streams[stream] = append(j.streams[stream], event)
	j.all = append(j.all, event)

	return event
}

// Read returns a stream's events in append order
func (j *Journal) Read(stream string) []Event {
	j.mutex.RLock()
	defer j.mutex.RUnlock()

	events := make([]Event, len(j.streams[stream]))
	copy(events, j.streams[stream])
	return events
}

// ReadAll returns every event across streams in global append order
func (j *Journal) ReadAll() []Event {
	j.mutex.RLock()
	defer j.mutex.RUnlock()

	events := make([]Event, len(j.all))
	copy(events, j.all)
	return events
}

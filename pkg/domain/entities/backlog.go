package entities

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// BacklogEntry is an order line carried forward until fully fulfilled.
// QtyFulfilled only ever increases; the entry drops out of the open backlog
// once it reaches QtyOrdered. The engine never deletes entries, it only
// reads and increments them.
type BacklogEntry struct {
	ID           uuid.UUID
	ProductID    ProductID
	OrderDate    time.Time
	QtyOrdered   Quantity
	QtyFulfilled Quantity
}

// NewBacklogEntry creates a validated BacklogEntry for a freshly placed
// order line.
func NewBacklogEntry(productID ProductID, orderDate time.Time, qtyOrdered Quantity) (*BacklogEntry, error) {
	if string(productID) == "" {
		return nil, fmt.Errorf("product id cannot be empty")
	}
	if qtyOrdered < 0 {
		return nil, fmt.Errorf("ordered quantity cannot be negative, got %d", qtyOrdered)
	}

	return &BacklogEntry{
		ID:         uuid.New(),
		ProductID:  productID,
		OrderDate:  orderDate,
		QtyOrdered: qtyOrdered,
	}, nil
}

// Outstanding returns the unfulfilled remainder of the order line.
func (e *BacklogEntry) Outstanding() Quantity {
	return e.QtyOrdered - e.QtyFulfilled
}

// Resolved reports whether the order line is fully fulfilled.
func (e *BacklogEntry) Resolved() bool {
	return e.QtyFulfilled >= e.QtyOrdered
}

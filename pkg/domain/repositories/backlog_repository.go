package repositories

import "github.com/storesim/invperf/pkg/domain/entities"

// BacklogRepository provides access to unresolved order lines per
// warehouse. The engine reads a snapshot, allocates against it and hands an
// updated snapshot back; transactional persistence is the caller's job.
type BacklogRepository interface {
	// GetOpenBacklog returns unresolved entries for a warehouse, ordered
	// oldest first. Resolved entries are excluded.
	GetOpenBacklog(warehouseID entities.WarehouseID) ([]*entities.BacklogEntry, error)
	// SaveBacklog replaces the warehouse's open backlog with the given
	// snapshot.
	SaveBacklog(warehouseID entities.WarehouseID, entries []*entities.BacklogEntry) error
	AppendEntries(warehouseID entities.WarehouseID, entries []*entities.BacklogEntry) error
}

package memory

import (
	"sort"
	"sync"

	"github.com/storesim/invperf/pkg/domain/entities"
	"github.com/storesim/invperf/pkg/domain/repositories"
)

// BacklogRepository provides in-memory backlog storage per warehouse.
// Reads and writes are guarded so that parallel warehouse runs can share
// one repository; single-writer discipline per warehouse remains the
// orchestrator's responsibility.
type BacklogRepository struct {
	entries map[entities.WarehouseID][]entities.BacklogEntry
	mutex   sync.RWMutex
}

// NewBacklogRepository creates a new in-memory backlog repository
func NewBacklogRepository() *BacklogRepository {
	return &BacklogRepository{
		entries: make(map[entities.WarehouseID][]entities.BacklogEntry),
	}
}

// Verify interface compliance
var _ repositories.BacklogRepository = (*BacklogRepository)(nil)

// AppendEntries adds order lines to a warehouse's backlog
func (r *BacklogRepository) AppendEntries(warehouseID entities.WarehouseID, entries []*entities.BacklogEntry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	for _, entry := range entries {
		r.entries[warehouseID] = append(r.entries[warehouseID], *entry)
	}
	return nil
}

// GetOpenBacklog returns unresolved entries for a warehouse ordered oldest
// first. Resolved entries are retained in storage but never returned.
func (r *BacklogRepository) GetOpenBacklog(warehouseID entities.WarehouseID) ([]*entities.BacklogEntry, error) {
	r.mutex.RLock()
	defer r.mutex.RUnlock()

	var open []*entities.BacklogEntry
	for _, entry := range r.entries[warehouseID] {
		if entry.Resolved() {
			continue
		}
		copied := entry
		open = append(open, &copied)
	}
	sort.SliceStable(open, func(i, j int) bool {
		return open[i].OrderDate.Before(open[j].OrderDate)
	})

	return open, nil
}

// SaveBacklog replaces a warehouse's backlog with the given snapshot.
// Resolved entries already in storage are kept for retention; the snapshot
// replaces only the open portion.
func (r *BacklogRepository) SaveBacklog(warehouseID entities.WarehouseID, entries []*entities.BacklogEntry) error {
	r.mutex.Lock()
	defer r.mutex.Unlock()

	var retained []entities.BacklogEntry
	for _, entry := range r.entries[warehouseID] {
		if entry.Resolved() {
			retained = append(retained, entry)
		}
	}
	for _, entry := range entries {
		retained = append(retained, *entry)
	}
	r.entries[warehouseID] = retained

	return nil
}

package lists

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Preetham1508/DogHTTPImages/internal/shared"
)

// MemoryRepository is an in-memory Repository used by tests and local runs
// without PostgreSQL. It upholds the same per-owner name uniqueness and
// owner scoping as the PostgreSQL implementation.
type MemoryRepository struct {
	mu    sync.RWMutex
	byID  map[string]*List
	order []string
}

// NewMemoryRepository constructs an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{byID: make(map[string]*List)}
}

// Insert persists a new list, assigning id and creation time.
func (m *MemoryRepository) Insert(ctx context.Context, list *List) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.OwnerID == list.OwnerID && existing.Name == list.Name {
			return shared.ErrDuplicateName
		}
	}
	list.ID = uuid.NewString()
	list.CreatedAt = time.Now()
	stored := *list
	m.byID[list.ID] = &stored
	m.order = append(m.order, list.ID)
	return nil
}

// ListByOwner returns the owner's lists, most recent first.
func (m *MemoryRepository) ListByOwner(ctx context.Context, ownerID string) ([]List, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var result []List
	for i := len(m.order) - 1; i >= 0; i-- {
		list, ok := m.byID[m.order[i]]
		if ok && list.OwnerID == ownerID {
			result = append(result, *list)
		}
	}
	return result, nil
}

// Delete removes the list only when it belongs to ownerID.
func (m *MemoryRepository) Delete(ctx context.Context, ownerID, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list, ok := m.byID[id]
	if !ok || list.OwnerID != ownerID {
		return shared.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

// Update applies the supplied fields to the list scoped to (id, ownerID).
func (m *MemoryRepository) Update(ctx context.Context, ownerID, id string, fields UpdateFields) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	list, ok := m.byID[id]
	if !ok || list.OwnerID != ownerID {
		return shared.ErrNotFound
	}
	if fields.Name != nil {
		for _, existing := range m.byID {
			if existing.ID != id && existing.OwnerID == ownerID && existing.Name == *fields.Name {
				return shared.ErrDuplicateName
			}
		}
		list.Name = *fields.Name
	}
	if fields.Codes != nil {
		list.Codes = fields.Codes
		list.ImageURLs = fields.ImageURLs
	}
	return nil
}

var _ Repository = (*MemoryRepository)(nil)

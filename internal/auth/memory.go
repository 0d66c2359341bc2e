package auth

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/Preetham1508/DogHTTPImages/internal/shared"
)

// MemoryRepository is an in-memory Repository used by tests and local runs
// without PostgreSQL. It upholds the same email-uniqueness invariant.
type MemoryRepository struct {
	mu      sync.RWMutex
	byEmail map[string]*User
	byID    map[string]*User
}

// NewMemoryRepository constructs an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byEmail: make(map[string]*User),
		byID:    make(map[string]*User),
	}
}

// CreateUser inserts a new account, assigning id and creation time.
func (m *MemoryRepository) CreateUser(ctx context.Context, user *User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, exists := m.byEmail[user.Email]; exists {
		return shared.ErrDuplicateEmail
	}
	user.ID = uuid.NewString()
	user.CreatedAt = time.Now()
	stored := *user
	m.byEmail[user.Email] = &stored
	m.byID[user.ID] = &stored
	return nil
}

// FindByEmail fetches a user by exact email match.
func (m *MemoryRepository) FindByEmail(ctx context.Context, email string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.byEmail[email]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

// FindByID fetches a user by id.
func (m *MemoryRepository) FindByID(ctx context.Context, id string) (*User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	user, ok := m.byID[id]
	if !ok {
		return nil, shared.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

var _ Repository = (*MemoryRepository)(nil)

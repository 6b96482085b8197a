package users

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// MemoryRepository is an in-memory Repository used by tests and local runs
// without a database. Email uniqueness is enforced under the mutex, matching
// the unique constraint of the Postgres schema.
type MemoryRepository struct {
	mu     sync.Mutex
	byID   map[string]*User
	byMail map[string]string
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		byID:   make(map[string]*User),
		byMail: make(map[string]string),
	}
}

func (r *MemoryRepository) Create(ctx context.Context, user *User) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.byMail[user.Email]; exists {
		return nil, common.ErrEmailAlreadyExists
	}

	stored := *user
	stored.ID = uuid.NewString()
	stored.CreatedAt = time.Now()

	r.byID[stored.ID] = &stored
	r.byMail[stored.Email] = stored.ID

	result := stored
	return &result, nil
}

func (r *MemoryRepository) GetByEmail(ctx context.Context, email string) (*User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	id, ok := r.byMail[email]
	if !ok {
		return nil, common.ErrUserNotFound
	}

	result := *r.byID[id]
	return &result, nil
}

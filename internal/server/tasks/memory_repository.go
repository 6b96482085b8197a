package tasks

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

// MemoryRepository is an in-memory Repository used by tests and local runs
// without a database. It honors the same (id, owner) joint-scoping contract
// as the Postgres implementation.
type MemoryRepository struct {
	mu    sync.Mutex
	seq   int
	items map[string]*Task
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{items: make(map[string]*Task)}
}

func (r *MemoryRepository) Create(ctx context.Context, task *Task) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.seq++
	stored := *task
	stored.ID = uuid.NewString()
	// monotonic offset keeps ordering stable when inserts land on the
	// same clock tick
	stored.CreatedAt = time.Now().Add(time.Duration(r.seq) * time.Microsecond)

	r.items[stored.ID] = &stored

	result := stored
	return &result, nil
}

func (r *MemoryRepository) ListByUser(ctx context.Context, userID string) ([]*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	result := make([]*Task, 0)
	for _, task := range r.items {
		if task.UserID == userID {
			item := *task
			result = append(result, &item)
		}
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})

	return result, nil
}

func (r *MemoryRepository) UpdateIfOwner(ctx context.Context, id, userID string, patch Patch) (*Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.items[id]
	if !ok || task.UserID != userID {
		return nil, common.ErrTaskNotFound
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Completed != nil {
		task.Completed = *patch.Completed
	}

	result := *task
	return &result, nil
}

func (r *MemoryRepository) DeleteIfOwner(ctx context.Context, id, userID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	task, ok := r.items[id]
	if !ok || task.UserID != userID {
		return common.ErrTaskNotFound
	}

	delete(r.items, id)
	return nil
}

package tasks

import (
	"context"
)

// Repository is the storage boundary for task records. Every mutation is
// keyed by (task id, owner id) jointly; a task id alone never authorizes
// access.
type Repository interface {
	// Create inserts a new task and returns it with the storage-assigned
	// id and creation timestamp.
	Create(ctx context.Context, task *Task) (*Task, error)
	// ListByUser returns the user's tasks, newest first.
	ListByUser(ctx context.Context, userID string) ([]*Task, error)
	// UpdateIfOwner applies patch to the task in a single conditional
	// update. common.ErrTaskNotFound is returned when no row matches the
	// (id, owner) pair, whether the task is missing or owned by someone else.
	UpdateIfOwner(ctx context.Context, id, userID string, patch Patch) (*Task, error)
	// DeleteIfOwner removes the task under the same joint condition and
	// error contract as UpdateIfOwner.
	DeleteIfOwner(ctx context.Context, id, userID string) error
}

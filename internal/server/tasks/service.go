package tasks

import (
	"context"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
)

type Service struct {
	repo Repository
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// Create stores a new, not-yet-completed task. The owner is always the
// authenticated user; any owner value supplied by the caller is ignored.
func (s *Service) Create(ctx context.Context, userID, title string) (*Task, error) {

	if title == "" {
		return nil, fmt.Errorf("%w: title is required", common.ErrValidation)
	}

	task := &Task{
		Title:     title,
		Completed: false,
		UserID:    userID,
	}

	task, err := s.repo.Create(ctx, task)
	if err != nil {
		return nil, fmt.Errorf("error creating task: %w", err)
	}

	return task, nil
}

// List returns the user's tasks, newest first.
func (s *Service) List(ctx context.Context, userID string) ([]*Task, error) {
	result, err := s.repo.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error listing tasks: %w", err)
	}
	return result, nil
}

// Update applies a partial update to the task identified by (id, userID).
// A missing task and a task owned by someone else are indistinguishable to
// the caller: both yield common.ErrTaskNotFound.
func (s *Service) Update(ctx context.Context, userID, id string, patch Patch) (*Task, error) {
	task, err := s.repo.UpdateIfOwner(ctx, id, userID, patch)
	if err != nil {
		return nil, err
	}
	return task, nil
}

// Delete removes the task identified by (id, userID), with the same merged
// not-found semantics as Update.
func (s *Service) Delete(ctx context.Context, userID, id string) error {
	return s.repo.DeleteIfOwner(ctx, id, userID)
}

package tasks

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/taskkeeper/internal/common"
	"github.com/dmitrijs2005/taskkeeper/internal/dbx"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, task *Task) (*Task, error) {

	query :=
		`INSERT INTO tasks (user_id, title, completed)
		 VALUES ($1, $2, $3)
		 RETURNING id, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		task.UserID, task.Title, task.Completed).Scan(&task.ID, &task.CreatedAt)

	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) ListByUser(ctx context.Context, userID string) ([]*Task, error) {
	query :=
		`SELECT id, title, completed, user_id, created_at FROM tasks
		 WHERE user_id = $1
		 ORDER BY created_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}
	defer rows.Close()

	result := make([]*Task, 0)
	for rows.Next() {
		task := &Task{}
		if err := rows.Scan(&task.ID, &task.Title, &task.Completed, &task.UserID, &task.CreatedAt); err != nil {
			return nil, fmt.Errorf("error scanning row: %w", err)
		}
		result = append(result, task)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating rows: %w", err)
	}

	return result, nil
}

// UpdateIfOwner performs the ownership check and the mutation in one
// statement, so there is no window between verifying ownership and writing.
func (r *PostgresRepository) UpdateIfOwner(ctx context.Context, id, userID string, patch Patch) (*Task, error) {
	query :=
		`UPDATE tasks
		 SET title = COALESCE($3, title), completed = COALESCE($4, completed)
		 WHERE id = $1 AND user_id = $2
		 RETURNING id, title, completed, user_id, created_at
		 `

	task := &Task{}
	err := r.db.QueryRowContext(ctx, query, id, userID, patch.Title, patch.Completed).Scan(
		&task.ID, &task.Title, &task.Completed, &task.UserID, &task.CreatedAt)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrTaskNotFound
		}
		return nil, fmt.Errorf("error performing sql request: %w", err)
	}

	return task, nil
}

func (r *PostgresRepository) DeleteIfOwner(ctx context.Context, id, userID string) error {
	query :=
		`DELETE FROM tasks
		 WHERE id = $1 AND user_id = $2
		 RETURNING id
		 `

	var deletedID string
	err := r.db.QueryRowContext(ctx, query, id, userID).Scan(&deletedID)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return common.ErrTaskNotFound
		}
		return fmt.Errorf("error performing sql request: %w", err)
	}

	return nil
}

package tasks

import "time"

// Task is a single task record owned by exactly one user. UserID is set at
// creation and never changes.
type Task struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Completed bool      `json:"completed"`
	UserID    string    `json:"userId"`
	CreatedAt time.Time `json:"createdAt"`
}

// Patch describes a partial update of a task. Nil fields are left untouched.
type Patch struct {
	Title     *string
	Completed *bool
}

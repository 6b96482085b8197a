package users

import (
	"context"
)

type Repository interface {
	// Create inserts a new user and returns it with the storage-assigned id.
	// A unique-constraint violation on email yields common.ErrEmailAlreadyExists.
	Create(ctx context.Context, user *User) (*User, error)
	// GetByEmail returns the user with the given email or common.ErrUserNotFound.
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// Package common defines sentinel errors shared across the server and client
// layers of TaskKeeper. Callers should match these values with errors.Is.
package common

import "errors"

var (
	// Repository-level errors.
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found or unauthorized")
	ErrEmailAlreadyExists = errors.New("email already exists")

	// Service-level errors (generic flow control).
	ErrInternal      = errors.New("internal error")
	ErrUnauthorized  = errors.New("unauthorized")
	ErrValidation    = errors.New("validation error")
	ErrWrongPassword = errors.New("wrong password")

	// Token lifecycle errors.
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

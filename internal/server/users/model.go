package users

import "time"

// User is a registered identity. PasswordHash holds the bcrypt digest and
// must never be serialized into a response.
type User struct {
	ID           string
	Name         string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}

// Package user defines the identity used by the presentation layer to
// associate a requester with newly created cards. No card or transaction
// business rule depends on it.
package user

import (
	"time"

	"github.com/google/uuid"
)

// User is a registered API identity.
type User struct {
	ID           uuid.UUID
	Username     string
	PasswordHash string
	CreatedAt    time.Time
}

// New creates a user with a fresh UUID. The password hash is produced by the
// auth service, never stored in the clear.
func New(username, passwordHash string) *User {
	return &User{
		ID:           uuid.New(),
		Username:     username,
		PasswordHash: passwordHash,
		CreatedAt:    time.Now(),
	}
}

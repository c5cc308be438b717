// ABOUTME: User profile model, the root owner of all tracked data.
// ABOUTME: Users are identified by a unique name and resolved to a UUID.
package models

import (
	"time"

	"github.com/google/uuid"
)

// User represents a tracked user profile.
type User struct {
	ID        uuid.UUID
	Name      string
	CreatedAt time.Time
}

// NewUser creates a new User with generated UUID and current timestamp.
func NewUser(name string) *User {
	return &User{
		ID:        uuid.New(),
		Name:      name,
		CreatedAt: time.Now(),
	}
}

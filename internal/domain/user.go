package domain

import (
	"time"

	"github.com/google/uuid"
)

// User represents an account known to the identity provider.
type User struct {
	ID        uuid.UUID
	Username  string
	Email     string
	Role      UserRole
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Actor returns the identity under which u performs operations.
func (u *User) Actor() Actor {
	return Actor{ID: u.ID, Username: u.Username, Role: u.Role}
}

// Actor is the authenticated principal on whose behalf an operation runs.
type Actor struct {
	ID       uuid.UUID
	Username string
	Role     UserRole
}

func (a Actor) IsAdmin() bool {
	return a.Role.IsAdmin()
}

// UserRef is a lightweight projection of a user for embedding in views.
type UserRef struct {
	ID       uuid.UUID
	Username string
}

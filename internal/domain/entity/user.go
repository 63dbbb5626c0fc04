package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is an account that can sign in to the dashboard.
type User struct {
	ID          uuid.UUID
	Email       string
	DisplayName string
	Roles       Roles
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// IsAdmin reports whether the user may edit the menu and shop settings.
func (u *User) IsAdmin() bool {
	return u != nil && u.Roles.Contains(RoleAdmin)
}

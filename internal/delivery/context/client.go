package context

import (
	"slices"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const (
	keyClientID = "client_id"
	keyUserID   = "user_id"
	keyRoles    = "roles"
)

// SetClientID stores the anonymous client identifier used for per-client preferences.
func SetClientID(c echo.Context, clientID string) {
	c.Set(keyClientID, clientID)
}

// GetClientID returns the client identifier, or "" if the middleware did not run.
func GetClientID(c echo.Context) string {
	id, _ := c.Get(keyClientID).(string)

	return id
}

// SetPrincipal stores the authenticated user and roles.
func SetPrincipal(c echo.Context, userID uuid.UUID, roles []string) {
	c.Set(keyUserID, userID)
	c.Set(keyRoles, roles)
}

// GetUserID returns the authenticated user ID.
func GetUserID(c echo.Context) (uuid.UUID, bool) {
	id, ok := c.Get(keyUserID).(uuid.UUID)

	return id, ok && id != uuid.Nil
}

// GetRoles returns the authenticated user's roles.
func GetRoles(c echo.Context) []string {
	roles, _ := c.Get(keyRoles).([]string)

	return roles
}

// HasRole reports whether the authenticated user holds role.
func HasRole(c echo.Context, role string) bool {
	return slices.Contains(GetRoles(c), role)
}

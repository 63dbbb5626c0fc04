package entity

import (
	"time"

	"github.com/google/uuid"
)

// Session is the signed-in state seen by the storefront and dashboard.
type Session struct {
	UserID      uuid.UUID
	Email       string
	DisplayName string
	Roles       Roles
	IsAdmin     bool
}

// SessionEventType enumerates observable session transitions.
type SessionEventType string

const (
	SessionSignedUp  SessionEventType = "signed_up"
	SessionSignedIn  SessionEventType = "signed_in"
	SessionSignedOut SessionEventType = "signed_out"
)

// SessionEvent is published whenever a user's session changes.
type SessionEvent struct {
	Type       SessionEventType
	UserID     uuid.UUID
	IsAdmin    bool
	OccurredAt time.Time
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// ProviderType identifies how a credential authenticates.
type ProviderType string

// ProviderTypeEmail is the only provider: email plus bcrypt password.
const ProviderTypeEmail ProviderType = "email"

// Authentication is a single login credential belonging to a user.
type Authentication struct {
	ID             uuid.UUID
	UserID         uuid.UUID
	Provider       ProviderType
	ProviderUserID string // The normalized email for ProviderTypeEmail.
	PasswordHash   string
	CreatedAt      time.Time
}

// RefreshToken is a persisted session. Only the SHA-256 hash of the raw token is stored.
type RefreshToken struct {
	ID        uuid.UUID
	UserID    uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
}

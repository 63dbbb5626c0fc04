package usecase

import (
	"context"

	"brewmenu/internal/domain/entity"

	"github.com/google/uuid"
)

// --- Input DTOs ---

// SignUpInput defines the data required to create an account.
type SignUpInput struct {
	Email       string
	Password    string
	DisplayName string
}

// SignInInput defines the data required for a user to sign in.
type SignInInput struct {
	Email    string
	Password string
}

// --- Output DTOs ---

// AuthOutput is returned by sign-up and sign-in.
type AuthOutput struct {
	AccessToken  string
	RefreshToken string
	Session      *entity.Session
}

// UserUsecase is the auth collaborator: accounts, sessions and the admin flag.
type UserUsecase interface {
	// SignUp creates the account and signs it in.
	SignUp(ctx context.Context, input *SignUpInput) (*AuthOutput, error)
	SignIn(ctx context.Context, input *SignInInput) (*AuthOutput, error)

	// Refresh issues a new access token. The refresh token stays valid until sign-out or expiry.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	SignOut(ctx context.Context, refreshToken string) error
	Session(ctx context.Context, userID uuid.UUID) (*entity.Session, error)

	// SubscribeSessions observes sign-up, sign-in and sign-out.
	SubscribeSessions(fn func(ctx context.Context, event entity.SessionEvent)) (unsubscribe func())
}

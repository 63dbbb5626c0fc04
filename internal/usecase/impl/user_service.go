// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"
	"net/mail"
	"strings"
	"time"

	"brewmenu/config"
	deliverycontext "brewmenu/internal/delivery/context"
	"brewmenu/internal/domain/entity"
	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/domain/repository"
	"brewmenu/internal/domain/service"
	"brewmenu/internal/errors"
	"brewmenu/internal/eventbus"
	"brewmenu/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// userService implements the UserUsecase interface.
type userService struct {
	txManager        repository.TransactionManager
	userRepo         repository.UserRepository
	refreshTokenRepo repository.RefreshTokenRepository
	hasher           service.PasswordHasher
	tokenService     service.TokenService
	authConfig       *config.AuthConfig
	sessions         *eventbus.Bus[entity.SessionEvent]
	logger           *slog.Logger
	now              func() time.Time
}

// UserServiceParams holds dependencies for UserService, injected by Fx.
type UserServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	UserRepo         repository.UserRepository
	RefreshTokenRepo repository.RefreshTokenRepository
	Hasher           service.PasswordHasher
	TokenService     service.TokenService
	Config           *config.Config
	Logger           *slog.Logger
}

// NewUserService is the constructor for userService. It receives all dependencies as interfaces.
func NewUserService(params UserServiceParams) usecase.UserUsecase {
	return newUserService(
		params.TxManager,
		params.UserRepo,
		params.RefreshTokenRepo,
		params.Hasher,
		params.TokenService,
		params.Config.Auth,
		params.Logger,
	)
}

func newUserService(
	txManager repository.TransactionManager,
	userRepo repository.UserRepository,
	refreshTokenRepo repository.RefreshTokenRepository,
	hasher service.PasswordHasher,
	tokenService service.TokenService,
	authConfig *config.AuthConfig,
	logger *slog.Logger,
) *userService {
	return &userService{
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
		authConfig:       authConfig,
		sessions:         eventbus.New[entity.SessionEvent]("sessions", logger),
		logger:           logger,
		now:              time.Now,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *userService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// SignUp creates the user and its email credential in one transaction, then signs in.
func (srv *userService) SignUp(ctx context.Context, input *usecase.SignUpInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	displayName := strings.TrimSpace(input.DisplayName)

	validation := domainerrors.NewValidationError()
	if !isValidEmail(email) {
		validation.Add("email", "must be a valid email address")
	}
	if validation.HasErrors() {
		return nil, validation
	}
	if err := srv.hasher.ValidatePasswordStrength(input.Password); err != nil {
		return nil, err
	}
	if displayName == "" {
		displayName = email[:strings.Index(email, "@")]
	}

	srv.log(ctx).Info("Starting sign-up", slog.String("email", email))

	hashedPassword, err := srv.hasher.Hash(input.Password)
	if err != nil {
		return nil, errors.Wrap(err, "failed to hash password during sign-up")
	}

	roles := entity.Roles{entity.RoleUser}
	if srv.authConfig.IsAdminEmail(email) {
		roles = append(roles, entity.RoleAdmin)
	}

	newUser := &entity.User{
		Email:       email,
		DisplayName: displayName,
		Roles:       roles,
	}

	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		authRepo := repoFactory.AuthRepo()

		_, err := authRepo.FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if err == nil {
			return domainerrors.ErrUserAlreadyExists
		}
		if !errors.Is(err, repository.ErrAuthNotFound) {
			return errors.Wrap(err, "failed to find authentication")
		}

		if err := repoFactory.UserRepo().Create(ctx, newUser); err != nil {
			return errors.Wrap(err, "failed to create user during sign-up")
		}

		return authRepo.CreateAuthentication(ctx, &entity.Authentication{
			UserID:         newUser.ID,
			Provider:       entity.ProviderTypeEmail,
			ProviderUserID: email,
			PasswordHash:   hashedPassword,
		})
	})
	if err != nil {
		srv.log(ctx).Warn("Sign-up failed", slog.String("email", email), slog.Any("error", err))

		if errors.Is(err, domainerrors.ErrUserAlreadyExists) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to execute sign-up transaction")
	}

	return srv.startSession(ctx, newUser, entity.SessionSignedUp)
}

// SignIn checks the password against the stored credential.
// Unknown emails and wrong passwords are indistinguishable to the caller.
func (srv *userService) SignIn(ctx context.Context, input *usecase.SignInInput) (*usecase.AuthOutput, error) {
	email := normalizeEmail(input.Email)
	srv.log(ctx).Debug("Starting sign-in", slog.String("email", email))

	authRecord, err := srv.loadSignInAuth(ctx, email)
	if err != nil {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.Any("error", err))

		return nil, err
	}

	// bcrypt is CPU-bound, so the check stays outside the transaction.
	if !srv.hasher.Check(input.Password, authRecord.PasswordHash) {
		srv.log(ctx).Warn("Sign-in failed", slog.String("email", email), slog.Any("error", domainerrors.ErrInvalidCredentials))

		return nil, domainerrors.ErrInvalidCredentials
	}

	user, err := srv.userRepo.FindByID(repository.WithReadPrimary(ctx), authRecord.UserID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load signed-in user")
	}

	return srv.startSession(ctx, user, entity.SessionSignedIn)
}

func (srv *userService) loadSignInAuth(ctx context.Context, email string) (*entity.Authentication, error) {
	var authRecord *entity.Authentication

	// Read from the primary so a just-created account can sign in at once.
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		var findErr error
		authRecord, findErr = repoFactory.AuthRepo().FindAuthentication(ctx, entity.ProviderTypeEmail, email)
		if findErr != nil {
			if errors.Is(findErr, repository.ErrAuthNotFound) {
				return domainerrors.ErrInvalidCredentials
			}

			return errors.Wrap(findErr, "failed to find authentication")
		}

		return nil
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidCredentials) {
			return nil, err
		}

		return nil, errors.Wrap(err, "failed to execute sign-in transaction")
	}

	return authRecord, nil
}

func (srv *userService) startSession(ctx context.Context, user *entity.User, eventType entity.SessionEventType) (*usecase.AuthOutput, error) {
	accessToken, refreshToken, err := srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())
	if err != nil {
		return nil, errors.Wrap(err, "failed to generate tokens")
	}

	now := srv.now()
	if err := srv.refreshTokenRepo.CreateRefreshToken(ctx, &entity.RefreshToken{
		UserID:    user.ID,
		TokenHash: srv.tokenService.HashToken(refreshToken),
		ExpiresAt: now.Add(srv.tokenService.GetRefreshTokenDuration()),
	}); err != nil {
		return nil, errors.Wrap(err, "failed to store refresh token")
	}

	srv.log(ctx).Info("Session started", slog.Any("userID", user.ID), slog.String("event", string(eventType)))
	srv.sessions.Publish(ctx, entity.SessionEvent{
		Type:       eventType,
		UserID:     user.ID,
		IsAdmin:    user.IsAdmin(),
		OccurredAt: now,
	})

	return &usecase.AuthOutput{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		Session:      sessionFromUser(user),
	}, nil
}

// Refresh issues a new access token. Roles are re-read so a granted admin role applies immediately.
func (srv *userService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil || claims.Type != service.TokenTypeRefresh {
		return "", domainerrors.ErrRefreshTokenInvalid
	}

	var accessToken string
	err = srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if _, err := repoFactory.RefreshTokenRepo().FindRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken)); err != nil {
			if errors.Is(err, repository.ErrRefreshTokenNotFound) || errors.Is(err, repository.ErrRefreshTokenExpired) {
				return domainerrors.ErrRefreshTokenInvalid
			}

			return errors.Wrap(err, "failed to find refresh token")
		}

		user, err := repoFactory.UserRepo().FindByID(ctx, claims.UserID)
		if err != nil {
			return errors.Wrap(err, "failed to find user")
		}

		accessToken, _, err = srv.tokenService.GenerateTokens(user.ID, user.Roles.ToStrings())

		return errors.Wrap(err, "failed to generate new access token")
	})
	if err != nil {
		if errors.Is(err, domainerrors.ErrRefreshTokenInvalid) {
			return "", err
		}
		srv.log(ctx).Error("Failed to refresh access token", slog.Any("error", err))

		return "", errors.Wrap(err, "failed to execute refresh token transaction")
	}

	return accessToken, nil
}

// SignOut deletes the stored session. An invalid or unknown token still succeeds.
func (srv *userService) SignOut(ctx context.Context, refreshToken string) error {
	claims, err := srv.tokenService.ValidateToken(refreshToken)
	if err != nil {
		srv.log(ctx).Warn("Sign-out with invalid token", slog.Any("error", err))
	}

	if err := srv.refreshTokenRepo.DeleteRefreshTokenByHash(ctx, srv.tokenService.HashToken(refreshToken)); err != nil {
		srv.log(ctx).Error("Failed to delete refresh token", slog.Any("error", err))

		return errors.Wrap(err, "failed to delete refresh token")
	}

	if claims != nil {
		srv.sessions.Publish(ctx, entity.SessionEvent{
			Type:       entity.SessionSignedOut,
			UserID:     claims.UserID,
			OccurredAt: srv.now(),
		})
	}
	srv.log(ctx).Info("Signed out")

	return nil
}

func (srv *userService) Session(ctx context.Context, userID uuid.UUID) (*entity.Session, error) {
	user, err := srv.userRepo.FindByID(ctx, userID)
	if err != nil {
		if errors.Is(err, domainerrors.ErrUserNotFound) || errors.Is(err, repository.ErrUserNotFound) {
			return nil, domainerrors.ErrUserNotFound
		}

		return nil, errors.Wrap(err, "failed to load session user")
	}

	return sessionFromUser(user), nil
}

func (srv *userService) SubscribeSessions(fn func(ctx context.Context, event entity.SessionEvent)) func() {
	return srv.sessions.Subscribe(fn)
}

func sessionFromUser(user *entity.User) *entity.Session {
	return &entity.Session{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: user.DisplayName,
		Roles:       user.Roles,
		IsAdmin:     user.IsAdmin(),
	}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func isValidEmail(email string) bool {
	addr, err := mail.ParseAddress(email)

	return err == nil && addr.Address == email
}

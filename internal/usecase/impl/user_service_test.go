package impl

import (
	"context"
	"testing"
	"time"

	"brewmenu/config"
	"brewmenu/internal/domain/entity"
	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/domain/repository"
	"brewmenu/internal/domain/service"
	"brewmenu/internal/errors"
	mockRepo "brewmenu/internal/mocks/repository"
	mockSvc "brewmenu/internal/mocks/service"
	"brewmenu/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// userServiceFixtures holds all test dependencies for user service tests.
type userServiceFixtures struct {
	service          *userService
	txManager        *mockRepo.MockTransactionManager
	userRepo         *mockRepo.MockUserRepository
	refreshTokenRepo *mockRepo.MockRefreshTokenRepository
	hasher           *mockSvc.MockPasswordHasher
	tokenService     *mockSvc.MockTokenService
}

func createTestUserService(t *testing.T) userServiceFixtures {
	txManager := mockRepo.NewMockTransactionManager(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	refreshTokenRepo := mockRepo.NewMockRefreshTokenRepository(t)
	hasher := mockSvc.NewMockPasswordHasher(t)
	tokenService := mockSvc.NewMockTokenService(t)

	srv := newUserService(
		txManager,
		userRepo,
		refreshTokenRepo,
		hasher,
		tokenService,
		&config.AuthConfig{AdminEmails: []string{"owner@brewmenu.local"}},
		newDiscardLogger(),
	)
	srv.now = func() time.Time { return time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC) }

	return userServiceFixtures{
		service:          srv,
		txManager:        txManager,
		userRepo:         userRepo,
		refreshTokenRepo: refreshTokenRepo,
		hasher:           hasher,
		tokenService:     tokenService,
	}
}

// runInTx makes Execute invoke fn against a factory built by setup and return fn's error.
func (fx userServiceFixtures) runInTx(t *testing.T, setup func(factory *mockRepo.MockRepositoryFactory)) {
	fx.txManager.EXPECT().
		Execute(mock.Anything, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
		RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
			mockFactory := mockRepo.NewMockRepositoryFactory(t)
			setup(mockFactory)

			return fn(mockFactory)
		}).Once()
}

func (fx userServiceFixtures) expectSessionIssued(userID uuid.UUID, roles []string) {
	fx.tokenService.EXPECT().GenerateTokens(userID, roles).Return("access-token", "refresh-token", nil).Once()
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash").Once()
	fx.tokenService.EXPECT().GetRefreshTokenDuration().Return(time.Hour).Once()
	fx.refreshTokenRepo.EXPECT().
		CreateRefreshToken(mock.Anything, mock.MatchedBy(func(token *entity.RefreshToken) bool {
			return token.UserID == userID && token.TokenHash == "refresh-hash" &&
				token.ExpiresAt.Equal(time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC))
		})).
		Return(nil).Once()
}

func TestUserService_SignUp_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil).Once()
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil).Once()
	fx.runInTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().AuthRepo().Return(authRepo)
		factory.EXPECT().UserRepo().Return(userRepo)

		authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "barista@example.com").
			Return(nil, repository.ErrAuthNotFound).Once()
		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) {
				assert.Equal(t, "Ana", user.DisplayName)
				assert.Equal(t, entity.Roles{entity.RoleUser}, user.Roles)
				user.ID = userID
			}).
			Return(nil).Once()
		authRepo.EXPECT().
			CreateAuthentication(ctx, mock.MatchedBy(func(auth *entity.Authentication) bool {
				return auth.UserID == userID && auth.PasswordHash == "hashed" && auth.ProviderUserID == "barista@example.com"
			})).
			Return(nil).Once()
	})
	fx.expectSessionIssued(userID, []string{"user"})

	var events []entity.SessionEvent
	fx.service.SubscribeSessions(func(_ context.Context, event entity.SessionEvent) {
		events = append(events, event)
	})

	output, err := fx.service.SignUp(ctx, &usecase.SignUpInput{
		Email:       "  Barista@Example.com ",
		Password:    "secret1",
		DisplayName: " Ana ",
	})

	require.NoError(t, err)
	assert.Equal(t, "access-token", output.AccessToken)
	assert.Equal(t, "refresh-token", output.RefreshToken)
	assert.Equal(t, "barista@example.com", output.Session.Email)
	assert.False(t, output.Session.IsAdmin)
	require.Len(t, events, 1)
	assert.Equal(t, entity.SessionSignedUp, events[0].Type)
	assert.Equal(t, userID, events[0].UserID)
}

func TestUserService_SignUp_AdminEmailGetsAdminRole(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil).Once()
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil).Once()
	fx.runInTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().AuthRepo().Return(authRepo)
		factory.EXPECT().UserRepo().Return(userRepo)

		authRepo.EXPECT().FindAuthentication(ctx, entity.ProviderTypeEmail, "owner@brewmenu.local").Return(nil, repository.ErrAuthNotFound).Once()
		userRepo.EXPECT().
			Create(ctx, mock.AnythingOfType("*entity.User")).
			Run(func(_ context.Context, user *entity.User) { user.ID = userID }).
			Return(nil).Once()
		authRepo.EXPECT().CreateAuthentication(ctx, mock.AnythingOfType("*entity.Authentication")).Return(nil).Once()
	})
	fx.expectSessionIssued(userID, []string{"user", "admin"})

	output, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Email: "owner@brewmenu.local", Password: "secret1"})

	require.NoError(t, err)
	assert.True(t, output.Session.IsAdmin)
	assert.Equal(t, "owner", output.Session.DisplayName)
}

func TestUserService_SignUp_EmailTaken(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.hasher.EXPECT().ValidatePasswordStrength("secret1").Return(nil).Once()
	fx.hasher.EXPECT().Hash("secret1").Return("hashed", nil).Once()
	fx.runInTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(authRepo)
		authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "taken@example.com").
			Return(&entity.Authentication{UserID: uuid.New()}, nil).Once()
	})

	output, err := fx.service.SignUp(ctx, &usecase.SignUpInput{Email: "taken@example.com", Password: "secret1"})

	assert.Nil(t, output)
	assert.True(t, errors.Is(err, domainerrors.ErrUserAlreadyExists))
}

func TestUserService_SignUp_RejectsInput(t *testing.T) {
	fx := createTestUserService(t)

	_, err := fx.service.SignUp(context.Background(), &usecase.SignUpInput{Email: "not-an-email", Password: "secret1"})
	assert.True(t, errors.Is(err, domainerrors.ErrValidationFailed))

	fx.hasher.EXPECT().ValidatePasswordStrength("abc").Return(domainerrors.ErrPasswordStrength.WithDetails("password is too short")).Once()

	_, err = fx.service.SignUp(context.Background(), &usecase.SignUpInput{Email: "ok@example.com", Password: "abc"})
	assert.True(t, errors.Is(err, domainerrors.ErrPasswordStrength))
}

func TestUserService_SignIn_Success(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "owner@brewmenu.local", DisplayName: "Owner", Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}

	fx.runInTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		authRepo := mockRepo.NewMockAuthRepository(t)
		factory.EXPECT().AuthRepo().Return(authRepo)
		authRepo.EXPECT().
			FindAuthentication(ctx, entity.ProviderTypeEmail, "owner@brewmenu.local").
			Return(&entity.Authentication{UserID: user.ID, PasswordHash: "hashed"}, nil).Once()
	})
	fx.hasher.EXPECT().Check("secret1", "hashed").Return(true).Once()
	fx.userRepo.EXPECT().
		FindByID(mock.MatchedBy(func(ctx context.Context) bool { return repository.ReadPrimary(ctx) }), user.ID).
		Return(user, nil).Once()
	fx.expectSessionIssued(user.ID, []string{"user", "admin"})

	var events []entity.SessionEvent
	fx.service.SubscribeSessions(func(_ context.Context, event entity.SessionEvent) {
		events = append(events, event)
	})

	output, err := fx.service.SignIn(ctx, &usecase.SignInInput{Email: "Owner@Brewmenu.local", Password: "secret1"})

	require.NoError(t, err)
	assert.True(t, output.Session.IsAdmin)
	require.Len(t, events, 1)
	assert.Equal(t, entity.SessionSignedIn, events[0].Type)
	assert.True(t, events[0].IsAdmin)
}

func TestUserService_SignIn_InvalidCredentials(t *testing.T) {
	t.Run("unknown email", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.runInTx(t, func(factory *mockRepo.MockRepositoryFactory) {
			authRepo := mockRepo.NewMockAuthRepository(t)
			factory.EXPECT().AuthRepo().Return(authRepo)
			authRepo.EXPECT().FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "ghost@example.com").Return(nil, repository.ErrAuthNotFound).Once()
		})

		_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{Email: "ghost@example.com", Password: "secret1"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})

	t.Run("wrong password", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.runInTx(t, func(factory *mockRepo.MockRepositoryFactory) {
			authRepo := mockRepo.NewMockAuthRepository(t)
			factory.EXPECT().AuthRepo().Return(authRepo)
			authRepo.EXPECT().
				FindAuthentication(mock.Anything, entity.ProviderTypeEmail, "barista@example.com").
				Return(&entity.Authentication{UserID: uuid.New(), PasswordHash: "hashed"}, nil).Once()
		})
		fx.hasher.EXPECT().Check("wrong", "hashed").Return(false).Once()

		_, err := fx.service.SignIn(context.Background(), &usecase.SignInInput{Email: "barista@example.com", Password: "wrong"})
		assert.True(t, errors.Is(err, domainerrors.ErrInvalidCredentials))
	})
}

func TestUserService_Refresh(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("refresh-token").
		Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil).Once()
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash").Once()
	fx.runInTx(t, func(factory *mockRepo.MockRepositoryFactory) {
		refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
		userRepo := mockRepo.NewMockUserRepository(t)
		factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
		factory.EXPECT().UserRepo().Return(userRepo)

		refreshRepo.EXPECT().FindRefreshTokenByHash(ctx, "refresh-hash").Return(&entity.RefreshToken{UserID: userID}, nil).Once()
		userRepo.EXPECT().FindByID(ctx, userID).Return(&entity.User{ID: userID, Roles: entity.Roles{entity.RoleUser}}, nil).Once()
	})
	fx.tokenService.EXPECT().GenerateTokens(userID, []string{"user"}).Return("new-access", "unused", nil).Once()

	accessToken, err := fx.service.Refresh(ctx, "refresh-token")

	require.NoError(t, err)
	assert.Equal(t, "new-access", accessToken)
}

func TestUserService_Refresh_Rejections(t *testing.T) {
	t.Run("access token presented", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("access-token").
			Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeAccess}, nil).Once()

		_, err := fx.service.Refresh(context.Background(), "access-token")
		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})

	t.Run("signed out session", func(t *testing.T) {
		fx := createTestUserService(t)
		fx.tokenService.EXPECT().ValidateToken("refresh-token").
			Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil).Once()
		fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash").Once()
		fx.runInTx(t, func(factory *mockRepo.MockRepositoryFactory) {
			refreshRepo := mockRepo.NewMockRefreshTokenRepository(t)
			factory.EXPECT().RefreshTokenRepo().Return(refreshRepo)
			refreshRepo.EXPECT().FindRefreshTokenByHash(mock.Anything, "refresh-hash").Return(nil, repository.ErrRefreshTokenNotFound).Once()
		})

		_, err := fx.service.Refresh(context.Background(), "refresh-token")
		assert.True(t, errors.Is(err, domainerrors.ErrRefreshTokenInvalid))
	})
}

func TestUserService_SignOut(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	userID := uuid.New()

	fx.tokenService.EXPECT().ValidateToken("refresh-token").Return(&service.Claims{UserID: userID, Type: service.TokenTypeRefresh}, nil).Once()
	fx.tokenService.EXPECT().HashToken("refresh-token").Return("refresh-hash").Once()
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "refresh-hash").Return(nil).Once()

	var events []entity.SessionEvent
	unsubscribe := fx.service.SubscribeSessions(func(_ context.Context, event entity.SessionEvent) {
		events = append(events, event)
	})
	defer unsubscribe()

	require.NoError(t, fx.service.SignOut(ctx, "refresh-token"))
	require.Len(t, events, 1)
	assert.Equal(t, entity.SessionSignedOut, events[0].Type)
	assert.Equal(t, userID, events[0].UserID)
}

func TestUserService_SignOut_InvalidTokenStillDeletes(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()

	fx.tokenService.EXPECT().ValidateToken("garbage").Return(nil, errors.New("token is malformed")).Once()
	fx.tokenService.EXPECT().HashToken("garbage").Return("garbage-hash").Once()
	fx.refreshTokenRepo.EXPECT().DeleteRefreshTokenByHash(ctx, "garbage-hash").Return(nil).Once()

	require.NoError(t, fx.service.SignOut(ctx, "garbage"))
}

func TestUserService_Session(t *testing.T) {
	fx := createTestUserService(t)
	ctx := context.Background()
	user := &entity.User{ID: uuid.New(), Email: "owner@brewmenu.local", DisplayName: "Owner", Roles: entity.Roles{entity.RoleUser, entity.RoleAdmin}}

	fx.userRepo.EXPECT().FindByID(ctx, user.ID).Return(user, nil).Once()

	session, err := fx.service.Session(ctx, user.ID)
	require.NoError(t, err)
	assert.Equal(t, &entity.Session{
		UserID:      user.ID,
		Email:       user.Email,
		DisplayName: "Owner",
		Roles:       user.Roles,
		IsAdmin:     true,
	}, session)

	missing := uuid.New()
	fx.userRepo.EXPECT().FindByID(ctx, missing).Return(nil, repository.ErrUserNotFound).Once()

	_, err = fx.service.Session(ctx, missing)
	assert.True(t, errors.Is(err, domainerrors.ErrUserNotFound))
}

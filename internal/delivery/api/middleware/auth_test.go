package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "brewmenu/internal/delivery/context"
	"brewmenu/internal/domain/entity"
	"brewmenu/internal/domain/service"
	"brewmenu/internal/errors"
	mockSvc "brewmenu/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAuthContext(authHeader string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/", nil)
	if authHeader != "" {
		req.Header.Set(echo.HeaderAuthorization, authHeader)
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var body struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))

	return body.Error.Code
}

func okHandler(c echo.Context) error {
	return c.NoContent(http.StatusNoContent)
}

func TestAuthenticate_ValidAccessToken(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	userID := uuid.New()
	tokenSvc.EXPECT().ValidateToken("good").Return(&service.Claims{
		UserID: userID,
		Roles:  []string{"user", "admin"},
		Type:   service.TokenTypeAccess,
	}, nil)

	m := NewAuthMiddleware(tokenSvc)
	c, rec := newAuthContext("Bearer good")

	require.NoError(t, m.Authenticate(okHandler)(c))

	assert.Equal(t, http.StatusNoContent, rec.Code)
	gotID, ok := deliverycontext.GetUserID(c)
	assert.True(t, ok)
	assert.Equal(t, userID, gotID)
	assert.True(t, deliverycontext.HasRole(c, "admin"))
}

func TestAuthenticate_Rejections(t *testing.T) {
	tests := []struct {
		name   string
		header string
		setup  func(*mockSvc.MockTokenService)
	}{
		{name: "missing header", header: ""},
		{name: "wrong scheme", header: "Basic abc"},
		{
			name:   "invalid token",
			header: "Bearer bad",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("bad").Return(nil, errors.New("token is expired"))
			},
		},
		{
			name:   "refresh token used as access token",
			header: "Bearer refresh",
			setup: func(m *mockSvc.MockTokenService) {
				m.EXPECT().ValidateToken("refresh").Return(&service.Claims{UserID: uuid.New(), Type: service.TokenTypeRefresh}, nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tokenSvc := mockSvc.NewMockTokenService(t)
			if tt.setup != nil {
				tt.setup(tokenSvc)
			}

			m := NewAuthMiddleware(tokenSvc)
			c, rec := newAuthContext(tt.header)

			require.NoError(t, m.Authenticate(okHandler)(c))

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "UNAUTHORIZED", errorCode(t, rec))
			_, ok := deliverycontext.GetUserID(c)
			assert.False(t, ok)
		})
	}
}

func TestOptionalAuthenticate_GuestContinues(t *testing.T) {
	tokenSvc := mockSvc.NewMockTokenService(t)
	tokenSvc.EXPECT().ValidateToken("bad").Return(nil, errors.New("signature is invalid"))

	m := NewAuthMiddleware(tokenSvc)

	c, rec := newAuthContext("")
	require.NoError(t, m.OptionalAuthenticate(okHandler)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	c, rec = newAuthContext("Bearer bad")
	require.NoError(t, m.OptionalAuthenticate(okHandler)(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	_, ok := deliverycontext.GetUserID(c)
	assert.False(t, ok)
}

func TestRequireRole(t *testing.T) {
	m := NewAuthMiddleware(mockSvc.NewMockTokenService(t))
	guard := m.RequireRole(entity.RoleAdmin)(okHandler)

	t.Run("anonymous", func(t *testing.T) {
		c, rec := newAuthContext("")
		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("signed in without role", func(t *testing.T) {
		c, rec := newAuthContext("")
		deliverycontext.SetPrincipal(c, uuid.New(), []string{"user"})
		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusForbidden, rec.Code)
		assert.Equal(t, "FORBIDDEN", errorCode(t, rec))
	})

	t.Run("admin", func(t *testing.T) {
		c, rec := newAuthContext("")
		deliverycontext.SetPrincipal(c, uuid.New(), []string{"user", "admin"})
		require.NoError(t, guard(c))
		assert.Equal(t, http.StatusNoContent, rec.Code)
	})
}

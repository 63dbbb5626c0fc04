package middleware

import (
	"strings"

	"brewmenu/internal/delivery/api/response"
	deliverycontext "brewmenu/internal/delivery/context"
	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/domain/entity"
	"brewmenu/internal/domain/service"
	"brewmenu/internal/errors"

	"github.com/labstack/echo/v4"
)

const bearerPrefix = "Bearer "

var (
	errMissingToken  = errors.New("authorization header is missing")
	errInvalidScheme = errors.New("authorization header must be a Bearer token")
	errNotAccess     = errors.New("token is not an access token")
)

// AuthMiddleware provides middleware for JWT authentication and authorization.
type AuthMiddleware struct {
	tokenSvc service.TokenService
}

// NewAuthMiddleware is the constructor for AuthMiddleware.
func NewAuthMiddleware(tokenSvc service.TokenService) *AuthMiddleware {
	return &AuthMiddleware{tokenSvc: tokenSvc}
}

// Authenticate validates the bearer access token and stores the principal on the context.
func (m *AuthMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		claims, err := m.accessClaims(c)
		if err != nil {
			return response.HandleAppError(c, domainerrors.ErrUnauthorized.WithDetails(err.Error()))
		}

		deliverycontext.SetPrincipal(c, claims.UserID, claims.Roles)

		return next(c)
	}
}

// OptionalAuthenticate stores the principal when a valid access token is present.
// Anonymous or invalid credentials continue as a guest.
func (m *AuthMiddleware) OptionalAuthenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if claims, err := m.accessClaims(c); err == nil {
			deliverycontext.SetPrincipal(c, claims.UserID, claims.Roles)
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks if the user has a specific role.
// It must be used AFTER the Authenticate middleware.
func (m *AuthMiddleware) RequireRole(requiredRole entity.Role) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := deliverycontext.GetUserID(c); !ok {
				return response.HandleAppError(c, domainerrors.ErrUnauthorized)
			}

			if !deliverycontext.HasRole(c, requiredRole.String()) {
				return response.HandleAppError(c, domainerrors.ErrForbidden)
			}

			return next(c)
		}
	}
}

func (m *AuthMiddleware) accessClaims(c echo.Context) (*service.Claims, error) {
	authHeader := c.Request().Header.Get(echo.HeaderAuthorization)
	if authHeader == "" {
		return nil, errMissingToken
	}

	tokenString, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok || tokenString == "" {
		return nil, errInvalidScheme
	}

	claims, err := m.tokenSvc.ValidateToken(tokenString)
	if err != nil {
		return nil, errors.Wrap(err, "validate access token")
	}

	if claims.Type != service.TokenTypeAccess {
		return nil, errNotAccess
	}

	return claims, nil
}

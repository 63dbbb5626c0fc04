package middleware

import (
	"net/http"
	"time"

	deliverycontext "brewmenu/internal/delivery/context"
	"brewmenu/internal/domain/constants"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

const clientIDCookieMaxAge = 365 * 24 * time.Hour

// ClientIDMiddleware identifies anonymous storefront clients so their language choice survives reloads.
type ClientIDMiddleware struct{}

func NewClientIDMiddleware() *ClientIDMiddleware {
	return &ClientIDMiddleware{}
}

// Process takes the client ID from the X-Client-ID header or the client cookie,
// issuing a fresh cookie when neither carries a valid UUID.
func (m *ClientIDMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		clientID := validClientID(c.Request().Header.Get(constants.ClientIDHeader))

		if clientID == "" {
			if cookie, err := c.Cookie(constants.ClientIDCookie); err == nil {
				clientID = validClientID(cookie.Value)
			}
		}

		if clientID == "" {
			clientID = uuid.New().String()
			c.SetCookie(&http.Cookie{
				Name:     constants.ClientIDCookie,
				Value:    clientID,
				Path:     "/",
				MaxAge:   int(clientIDCookieMaxAge.Seconds()),
				HttpOnly: true,
				SameSite: http.SameSiteLaxMode,
			})
		}

		deliverycontext.SetClientID(c, clientID)

		return next(c)
	}
}

func validClientID(raw string) string {
	id, err := uuid.Parse(raw)
	if err != nil || id == uuid.Nil {
		return ""
	}

	return id.String()
}

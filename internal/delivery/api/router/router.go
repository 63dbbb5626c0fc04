// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"brewmenu/internal/delivery/api/middleware"
	"brewmenu/internal/delivery/api/router/handler"
	"brewmenu/internal/domain/entity"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	HealthHandler   *handler.HealthHandler
	MenuHandler     *handler.MenuHandler
	LanguageHandler *handler.LanguageHandler
	SettingsHandler *handler.SettingsHandler
	EventsHandler   *handler.EventsHandler
	AuthHandler     *handler.AuthHandler
	ProductHandler  *handler.ProductHandler
	AuthMiddleware  *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	healthHandler   *handler.HealthHandler
	menuHandler     *handler.MenuHandler
	languageHandler *handler.LanguageHandler
	settingsHandler *handler.SettingsHandler
	eventsHandler   *handler.EventsHandler
	authHandler     *handler.AuthHandler
	productHandler  *handler.ProductHandler
	authMiddleware  *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		healthHandler:   params.HealthHandler,
		menuHandler:     params.MenuHandler,
		languageHandler: params.LanguageHandler,
		settingsHandler: params.SettingsHandler,
		eventsHandler:   params.EventsHandler,
		authHandler:     params.AuthHandler,
		productHandler:  params.ProductHandler,
		authMiddleware:  params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", r.healthHandler.HealthCheck)

	// Uploaded media such as the shop logo
	e.GET("/media/*", r.settingsHandler.GetMedia)

	// Auth routes
	authGroup := e.Group("/auth")
	{
		authGroup.POST("/signup", r.authHandler.SignUp)
		authGroup.POST("/signin", r.authHandler.SignIn)
		authGroup.POST("/refresh", r.authHandler.RefreshToken)
		authGroup.POST("/signout", r.authHandler.SignOut)
		authGroup.GET("/session", r.authHandler.GetSession, r.authMiddleware.Authenticate)
	}

	// API v1 routes are public. A valid token marks admins for the edit affordance.
	apiV1 := e.Group("/api/v1")
	apiV1.Use(r.authMiddleware.OptionalAuthenticate)

	menuGroup := apiV1.Group("/menu")
	{
		menuGroup.GET("", r.menuHandler.GetMenu)
		menuGroup.POST("/retry", r.menuHandler.RetryMenu)
		menuGroup.GET("/qr", r.menuHandler.GetMenuQR)
	}

	apiV1.PUT("/preferences/language", r.languageHandler.SetLanguage)
	apiV1.GET("/i18n/:lang", r.languageHandler.GetStrings)
	apiV1.GET("/settings", r.settingsHandler.GetSettings)
	apiV1.GET("/events", r.eventsHandler.Stream)

	// Admin routes require a signed-in admin
	adminGroup := apiV1.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole(entity.RoleAdmin))
	{
		adminGroup.GET("/products", r.productHandler.ListProducts)
		adminGroup.POST("/products", r.productHandler.CreateProduct)
		adminGroup.PUT("/products/:id", r.productHandler.UpdateProduct)
		adminGroup.DELETE("/products/:id", r.productHandler.DeleteProduct)

		adminGroup.POST("/settings/logo", r.settingsHandler.UploadLogo)
		adminGroup.PUT("/settings/:key", r.settingsHandler.SetSetting)
		adminGroup.DELETE("/settings/:key", r.settingsHandler.ClearSetting)
	}
}

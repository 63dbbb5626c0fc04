package handler

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"strings"

	"brewmenu/config"
	deliverycontext "brewmenu/internal/delivery/context"
	"brewmenu/internal/domain/constants"
	"brewmenu/internal/domain/entity"
	"brewmenu/internal/domain/repository"
	"brewmenu/internal/errors"
	"brewmenu/internal/infra/pubsub"
	"brewmenu/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
	"google.golang.org/api/idtoken"
)

// tokenVerifier checks the OIDC token Pub/Sub attaches to push requests.
type tokenVerifier func(req *http.Request, audience string) error

// PushHandler refreshes this instance's menu when another instance reports a product write.
type PushHandler struct {
	verifyPushAuth bool
	audience       string
	verify         tokenVerifier
	menuUC         usecase.MenuUsecase
	logger         *slog.Logger
}

// PushHandlerParams holds dependencies for the PushHandler
type PushHandlerParams struct {
	fx.In

	Config *config.Config
	Logger *slog.Logger
	MenuUC usecase.MenuUsecase
}

// NewPushHandler creates a new Pub/Sub push handler
func NewPushHandler(params PushHandlerParams) *PushHandler {
	cfg := params.Config.PubSub

	// Push auth is only checked outside develop, and only when enabled.
	verifyPushAuth := cfg != nil &&
		cfg.VerifyPush &&
		params.Config.Env.Env != constants.EnvDevelop

	audience := ""
	if cfg != nil {
		audience = cfg.PushAudience
	}

	return newPushHandler(params.MenuUC, verifyPushAuth, audience, verifyPubSubToken, params.Logger)
}

func newPushHandler(menuUC usecase.MenuUsecase, verifyPushAuth bool, audience string, verify tokenVerifier, logger *slog.Logger) *PushHandler {
	return &PushHandler{
		verifyPushAuth: verifyPushAuth,
		audience:       audience,
		verify:         verify,
		menuUC:         menuUC,
		logger:         logger,
	}
}

// HandleMenuChanged handles a menu-changed push message.
// A failed refetch answers 503 so Pub/Sub redelivers the message.
func (h *PushHandler) HandleMenuChanged(c echo.Context) error {
	ctx := c.Request().Context()

	if h.verifyPushAuth {
		if err := h.verify(c.Request(), h.pushAudience(c.Request())); err != nil {
			h.logger.Warn("[Worker] Invalid Pub/Sub token", slog.Any("error", err))

			return c.NoContent(http.StatusUnauthorized)
		}
	}

	var pushMsg pubsub.PushMessage
	if err := c.Bind(&pushMsg); err != nil {
		h.logger.Error("[Worker] Failed to parse push message", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	event, err := pushMsg.DecodeMenuChanged()
	if err != nil {
		h.logger.Error("[Worker] Failed to decode menu change", slog.Any("error", err))

		return c.NoContent(http.StatusBadRequest)
	}

	requestID := extractRequestID(ctx, &pushMsg, event)
	reqLogger := h.logger.With(slog.String("request_id", requestID))

	ctx = deliverycontext.WithRequestID(ctx, requestID)
	ctx = deliverycontext.WithLogger(ctx, reqLogger)

	reqLogger.Info("[Worker] Processing menu change",
		slog.String("message_id", pushMsg.Message.MessageID),
		slog.String("operation", event.Operation),
		slog.String("product_id", event.ProductID),
	)

	if err := h.menuUC.Refresh(repository.WithReadPrimary(ctx)); err != nil {
		reqLogger.Error("[Worker] Failed to refresh menu", slog.Any("error", err))

		return c.NoContent(http.StatusServiceUnavailable)
	}

	reqLogger.Info("[Worker] Menu refreshed",
		slog.Int("products", len(h.menuUC.Snapshot().Products)),
	)

	return c.NoContent(http.StatusOK)
}

// pushAudience is the configured audience, or the URL of this endpoint.
func (h *PushHandler) pushAudience(req *http.Request) string {
	if h.audience != "" {
		return h.audience
	}

	scheme := "https"
	if req.TLS == nil {
		scheme = "http"
	}

	return fmt.Sprintf("%s://%s%s", scheme, req.Host, req.URL.Path)
}

// extractRequestID prefers the message attribute, then the event, then the inbound request.
func extractRequestID(ctx context.Context, pushMsg *pubsub.PushMessage, event *entity.MenuChangedEvent) string {
	if requestID := pushMsg.Message.Attributes[pubsub.AttrRequestID]; requestID != "" {
		return requestID
	}

	if event.RequestID != "" {
		return event.RequestID
	}

	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		return requestID
	}

	return uuid.New().String()
}

// verifyPubSubToken verifies the JWT token from Google Pub/Sub push requests
// Reference: https://cloud.google.com/pubsub/docs/push#authenticating_standard_push_requests
func verifyPubSubToken(req *http.Request, audience string) error {
	authHeader := req.Header.Get("Authorization")
	if authHeader == "" {
		return errors.New("missing authorization header")
	}

	const bearerPrefix = "Bearer "
	token, ok := strings.CutPrefix(authHeader, bearerPrefix)
	if !ok {
		return errors.New("invalid authorization header format")
	}

	payload, err := idtoken.Validate(req.Context(), token, audience)
	if err != nil {
		return errors.Wrap(err, "failed to validate token")
	}

	if payload.Issuer != "accounts.google.com" && payload.Issuer != "https://accounts.google.com" {
		return errors.Errorf("invalid issuer: %s", payload.Issuer)
	}

	if emailVerified, ok := payload.Claims["email_verified"].(bool); ok && !emailVerified {
		return errors.New("email not verified")
	}

	return nil
}

package handler

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	deliverycontext "brewmenu/internal/delivery/context"
	"brewmenu/internal/domain/entity"
	"brewmenu/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

const (
	defaultHeartbeatInterval = 25 * time.Second
	eventBufferSize          = 16

	eventSettings = "settings"
	eventSession  = "session"
)

type EventsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	UserUC     usecase.UserUsecase
	Logger     *slog.Logger
}

// EventsHandler streams settings changes and the caller's session changes as server-sent events.
type EventsHandler struct {
	settingsUC usecase.SettingsUsecase
	userUC     usecase.UserUsecase
	logger     *slog.Logger
	heartbeat  time.Duration
}

func NewEventsHandler(params EventsHandlerParams) *EventsHandler {
	return &EventsHandler{
		settingsUC: params.SettingsUC,
		userUC:     params.UserUC,
		logger:     params.Logger,
		heartbeat:  defaultHeartbeatInterval,
	}
}

type streamEvent struct {
	name string
	data any
}

type settingChangeResponse struct {
	Key     string `json:"key"`
	Value   string `json:"value"`
	Cleared bool   `json:"cleared"`
	At      string `json:"at"`
}

type sessionEventResponse struct {
	Type       string `json:"type"`
	UserID     string `json:"user_id"`
	IsAdmin    bool   `json:"is_admin"`
	OccurredAt string `json:"occurred_at"`
}

// Stream holds the connection open until the client goes away.
func (h *EventsHandler) Stream(c echo.Context) error {
	ctx := c.Request().Context()
	logger := deliverycontext.GetLoggerOrDefault(ctx, h.logger)

	events := make(chan streamEvent, eventBufferSize)
	enqueue := func(ev streamEvent) {
		select {
		case events <- ev:
		default:
			logger.Warn("event stream buffer full, dropping event", slog.String("event", ev.name))
		}
	}

	unsubscribeSettings := h.settingsUC.Subscribe(func(_ context.Context, change entity.SettingChange) {
		enqueue(streamEvent{name: eventSettings, data: settingChangeResponse{
			Key:     string(change.Key),
			Value:   change.Value,
			Cleared: change.Cleared,
			At:      change.At.UTC().Format(time.RFC3339),
		}})
	})
	defer unsubscribeSettings()

	if userID, ok := deliverycontext.GetUserID(c); ok {
		unsubscribeSessions := h.userUC.SubscribeSessions(func(_ context.Context, event entity.SessionEvent) {
			if event.UserID != userID {
				return
			}
			enqueue(streamEvent{name: eventSession, data: sessionEventResponse{
				Type:       string(event.Type),
				UserID:     event.UserID.String(),
				IsAdmin:    event.IsAdmin,
				OccurredAt: event.OccurredAt.UTC().Format(time.RFC3339),
			}})
		})
		defer unsubscribeSessions()
	}

	w := c.Response()
	w.Header().Set(echo.HeaderContentType, "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	w.WriteHeader(http.StatusOK)
	w.Flush()

	ticker := time.NewTicker(h.heartbeat)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-ticker.C:
			if _, err := fmt.Fprint(w, ": ping\n\n"); err != nil {
				return nil
			}
			w.Flush()
		case ev := <-events:
			data, err := json.Marshal(ev.data)
			if err != nil {
				logger.Error("failed to encode stream event", slog.String("event", ev.name), slog.Any("error", err))

				continue
			}
			if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", ev.name, data); err != nil {
				return nil
			}
			w.Flush()
		}
	}
}

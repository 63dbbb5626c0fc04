package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	deliverycontext "brewmenu/internal/delivery/context"
	"brewmenu/internal/domain/entity"
	mockUsecase "brewmenu/internal/mocks/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// cancelAfterEvents ends the request once the wanted number of events were written.
type cancelAfterEvents struct {
	*httptest.ResponseRecorder
	cancel context.CancelFunc
	want   int
	seen   int
}

func (w *cancelAfterEvents) Write(p []byte) (int, error) {
	n, err := w.ResponseRecorder.Write(p)
	if bytes.HasPrefix(p, []byte("event: ")) {
		w.seen++
		if w.seen >= w.want {
			w.cancel()
		}
	}

	return n, err
}

func TestEventsHandler_Stream(t *testing.T) {
	settingsUC := mockUsecase.NewMockSettingsUsecase(t)
	userUC := mockUsecase.NewMockUserUsecase(t)
	userID := uuid.New()
	at := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	settingsUnsubscribed := false
	sessionsUnsubscribed := false

	settingsUC.EXPECT().Subscribe(mock.Anything).RunAndReturn(func(fn func(context.Context, entity.SettingChange)) func() {
		fn(context.Background(), entity.SettingChange{Key: entity.SettingShopName, Value: "Tea Hut", At: at})

		return func() { settingsUnsubscribed = true }
	})
	userUC.EXPECT().SubscribeSessions(mock.Anything).RunAndReturn(func(fn func(context.Context, entity.SessionEvent)) func() {
		// Another user's event is not forwarded.
		fn(context.Background(), entity.SessionEvent{Type: entity.SessionSignedIn, UserID: uuid.New(), OccurredAt: at})
		fn(context.Background(), entity.SessionEvent{Type: entity.SessionSignedOut, UserID: userID, OccurredAt: at})

		return func() { sessionsUnsubscribed = true }
	})

	h := NewEventsHandler(EventsHandlerParams{SettingsUC: settingsUC, UserUC: userUC, Logger: discardLogger()})
	h.heartbeat = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil).WithContext(ctx)
	rec := &cancelAfterEvents{ResponseRecorder: httptest.NewRecorder(), cancel: cancel, want: 2}
	c := echo.New().NewContext(req, rec)
	deliverycontext.SetPrincipal(c, userID, []string{"user"})

	require.NoError(t, h.Stream(c))

	body := rec.Body.String()
	assert.Equal(t, "text/event-stream", rec.Header().Get("Content-Type"))
	assert.Contains(t, body, `event: settings`+"\n"+`data: {"key":"shop_name","value":"Tea Hut","cleared":false,"at":"2026-03-01T09:00:00Z"}`)
	assert.Contains(t, body, `event: session`)
	assert.Contains(t, body, `"type":"signed_out"`)
	assert.Equal(t, 1, strings.Count(body, "event: session"))
	assert.True(t, settingsUnsubscribed)
	assert.True(t, sessionsUnsubscribed)
}

func TestEventsHandler_Stream_AnonymousSkipsSessions(t *testing.T) {
	settingsUC := mockUsecase.NewMockSettingsUsecase(t)
	userUC := mockUsecase.NewMockUserUsecase(t)

	settingsUC.EXPECT().Subscribe(mock.Anything).RunAndReturn(func(fn func(context.Context, entity.SettingChange)) func() {
		fn(context.Background(), entity.SettingChange{Key: entity.SettingShopLogo, Value: "builtin:coffee", Cleared: true})

		return func() {}
	})

	h := NewEventsHandler(EventsHandlerParams{SettingsUC: settingsUC, UserUC: userUC, Logger: discardLogger()})
	h.heartbeat = time.Hour

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/events", nil).WithContext(ctx)
	rec := &cancelAfterEvents{ResponseRecorder: httptest.NewRecorder(), cancel: cancel, want: 1}

	require.NoError(t, h.Stream(echo.New().NewContext(req, rec)))

	assert.Contains(t, rec.Body.String(), `"cleared":true`)
}

package handler

import (
	"net/http"
	"time"

	"brewmenu/internal/delivery/api/response"
	"brewmenu/internal/usecase"
	"brewmenu/internal/util"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type HealthHandlerParams struct {
	fx.In

	MenuUC usecase.MenuUsecase
}

// HealthHandler reports liveness and the menu collection state.
type HealthHandler struct {
	menuUC    usecase.MenuUsecase
	startedAt time.Time
	now       func() time.Time
}

func NewHealthHandler(params HealthHandlerParams) *HealthHandler {
	return &HealthHandler{
		menuUC:    params.MenuUC,
		startedAt: time.Now(),
		now:       time.Now,
	}
}

type healthResponse struct {
	Status    string `json:"status"`
	Uptime    string `json:"uptime"`
	MenuState string `json:"menu_state"`
	Products  int    `json:"products"`
}

// HealthCheck answers 200 in every menu state.
func (h *HealthHandler) HealthCheck(c echo.Context) error {
	snapshot := h.menuUC.Snapshot()

	return response.Success(c, http.StatusOK, healthResponse{
		Status:    "ok",
		Uptime:    util.FormatDuration(h.now().Sub(h.startedAt)),
		MenuState: string(snapshot.State),
		Products:  len(snapshot.Products),
	})
}

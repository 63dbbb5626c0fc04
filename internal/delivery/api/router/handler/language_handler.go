package handler

import (
	"net/http"

	"brewmenu/internal/delivery/api/response"
	deliverycontext "brewmenu/internal/delivery/context"
	"brewmenu/internal/domain/i18n"
	"brewmenu/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type LanguageHandlerParams struct {
	fx.In

	LanguageUC usecase.LanguageUsecase
}

// LanguageHandler stores display language choices and serves the string tables.
type LanguageHandler struct {
	languageUC usecase.LanguageUsecase
}

func NewLanguageHandler(params LanguageHandlerParams) *LanguageHandler {
	return &LanguageHandler{languageUC: params.LanguageUC}
}

// SetLanguageRequest represents the request body for choosing a display language
type SetLanguageRequest struct {
	Language string `json:"language" validate:"required"`
}

type languageResponse struct {
	Language string `json:"language"`
}

type stringTableResponse struct {
	Language string       `json:"language"`
	Strings  i18n.Strings `json:"strings"`
}

// SetLanguage persists the caller's language. Unsupported languages are rejected with 400.
func (h *LanguageHandler) SetLanguage(c echo.Context) error {
	var req SetLanguageRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid language input")
	}

	if err := c.Validate(&req); err != nil {
		return response.HandleAppError(c, err)
	}

	lang, err := h.languageUC.Set(c.Request().Context(), deliverycontext.GetClientID(c), req.Language)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, languageResponse{Language: lang.String()})
}

// GetStrings returns the UI string table. Unsupported languages get the default table.
func (h *LanguageHandler) GetStrings(c echo.Context) error {
	lang := i18n.Resolve(c.Param("lang"))

	return response.Success(c, http.StatusOK, stringTableResponse{
		Language: lang.String(),
		Strings:  i18n.Lookup(lang),
	})
}

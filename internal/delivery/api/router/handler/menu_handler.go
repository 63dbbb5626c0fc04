package handler

import (
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"brewmenu/config"
	"brewmenu/internal/delivery/api/response"
	deliverycontext "brewmenu/internal/delivery/context"
	"brewmenu/internal/domain/entity"
	"brewmenu/internal/domain/i18n"
	"brewmenu/internal/domain/menu"
	"brewmenu/internal/domain/service"
	"brewmenu/internal/errors"
	"brewmenu/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// MenuHandlerParams holds dependencies for MenuHandler, injected by Fx.
type MenuHandlerParams struct {
	fx.In

	MenuUC     usecase.MenuUsecase
	LanguageUC usecase.LanguageUsecase
	SettingsUC usecase.SettingsUsecase
	QRCode     service.QRCodeService
	Config     *config.Config
	Logger     *slog.Logger
}

// MenuHandler serves the public storefront.
type MenuHandler struct {
	menuUC        usecase.MenuUsecase
	languageUC    usecase.LanguageUsecase
	settingsUC    usecase.SettingsUsecase
	qrCode        service.QRCodeService
	publicBaseURL string
	logger        *slog.Logger
}

func NewMenuHandler(params MenuHandlerParams) *MenuHandler {
	return &MenuHandler{
		menuUC:        params.MenuUC,
		languageUC:    params.LanguageUC,
		settingsUC:    params.SettingsUC,
		qrCode:        params.QRCode,
		publicBaseURL: params.Config.HTTP.PublicBaseURL,
		logger:        params.Logger,
	}
}

type shopResponse struct {
	Name          string `json:"name"`
	Logo          string `json:"logo"`
	LogoIsDefault bool   `json:"logo_is_default"`
}

type cardResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Description   string `json:"description"`
	Price         string `json:"price"`
	PriceText     string `json:"price_text"`
	ImageURL      string `json:"image_url,omitempty"`
	Label         string `json:"label,omitempty"`
	Badge         string `json:"badge,omitempty"`
	Category      string `json:"category"`
	CategoryLabel string `json:"category_label,omitempty"`
	Editable      bool   `json:"editable"`
}

type categoryTabResponse struct {
	Key    string `json:"key"`
	Label  string `json:"label"`
	Active bool   `json:"active"`
}

type languageOptionResponse struct {
	Code   string `json:"code"`
	Active bool   `json:"active"`
}

type menuPageResponse struct {
	State      string                   `json:"state"`
	Language   string                   `json:"language"`
	Category   string                   `json:"category"`
	Title      string                   `json:"title"`
	Subtitle   string                   `json:"subtitle"`
	Message    string                   `json:"message,omitempty"`
	CanEdit    bool                     `json:"can_edit"`
	Shop       *shopResponse            `json:"shop"`
	Categories []categoryTabResponse    `json:"categories"`
	Languages  []languageOptionResponse `json:"languages"`
	Items      []cardResponse           `json:"items"`
}

// GetMenu renders the storefront for the caller's language and the requested category.
// In the error state it answers 503 MENU_FETCH_FAILED so the client can offer a retry.
func (h *MenuHandler) GetMenu(c echo.Context) error {
	return h.renderMenu(c)
}

// RetryMenu re-issues the product fetch from the error state and renders the outcome.
func (h *MenuHandler) RetryMenu(c echo.Context) error {
	if err := h.menuUC.Retry(c.Request().Context()); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.renderMenu(c)
}

// GetMenuQR returns a PNG QR code that opens the public menu in the caller's language.
func (h *MenuHandler) GetMenuQR(c echo.Context) error {
	lang, err := h.resolveLanguage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	target := strings.TrimRight(h.publicBaseURL, "/") + "/menu?lang=" + url.QueryEscape(lang.String())

	png, err := h.qrCode.GenerateMenuQR(target)
	if err != nil {
		return errors.Wrap(err, "failed to generate menu QR code")
	}

	return c.Blob(http.StatusOK, "image/png", png)
}

func (h *MenuHandler) renderMenu(c echo.Context) error {
	ctx := c.Request().Context()

	lang, err := h.resolveLanguage(c)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	category := entity.Category(strings.ToLower(strings.TrimSpace(c.QueryParam("category"))))
	if category == "" {
		category = entity.CategoryAll
	}

	page, err := h.menuUC.Render(ctx, usecase.ViewRequest{
		Category: category,
		Language: lang,
		CanEdit:  deliverycontext.HasRole(c, entity.RoleAdmin.String()),
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	shop, err := h.settingsUC.All(ctx)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newMenuPageResponse(page, shop))
}

// resolveLanguage prefers an explicit ?lang, then the client's stored preference.
func (h *MenuHandler) resolveLanguage(c echo.Context) (entity.Language, error) {
	if raw := c.QueryParam("lang"); raw != "" {
		return i18n.Resolve(raw), nil
	}

	lang, err := h.languageUC.Get(c.Request().Context(), deliverycontext.GetClientID(c), c.Request().Header.Get("Accept-Language"))
	if err != nil {
		return "", errors.Wrap(err, "failed to resolve display language")
	}

	return lang, nil
}

func newShopResponse(shop *entity.ShopSettings) *shopResponse {
	if shop == nil {
		return nil
	}

	return &shopResponse{
		Name:          shop.Name,
		Logo:          shop.Logo,
		LogoIsDefault: shop.LogoIsDefault,
	}
}

func newMenuPageResponse(page menu.Page, shop *entity.ShopSettings) *menuPageResponse {
	resp := &menuPageResponse{
		State:      string(page.State),
		Language:   page.Language.String(),
		Category:   page.Category.String(),
		Title:      page.Title,
		Subtitle:   page.Subtitle,
		Message:    page.Message,
		CanEdit:    page.CanEdit,
		Shop:       newShopResponse(shop),
		Categories: make([]categoryTabResponse, 0, len(page.Categories)),
		Languages:  make([]languageOptionResponse, 0, len(page.Languages)),
		Items:      make([]cardResponse, 0, len(page.Cards)),
	}

	for _, tab := range page.Categories {
		resp.Categories = append(resp.Categories, categoryTabResponse{Key: tab.Key.String(), Label: tab.Label, Active: tab.Active})
	}
	for _, opt := range page.Languages {
		resp.Languages = append(resp.Languages, languageOptionResponse{Code: opt.Code.String(), Active: opt.Active})
	}
	for _, card := range page.Cards {
		resp.Items = append(resp.Items, cardResponse{
			ID:            card.ID,
			Name:          card.Name,
			Description:   card.Description,
			Price:         card.Price,
			PriceText:     card.PriceText,
			ImageURL:      card.ImageURL,
			Label:         card.Label.String(),
			Badge:         card.Badge,
			Category:      card.Category.String(),
			CategoryLabel: card.CategoryLabel,
			Editable:      card.Editable,
		})
	}

	return resp
}

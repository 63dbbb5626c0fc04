package handler

import (
	"io"
	"net/http"

	"brewmenu/config"
	"brewmenu/internal/delivery/api/response"
	"brewmenu/internal/domain/entity"
	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/errors"
	"brewmenu/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// logoFormField is the multipart field carrying the logo image.
const logoFormField = "file"

type SettingsHandlerParams struct {
	fx.In

	SettingsUC usecase.SettingsUsecase
	Config     *config.Config
}

// SettingsHandler exposes the shop name and logo.
type SettingsHandler struct {
	settingsUC   usecase.SettingsUsecase
	maxLogoBytes int64
}

func NewSettingsHandler(params SettingsHandlerParams) *SettingsHandler {
	return &SettingsHandler{
		settingsUC:   params.SettingsUC,
		maxLogoBytes: params.Config.Media.MaxLogoBytes,
	}
}

// SetSettingRequest represents the request body for updating a shop setting
type SetSettingRequest struct {
	Value string `json:"value"`
}

// GetSettings returns the effective shop settings with defaults applied.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	shop, err := h.settingsUC.All(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, newShopResponse(shop))
}

// SetSetting stores one setting. An empty value behaves like a clear.
func (h *SettingsHandler) SetSetting(c echo.Context) error {
	var req SetSettingRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid setting input")
	}

	ctx := c.Request().Context()
	if err := h.settingsUC.Set(ctx, entity.SettingKey(c.Param("key")), req.Value); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.GetSettings(c)
}

// ClearSetting removes a stored setting so its default applies again.
func (h *SettingsHandler) ClearSetting(c echo.Context) error {
	if err := h.settingsUC.Clear(c.Request().Context(), entity.SettingKey(c.Param("key"))); err != nil {
		return response.HandleAppError(c, err)
	}

	return h.GetSettings(c)
}

// UploadLogo stores a multipart image and makes it the shop logo.
func (h *SettingsHandler) UploadLogo(c echo.Context) error {
	fileHeader, err := c.FormFile(logoFormField)
	if err != nil {
		return response.HandleAppError(c, domainerrors.NewValidationError(domainerrors.FieldError{
			Field:  logoFormField,
			Reason: "is required",
		}))
	}

	src, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded logo")
	}
	defer src.Close()

	// One byte past the limit is enough for the size check.
	data, err := io.ReadAll(io.LimitReader(src, h.maxLogoBytes+1))
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded logo")
	}

	contentType := fileHeader.Header.Get(echo.HeaderContentType)
	if contentType == "" || contentType == echo.MIMEOctetStream {
		contentType = http.DetectContentType(data)
	}

	shop, err := h.settingsUC.UploadLogo(c.Request().Context(), &usecase.UploadLogoInput{
		Filename:    fileHeader.Filename,
		ContentType: contentType,
		Data:        data,
	})
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, newShopResponse(shop))
}

// GetMedia streams an uploaded file.
func (h *SettingsHandler) GetMedia(c echo.Context) error {
	obj, err := h.settingsUC.OpenMedia(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer obj.Body.Close()

	if obj.ETag != "" {
		c.Response().Header().Set("ETag", obj.ETag)
	}
	c.Response().Header().Set("Cache-Control", "public, max-age=86400")

	return c.Stream(http.StatusOK, obj.ContentType, obj.Body)
}

package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"brewmenu/config"
	"brewmenu/internal/domain/entity"
	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/domain/service"
	mockUsecase "brewmenu/internal/mocks/usecase"
	"brewmenu/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func newSettingsTestEcho(t *testing.T) (*mockUsecase.MockSettingsUsecase, *echo.Echo) {
	settingsUC := mockUsecase.NewMockSettingsUsecase(t)
	h := NewSettingsHandler(SettingsHandlerParams{
		SettingsUC: settingsUC,
		Config:     &config.Config{Media: &config.MediaConfig{MaxLogoBytes: 1024}},
	})

	e := newTestEcho()
	e.GET("/api/v1/settings", h.GetSettings)
	e.PUT("/api/v1/admin/settings/:key", h.SetSetting)
	e.DELETE("/api/v1/admin/settings/:key", h.ClearSetting)
	e.POST("/api/v1/admin/settings/logo", h.UploadLogo)
	e.GET("/media/*", h.GetMedia)

	return settingsUC, e
}

func TestSettingsHandler_GetSettings(t *testing.T) {
	settingsUC, e := newSettingsTestEcho(t)
	settingsUC.EXPECT().All(mock.Anything).Return(defaultShop(), nil)

	rec := serve(e, http.MethodGet, "/api/v1/settings", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out shopResponse
	decodeData(t, rec, &out)
	assert.Equal(t, shopResponse{Name: "Coffee Corner", Logo: "builtin:coffee", LogoIsDefault: true}, out)
}

func TestSettingsHandler_SetAndClear(t *testing.T) {
	settingsUC, e := newSettingsTestEcho(t)
	settingsUC.EXPECT().Set(mock.Anything, entity.SettingShopName, "Tea Hut").Return(nil)
	settingsUC.EXPECT().Clear(mock.Anything, entity.SettingShopName).Return(nil)
	settingsUC.EXPECT().All(mock.Anything).Return(&entity.ShopSettings{Name: "Tea Hut", Logo: "builtin:coffee", LogoIsDefault: true}, nil).Once()
	settingsUC.EXPECT().All(mock.Anything).Return(defaultShop(), nil).Once()

	rec := serve(e, http.MethodPut, "/api/v1/admin/settings/shop_name", `{"value":"Tea Hut"}`, nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	var out shopResponse
	decodeData(t, rec, &out)
	assert.Equal(t, "Tea Hut", out.Name)

	rec = serve(e, http.MethodDelete, "/api/v1/admin/settings/shop_name", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	decodeData(t, rec, &out)
	assert.Equal(t, "Coffee Corner", out.Name)
}

func TestSettingsHandler_SetUnknownKey(t *testing.T) {
	settingsUC, e := newSettingsTestEcho(t)
	settingsUC.EXPECT().Set(mock.Anything, entity.SettingKey("theme"), "dark").Return(domainerrors.NewValidationError(
		domainerrors.FieldError{Field: "key", Reason: "unknown setting theme"},
	))

	rec := serve(e, http.MethodPut, "/api/v1/admin/settings/theme", `{"value":"dark"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func multipartLogo(t *testing.T, field, filename string, data []byte) (*bytes.Buffer, string) {
	t.Helper()

	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)
	part, err := w.CreateFormFile(field, filename)
	require.NoError(t, err)
	_, err = part.Write(data)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	return body, w.FormDataContentType()
}

func TestSettingsHandler_UploadLogo(t *testing.T) {
	settingsUC, e := newSettingsTestEcho(t)
	data := append(append([]byte{}, pngHeader...), []byte("pixels")...)
	settingsUC.EXPECT().UploadLogo(mock.Anything, mock.MatchedBy(func(in *usecase.UploadLogoInput) bool {
		return in.Filename == "logo.png" && in.ContentType == "image/png" && bytes.Equal(in.Data, data)
	})).Return(&entity.ShopSettings{Name: "Coffee Corner", Logo: "/media/logos/abc.png"}, nil)

	body, contentType := multipartLogo(t, "file", "logo.png", data)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/settings/logo", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	var out shopResponse
	decodeData(t, rec, &out)
	assert.Equal(t, "/media/logos/abc.png", out.Logo)
	assert.False(t, out.LogoIsDefault)
}

func TestSettingsHandler_UploadLogo_MissingFile(t *testing.T) {
	_, e := newSettingsTestEcho(t)

	body, contentType := multipartLogo(t, "image", "logo.png", pngHeader)
	req := httptest.NewRequest(http.MethodPost, "/api/v1/admin/settings/logo", body)
	req.Header.Set(echo.HeaderContentType, contentType)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[{"field":"file","reason":"is required"}]`, string(decodeError(t, rec).Error.Details))
}

func TestSettingsHandler_GetMedia(t *testing.T) {
	settingsUC, e := newSettingsTestEcho(t)
	settingsUC.EXPECT().OpenMedia(mock.Anything, "logos/abc.png").Return(&service.MediaObject{
		Body:        io.NopCloser(strings.NewReader("image-bytes")),
		ContentType: "image/png",
		ETag:        `"etag-1"`,
	}, nil)
	settingsUC.EXPECT().OpenMedia(mock.Anything, "logos/missing.png").Return(nil, domainerrors.ErrMediaNotFound)

	rec := serve(e, http.MethodGet, "/media/logos/abc.png", "", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, `"etag-1"`, rec.Header().Get("ETag"))
	assert.Equal(t, "image-bytes", rec.Body.String())

	rec = serve(e, http.MethodGet, "/media/logos/missing.png", "", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "MEDIA_NOT_FOUND", decodeError(t, rec).Error.Code)
}

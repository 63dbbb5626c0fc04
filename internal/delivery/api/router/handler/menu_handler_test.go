package handler

import (
	"context"
	"net/http"
	"testing"

	"brewmenu/config"
	"brewmenu/internal/domain/entity"
	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/domain/menu"
	"brewmenu/internal/errors"
	mockSvc "brewmenu/internal/mocks/service"
	mockUsecase "brewmenu/internal/mocks/usecase"
	"brewmenu/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type menuHandlerFixtures struct {
	menuUC     *mockUsecase.MockMenuUsecase
	languageUC *mockUsecase.MockLanguageUsecase
	settingsUC *mockUsecase.MockSettingsUsecase
	qrCode     *mockSvc.MockQRCodeService
	handler    *MenuHandler
}

func newMenuHandlerFixtures(t *testing.T) *menuHandlerFixtures {
	f := &menuHandlerFixtures{
		menuUC:     mockUsecase.NewMockMenuUsecase(t),
		languageUC: mockUsecase.NewMockLanguageUsecase(t),
		settingsUC: mockUsecase.NewMockSettingsUsecase(t),
		qrCode:     mockSvc.NewMockQRCodeService(t),
	}
	f.handler = NewMenuHandler(MenuHandlerParams{
		MenuUC:     f.menuUC,
		LanguageUC: f.languageUC,
		SettingsUC: f.settingsUC,
		QRCode:     f.qrCode,
		Config:     &config.Config{HTTP: config.HTTPConfig{PublicBaseURL: "https://menu.example.com/"}},
		Logger:     discardLogger(),
	})

	return f
}

func sampleProducts() []*entity.Product {
	return []*entity.Product{
		{
			ID:            uuid.MustParse("11111111-1111-1111-1111-111111111111"),
			Name:          "Espresso",
			Description:   "Rich and bold",
			NameOverrides: map[entity.Language]string{entity.LanguageVietnamese: "Cà phê Espresso"},
			Price:         decimal.RequireFromString("3"),
			Label:         entity.LabelPopular,
			Category:      entity.CategoryCoffee,
		},
		{
			ID:       uuid.MustParse("22222222-2222-2222-2222-222222222222"),
			Name:     "Green Tea",
			Price:    decimal.RequireFromString("2.5"),
			Category: entity.CategoryTea,
		},
	}
}

func defaultShop() *entity.ShopSettings {
	return &entity.ShopSettings{Name: "Coffee Corner", Logo: "builtin:coffee", LogoIsDefault: true}
}

func TestMenuHandler_GetMenu_UsesStoredLanguage(t *testing.T) {
	f := newMenuHandlerFixtures(t)
	f.languageUC.EXPECT().Get(mock.Anything, testClientID, "vi-VN,vi;q=0.9").Return(entity.LanguageVietnamese, nil)
	f.menuUC.EXPECT().Render(mock.Anything, usecase.ViewRequest{
		Category: entity.CategoryCoffee,
		Language: entity.LanguageVietnamese,
	}).RunAndReturn(func(_ context.Context, req usecase.ViewRequest) (menu.Page, error) {
		return menu.BuildPage(sampleProducts(), menu.PageOptions{
			State:          menu.StateReady,
			Category:       req.Category,
			Language:       req.Language,
			CurrencySymbol: "$",
		}), nil
	})
	f.settingsUC.EXPECT().All(mock.Anything).Return(defaultShop(), nil)

	e := newTestEcho()
	e.GET("/api/v1/menu", f.handler.GetMenu)

	rec := serve(e, http.MethodGet, "/api/v1/menu?category=coffee", "", map[string]string{"Accept-Language": "vi-VN,vi;q=0.9"})

	assert.Equal(t, http.StatusOK, rec.Code)
	var page menuPageResponse
	decodeData(t, rec, &page)
	assert.Equal(t, "ready", page.State)
	assert.Equal(t, "vi", page.Language)
	assert.Equal(t, "coffee", page.Category)
	assert.False(t, page.CanEdit)
	assert.Equal(t, "Coffee Corner", page.Shop.Name)
	if assert.Len(t, page.Items, 1) {
		assert.Equal(t, "Cà phê Espresso", page.Items[0].Name)
		assert.Equal(t, "3.00", page.Items[0].Price)
		assert.False(t, page.Items[0].Editable)
	}
}

func TestMenuHandler_GetMenu_ExplicitLanguageAndAdmin(t *testing.T) {
	f := newMenuHandlerFixtures(t)
	f.menuUC.EXPECT().Render(mock.Anything, usecase.ViewRequest{
		Category: entity.CategoryAll,
		Language: entity.LanguageChinese,
		CanEdit:  true,
	}).Return(menu.Page{State: menu.StateReady, Language: entity.LanguageChinese, Category: entity.CategoryAll, CanEdit: true}, nil)
	f.settingsUC.EXPECT().All(mock.Anything).Return(defaultShop(), nil)

	e := newTestEcho()
	e.GET("/api/v1/menu", f.handler.GetMenu, signedIn(uuid.New(), "user", "admin"))

	rec := serve(e, http.MethodGet, "/api/v1/menu?lang=zh-CN", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var page menuPageResponse
	decodeData(t, rec, &page)
	assert.True(t, page.CanEdit)
	assert.Equal(t, "zh", page.Language)
	assert.Empty(t, page.Items)
}

func TestMenuHandler_GetMenu_ErrorState(t *testing.T) {
	f := newMenuHandlerFixtures(t)
	f.menuUC.EXPECT().Render(mock.Anything, mock.Anything).
		Return(menu.Page{State: menu.StateError}, domainerrors.NewFetchError(errors.New("deadline exceeded"), true))

	e := newTestEcho()
	e.GET("/api/v1/menu", f.handler.GetMenu)

	rec := serve(e, http.MethodGet, "/api/v1/menu?lang=en", "", nil)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	env := decodeError(t, rec)
	assert.Equal(t, "MENU_FETCH_FAILED", env.Error.Code)
	assert.JSONEq(t, `"timeout"`, string(env.Error.Details))
}

func TestMenuHandler_RetryMenu(t *testing.T) {
	t.Run("not in error state", func(t *testing.T) {
		f := newMenuHandlerFixtures(t)
		f.menuUC.EXPECT().Retry(mock.Anything).Return(domainerrors.ErrRetryNotAllowed.WithDetails("current state: ready"))

		e := newTestEcho()
		e.POST("/api/v1/menu/retry", f.handler.RetryMenu)

		rec := serve(e, http.MethodPost, "/api/v1/menu/retry?lang=en", "", nil)

		assert.Equal(t, http.StatusConflict, rec.Code)
		assert.Equal(t, "RETRY_NOT_ALLOWED", decodeError(t, rec).Error.Code)
	})

	t.Run("recovers", func(t *testing.T) {
		f := newMenuHandlerFixtures(t)
		f.menuUC.EXPECT().Retry(mock.Anything).Return(nil)
		f.menuUC.EXPECT().Render(mock.Anything, mock.Anything).
			Return(menu.BuildPage(sampleProducts(), menu.PageOptions{State: menu.StateReady, Language: entity.LanguageEnglish}), nil)
		f.settingsUC.EXPECT().All(mock.Anything).Return(defaultShop(), nil)

		e := newTestEcho()
		e.POST("/api/v1/menu/retry", f.handler.RetryMenu)

		rec := serve(e, http.MethodPost, "/api/v1/menu/retry?lang=en", "", nil)

		assert.Equal(t, http.StatusOK, rec.Code)
		var page menuPageResponse
		decodeData(t, rec, &page)
		assert.Len(t, page.Items, 2)
	})
}

func TestMenuHandler_GetMenuQR(t *testing.T) {
	f := newMenuHandlerFixtures(t)
	png := []byte{0x89, 'P', 'N', 'G'}
	f.qrCode.EXPECT().GenerateMenuQR("https://menu.example.com/menu?lang=vi").Return(png, nil)

	e := newTestEcho()
	e.GET("/api/v1/menu/qr", f.handler.GetMenuQR)

	rec := serve(e, http.MethodGet, "/api/v1/menu/qr?lang=vi", "", nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.Equal(t, png, rec.Body.Bytes())
}

package handler

import (
	"net/http"
	"testing"

	"brewmenu/internal/domain/entity"
	domainerrors "brewmenu/internal/domain/errors"
	mockUsecase "brewmenu/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func newLanguageTestEcho(t *testing.T) (*mockUsecase.MockLanguageUsecase, *echo.Echo) {
	languageUC := mockUsecase.NewMockLanguageUsecase(t)
	h := NewLanguageHandler(LanguageHandlerParams{LanguageUC: languageUC})

	e := newTestEcho()
	e.PUT("/api/v1/preferences/language", h.SetLanguage)
	e.GET("/api/v1/i18n/:lang", h.GetStrings)

	return languageUC, e
}

func TestLanguageHandler_SetLanguage(t *testing.T) {
	languageUC, e := newLanguageTestEcho(t)
	languageUC.EXPECT().Set(mock.Anything, testClientID, "vi").Return(entity.LanguageVietnamese, nil)

	rec := serve(e, http.MethodPut, "/api/v1/preferences/language", `{"language":"vi"}`, nil)

	assert.Equal(t, http.StatusOK, rec.Code)
	var out languageResponse
	decodeData(t, rec, &out)
	assert.Equal(t, "vi", out.Language)
}

func TestLanguageHandler_SetLanguage_Unsupported(t *testing.T) {
	languageUC, e := newLanguageTestEcho(t)
	languageUC.EXPECT().Set(mock.Anything, testClientID, "fr").Return("", domainerrors.NewValidationError(
		domainerrors.FieldError{Field: "language", Reason: "unsupported language fr"},
	))

	rec := serve(e, http.MethodPut, "/api/v1/preferences/language", `{"language":"fr"}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	env := decodeError(t, rec)
	assert.Equal(t, "VALIDATION_FAILED", env.Error.Code)
	assert.JSONEq(t, `[{"field":"language","reason":"unsupported language fr"}]`, string(env.Error.Details))
}

func TestLanguageHandler_SetLanguage_Missing(t *testing.T) {
	_, e := newLanguageTestEcho(t)

	rec := serve(e, http.MethodPut, "/api/v1/preferences/language", `{}`, nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.JSONEq(t, `[{"field":"language","reason":"is required"}]`, string(decodeError(t, rec).Error.Details))
}

func TestLanguageHandler_GetStrings(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{path: "/api/v1/i18n/vi", want: "vi"},
		{path: "/api/v1/i18n/zh", want: "zh"},
		{path: "/api/v1/i18n/fr", want: "en"},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			_, e := newLanguageTestEcho(t)

			rec := serve(e, http.MethodGet, tt.path, "", nil)

			assert.Equal(t, http.StatusOK, rec.Code)
			var out struct {
				Language string         `json:"language"`
				Strings  map[string]any `json:"strings"`
			}
			decodeData(t, rec, &out)
			assert.Equal(t, tt.want, out.Language)
			assert.NotEmpty(t, out.Strings["menuTitle"])
		})
	}
}

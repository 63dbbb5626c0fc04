package impl

import (
	"context"
	"log/slog"

	"brewmenu/config"
	"brewmenu/internal/domain/constants"
	"brewmenu/internal/domain/entity"
	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/domain/i18n"
	"brewmenu/internal/domain/repository"
	"brewmenu/internal/errors"
	"brewmenu/internal/usecase"

	"go.uber.org/fx"
)

type languageService struct {
	kv       repository.KeyValueStore
	fallback entity.Language
	logger   *slog.Logger
}

// LanguageServiceParams holds dependencies for the language service, injected by Fx.
type LanguageServiceParams struct {
	fx.In

	KV     repository.KeyValueStore
	Config *config.Config
	Logger *slog.Logger
}

func NewLanguageService(params LanguageServiceParams) usecase.LanguageUsecase {
	return newLanguageService(params.KV, params.Config.Menu.DefaultLanguage, params.Logger)
}

func newLanguageService(kv repository.KeyValueStore, defaultLanguage string, logger *slog.Logger) *languageService {
	fallback, ok := i18n.Parse(defaultLanguage)
	if !ok {
		fallback = i18n.DefaultLanguage
	}

	return &languageService{kv: kv, fallback: fallback, logger: logger}
}

func (s *languageService) Get(ctx context.Context, clientID, acceptLanguage string) (entity.Language, error) {
	if clientID != "" {
		stored, ok, err := s.kv.Get(ctx, constants.KVLanguagePrefix+clientID)
		if err != nil {
			return "", errors.Wrap(err, "failed to read language preference")
		}
		// A stale or hand-edited value is ignored rather than reported.
		if lang := entity.Language(stored); ok && lang.IsSupported() {
			return lang, nil
		}
	}

	if lang, ok := i18n.FromAcceptLanguage(acceptLanguage); ok {
		return lang, nil
	}

	return s.fallback, nil
}

func (s *languageService) Set(ctx context.Context, clientID, raw string) (entity.Language, error) {
	validation := domainerrors.NewValidationError()
	if clientID == "" {
		validation.Add("client_id", "is required")
	}
	lang, ok := i18n.Parse(raw)
	if !ok {
		validation.Add("language", "unsupported language "+raw)
	}
	if validation.HasErrors() {
		return "", validation
	}

	if err := s.kv.Set(ctx, constants.KVLanguagePrefix+clientID, string(lang)); err != nil {
		return "", errors.Wrap(err, "failed to store language preference")
	}

	return lang, nil
}

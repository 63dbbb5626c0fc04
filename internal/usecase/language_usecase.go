package usecase

import (
	"context"

	"brewmenu/internal/domain/entity"
)

// LanguageUsecase persists each client's display language.
type LanguageUsecase interface {
	// Get returns the stored preference, else the Accept-Language match, else the default language.
	Get(ctx context.Context, clientID, acceptLanguage string) (entity.Language, error)

	// Set stores the preference. Unsupported languages are a ValidationError.
	Set(ctx context.Context, clientID, lang string) (entity.Language, error)
}

package usecase

import (
	"context"

	"brewmenu/internal/domain/entity"
	"brewmenu/internal/domain/service"
)

// MediaURLPrefix prefixes logo references that point at uploaded media.
const MediaURLPrefix = "/media/"

// UploadLogoInput is an uploaded logo image.
type UploadLogoInput struct {
	Filename    string
	ContentType string
	Data        []byte
}

// SettingsUsecase stores the shop name and logo with built-in defaults.
type SettingsUsecase interface {
	// Get returns the stored value, or the default when the value is absent or empty.
	Get(ctx context.Context, key entity.SettingKey) (string, error)
	Set(ctx context.Context, key entity.SettingKey, value string) error
	Clear(ctx context.Context, key entity.SettingKey) error
	All(ctx context.Context) (*entity.ShopSettings, error)

	// UploadLogo stores the image and points shop_logo at it.
	UploadLogo(ctx context.Context, input *UploadLogoInput) (*entity.ShopSettings, error)
	OpenMedia(ctx context.Context, key string) (*service.MediaObject, error)

	// Subscribe observes every Set and Clear. The returned function stops the subscription.
	Subscribe(fn func(ctx context.Context, change entity.SettingChange)) (unsubscribe func())
}

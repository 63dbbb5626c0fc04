package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"brewmenu/config"
	deliverycontext "brewmenu/internal/delivery/context"
	"brewmenu/internal/domain/constants"
	"brewmenu/internal/domain/entity"
	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/domain/repository"
	"brewmenu/internal/domain/service"
	"brewmenu/internal/errors"
	"brewmenu/internal/eventbus"
	"brewmenu/internal/usecase"
	"brewmenu/internal/util"

	"go.uber.org/fx"
)

const logoDir = "logos"

// settingsService implements usecase.SettingsUsecase on the injected key-value store.
type settingsService struct {
	kv           repository.KeyValueStore
	media        service.MediaStore
	defaults     map[entity.SettingKey]string
	maxLogoBytes int64
	bus          *eventbus.Bus[entity.SettingChange]
	logger       *slog.Logger
	now          func() time.Time
}

// SettingsServiceParams holds dependencies for the settings service, injected by Fx.
type SettingsServiceParams struct {
	fx.In

	KV     repository.KeyValueStore
	Media  service.MediaStore
	Config *config.Config
	Logger *slog.Logger
}

func NewSettingsService(params SettingsServiceParams) usecase.SettingsUsecase {
	return newSettingsService(params.KV, params.Media, params.Config.Shop, params.Config.Media.MaxLogoBytes, params.Logger)
}

func newSettingsService(
	kv repository.KeyValueStore,
	media service.MediaStore,
	shop *config.ShopConfig,
	maxLogoBytes int64,
	logger *slog.Logger,
) *settingsService {
	return &settingsService{
		kv:    kv,
		media: media,
		defaults: map[entity.SettingKey]string{
			entity.SettingShopName: shop.DefaultName,
			entity.SettingShopLogo: shop.DefaultLogo,
		},
		maxLogoBytes: maxLogoBytes,
		bus:          eventbus.New[entity.SettingChange]("settings", logger),
		logger:       logger,
		now:          time.Now,
	}
}

func (s *settingsService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, s.logger)
}

func settingKey(key entity.SettingKey) string {
	return constants.KVSettingPrefix + string(key)
}

func unknownSettingError(key entity.SettingKey) error {
	return domainerrors.NewValidationError(domainerrors.FieldError{Field: "key", Reason: "unknown setting " + string(key)})
}

func (s *settingsService) Get(ctx context.Context, key entity.SettingKey) (string, error) {
	if !key.IsValid() {
		return "", unknownSettingError(key)
	}

	value, _, err := s.stored(ctx, key)
	if err != nil {
		return "", err
	}
	if value == "" {
		return s.defaults[key], nil
	}

	return value, nil
}

// stored returns the raw stored value and whether a non-empty override exists.
func (s *settingsService) stored(ctx context.Context, key entity.SettingKey) (string, bool, error) {
	value, ok, err := s.kv.Get(ctx, settingKey(key))
	if err != nil {
		return "", false, errors.Wrapf(err, "failed to read setting %s", key)
	}
	if !ok {
		return "", false, nil
	}

	return value, value != "", nil
}

func (s *settingsService) Set(ctx context.Context, key entity.SettingKey, value string) error {
	if !key.IsValid() {
		return unknownSettingError(key)
	}

	previous, _, err := s.stored(ctx, key)
	if err != nil {
		return err
	}

	if err := s.kv.Set(ctx, settingKey(key), value); err != nil {
		return errors.Wrapf(err, "failed to write setting %s", key)
	}
	if key == entity.SettingShopLogo && previous != value {
		s.removeUploadedLogo(ctx, previous)
	}

	effective := value
	if effective == "" {
		effective = s.defaults[key]
	}
	s.publish(ctx, entity.SettingChange{Key: key, Value: effective})

	return nil
}

func (s *settingsService) Clear(ctx context.Context, key entity.SettingKey) error {
	if !key.IsValid() {
		return unknownSettingError(key)
	}

	previous, _, err := s.stored(ctx, key)
	if err != nil {
		return err
	}

	if err := s.kv.Remove(ctx, settingKey(key)); err != nil {
		return errors.Wrapf(err, "failed to clear setting %s", key)
	}
	if key == entity.SettingShopLogo {
		s.removeUploadedLogo(ctx, previous)
	}

	s.publish(ctx, entity.SettingChange{Key: key, Value: s.defaults[key], Cleared: true})

	return nil
}

func (s *settingsService) All(ctx context.Context) (*entity.ShopSettings, error) {
	name, err := s.Get(ctx, entity.SettingShopName)
	if err != nil {
		return nil, err
	}

	logo, hasLogo, err := s.stored(ctx, entity.SettingShopLogo)
	if err != nil {
		return nil, err
	}
	if !hasLogo {
		logo = s.defaults[entity.SettingShopLogo]
	}

	return &entity.ShopSettings{Name: name, Logo: logo, LogoIsDefault: !hasLogo}, nil
}

func (s *settingsService) UploadLogo(ctx context.Context, input *usecase.UploadLogoInput) (*entity.ShopSettings, error) {
	if len(input.Data) == 0 {
		return nil, domainerrors.NewValidationError(domainerrors.FieldError{Field: "file", Reason: "is empty"})
	}
	if s.maxLogoBytes > 0 && int64(len(input.Data)) > s.maxLogoBytes {
		return nil, domainerrors.ErrMediaTooLarge.WithDetails("limit is " + util.FormatBytes(s.maxLogoBytes))
	}

	key, err := s.media.Put(ctx, logoDir, input.ContentType, input.Data)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store logo")
	}
	s.log(ctx).Info("logo uploaded",
		slog.String("key", key),
		slog.String("filename", input.Filename),
		slog.Int("bytes", len(input.Data)),
	)

	if err := s.Set(ctx, entity.SettingShopLogo, usecase.MediaURLPrefix+key); err != nil {
		return nil, err
	}

	return s.All(ctx)
}

func (s *settingsService) OpenMedia(ctx context.Context, key string) (*service.MediaObject, error) {
	key = strings.TrimPrefix(key, "/")
	if key == "" || strings.Contains(key, "..") {
		return nil, domainerrors.ErrMediaNotFound
	}

	return s.media.Open(ctx, key)
}

func (s *settingsService) Subscribe(fn func(ctx context.Context, change entity.SettingChange)) func() {
	return s.bus.Subscribe(fn)
}

func (s *settingsService) publish(ctx context.Context, change entity.SettingChange) {
	change.At = s.now().UTC()
	s.bus.Publish(ctx, change)
}

// removeUploadedLogo deletes a replaced logo if it was uploaded here. Failures only leave an orphan blob.
func (s *settingsService) removeUploadedLogo(ctx context.Context, ref string) {
	key, ok := strings.CutPrefix(ref, usecase.MediaURLPrefix)
	if !ok || key == "" {
		return
	}

	if err := s.media.Delete(ctx, key); err != nil {
		s.log(ctx).Warn("failed to delete replaced logo", slog.String("key", key), slog.Any("error", err))
	}
}

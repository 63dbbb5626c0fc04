package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	deliverycontext "brewmenu/internal/delivery/context"
	"brewmenu/internal/domain/entity"
	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/domain/repository"
	"brewmenu/internal/domain/service"
	"brewmenu/internal/errors"
	"brewmenu/internal/usecase"

	"github.com/google/uuid"
	"go.uber.org/fx"
)

// productService implements usecase.ProductUsecase, the admin editor.
// It never touches the menu collection directly; a successful write triggers a refetch.
type productService struct {
	repo      repository.ProductRepository
	menu      usecase.MenuUsecase
	publisher service.EventPublisher
	logger    *slog.Logger
	now       func() time.Time
}

// ProductServiceParams holds dependencies for the product service, injected by Fx.
type ProductServiceParams struct {
	fx.In

	ProductRepo repository.ProductRepository
	Menu        usecase.MenuUsecase
	Publisher   service.EventPublisher
	Logger      *slog.Logger
}

func NewProductService(params ProductServiceParams) usecase.ProductUsecase {
	return &productService{
		repo:      params.ProductRepo,
		menu:      params.Menu,
		publisher: params.Publisher,
		logger:    params.Logger,
		now:       time.Now,
	}
}

func (srv *productService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

func (srv *productService) List(ctx context.Context) ([]*entity.Product, error) {
	products, err := srv.repo.List(repository.WithReadPrimary(ctx))
	if err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	return products, nil
}

func (srv *productService) Get(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	product, err := srv.repo.FindByID(repository.WithReadPrimary(ctx), id)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product")
	}

	return product, nil
}

func (srv *productService) Create(ctx context.Context, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := buildProduct(uuid.Nil, input)
	if err := srv.repo.Create(ctx, product); err != nil {
		return nil, srv.writeError(ctx, entity.MenuOpCreate, err)
	}

	srv.afterWrite(ctx, entity.MenuOpCreate, product.ID)

	return product, nil
}

func (srv *productService) Update(ctx context.Context, id uuid.UUID, input *usecase.ProductInput) (*entity.Product, error) {
	if err := validateProductInput(input); err != nil {
		return nil, err
	}

	product := buildProduct(id, input)
	if err := srv.repo.Update(ctx, product); err != nil {
		return nil, srv.writeError(ctx, entity.MenuOpUpdate, err)
	}

	srv.afterWrite(ctx, entity.MenuOpUpdate, id)

	return product, nil
}

func (srv *productService) Delete(ctx context.Context, id uuid.UUID) error {
	if err := srv.repo.Delete(ctx, id); err != nil {
		return srv.writeError(ctx, entity.MenuOpDelete, err)
	}

	srv.afterWrite(ctx, entity.MenuOpDelete, id)

	return nil
}

// writeError maps store rejections to RemoteWriteError. Nothing is refetched.
func (srv *productService) writeError(ctx context.Context, op string, err error) error {
	if errors.Is(err, repository.ErrProductNotFound) {
		return domainerrors.ErrProductNotFound
	}

	srv.log(ctx).Warn("product write rejected", slog.String("operation", op), slog.Any("error", err))

	if storeErr, ok := errors.AsType[*repository.StoreError](err); ok {
		return domainerrors.NewRemoteWriteError(op, storeErr, storeErr.Code, storeErr.Hint)
	}

	return domainerrors.NewRemoteWriteError(op, err, "", "")
}

// afterWrite refetches the menu from the primary and fans the change out.
// The write already succeeded, so failures here are logged and not returned.
func (srv *productService) afterWrite(ctx context.Context, op string, id uuid.UUID) {
	if err := srv.menu.Refresh(repository.WithReadPrimary(ctx)); err != nil {
		srv.log(ctx).Warn("menu refetch after write failed", slog.String("operation", op), slog.Any("error", err))
	}

	event := &entity.MenuChangedEvent{
		RequestID: deliverycontext.GetRequestIDFromContext(ctx),
		ProductID: id.String(),
		Operation: op,
		ChangedAt: srv.now().UTC(),
	}
	if err := srv.publisher.PublishMenuChanged(ctx, event); err != nil {
		srv.log(ctx).Warn("failed to publish menu change", slog.String("operation", op), slog.Any("error", err))
	}
}

func validateProductInput(input *usecase.ProductInput) error {
	validation := domainerrors.NewValidationError()
	if input == nil {
		validation.Add("product", "is required")

		return validation
	}

	if strings.TrimSpace(input.Name) == "" {
		validation.Add("name", "is required")
	}
	if !input.Price.IsPositive() {
		validation.Add("price", "must be greater than 0")
	}
	if !input.Category.IsValid() {
		validation.Add("category", "must be one of coffee, tea, smoothie, other")
	}
	if !input.Label.IsValid() {
		validation.Add("label", "must be empty or one of new, popular, bestseller")
	}
	validateOverrides(validation, "name_overrides", input.NameOverrides)
	validateOverrides(validation, "description_overrides", input.DescriptionOverrides)

	if validation.HasErrors() {
		return validation
	}

	return nil
}

func validateOverrides(validation *domainerrors.ValidationError, field string, overrides map[entity.Language]string) {
	for lang := range overrides {
		if !lang.IsSupported() || lang == entity.CanonicalLanguage {
			validation.Add(field+"."+string(lang), "unsupported override language")
		}
	}
}

func buildProduct(id uuid.UUID, input *usecase.ProductInput) *entity.Product {
	return &entity.Product{
		ID:                   id,
		Name:                 strings.TrimSpace(input.Name),
		Description:          strings.TrimSpace(input.Description),
		NameOverrides:        compactOverrides(input.NameOverrides),
		DescriptionOverrides: compactOverrides(input.DescriptionOverrides),
		Price:                input.Price,
		ImageURL:             strings.TrimSpace(input.ImageURL),
		Label:                input.Label,
		Category:             input.Category,
	}
}

// compactOverrides drops blank overrides; they would resolve to the canonical text anyway.
func compactOverrides(overrides map[entity.Language]string) map[entity.Language]string {
	out := make(map[entity.Language]string, len(overrides))
	for lang, v := range overrides {
		if v = strings.TrimSpace(v); v != "" {
			out[lang] = v
		}
	}
	if len(out) == 0 {
		return nil
	}

	return out
}

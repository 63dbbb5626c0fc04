package usecase

import (
	"context"

	"brewmenu/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ProductInput is the full editable state of a product. Updates replace every field.
type ProductInput struct {
	Name                 string
	Description          string
	NameOverrides        map[entity.Language]string
	DescriptionOverrides map[entity.Language]string
	Price                decimal.Decimal
	ImageURL             string
	Label                entity.Label
	Category             entity.Category
}

// ProductUsecase is the admin editor. Every write validates first and refreshes the menu on success.
type ProductUsecase interface {
	List(ctx context.Context) ([]*entity.Product, error)
	Get(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	Create(ctx context.Context, input *ProductInput) (*entity.Product, error)
	Update(ctx context.Context, id uuid.UUID, input *ProductInput) (*entity.Product, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

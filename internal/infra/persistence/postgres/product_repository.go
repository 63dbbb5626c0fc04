package postgres

import (
	"context"

	"brewmenu/internal/domain/entity"
	"brewmenu/internal/domain/repository"
	"brewmenu/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/plugin/dbresolver"
)

// productRepository implements repository.ProductRepository on the products table.
type productRepository struct {
	db *gorm.DB
}

func NewProductRepository(db *gorm.DB) repository.ProductRepository {
	return &productRepository{db: db}
}

func (repo *productRepository) reader(ctx context.Context) *gorm.DB {
	db := repo.db.WithContext(ctx)
	if repository.ReadPrimary(ctx) {
		db = db.Clauses(dbresolver.Write)
	}

	return db
}

// List returns all products newest first. Ties on created_at break by id for a stable order.
func (repo *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	var rows []*model.ProductModel
	if err := repo.reader(ctx).Order("created_at DESC").Order("id DESC").Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to list products")
	}

	products := make([]*entity.Product, 0, len(rows))
	for _, row := range rows {
		products = append(products, toProductDomain(row))
	}

	return products, nil
}

func (repo *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	var row model.ProductModel
	if err := repo.reader(ctx).Where("id = ?", id).First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrProductNotFound
		}

		return nil, errors.Wrap(err, "failed to find product by id")
	}

	return toProductDomain(&row), nil
}

func (repo *productRepository) Create(ctx context.Context, product *entity.Product) error {
	row := fromProductDomain(product)
	row.ID = uuid.Nil

	if err := repo.db.WithContext(ctx).Create(row).Error; err != nil {
		code, hint := classifyWriteError(err)

		return repository.NewStoreError(err, code, hint)
	}

	product.ID = row.ID
	product.CreatedAt = row.CreatedAt
	product.UpdatedAt = row.UpdatedAt

	return nil
}

// Update replaces every column except id and created_at, then copies the stored timestamps onto product.
func (repo *productRepository) Update(ctx context.Context, product *entity.Product) error {
	row := fromProductDomain(product)

	result := repo.db.WithContext(ctx).
		Model(&model.ProductModel{}).
		Where("id = ?", product.ID).
		Select("*").
		Omit("id", "created_at").
		Updates(row)
	if result.Error != nil {
		code, hint := classifyWriteError(result.Error)

		return repository.NewStoreError(result.Error, code, hint)
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	var stored model.ProductModel
	if err := repo.db.WithContext(ctx).Clauses(dbresolver.Write).Where("id = ?", product.ID).First(&stored).Error; err != nil {
		return errors.Wrap(err, "failed to reload updated product")
	}
	product.CreatedAt = stored.CreatedAt
	product.UpdatedAt = stored.UpdatedAt

	return nil
}

func (repo *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := repo.db.WithContext(ctx).Where("id = ?", id).Delete(&model.ProductModel{})
	if result.Error != nil {
		code, hint := classifyWriteError(result.Error)

		return repository.NewStoreError(result.Error, code, hint)
	}
	if result.RowsAffected == 0 {
		return repository.ErrProductNotFound
	}

	return nil
}

// --- Mapper Functions ---

func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	p := &entity.Product{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		ImageURL:    data.Image,
		Category:    entity.Category(data.Category),
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
	if data.Label != nil {
		p.Label = entity.Label(*data.Label)
	}

	p.NameOverrides = overridesFromColumns(data.NameZh, data.NameVi)
	p.DescriptionOverrides = overridesFromColumns(data.DescriptionZh, data.DescriptionVi)

	return p
}

func fromProductDomain(data *entity.Product) *model.ProductModel {
	if data == nil {
		return nil
	}

	m := &model.ProductModel{
		ID:          data.ID,
		Name:        data.Name,
		Description: data.Description,
		Price:       data.Price,
		Image:       data.ImageURL,
		Category:    string(data.Category),
		CreatedAt:   data.CreatedAt,
	}
	if data.Label != entity.LabelNone {
		label := string(data.Label)
		m.Label = &label
	}

	m.NameZh = overrideColumn(data.NameOverrides, entity.LanguageChinese)
	m.NameVi = overrideColumn(data.NameOverrides, entity.LanguageVietnamese)
	m.DescriptionZh = overrideColumn(data.DescriptionOverrides, entity.LanguageChinese)
	m.DescriptionVi = overrideColumn(data.DescriptionOverrides, entity.LanguageVietnamese)

	return m
}

func overrideColumn(overrides map[entity.Language]string, lang entity.Language) *string {
	v, ok := overrides[lang]
	if !ok {
		return nil
	}

	return &v
}

func overridesFromColumns(zh, vi *string) map[entity.Language]string {
	if zh == nil && vi == nil {
		return nil
	}

	out := make(map[entity.Language]string, 2)
	if zh != nil {
		out[entity.LanguageChinese] = *zh
	}
	if vi != nil {
		out[entity.LanguageVietnamese] = *vi
	}

	return out
}

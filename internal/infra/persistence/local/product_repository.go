// Package local keeps the product collection as a JSON document in the key-value store.
// It serves single-instance deployments that run without a SQL database for products.
package local

import (
	"context"
	"encoding/json"
	"sort"
	"sync"
	"time"

	"brewmenu/internal/domain/constants"
	"brewmenu/internal/domain/entity"
	"brewmenu/internal/domain/repository"
	"brewmenu/internal/errors"
	"brewmenu/internal/infra/persistence/seed"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	codeEncodeFailed = "encode_failed"
	codeKVWrite      = "kv_write_failed"
)

type productRecord struct {
	ID            uuid.UUID       `json:"id"`
	Name          string          `json:"name"`
	NameZh        string          `json:"name_zh,omitempty"`
	NameVi        string          `json:"name_vi,omitempty"`
	Description   string          `json:"description"`
	DescriptionZh string          `json:"description_zh,omitempty"`
	DescriptionVi string          `json:"description_vi,omitempty"`
	Price         decimal.Decimal `json:"price"`
	Image         string          `json:"image"`
	Label         string          `json:"label,omitempty"`
	Category      string          `json:"category"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

type productRepository struct {
	kv   repository.KeyValueStore
	seed bool
	now  func() time.Time

	mu sync.Mutex
}

// NewProductRepository stores products under a single key. With seedDefaults the starter menu
// is written the first time the key is found missing.
func NewProductRepository(kv repository.KeyValueStore, seedDefaults bool) repository.ProductRepository {
	return &productRepository{kv: kv, seed: seedDefaults, now: time.Now}
}

func (r *productRepository) List(ctx context.Context) ([]*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	products := make([]*entity.Product, 0, len(records))
	for _, rec := range records {
		products = append(products, rec.toDomain())
	}

	return products, nil
}

func (r *productRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return nil, err
	}

	for _, rec := range records {
		if rec.ID == id {
			return rec.toDomain(), nil
		}
	}

	return nil, repository.ErrProductNotFound
}

func (r *productRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	id, err := uuid.NewV7()
	if err != nil {
		return errors.Wrap(err, "failed to generate product id")
	}

	now := r.now().UTC()
	rec := fromDomain(product)
	rec.ID = id
	rec.CreatedAt = now
	rec.UpdatedAt = now

	if err := r.save(ctx, append(records, rec)); err != nil {
		return err
	}

	product.ID = id
	product.CreatedAt = now
	product.UpdatedAt = now

	return nil
}

func (r *productRepository) Update(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i, rec := range records {
		if rec.ID != product.ID {
			continue
		}

		next := fromDomain(product)
		next.ID = rec.ID
		next.CreatedAt = rec.CreatedAt
		next.UpdatedAt = r.now().UTC()
		records[i] = next

		if err := r.save(ctx, records); err != nil {
			return err
		}
		product.CreatedAt = next.CreatedAt
		product.UpdatedAt = next.UpdatedAt

		return nil
	}

	return repository.ErrProductNotFound
}

func (r *productRepository) Delete(ctx context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	records, err := r.load(ctx)
	if err != nil {
		return err
	}

	for i, rec := range records {
		if rec.ID == id {
			return r.save(ctx, append(records[:i], records[i+1:]...))
		}
	}

	return repository.ErrProductNotFound
}

// load returns the records sorted newest first.
func (r *productRepository) load(ctx context.Context) ([]*productRecord, error) {
	raw, ok, err := r.kv.Get(ctx, constants.KVProductsKey)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read products")
	}

	if !ok {
		if !r.seed {
			return nil, nil
		}

		records := seedRecords(r.now().UTC())
		if err := r.save(ctx, records); err != nil {
			return nil, err
		}

		return records, nil
	}

	var records []*productRecord
	if err := json.Unmarshal([]byte(raw), &records); err != nil {
		return nil, errors.Wrap(err, "failed to decode products")
	}

	sort.SliceStable(records, func(i, j int) bool {
		if records[i].CreatedAt.Equal(records[j].CreatedAt) {
			return records[i].ID.String() > records[j].ID.String()
		}

		return records[i].CreatedAt.After(records[j].CreatedAt)
	})

	return records, nil
}

func (r *productRepository) save(ctx context.Context, records []*productRecord) error {
	if records == nil {
		records = []*productRecord{}
	}

	raw, err := json.Marshal(records)
	if err != nil {
		return repository.NewStoreError(err, codeEncodeFailed, "")
	}

	if err := r.kv.Set(ctx, constants.KVProductsKey, string(raw)); err != nil {
		return repository.NewStoreError(err, codeKVWrite, "check the key-value store connection")
	}

	return nil
}

func seedRecords(now time.Time) []*productRecord {
	products := seed.Products()
	records := make([]*productRecord, 0, len(products))
	for i, p := range products {
		rec := fromDomain(p)
		rec.ID = uuid.New()
		rec.CreatedAt = now.Add(-time.Duration(i) * time.Second)
		rec.UpdatedAt = rec.CreatedAt
		records = append(records, rec)
	}

	return records
}

func fromDomain(p *entity.Product) *productRecord {
	return &productRecord{
		ID:            p.ID,
		Name:          p.Name,
		NameZh:        p.NameOverrides[entity.LanguageChinese],
		NameVi:        p.NameOverrides[entity.LanguageVietnamese],
		Description:   p.Description,
		DescriptionZh: p.DescriptionOverrides[entity.LanguageChinese],
		DescriptionVi: p.DescriptionOverrides[entity.LanguageVietnamese],
		Price:         p.Price,
		Image:         p.ImageURL,
		Label:         string(p.Label),
		Category:      string(p.Category),
	}
}

func (rec *productRecord) toDomain() *entity.Product {
	p := &entity.Product{
		ID:          rec.ID,
		Name:        rec.Name,
		Description: rec.Description,
		Price:       rec.Price,
		ImageURL:    rec.Image,
		Label:       entity.Label(rec.Label),
		Category:    entity.Category(rec.Category),
		CreatedAt:   rec.CreatedAt,
		UpdatedAt:   rec.UpdatedAt,
	}

	p.NameOverrides = overrides(rec.NameZh, rec.NameVi)
	p.DescriptionOverrides = overrides(rec.DescriptionZh, rec.DescriptionVi)

	return p
}

func overrides(zh, vi string) map[entity.Language]string {
	if zh == "" && vi == "" {
		return nil
	}

	out := make(map[entity.Language]string, 2)
	if zh != "" {
		out[entity.LanguageChinese] = zh
	}
	if vi != "" {
		out[entity.LanguageVietnamese] = vi
	}

	return out
}

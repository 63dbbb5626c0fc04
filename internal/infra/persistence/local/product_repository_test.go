package local

import (
	"context"
	"testing"
	"time"

	"brewmenu/internal/domain/constants"
	"brewmenu/internal/domain/entity"
	"brewmenu/internal/domain/repository"
	"brewmenu/internal/infra/kv"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingKV struct {
	repository.KeyValueStore
}

func (failingKV) Set(context.Context, string, string) error {
	return errors.New("disk full")
}

func TestProductRepository_SeedsOnFirstRead(t *testing.T) {
	store := kv.NewMemoryStore()
	repo := NewProductRepository(store, true)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, products, 6)
	assert.Equal(t, "Espresso", products[0].Name)
	assert.Equal(t, "Cold Brew", products[5].Name)

	_, ok, err := store.Get(context.Background(), constants.KVProductsKey)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestProductRepository_EmptyWithoutSeed(t *testing.T) {
	repo := NewProductRepository(kv.NewMemoryStore(), false)

	products, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.Empty(t, products)
}

func TestProductRepository_CRUD(t *testing.T) {
	repo := NewProductRepository(kv.NewMemoryStore(), false).(*productRepository)
	clock := time.Date(2026, 1, 1, 9, 0, 0, 0, time.UTC)
	repo.now = func() time.Time {
		clock = clock.Add(time.Minute)

		return clock
	}
	ctx := context.Background()

	first := &entity.Product{
		Name:          "Espresso",
		NameOverrides: map[entity.Language]string{entity.LanguageVietnamese: "Cà phê Espresso"},
		Price:         decimal.RequireFromString("3.50"),
		Category:      entity.CategoryCoffee,
	}
	require.NoError(t, repo.Create(ctx, first))
	assert.NotEqual(t, uuid.Nil, first.ID)

	second := &entity.Product{Name: "Chai Latte", Price: decimal.RequireFromString("4.50"), Category: entity.CategoryTea}
	require.NoError(t, repo.Create(ctx, second))

	products, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, products, 2)
	assert.Equal(t, "Chai Latte", products[0].Name)
	assert.Equal(t, "Cà phê Espresso", products[1].NameOverrides[entity.LanguageVietnamese])

	first.Name = "Doppio"
	first.NameOverrides = nil
	require.NoError(t, repo.Update(ctx, first))

	got, err := repo.FindByID(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, "Doppio", got.Name)
	assert.Nil(t, got.NameOverrides)

	require.NoError(t, repo.Delete(ctx, second.ID))
	assert.ErrorIs(t, repo.Delete(ctx, second.ID), repository.ErrProductNotFound)
	assert.ErrorIs(t, repo.Update(ctx, second), repository.ErrProductNotFound)

	_, err = repo.FindByID(ctx, second.ID)
	assert.ErrorIs(t, err, repository.ErrProductNotFound)
}

func TestProductRepository_WriteFailureIsStoreError(t *testing.T) {
	repo := NewProductRepository(failingKV{KeyValueStore: kv.NewMemoryStore()}, false)

	err := repo.Create(context.Background(), &entity.Product{
		Name:     "Espresso",
		Price:    decimal.RequireFromString("3.50"),
		Category: entity.CategoryCoffee,
	})

	var storeErr *repository.StoreError
	require.True(t, errors.As(err, &storeErr))
	assert.Equal(t, codeKVWrite, storeErr.Code)
	assert.Equal(t, "disk full", storeErr.Msg)
}

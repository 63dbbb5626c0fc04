package impl

import (
	"context"
	"testing"
	"time"

	"brewmenu/internal/domain/entity"
	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/domain/menu"
	"brewmenu/internal/errors"
	"brewmenu/internal/infra/persistence/seed"
	mockRepo "brewmenu/internal/mocks/repository"
	"brewmenu/internal/usecase"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func namedProducts(names ...string) []*entity.Product {
	products := make([]*entity.Product, 0, len(names))
	for _, name := range names {
		products = append(products, &entity.Product{
			Name:     name,
			Price:    decimal.RequireFromString("4.00"),
			Category: entity.CategoryCoffee,
		})
	}

	return products
}

func productNames(products []*entity.Product) []string {
	names := make([]string, 0, len(products))
	for _, p := range products {
		names = append(names, p.Name)
	}

	return names
}

func TestMenuController_StartsLoading(t *testing.T) {
	c := newMenuController(newGatedProductRepo(), time.Second, "$", newDiscardLogger())

	snapshot := c.Snapshot()
	assert.Equal(t, menu.StateLoading, snapshot.State)
	assert.Empty(t, snapshot.Products)

	page, err := c.Render(context.Background(), usecase.ViewRequest{Category: entity.CategoryAll, Language: entity.LanguageEnglish})
	require.NoError(t, err)
	assert.Equal(t, menu.StateLoading, page.State)
	assert.Empty(t, page.Cards)
}

func TestMenuController_Refresh_Success(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)
	repo.EXPECT().List(mock.Anything).Return(seed.Products(), nil).Once()

	c := newMenuController(repo, time.Second, "$", newDiscardLogger())
	require.NoError(t, c.Refresh(context.Background()))

	snapshot := c.Snapshot()
	assert.Equal(t, menu.StateReady, snapshot.State)
	assert.Len(t, snapshot.Products, 6)
	assert.Nil(t, snapshot.Err)
	assert.False(t, snapshot.FetchedAt.IsZero())
	assert.Equal(t, uint64(1), snapshot.Generation)

	page, err := c.Render(context.Background(), usecase.ViewRequest{Category: entity.CategoryCoffee, Language: entity.LanguageEnglish})
	require.NoError(t, err)
	assert.Equal(t, menu.StateReady, page.State)
	require.Len(t, page.Cards, 3)
	assert.Equal(t, "Espresso", page.Cards[0].Name)
	assert.Equal(t, "Caramel Macchiato", page.Cards[1].Name)
	assert.Equal(t, "Cold Brew", page.Cards[2].Name)
}

func TestMenuController_Refresh_NilCollectionIsEmpty(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, nil).Once()

	c := newMenuController(repo, time.Second, "$", newDiscardLogger())
	require.NoError(t, c.Refresh(context.Background()))

	snapshot := c.Snapshot()
	assert.Equal(t, menu.StateReady, snapshot.State)
	assert.NotNil(t, snapshot.Products)
	assert.Empty(t, snapshot.Products)
}

func TestMenuController_Refresh_StoreError(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)
	repo.EXPECT().List(mock.Anything).Return(nil, errors.New("connection refused")).Once()

	c := newMenuController(repo, time.Second, "$", newDiscardLogger())
	err := c.Refresh(context.Background())

	var fetchErr *domainerrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.False(t, fetchErr.Timeout)

	snapshot := c.Snapshot()
	assert.Equal(t, menu.StateError, snapshot.State)
	assert.ErrorAs(t, snapshot.Err, &fetchErr)

	page, renderErr := c.Render(context.Background(), usecase.ViewRequest{Category: entity.CategoryAll, Language: entity.LanguageEnglish})
	assert.ErrorAs(t, renderErr, &fetchErr)
	assert.Equal(t, menu.StateError, page.State)
}

func TestMenuController_Refresh_IgnoresCallerCancellation(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)
	repo.EXPECT().List(mock.Anything).Return(namedProducts("Espresso"), nil).Once()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	c := newMenuController(repo, time.Second, "$", newDiscardLogger())
	require.NoError(t, c.Refresh(ctx))
	assert.Equal(t, menu.StateReady, c.Snapshot().State)
}

func TestMenuController_Refresh_TimesOutWhenStoreIgnoresDeadline(t *testing.T) {
	repo := &stuckProductRepo{release: make(chan struct{})}
	t.Cleanup(func() { close(repo.release) })

	c := newMenuController(repo, 20*time.Millisecond, "$", newDiscardLogger())

	start := time.Now()
	err := c.Refresh(context.Background())

	var fetchErr *domainerrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.True(t, fetchErr.Timeout)
	assert.Less(t, time.Since(start), time.Second)
	assert.Equal(t, menu.StateError, c.Snapshot().State)
}

func TestMenuController_TimeoutThenRetry(t *testing.T) {
	repo := newGatedProductRepo()
	c := newMenuController(repo, 30*time.Millisecond, "$", newDiscardLogger())
	ctx := context.Background()

	// The first call is never answered and ends at the deadline.
	err := c.Refresh(ctx)
	var fetchErr *domainerrors.FetchError
	require.ErrorAs(t, err, &fetchErr)
	assert.True(t, fetchErr.Timeout)
	<-repo.calls
	assert.Equal(t, menu.StateError, c.Snapshot().State)

	retried := make(chan error, 1)
	go func() { retried <- c.Retry(ctx) }()

	call := <-repo.calls
	assert.Equal(t, menu.StateLoading, c.Snapshot().State)
	assert.Nil(t, c.Snapshot().Err)

	call.respond(namedProducts("Espresso", "Cold Brew"), nil)
	require.NoError(t, <-retried)

	snapshot := c.Snapshot()
	assert.Equal(t, menu.StateReady, snapshot.State)
	assert.Equal(t, []string{"Espresso", "Cold Brew"}, productNames(snapshot.Products))
}

func TestMenuController_Retry_OnlyFromError(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)
	repo.EXPECT().List(mock.Anything).Return(namedProducts("Espresso"), nil).Once()

	c := newMenuController(repo, time.Second, "$", newDiscardLogger())
	require.NoError(t, c.Refresh(context.Background()))

	err := c.Retry(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domainerrors.ErrRetryNotAllowed))
	assert.Equal(t, menu.StateReady, c.Snapshot().State)
}

func TestMenuController_LaterFetchWins(t *testing.T) {
	tests := []struct {
		name             string
		answerLaterFirst bool
	}{
		{name: "later response arrives first", answerLaterFirst: true},
		{name: "earlier response arrives first", answerLaterFirst: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newGatedProductRepo()
			c := newMenuController(repo, time.Second, "$", newDiscardLogger())
			ctx := context.Background()

			first := make(chan error, 1)
			go func() { first <- c.Refresh(ctx) }()
			earlier := <-repo.calls

			second := make(chan error, 1)
			go func() { second <- c.Refresh(ctx) }()
			later := <-repo.calls

			if tt.answerLaterFirst {
				later.respond(namedProducts("Matcha Latte"), nil)
				require.NoError(t, <-second)
				earlier.respond(namedProducts("Stale Espresso"), nil)
				require.NoError(t, <-first)
			} else {
				earlier.respond(namedProducts("Stale Espresso"), nil)
				require.NoError(t, <-first)
				assert.Equal(t, menu.StateLoading, c.Snapshot().State)
				later.respond(namedProducts("Matcha Latte"), nil)
				require.NoError(t, <-second)
			}

			snapshot := c.Snapshot()
			assert.Equal(t, menu.StateReady, snapshot.State)
			assert.Equal(t, []string{"Matcha Latte"}, productNames(snapshot.Products))
			assert.Equal(t, uint64(2), snapshot.Generation)
		})
	}
}

func TestMenuController_SupersededFailureIsDiscarded(t *testing.T) {
	repo := newGatedProductRepo()
	c := newMenuController(repo, time.Second, "$", newDiscardLogger())
	ctx := context.Background()

	first := make(chan error, 1)
	go func() { first <- c.Refresh(ctx) }()
	earlier := <-repo.calls

	second := make(chan error, 1)
	go func() { second <- c.Refresh(ctx) }()
	later := <-repo.calls

	later.respond(namedProducts("Chai Latte"), nil)
	require.NoError(t, <-second)

	earlier.respond(nil, errors.New("boom"))
	assert.Error(t, <-first)

	snapshot := c.Snapshot()
	assert.Equal(t, menu.StateReady, snapshot.State)
	assert.Nil(t, snapshot.Err)
}

func TestMenuController_SnapshotIsACopy(t *testing.T) {
	repo := mockRepo.NewMockProductRepository(t)
	repo.EXPECT().List(mock.Anything).Return(namedProducts("Espresso"), nil).Once()

	c := newMenuController(repo, time.Second, "$", newDiscardLogger())
	require.NoError(t, c.Refresh(context.Background()))

	snapshot := c.Snapshot()
	snapshot.Products[0].Name = "Changed"

	assert.Equal(t, "Espresso", c.Snapshot().Products[0].Name)
}

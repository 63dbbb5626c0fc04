package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"brewmenu/config"
	deliverycontext "brewmenu/internal/delivery/context"
	"brewmenu/internal/domain/entity"
	domainerrors "brewmenu/internal/domain/errors"
	"brewmenu/internal/domain/menu"
	"brewmenu/internal/domain/repository"
	"brewmenu/internal/errors"
	"brewmenu/internal/usecase"

	"go.uber.org/fx"
)

const defaultFetchTimeout = 5 * time.Second

// menuController implements usecase.MenuUsecase. It owns the only shared product collection,
// replacing it wholesale on every successful fetch.
type menuController struct {
	repo     repository.ProductRepository
	timeout  time.Duration
	currency string
	logger   *slog.Logger
	now      func() time.Time

	mu         sync.RWMutex
	state      menu.ViewState
	products   []*entity.Product
	lastErr    error
	fetchedAt  time.Time
	generation uint64
}

// MenuControllerParams holds dependencies for the menu controller, injected by Fx.
type MenuControllerParams struct {
	fx.In

	Lc          fx.Lifecycle
	ProductRepo repository.ProductRepository
	Config      *config.Config
	Logger      *slog.Logger
}

// NewMenuController issues the initial fetch when the application starts. Startup does not wait for it.
func NewMenuController(params MenuControllerParams) usecase.MenuUsecase {
	c := newMenuController(params.ProductRepo, params.Config.Menu.FetchTimeout, params.Config.Menu.CurrencySymbol, params.Logger)

	params.Lc.Append(fx.Hook{
		OnStart: func(context.Context) error {
			go func() {
				if err := c.Refresh(context.Background()); err != nil {
					c.logger.Warn("initial menu fetch failed", slog.Any("error", err))
				}
			}()

			return nil
		},
	})

	return c
}

func newMenuController(repo repository.ProductRepository, timeout time.Duration, currency string, logger *slog.Logger) *menuController {
	if timeout <= 0 {
		timeout = defaultFetchTimeout
	}

	return &menuController{
		repo:     repo,
		timeout:  timeout,
		currency: currency,
		logger:   logger,
		now:      time.Now,
		state:    menu.StateLoading,
	}
}

func (c *menuController) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, c.logger)
}

func (c *menuController) Refresh(ctx context.Context) error {
	gen := c.begin()

	products, err := c.fetch(ctx)
	if !c.complete(gen, products, err) {
		c.log(ctx).Debug("discarded superseded menu fetch", slog.Uint64("generation", gen))
	}

	return err
}

func (c *menuController) Retry(ctx context.Context) error {
	c.mu.RLock()
	state := c.state
	c.mu.RUnlock()

	if state != menu.StateError {
		return domainerrors.ErrRetryNotAllowed.WithDetails("current state: " + string(state))
	}

	c.log(ctx).Info("retrying menu fetch")

	return c.Refresh(ctx)
}

func (c *menuController) Snapshot() usecase.MenuSnapshot {
	c.mu.RLock()
	defer c.mu.RUnlock()

	products := make([]*entity.Product, 0, len(c.products))
	for _, p := range c.products {
		products = append(products, p.Clone())
	}

	return usecase.MenuSnapshot{
		State:      c.state,
		Products:   products,
		Err:        c.lastErr,
		FetchedAt:  c.fetchedAt,
		Generation: c.generation,
	}
}

func (c *menuController) Render(_ context.Context, req usecase.ViewRequest) (menu.Page, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	page := menu.BuildPage(c.products, menu.PageOptions{
		State:          c.state,
		Category:       req.Category,
		Language:       req.Language,
		CurrencySymbol: c.currency,
		CanEdit:        req.CanEdit,
	})
	if c.state == menu.StateError {
		return page, c.lastErr
	}

	return page, nil
}

// begin enters loading and returns the generation of the new fetch.
func (c *menuController) begin() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.generation++
	c.state = menu.StateLoading
	c.lastErr = nil

	return c.generation
}

// complete applies a fetch result unless a later fetch was issued meanwhile.
func (c *menuController) complete(gen uint64, products []*entity.Product, err error) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	if gen != c.generation {
		return false
	}

	if err != nil {
		c.state = menu.StateError
		c.lastErr = err

		return true
	}

	c.state = menu.StateReady
	c.products = products
	c.fetchedAt = c.now()

	return true
}

type fetchResult struct {
	products []*entity.Product
	err      error
}

// fetch lists products under the fetch timeout. The caller's cancellation is ignored so a
// disconnecting client cannot push the shared collection into the error state.
// A store that ignores the deadline is abandoned; its late result goes nowhere.
func (c *menuController) fetch(ctx context.Context) ([]*entity.Product, error) {
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), c.timeout)
	defer cancel()

	results := make(chan fetchResult, 1)
	go func() {
		products, err := c.repo.List(ctx)
		results <- fetchResult{products: products, err: err}
	}()

	select {
	case r := <-results:
		if r.err != nil {
			c.log(ctx).Warn("menu fetch failed", slog.Any("error", r.err))

			return nil, domainerrors.NewFetchError(r.err, errors.Is(r.err, context.DeadlineExceeded))
		}
		if r.products == nil {
			r.products = []*entity.Product{}
		}

		return r.products, nil
	case <-ctx.Done():
		c.log(ctx).Warn("menu fetch timed out", slog.Duration("timeout", c.timeout))

		return nil, domainerrors.NewFetchError(ctx.Err(), true)
	}
}

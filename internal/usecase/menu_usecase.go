// Package usecase contains the application-specific business rules.
// It orchestrates the domain layer to perform tasks.
package usecase

import (
	"context"
	"time"

	"brewmenu/internal/domain/entity"
	"brewmenu/internal/domain/menu"
)

// MenuSnapshot is the controller's view of the product collection at one instant.
type MenuSnapshot struct {
	State      menu.ViewState
	Products   []*entity.Product // A copy. Callers may keep it.
	Err        error             // The FetchError behind StateError, nil otherwise.
	FetchedAt  time.Time         // Completion time of the last successful fetch.
	Generation uint64            // Incremented by every issued fetch.
}

// ViewRequest is the per-request view state used to render the storefront.
type ViewRequest struct {
	Category entity.Category
	Language entity.Language
	CanEdit  bool
}

// MenuUsecase owns the fetched product collection and its loading state.
type MenuUsecase interface {
	// Refresh enters loading and fetches the collection. A fetch superseded by a later
	// one returns its own outcome but leaves the state untouched.
	Refresh(ctx context.Context) error

	// Retry re-issues the fetch. It is only allowed from the error state.
	Retry(ctx context.Context) error

	Snapshot() MenuSnapshot

	// Render builds the storefront from the cached collection without fetching.
	// In the error state it returns the FetchError.
	Render(ctx context.Context, req ViewRequest) (menu.Page, error)
}

// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"

	"brewmenu/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ErrProductNotFound is returned when no product has the requested ID.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the product record store.
type ProductRepository interface {
	// List returns every product, newest first by creation time.
	List(ctx context.Context) ([]*entity.Product, error)

	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// Create inserts a product. The store assigns ID and CreatedAt and writes them back.
	Create(ctx context.Context, product *entity.Product) error

	// Update replaces every mutable field of the product with the given ID.
	Update(ctx context.Context, product *entity.Product) error

	Delete(ctx context.Context, id uuid.UUID) error
}

// StoreError is a rejected write, carrying what the store reported.
type StoreError struct {
	Msg  string
	Code string
	Hint string
	Err  error
}

func (e *StoreError) Error() string {
	return e.Msg
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// NewStoreError wraps err with a store code and an optional hint.
func NewStoreError(err error, code, hint string) *StoreError {
	msg := "store error"
	if err != nil {
		msg = err.Error()
	}

	return &StoreError{Msg: msg, Code: code, Hint: hint, Err: err}
}

type readPrimaryKey struct{}

// WithReadPrimary marks ctx so reads go to the primary database rather than a replica.
// Used for read-after-write refetches.
func WithReadPrimary(ctx context.Context) context.Context {
	return context.WithValue(ctx, readPrimaryKey{}, true)
}

// ReadPrimary reports whether ctx was marked by WithReadPrimary.
func ReadPrimary(ctx context.Context) bool {
	v, _ := ctx.Value(readPrimaryKey{}).(bool)

	return v
}

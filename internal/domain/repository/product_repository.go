package repository

import (
	"context"

	"mpeshop/internal/domain/entity"
	"mpeshop/internal/errors"

	"github.com/google/uuid"
)

// ErrProductNotFound is returned when no product matches the lookup.
var ErrProductNotFound = errors.New("product not found")

// ProductRepository is the catalog lookup surface the pipeline consumes.
// Catalog browsing and administration are external collaborators; the
// pipeline only resolves carts and snapshots product fields onto orders.
type ProductRepository interface {
	// FindByID retrieves a single product regardless of its active flag.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)

	// FindBySlug retrieves a single product by its URL slug.
	FindBySlug(ctx context.Context, slug string) (*entity.Product, error)

	// FindBySKU retrieves a single product by SKU (import upsert key).
	FindBySKU(ctx context.Context, sku string) (*entity.Product, error)

	// FindActiveByIDs retrieves the active products among ids. Missing or
	// inactive ids are simply absent from the result, which is how cart
	// resolution stays resilient to catalog drift.
	FindActiveByIDs(ctx context.Context, ids []uuid.UUID) ([]*entity.Product, error)

	// Save creates or updates a product (staff import path).
	Save(ctx context.Context, product *entity.Product) error
}

// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"mpeshop/internal/domain/entity"

	"github.com/google/uuid"
)

// CartUsecase defines the session cart operations.
type CartUsecase interface {
	// AddItem merges qty into the session cart after confirming the product
	// exists and is active. Quantities clamp to the allowed range.
	AddItem(ctx context.Context, sessionID string, productID uuid.UUID, qty int) error

	// RemoveItem drops the product from the session cart.
	RemoveItem(ctx context.Context, sessionID string, productID uuid.UUID) error

	// View resolves the session cart against the live catalog. Products that
	// have gone inactive or vanished since they were added are silently
	// excluded from the view.
	View(ctx context.Context, sessionID string) (*entity.CartView, error)

	// GetProduct retrieves an active product by its URL slug for the detail
	// page the cart links back to. Inactive products are not found.
	GetProduct(ctx context.Context, slug string) (*entity.Product, error)
}

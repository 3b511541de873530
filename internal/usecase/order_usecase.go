package usecase

import (
	"context"

	"mpeshop/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderUsecase defines the staff-facing order operations.
type OrderUsecase interface {
	// GetOrder retrieves an order. When markViewed is set and the order is
	// still new, its status advances to viewed.
	GetOrder(ctx context.Context, id uuid.UUID, markViewed bool) (*entity.Order, error)

	// UpdateStatus sets the processing status. Unknown statuses are rejected.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// ResendEmail re-runs the notification dispatch for an existing order and
	// returns the fresh delivery record.
	ResendEmail(ctx context.Context, id uuid.UUID) (entity.EmailDelivery, error)
}

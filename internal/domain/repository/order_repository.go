package repository

import (
	"context"

	"mpeshop/internal/domain/entity"
	"mpeshop/internal/errors"

	"github.com/google/uuid"
)

// ErrOrderNotFound is returned when no order matches the lookup.
var ErrOrderNotFound = errors.New("order not found")

// OrderRepository persists orders and their immutable item/address snapshots.
type OrderRepository interface {
	// Create persists the order together with its address snapshot and items.
	// Callers are expected to run this inside TransactionManager.Execute so the
	// whole set commits or rolls back as one unit.
	Create(ctx context.Context, order *entity.Order) error

	// FindByID retrieves an order with its contact, items and address snapshot.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Order, error)

	// UpdateStatus sets the staff-driven processing status.
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error

	// UpdateEmailDelivery records the outcome of the most recent email send
	// attempt. Only the delivery-tracking columns are touched.
	UpdateEmailDelivery(ctx context.Context, id uuid.UUID, delivery entity.EmailDelivery) error
}

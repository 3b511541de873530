package usecase

import (
	"context"

	"mpeshop/internal/domain/entity"
)

// NotificationUsecase dispatches the post-checkout emails. Dispatch never
// returns an error: email failure must not disturb an already-committed
// order, so outcomes are reported through the returned delivery record.
type NotificationUsecase interface {
	// Dispatch sends the customer confirmation and the internal alert as
	// independent channels: one failing does not stop the other. The outcome
	// is persisted onto the order and returned; persistence failures are
	// logged and swallowed.
	Dispatch(ctx context.Context, order *entity.Order) entity.EmailDelivery
}

package impl

import (
	"context"
	"log/slog"

	"mpeshop/internal/domain/entity"
	domainerrors "mpeshop/internal/domain/errors"
	"mpeshop/internal/domain/repository"
	"mpeshop/internal/errors"
	"mpeshop/internal/usecase"

	"github.com/google/uuid"
)

type orderService struct {
	orders   repository.OrderRepository
	notifier usecase.NotificationUsecase
	logger   *slog.Logger
}

// NewOrderService creates the staff-facing order service.
func NewOrderService(
	orders repository.OrderRepository,
	notifier usecase.NotificationUsecase,
	logger *slog.Logger,
) usecase.OrderUsecase {
	return &orderService{
		orders:   orders,
		notifier: notifier,
		logger:   logger,
	}
}

func (s *orderService) GetOrder(ctx context.Context, id uuid.UUID, markViewed bool) (*entity.Order, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	// First staff view of a new order advances it to viewed, so the order
	// list shows what still needs attention.
	if markViewed && order.Status == entity.OrderStatusNew {
		if err := s.orders.UpdateStatus(ctx, id, entity.OrderStatusViewed); err != nil {
			s.logger.WarnContext(ctx, "failed to mark order viewed",
				slog.String("orderID", id.String()),
				slog.Any("error", err),
			)
		} else {
			order.Status = entity.OrderStatusViewed
		}
	}

	return order, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.OrderStatus) error {
	if !entity.ValidOrderStatus(status) {
		return domainerrors.ErrInvalidOrderStatus.WithDetails(string(status))
	}

	if err := s.orders.UpdateStatus(ctx, id, status); err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return domainerrors.ErrOrderNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "update order status")
	}

	return nil
}

func (s *orderService) ResendEmail(ctx context.Context, id uuid.UUID) (entity.EmailDelivery, error) {
	order, err := s.findOrder(ctx, id)
	if err != nil {
		return entity.EmailDelivery{}, err
	}

	return s.notifier.Dispatch(ctx, order), nil
}

func (s *orderService) findOrder(ctx context.Context, id uuid.UUID) (*entity.Order, error) {
	order, err := s.orders.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrOrderNotFound) {
			return nil, domainerrors.ErrOrderNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find order")
	}

	return order, nil
}

package impl

import (
	"context"
	"testing"
	"time"

	"mpeshop/internal/domain/entity"
	domainerrors "mpeshop/internal/domain/errors"
	"mpeshop/internal/domain/repository"
	mockRepo "mpeshop/internal/mocks/repository"
	mockUC "mpeshop/internal/mocks/usecase"
	"mpeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func createTestOrderService(t *testing.T) (
	usecase.OrderUsecase,
	*mockRepo.MockOrderRepository,
	*mockUC.MockNotificationUsecase,
) {
	t.Helper()

	orders := mockRepo.NewMockOrderRepository(t)
	notifier := mockUC.NewMockNotificationUsecase(t)
	svc := NewOrderService(orders, notifier, discardLogger())

	return svc, orders, notifier
}

func TestOrderService_GetOrder_MarksNewOrderViewed(t *testing.T) {
	ctx := context.Background()
	svc, orders, _ := createTestOrderService(t)

	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusNew}
	orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	orders.EXPECT().UpdateStatus(ctx, order.ID, entity.OrderStatusViewed).Return(nil)

	got, err := svc.GetOrder(ctx, order.ID, true)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusViewed, got.Status)
}

func TestOrderService_GetOrder_LeavesProcessedStatusAlone(t *testing.T) {
	ctx := context.Background()
	svc, orders, _ := createTestOrderService(t)

	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusProcessing}
	orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	got, err := svc.GetOrder(ctx, order.ID, true)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusProcessing, got.Status)
}

func TestOrderService_GetOrder_WithoutMarkViewed(t *testing.T) {
	ctx := context.Background()
	svc, orders, _ := createTestOrderService(t)

	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusNew}
	orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	got, err := svc.GetOrder(ctx, order.ID, false)
	require.NoError(t, err)
	assert.Equal(t, entity.OrderStatusNew, got.Status)
}

func TestOrderService_UpdateStatus_RejectsUnknownStatus(t *testing.T) {
	ctx := context.Background()
	svc, _, _ := createTestOrderService(t)

	err := svc.UpdateStatus(ctx, uuid.New(), "shipped")
	require.Error(t, err)

	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrInvalidOrderStatus.ErrorCode(), appErr.ErrorCode())
}

func TestOrderService_UpdateStatus_NotFound(t *testing.T) {
	ctx := context.Background()
	svc, orders, _ := createTestOrderService(t)

	id := uuid.New()
	orders.EXPECT().UpdateStatus(ctx, id, entity.OrderStatusComplete).
		Return(repository.ErrOrderNotFound)

	err := svc.UpdateStatus(ctx, id, entity.OrderStatusComplete)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

func TestOrderService_ResendEmail(t *testing.T) {
	ctx := context.Background()
	svc, orders, notifier := createTestOrderService(t)

	order := &entity.Order{ID: uuid.New(), Status: entity.OrderStatusViewed}
	orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	sentAt := time.Now()
	notifier.EXPECT().Dispatch(ctx, order).Return(entity.EmailDelivery{
		SentToCustomer: true,
		SentAt:         &sentAt,
	})

	delivery, err := svc.ResendEmail(ctx, order.ID)
	require.NoError(t, err)
	assert.True(t, delivery.SentToCustomer)
	assert.False(t, delivery.SentToInternal)
}

func TestOrderService_ResendEmail_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	svc, orders, _ := createTestOrderService(t)

	id := uuid.New()
	orders.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOrderNotFound)

	_, err := svc.ResendEmail(ctx, id)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"mpeshop/config"
	"mpeshop/internal/domain/entity"
	domainerrors "mpeshop/internal/domain/errors"
	"mpeshop/internal/domain/repository"
	"mpeshop/internal/errors"
	"mpeshop/internal/infra/settings"
	"mpeshop/internal/metrics"
	mockRepo "mpeshop/internal/mocks/repository"
	mockSvc "mpeshop/internal/mocks/service"
	"mpeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func settingsWithEmail(email config.EmailConfig) *settings.Store {
	return settings.New(&config.Config{Email: &email}, discardLogger())
}

func createTestDocumentService(t *testing.T) (
	usecase.DocumentUsecase,
	*mockSvc.MockDocumentRenderer,
	*mockSvc.MockDocumentRenderer,
	*mockRepo.MockOrderRepository,
) {
	t.Helper()

	styled := mockSvc.NewMockDocumentRenderer(t)
	vector := mockSvc.NewMockDocumentRenderer(t)
	orders := mockRepo.NewMockOrderRepository(t)
	svc := NewDocumentService(styled, vector, orders, settingsWithEmail(config.EmailConfig{}), metrics.New(), discardLogger())

	return svc, styled, vector, orders
}

func TestDocumentService_Download_PrimaryEngineWins(t *testing.T) {
	ctx := context.Background()
	svc, styled, _, orders := createTestDocumentService(t)

	order := &entity.Order{ID: uuid.New(), OrderNumber: "PO-9"}
	orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	styled.EXPECT().Render(ctx, order).Return([]byte("%PDF-styled"), nil)

	doc, err := svc.Download(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, "Order_PO-9.pdf", doc.Filename)
	assert.Equal(t, []byte("%PDF-styled"), doc.Content)
}

func TestDocumentService_Download_FallsBackOnce(t *testing.T) {
	ctx := context.Background()
	svc, styled, vector, orders := createTestDocumentService(t)

	order := &entity.Order{ID: uuid.New()}
	orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)

	// The styled engine is attempted exactly once before the fallback runs.
	styled.EXPECT().Render(ctx, order).Return(nil, errors.New("font cache corrupt")).Once()
	vector.EXPECT().Render(ctx, order).Return([]byte("%PDF-vector"), nil).Once()

	doc, err := svc.Download(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-vector"), doc.Content)
}

func TestDocumentService_Download_AllEnginesFail(t *testing.T) {
	ctx := context.Background()
	svc, styled, vector, orders := createTestDocumentService(t)

	order := &entity.Order{ID: uuid.New()}
	orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	styled.EXPECT().Render(ctx, order).Return(nil, errors.New("font cache corrupt")).Once()
	vector.EXPECT().Render(ctx, order).Return(nil, errors.New("out of memory")).Once()

	doc, err := svc.Download(ctx, order.ID)
	assert.Nil(t, doc)
	require.Error(t, err)

	// The combined failure names each engine's reason.
	var appErr domainerrors.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, domainerrors.ErrDocumentRenderFailed.ErrorCode(), appErr.ErrorCode())
	assert.Contains(t, appErr.Details(), "styled: font cache corrupt")
	assert.Contains(t, appErr.Details(), "vector: out of memory")
}

func TestDocumentService_Download_TreatsEmptyOutputAsFailure(t *testing.T) {
	ctx := context.Background()
	svc, styled, vector, orders := createTestDocumentService(t)

	order := &entity.Order{ID: uuid.New()}
	orders.EXPECT().FindByID(ctx, order.ID).Return(order, nil)
	styled.EXPECT().Render(ctx, order).Return([]byte{}, nil).Once()
	vector.EXPECT().Render(ctx, order).Return([]byte("%PDF-vector"), nil).Once()

	doc, err := svc.Download(ctx, order.ID)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-vector"), doc.Content)
}

func TestDocumentService_ForAttachment_TotalFailureIsTolerated(t *testing.T) {
	ctx := context.Background()
	svc, styled, vector, _ := createTestDocumentService(t)

	order := &entity.Order{ID: uuid.New()}
	styled.EXPECT().Render(ctx, order).Return(nil, errors.New("boom")).Once()
	vector.EXPECT().Render(ctx, order).Return(nil, errors.New("boom too")).Once()

	doc, ok := svc.ForAttachment(ctx, order)
	assert.False(t, ok)
	assert.Nil(t, doc)
}

func TestDocumentService_FilenameTemplate(t *testing.T) {
	ctx := context.Background()
	styled := mockSvc.NewMockDocumentRenderer(t)
	vector := mockSvc.NewMockDocumentRenderer(t)
	orders := mockRepo.NewMockOrderRepository(t)
	store := settingsWithEmail(config.EmailConfig{PDFFilenameTemplate: "MPE_{order_ref}_summary.pdf"})
	svc := NewDocumentService(styled, vector, orders, store, metrics.New(), discardLogger())

	order := &entity.Order{ID: uuid.New(), OrderNumber: "PO-42"}
	styled.EXPECT().Render(ctx, order).Return([]byte("%PDF"), nil)

	doc, ok := svc.ForAttachment(ctx, order)
	require.True(t, ok)
	assert.Equal(t, "MPE_PO-42_summary.pdf", doc.Filename)
}

func TestDocumentService_Download_OrderNotFound(t *testing.T) {
	ctx := context.Background()
	svc, _, _, orders := createTestDocumentService(t)

	id := uuid.New()
	orders.EXPECT().FindByID(ctx, id).Return(nil, repository.ErrOrderNotFound)

	doc, err := svc.Download(ctx, id)
	assert.Nil(t, doc)
	assert.ErrorIs(t, err, domainerrors.ErrOrderNotFound)
}

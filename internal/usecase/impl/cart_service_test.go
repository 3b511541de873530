package impl

import (
	"context"
	"testing"

	"mpeshop/internal/domain/entity"
	domainerrors "mpeshop/internal/domain/errors"
	"mpeshop/internal/domain/repository"
	"mpeshop/internal/infra/cart"
	mockRepo "mpeshop/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func activeProduct(name, sku, price string) *entity.Product {
	return &entity.Product{
		ID:        uuid.New(),
		Name:      name,
		SKU:       sku,
		Price:     decimal.RequireFromString(price),
		ShowPrice: true,
		IsActive:  true,
	}
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	products := mockRepo.NewMockProductRepository(t)
	store := cart.NewMemoryStore()
	svc := NewCartService(store, products)

	product := activeProduct("Filter Element", "FE-10", "10.50")
	products.EXPECT().FindByID(ctx, product.ID).Return(product, nil)

	require.NoError(t, svc.AddItem(ctx, "sess-1", product.ID, 2))
	assert.Equal(t, 2, store.Get("sess-1")[product.ID])
}

func TestCartService_AddItem_InactiveProductRejected(t *testing.T) {
	ctx := context.Background()
	products := mockRepo.NewMockProductRepository(t)
	store := cart.NewMemoryStore()
	svc := NewCartService(store, products)

	inactive := activeProduct("Old Part", "OP-1", "5.00")
	inactive.IsActive = false
	products.EXPECT().FindByID(ctx, inactive.ID).Return(inactive, nil)

	err := svc.AddItem(ctx, "sess-1", inactive.ID, 1)
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
	assert.Empty(t, store.Get("sess-1"))
}

func TestCartService_GetProduct(t *testing.T) {
	ctx := context.Background()
	products := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(cart.NewMemoryStore(), products)

	product := activeProduct("Filter Element", "FE-10", "10.50")
	product.Slug = "filter-element"
	products.EXPECT().FindBySlug(ctx, "filter-element").Return(product, nil)

	got, err := svc.GetProduct(ctx, "filter-element")
	require.NoError(t, err)
	assert.Equal(t, product.ID, got.ID)
}

func TestCartService_GetProduct_InactiveNotFound(t *testing.T) {
	ctx := context.Background()
	products := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(cart.NewMemoryStore(), products)

	retired := activeProduct("Old Part", "OP-1", "5.00")
	retired.IsActive = false
	products.EXPECT().FindBySlug(ctx, "old-part").Return(retired, nil)

	_, err := svc.GetProduct(ctx, "old-part")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_GetProduct_UnknownSlug(t *testing.T) {
	ctx := context.Background()
	products := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(cart.NewMemoryStore(), products)

	products.EXPECT().FindBySlug(ctx, "never-was").
		Return(nil, repository.ErrProductNotFound)

	_, err := svc.GetProduct(ctx, "never-was")
	assert.ErrorIs(t, err, domainerrors.ErrProductNotFound)
}

func TestCartService_View_ResolvesAndTotals(t *testing.T) {
	ctx := context.Background()
	products := mockRepo.NewMockProductRepository(t)
	store := cart.NewMemoryStore()
	svc := NewCartService(store, products)

	filter := activeProduct("Filter Element", "FE-10", "10.50")
	gasket := activeProduct("Gasket Set", "GS-2", "7.50")
	store.Add("sess-1", filter.ID, 1)
	store.Add("sess-1", gasket.ID, 2)

	products.EXPECT().FindActiveByIDs(ctx, mock.Anything).
		Return([]*entity.Product{filter, gasket}, nil)

	view, err := svc.View(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	assert.Equal(t, "25.50", view.Subtotal.StringFixed(2))
	assert.Equal(t, 3, view.ItemCount)
}

func TestCartService_View_HiddenPriceExcludedFromSubtotal(t *testing.T) {
	ctx := context.Background()
	products := mockRepo.NewMockProductRepository(t)
	store := cart.NewMemoryStore()
	svc := NewCartService(store, products)

	filter := activeProduct("Filter Element", "FE-10", "10.50")
	quoted := activeProduct("Custom Bracket", "CB-1", "99.00")
	quoted.ShowPrice = false
	store.Add("sess-1", filter.ID, 1)
	store.Add("sess-1", quoted.ID, 2)

	products.EXPECT().FindActiveByIDs(ctx, mock.Anything).
		Return([]*entity.Product{filter, quoted}, nil)

	view, err := svc.View(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, view.Lines, 2)
	// The hidden-price line carries no value into the subtotal.
	assert.Equal(t, "10.50", view.Subtotal.StringFixed(2))
	assert.Equal(t, 3, view.ItemCount)
}

func TestCartService_View_DropsStaleEntries(t *testing.T) {
	ctx := context.Background()
	products := mockRepo.NewMockProductRepository(t)
	store := cart.NewMemoryStore()
	svc := NewCartService(store, products)

	live := activeProduct("Filter Element", "FE-10", "10.50")
	gone := uuid.New()
	store.Add("sess-1", live.ID, 1)
	store.Add("sess-1", gone, 4)

	// The deleted product is absent from the catalog result.
	products.EXPECT().FindActiveByIDs(ctx, mock.Anything).
		Return([]*entity.Product{live}, nil)

	view, err := svc.View(ctx, "sess-1")
	require.NoError(t, err)
	require.Len(t, view.Lines, 1)
	assert.Equal(t, live.ID, view.Lines[0].Product.ID)
	assert.Equal(t, "10.50", view.Subtotal.StringFixed(2))
}

func TestCartService_View_EmptyCart(t *testing.T) {
	ctx := context.Background()
	products := mockRepo.NewMockProductRepository(t)
	svc := NewCartService(cart.NewMemoryStore(), products)

	view, err := svc.View(ctx, "sess-none")
	require.NoError(t, err)
	assert.Empty(t, view.Lines)
	assert.True(t, view.Subtotal.IsZero())
}

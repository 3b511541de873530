package impl

import (
	"context"
	"io"
	"log/slog"
	"testing"
	"time"

	"mpeshop/internal/domain/entity"
	domainerrors "mpeshop/internal/domain/errors"
	"mpeshop/internal/domain/repository"
	"mpeshop/internal/domain/service"
	"mpeshop/internal/infra/cart"
	"mpeshop/internal/metrics"
	mockRepo "mpeshop/internal/mocks/repository"
	mockUC "mpeshop/internal/mocks/usecase"
	"mpeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type checkoutFixture struct {
	svc       usecase.CheckoutUsecase
	cartStore service.CartStore
	contacts  *mockRepo.MockContactRepository
	orders    *mockRepo.MockOrderRepository
	products  *mockRepo.MockProductRepository
	notifier  *mockUC.MockNotificationUsecase
}

func createTestCheckoutService(t *testing.T, passthroughTx bool) *checkoutFixture {
	t.Helper()

	contacts := mockRepo.NewMockContactRepository(t)
	orders := mockRepo.NewMockOrderRepository(t)
	products := mockRepo.NewMockProductRepository(t)
	notifier := mockUC.NewMockNotificationUsecase(t)
	txManager := mockRepo.NewMockTransactionManager(t)
	cartStore := cart.NewMemoryStore()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	if passthroughTx {
		factory := mockRepo.NewMockRepositoryFactory(t)
		factory.EXPECT().ContactRepo().Return(contacts).Maybe()
		factory.EXPECT().OrderRepo().Return(orders).Maybe()
		factory.EXPECT().ProductRepo().Return(products).Maybe()
		txManager.EXPECT().Execute(mock.Anything, mock.Anything).
			RunAndReturn(func(_ context.Context, fn func(repository.RepositoryFactory) error) error {
				return fn(factory)
			})
	}

	return &checkoutFixture{
		svc:       NewCheckoutService(txManager, cartStore, notifier, metrics.New(), logger),
		cartStore: cartStore,
		contacts:  contacts,
		orders:    orders,
		products:  products,
		notifier:  notifier,
	}
}

func checkoutInput() *usecase.CheckoutInput {
	return &usecase.CheckoutInput{
		Name:        "Jo Smith",
		Company:     "Smith Engineering",
		Email:       "  Jo@Example.COM ",
		Phone:       "01onetwo",
		OrderNumber: "PO-1001",
		Address: usecase.CheckoutAddressInput{
			Label:         "Workshop",
			Address1:      "1 Mill Lane",
			City:          "Leeds",
			Postcode:      "LS1 1AA",
			SaveAsDefault: true,
		},
	}
}

func TestCheckoutService_Checkout_NewContact(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckoutService(t, true)

	filter := activeProduct("Filter Element", "FE-10", "10.50")
	gasket := activeProduct("Gasket Set", "GS-2", "7.50")
	f.cartStore.Add("sess-1", filter.ID, 1)
	f.cartStore.Add("sess-1", gasket.ID, 2)

	f.products.EXPECT().FindActiveByIDs(ctx, mock.Anything).
		Return([]*entity.Product{filter, gasket}, nil)

	// Normalized email drives the lookup.
	f.contacts.EXPECT().FindByEmail(ctx, "jo@example.com").
		Return(nil, repository.ErrContactNotFound)
	f.contacts.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, contact *entity.Contact) {
			contact.ID = uuid.New()
		}).Return(nil)
	f.contacts.EXPECT().SaveAddress(ctx, mock.MatchedBy(func(a *entity.Address) bool {
		return a.Address1 == "1 Mill Lane" && a.IsDefault
	})).Return(nil)

	f.orders.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, order *entity.Order) {
			order.ID = uuid.New()
		}).Return(nil)

	sentAt := time.Now()
	f.notifier.EXPECT().Dispatch(ctx, mock.Anything).Return(entity.EmailDelivery{
		SentToCustomer: true,
		SentToInternal: true,
		SentAt:         &sentAt,
	})

	order, err := f.svc.Checkout(ctx, "sess-1", checkoutInput())
	require.NoError(t, err)

	assert.Equal(t, entity.OrderStatusNew, order.Status)
	assert.Equal(t, "PO-1001", order.Reference())
	assert.Equal(t, "25.50", order.Total.StringFixed(2))
	require.Len(t, order.Items, 2)
	assert.True(t, order.EmailSentToCustomer)
	assert.True(t, order.EmailSentToInternal)

	// The committed cart is gone.
	assert.Empty(t, f.cartStore.Get("sess-1"))
}

func TestCheckoutService_Checkout_ExistingContactMerged(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckoutService(t, true)

	filter := activeProduct("Filter Element", "FE-10", "10.50")
	f.cartStore.Add("sess-1", filter.ID, 1)

	f.products.EXPECT().FindActiveByIDs(ctx, mock.Anything).
		Return([]*entity.Product{filter}, nil)

	existing := &entity.Contact{
		ID:    uuid.New(),
		Name:  "J. Smith",
		Email: "jo@example.com",
	}
	f.contacts.EXPECT().FindByEmail(ctx, "jo@example.com").Return(existing, nil)

	// Changed details are merged onto the existing row, never duplicated.
	f.contacts.EXPECT().Update(ctx, mock.MatchedBy(func(c *entity.Contact) bool {
		return c.ID == existing.ID && c.Name == "Jo Smith" && c.Company == "Smith Engineering"
	})).Return(nil)
	f.contacts.EXPECT().SaveAddress(ctx, mock.Anything).Return(nil)

	f.orders.EXPECT().Create(ctx, mock.MatchedBy(func(o *entity.Order) bool {
		return o.ContactID == existing.ID
	})).Run(func(_ context.Context, order *entity.Order) {
		order.ID = uuid.New()
	}).Return(nil)

	f.notifier.EXPECT().Dispatch(ctx, mock.Anything).Return(entity.EmailDelivery{})

	_, err := f.svc.Checkout(ctx, "sess-1", checkoutInput())
	require.NoError(t, err)
}

func TestCheckoutService_Checkout_RepeatAddressUpdatedInPlace(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckoutService(t, true)

	filter := activeProduct("Filter Element", "FE-10", "10.50")
	f.cartStore.Add("sess-1", filter.ID, 1)

	f.products.EXPECT().FindActiveByIDs(ctx, mock.Anything).
		Return([]*entity.Product{filter}, nil)

	existingAddr := &entity.Address{
		ID:        uuid.New(),
		Label:     "workshop",
		Address1:  "1 Mill Lane",
		Postcode:  "LS1 1AA",
		IsDefault: true,
	}
	existing := &entity.Contact{
		ID:        uuid.New(),
		Name:      "Jo Smith",
		Company:   "Smith Engineering",
		Phone:     "01onetwo",
		Email:     "jo@example.com",
		Addresses: []*entity.Address{existingAddr},
	}
	existingAddr.ContactID = existing.ID
	f.contacts.EXPECT().FindByEmail(ctx, "jo@example.com").Return(existing, nil)

	// The resubmitted address hits the existing book entry: same row id, new
	// details, no duplicate insert.
	f.contacts.EXPECT().SaveAddress(ctx, mock.MatchedBy(func(a *entity.Address) bool {
		return a.ID == existingAddr.ID && a.City == "Leeds" && a.IsDefault
	})).Return(nil)

	f.orders.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.notifier.EXPECT().Dispatch(ctx, mock.Anything).Return(entity.EmailDelivery{})

	_, err := f.svc.Checkout(ctx, "sess-1", checkoutInput())
	require.NoError(t, err)
	assert.Len(t, existing.Addresses, 1)
}

func TestCheckoutService_Checkout_FirstAddressBecomesDefault(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckoutService(t, true)

	filter := activeProduct("Filter Element", "FE-10", "10.50")
	f.cartStore.Add("sess-1", filter.ID, 1)

	f.products.EXPECT().FindActiveByIDs(ctx, mock.Anything).
		Return([]*entity.Product{filter}, nil)

	existing := &entity.Contact{
		ID:    uuid.New(),
		Name:  "Jo Smith",
		Email: "jo@example.com",
	}
	f.contacts.EXPECT().FindByEmail(ctx, "jo@example.com").Return(existing, nil)
	f.contacts.EXPECT().Update(ctx, mock.Anything).Return(nil)

	// An empty address book makes the new entry the default even when the
	// customer did not ask for it.
	f.contacts.EXPECT().SaveAddress(ctx, mock.MatchedBy(func(a *entity.Address) bool {
		return a.ContactID == existing.ID && a.IsDefault
	})).Return(nil)

	f.orders.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.notifier.EXPECT().Dispatch(ctx, mock.Anything).Return(entity.EmailDelivery{})

	input := checkoutInput()
	input.Address.SaveAsDefault = false
	_, err := f.svc.Checkout(ctx, "sess-1", input)
	require.NoError(t, err)
	assert.Len(t, existing.Addresses, 1)
}

func TestCheckoutService_Checkout_EmptyCart(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckoutService(t, false)

	order, err := f.svc.Checkout(ctx, "sess-empty", checkoutInput())
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	assert.Nil(t, order)
}

func TestCheckoutService_Checkout_FullyStaleCart(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckoutService(t, true)

	f.cartStore.Add("sess-1", uuid.New(), 2)

	// Every cart entry has gone inactive since it was added: no contact or
	// order writes may happen.
	f.products.EXPECT().FindActiveByIDs(ctx, mock.Anything).
		Return([]*entity.Product{}, nil)

	order, err := f.svc.Checkout(ctx, "sess-1", checkoutInput())
	assert.ErrorIs(t, err, domainerrors.ErrCartEmpty)
	assert.Nil(t, order)

	// The cart survives a failed checkout.
	assert.NotEmpty(t, f.cartStore.Get("sess-1"))
}

func TestCheckoutService_Checkout_ZeroPriceExcludedFromTotal(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckoutService(t, true)

	filter := activeProduct("Filter Element", "FE-10", "10.50")
	quoteOnly := activeProduct("Custom Bracket", "CB-1", "0")
	quoteOnly.Price = decimal.Zero
	f.cartStore.Add("sess-1", filter.ID, 1)
	f.cartStore.Add("sess-1", quoteOnly.ID, 5)

	f.products.EXPECT().FindActiveByIDs(ctx, mock.Anything).
		Return([]*entity.Product{filter, quoteOnly}, nil)
	f.contacts.EXPECT().FindByEmail(ctx, mock.Anything).
		Return(nil, repository.ErrContactNotFound)
	f.contacts.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, contact *entity.Contact) {
			contact.ID = uuid.New()
		}).Return(nil)
	f.contacts.EXPECT().SaveAddress(ctx, mock.Anything).Return(nil)
	f.orders.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.notifier.EXPECT().Dispatch(ctx, mock.Anything).Return(entity.EmailDelivery{})

	order, err := f.svc.Checkout(ctx, "sess-1", checkoutInput())
	require.NoError(t, err)

	// The quote-only line is on the order but not in the total.
	require.Len(t, order.Items, 2)
	assert.Equal(t, "10.50", order.Total.StringFixed(2))
}

func TestCheckoutService_Checkout_HiddenPriceSnapshotsAsOnRequest(t *testing.T) {
	ctx := context.Background()
	f := createTestCheckoutService(t, true)

	filter := activeProduct("Filter Element", "FE-10", "10.50")
	quoted := activeProduct("Custom Bracket", "CB-1", "99.00")
	quoted.ShowPrice = false
	f.cartStore.Add("sess-1", filter.ID, 1)
	f.cartStore.Add("sess-1", quoted.ID, 1)

	f.products.EXPECT().FindActiveByIDs(ctx, mock.Anything).
		Return([]*entity.Product{filter, quoted}, nil)
	f.contacts.EXPECT().FindByEmail(ctx, mock.Anything).
		Return(nil, repository.ErrContactNotFound)
	f.contacts.EXPECT().Create(ctx, mock.Anything).
		Run(func(_ context.Context, contact *entity.Contact) {
			contact.ID = uuid.New()
		}).Return(nil)
	f.contacts.EXPECT().SaveAddress(ctx, mock.Anything).Return(nil)
	f.orders.EXPECT().Create(ctx, mock.Anything).Return(nil)
	f.notifier.EXPECT().Dispatch(ctx, mock.Anything).Return(entity.EmailDelivery{})

	order, err := f.svc.Checkout(ctx, "sess-1", checkoutInput())
	require.NoError(t, err)

	// The hidden price never reaches the order snapshot; the line renders
	// "On request" downstream and stays out of the total.
	require.Len(t, order.Items, 2)
	for _, item := range order.Items {
		if item.SKU == "CB-1" {
			assert.True(t, item.UnitPrice.IsZero())
		}
	}
	assert.Equal(t, "10.50", order.Total.StringFixed(2))
}

package impl

import (
	"context"
	"log/slog"
	"strings"

	"mpeshop/internal/domain/entity"
	domainerrors "mpeshop/internal/domain/errors"
	"mpeshop/internal/domain/repository"
	"mpeshop/internal/domain/service"
	"mpeshop/internal/errors"
	"mpeshop/internal/metrics"
	"mpeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type checkoutService struct {
	txManager repository.TransactionManager
	cartStore service.CartStore
	notifier  usecase.NotificationUsecase
	metrics   *metrics.Metrics
	logger    *slog.Logger
}

// NewCheckoutService creates a new checkout service instance
func NewCheckoutService(
	txManager repository.TransactionManager,
	cartStore service.CartStore,
	notifier usecase.NotificationUsecase,
	m *metrics.Metrics,
	logger *slog.Logger,
) usecase.CheckoutUsecase {
	return &checkoutService{
		txManager: txManager,
		cartStore: cartStore,
		notifier:  notifier,
		metrics:   m,
		logger:    logger,
	}
}

func (s *checkoutService) Checkout(ctx context.Context, sessionID string, input *usecase.CheckoutInput) (*entity.Order, error) {
	contents := s.cartStore.Get(sessionID)
	if len(contents) == 0 {
		return nil, domainerrors.ErrCartEmpty
	}

	var order *entity.Order
	err := s.txManager.Execute(ctx, func(factory repository.RepositoryFactory) error {
		// Resolve the cart inside the transaction so the snapshotted prices
		// match what is committed.
		products, err := factory.ProductRepo().FindActiveByIDs(ctx, cartProductIDs(contents))
		if err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "resolve cart products")
		}
		if len(products) == 0 {
			// Everything in the cart went stale since it was added.
			return domainerrors.ErrCartEmpty
		}

		contact, err := s.upsertContact(ctx, factory.ContactRepo(), input)
		if err != nil {
			return err
		}

		order = buildOrder(contact, input, products, contents)
		if err := factory.OrderRepo().Create(ctx, order); err != nil {
			return domainerrors.NewDatabaseExecuteError(err, "create order")
		}

		return nil
	})
	if err != nil {
		s.metrics.CheckoutErrors.Inc()

		return nil, err
	}

	s.metrics.OrdersCreated.Inc()
	s.logger.InfoContext(ctx, "order committed",
		slog.String("orderID", order.ID.String()),
		slog.String("reference", order.Reference()),
		slog.Int("items", len(order.Items)),
	)

	// Post-commit side effects are best-effort: the order exists whatever
	// happens from here on.
	delivery := s.notifier.Dispatch(ctx, order)
	order.EmailSentToCustomer = delivery.SentToCustomer
	order.EmailSentToInternal = delivery.SentToInternal
	order.EmailSentAt = delivery.SentAt
	order.EmailLastError = delivery.LastError

	s.cartStore.Clear(sessionID)

	return order, nil
}

// upsertContact finds or creates the contact for the checkout email, merges
// changed details, and maintains the address book entry.
func (s *checkoutService) upsertContact(ctx context.Context, contacts repository.ContactRepository, input *usecase.CheckoutInput) (*entity.Contact, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	incoming := &entity.Contact{
		Name:    strings.TrimSpace(input.Name),
		Company: strings.TrimSpace(input.Company),
		Phone:   strings.TrimSpace(input.Phone),
		Email:   email,
	}

	contact, err := contacts.FindByEmail(ctx, email)
	switch {
	case err == nil:
		if contact.MergeFrom(incoming) {
			if err := contacts.Update(ctx, contact); err != nil {
				return nil, domainerrors.ErrContactUpdateFailed.WithDetails(err.Error())
			}
		}
	case errors.Is(err, repository.ErrContactNotFound):
		contact = incoming
		if err := contacts.Create(ctx, contact); err != nil {
			return nil, domainerrors.NewDatabaseExecuteError(err, "create contact")
		}
	default:
		return nil, domainerrors.NewDatabaseExecuteError(err, "find contact")
	}

	if input.Address.Address1 != "" {
		if err := s.upsertAddress(ctx, contacts, contact, input); err != nil {
			return nil, err
		}
	}

	return contact, nil
}

// upsertAddress maintains the contact's address book: a resubmitted address
// updates the matching entry instead of inserting a duplicate, and a
// contact's first address becomes the default. Checkout only ever promotes
// an entry to default, never demotes one.
func (s *checkoutService) upsertAddress(ctx context.Context, contacts repository.ContactRepository, contact *entity.Contact, input *usecase.CheckoutInput) error {
	address := contact.FindAddress(input.Address.Label, input.Address.Address1, input.Address.Postcode)
	isNew := address == nil
	if isNew {
		address = &entity.Address{ContactID: contact.ID}
	}

	address.Label = input.Address.Label
	address.Address1 = input.Address.Address1
	address.Address2 = input.Address.Address2
	address.City = input.Address.City
	address.County = input.Address.County
	address.Postcode = input.Address.Postcode
	address.Country = input.Address.Country
	if input.Address.SaveAsDefault || (isNew && len(contact.Addresses) == 0) {
		address.IsDefault = true
	}

	if err := contacts.SaveAddress(ctx, address); err != nil {
		return domainerrors.NewDatabaseExecuteError(err, "save address")
	}
	if isNew {
		contact.Addresses = append(contact.Addresses, address)
	}

	return nil
}

func cartProductIDs(contents entity.CartContents) []uuid.UUID {
	ids := make([]uuid.UUID, 0, len(contents))
	for id := range contents {
		ids = append(ids, id)
	}

	return ids
}

// buildOrder assembles the order aggregate: denormalized item snapshots, the
// address snapshot, and the total over priced lines only.
func buildOrder(contact *entity.Contact, input *usecase.CheckoutInput, products []*entity.Product, contents entity.CartContents) *entity.Order {
	order := &entity.Order{
		ContactID:   contact.ID,
		Contact:     contact,
		OrderNumber: strings.TrimSpace(input.OrderNumber),
		Status:      entity.OrderStatusNew,
		Notes:       strings.TrimSpace(input.Notes),
		Total:       decimal.Zero,
	}

	for _, product := range products {
		qty := contents[product.ID]
		productID := product.ID
		item := &entity.OrderItem{
			ProductID:   &productID,
			ProductName: product.Name,
			SKU:         product.SKU,
			UnitPrice:   product.EffectivePrice(),
			Quantity:    qty,
		}
		order.Items = append(order.Items, item)
		if !item.UnitPrice.IsZero() {
			order.Total = order.Total.Add(item.LineTotal())
		}
	}

	if input.Address.Address1 != "" {
		order.Address = &entity.OrderAddress{
			Label:    input.Address.Label,
			Address1: input.Address.Address1,
			Address2: input.Address.Address2,
			City:     input.Address.City,
			County:   input.Address.County,
			Postcode: input.Address.Postcode,
			Country:  input.Address.Country,
		}
	}

	return order
}

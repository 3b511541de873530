// Package impl contains the use case implementations.
package impl

import (
	"context"

	"mpeshop/internal/domain/entity"
	domainerrors "mpeshop/internal/domain/errors"
	"mpeshop/internal/domain/repository"
	"mpeshop/internal/domain/service"
	"mpeshop/internal/errors"
	"mpeshop/internal/usecase"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type cartService struct {
	store    service.CartStore
	products repository.ProductRepository
}

// NewCartService creates a new cart service instance
func NewCartService(store service.CartStore, products repository.ProductRepository) usecase.CartUsecase {
	return &cartService{
		store:    store,
		products: products,
	}
}

func (s *cartService) AddItem(ctx context.Context, sessionID string, productID uuid.UUID, qty int) error {
	product, err := s.products.FindByID(ctx, productID)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return domainerrors.ErrProductNotFound
		}

		return domainerrors.NewDatabaseExecuteError(err, "find product")
	}
	if !product.IsActive {
		return domainerrors.ErrProductNotFound
	}

	s.store.Add(sessionID, productID, qty)

	return nil
}

func (s *cartService) GetProduct(ctx context.Context, slug string) (*entity.Product, error) {
	product, err := s.products.FindBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, repository.ErrProductNotFound) {
			return nil, domainerrors.ErrProductNotFound
		}

		return nil, domainerrors.NewDatabaseExecuteError(err, "find product by slug")
	}
	if !product.IsActive {
		return nil, domainerrors.ErrProductNotFound
	}

	return product, nil
}

func (s *cartService) RemoveItem(_ context.Context, sessionID string, productID uuid.UUID) error {
	s.store.Remove(sessionID, productID)

	return nil
}

func (s *cartService) View(ctx context.Context, sessionID string) (*entity.CartView, error) {
	contents := s.store.Get(sessionID)
	view := &entity.CartView{Subtotal: decimal.Zero}
	if len(contents) == 0 {
		return view, nil
	}

	ids := make([]uuid.UUID, 0, len(contents))
	for id := range contents {
		ids = append(ids, id)
	}

	products, err := s.products.FindActiveByIDs(ctx, ids)
	if err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "resolve cart products")
	}

	// Products missing from the result have gone inactive or were deleted;
	// their cart entries are simply not shown.
	for _, product := range products {
		qty := contents[product.ID]
		lineTotal := product.EffectivePrice().Mul(decimal.NewFromInt(int64(qty)))
		view.Lines = append(view.Lines, &entity.CartLine{
			Product:   product,
			Quantity:  qty,
			LineTotal: lineTotal,
		})
		view.Subtotal = view.Subtotal.Add(lineTotal)
		view.ItemCount += qty
	}

	return view, nil
}

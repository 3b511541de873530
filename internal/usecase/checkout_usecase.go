package usecase

import (
	"context"

	"mpeshop/internal/domain/entity"
)

// CheckoutUsecase turns a session cart into a persisted order and fires the
// post-commit side effects (document render, notification emails).
type CheckoutUsecase interface {
	// Checkout validates the input, resolves the cart, persists contact and
	// order atomically, then renders and dispatches best-effort. The returned
	// order reflects the committed state including delivery tracking.
	//
	// An empty or fully-stale cart fails with ErrCartEmpty before any write.
	Checkout(ctx context.Context, sessionID string, input *CheckoutInput) (*entity.Order, error)
}

// --- Input DTOs ---

// CheckoutAddressInput is the postal address supplied at checkout.
type CheckoutAddressInput struct {
	Label         string `json:"label"`
	Address1      string `json:"address1" validate:"required"`
	Address2      string `json:"address2"`
	City          string `json:"city"`
	County        string `json:"county"`
	Postcode      string `json:"postcode" validate:"required"`
	Country       string `json:"country"`
	SaveAsDefault bool   `json:"save_as_default"`
}

// CheckoutInput defines the customer details captured by the checkout form.
type CheckoutInput struct {
	Name        string               `json:"name" validate:"required"`
	Company     string               `json:"company"`
	Email       string               `json:"email" validate:"required,email"`
	Phone       string               `json:"phone"`
	OrderNumber string               `json:"order_number"` // Customer's own PO reference.
	Notes       string               `json:"notes"`
	Address     CheckoutAddressInput `json:"address"`
}

package entity

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart quantity bounds. Quantities outside the range are clamped, not rejected.
const (
	CartMinQuantity = 1
	CartMaxQuantity = 999
)

// CartLine is one cart entry resolved against the live catalog.
type CartLine struct {
	Product   *Product
	Quantity  int
	LineTotal decimal.Decimal
}

// CartView is the resolved, priced view of a session cart. Products that are
// inactive or no longer exist are excluded before the view is built.
type CartView struct {
	Lines     []*CartLine
	Subtotal  decimal.Decimal
	ItemCount int // Total units across all lines.
}

// ClampCartQuantity clamps qty into [CartMinQuantity, CartMaxQuantity].
func ClampCartQuantity(qty int) int {
	if qty < CartMinQuantity {
		return CartMinQuantity
	}
	if qty > CartMaxQuantity {
		return CartMaxQuantity
	}

	return qty
}

// CartContents is the raw session-scoped quantity map, keyed by product id.
// It is ephemeral state; nothing here touches the database.
type CartContents map[uuid.UUID]int

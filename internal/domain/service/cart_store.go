package service

import (
	"mpeshop/internal/domain/entity"

	"github.com/google/uuid"
)

// CartStore holds session-scoped, uncommitted cart state: a quantity map per
// browsing session. It performs no database writes and no catalog lookups;
// resolution against the live catalog happens in the cart use case.
// Concurrent mutations of one session race last-write-wins.
type CartStore interface {
	// Add merges qty into the session's existing quantity for the product,
	// clamping the result to [entity.CartMinQuantity, entity.CartMaxQuantity].
	Add(sessionID string, productID uuid.UUID, qty int)

	// Remove deletes the product entry from the session cart.
	Remove(sessionID string, productID uuid.UUID)

	// Get returns a copy of the session's quantity map.
	Get(sessionID string) entity.CartContents

	// Clear destroys the session cart. Called only on successful checkout.
	Clear(sessionID string)
}

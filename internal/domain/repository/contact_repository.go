// Package repository defines the persistence interfaces consumed by the
// use case layer. Implementations live under internal/infra/persistence.
package repository

import (
	"context"

	"mpeshop/internal/domain/entity"
	"mpeshop/internal/errors"

	"github.com/google/uuid"
)

// ErrContactNotFound is returned when no contact matches the lookup.
var ErrContactNotFound = errors.New("contact not found")

// ContactRepository manages reusable customer contacts and their address book.
type ContactRepository interface {
	// FindByID retrieves a contact with its addresses.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Contact, error)

	// FindByEmail retrieves a contact by its unique email match key.
	// Returns ErrContactNotFound when the email is unknown.
	FindByEmail(ctx context.Context, email string) (*entity.Contact, error)

	// Create persists a new contact.
	Create(ctx context.Context, contact *entity.Contact) error

	// Update saves changed contact fields.
	Update(ctx context.Context, contact *entity.Contact) error

	// SaveAddress creates or updates an address-book entry. When the address
	// is flagged default, the default flag is cleared on the contact's other
	// addresses in the same statement scope.
	SaveAddress(ctx context.Context, address *entity.Address) error
}

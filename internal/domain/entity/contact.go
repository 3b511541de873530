// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

// Contact is a reusable customer identity used for checkout and enquiries.
// Contacts are deduplicated by email: a checkout with a known email updates
// the existing row instead of creating a duplicate.
type Contact struct {
	ID        uuid.UUID  // The unique identifier for the contact.
	Name      string     // The contact's full name.
	Company   string     // Optional company name.
	Phone     string     // Optional phone number.
	Email     string     // Primary match key; unique across contacts.
	Addresses []*Address // The contact's reusable address book.
	CreatedAt time.Time
	UpdatedAt time.Time
}

// MergeFrom copies non-empty changed fields from an incoming contact onto the
// receiver and reports whether anything changed. Email is the identity and is
// never overwritten here.
func (c *Contact) MergeFrom(in *Contact) bool {
	changed := false
	if in.Name != "" && in.Name != c.Name {
		c.Name = in.Name
		changed = true
	}
	if in.Company != "" && in.Company != c.Company {
		c.Company = in.Company
		changed = true
	}
	if in.Phone != "" && in.Phone != c.Phone {
		c.Phone = in.Phone
		changed = true
	}

	return changed
}

// FindAddress returns the address-book entry matching the submitted details,
// or nil. A non-empty label matches by label; otherwise the first line plus
// postcode identifies the entry. Matching is case-insensitive.
func (c *Contact) FindAddress(label, address1, postcode string) *Address {
	if label != "" {
		for _, a := range c.Addresses {
			if strings.EqualFold(a.Label, label) {
				return a
			}
		}
	}
	for _, a := range c.Addresses {
		if strings.EqualFold(a.Address1, address1) && strings.EqualFold(a.Postcode, postcode) {
			return a
		}
	}

	return nil
}

// Address is a reusable postal address owned by a contact. At most one
// address per contact may be flagged as the default; persisting a default
// clears the flag on the contact's other addresses.
type Address struct {
	ID        uuid.UUID
	ContactID uuid.UUID
	Label     string // e.g. "Delivery", "Head Office".
	Address1  string
	Address2  string
	City      string
	County    string
	Postcode  string
	Country   string
	IsDefault bool
	CreatedAt time.Time
}
